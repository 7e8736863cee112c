// README: Quick-reply suggestions and content recommendations derived from
// the analysis results.
package intel

import (
	"fmt"
	"strings"
)

const (
	maxSuggestions     = 4
	maxRecommendations = 3
	// Above this confidence the stage drives specific suggestions; below
	// it we fall back to readiness-tiered prompts.
	stageConfidenceBar = 0.6
)

// DynamicSuggestions produces up to four quick-reply chips for the UI,
// tailored to the detected stage, interests, destinations, and concerns.
func DynamicSuggestions(ins *Insights, lastMessage string) []string {
	if ins == nil {
		ins = &Insights{}
	}

	stage := ins.Stage.Stage
	confidence := ins.Stage.Confidence
	interests := ins.Interests
	readiness := ins.Readiness
	destinations := ins.Destinations
	concerns := ins.Concerns

	lastLower := strings.ToLower(lastMessage)
	for _, dest := range destinations {
		if strings.Contains(lastLower, strings.ToLower(dest)) {
			// They just named a place; lead them straight into follow-ups.
			return []string{
				fmt.Sprintf("Tell me more about %s", destinations[0]),
				"When do you want to go?",
				"What's your budget like?",
				"What kind of activities do you enjoy?",
			}
		}
	}

	var suggestions []string
	if confidence > stageConfidenceBar {
		switch stage {
		case StageExploring:
			if len(interests) > 0 {
				suggestions = append(suggestions,
					fmt.Sprintf("Best places for %s", interests[0]),
					"Match my travel style")
			} else {
				suggestions = append(suggestions,
					"Help me find inspiration",
					"What's popular right now")
			}
			if len(destinations) == 0 {
				suggestions = append(suggestions,
					"I have a place in mind",
					"Surprise me with ideas")
			} else {
				suggestions = append(suggestions,
					fmt.Sprintf("Tell me about %s", destinations[0]),
					"Compare with other places")
			}
		case StageComparing:
			if len(destinations) >= 2 {
				suggestions = append(suggestions,
					fmt.Sprintf("Compare %s vs %s", destinations[0], destinations[1]),
					"Which one is better for me?")
			}
			suggestions = append(suggestions, "Compare costs", "Best time to visit")
		case StagePlanning:
			if len(destinations) > 0 {
				dest := destinations[0]
				suggestions = append(suggestions,
					fmt.Sprintf("Create %s itinerary", dest),
					fmt.Sprintf("Where to stay in %s", dest),
					fmt.Sprintf("Must-see in %s", dest))
			} else {
				suggestions = append(suggestions,
					"Create an itinerary",
					"Where to stay",
					"Must-see attractions")
			}
			suggestions = append(suggestions, "Getting around tips")
		case StageFinalizing:
			suggestions = append(suggestions,
				"When should I book?",
				"What documents do I need?",
				"Travel insurance advice",
				"Final checklist")
		}
	} else {
		switch {
		case len(destinations) == 0:
			suggestions = []string{
				"I need some ideas",
				"Beach vacation ideas",
				"Adventure travel ideas",
				"City break ideas",
			}
		case readiness < 0.3:
			suggestions = []string{
				fmt.Sprintf("Tell me about %s", destinations[0]),
				"When should I travel?",
				"What's my budget?",
				"Who's coming with me?",
			}
		case readiness < 0.6:
			suggestions = []string{
				"Help me plan activities",
				"Where should I stay?",
				"Compare with similar places",
				"What's the weather like?",
			}
		default:
			suggestions = []string{
				"Review my travel plan",
				"What am I forgetting?",
				"Booking tips",
				"Local customs to know",
			}
		}
	}

	// Address the loudest worry first.
	switch {
	case hasTag(concerns, "safety"):
		suggestions = append([]string{"Is it safe to travel there?"}, suggestions...)
	case hasTag(concerns, "budget") || hasTag(concerns, "cost"):
		suggestions = append([]string{"How can I save money?"}, suggestions...)
	case hasTag(concerns, "weather"):
		suggestions = append([]string{"What's the weather like?"}, suggestions...)
	}

	if strings.Contains(lastMessage, "?") && !hasTag(suggestions, "I need more information") {
		suggestions = append(suggestions, "I need more information")
	}

	suggestions = dedupe(suggestions)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// SmartRecommendations composes up to three richer content cards shown
// alongside the reply. Composition order is fixed so the most relevant
// cards survive truncation.
func SmartRecommendations(prefs *TravelPreferences, ins *Insights, messageCount int) []Recommendation {
	if ins == nil {
		ins = &Insights{}
	}

	stage := ins.Stage.Stage
	confidence := ins.Stage.Confidence
	interests := ins.Interests
	concerns := ins.Concerns
	readiness := ins.Readiness
	destinations := ins.Destinations

	var recs []Recommendation

	if messageCount <= 3 {
		recs = append(recs, Recommendation{
			Type: "welcome",
			Content: "👋 **Welcome to Vacation Planning!**\n\n" +
				"I'm here to help you plan your perfect trip. " +
				"Let's start by understanding what you're dreaming of for your vacation.",
		})
	}

	if confidence > stageConfidenceBar {
		switch {
		case stage == StageExploring && len(interests) > 0:
			interest := interests[0]
			title := titleCase(interest)
			recs = append(recs, Recommendation{
				Type: "targeted_inspiration",
				Content: fmt.Sprintf("🎯 **Perfect for %s Lovers**\n\n", title) +
					fmt.Sprintf("Since you're into %s, think about:\n", interest) +
					fmt.Sprintf("• **Tropical Paradise** - Beach resorts with %s activities\n", interest) +
					fmt.Sprintf("• **Mountain Escapes** - High-altitude %s experiences\n", interest) +
					fmt.Sprintf("• **Cultural Hubs** - Cities known for %s\n\n", interest) +
					"What kind of setting sounds most appealing to you?",
			})
		case stage == StageComparing && len(destinations) > 0:
			recs = append(recs, Recommendation{
				Type: "comparison_framework",
				Content: "📊 **Smart Comparison Framework**\n\n" +
					"To help you decide, think about:\n" +
					"• **Total Cost** (flights + accommodation + activities)\n" +
					"• **Weather** during your travel period\n" +
					"• **Activities** that match your interests\n" +
					"• **Travel Time** and convenience\n" +
					"• **Visa Requirements** and ease of entry\n\n" +
					"Which factor matters most to you?",
			})
		case stage == StagePlanning:
			recs = append(recs, Recommendation{
				Type: "planning_structure",
				Content: "📅 **Smart Planning Approach**\n\n" +
					"Let's structure your trip:\n" +
					"1. **Arrival & Settling** (Day 1)\n" +
					"2. **Major Attractions** (Days 2-3)\n" +
					"3. **Local Experiences** (Days 4-5)\n" +
					"4. **Hidden Gems** (Day 6)\n" +
					"5. **Departure Prep** (Last Day)\n\n" +
					"How many days are you thinking of staying?",
			})
		}
	}

	if len(destinations) > 0 {
		dest := destinations[0]
		recs = append(recs, Recommendation{
			Type: "destination_focus",
			Content: fmt.Sprintf("🗺️ **%s Highlights**\n\n", dest) +
				fmt.Sprintf("I can help you discover the best of %s:\n", dest) +
				"• **Must-See Attractions**\n" +
				"• **Local Cuisine & Dining**\n" +
				"• **Hidden Gems**\n" +
				"• **Best Neighborhoods**\n" +
				"• **Practical Tips**\n\n" +
				fmt.Sprintf("What interests you most about %s?", dest),
		})
	}

	if len(concerns) > 0 {
		if content, ok := concernResponses[canonicalConcern(concerns[0])]; ok {
			recs = append(recs, Recommendation{Type: "concern_addressed", Content: content})
		}
	}

	if readiness > 0.7 && stage != StageFinalizing {
		var missing []string
		if !prefs.HasDestinations() {
			missing = append(missing, "destination")
		}
		if !prefs.HasTravelDates() {
			missing = append(missing, "travel dates")
		}
		if !prefs.HasBudgetRange() {
			missing = append(missing, "budget")
		}
		if len(missing) > 0 {
			recs = append(recs, Recommendation{
				Type: "readiness_prompt",
				Content: fmt.Sprintf("✅ **Almost Ready!** Just need your %s to create a complete plan.",
					strings.Join(missing, " and ")),
			})
		}
	}

	switch stage {
	case StageExploring:
		recs = append(recs, Recommendation{
			Type: "exploration_guidance",
			Content: "🌟 **Let's Find Your Perfect Destination**\n\n" +
				"I can help you discover:\n" +
				"• **Beach Getaways** - Relaxation and water activities\n" +
				"• **City Breaks** - Culture, food, and urban adventures\n" +
				"• **Mountain Escapes** - Hiking and outdoor activities\n" +
				"• **Cultural Journeys** - History, art, and local traditions\n\n" +
				"What kind of experience are you dreaming of?",
		})
	case StagePlanning:
		recs = append(recs, Recommendation{
			Type: "planning_guidance",
			Content: "📋 **Let's Build Your Perfect Itinerary**\n\n" +
				"I can help you plan:\n" +
				"• **Daily Schedules** - Optimized for your interests\n" +
				"• **Accommodation** - Best areas and options\n" +
				"• **Transportation** - Getting around efficiently\n" +
				"• **Local Tips** - Insider knowledge and advice\n\n" +
				"What would you like to focus on first?",
		})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Type: "general_guidance",
			Content: "🎯 **Let's Plan Your Perfect Trip**\n\n" +
				"I'm here to help you create an amazing vacation experience. " +
				"Tell me about your travel dreams and I'll guide you every step of the way!",
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// concernResponses maps a canonical concern tag to its reassurance card.
var concernResponses = map[string]string{
	"safety":   "🔒 **Safety First**: I'll focus on safe neighborhoods, reliable transportation, and current travel advisories.",
	"budget":   "💰 **Budget-Conscious Planning**: Let's find great value options and money-saving tips.",
	"weather":  "🌤️ **Weather Considerations**: I'll help you pick the best time and prepare for conditions.",
	"language": "🗣️ **Communication Tips**: I'll share key phrases and apps to help you communicate.",
	"health":   "🏥 **Health Preparedness**: Let's cover vaccinations, insurance, and medical facilities.",
}

// canonicalConcern folds the detector's cost tag into the budget response.
func canonicalConcern(concern string) string {
	if concern == "cost" {
		return "budget"
	}
	return concern
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
