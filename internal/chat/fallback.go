// README: Deterministic reply generation for when no model is available or
// the model call fails. Uses whatever conversation context we already have.
package chat

import (
	"fmt"
	"strings"

	"atlas/internal/intel"
)

const welcomeFallback = "I'd love to help you plan your perfect vacation! 🌍 To get started, could you tell me:\n\n" +
	"• Where are you dreaming of going?\n" +
	"• What type of experience are you looking for (adventure, relaxation, culture, etc.)?\n" +
	"• When are you thinking of traveling?\n" +
	"• What's your budget range?\n\n" +
	"I'm here to make your travel dreams come true!"

// FallbackResponse builds a reply from the conversation alone. When a
// destination is already known the reply is specific to it; otherwise we
// match the last message against a set of popular destinations and topic
// prompts.
func FallbackResponse(messages []intel.Message, destinations []string) string {
	if len(messages) == 0 {
		return "Hello! I'm your vacation planning assistant. I'd love to help you plan your perfect trip! Where would you like to go?"
	}

	lastMessage := strings.ToLower(messages[len(messages)-1].Content)

	if len(destinations) > 0 {
		dest := destinations[0]
		switch {
		case strings.Contains(lastMessage, "budget") || strings.Contains(lastMessage, "spend") || strings.Contains(lastMessage, "$"):
			return destinationBudgetResponse(dest)
		case strings.Contains(lastMessage, "when") && (strings.Contains(lastMessage, "best") || strings.Contains(lastMessage, "time")):
			return destinationTimingResponse(dest)
		case containsAnyWord(lastMessage, "adventure", "relax", "culture", "food", "beach", "hiking", "shopping", "see", "do", "visit"):
			return destinationActivityResponse(dest)
		default:
			return fmt.Sprintf("I'm excited to help you plan your %s adventure! Based on our conversation, I can help you with specific details about %s. "+
				"What would you like to know more about - the best time to visit, budget considerations, must-see attractions, or accommodation options?", dest, dest)
		}
	}

	for _, pd := range popularDestinationResponses {
		if strings.Contains(lastMessage, pd.name) {
			return pd.response
		}
	}

	switch {
	case strings.Contains(lastMessage, "budget") || strings.Contains(lastMessage, "spend") || strings.Contains(lastMessage, "$"):
		return "I'd be happy to help you with budget planning! To give you the most accurate advice, could you tell me:\n\n" +
			"• What destination(s) you're considering?\n" +
			"• How long you're planning to travel?\n" +
			"• What type of accommodation you prefer (budget, mid-range, luxury)?\n" +
			"• What activities are most important to you?\n\n" +
			"This will help me provide specific budget recommendations tailored to your trip!"
	case strings.Contains(lastMessage, "when") && (strings.Contains(lastMessage, "best") || strings.Contains(lastMessage, "time")):
		return "Great question about timing! The best time to visit really depends on your destination and what you want to experience. Could you tell me:\n\n" +
			"• Which destination(s) you're considering?\n" +
			"• What type of weather you prefer?\n" +
			"• Are you flexible with dates or have specific constraints?\n" +
			"• What activities are most important to you?\n\n" +
			"I can then give you specific seasonal recommendations!"
	case containsAnyWord(lastMessage, "adventure", "relax", "culture", "food", "beach", "hiking", "shopping"):
		return "I love that you're thinking about what type of experience you want! To help me suggest the perfect destinations and activities, could you tell me:\n\n" +
			"• What destination(s) are you considering?\n" +
			"• How long do you have for your trip?\n" +
			"• What's your budget range?\n" +
			"• Are you traveling solo, as a couple, or with family/friends?\n\n" +
			"This will help me create a personalized recommendation just for you!"
	default:
		return welcomeFallback
	}
}

// ErrorFallback maps a model failure to a user-facing message. Transport
// classes get a short apology; anything else falls back to the contextual
// generator so the reply still reflects the conversation.
func ErrorFallback(err error, messages []intel.Message, destinations []string) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource exhausted"):
		return "I'm experiencing high traffic right now. Please try again in a moment while I process your request."
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return "The request is taking longer than expected. Let me try a different approach to help you plan your trip."
	case strings.Contains(msg, "authentication") || strings.Contains(msg, "api key") || strings.Contains(msg, "unauthenticated"):
		return "I'm having trouble connecting to the AI service. Please check your API configuration and try again."
	default:
		return FallbackResponse(messages, destinations)
	}
}

// popularDestinationResponses handles the no-context case where the user
// names a place we have canned material for. Checked in order, first match
// wins.
var popularDestinationResponses = []struct {
	name     string
	response string
}{
	{"mongolia", "Mongolia is absolutely fascinating! The vast steppes, nomadic culture, and the Gobi Desert offer incredible experiences. For your Mongolia trip, I'd recommend considering the best time to visit (June-September for pleasant weather) and whether you're interested in staying in traditional gers with nomadic families. What aspects of Mongolia are most appealing to you?"},
	{"paris", "Paris, the City of Light! There's so much to explore beyond the iconic Eiffel Tower. Are you more interested in the classic tourist attractions, or would you prefer discovering hidden gems in neighborhoods like Le Marais or Montmartre? I can help you plan the perfect Parisian experience!"},
	{"bali", "Bali is a paradise for travelers! From the spiritual temples of Ubud to the beautiful beaches of Nusa Dua, there's something for everyone. Are you looking for relaxation, adventure, or cultural experiences? I can help you create the perfect Bali itinerary!"},
	{"japan", "Japan is incredible! Whether you're interested in the bustling streets of Tokyo, the traditional culture of Kyoto, or the natural beauty of Hokkaido, there's so much to explore. What type of Japanese experience are you dreaming of?"},
	{"thailand", "Thailand offers amazing diversity! From the bustling markets of Bangkok to the serene beaches of Phuket and the cultural richness of Chiang Mai. What's calling to you most about Thailand?"},
	{"vietnam", "Vietnam is a gem! The street food in Hanoi, the lanterns of Hoi An, and the Mekong Delta all offer unique experiences. Are you interested in the food scene, history, or natural landscapes?"},
	{"italy", "Italy is pure magic! From the art and history of Rome to the romantic canals of Venice and the rolling hills of Tuscany. What's your dream Italian experience?"},
	{"spain", "Spain is vibrant and diverse! The architecture of Barcelona, the flamenco of Seville, and the beaches of the Costa del Sol. What aspects of Spanish culture interest you most?"},
}

var destinationBudgetResponses = map[string]string{
	"Mongolia": "For your Mongolia trip, here's a realistic budget breakdown:\n\n" +
		"• **Accommodation (ger stays)**: $20-40/night = $280-560 for 2 weeks\n" +
		"• **Food**: $15-25/day = $210-350 for 2 weeks\n" +
		"• **Activities (horseback riding, tours)**: $300-500\n" +
		"• **Transport**: $200-300\n" +
		"• **Permits/guides**: $100-200\n\n" +
		"This gives you a total of $1,090-1,910 for a 2-week trip. What's your target budget range?",
	"Paris": "For your Paris adventure, here's a typical budget breakdown:\n\n" +
		"• **Accommodation**: $150-300/night = $2,100-4,200 for 2 weeks\n" +
		"• **Food**: $50-100/day = $700-1,400 for 2 weeks\n" +
		"• **Activities (museums, tours)**: $300-500\n" +
		"• **Transport**: $100-200\n" +
		"• **Shopping/entertainment**: $200-400\n\n" +
		"This gives you a total of $3,400-6,700 for a 2-week trip. What's your budget range?",
	"Bali": "For your Bali vacation, here's a realistic budget breakdown:\n\n" +
		"• **Accommodation**: $50-150/night = $700-2,100 for 2 weeks\n" +
		"• **Food**: $20-40/day = $280-560 for 2 weeks\n" +
		"• **Activities (temple tours, spa)**: $200-400\n" +
		"• **Transport**: $100-200\n" +
		"• **Shopping/entertainment**: $150-300\n\n" +
		"This gives you a total of $1,430-3,560 for a 2-week trip. What's your budget range?",
	"Japan": "For your Japan journey, here's a typical budget breakdown:\n\n" +
		"• **Accommodation**: $100-250/night = $1,400-3,500 for 2 weeks\n" +
		"• **Food**: $40-80/day = $560-1,120 for 2 weeks\n" +
		"• **Activities (temples, museums)**: $300-500\n" +
		"• **Transport (JR Pass)**: $400-500\n" +
		"• **Shopping/entertainment**: $200-400\n\n" +
		"This gives you a total of $2,860-6,020 for a 2-week trip. What's your budget range?",
}

var destinationTimingResponses = map[string]string{
	"Mongolia": "For Mongolia, the **best time to visit is June to September** when the weather is pleasant and the steppes are green. Here's the seasonal breakdown:\n\n" +
		"• **June-August**: Peak season with warm days (15-25°C) and cool nights\n" +
		"• **September**: Shoulder season with beautiful autumn colors\n" +
		"• **Winter (Nov-Mar)**: Very cold (-20 to -40°C) but unique winter experiences\n" +
		"• **Spring (Apr-May)**: Windy and unpredictable weather\n\n" +
		"What time of year are you considering for your Mongolia trip?",
	"Paris": "Paris is beautiful year-round, but here are the best times to visit:\n\n" +
		"• **April-June**: Spring blooms and pleasant weather (10-20°C)\n" +
		"• **September-October**: Autumn colors and fewer crowds (12-22°C)\n" +
		"• **July-August**: Peak season with warm weather but crowds (18-25°C)\n" +
		"• **November-March**: Cooler weather (5-15°C) but fewer tourists\n\n" +
		"What season appeals to you most for your Paris adventure?",
	"Bali": "Bali has a tropical climate with two main seasons:\n\n" +
		"• **Dry Season (April-October)**: Best time to visit with sunny weather (25-32°C)\n" +
		"• **Wet Season (November-March)**: Rainy but still enjoyable (24-30°C)\n" +
		"• **Peak Season**: July-August and December-January\n" +
		"• **Shoulder Season**: April-June and September-November (best value)\n\n" +
		"What time of year are you thinking for your Bali vacation?",
	"Japan": "Japan has four distinct seasons, each offering unique experiences:\n\n" +
		"• **Spring (March-May)**: Cherry blossom season, mild weather (10-20°C)\n" +
		"• **Summer (June-August)**: Hot and humid, festivals (20-30°C)\n" +
		"• **Autumn (September-November)**: Beautiful fall colors, pleasant weather (15-25°C)\n" +
		"• **Winter (December-February)**: Cold but magical, snow in some areas (0-10°C)\n\n" +
		"What season interests you most for your Japan journey?",
}

var destinationActivityResponses = map[string]string{
	"Mongolia": "Mongolia offers incredible adventure and cultural experiences:\n\n" +
		"• **Cultural**: Stay in traditional gers with nomadic families\n" +
		"• **Adventure**: Horseback riding across the steppes, camel trekking in the Gobi\n" +
		"• **Nature**: Visit Khövsgöl Lake, explore the Gobi Desert\n" +
		"• **History**: Visit ancient monasteries and historical sites\n" +
		"• **Wildlife**: Spot wild horses, eagles, and other unique animals\n\n" +
		"What type of experience interests you most for your Mongolia trip?",
	"Paris": "Paris offers endless cultural and romantic experiences:\n\n" +
		"• **Culture**: Visit the Louvre, Musée d'Orsay, and iconic landmarks\n" +
		"• **Food**: Enjoy world-class dining, patisseries, and wine\n" +
		"• **Romance**: Seine River cruises, Eiffel Tower, charming neighborhoods\n" +
		"• **Shopping**: Fashion boutiques, markets, and luxury stores\n" +
		"• **Art**: Explore galleries, street art, and cultural events\n\n" +
		"What aspects of Parisian life interest you most?",
	"Bali": "Bali offers a perfect blend of culture, nature, and relaxation:\n\n" +
		"• **Culture**: Visit ancient temples, traditional villages, and spiritual sites\n" +
		"• **Nature**: Rice terraces, waterfalls, volcanoes, and beaches\n" +
		"• **Wellness**: Yoga retreats, spa treatments, meditation\n" +
		"• **Adventure**: Surfing, hiking, diving, and water sports\n" +
		"• **Food**: Traditional Balinese cuisine, cooking classes\n\n" +
		"What type of Bali experience are you dreaming of?",
	"Japan": "Japan offers diverse experiences from traditional to modern:\n\n" +
		"• **Culture**: Visit temples, shrines, and traditional gardens\n" +
		"• **Food**: Sushi, ramen, street food, and tea ceremonies\n" +
		"• **Technology**: Modern cities, anime culture, gaming\n" +
		"• **Nature**: Cherry blossoms, mountains, hot springs\n" +
		"• **Shopping**: Electronics, fashion, traditional crafts\n\n" +
		"What aspects of Japanese culture interest you most?",
}

func destinationBudgetResponse(dest string) string {
	if r, ok := destinationBudgetResponses[canonicalDestination(dest)]; ok {
		return r
	}
	return fmt.Sprintf("I'd be happy to help you plan your budget for %s! To give you the most accurate advice, could you tell me:\n\n"+
		"• How long you're planning to stay?\n"+
		"• What type of accommodation you prefer?\n"+
		"• What activities are most important to you?\n\n"+
		"This will help me provide specific budget recommendations for %s!", dest, dest)
}

func destinationTimingResponse(dest string) string {
	if r, ok := destinationTimingResponses[canonicalDestination(dest)]; ok {
		return r
	}
	return fmt.Sprintf("I'd be happy to help you find the best time to visit %s! To give you the most accurate advice, could you tell me:\n\n"+
		"• What type of weather you prefer?\n"+
		"• What activities are most important to you?\n"+
		"• Are you flexible with dates?\n\n"+
		"This will help me recommend the perfect timing for your %s trip!", dest, dest)
}

func destinationActivityResponse(dest string) string {
	if r, ok := destinationActivityResponses[canonicalDestination(dest)]; ok {
		return r
	}
	return fmt.Sprintf("I'd be happy to help you discover the best activities in %s! To give you the most relevant recommendations, could you tell me:\n\n"+
		"• What type of experiences interest you most?\n"+
		"• How long will you be staying?\n"+
		"• What's your activity level?\n\n"+
		"This will help me suggest the perfect activities for your %s adventure!", dest, dest)
}

// canonicalDestination normalizes a mention to the casing the canned
// response tables use.
func canonicalDestination(dest string) string {
	if dest == "" {
		return dest
	}
	return strings.ToUpper(dest[:1]) + strings.ToLower(dest[1:])
}

func containsAnyWord(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
