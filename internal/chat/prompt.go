// README: Prompt assembly for the chat model. Flattens the system persona,
// extracted conversation context, stored preferences and the message history
// into a single completion prompt.
package chat

import (
	"fmt"
	"strings"

	"atlas/internal/intel"
)

const systemPrompt = `You are VacationBot, an expert AI travel consultant with deep knowledge of destinations worldwide. Your role is to help users plan their perfect vacation through engaging, personalized conversations.

Rules you must always follow:
- Always analyze the ENTIRE conversation history before responding. Never respond to a message in isolation.
- If a destination was mentioned earlier in the conversation, always reference it and give advice specific to it. Never give generic advice when a specific destination context exists.
- Build on information already provided (destination, budget, dates, group). Do not ask for information the user has already given.
- Stay focused on travel planning. You are a travel consultant; do not discuss unrelated topics.
- Always prioritize user safety in your advice.
- End with a relevant follow-up question based on what is already known.`

// buildPrompt assembles the completion prompt. Insights come from the
// current analysis pass and feed the context summary; prefs is the stored
// preference record carried between turns.
func buildPrompt(messages []intel.Message, insights *intel.Insights, prefs *intel.TravelPreferences) string {
	var b strings.Builder
	b.WriteString(systemPrompt)

	if ctx := conversationContext(messages, insights); ctx != "" {
		b.WriteString("\n\nCONVERSATION CONTEXT SUMMARY:\n")
		b.WriteString(ctx)
		b.WriteString("\nUse this context to maintain conversation continuity. Do NOT ask for information already provided.")
	}

	if pc := preferenceContext(prefs); pc != "" {
		b.WriteString("\n\nCurrent user preferences and context:\n")
		b.WriteString(pc)
	}

	b.WriteString("\n\nConversation so far:\n")
	for _, m := range messages {
		switch m.Role {
		case intel.RoleUser:
			b.WriteString("User: ")
		case intel.RoleAssistant:
			b.WriteString("Assistant: ")
		default:
			continue
		}
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")
	return b.String()
}

// conversationContext summarizes what the analysis pass found across the
// whole conversation.
func conversationContext(messages []intel.Message, insights *intel.Insights) string {
	if len(messages) == 0 || insights == nil {
		return ""
	}

	var parts []string
	if len(insights.Destinations) > 0 {
		parts = append(parts, "Destinations mentioned: "+strings.Join(insights.Destinations, ", "))
	}
	if insights.BudgetAmount != nil {
		parts = append(parts, "Budget information: "+insights.BudgetAmount.Formatted)
	} else if len(insights.BudgetIndicators) > 0 {
		parts = append(parts, "Budget information: "+strings.Join(insights.BudgetIndicators, ", "))
	}
	if insights.Timing != "" {
		parts = append(parts, "Timing information: "+insights.Timing)
	}
	if len(insights.TravelStyles) > 0 {
		parts = append(parts, "Travel style preferences: "+strings.Join(insights.TravelStyles, ", "))
	}
	if insights.Group != "" {
		parts = append(parts, "Group composition: "+insights.Group)
	}
	if len(insights.Interests) > 0 {
		parts = append(parts, "Specific interests: "+strings.Join(insights.Interests, ", "))
	}
	if len(messages) > 2 {
		parts = append(parts, fmt.Sprintf("Conversation length: %d messages", len(messages)))
	}
	return strings.Join(parts, "\n")
}

// preferenceContext renders the stored preference record for the model.
func preferenceContext(prefs *intel.TravelPreferences) string {
	if prefs == nil {
		return ""
	}

	var parts []string
	if prefs.HasDestinations() {
		parts = append(parts, "Interested in: "+strings.Join(prefs.Destinations, ", "))
	}
	if prefs.HasTravelDates() {
		parts = append(parts, fmt.Sprintf("Travel dates: %s to %s", prefs.TravelDates.Start, prefs.TravelDates.End))
	}
	if prefs.HasBudgetRange() {
		parts = append(parts, "Budget level: "+prefs.BudgetRange)
	}
	if prefs.HasTravelStyles() {
		parts = append(parts, "Travel style: "+strings.Join(prefs.TravelStyles, ", "))
	}
	if prefs.HasGroupSize() {
		parts = append(parts, fmt.Sprintf("Group size: %d people", *prefs.GroupSize))
	}
	return strings.Join(parts, "\n")
}
