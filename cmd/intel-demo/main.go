// README: Demo CLI; runs canned conversations through the analysis pipeline
// and prints the insights. No external services required.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"go.uber.org/zap"

	"atlas/internal/intel"
)

type scenario struct {
	name     string
	messages []string
}

var scenarios = []scenario{
	{
		name: "exploring",
		messages: []string{
			"Hi! I'm dreaming about a big trip but have no idea where to go.",
			"I love food and photography, somewhere cheap would be ideal.",
		},
	},
	{
		name: "comparing",
		messages: []string{
			"I want to visit either Paris or Rome in May.",
			"Which is better for museums and cafes?",
		},
	},
	{
		name: "planning",
		messages: []string{
			"We settled on Bali for 10 days in July.",
			"My budget is $3,000 for the two of us.",
			"What should our itinerary look like?",
		},
	},
}

func main() {
	lex := intel.DefaultLexicon()
	engine := intel.NewEngine(lex, nil, 0, zap.NewNop())
	ctx := context.Background()

	for _, sc := range scenarios {
		messages := make([]intel.Message, 0, len(sc.messages))
		for _, content := range sc.messages {
			messages = append(messages, intel.Message{Role: intel.RoleUser, Content: content})
		}

		insights := engine.Analyze(ctx, messages, nil)
		out, err := json.MarshalIndent(insights, "", "  ")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("=== %s ===\n%s\n", sc.name, out)
		fmt.Printf("suggestions: %v\n\n", engine.Suggestions(insights, sc.messages[len(sc.messages)-1]))
	}
}
