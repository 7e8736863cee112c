// README: Conversation auto-titling from the opening message, with a
// deterministic fallback when no model is available.
package conversation

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"atlas/internal/ai"
)

const titlePrompt = `Generate a very short (3-6 words) descriptive title for a vacation planning conversation that starts with: "%s"

CRITICAL RULES:
1. This is a vacation planning bot for REALISTIC Earth destinations only
2. If the user mentions ANY space-related terms (moon, mars, milky way, galaxy, universe, cosmos, nebula, black hole, wormhole, solar system, etc.), you MUST return exactly: "Earth Travel Planning"
3. Do NOT be creative with space-related requests - always return "Earth Travel Planning"
4. For realistic Earth destinations, create appropriate titles
5. IMPORTANT: The word "space" alone is NOT space-related. Only flag it if it's clearly about outer space (like "space travel", "space station", "space vacation")

Examples:
- "I want to go to Paris" -> "Paris Trip Planning"
- "Plan a trip to the Milky Way" -> "Earth Travel Planning"
- "Go to Japan" -> "Japan Trip Planning"
- "I need a spacious hotel room" -> "Hotel Accommodation Planning"

Return only the title, nothing else.`

// spaceTermRe catches space-themed requests; those always title to the
// fixed Earth guard. "space" alone is excluded on purpose ("spacious
// room", "space to think").
var spaceTermRe = regexp.MustCompile(`(?i)\b(moon|mars|jupiter|saturn|venus|mercury|neptune|uranus|pluto|galaxy|galaxies|universe|planets?|asteroids?|comets?|milky\s*way|andromeda|nebulas?|constellations?|black\s*hole|wormhole|worm\s+hole|supernovas?|solar\s*system|orbit|orbital|cosmic|cosmos|interstellar|extraterrestrial|aliens?|ufos?|spaceships?|rockets?|satellites?|space\s+(station|travel|tourism|vacation))\b`)

// titleSpaceTerms are the space words that disqualify a model-generated
// title even after the prompt guard.
var titleSpaceTerms = []string{
	"galactic", "cosmic", "cosmos", "nebula", "wormhole", "black hole",
	"solar system", "interstellar", "extraterrestrial", "alien", "ufo",
	"spaceship", "rocket", "satellite", "orbit", "constellation",
	"supernova", "andromeda", "mars", "jupiter", "saturn", "venus",
	"mercury", "neptune", "uranus", "pluto",
}

var titleDestinationRe = regexp.MustCompile(`(?i)\b(mongolia|paris|bali|japan|thailand|vietnam|italy|spain|greece|turkey|morocco|egypt|india|china|australia|new\s+zealand|canada|mexico|brazil|argentina|peru|chile)\b`)

const earthGuardTitle = "Earth Travel Planning"

// Titler names new conversations after their opening message.
type Titler struct {
	completer ai.Completer
	timeout   time.Duration
	log       *zap.Logger
}

func NewTitler(completer ai.Completer, timeout time.Duration, log *zap.Logger) *Titler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Titler{completer: completer, timeout: timeout, log: log}
}

// Generate returns a short title. Model failures, over-long answers, and
// space-themed answers all degrade to the deterministic fallback.
func (t *Titler) Generate(ctx context.Context, initialMessage string) string {
	if t.completer == nil {
		return SimpleTitle(initialMessage)
	}

	cctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	title, err := t.completer.Complete(cctx, fmt.Sprintf(titlePrompt, initialMessage), 0.3, 20)
	if err != nil {
		t.log.Warn("title generation failed", zap.Error(err))
		return SimpleTitle(initialMessage)
	}

	title = strings.TrimSpace(title)
	title = strings.NewReplacer(`"`, "", "'", "").Replace(title)
	if title == "" || len(title) > 50 {
		return SimpleTitle(initialMessage)
	}

	lower := strings.ToLower(title)
	for _, term := range titleSpaceTerms {
		if strings.Contains(lower, term) {
			return earthGuardTitle
		}
	}
	return title
}

// SimpleTitle is the deterministic fallback: space requests get the Earth
// guard, known destinations get "{X} Trip Planning", then theme keywords,
// then a generic label.
func SimpleTitle(message string) string {
	if spaceTermRe.MatchString(message) {
		return earthGuardTitle
	}

	if m := titleDestinationRe.FindString(message); m != "" {
		return titleCaseWords(m) + " Trip Planning"
	}

	lower := strings.ToLower(message)
	switch {
	case wordPresent(lower, "budget"):
		return "Budget Travel Planning"
	case wordPresent(lower, "luxury"):
		return "Luxury Vacation Planning"
	case wordPresent(lower, "adventure"):
		return "Adventure Trip Planning"
	case wordPresent(lower, "beach"):
		return "Beach Vacation Planning"
	case wordPresent(lower, "culture") || wordPresent(lower, "cultural"):
		return "Cultural Trip Planning"
	default:
		return "Vacation Planning"
	}
}

func wordPresent(text, word string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	return re.MatchString(text)
}

func titleCaseWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
