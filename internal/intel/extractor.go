// README: Preference extraction: destinations, budget, timing, styles, group,
// interests, concerns, experience level. All local paths are total over
// arbitrary text; only the optional model-assisted destination path can fail,
// and it degrades to the heuristics.
package intel

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"atlas/internal/ai"
)

var (
	// Currency amount forms: "$2000", "€1,500", "2000 usd", "2000 dollars".
	symbolAmountRe = regexp.MustCompile(`([$€£])\s?(\d{1,3}(?:,\d{3})+|\d+)`)
	amountCodeRe   = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})+|\d+)\s?(usd|eur|gbp|cad|aud|sgd|inr|dollars|euros|pounds|bucks)\b`)

	// Destination regex fallbacks, tried in order.
	cityListRe    = regexp.MustCompile(`([A-Z][a-zA-Z]+(?:,\s*[A-Z][a-zA-Z]+)+(?:,?\s*and\s*[A-Z][a-zA-Z]+)?)`)
	cityListSplit = regexp.MustCompile(`,\s*|\s+and\s+`)
	verbDestRe    = regexp.MustCompile(`(?:to|visit|go to|travel to|trip to|vacation in|holiday in)\s+([A-Z][a-zA-Z ]+?)(?:\.|,|!|\?|$)`)
	considerDestRe = regexp.MustCompile(`(?:considering|thinking about|interested in)\s+([A-Z][a-zA-Z ]+?)(?:\.|,|!|\?|$)`)
	capitalWordRe = regexp.MustCompile(`\b([A-Z][a-zA-Z]+)\b`)

	durationRe  = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(days?|nights?|weeks?)\b`)
	groupSizeRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(?:people|persons|travelers|travellers|adults|of us)\b`)
)

// currencySymbols maps code/word forms to their canonical symbol.
var currencySymbols = map[string]string{
	"usd": "$", "cad": "$", "aud": "$", "sgd": "$",
	"dollars": "$", "bucks": "$",
	"eur": "€", "euros": "€",
	"gbp": "£", "pounds": "£",
	"inr": "₹",
}

// Extractor pulls structured travel preferences out of raw conversation
// text. The completer is optional; when nil, destinations come from the
// gazetteer and regex paths only.
type Extractor struct {
	lex       *Lexicon
	completer ai.Completer
	timeout   time.Duration
	log       *zap.Logger
}

func NewExtractor(lex *Lexicon, completer ai.Completer, timeout time.Duration, log *zap.Logger) *Extractor {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Extractor{lex: lex, completer: completer, timeout: timeout, log: log}
}

// Destinations finds place names in text. The paths form an ordered chain:
// model-assisted extraction when available, then the gazetteer, then regex
// heuristics. Each path either returns a result or passes to the next.
func (e *Extractor) Destinations(ctx context.Context, text string) []string {
	if e.completer != nil {
		if dests, ok := e.llmDestinations(ctx, text); ok {
			return dests
		}
	}
	if dests := e.gazetteerDestinations(text); len(dests) > 0 {
		return dests
	}
	return e.regexDestinations(text)
}

const destinationPrompt = `Extract travel destination place names from the message below.
For cities, include the country (e.g. "Paris, France" becomes ["Paris", "France"]).
Reply with ONLY a JSON array of strings, e.g. ["Paris", "France"]. Reply with [] if no destinations are mentioned.

Message: %s`

// llmDestinations asks the completer for a place-name list. A malformed
// reply, a transport failure, or an empty list all mean "no opinion" and
// hand control to the heuristic paths.
func (e *Extractor) llmDestinations(ctx context.Context, text string) ([]string, bool) {
	cctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.completer.Complete(cctx, fmt.Sprintf(destinationPrompt, text), 0.1, 100)
	if err != nil {
		e.log.Debug("destination extraction fell back to heuristics", zap.Error(err))
		return nil, false
	}

	var parsed []string
	if err := json.Unmarshal([]byte(ai.CleanJSONString(raw)), &parsed); err != nil {
		e.log.Debug("unparseable destination reply", zap.String("raw", raw))
		return nil, false
	}

	var dests []string
	seen := make(map[string]bool)
	for _, d := range parsed {
		d = strings.TrimSpace(d)
		if d == "" || e.isTravelVerb(d) {
			continue
		}
		key := strings.ToLower(d)
		if !seen[key] {
			seen[key] = true
			dests = append(dests, d)
		}
	}
	if len(dests) == 0 {
		return nil, false
	}
	return dests, true
}

func (e *Extractor) isTravelVerb(word string) bool {
	lower := strings.ToLower(word)
	for _, v := range e.lex.TravelVerbs {
		if lower == v {
			return true
		}
	}
	return false
}

// gazetteerDestinations does a case-insensitive substring search over every
// known place name and returns the matches as they appear in the source
// text, first-seen order, de-duplicated.
func (e *Extractor) gazetteerDestinations(text string) []string {
	lower := strings.ToLower(text)
	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	seen := make(map[string]bool)
	for _, place := range e.lex.Gazetteer {
		idx := strings.Index(lower, place)
		if idx < 0 || seen[place] {
			continue
		}
		seen[place] = true
		hits = append(hits, hit{pos: idx, name: text[idx : idx+len(place)]})
	}
	// First-seen order means position in the text, not gazetteer order.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}
	return out
}

// regexDestinations is the last-resort path: comma-joined capitalized lists,
// verb+destination patterns, then bare capitalized words, all filtered
// against a pronoun/verb stoplist.
func (e *Extractor) regexDestinations(text string) []string {
	var dests []string
	add := func(cand string) {
		cand = strings.TrimSpace(cand)
		if len(cand) <= 2 || e.stoplisted(cand) || strings.HasPrefix(cand, "I ") {
			return
		}
		for _, d := range dests {
			if strings.EqualFold(d, cand) {
				return
			}
		}
		dests = append(dests, cand)
	}

	for _, match := range cityListRe.FindAllString(text, -1) {
		for _, part := range cityListSplit.Split(match, -1) {
			add(part)
		}
	}
	for _, re := range []*regexp.Regexp{verbDestRe, considerDestRe} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}
	if len(dests) == 0 {
		for _, m := range capitalWordRe.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}
	return dests
}

func (e *Extractor) stoplisted(word string) bool {
	for _, s := range e.lex.DestinationStoplist {
		if word == s {
			return true
		}
	}
	return false
}

// BudgetAmount scans for a currency amount in symbol+digits or
// digits+code/word form and normalizes it. Returns nil when no amount is
// present.
func (e *Extractor) BudgetAmount(text string) *BudgetAmount {
	if m := symbolAmountRe.FindStringSubmatch(text); m != nil {
		return newBudgetAmount(m[2], m[1])
	}
	if m := amountCodeRe.FindStringSubmatch(text); m != nil {
		symbol, ok := currencySymbols[strings.ToLower(m[2])]
		if !ok {
			symbol = "$"
		}
		return newBudgetAmount(m[1], symbol)
	}
	return nil
}

func newBudgetAmount(digits, symbol string) *BudgetAmount {
	value, err := strconv.Atoi(strings.ReplaceAll(digits, ",", ""))
	if err != nil {
		return nil
	}
	return &BudgetAmount{
		Value:     value,
		Symbol:    symbol,
		Formatted: symbol + groupThousands(value),
	}
}

// groupThousands renders 2000 as "2,000".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// CategorizeBudget maps an amount to a budget level tag by fixed thresholds.
func CategorizeBudget(amount int) string {
	switch {
	case amount <= 1500:
		return "budget"
	case amount <= 5000:
		return "moderate"
	default:
		return "luxury"
	}
}

// BudgetIndicators scans the four-level keyword/phrase tables. A phrase
// match is decisive and stops the level scan; ultra_budget is dropped when
// any other level also matched, to avoid double-signaling.
func (e *Extractor) BudgetIndicators(text string) []string {
	lower := strings.ToLower(text)
	var indicators []string

levels:
	for _, level := range e.lex.BudgetLevels {
		for _, kw := range level.Keywords {
			if strings.Contains(lower, kw) {
				indicators = append(indicators, level.Name)
				break
			}
		}
		for _, ph := range level.Phrases {
			if strings.Contains(lower, ph) {
				indicators = append(indicators, level.Name)
				break levels
			}
		}
	}

	if len(indicators) > 1 {
		filtered := indicators[:0]
		for _, ind := range indicators {
			if ind != "ultra_budget" {
				filtered = append(filtered, ind)
			}
		}
		indicators = filtered
	}
	return dedupe(indicators)
}

// Timing reports when the user wants to travel, as free text:
// months beat seasons beat generic timing words.
func (e *Extractor) Timing(text string) string {
	lower := strings.ToLower(text)

	if found := containedWords(lower, e.lex.Months); len(found) > 0 {
		return "Months mentioned: " + strings.Join(found, ", ")
	}
	if found := containedWords(lower, e.lex.Seasons); len(found) > 0 {
		return "Seasons mentioned: " + strings.Join(found, ", ")
	}
	timingWords := []string{"when", "time", "season", "weather", "best time"}
	if found := containedWords(lower, timingWords); len(found) > 0 {
		return "Timing preferences: " + strings.Join(found, ", ")
	}
	return ""
}

// TravelStyles returns every style tag whose name appears in the text.
func (e *Extractor) TravelStyles(text string) []string {
	return containedWords(strings.ToLower(text), e.lex.TravelStyles)
}

// GroupComposition returns the first matched group tag, or "".
func (e *Extractor) GroupComposition(text string) string {
	lower := strings.ToLower(text)
	for _, g := range e.lex.Groups {
		for _, kw := range g.Keywords {
			if strings.Contains(lower, kw) {
				return g.Name
			}
		}
	}
	return ""
}

// Interests scores the weighted interest tables: each matched keyword adds
// the category weight; categories scoring >=1.0 are returned highest first,
// ties kept in table order. A money mention prepends the "budget" tag.
func (e *Extractor) Interests(text string) []string {
	lower := strings.ToLower(text)

	var detected []string
	moneyWords := []string{"budget", "cheap", "affordable", "economical", "save", "cost", "price", "money"}
	for _, w := range moneyWords {
		if strings.Contains(lower, w) {
			detected = append(detected, "budget")
			break
		}
	}

	type scored struct {
		name  string
		score float64
	}
	var scores []scored
	for _, p := range e.lex.Interests {
		var score float64
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				score += p.Weight
			}
		}
		if score > 0 {
			scores = append(scores, scored{p.Name, score})
		}
	}
	// Stable insertion sort keeps table order on equal scores.
	for i := 1; i < len(scores); i++ {
		for j := i; j > 0 && scores[j].score > scores[j-1].score; j-- {
			scores[j], scores[j-1] = scores[j-1], scores[j]
		}
	}
	for _, s := range scores {
		if s.score >= 1.0 {
			detected = append(detected, s.name)
		}
	}
	return detected
}

// Concerns returns matched concern tags in table (priority) order.
func (e *Extractor) Concerns(text string) []string {
	lower := strings.ToLower(text)
	var concerns []string
	for _, c := range e.lex.Concerns {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				concerns = append(concerns, c.Name)
				break
			}
		}
	}
	return concerns
}

// Experience returns the first matching experience level, else unknown.
func (e *Extractor) Experience(text string) ExperienceLevel {
	lower := strings.ToLower(text)
	for _, p := range e.lex.Experience {
		for _, ind := range p.Indicators {
			if strings.Contains(lower, ind) {
				return p.Level
			}
		}
	}
	return ExperienceUnknown
}

// DurationDays parses an explicit trip length like "10 days" or "2 weeks".
func (e *Extractor) DurationDays(text string) *int {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n == 0 {
		return nil
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "week") {
		n *= 7
	}
	return &n
}

// GroupSize parses an explicit headcount like "4 people" or "2 of us".
func (e *Extractor) GroupSize(text string) *int {
	m := groupSizeRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n == 0 {
		return nil
	}
	return &n
}

// containedWords returns the subset of words present in text, table order.
func containedWords(text string, words []string) []string {
	var found []string
	for _, w := range words {
		if strings.Contains(text, w) {
			found = append(found, w)
		}
	}
	return found
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}
