// README: Keyword/phrase tables driving the analysis pipeline; YAML-overridable.
package intel

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StageKeywords holds the positive and question indicators for one stage.
// Question phrases score 1.5x because a question is a stronger signal of
// where the user actually is than a passing keyword.
type StageKeywords struct {
	Positive  []string `yaml:"positive"`
	Questions []string `yaml:"questions"`
}

// InterestPattern is one interest category with its matching keywords and
// the per-keyword weight contributed to the category score.
type InterestPattern struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Weight   float64  `yaml:"weight"`
}

// BudgetLevel is one budget tier; phrase matches are treated as decisive.
type BudgetLevel struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Phrases  []string `yaml:"phrases"`
}

// ConcernPattern is one concern category. Table order is priority order.
type ConcernPattern struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// ExperiencePattern maps indicator phrases to an experience level.
type ExperiencePattern struct {
	Level      ExperienceLevel `yaml:"level"`
	Indicators []string        `yaml:"indicators"`
}

// GroupPattern maps keywords to a group-composition tag.
type GroupPattern struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Lexicon is the full, immutable table set the engine matches against.
// It is loaded once at startup; a zero or partially-populated file falls
// back to the built-in defaults field by field.
type Lexicon struct {
	Exploring  StageKeywords `yaml:"exploring"`
	Comparing  StageKeywords `yaml:"comparing"`
	Planning   StageKeywords `yaml:"planning"`
	Finalizing StageKeywords `yaml:"finalizing"`

	Gazetteer []string `yaml:"gazetteer"`

	Interests    []InterestPattern   `yaml:"interests"`
	BudgetLevels []BudgetLevel       `yaml:"budget_levels"`
	Concerns     []ConcernPattern    `yaml:"concerns"`
	Experience   []ExperiencePattern `yaml:"experience"`
	Groups       []GroupPattern      `yaml:"groups"`
	TravelStyles []string            `yaml:"travel_styles"`

	Months        []string `yaml:"months"`
	Seasons       []string `yaml:"seasons"`
	DurationWords []string `yaml:"duration_words"`
	BudgetWords   []string `yaml:"budget_words"`

	ComparisonWords    []string `yaml:"comparison_words"`
	CityReferenceSet   []string `yaml:"city_reference_set"`
	PreferenceWords    []string `yaml:"preference_words"`
	TightBudgetPhrases []string `yaml:"tight_budget_phrases"`

	TravelKeywords      []string `yaml:"travel_keywords"`
	AffirmativePhrases  []string `yaml:"affirmative_phrases"`
	TravelVerbs         []string `yaml:"travel_verbs"`
	DestinationStoplist []string `yaml:"destination_stoplist"`
}

// stageKeywords returns the table for a stage.
func (l *Lexicon) stageKeywords(s Stage) StageKeywords {
	switch s {
	case StageComparing:
		return l.Comparing
	case StagePlanning:
		return l.Planning
	case StageFinalizing:
		return l.Finalizing
	default:
		return l.Exploring
	}
}

// LoadLexicon reads a YAML lexicon from path and merges it over the
// defaults. A missing or unreadable file yields the defaults; this is a
// startup-time decision, never re-evaluated per call.
func LoadLexicon(path string) (*Lexicon, error) {
	base := DefaultLexicon()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	var override Lexicon
	if err := yaml.Unmarshal(data, &override); err != nil {
		return base, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	base.merge(&override)
	return base, nil
}

// merge copies every non-empty field of o over l.
func (l *Lexicon) merge(o *Lexicon) {
	mergeStage := func(dst *StageKeywords, src StageKeywords) {
		if len(src.Positive) > 0 {
			dst.Positive = src.Positive
		}
		if len(src.Questions) > 0 {
			dst.Questions = src.Questions
		}
	}
	mergeStage(&l.Exploring, o.Exploring)
	mergeStage(&l.Comparing, o.Comparing)
	mergeStage(&l.Planning, o.Planning)
	mergeStage(&l.Finalizing, o.Finalizing)

	if len(o.Gazetteer) > 0 {
		l.Gazetteer = o.Gazetteer
	}
	if len(o.Interests) > 0 {
		l.Interests = o.Interests
	}
	if len(o.BudgetLevels) > 0 {
		l.BudgetLevels = o.BudgetLevels
	}
	if len(o.Concerns) > 0 {
		l.Concerns = o.Concerns
	}
	if len(o.Experience) > 0 {
		l.Experience = o.Experience
	}
	if len(o.Groups) > 0 {
		l.Groups = o.Groups
	}
	if len(o.TravelStyles) > 0 {
		l.TravelStyles = o.TravelStyles
	}
	if len(o.Months) > 0 {
		l.Months = o.Months
	}
	if len(o.Seasons) > 0 {
		l.Seasons = o.Seasons
	}
	if len(o.DurationWords) > 0 {
		l.DurationWords = o.DurationWords
	}
	if len(o.BudgetWords) > 0 {
		l.BudgetWords = o.BudgetWords
	}
	if len(o.ComparisonWords) > 0 {
		l.ComparisonWords = o.ComparisonWords
	}
	if len(o.CityReferenceSet) > 0 {
		l.CityReferenceSet = o.CityReferenceSet
	}
	if len(o.PreferenceWords) > 0 {
		l.PreferenceWords = o.PreferenceWords
	}
	if len(o.TightBudgetPhrases) > 0 {
		l.TightBudgetPhrases = o.TightBudgetPhrases
	}
	if len(o.TravelKeywords) > 0 {
		l.TravelKeywords = o.TravelKeywords
	}
	if len(o.AffirmativePhrases) > 0 {
		l.AffirmativePhrases = o.AffirmativePhrases
	}
	if len(o.TravelVerbs) > 0 {
		l.TravelVerbs = o.TravelVerbs
	}
	if len(o.DestinationStoplist) > 0 {
		l.DestinationStoplist = o.DestinationStoplist
	}
}

// DefaultLexicon returns the built-in tables.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Exploring: StageKeywords{
			Positive: []string{
				"thinking about", "considering", "wondering", "ideas", "suggestions",
				"inspire", "options", "possibilities", "what about", "how about",
				"somewhere", "anywhere", "dream", "always wanted", "bucket list",
			},
			Questions: []string{
				"where should", "where can", "what destinations", "any recommendations",
				"suggest some places", "what do you think",
			},
		},
		Comparing: StageKeywords{
			Positive: []string{
				"vs", "versus", "or", "between", "compare", "comparison",
				"which is better", "difference between", "pros and cons",
				"advantages", "disadvantages", "rather", "instead of",
			},
			Questions: []string{
				"which one", "what's better", "should i choose", "help me decide",
			},
		},
		Planning: StageKeywords{
			Positive: []string{
				"itinerary", "schedule", "plan", "days in", "nights in",
				"what to do", "activities", "must see", "must do", "route",
				"transportation", "getting around", "where to stay", "neighborhoods",
				"july", "august", "september", "october", "november", "december",
				"january", "february", "march", "april", "may", "june",
				"days", "weeks", "months", "duration", "length", "time",
				"budget", "cost", "price", "money", "dollars", "euros",
				"specific", "detailed", "exact", "precise", "definite",
			},
			Questions: []string{
				"how many days", "what should i do", "where to stay", "how to get",
				"how much will it cost", "what's the budget", "when should i go",
			},
		},
		Finalizing: StageKeywords{
			Positive: []string{
				"book", "booking", "reserve", "reservation", "when to book",
				"best time to book", "finalize", "decided", "going to",
				"will be traveling", "confirmed", "tickets", "visa",
			},
			Questions: []string{
				"how to book", "where to book", "when should i book", "what documents",
			},
		},

		Gazetteer: defaultGazetteer,

		Interests: []InterestPattern{
			{Name: "adventure", Weight: 1.0, Keywords: []string{
				"hiking", "climbing", "diving", "extreme", "adventure",
				"trek", "explore", "outdoor", "adrenaline", "sports"}},
			{Name: "relaxation", Weight: 1.0, Keywords: []string{
				"relax", "spa", "beach", "resort", "peaceful", "quiet",
				"unwind", "chill", "lazy", "slow pace", "rest"}},
			{Name: "cultural", Weight: 1.0, Keywords: []string{
				"culture", "history", "museum", "local", "authentic",
				"heritage", "tradition", "art", "architecture", "temple"}},
			{Name: "foodie", Weight: 1.0, Keywords: []string{
				"food", "restaurant", "cuisine", "eat", "culinary",
				"taste", "dining", "chef", "wine", "local dishes"}},
			{Name: "nature", Weight: 1.0, Keywords: []string{
				"nature", "wildlife", "national park", "mountains",
				"forest", "scenic", "landscape", "natural", "animals"}},
			{Name: "urban", Weight: 0.8, Keywords: []string{
				"city", "urban", "metropolitan", "shopping", "nightlife",
				"modern", "cosmopolitan", "downtown", "skyline"}},
			{Name: "photography", Weight: 0.7, Keywords: []string{
				"photo", "photography", "instagram", "scenic", "views",
				"sunrise", "sunset", "picturesque", "beautiful"}},
		},

		BudgetLevels: []BudgetLevel{
			{Name: "ultra_budget",
				Keywords: []string{"backpack", "hostel", "cheapest", "shoestring", "broke"},
				Phrases:  []string{"as cheap as possible", "very tight budget", "no money"}},
			{Name: "budget",
				Keywords: []string{"budget", "cheap", "affordable", "economical", "save"},
				Phrases:  []string{"on a budget", "save money", "cost conscious", "good value"}},
			{Name: "moderate",
				Keywords: []string{"moderate", "comfortable", "reasonable", "balanced"},
				Phrases:  []string{"mid-range", "not too expensive", "decent hotels", "some nice meals"}},
			{Name: "luxury",
				Keywords: []string{"luxury", "premium", "exclusive", "splurge", "best"},
				Phrases:  []string{"five star", "no budget", "money no object", "treat ourselves"}},
		},

		Concerns: []ConcernPattern{
			{Name: "safety", Keywords: []string{"safe", "dangerous", "crime", "secure", "risk", "safety"}},
			{Name: "health", Keywords: []string{"health", "medical", "hospital", "vaccine", "illness", "doctor"}},
			{Name: "weather", Keywords: []string{"weather", "rain", "hot", "cold", "hurricane", "climate", "season"}},
			{Name: "crowds", Keywords: []string{"crowd", "busy", "tourist", "peaceful", "quiet", "packed", "overcrowded"}},
			{Name: "language", Keywords: []string{"language", "english", "speak", "communicate", "understand"}},
			{Name: "cost", Keywords: []string{"expensive", "cost", "price", "afford", "budget", "money"}},
			{Name: "solo_travel", Keywords: []string{"alone", "solo", "single", "by myself", "solo travel"}},
			{Name: "accessibility", Keywords: []string{"wheelchair", "accessible", "disability", "mobility"}},
			{Name: "dietary", Keywords: []string{"vegetarian", "vegan", "allergy", "dietary", "food restrictions"}},
			{Name: "visa", Keywords: []string{"visa", "passport", "documentation", "entry requirements"}},
		},

		Experience: []ExperiencePattern{
			{Level: ExperienceBeginner, Indicators: []string{
				"first time", "never been", "new to travel", "nervous about",
				"worried about", "inexperienced", "first international"}},
			{Level: ExperienceIntermediate, Indicators: []string{
				"traveled before", "been to a few", "some experience",
				"comfortable with", "done this before"}},
			{Level: ExperienceExperienced, Indicators: []string{
				"traveled extensively", "been everywhere", "seasoned traveler",
				"always traveling", "travel frequently", "been to many"}},
		},

		Groups: []GroupPattern{
			{Name: "solo", Keywords: []string{"alone", "solo", "by myself", "single"}},
			{Name: "couple", Keywords: []string{"couple", "romantic", "honeymoon", "anniversary"}},
			{Name: "family", Keywords: []string{"family", "kids", "children", "parents"}},
			{Name: "group", Keywords: []string{"group", "friends", "team", "colleagues"}},
		},

		TravelStyles: []string{
			"adventure", "relaxation", "cultural", "family", "romantic", "business",
			"luxury", "backpacking", "foodie", "photography", "hiking", "beach",
			"city", "rural", "wildlife", "history", "art", "music", "sports",
			"shopping", "nightlife", "spiritual", "wellness", "educational",
		},

		Months: []string{
			"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
		},
		Seasons:       []string{"spring", "summer", "fall", "autumn", "winter"},
		DurationWords: []string{"days", "weeks", "months", "duration", "length"},
		BudgetWords:   []string{"budget", "cost", "price", "money", "dollars", "euros"},

		ComparisonWords: []string{
			"between", "vs", "versus", "or", "compare", "comparison",
			"which", "rather", "instead",
		},
		CityReferenceSet: []string{
			"paris", "tokyo", "new york", "london", "rome", "barcelona",
			"amsterdam", "berlin", "prague", "vienna", "budapest", "copenhagen",
			"stockholm", "oslo", "helsinki", "reykjavik", "dublin", "edinburgh",
			"glasgow", "manchester", "birmingham", "liverpool", "leeds",
			"sheffield", "bristol", "cardiff", "belfast", "cork", "galway",
			"limerick", "waterford", "kilkenny", "drogheda", "wicklow",
			"wexford", "carlow", "laois", "offaly", "westmeath", "longford",
			"louth", "meath", "cavan", "monaghan", "fermanagh", "tyrone",
			"derry", "antrim", "down", "armagh",
		},
		PreferenceWords: []string{
			"want", "prefer", "looking for", "interested in", "options", "ideas",
			"experience", "adventure", "culture", "food", "local", "not luxury",
			"not expensive", "not costly", "not pricey", "affordable", "cheap",
			"budget-friendly", "save", "explore", "try", "see", "do", "enjoy",
			"fun", "relax", "discover", "learn", "meet", "connect", "enrich",
			"grow", "enjoyable", "memorable", "unique", "special", "different",
			"variety", "diverse", "broad", "wide", "range", "choice", "select",
			"pick", "choose", "decide", "consider", "think", "plan", "dream",
			"wish", "hope", "aspire", "goal", "aim", "objective", "target",
			"purpose", "reason", "motivation", "drive", "passion", "interest",
			"curious", "curiosity",
		},
		TightBudgetPhrases: []string{
			"tight budget", "limited budget", "small budget", "low budget",
			"restricted budget",
		},

		TravelKeywords: []string{
			"travel", "hotel", "flight", "vacation", "trip", "destination",
			"itinerary", "book", "tour", "adventure", "accommodation", "resort",
			"city", "country", "explore", "visit", "plan", "journey", "holiday",
		},
		AffirmativePhrases: []string{
			"yes", "sure", "okay", "ok", "that sounds good",
			"recommendations", "recommend",
		},
		TravelVerbs: []string{
			"visit", "go", "trip", "plan", "travel", "see", "stay", "explore",
		},
		DestinationStoplist: []string{
			"I", "We", "The", "This", "That", "My", "Our", "Plan", "Want",
		},
	}
}

// defaultGazetteer is the built-in reference place-name list: major cities
// first, then countries. Matching is case-insensitive substring search.
var defaultGazetteer = []string{
	"paris", "nice", "lyon", "marseille", "bordeaux", "cannes", "versailles",
	"madrid", "barcelona", "seville", "valencia", "granada", "bilbao", "malaga",
	"rome", "milan", "florence", "venice", "naples", "palermo", "amalfi coast",
	"london", "edinburgh", "manchester", "bath", "oxford", "york", "cambridge",
	"liverpool", "berlin", "munich", "frankfurt", "cologne", "hamburg", "dresden",
	"amsterdam", "rotterdam", "utrecht", "vienna", "salzburg", "innsbruck",
	"prague", "brno", "budapest", "athens", "santorini", "mykonos", "crete",
	"rhodes", "corfu", "istanbul", "cappadocia", "antalya", "izmir",
	"moscow", "saint petersburg", "new york", "los angeles", "chicago", "miami",
	"san francisco", "orlando", "washington dc", "toronto", "montreal",
	"vancouver", "quebec city", "mexico city", "cancun", "puerto vallarta",
	"rio de janeiro", "sao paulo", "buenos aires", "mendoza", "bariloche",
	"lima", "cusco", "machu picchu", "santiago", "valparaiso", "easter island",
	"bogota", "medellin", "cartagena", "cairo", "giza", "alexandria", "luxor",
	"dubai", "abu dhabi", "delhi", "mumbai", "bangalore", "jaipur", "goa",
	"beijing", "shanghai", "xian", "hong kong", "hangzhou",
	"tokyo", "osaka", "kyoto", "sapporo", "fukuoka", "seoul", "busan",
	"jeju island", "bangkok", "chiang mai", "phuket", "krabi", "koh samui",
	"ho chi minh city", "hanoi", "da nang", "hoi an", "jakarta", "bali",
	"yogyakarta", "lombok", "manila", "cebu", "palawan", "boracay",
	"kuala lumpur", "penang", "langkawi", "sydney", "melbourne", "brisbane",
	"perth", "gold coast", "auckland", "wellington", "queenstown",
	"cape town", "johannesburg", "marrakech", "fes", "casablanca",
	"chefchaouen", "lisbon", "porto", "sintra", "faro",
	"argentina", "australia", "austria", "belgium", "bhutan", "bolivia",
	"brazil", "bulgaria", "cambodia", "canada", "chile", "china", "colombia",
	"costa rica", "croatia", "cuba", "cyprus", "czech republic", "denmark",
	"ecuador", "egypt", "estonia", "ethiopia", "fiji", "finland", "france",
	"georgia", "germany", "ghana", "greece", "guatemala", "hungary", "iceland",
	"india", "indonesia", "ireland", "israel", "italy", "jamaica", "japan",
	"jordan", "kazakhstan", "kenya", "laos", "latvia", "lebanon", "lithuania",
	"madagascar", "malaysia", "maldives", "malta", "mauritius", "mexico",
	"mongolia", "montenegro", "morocco", "myanmar", "namibia", "nepal",
	"netherlands", "new zealand", "nicaragua", "norway", "oman", "panama",
	"paraguay", "peru", "philippines", "poland", "portugal", "qatar",
	"romania", "russia", "rwanda", "saudi arabia", "senegal", "serbia",
	"seychelles", "singapore", "slovakia", "slovenia", "south africa",
	"south korea", "spain", "sri lanka", "sweden", "switzerland", "taiwan",
	"tanzania", "thailand", "tunisia", "turkey", "uganda", "ukraine",
	"united arab emirates", "united kingdom", "united states", "uruguay",
	"uzbekistan", "vietnam", "zambia", "zimbabwe",
}
