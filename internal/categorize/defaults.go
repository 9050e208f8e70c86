package categorize

// FallbackCategory is the catch-all label for unmatched descriptions.
const FallbackCategory = "Other"

// DefaultRules returns the built-in keyword rules, in matching order.
func DefaultRules() []Rule {
	return []Rule{
		{Category: "Groceries", Keywords: []string{"grocery", "supermarket", "safeway", "kroger", "whole foods", "trader joe", "aldi", "walmart", "costco", "food lion", "publix"}},
		{Category: "Food & Dining", Keywords: []string{"restaurant", "cafe", "coffee", "starbucks", "mcdonald", "uber eats", "doordash", "grubhub", "chipotle", "subway", "pizza", "dining", "bar ", "pub"}},
		{Category: "Transport", Keywords: []string{"gas", "fuel", "uber", "lyft", "parking", "transit", "metro", "bus", "train", "toll", "shell", "chevron", "exxon", "mobil"}},
		{Category: "Shopping", Keywords: []string{"amazon", "target", "ebay", "etsy", "best buy", "apple.com", "shop", "store"}},
		{Category: "Bills & Utilities", Keywords: []string{"electric", "water", "gas utility", "internet", "phone", "mobile", "verizon", "att", "comcast", "insurance", "rent", "mortgage"}},
		{Category: "Entertainment", Keywords: []string{"netflix", "spotify", "hulu", "disney", "movie", "cinema", "game", "steam", "playstation", "xbox", "youtube"}},
		{Category: "Health", Keywords: []string{"pharmacy", "cvs", "walgreens", "doctor", "hospital", "medical", "dental", "gym", "health"}},
		{Category: FallbackCategory, Keywords: nil},
	}
}

// DefaultRuleset returns a Ruleset over the built-in rules.
func DefaultRuleset() *Ruleset {
	return NewRuleset(DefaultRules(), FallbackCategory)
}

// categoryColors are display colors for charts, keyed by category label.
var categoryColors = map[string]string{
	"Food & Dining":     "#34d399",
	"Transport":         "#38bdf8",
	"Shopping":          "#a78bfa",
	"Bills & Utilities": "#fbbf24",
	"Entertainment":     "#f472b6",
	"Health":            "#2dd4bf",
	"Groceries":         "#4ade80",
	FallbackCategory:    "#94a3b8",
}

// Color returns the display color for a category, defaulting to the
// fallback color for unknown labels.
func Color(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return categoryColors[FallbackCategory]
}
