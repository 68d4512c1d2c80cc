package score

// Static category tables and designated supplement codes. These are fixed
// configuration, not derived data; matching is a case-sensitive substring
// test against meal names.

// Keyword categories.
const (
	CategoryFermented  = "fermented"
	CategoryPolyphenol = "polyphenol"
)

// Keywords maps each category to its ordered match terms.
var Keywords = map[string][]string{
	CategoryFermented: {
		"yogurt", "kefir", "kimchi", "sauerkraut", "miso",
		"natto", "tempeh", "kombucha", "pickles",
	},
	CategoryPolyphenol: {
		"berries", "blueberry", "green tea", "cocoa", "dark chocolate",
		"olive", "grapes", "coffee", "red wine",
	},
}

// ProbioticCodes are the four checks worth 2 points each, up to 8 per day.
var ProbioticCodes = []string{
	"probiotic_morning", "probiotic_noon", "probiotic_evening", "lactoferrin",
}

// PrebioticCodes are the three checks that each stand in for about 2.75 g
// of missing dietary fiber.
var PrebioticCodes = []string{"inulin", "psyllium", "oligosaccharide"}

// MagnesiumCode is consulted by the deep-sleep hint branch.
const MagnesiumCode = "magnesium"

// FiberTargetGrams is the daily fiber goal.
const FiberTargetGrams = 21.0

// fiberPerPrebioticDose is the fiber each prebiotic check compensates.
const fiberPerPrebioticDose = 2.75
