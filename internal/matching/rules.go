package matching

// Restrictions the scanner understands. Any other restriction string is a
// deliberate no-op: it never produces a violation. That coverage gap is a
// documented design decision, not a bug, so callers can pass user-defined
// restriction names without spurious rejections.
const (
	RestrictionVegan       = "vegan"
	RestrictionVegetarian  = "vegetarian"
	RestrictionPescatarian = "pescatarian"
	RestrictionGlutenFree  = "gluten-free"
	RestrictionDairyFree   = "dairy-free"
	RestrictionKeto        = "keto"
	RestrictionLowCarb     = "low-carb"
	RestrictionLowFat      = "low-fat"
)

// DietRules carries the keyword tables and numeric thresholds the scanner
// applies. The tables are injected configuration rather than hard-coded
// call-site literals so deployments can extend or localize them without
// code changes. Keywords must be lower-case singular (the normalized form).
type DietRules struct {
	// MeatKeywords violate vegan, vegetarian, and (minus the seafood
	// exceptions) pescatarian diets.
	MeatKeywords []string

	// SeafoodKeywords violate vegan and vegetarian diets and are the
	// explicit exception list for pescatarian.
	SeafoodKeywords []string

	// DairyKeywords violate vegan and dairy-free diets.
	DairyKeywords []string

	// EggKeywords violate vegan only; vegetarian diets allow eggs.
	EggKeywords []string

	// OtherAnimalKeywords (honey, gelatin, lard) violate vegan only.
	OtherAnimalKeywords []string

	// GlutenKeywords violate gluten-free diets.
	GlutenKeywords []string

	// CarbLimitGrams is the keto/low-carb threshold. A recipe without a
	// carbs value is treated as unknown and assumed compliant.
	CarbLimitGrams float64

	// FatLimitGrams is the low-fat threshold, same missing-data policy.
	FatLimitGrams float64
}

// DefaultDietRules returns the built-in keyword tables and thresholds.
func DefaultDietRules() DietRules {
	return DietRules{
		MeatKeywords: []string{
			"beef", "pork", "chicken", "turkey", "lamb", "veal", "duck",
			"bacon", "ham", "sausage", "steak", "meatball", "meat",
			"chorizo", "salami", "pepperoni", "prosciutto", "venison",
		},
		SeafoodKeywords: []string{
			"fish", "salmon", "tuna", "cod", "trout", "halibut", "sardine",
			"anchovy", "shrimp", "prawn", "crab", "lobster", "scallop",
			"oyster", "mussel", "clam", "squid", "octopus", "seafood",
		},
		DairyKeywords: []string{
			"milk", "cheese", "butter", "cream", "yogurt", "yoghurt",
			"whey", "casein", "ghee",
		},
		EggKeywords: []string{
			"egg", "mayonnaise", "aioli",
		},
		OtherAnimalKeywords: []string{
			"honey", "gelatin", "lard", "tallow",
		},
		GlutenKeywords: []string{
			"wheat", "barley", "rye", "flour", "bread", "pasta", "noodle",
			"couscous", "semolina", "bulgur", "farro", "cracker", "crouton",
		},
		CarbLimitGrams: 20,
		FatLimitGrams:  15,
	}
}
