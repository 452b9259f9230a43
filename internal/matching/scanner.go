package matching

import "strings"

// Scanner tests recipes against allergen keywords and dietary-restriction
// rules. It holds only its rule tables and is safe for concurrent use.
type Scanner struct {
	rules DietRules
}

// NewScanner creates a scanner with the given rule tables.
func NewScanner(rules DietRules) *Scanner {
	return &Scanner{rules: rules}
}

// ContainsAllergens scans the recipe title, every resolved ingredient name,
// and every tag for each allergen term, case-insensitively. The scan is
// exhaustive: it keeps going after the first hit so the result lists every
// matched allergen, deduplicated, in the order the allergens were given.
// An empty allergen list is trivially safe.
func (s *Scanner) ContainsAllergens(r Recipe, allergens []string) AllergenCheckResult {
	result := AllergenCheckResult{Safe: true, FoundAllergens: []string{}}
	if len(allergens) == 0 {
		return result
	}

	haystacks := searchableFields(r)
	seen := make(map[string]struct{}, len(allergens))
	for _, allergen := range allergens {
		term := Normalize(allergen)
		if term == "" {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		for _, hay := range haystacks {
			if strings.Contains(hay, term) {
				seen[term] = struct{}{}
				result.FoundAllergens = append(result.FoundAllergens, allergen)
				break
			}
		}
	}

	result.Safe = len(result.FoundAllergens) == 0
	return result
}

// MeetsDietaryRestrictions checks the recipe against each restriction in
// order. A recipe whose own tags already declare the restriction (exact
// case-insensitive match) is trusted outright and skips the keyword rules
// for that restriction. Unknown restrictions never produce violations.
func (s *Scanner) MeetsDietaryRestrictions(r Recipe, restrictions []string) DietCheckResult {
	result := DietCheckResult{Compatible: true, Violations: []string{}}
	if len(restrictions) == 0 {
		return result
	}

	ingredients := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, Normalize(ing.Canonical().Name))
	}
	tags := make([]string, 0, len(r.Tags))
	for _, tag := range r.Tags {
		tags = append(tags, Normalize(tag))
	}

	seen := make(map[string]struct{}, len(restrictions))
	for _, restriction := range restrictions {
		name := strings.ToLower(strings.TrimSpace(restriction))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if tagDeclares(r.Tags, name) {
			continue
		}
		if s.violates(r, name, ingredients, tags) {
			result.Violations = append(result.Violations, restriction)
		}
	}

	result.Compatible = len(result.Violations) == 0
	return result
}

// FilterSafe keeps only the recipes that are both allergen-safe and
// compatible with every restriction, and reports how many were dropped.
func (s *Scanner) FilterSafe(recipes []Recipe, allergens, restrictions []string) SafetyFilterResult {
	filtered := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !s.ContainsAllergens(r, allergens).Safe {
			continue
		}
		if !s.MeetsDietaryRestrictions(r, restrictions).Compatible {
			continue
		}
		filtered = append(filtered, r)
	}
	return SafetyFilterResult{
		FilteredRecipes: filtered,
		RemovedCount:    len(recipes) - len(filtered),
	}
}

// violates applies the restriction-specific rule. The keyword diets scan
// normalized ingredient names (and, for vegan, tags); the numeric diets
// compare the recipe's macro fields against the configured thresholds and
// skip recipes where the field is absent.
func (s *Scanner) violates(r Recipe, name string, ingredients, tags []string) bool {
	switch name {
	case RestrictionVegan:
		animal := concat(
			s.rules.MeatKeywords, s.rules.SeafoodKeywords, s.rules.DairyKeywords,
			s.rules.EggKeywords, s.rules.OtherAnimalKeywords,
		)
		tagged := concat(s.rules.MeatKeywords, s.rules.DairyKeywords, s.rules.EggKeywords)
		return anyKeyword(ingredients, animal) || anyKeyword(tags, tagged)
	case RestrictionVegetarian:
		return anyKeyword(ingredients, concat(s.rules.MeatKeywords, s.rules.SeafoodKeywords))
	case RestrictionPescatarian:
		return anyKeyword(ingredients, s.pescatarianKeywords())
	case RestrictionGlutenFree:
		return anyKeyword(ingredients, s.rules.GlutenKeywords)
	case RestrictionDairyFree:
		return anyKeyword(ingredients, s.rules.DairyKeywords)
	case RestrictionKeto, RestrictionLowCarb:
		return r.Carbs != nil && *r.Carbs > s.rules.CarbLimitGrams
	case RestrictionLowFat:
		return r.Fats != nil && *r.Fats > s.rules.FatLimitGrams
	default:
		return false
	}
}

// pescatarianKeywords is the meat table minus the seafood exception list.
func (s *Scanner) pescatarianKeywords() []string {
	exceptions := make(map[string]struct{}, len(s.rules.SeafoodKeywords))
	for _, k := range s.rules.SeafoodKeywords {
		exceptions[k] = struct{}{}
	}
	keywords := make([]string, 0, len(s.rules.MeatKeywords))
	for _, k := range s.rules.MeatKeywords {
		if _, skip := exceptions[k]; !skip {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// searchableFields returns the normalized title, ingredient names, and tags
// of a recipe, in scan order.
func searchableFields(r Recipe) []string {
	fields := make([]string, 0, 1+len(r.Ingredients)+len(r.Tags))
	fields = append(fields, Normalize(r.Title))
	for _, ing := range r.Ingredients {
		fields = append(fields, Normalize(ing.Canonical().Name))
	}
	for _, tag := range r.Tags {
		fields = append(fields, Normalize(tag))
	}
	return fields
}

// tagDeclares reports whether the recipe's raw tags contain the restriction
// name as an exact case-insensitive match.
func tagDeclares(tags []string, name string) bool {
	for _, tag := range tags {
		if strings.EqualFold(strings.TrimSpace(tag), name) {
			return true
		}
	}
	return false
}

func anyKeyword(fields, keywords []string) bool {
	for _, field := range fields {
		for _, keyword := range keywords {
			if keyword != "" && strings.Contains(field, keyword) {
				return true
			}
		}
	}
	return false
}

func concat(lists ...[]string) []string {
	size := 0
	for _, l := range lists {
		size += len(l)
	}
	out := make([]string, 0, size)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
