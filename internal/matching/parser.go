package matching

import (
	"regexp"
	"strings"
)

// measurementUnits are the tokens the parser and content detector treat as
// evidence that a line is an ingredient rather than prose. Longer spellings
// come first so the regex alternation prefers them.
var measurementUnits = []string{
	"tablespoons", "tablespoon", "tbsp",
	"teaspoons", "teaspoon", "tsp",
	"kilograms", "kilogram", "kg",
	"milliliters", "milliliter", "ml",
	"litres", "litre", "liters", "liter", "l",
	"grams", "gram", "g",
	"ounces", "ounce", "oz",
	"pounds", "pound", "lbs", "lb",
	"cups", "cup",
	"pinches", "pinch",
	"dashes", "dash",
	"cloves", "clove",
	"slices", "slice",
	"pieces", "piece",
	"cans", "can",
	"sticks", "stick",
}

// quantityPattern accepts integers, decimals, simple fractions ("1/2"), and
// mixed numbers ("1 1/2").
const quantityPattern = `(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?)`

var (
	ingredientLineRe = regexp.MustCompile(
		`(?i)^` + quantityPattern + `\s*(` + strings.Join(measurementUnits, "|") + `)\b\.?\s*(?:of\s+)?(.*)$`)

	measurementTokenRe = regexp.MustCompile(
		`(?i)\b` + quantityPattern + `\s*(` + strings.Join(measurementUnits, "|") + `)\b`)

	bulletRe = regexp.MustCompile(`^\s*(?:[-*•–]|\d+[.)])\s*`)

	ingredientsHeaderRe = regexp.MustCompile(`(?i)^\s*ingredients\s*:\s*(.*)$`)
	sectionHeaderRe     = regexp.MustCompile(`(?i)^\s*(instructions?|directions?|steps|method|preparation|notes?|nutrition|equipment)\s*:`)
)

// cookingVerbs mark lines that read like instructions. A line containing
// one of these as a whole word and carrying no measurement token is
// discarded by the parser and scored by the content detector.
var cookingVerbs = []string{
	"preheat", "bake", "whisk", "stir", "mix", "combine", "cook", "simmer",
	"boil", "fry", "saute", "sauté", "roast", "grill", "chop", "dice",
	"knead", "fold", "drain", "season", "serve", "heat", "pour", "spread",
	"garnish", "sprinkle", "transfer", "repeat",
}

// ParseIngredients extracts ingredient requirements from unstructured
// recipe text. It prefers an explicit "Ingredients:" block when present and
// otherwise scans the whole text line by line. It never fails: an empty
// result means no ingredients could be identified, which callers must treat
// as "could not parse", not as a zero-ingredient recipe.
func ParseIngredients(text string) []RequiredIngredient {
	lines := candidateLines(text)
	required := make([]RequiredIngredient, 0, len(lines))
	for _, line := range lines {
		if ing, ok := parseIngredientLine(line); ok {
			required = append(required, ing)
		}
	}
	return required
}

// candidateLines returns the lines of the "Ingredients:" block when the
// text has one, or every line otherwise. The block extends to the next
// section header ("Instructions:", "Notes:", ...) or the end of the text.
func candidateLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := ingredientsHeaderRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var block []string
		if rest := strings.TrimSpace(m[1]); rest != "" {
			block = append(block, rest)
		}
		for _, next := range lines[i+1:] {
			if sectionHeaderRe.MatchString(next) {
				break
			}
			block = append(block, next)
		}
		return block
	}
	return lines
}

// parseIngredientLine attempts to split one candidate line into
// (quantity, unit, name). Lines without a measurement token become a bare
// name unless they look like an instruction or a section header.
func parseIngredientLine(line string) (RequiredIngredient, bool) {
	line = bulletRe.ReplaceAllString(strings.TrimSpace(line), "")
	line = strings.TrimSpace(line)
	if line == "" || strings.HasSuffix(line, ":") {
		return RequiredIngredient{}, false
	}

	// Measurement leads the line: "2 cups flour", "1/2 tsp of salt".
	if m := ingredientLineRe.FindStringSubmatch(line); m != nil {
		name := strings.TrimSpace(m[3])
		if name == "" {
			return RequiredIngredient{}, false
		}
		return RequiredIngredient{
			Name:     name,
			Quantity: collapseSpaces(m[1]),
			Unit:     strings.ToLower(m[2]),
		}, true
	}

	// Measurement embedded mid-line: "Add 2 cups flour to the bowl" still
	// yields an ingredient; take the text after the token as the name.
	if loc := measurementTokenRe.FindStringSubmatchIndex(line); loc != nil {
		m := measurementTokenRe.FindStringSubmatch(line)
		name := strings.TrimSpace(line[loc[1]:])
		name = strings.TrimSpace(strings.TrimPrefix(name, "of "))
		if name != "" {
			return RequiredIngredient{
				Name:     name,
				Quantity: collapseSpaces(m[1]),
				Unit:     strings.ToLower(m[2]),
			}, true
		}
		return RequiredIngredient{}, false
	}

	if hasCookingVerb(line) {
		return RequiredIngredient{}, false
	}
	return RequiredIngredient{Name: line}, true
}

// hasCookingVerb reports whether the line contains a cooking verb as a
// whole word.
func hasCookingVerb(line string) bool {
	words := wordSet(strings.ToLower(line))
	for _, verb := range cookingVerbs {
		if _, ok := words[verb]; ok {
			return true
		}
	}
	return false
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
