package matching

import (
	"math"
	"strings"
)

// CompareIngredients classifies each required ingredient as available or
// missing against the supplied pantry snapshot. Matching is symmetric
// normalized substring containment, so required "tomato" matches inventory
// "cherry tomatoes" and required "tomatoes" matches inventory "tomato".
// The first matching inventory entry in the snapshot's order is recorded as
// the availability evidence; availability is presence-only and performs no
// quantity-sufficiency check. The function is pure and never mutates its
// inputs.
func CompareIngredients(required []RequiredIngredient, inventory []InventoryItem) IngredientComparison {
	comparison := IngredientComparison{
		Available:     make([]AvailableIngredient, 0, len(required)),
		Missing:       make([]string, 0),
		TotalRequired: len(required),
	}

	normalized := make([]string, len(inventory))
	for i, item := range inventory {
		normalized[i] = Normalize(item.Name)
	}

	for _, req := range required {
		want := Normalize(req.Name)
		matched := false
		for i, have := range normalized {
			if namesMatch(want, have) {
				comparison.Available = append(comparison.Available, AvailableIngredient{
					Name:      req.Name,
					Inventory: inventory[i],
				})
				matched = true
				break
			}
		}
		if !matched {
			comparison.Missing = append(comparison.Missing, req.Name)
		}
	}
	return comparison
}

// namesMatch reports symmetric substring containment between two normalized
// names. Empty names never match. Containment can be too eager (required
// "egg" matches inventory "eggplant"); that imprecision is pinned by tests
// and documented rather than silently changed.
func namesMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Coverage returns the percentage of required ingredients present in the
// pantry, rounded to the nearest integer. An empty requirement list is
// vacuously fully covered.
func (c IngredientComparison) Coverage() int {
	if c.TotalRequired == 0 {
		return 100
	}
	return int(math.Round(float64(len(c.Available)) / float64(c.TotalRequired) * 100))
}
