package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 12, 0, 0, 0, time.UTC)
}

func testRecipes() []Recipe {
	return []Recipe{
		{
			Title:           "Avocado Toast",
			Ingredients:     []RecipeIngredient{{Item: "avocado"}, {Item: "sourdough bread"}},
			Tags:            []string{"breakfast", "quick"},
			Notes:           "great with chili flakes",
			CreatedAt:       day(1),
			PrepTimeMinutes: 5,
			CookTimeMinutes: 5,
		},
		{
			Title:           "Beef Stew",
			Ingredients:     []RecipeIngredient{{Item: "beef"}, {Item: "carrots"}},
			Tags:            []string{"dinner", "Comfort"},
			CreatedAt:       day(3),
			PrepTimeMinutes: 20,
			CookTimeMinutes: 120,
		},
		{
			Title:       "Chickpea Salad",
			Ingredients: []RecipeIngredient{{Item: "chickpeas"}, {Item: "cucumber"}},
			Tags:        []string{"vegan", "quick", "lunch"},
			CreatedAt:   day(5),
			// No timing fields: treated as zero in time sorts.
		},
	}
}

func TestFilterSearch(t *testing.T) {
	f := NewFilter("en")

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"EmptyQueryMatchesAll", "", []string{"Chickpea Salad", "Beef Stew", "Avocado Toast"}},
		{"ByTitle", "stew", []string{"Beef Stew"}},
		{"ByNotes", "chili", []string{"Avocado Toast"}},
		{"ByIngredient", "cucumber", []string{"Chickpea Salad"}},
		{"ByTag", "breakfast", []string{"Avocado Toast"}},
		{"CaseInsensitive", "BEEF", []string{"Beef Stew"}},
		{"NoMatch", "sushi", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := f.Apply(testRecipes(), Filters{SearchQuery: tc.query})
			titles := make([]string, 0, len(got))
			for _, r := range got {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tc.expected, titles)
		})
	}
}

func TestFilterTagsAreAndSemantics(t *testing.T) {
	f := NewFilter("en")

	// A recipe tagged only "vegan" is excluded when both "vegan" and
	// "quick" are selected; it needs all of them.
	got := f.Apply(testRecipes(), Filters{SelectedTags: []string{"vegan", "quick"}})
	require.Len(t, got, 1)
	assert.Equal(t, "Chickpea Salad", got[0].Title)

	got = f.Apply(testRecipes(), Filters{SelectedTags: []string{"quick"}})
	assert.Len(t, got, 2)

	// Case-insensitive exact match, not substring.
	got = f.Apply(testRecipes(), Filters{SelectedTags: []string{"comfort"}})
	require.Len(t, got, 1)
	assert.Equal(t, "Beef Stew", got[0].Title)

	got = f.Apply(testRecipes(), Filters{SelectedTags: []string{"comf"}})
	assert.Empty(t, got)
}

func TestFilterDateRange(t *testing.T) {
	f := NewFilter("en")
	from := day(3)
	to := day(4)

	t.Run("InclusiveInterval", func(t *testing.T) {
		got := f.Apply(testRecipes(), Filters{DateRange: &DateRange{From: &from, To: &to}})
		require.Len(t, got, 1)
		assert.Equal(t, "Beef Stew", got[0].Title)
	})

	t.Run("OnlyFromMeansOnOrAfter", func(t *testing.T) {
		got := f.Apply(testRecipes(), Filters{DateRange: &DateRange{From: &from}})
		assert.Len(t, got, 2)
	})

	t.Run("OnlyToMeansOnOrBefore", func(t *testing.T) {
		got := f.Apply(testRecipes(), Filters{DateRange: &DateRange{To: &to}})
		assert.Len(t, got, 2)
	})
}

func TestFilterSortOrders(t *testing.T) {
	f := NewFilter("en")

	titles := func(order SortOrder) []string {
		got := f.Apply(testRecipes(), Filters{SortBy: order})
		out := make([]string, len(got))
		for i, r := range got {
			out[i] = r.Title
		}
		return out
	}

	assert.Equal(t, []string{"Chickpea Salad", "Beef Stew", "Avocado Toast"}, titles(SortDateDesc))
	assert.Equal(t, []string{"Avocado Toast", "Beef Stew", "Chickpea Salad"}, titles(SortDateAsc))
	assert.Equal(t, []string{"Avocado Toast", "Beef Stew", "Chickpea Salad"}, titles(SortNameAsc))
	assert.Equal(t, []string{"Chickpea Salad", "Beef Stew", "Avocado Toast"}, titles(SortNameDesc))
	// Chickpea Salad has no timing fields, so it sorts as zero minutes.
	assert.Equal(t, []string{"Chickpea Salad", "Avocado Toast", "Beef Stew"}, titles(SortTimeAsc))
	assert.Equal(t, []string{"Beef Stew", "Avocado Toast", "Chickpea Salad"}, titles(SortTimeDesc))

	// Unknown order falls back to newest-first.
	assert.Equal(t, []string{"Chickpea Salad", "Beef Stew", "Avocado Toast"}, titles(SortOrder("bogus")))
}

func TestFilterSortIsStable(t *testing.T) {
	f := NewFilter("en")
	same := day(10)
	recipes := []Recipe{
		{Title: "First", CreatedAt: same},
		{Title: "Second", CreatedAt: same},
		{Title: "Third", CreatedAt: same},
	}

	got := f.Apply(recipes, Filters{SortBy: SortDateDesc})

	require.Len(t, got, 3)
	assert.Equal(t, "First", got[0].Title)
	assert.Equal(t, "Second", got[1].Title)
	assert.Equal(t, "Third", got[2].Title)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	f := NewFilter("en")
	recipes := testRecipes()

	f.Apply(recipes, Filters{SortBy: SortNameDesc})

	assert.Equal(t, "Avocado Toast", recipes[0].Title)
	assert.Equal(t, "Beef Stew", recipes[1].Title)
}

func TestFilterInvalidLocaleFallsBack(t *testing.T) {
	f := NewFilter("not a locale")

	got := f.Apply(testRecipes(), Filters{SortBy: SortNameAsc})

	require.Len(t, got, 3)
	assert.Equal(t, "Avocado Toast", got[0].Title)
}

func TestCollectTags(t *testing.T) {
	t.Run("DeduplicatedAndSorted", func(t *testing.T) {
		tags := CollectTags(testRecipes())
		assert.Equal(t, []string{"breakfast", "comfort", "dinner", "lunch", "quick", "vegan"}, tags)
	})

	t.Run("OrderIndependent", func(t *testing.T) {
		recipes := testRecipes()
		reversed := []Recipe{recipes[2], recipes[1], recipes[0]}
		assert.Equal(t, CollectTags(recipes), CollectTags(reversed))
	})

	t.Run("EmptyCollection", func(t *testing.T) {
		assert.Empty(t, CollectTags(nil))
	})
}
