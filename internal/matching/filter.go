package matching

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects the ordering of a filtered recipe collection.
type SortOrder string

const (
	SortDateDesc SortOrder = "date-desc"
	SortDateAsc  SortOrder = "date-asc"
	SortNameAsc  SortOrder = "name-asc"
	SortNameDesc SortOrder = "name-desc"
	SortTimeAsc  SortOrder = "time-asc"
	SortTimeDesc SortOrder = "time-desc"
)

// DateRange is an inclusive createdAt interval. A nil side leaves that end
// open, so a range with only From set means "on or after".
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Filters are the facade's criteria. SearchQuery is a single string matched
// with OR semantics across fields; SelectedTags use AND semantics, which is
// intentionally stricter than the search.
type Filters struct {
	SearchQuery  string
	SelectedTags []string
	DateRange    *DateRange
	SortBy       SortOrder
}

// Filter applies search, tag, and date criteria to recipe collections and
// orders the result. Name ordering is locale-aware collation via x/text.
type Filter struct {
	locale language.Tag
}

// NewFilter creates a filter facade for the given BCP 47 locale. An
// unparseable locale falls back to English.
func NewFilter(locale string) *Filter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Filter{locale: tag}
}

// Apply filters the collection and then stable-sorts the survivors.
// Sorting always happens after filtering, never before. The input slice is
// not modified.
func (f *Filter) Apply(recipes []Recipe, filters Filters) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if !matchesSearch(r, filters.SearchQuery) {
			continue
		}
		if !hasAllTags(r, filters.SelectedTags) {
			continue
		}
		if !inDateRange(r.CreatedAt, filters.DateRange) {
			continue
		}
		out = append(out, r)
	}
	f.sortRecipes(out, filters.SortBy)
	return out
}

// CollectTags returns the deduplicated, case-folded, sorted set of tags
// across a collection, for building filter UIs. The output is independent
// of input order.
func CollectTags(recipes []Recipe) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, r := range recipes {
		for _, tag := range r.Tags {
			key := strings.ToLower(strings.TrimSpace(tag))
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, key)
		}
	}
	sort.Strings(tags)
	return tags
}

// matchesSearch is a case-insensitive substring test against title, notes,
// any resolved ingredient name, or any tag. A single query string, OR
// across fields, no tokenization or ranking.
func matchesSearch(r Recipe, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Notes), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Canonical().Name), query) {
			return true
		}
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// hasAllTags requires every selected tag to be present on the recipe,
// case-insensitive exact match.
func hasAllTags(r Recipe, selected []string) bool {
	for _, want := range selected {
		found := false
		for _, tag := range r.Tags {
			if strings.EqualFold(strings.TrimSpace(tag), strings.TrimSpace(want)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// inDateRange is an inclusive interval test; nil sides are open.
func inDateRange(createdAt time.Time, dr *DateRange) bool {
	if dr == nil {
		return true
	}
	if dr.From != nil && createdAt.Before(*dr.From) {
		return false
	}
	if dr.To != nil && createdAt.After(*dr.To) {
		return false
	}
	return true
}

func (f *Filter) sortRecipes(recipes []Recipe, order SortOrder) {
	switch order {
	case SortDateAsc:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].CreatedAt.Before(recipes[j].CreatedAt)
		})
	case SortNameAsc, SortNameDesc:
		// Collators buffer internally, so build one per sort instead of
		// sharing across goroutines.
		collator := collate.New(f.locale)
		asc := order == SortNameAsc
		sort.SliceStable(recipes, func(i, j int) bool {
			cmp := collator.CompareString(recipes[i].Title, recipes[j].Title)
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	case SortTimeAsc:
		sort.SliceStable(recipes, func(i, j int) bool {
			return totalTimeMinutes(recipes[i]) < totalTimeMinutes(recipes[j])
		})
	case SortTimeDesc:
		sort.SliceStable(recipes, func(i, j int) bool {
			return totalTimeMinutes(recipes[i]) > totalTimeMinutes(recipes[j])
		})
	case SortDateDesc:
		fallthrough
	default:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].CreatedAt.After(recipes[j].CreatedAt)
		})
	}
}

// totalTimeMinutes is prep plus cook time; unset values are zero.
func totalTimeMinutes(r Recipe) int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}
