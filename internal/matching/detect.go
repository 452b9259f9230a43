package matching

import (
	"regexp"
	"strings"
)

// DetectorConfig holds the weights and threshold of the recipe-content
// heuristic. These are tunables, not contracts: the defaults reflect
// scoring that works in practice, and deployments may adjust them through
// configuration rather than code changes.
type DetectorConfig struct {
	SectionKeywordWeight int `mapstructure:"section_keyword_weight"`
	CookingVerbWeight    int `mapstructure:"cooking_verb_weight"`
	ListMarkerWeight     int `mapstructure:"list_marker_weight"`
	MeasurementWeight    int `mapstructure:"measurement_weight"`
	Threshold            int `mapstructure:"threshold"`
}

// DefaultDetectorConfig returns the default weights and threshold.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		SectionKeywordWeight: 3,
		CookingVerbWeight:    1,
		ListMarkerWeight:     2,
		MeasurementWeight:    2,
		Threshold:            5,
	}
}

// sectionKeywords are strong signals that a text is recipe content.
var sectionKeywords = []string{
	"ingredients:", "instructions:", "directions:", "servings:",
	"prep time", "cook time",
}

var listMarkerRe = regexp.MustCompile(`(?m)^\s*(?:[-*•]|\d+[.)])\s+`)

// Detector scores free text for recipe-ness. It sits upstream of the
// parser: callers use it to decide whether a chat message or pasted text is
// worth parsing at all.
type Detector struct {
	cfg DetectorConfig
}

// NewDetector creates a detector with the given scoring configuration.
func NewDetector(cfg DetectorConfig) *Detector {
	return &Detector{cfg: cfg}
}

// Threshold returns the configured score threshold.
func (d *Detector) Threshold() int {
	return d.cfg.Threshold
}

// IsRecipeContent reports whether the text scores at or above the
// configured threshold.
func (d *Detector) IsRecipeContent(text string) bool {
	return d.Score(text) >= d.cfg.Threshold
}

// Score awards points per section keyword present, per cooking verb
// present, per structured list marker, and once for measurement-token
// presence.
func (d *Detector) Score(text string) int {
	lower := strings.ToLower(text)
	score := 0

	for _, kw := range sectionKeywords {
		if strings.Contains(lower, kw) {
			score += d.cfg.SectionKeywordWeight
		}
	}

	words := wordSet(lower)
	for _, verb := range cookingVerbs {
		if _, ok := words[verb]; ok {
			score += d.cfg.CookingVerbWeight
		}
	}

	score += len(listMarkerRe.FindAllString(text, -1)) * d.cfg.ListMarkerWeight

	if measurementTokenRe.MatchString(text) {
		score += d.cfg.MeasurementWeight
	}
	return score
}
