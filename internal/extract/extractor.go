// Package extract turns free-form trip chatter into structured preference
// updates. Extraction is an ordered table of (pattern, field mutation)
// rules, so behavior is deterministic, unit-testable, and extendable
// without touching the scoring logic that consumes the profile.
package extract

import (
	"regexp"

	"github.com/alexanderramin/wayfare/internal/domain"
)

// Rule matches one phrase family and applies a single field mutation.
type Rule struct {
	Name    string
	pattern *regexp.Regexp
	apply   func(p *domain.PreferenceProfile, match []string)
}

// Extractor runs its rule table in order over input text. Rules earlier in
// the table win when two would set the same scalar field.
type Extractor struct {
	rules []Rule
}

func New() *Extractor {
	return &Extractor{rules: defaultRules()}
}

// Extract parses text into a fresh profile, returning the names of the
// rules that fired in table order.
func (e *Extractor) Extract(text string) (domain.PreferenceProfile, []string) {
	var p domain.PreferenceProfile
	var fired []string
	for _, r := range e.rules {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		r.apply(&p, m)
		fired = append(fired, r.Name)
	}
	return p, fired
}

// ExtractInto merges what the text yields into base: newly mentioned scalar
// fields replace older values, tag lists are unioned, and silence leaves
// base untouched.
func (e *Extractor) ExtractInto(base domain.PreferenceProfile, text string) (domain.PreferenceProfile, []string) {
	found, fired := e.Extract(text)
	return base.Merge(found), fired
}
