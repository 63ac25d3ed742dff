package domain

// BudgetRange is an optional min/max budget with currency.
type BudgetRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// PreferenceProfile is the normalized representation of what the user
// wants. Zero values mean "no preference" for every field.
type PreferenceProfile struct {
	Cuisines     []string     `json:"cuisines,omitempty"`
	Price        PriceBand    `json:"price,omitempty"`
	Atmosphere   string       `json:"atmosphere,omitempty"`
	PartySize    int          `json:"party_size,omitempty"` // 1-20
	Dietary      []string     `json:"dietary,omitempty"`
	Style        TravelStyle  `json:"style,omitempty"`
	Interests    []string     `json:"interests,omitempty"`
	Budget       *BudgetRange `json:"budget,omitempty"`
}

// Merge overlays other onto p, field by field. Empty fields in other never
// clobber values already set; tag lists are unioned preserving order.
func (p PreferenceProfile) Merge(other PreferenceProfile) PreferenceProfile {
	out := p
	out.Cuisines = unionTags(p.Cuisines, other.Cuisines)
	if other.Price != "" {
		out.Price = other.Price
	}
	if other.Atmosphere != "" {
		out.Atmosphere = other.Atmosphere
	}
	if other.PartySize > 0 {
		out.PartySize = other.PartySize
	}
	out.Dietary = unionTags(p.Dietary, other.Dietary)
	if other.Style != "" {
		out.Style = other.Style
	}
	out.Interests = unionTags(p.Interests, other.Interests)
	if other.Budget != nil {
		out.Budget = other.Budget
	}
	return out
}

// WithoutFields returns a copy with the named fields cleared, so the scorer
// treats them as unset. Used when conversation context marks fields stale.
func (p PreferenceProfile) WithoutFields(fields ...ProfileField) PreferenceProfile {
	out := p
	for _, f := range fields {
		switch f {
		case FieldCuisine:
			out.Cuisines = nil
		case FieldPrice:
			out.Price = ""
		case FieldAtmosphere:
			out.Atmosphere = ""
		}
	}
	return out
}

// DesiredTags returns the category tags the profile asks for: cuisines plus
// interests. The scorer matches candidates against this combined set.
func (p PreferenceProfile) DesiredTags() []string {
	return unionTags(p.Cuisines, p.Interests)
}

func unionTags(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, t := range a {
		if t != "" && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, t := range b {
		if t != "" && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ConversationContext carries the pieces of conversational state that
// influence a decision: which stage the dialogue is in, which candidates
// were already recommended, and which profile fields went stale since they
// were captured. It never changes the scoring formula itself.
type ConversationContext struct {
	Stage            ConversationStage `json:"stage,omitempty"`
	PriorWinnerIDs   []string          `json:"prior_winner_ids,omitempty"`
	StaleFields      []ProfileField    `json:"stale_fields,omitempty"`
}
