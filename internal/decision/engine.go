package decision

import (
	"github.com/alexanderramin/wayfare/internal/config"
	"github.com/alexanderramin/wayfare/internal/domain"
)

// Decision is the engine's output: a winner, a small alternative set, and a
// deterministic justification. Immutable once returned; never persisted by
// the engine itself.
type Decision struct {
	Winner       domain.Candidate   `json:"winner"`
	Alternatives []domain.Candidate `json:"alternatives,omitempty"`
	Reasoning    string             `json:"reasoning"`
	Confidence   float64            `json:"confidence"` // winner's weighted total, [0,1]
	Breakdown    ScoreBreakdown     `json:"breakdown"`
}

// Engine ranks candidates and selects a winner. Stateless; construct once
// and share freely across concurrent requests.
type Engine struct {
	scorer          *Scorer
	floor           float64
	maxAlternatives int
}

func NewEngine(cfg config.Scoring) *Engine {
	return &Engine{
		scorer:          NewScorer(cfg),
		floor:           cfg.ViabilityFloor,
		maxAlternatives: cfg.MaxAlternatives,
	}
}

// Scorer exposes the engine's scorer for callers that need raw breakdowns,
// such as the day builder's per-slot picks.
func (e *Engine) Scorer() *Scorer {
	return e.scorer
}

// Rank scores every candidate against the effective profile and returns
// them in canonical order. Conversation context only decides which profile
// fields count as set; it never alters the scoring formula. While the
// dialogue is still exploring, the narrowing fields (price, atmosphere)
// are not yet trusted and count as unset too.
func (e *Engine) Rank(
	candidates []domain.Candidate,
	profile domain.PreferenceProfile,
	loc *domain.Coordinates,
	convCtx *domain.ConversationContext,
) []Ranked {
	effective := profile
	if convCtx != nil {
		if len(convCtx.StaleFields) > 0 {
			effective = effective.WithoutFields(convCtx.StaleFields...)
		}
		if convCtx.Stage == domain.StageExploring {
			effective = effective.WithoutFields(domain.FieldPrice, domain.FieldAtmosphere)
		}
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, Ranked{
			Candidate: c,
			Breakdown: e.scorer.Score(c, effective, loc),
		})
	}
	SortRanked(ranked)
	return ranked
}

// SelectBest ranks the candidates and picks a winner. It fails with
// NoCandidatesError on empty input and NoSuitableOptionsError when even the
// top candidate sits below the viability floor. The two must be surfaced
// differently: the latter is recoverable by relaxing preferences and
// carries the best-effort candidate.
func (e *Engine) SelectBest(
	candidates []domain.Candidate,
	profile domain.PreferenceProfile,
	loc *domain.Coordinates,
	convCtx *domain.ConversationContext,
) (*Decision, error) {
	if len(candidates) == 0 {
		return nil, &NoCandidatesError{}
	}

	ranked := e.Rank(candidates, profile, loc, convCtx)
	top := ranked[0]

	if top.Breakdown.Total < e.floor {
		return nil, &NoSuitableOptionsError{
			Best:      top.Candidate,
			Breakdown: top.Breakdown,
			Floor:     e.floor,
		}
	}

	// Venues recommended on earlier turns are not re-offered as
	// alternatives. A prior winner can still win outright.
	prior := make(map[string]bool)
	if convCtx != nil {
		for _, id := range convCtx.PriorWinnerIDs {
			prior[id] = true
		}
	}
	alternatives := make([]domain.Candidate, 0, e.maxAlternatives)
	for _, r := range ranked[1:] {
		if len(alternatives) >= e.maxAlternatives {
			break
		}
		if prior[r.Candidate.ID] {
			continue
		}
		alternatives = append(alternatives, r.Candidate)
	}

	return &Decision{
		Winner:       top.Candidate,
		Alternatives: alternatives,
		Reasoning:    BuildReasoning(top.Candidate, top.Breakdown, loc),
		Confidence:   top.Breakdown.Total,
		Breakdown:    top.Breakdown,
	}, nil
}
