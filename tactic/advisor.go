package tactic

import (
	"math/rand/v2"
	"slices"
)

// Advisor selects tactic scenarios for newly lit positions
type Advisor struct {
	rng     *rand.Rand
	entries []Scenario
}

// NewAdvisor creates an advisor drawing from the built-in catalog
func NewAdvisor(rng *rand.Rand) *Advisor {
	return &Advisor{
		rng:     rng,
		entries: Catalog(),
	}
}

// SelectScenario picks a scenario uniformly across the whole catalog
// The lit position is deliberately not used: the trainee has to read the
// opponent description instead of inferring it from their own target
func (a *Advisor) SelectScenario(activePositionID string) Scenario {
	s := a.entries[a.rng.IntN(len(a.entries))]
	s.Shots = slices.Clone(s.Shots)
	return s
}

// RecordShotChoice returns the shot to store for scenario s
// A label outside the candidate list is rejected and the previous choice kept
func RecordShotChoice(s Scenario, previous, label string) string {
	if !s.HasShot(label) {
		return previous
	}
	return label
}
