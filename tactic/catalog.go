package tactic

import "slices"

// Scenario pairs an opponent situation with plausible return shots
type Scenario struct {
	PositionID string   // Drill position the scenario was written for
	Opponent   string   // Where the opponent is and what they just played
	Shots      []string // Candidate shots, best-first
}

// HasShot reports whether label is one of the scenario's candidates
func (s Scenario) HasShot(label string) bool {
	return slices.Contains(s.Shots, label)
}

// catalog is the immutable scenario reference data, one entry per position
var catalog = []Scenario{
	{
		PositionID: "front-left",
		Opponent:   "Opponent is tight at the net on your forehand-side front court after a spinning net shot",
		Shots:      []string{"Net kill", "Tight net return", "Cross-court net", "High lift to back corner"},
	},
	{
		PositionID: "front-right",
		Opponent:   "Opponent stands mid-court centre after a steep drop to your front right",
		Shots:      []string{"Push to back mid-court", "Straight net shot", "Attacking lift", "Cross-court lift"},
	},
	{
		PositionID: "mid-left",
		Opponent:   "Opponent is at their rear court after a flat smash to your left body side",
		Shots:      []string{"Block to the net", "Drive down the line", "Cross-court block", "Lift to centre back"},
	},
	{
		PositionID: "mid-right",
		Opponent:   "Opponent is rushing the net after a fast drive to your right mid-court",
		Shots:      []string{"Flat drive past the rusher", "Lob over the net player", "Soft push to side gap"},
	},
	{
		PositionID: "back-left",
		Opponent:   "Opponent is deep on your cross-court side, expecting a clear to their backhand",
		Shots:      []string{"Straight drop", "Cross-court smash", "Attacking clear", "Slice drop cross-court"},
	},
	{
		PositionID: "back-right",
		Opponent:   "Opponent has recovered to base and is crouched low anticipating a smash",
		Shots:      []string{"Half smash straight", "Fast drop to the middle", "High defensive clear", "Reverse slice drop"},
	},
}

// Catalog returns a copy of the scenario catalog
func Catalog() []Scenario {
	out := make([]Scenario, len(catalog))
	for i, s := range catalog {
		out[i] = s
		out[i].Shots = slices.Clone(s.Shots)
	}
	return out
}
