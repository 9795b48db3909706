package entity

// ScoreTally - win and tie counters kept across games.
type ScoreTally struct {
	X    int `json:"x"`
	O    int `json:"o"`
	Ties int `json:"t"`
}

// Add - returns the tally with the outcome counted. Undecided outcomes are ignored.
func (s ScoreTally) Add(outcome Outcome) ScoreTally {
	switch {
	case outcome.Status == StatusTied:
		s.Ties++
	case outcome.Status == StatusWon && outcome.Winner == PlayerX:
		s.X++
	case outcome.Status == StatusWon && outcome.Winner == PlayerO:
		s.O++
	}
	return s
}

func (s ScoreTally) IsValid() bool {
	return s.X >= 0 && s.O >= 0 && s.Ties >= 0
}
