package partnership

import "fmt"

// Partnership is one batting stand: the span of deliveries between wickets
// during which the same pair was at the crease. WicketNumber is the stand's
// 1-based position within the innings.
type Partnership struct {
	MatchID       string
	InningsNumber int
	WicketNumber  int
	Batter1       string
	Batter1ID     *int64
	Batter2       string
	Batter2ID     *int64
	Runs          int
	Balls         int
}

func (p Partnership) Validate() error {
	if p.MatchID == "" {
		return fmt.Errorf("partnership match id is required")
	}
	if p.InningsNumber <= 0 {
		return fmt.Errorf("partnership innings number must be greater than zero")
	}
	if p.WicketNumber <= 0 {
		return fmt.Errorf("partnership wicket number must be greater than zero")
	}

	return nil
}
