package delivery

import "fmt"

// Extra types in scoring priority order. A delivery carrying several extras is
// recorded under the first matching type only.
const (
	ExtraWides   = "wides"
	ExtraNoballs = "noballs"
	ExtraByes    = "byes"
	ExtraLegbyes = "legbyes"
	ExtraPenalty = "penalty"
)

// ExtraPriority is the lookup order applied to a delivery's extras block.
var ExtraPriority = []string{ExtraWides, ExtraNoballs, ExtraByes, ExtraLegbyes, ExtraPenalty}

// Delivery is one ball of a match. Player id fields are nil when the name
// could not be resolved to a player row. BallSequence increases strictly
// across the whole innings regardless of over boundaries.
type Delivery struct {
	MatchID        string
	InningsNumber  int
	OverNumber     int
	BallInOver     int
	BallSequence   int
	Batter         string
	BatterID       *int64
	NonStriker     string
	NonStrikerID   *int64
	Bowler         string
	BowlerID       *int64
	RunsBatter     int
	RunsExtras     int
	RunsTotal      int
	ExtraType      string
	ExtraValue     int
	IsWicket       bool
	WicketKind     string
	WicketPlayer   string
	WicketPlayerID *int64
	Fielder        string
	FielderID      *int64
	ReviewType     string
	ReviewBy       string
	ReviewUmpire   string
	ReviewBatter   string
	ReviewDecision string
}

func (d Delivery) Validate() error {
	if d.MatchID == "" {
		return fmt.Errorf("delivery match id is required")
	}
	if d.InningsNumber <= 0 {
		return fmt.Errorf("delivery innings number must be greater than zero")
	}
	if d.BallSequence <= 0 {
		return fmt.Errorf("delivery ball sequence must be greater than zero")
	}

	return nil
}
