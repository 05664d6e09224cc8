package cricsheet

// Record is one Cricsheet match file. Numeric fields that the feed has
// historically emitted as numbers, floats, or strings are kept as `any` and
// coerced downstream.
type Record struct {
	Meta    Meta      `json:"meta"`
	Info    Info      `json:"info" validate:"required"`
	Innings []Innings `json:"innings"`
}

type Meta struct {
	DataVersion any    `json:"data_version"`
	Created     string `json:"created"`
	Revision    any    `json:"revision"`
}

type Info struct {
	City          string              `json:"city"`
	Venue         string              `json:"venue"`
	Dates         []string            `json:"dates"`
	Gender        string              `json:"gender"`
	MatchType     string              `json:"match_type"`
	TeamType      string              `json:"team_type"`
	Overs         any                 `json:"overs"`
	BallsPerOver  any                 `json:"balls_per_over"`
	Season        any                 `json:"season"`
	Teams         []string            `json:"teams" validate:"dive,required"`
	Event         Event               `json:"event"`
	Toss          Toss                `json:"toss"`
	Outcome       Outcome             `json:"outcome"`
	PlayerOfMatch []string            `json:"player_of_match"`
	Registry      Registry            `json:"registry"`
	Players       map[string][]string `json:"players"`
	Officials     Officials           `json:"officials"`
}

type Event struct {
	Name        string `json:"name"`
	MatchNumber any    `json:"match_number"`
}

type Toss struct {
	Winner   string `json:"winner"`
	Decision string `json:"decision"`
}

type Outcome struct {
	Winner string     `json:"winner"`
	Result string     `json:"result"`
	By     *OutcomeBy `json:"by"`
}

type OutcomeBy struct {
	Runs    any `json:"runs"`
	Wickets any `json:"wickets"`
}

type Registry struct {
	People map[string]string `json:"people"`
}

type Officials struct {
	Umpires        []string `json:"umpires"`
	TVUmpires      []string `json:"tv_umpires"`
	ReserveUmpires []string `json:"reserve_umpires"`
	MatchReferees  []string `json:"match_referees"`
}

type Innings struct {
	Team  string `json:"team"`
	Overs []Over `json:"overs"`
}

// Over carries the balls that decoded cleanly. A ball whose structure does
// not match the feed shape lands in Malformed instead, so one bad delivery
// never rejects the whole record.
type Over struct {
	Over       any        `json:"over"`
	Deliveries []Delivery `json:"deliveries"`
	Malformed  []error    `json:"-"`
}

type Delivery struct {
	Batter     string         `json:"batter"`
	NonStriker string         `json:"non_striker"`
	Bowler     string         `json:"bowler"`
	Runs       Runs           `json:"runs"`
	Extras     map[string]any `json:"extras"`
	Wickets    []Wicket       `json:"wickets"`
	Review     *Review        `json:"review"`
}

// Review is the umpire-review block attached to a delivery when a decision
// was challenged.
type Review struct {
	Type     string `json:"type"`
	By       string `json:"by"`
	Umpire   string `json:"umpire"`
	Batter   string `json:"batter"`
	Decision string `json:"decision"`
}

type Runs struct {
	Batter any `json:"batter"`
	Extras any `json:"extras"`
	Total  any `json:"total"`
}

type Wicket struct {
	Kind      string    `json:"kind"`
	PlayerOut string    `json:"player_out"`
	Fielders  []Fielder `json:"fielders"`
}

type Fielder struct {
	Name       string `json:"name"`
	Substitute bool   `json:"substitute"`
}
