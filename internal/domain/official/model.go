package official

import "fmt"

// Role classifies a match official.
type Role string

const (
	RoleUmpire        Role = "umpire"
	RoleTVUmpire      Role = "tv_umpire"
	RoleReserveUmpire Role = "reserve_umpire"
	RoleMatchReferee  Role = "match_referee"
)

var AllRoles = map[Role]struct{}{
	RoleUmpire:        {},
	RoleTVUmpire:      {},
	RoleReserveUmpire: {},
	RoleMatchReferee:  {},
}

// Official is one officiating assignment for a match.
type Official struct {
	MatchID string
	Role    Role
	Name    string
}

func (o Official) Validate() error {
	if o.MatchID == "" {
		return fmt.Errorf("official match id is required")
	}
	if _, ok := AllRoles[o.Role]; !ok {
		return fmt.Errorf("invalid official role: %s", o.Role)
	}
	if o.Name == "" {
		return fmt.Errorf("official name is required")
	}

	return nil
}
