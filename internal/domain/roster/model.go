package roster

import "fmt"

// Link ties a player to a match squad. RegistryName carries the Cricsheet
// registry id recorded on squad listings; links discovered from deliveries
// leave it empty. Role is an optional position tag, blank when the source
// does not carry one.
type Link struct {
	MatchID      string
	PlayerID     int64
	Team         string
	Role         string
	RegistryName string
}

func (l Link) Validate() error {
	if l.MatchID == "" {
		return fmt.Errorf("roster link match id is required")
	}
	if l.PlayerID <= 0 {
		return fmt.Errorf("roster link player id is required")
	}

	return nil
}
