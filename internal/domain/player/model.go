package player

// NameMaxLen bounds stored player names; longer names are truncated before
// persistence.
const NameMaxLen = 500

// Player is one distinct participant across all ingested matches, unique by
// name. RegistryID is the Cricsheet people-registry identifier when known.
type Player struct {
	ID         int64
	Name       string
	RegistryID string
}
