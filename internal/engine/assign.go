package engine

import "math/rand"

// randIntn is a seam so tests can make role assignment deterministic.
var randIntn = rand.Intn

// Assign deals one game's worth of secrets: one location drawn uniformly
// from the catalog, one roster index drawn uniformly to be the spy, and for
// every other player an independent role from that location's role list
// (with replacement, so duplicate roles across non-spies are allowed).
//
// The returned slice has exactly one entry with IsSpy set; its Location and
// Role are empty. Callers validate roster size before calling.
func Assign(playerIDs []string) (location string, spyID string, roles []PlayerRole) {
	loc := Locations[randIntn(len(Locations))]
	spyIdx := randIntn(len(playerIDs))

	roles = make([]PlayerRole, len(playerIDs))
	for i, id := range playerIDs {
		if i == spyIdx {
			roles[i] = PlayerRole{PlayerID: id, IsSpy: true}
			continue
		}
		roles[i] = PlayerRole{
			PlayerID: id,
			Location: loc.Name,
			Role:     loc.Roles[randIntn(len(loc.Roles))],
		}
	}
	return loc.Name, playerIDs[spyIdx], roles
}
