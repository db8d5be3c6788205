package engine

import (
	"fmt"
	"testing"
)

// stubRand replaces the random seam with a deterministic sequence. Values
// are taken modulo n so they always stay in range.
func stubRand(t *testing.T, vals ...int) {
	t.Helper()
	old := randIntn
	i := 0
	randIntn = func(n int) int {
		v := vals[i%len(vals)] % n
		i++
		return v
	}
	t.Cleanup(func() { randIntn = old })
}

func TestAssign_Invariants(t *testing.T) {
	for size := 3; size <= 16; size++ {
		t.Run(fmt.Sprintf("%d players", size), func(t *testing.T) {
			ids := make([]string, size)
			for i := range ids {
				ids[i] = fmt.Sprintf("p%d", i)
			}

			location, spyID, roles := Assign(ids)

			if len(roles) != size {
				t.Fatalf("want %d assignments, got %d", size, len(roles))
			}

			spies := 0
			for _, r := range roles {
				if r.IsSpy {
					spies++
					if r.PlayerID != spyID {
						t.Fatalf("spy role %q does not match returned spy id %q", r.PlayerID, spyID)
					}
					if r.Location != "" || r.Role != "" {
						t.Fatalf("spy must have empty location/role, got %+v", r)
					}
					continue
				}
				if r.Location != location {
					t.Fatalf("non-spy location %q, want shared %q", r.Location, location)
				}
				if !roleInLocation(r.Role, location) {
					t.Fatalf("role %q is not in location %q's role list", r.Role, location)
				}
			}
			if spies != 1 {
				t.Fatalf("want exactly 1 spy, got %d", spies)
			}
		})
	}
}

func roleInLocation(role, locationName string) bool {
	for _, loc := range Locations {
		if loc.Name != locationName {
			continue
		}
		for _, r := range loc.Roles {
			if r == role {
				return true
			}
		}
	}
	return false
}

func TestAssign_Deterministic(t *testing.T) {
	// location 0, spy index 1, every role pick 0
	stubRand(t, 0, 1, 0)

	location, spyID, roles := Assign([]string{"a", "b", "c"})

	if location != Locations[0].Name {
		t.Fatalf("want location %q, got %q", Locations[0].Name, location)
	}
	if spyID != "b" {
		t.Fatalf("want spy b, got %q", spyID)
	}
	want := Locations[0].Roles[0]
	if roles[0].Role != want || roles[2].Role != want {
		t.Fatalf("want role %q for non-spies, got %+v", want, roles)
	}
}

func TestLocationCatalog(t *testing.T) {
	seen := map[string]bool{}
	for _, loc := range Locations {
		if loc.Name == "" {
			t.Fatal("location with empty name")
		}
		if len(loc.Roles) == 0 {
			t.Fatalf("location %q has no roles", loc.Name)
		}
		if seen[loc.Name] {
			t.Fatalf("duplicate location %q", loc.Name)
		}
		seen[loc.Name] = true
	}
	if len(LocationNames()) != len(Locations) {
		t.Fatal("LocationNames length mismatch")
	}
}
