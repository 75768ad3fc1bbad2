// Package colonist models who a colonist is and how they feel: identity, role,
// personality trait, and the needs model that decays, recovers and derives an
// emotion every tick.
package colonist

import (
	"math/rand"

	"github.com/google/uuid"
)

var firstNames = []string{"Jax", "Kira", "Zane", "Nova", "Rico", "Sela", "Vance", "Yuna", "Kael", "Mira"}
var lastNames = []string{"Voss", "Thorne", "Stark", "Luna", "Chen", "Kovacs", "Holloway", "Wei", "Mercer"}

// Colonist is the identity and needs of one agent
type Colonist struct {
	ID    uuid.UUID
	Name  string
	Role  Role
	Trait Trait
	Needs *Needs
}

// New creates a colonist with a random name and the given role and trait.
// rng drives the name and ID so seeded runs are reproducible.
func New(rng *rand.Rand, role Role, trait Trait, p Params) *Colonist {
	return &Colonist{
		ID:    newID(rng),
		Name:  RandomName(rng),
		Role:  role,
		Trait: trait,
		Needs: NewNeeds(trait, p),
	}
}

// NewRandomTrait creates a colonist of the given role with a random trait
func NewRandomTrait(rng *rand.Rand, role Role, p Params) *Colonist {
	return New(rng, role, RandomTrait(rng), p)
}

// RandomName picks a first and last name
func RandomName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

// RandomTrait picks a trait uniformly
func RandomTrait(rng *rand.Rand) Trait {
	return Trait(rng.Intn(traitCount))
}

// RandomRole picks a role uniformly
func RandomRole(rng *rand.Rand) Role {
	return Role(rng.Intn(roleCount))
}

// ShortID returns the first block of the ID, for logs and rosters
func (c *Colonist) ShortID() string {
	return c.ID.String()[:8]
}

func newID(rng *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.New()
	}
	return id
}
