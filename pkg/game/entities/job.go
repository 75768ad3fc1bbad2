package entities

import "habitat/pkg/engine/world"

// JobKind is the category of work a job asks for
type JobKind int

const (
	JobConstruct JobKind = iota
	JobDeconstruct
)

func (k JobKind) String() string {
	switch k {
	case JobConstruct:
		return "construct"
	case JobDeconstruct:
		return "deconstruct"
	default:
		return "unknown"
	}
}

// Job is a pending task bound to one cell, consumed by worker colonists.
// Construction jobs point at the structure they finish.
type Job struct {
	Kind      JobKind
	Cell      world.Cell
	Complete  bool
	Structure *Structure
}
