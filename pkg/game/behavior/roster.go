package behavior

import "habitat/pkg/engine/world"

// Peer is one colonist as seen by the others during a tick
type Peer struct {
	Agent    *Controller
	Position world.Vec
	State    State
}

// Roster is a snapshot of every colonist, taken before any of them moves
type Roster []Peer

// Snapshot records the position and state of each controller
func Snapshot(ctrls []*Controller) Roster {
	out := make(Roster, 0, len(ctrls))
	for _, c := range ctrls {
		out = append(out, Peer{Agent: c, Position: c.pos, State: c.state})
	}
	return out
}

// Nearby returns the living peers within radius of pos, excluding self
func (r Roster) Nearby(pos world.Vec, radius float64, self *Controller) []Peer {
	var out []Peer
	for _, p := range r {
		if p.Agent == self || p.State == StateDead {
			continue
		}
		if p.Position.DistanceTo(pos) < radius {
			out = append(out, p)
		}
	}
	return out
}
