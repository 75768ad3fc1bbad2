package behavior

import "strings"

// State is the controller's current activity
type State int

const (
	StateIdle State = iota
	StateWandering
	StateMovingToSafety
	StateMovingToWork
	StateWorking
	StateMovingToDemo
	StateDeconstructing
	StateMovingToMine
	StateMining
	StateMovingToFriend
	StateSocializing
	StateDepositing
	StateEating
	StateDrinking
	StateSleeping
	StateRelaxing
	StateTantrum
	StateDead
)

var stateNames = map[State]string{
	StateIdle:           "idle",
	StateWandering:      "wandering",
	StateMovingToSafety: "moving_to_safety",
	StateMovingToWork:   "moving_to_work",
	StateWorking:        "working",
	StateMovingToDemo:   "moving_to_demo",
	StateDeconstructing: "deconstructing",
	StateMovingToMine:   "moving_to_mine",
	StateMining:         "mining",
	StateMovingToFriend: "moving_to_friend",
	StateSocializing:    "socializing",
	StateDepositing:     "depositing",
	StateEating:         "eating",
	StateDrinking:       "drinking",
	StateSleeping:       "sleeping",
	StateRelaxing:       "relaxing",
	StateTantrum:        "tantrum",
	StateDead:           "dead",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// LabelKey returns the translation key of the state's display label
func (s State) LabelKey() string {
	return "STATE_" + strings.ToUpper(s.String())
}

// AllStates returns every state in declaration order
func AllStates() []State {
	out := make([]State, 0, len(stateNames))
	for s := StateIdle; s <= StateDead; s++ {
		out = append(out, s)
	}
	return out
}

// IsIdle returns true for the states that run the decision tree
func (s State) IsIdle() bool {
	return s == StateIdle || s == StateWandering
}

// IsWork returns true for states that count as working for needs purposes
func (s State) IsWork() bool {
	switch s {
	case StateWorking, StateMovingToWork, StateMining, StateDeconstructing:
		return true
	}
	return false
}
