package behavior

import (
	"go.uber.org/zap"

	"habitat/pkg/game/colonist"
)

// enter switches to s in place, dropping any path and starting the state's timer
func (c *Controller) enter(s State) {
	c.setState(s)
	c.enRoute = false
	c.path = nil
	c.timer = c.duration(s)
	if s == StateIdle {
		c.job = nil
		c.friend = nil
	}
}

// duration is the timer for a timed state. Work-type timers scale with work speed.
func (c *Controller) duration(s State) float64 {
	t := c.params.Timers
	speed := c.Colonist.Needs.WorkSpeed
	switch s {
	case StateEating:
		return t.Eat
	case StateDrinking:
		return t.Drink
	case StateSleeping:
		return t.Sleep
	case StateRelaxing:
		return t.Relax
	case StateSocializing:
		return t.Socialize
	case StateDepositing:
		return t.Deposit
	case StateWorking:
		return t.Work / speed
	case StateDeconstructing:
		return t.Deconstruct / speed
	case StateMining:
		return t.Mine / speed
	}
	return 0
}

// arrive runs when the last waypoint is reached
func (c *Controller) arrive() {
	c.path = nil
	switch c.state {
	case StateMovingToWork:
		c.beginWork(StateWorking)
	case StateMovingToDemo:
		c.beginWork(StateDeconstructing)
	case StateMovingToMine:
		if o := c.env.Grid.ObjectAt(c.mineCell); o == nil || o.Matter <= 0 {
			c.enter(StateIdle)
			return
		}
		c.beginWork(StateMining)
	case StateMovingToFriend:
		friend := c.friend
		if friend == nil || c.pos.DistanceTo(friend.pos) >= c.params.FriendReach || !c.interact(friend) {
			c.enter(StateIdle)
		}
	case StateEating, StateDrinking, StateSleeping, StateRelaxing, StateDepositing:
		if c.enRoute {
			c.enter(c.state)
			return
		}
		c.enter(StateIdle)
	default:
		c.enter(StateIdle)
	}
}

// beginWork starts a work-type action, or gives up if the work is gone or
// the colonist cannot work
func (c *Controller) beginWork(s State) {
	if c.Colonist.Needs.WorkSpeed <= 0 {
		c.enter(StateIdle)
		return
	}
	if s != StateMining && !c.env.Grid.IsPending(c.job) {
		c.enter(StateIdle)
		return
	}
	c.enter(s)
}

// socialize starts a mutual interaction if other is still free
func (c *Controller) socialize(other *Controller) bool {
	if other == c || !other.state.IsIdle() {
		return false
	}
	c.enter(StateSocializing)
	other.enter(StateSocializing)
	c.log.Debug("socializing", zap.String("with", other.Colonist.Name))
	return true
}

// complete applies the effect of the finished timed action
func (c *Controller) complete() {
	needs := c.Colonist.Needs
	p := c.params
	switch c.state {
	case StateEating:
		needs.Restore(colonist.NeedHunger)
	case StateDrinking:
		needs.Restore(colonist.NeedThirst)
	case StateSleeping:
		needs.Restore(colonist.NeedEnergy)
	case StateRelaxing:
		needs.Restore(colonist.NeedFun)
		needs.Set(colonist.NeedStress, 0)
	case StateSocializing:
		needs.Restore(colonist.NeedSocial)
		needs.AdjustHappiness(p.SocialHappiness)
	case StateWorking, StateDeconstructing:
		if c.job != nil {
			if c.env.Grid.CompleteJob(c.job) {
				c.log.Info("job complete", zap.Stringer("kind", c.job.Kind), zap.Stringer("cell", c.job.Cell))
			}
			needs.Adjust(colonist.NeedFun, -p.WorkFunCost)
		}
	case StateMining:
		c.cargo += c.env.Grid.Extract(c.mineCell, p.MineYield)
		needs.Adjust(colonist.NeedEnergy, -p.MineEnergyCost)
	case StateDepositing:
		if c.cargo > 0 {
			c.env.Bank.AddMatter(float64(c.cargo))
			c.log.Debug("deposited", zap.Int("matter", c.cargo))
		}
		c.cargo = 0
	}
	c.enter(StateIdle)
}
