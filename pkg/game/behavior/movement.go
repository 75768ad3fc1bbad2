package behavior

// move steps toward the next waypoint. A waypoint that became blocked cancels
// the whole walk.
func (c *Controller) move(dt float64) {
	if len(c.path) == 0 {
		return
	}
	next := c.path[0]
	if c.env.Grid.IsBlocked(next) {
		c.log.Debug("path blocked")
		c.enter(StateIdle)
		return
	}

	delta := next.Center().Sub(c.pos)
	dist := delta.Len()
	if dist < c.params.ArriveTolerance {
		c.path = c.path[1:]
		if len(c.path) == 0 {
			c.arrive()
		}
		return
	}

	step := c.params.BaseSpeed * c.Colonist.Needs.MoveSpeed * dt
	if step >= dist {
		c.pos = next.Center()
		return
	}
	c.pos = c.pos.Add(delta.Scale(step / dist))
}
