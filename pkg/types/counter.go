package types

// Counter tallies the targets of one run. It is owned by the run and
// returned to the caller when every target has been processed.
//
// Missing sources and non-boolean config values both land in Ignored.
// Failed stow invocations are not counted in any bucket.
type Counter struct {
	HomeStowed   int
	HomeUnstowed int
	RootStowed   int
	RootUnstowed int
	Ignored      int

	// Failed lists targets whose stow invocation failed, for reporting only
	Failed []Target
}

// Record increments at most one bucket for the target's outcome
func (c *Counter) Record(t Target, o Outcome) {
	switch o {
	case OutcomeIgnored, OutcomeMissingSource:
		c.Ignored++
	case OutcomeFailed:
		c.Failed = append(c.Failed, t)
	case OutcomeDone:
		switch {
		case t.Root == TargetHome && t.Action == ActionStow:
			c.HomeStowed++
		case t.Root == TargetHome && t.Action == ActionUnstow:
			c.HomeUnstowed++
		case t.Root == TargetRootDir && t.Action == ActionStow:
			c.RootStowed++
		case t.Root == TargetRootDir && t.Action == ActionUnstow:
			c.RootUnstowed++
		}
	}
}

// Buckets returns the five counts in report order
func (c Counter) Buckets() [5]int {
	return [5]int{c.HomeStowed, c.HomeUnstowed, c.RootStowed, c.RootUnstowed, c.Ignored}
}

// Total is the sum of all buckets
func (c Counter) Total() int {
	total := 0
	for _, n := range c.Buckets() {
		total += n
	}
	return total
}

// IsZero reports whether nothing was counted
func (c Counter) IsZero() bool {
	return c.Total() == 0
}
