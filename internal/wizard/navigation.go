package wizard

// Navigator tracks a 1-based position over the resolved step sequence.
// The zero value is not usable; call NewNavigator.
type Navigator struct {
	position int
}

// NewNavigator returns a navigator positioned on the first step.
func NewNavigator() Navigator {
	return Navigator{position: 1}
}

// Position returns the current 1-based position.
func (n *Navigator) Position() int {
	return n.position
}

// Advance moves one step forward. At the last step it does nothing and
// returns false.
func (n *Navigator) Advance(total int) bool {
	if n.position >= total {
		return false
	}
	n.position++
	return true
}

// Retreat moves one step back. At the first step it does nothing and
// returns false.
func (n *Navigator) Retreat() bool {
	if n.position <= 1 {
		return false
	}
	n.position--
	return true
}

// Reanchor returns to the first step.
func (n *Navigator) Reanchor() {
	n.position = 1
}

// Clamp pulls the position back inside [1, total].
func (n *Navigator) Clamp(total int) {
	if n.position > total {
		n.position = total
	}
	if n.position < 1 {
		n.position = 1
	}
}

// OnLast reports whether the position is the last of total steps.
func (n *Navigator) OnLast(total int) bool {
	return n.position >= total
}
