package menu

// State is the launcher's selection and scroll position.
type State struct {
	Selected int
	Scroll   int
}

// Move shifts the selection by delta with wrap-around and keeps it visible.
func (s State) Move(g Grid, delta int) State {
	if g.Count == 0 {
		return State{}
	}
	n := g.Count
	s.Selected = ((s.Selected+delta)%n + n) % n
	s.Scroll = g.EnsureVisible(s.Selected, s.Scroll)
	return s
}

// Fit re-clamps the state after the grid changed size or count.
func (s State) Fit(g Grid) State {
	if g.Count == 0 {
		return State{}
	}
	if s.Selected >= g.Count {
		s.Selected = g.Count - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
	s.Scroll = g.EnsureVisible(s.Selected, g.ClampScroll(s.Scroll))
	return s
}
