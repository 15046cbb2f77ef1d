package router

// Stack manages navigation history for back navigation.
type Stack struct {
	entries []Route
}

// NewStack creates a stack holding the start route.
func NewStack(start Route) *Stack {
	return &Stack{entries: []Route{start}}
}

// Push navigates forward.
func (s *Stack) Push(r Route) {
	s.entries = append(s.entries, r)
}

// Replace swaps the top entry, so back navigation skips the replaced route.
func (s *Stack) Replace(r Route) {
	if len(s.entries) == 0 {
		s.entries = append(s.entries, r)
		return
	}
	s.entries[len(s.entries)-1] = r
}

// Pop removes the top entry and returns the new top. The root entry is
// never removed; ok is false when there was nothing to go back to.
func (s *Stack) Pop() (Route, bool) {
	if len(s.entries) <= 1 {
		return s.Current(), false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return s.Current(), true
}

// Current returns the top entry, or the list route for an empty stack.
func (s *Stack) Current() Route {
	if len(s.entries) == 0 {
		return List()
	}
	return s.entries[len(s.entries)-1]
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
