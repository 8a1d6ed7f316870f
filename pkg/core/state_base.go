package core

// StateBase provides the common plumbing for State implementations.
//
// Embed it in a state struct and override the lifecycle methods as needed:
//
//	type tickerState struct {
//	    core.StateBase
//	    loop *animation.LoopController
//	}
//
// SetState applies a mutation and schedules a rebuild of the owning element.
type StateBase struct {
	element *StatefulElement
}

// SetElement attaches the owning element. Called by the framework.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the owning element, or nil before mounting.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState runs the mutation and marks the owning element dirty.
func (s *StateBase) SetState(mutate func()) {
	if mutate != nil {
		mutate()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// InitState is a no-op by default.
func (s *StateBase) InitState() {}

// DidUpdateWidget is a no-op by default.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}

// Dispose is a no-op by default.
func (s *StateBase) Dispose() {}
