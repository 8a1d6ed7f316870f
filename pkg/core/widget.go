// Package core defines the widget and element model for the Billboard kit.
//
// Widgets are immutable descriptions of a piece of UI. They come in three
// flavors: stateless widgets that Build into other widgets, stateful
// widgets that own a State rebuilt over time (the marquee), and render
// object widgets that create the render boxes doing actual layout and
// painting. Elements are the instantiated tree nodes that tie widgets to
// render objects across rebuilds.
//
// Rendering a frame is: mount (or rebuild) the element tree, lay out the
// root render object under tight constraints, and paint it into a display
// list. Output is a pure function of the widget tree and the animation
// clock.
package core

import "github.com/billboard-ui/billboard/pkg/layout"

// Widget is an immutable description of part of the UI.
type Widget interface {
	// CreateElement instantiates the element that manages this widget
	// in the tree.
	CreateElement() Element
	// Key distinguishes widgets of the same type during tree updates.
	// A nil key matches any nil-keyed widget of the same type.
	Key() any
}

// StatelessWidget composes other widgets and holds no mutable state.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget creates a State object that persists across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// RenderObjectWidget configures a render object that performs layout
// and painting.
type RenderObjectWidget interface {
	Widget
	CreateRenderObject(ctx BuildContext) layout.RenderObject
	UpdateRenderObject(ctx BuildContext, renderObject layout.RenderObject)
}

// State is the mutable companion of a StatefulWidget.
type State interface {
	// InitState is called once when the state is attached to the tree.
	InitState()
	// Build returns the widget subtree for the current state.
	Build(ctx BuildContext) Widget
	// DidUpdateWidget is called when the element receives a new widget
	// of the same type.
	DidUpdateWidget(oldWidget StatefulWidget)
	// Dispose is called when the element is removed from the tree.
	Dispose()
}

// BuildContext gives Build methods access to their position in the tree.
type BuildContext interface {
	// ContextWidget returns the widget this context belongs to.
	ContextWidget() Widget
	// FindAncestor walks up the tree and returns the first element
	// satisfying the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is an instantiated widget in the tree.
type Element interface {
	BuildContext
	Widget() Widget
	Depth() int
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	VisitChildren(visitor func(Element) bool)
}

// RenderObjectProvider is implemented by elements that expose a render object.
type RenderObjectProvider interface {
	RenderObject() layout.RenderObject
}
