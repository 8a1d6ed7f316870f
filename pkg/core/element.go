package core

import (
	"reflect"
	"time"

	"github.com/billboard-ui/billboard/pkg/errors"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// elementBase carries the state shared by all element kinds.
type elementBase struct {
	widget     Widget
	parent     Element
	depth      int
	slot       any
	buildOwner *BuildOwner
	dirty      bool
	self       Element
	mounted    bool
}

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) ContextWidget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) FindAncestor(predicate func(Element) bool) Element {
	current := e.parent
	for current != nil {
		if predicate(current) {
			return current
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

func (e *elementBase) parentElement() Element {
	return e.parent
}

func (e *elementBase) setSelf(self Element) {
	e.self = self
}

func (e *elementBase) setBuildOwner(owner *BuildOwner) {
	e.buildOwner = owner
}

func (e *elementBase) mount(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
}

// safeBuild executes a build function with panic recovery.
// If the build panics, the error is reported and the subtree renders
// nothing rather than taking down the whole page.
func (e *elementBase) safeBuild(buildFn func() Widget) Widget {
	var built Widget
	var buildErr *errors.BuildError

	func() {
		defer func() {
			if r := recover(); r != nil {
				buildErr = &errors.BuildError{
					Widget:     reflect.TypeOf(e.widget).String(),
					Recovered:  r,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		built = buildFn()
	}()

	if buildErr != nil {
		errors.ReportBuildError(buildErr)
		return nil
	}
	return built
}

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	elementBase
	child Element
}

// NewStatelessElement creates an element for a stateless widget.
func NewStatelessElement(widget StatelessWidget, owner *BuildOwner) *StatelessElement {
	element := &StatelessElement{}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

func (e *StatelessElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *StatelessElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *StatelessElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	widget := e.widget.(StatelessWidget)
	built := e.safeBuild(func() Widget {
		return widget.Build(e)
	})
	e.child = updateChild(e.child, built, e, e.buildOwner)
}

func (e *StatelessElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// RenderObject returns the render object from the first render-object child.
func (e *StatelessElement) RenderObject() layout.RenderObject {
	return childRenderObject(e.child)
}

// StatefulElement hosts a StatefulWidget and its State.
type StatefulElement struct {
	elementBase
	child Element
	state State
}

// NewStatefulElement creates an element for a stateful widget.
func NewStatefulElement(widget StatefulWidget, owner *BuildOwner) *StatefulElement {
	element := &StatefulElement{}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)
	widget := e.widget.(StatefulWidget)
	e.state = widget.CreateState()
	if setter, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		setter.SetElement(e)
	}
	e.state.InitState()
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *StatefulElement) Update(newWidget Widget) {
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.MarkNeedsBuild()
}

func (e *StatefulElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	if e.state != nil {
		e.state.Dispose()
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	built := e.safeBuild(func() Widget {
		return e.state.Build(e)
	})
	e.child = updateChild(e.child, built, e, e.buildOwner)
}

func (e *StatefulElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// State returns the state object hosted by this element.
func (e *StatefulElement) State() State {
	return e.state
}

// RenderObject returns the render object from the first render-object child.
func (e *StatefulElement) RenderObject() layout.RenderObject {
	return childRenderObject(e.child)
}

// RenderObjectElement hosts a RenderObject and its child elements.
type RenderObjectElement struct {
	elementBase
	renderObject layout.RenderObject
	children     []Element
}

// NewRenderObjectElement creates an element for a render object widget.
func NewRenderObjectElement(widget RenderObjectWidget, owner *BuildOwner) *RenderObjectElement {
	element := &RenderObjectElement{}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

func (e *RenderObjectElement) Mount(parent Element, slot any) {
	e.mount(parent, slot)

	widget := e.widget.(RenderObjectWidget)
	e.renderObject = widget.CreateRenderObject(e)
	e.attachRenderObject()

	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *RenderObjectElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *RenderObjectElement) Unmount() {
	e.mounted = false
	for _, child := range e.children {
		child.Unmount()
	}
	e.children = nil
	e.detachRenderObject()
}

func (e *RenderObjectElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false

	widget := e.widget.(RenderObjectWidget)
	widget.UpdateRenderObject(e, e.renderObject)

	switch typed := e.widget.(type) {
	case interface{ ChildWidget() Widget }:
		childWidget := typed.ChildWidget()
		var child Element
		if len(e.children) > 0 {
			child = e.children[0]
		}
		child = updateChild(child, childWidget, e, e.buildOwner)
		if child != nil {
			e.children = []Element{child}
		} else {
			e.children = nil
		}
		e.attachChildRenderObjects()

	case interface{ ChildrenWidgets() []Widget }:
		widgets := typed.ChildrenWidgets()
		updated := make([]Element, 0, len(widgets))
		for index, childWidget := range widgets {
			var existing Element
			if index < len(e.children) {
				existing = e.children[index]
			}
			child := updateChild(existing, childWidget, e, e.buildOwner)
			if child != nil {
				updated = append(updated, child)
			}
		}
		for i := len(widgets); i < len(e.children); i++ {
			e.children[i].Unmount()
		}
		e.children = updated
		e.attachChildRenderObjects()
	}
}

func (e *RenderObjectElement) VisitChildren(visitor func(Element) bool) {
	for _, child := range e.children {
		if !visitor(child) {
			return
		}
	}
}

// RenderObject exposes the backing render object for the element.
func (e *RenderObjectElement) RenderObject() layout.RenderObject {
	return e.renderObject
}

// attachRenderObject links this render object under the nearest ancestor
// render object and refreshes the ancestor's child list. The refresh
// matters when a composition-only element deep in the tree swaps its
// render child without the ancestor itself rebuilding.
func (e *RenderObjectElement) attachRenderObject() {
	if ancestor := e.findRenderAncestor(); ancestor != nil {
		layout.SetParentOnChild(e.renderObject, ancestor.renderObject)
		ancestor.attachChildRenderObjects()
	}
}

func (e *RenderObjectElement) detachRenderObject() {
	if e.renderObject != nil {
		layout.SetParentOnChild(e.renderObject, nil)
	}
}

// attachChildRenderObjects rebuilds the render object's view of its
// children from the element children, resolving through non-render
// elements (stateless/stateful wrappers).
func (e *RenderObjectElement) attachChildRenderObjects() {
	objects := make([]layout.RenderObject, 0, len(e.children))
	for _, child := range e.children {
		if ro := childRenderObject(child); ro != nil {
			objects = append(objects, ro)
		}
	}
	switch target := e.renderObject.(type) {
	case interface{ SetChildren([]layout.RenderObject) }:
		target.SetChildren(objects)
	case interface{ SetChild(layout.RenderObject) }:
		if len(objects) > 0 {
			target.SetChild(objects[0])
		} else {
			target.SetChild(nil)
		}
	}
}

// findRenderAncestor walks up the element tree to the nearest element
// owning a render object.
func (e *RenderObjectElement) findRenderAncestor() *RenderObjectElement {
	current := e.parent
	for current != nil {
		if roElement, ok := current.(*RenderObjectElement); ok {
			return roElement
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

// childRenderObject resolves the render object beneath an element,
// looking through composition-only elements.
func childRenderObject(e Element) layout.RenderObject {
	if e == nil {
		return nil
	}
	if provider, ok := e.(RenderObjectProvider); ok {
		return provider.RenderObject()
	}
	return nil
}

// updateChild reconciles an existing child element against a new widget.
func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner) Element {
	if widget == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil && canUpdateWidget(existing.Widget(), widget) {
		existing.Update(widget)
		existing.RebuildIfNeeded()
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	element := inflateWidget(widget, owner)
	element.Mount(parent, nil)
	return element
}

// canUpdateWidget reports whether an element hosting existing can be
// updated in place with next.
func canUpdateWidget(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}

// inflateWidget creates and wires a fresh element for a widget.
func inflateWidget(widget Widget, owner *BuildOwner) Element {
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	if setter, ok := element.(interface{ setSelf(Element) }); ok {
		setter.setSelf(element)
	}
	return element
}

// MountRoot mounts a widget as the root of a new element tree.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	element.Mount(nil, nil)
	return element
}
