package layout

import "github.com/billboard-ui/billboard/pkg/graphics"

// RenderObject handles layout and painting for one node of the render tree.
//
// Layout receives the parent's constraints and must leave Size() satisfying
// them. Paint draws the node (and its children, via PaintContext) with the
// origin at the node's top-left corner.
type RenderObject interface {
	Layout(constraints Constraints)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	ParentData() any
	SetParentData(data any)
	SetParent(parent RenderObject)
	Parent() RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset assigned to a child by its parent's layout.
type BoxParentData struct {
	Offset graphics.Offset
}

// RenderBoxBase provides the common state and plumbing for render boxes.
//
// Concrete render objects embed RenderBoxBase, call SetSelf after
// construction, and implement PerformLayout plus Paint. The kit renders
// every frame from scratch, so there is no dirty tracking: Layout always
// runs PerformLayout when the constraints change or on first layout.
type RenderBoxBase struct {
	size        graphics.Size
	parentData  any
	self        RenderObject
	parent      RenderObject
	constraints Constraints
	laidOut     bool
}

// SetSelf registers the concrete render object for layout dispatch.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

// Size returns the size computed by the last layout pass.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize records the size computed during PerformLayout.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	r.size = size
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	r.parentData = data
}

// SetParent records the parent render object.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	r.parent = parent
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// Constraints returns the constraints received by the last layout pass.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// Layout stores the constraints and delegates to the concrete PerformLayout.
func (r *RenderBoxBase) Layout(constraints Constraints) {
	r.constraints = constraints
	r.laidOut = true
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// LaidOut reports whether the box has completed at least one layout pass.
func (r *RenderBoxBase) LaidOut() bool {
	return r.laidOut
}

// ChildOffset extracts the layout offset a parent assigned to child.
func ChildOffset(child RenderObject) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}

// SetParentOnChild sets the parent reference on a child render object.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	child.SetParent(parent)
}
