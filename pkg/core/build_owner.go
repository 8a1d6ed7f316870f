package core

import "sort"

// BuildOwner tracks elements that need rebuilding.
//
// Elements schedule themselves via MarkNeedsBuild; FlushBuild rebuilds
// them parents-first so a parent rebuild that replaces a child never
// leaves a stale dirty entry behind.
type BuildOwner struct {
	dirty []Element
}

// NewBuildOwner creates an empty build owner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{}
}

// ScheduleBuild queues an element for the next FlushBuild.
func (o *BuildOwner) ScheduleBuild(element Element) {
	if element == nil {
		return
	}
	for _, e := range o.dirty {
		if e == element {
			return
		}
	}
	o.dirty = append(o.dirty, element)
}

// NeedsWork returns true if any element awaits rebuilding.
func (o *BuildOwner) NeedsWork() bool {
	return len(o.dirty) > 0
}

// FlushBuild rebuilds all dirty elements, shallowest first.
// Rebuilds triggered during the flush are processed in the same pass.
func (o *BuildOwner) FlushBuild() {
	for len(o.dirty) > 0 {
		batch := o.dirty
		o.dirty = nil
		sort.SliceStable(batch, func(i, j int) bool {
			return batch[i].Depth() < batch[j].Depth()
		})
		for _, element := range batch {
			element.RebuildIfNeeded()
		}
	}
}
