package sitetest

import (
	"fmt"
	"reflect"

	"github.com/billboard-ui/billboard/pkg/core"
	"github.com/billboard-ui/billboard/pkg/layout"
)

// Finder locates elements in a mounted widget tree.
type Finder interface {
	// Evaluate returns all matching elements under root, depth-first
	// pre-order.
	Evaluate(root core.Element) []core.Element
	// Description names the finder for failure messages.
	Description() string
}

// FinderResult wraps matched elements with convenient accessors.
type FinderResult struct {
	elements []core.Element
	finder   Finder
}

// Find evaluates a finder against the tester's mounted tree.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{elements: finder.Evaluate(t.root), finder: finder}
}

// First returns the first match; panics if there are none.
func (r FinderResult) First() core.Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("no elements matched %s", r.finder.Description()))
	}
	return r.elements[0]
}

// At returns the match at index; panics if out of range.
func (r FinderResult) At(index int) core.Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("index %d out of range for %d matches of %s",
			index, len(r.elements), r.finder.Description()))
	}
	return r.elements[index]
}

// All returns every match in traversal order.
func (r FinderResult) All() []core.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists reports whether anything matched.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

// Widget returns the first match's widget.
func (r FinderResult) Widget() core.Widget {
	return r.First().Widget()
}

// RenderObject returns the first match's render object, or nil.
func (r FinderResult) RenderObject() layout.RenderObject {
	if provider, ok := r.First().(core.RenderObjectProvider); ok {
		return provider.RenderObject()
	}
	return nil
}

func collectMatches(root core.Element, match func(core.Element) bool) []core.Element {
	var matches []core.Element
	var walk func(core.Element)
	walk = func(element core.Element) {
		if match(element) {
			matches = append(matches, element)
		}
		element.VisitChildren(func(child core.Element) bool {
			walk(child)
			return true
		})
	}
	if root != nil {
		walk(root)
	}
	return matches
}

type typeFinder struct {
	widgetType reflect.Type
}

func (f *typeFinder) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, func(e core.Element) bool {
		return reflect.TypeOf(e.Widget()) == f.widgetType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.widgetType)
}

// ByType matches elements whose widget has type T.
func ByType[T core.Widget]() Finder {
	return &typeFinder{widgetType: reflect.TypeFor[T]()}
}

type keyFinder struct {
	key any
}

func (f *keyFinder) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, func(e core.Element) bool {
		return e.Widget().Key() != nil && reflect.DeepEqual(e.Widget().Key(), f.key)
	})
}

func (f *keyFinder) Description() string {
	return fmt.Sprintf("ByKey(%v)", f.key)
}

// ByKey matches elements whose widget carries the given key.
func ByKey(key any) Finder {
	return &keyFinder{key: key}
}

type textFinder struct {
	content string
}

func (f *textFinder) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, func(e core.Element) bool {
		type texter interface{ TextContent() string }
		if widget, ok := e.Widget().(texter); ok {
			return widget.TextContent() == f.content
		}
		return false
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.content)
}

// ByText matches widgets exposing TextContent() equal to content.
func ByText(content string) Finder {
	return &textFinder{content: content}
}

type predicateFinder struct {
	predicate   func(core.Widget) bool
	description string
}

func (f *predicateFinder) Evaluate(root core.Element) []core.Element {
	return collectMatches(root, func(e core.Element) bool {
		return f.predicate(e.Widget())
	})
}

func (f *predicateFinder) Description() string {
	return f.description
}

// ByPredicate matches widgets satisfying an arbitrary predicate.
func ByPredicate(description string, predicate func(core.Widget) bool) Finder {
	return &predicateFinder{predicate: predicate, description: description}
}

type descendantFinder struct {
	ancestor Finder
	target   Finder
}

func (f *descendantFinder) Evaluate(root core.Element) []core.Element {
	var matches []core.Element
	seen := make(map[core.Element]bool)
	for _, ancestor := range f.ancestor.Evaluate(root) {
		for _, match := range f.target.Evaluate(ancestor) {
			if match != ancestor && !seen[match] {
				seen[match] = true
				matches = append(matches, match)
			}
		}
	}
	return matches
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)",
		f.ancestor.Description(), f.target.Description())
}

// Descendant matches targets beneath elements matched by ancestor.
func Descendant(ancestor, target Finder) Finder {
	return &descendantFinder{ancestor: ancestor, target: target}
}
