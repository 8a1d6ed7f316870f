// Package site contains the marketing-site components built on the widget
// kit: the scrolling sponsor [Ticker], the width-constraining [Container],
// and the [PageLayout] chrome composing background, accent bar, navigation
// and footer around page content.
//
// Components here are presentational and stateless from the caller's
// point of view. Rendering is a pure function of the widget tree; the
// ticker's motion comes from the animation clock, not from any retained
// state in the component itself.
package site
