// Package widgets provides the general-purpose building blocks used by the
// site components: text, images, flex rows and columns, stacks, padding,
// sizing, coloring and clipping.
//
// Widgets here are presentational only. They describe layout and painting
// and carry no interaction or navigation behavior.
package widgets
