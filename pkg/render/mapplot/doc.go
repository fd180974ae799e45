// Package mapplot lays out a linkage map against its physical assembly and
// draws it onto a [scene.Scene].
//
// # Layout
//
// Every linkage group gets a fixed 100 px slot; the canvas is
// 100 + 100 × groups wide and half as tall. Two scale factors are shared by
// all groups so tracks are comparable across the diagram:
//
//	CMScale = 0.8 × height / max(genetic end)
//	MbScale = 0.8 × height / max(physical end in Mb)
//
// The 0.8 leaves a vertical margin around the tracks. Groups are placed left
// to right in lexicographic order of their names, between a centimorgan ruler
// on the left and a megabase ruler on the right.
//
// # Drawing
//
// Each group is drawn as a vertical genetic axis and, 30 px to its right, a
// physical sequence glyph (two parallel lines with rounded caps). Every marker
// gets a tick on the genetic axis. Markers on the group's resolved sequence
// are ticked in black and joined to their physical position by a green
// connector; markers on other sequences are ticked in magenta and get nothing
// else. Crossing connectors show where marker order disagrees between the
// map and the assembly.
//
// Shapes carry classes (see the Class constants) so styling and tests can
// pick them out of the scene.
package mapplot
