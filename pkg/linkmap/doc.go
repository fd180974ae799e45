// Package linkmap holds a genetic linkage map and its placement on a physical
// assembly.
//
// A [Map] is a set of linkage groups. Each group is a [Chromosome]: the markers
// assigned to it, the physical sequence most of those markers were called
// against, and the genetic and physical extents derived from them. Markers
// that sit on another sequence stay in the group but are excluded from the
// extents; they are the disagreements a plot highlights.
//
// # Loading
//
// [Load] and [Read] parse the tab-delimited map format:
//
//	group	position	locus
//	LG1	0.0	scaffold_7_1500
//	LG1	3.2	scaffold_7_98211
//
// The locus encodes the sequence name and the base-pair position, split on the
// rightmost underscore (see [ParseMarkerID]). After all lines are read every
// group is resolved against the index lengths, and the groups named for
// reversal get their genetic coordinates flipped.
//
// # Lifecycle
//
// A loaded map is not mutated again. Renderers and reporters read it
// concurrently or in any order.
package linkmap
