// Package fai reads FASTA index files.
//
// A FASTA index (as written by samtools faidx) is tab-delimited with one line
// per sequence: name, length, offset, line bases, line width. Only the first
// two columns are used here; the rest are ignored, so two-column genome files
// are accepted too.
//
// [Scan] yields entries lazily in file order and stops at the first malformed
// line. [ReadLengths] and [Load] collect the entries into a [Lengths] map,
// letting later duplicates overwrite earlier ones.
package fai
