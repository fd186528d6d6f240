// Package tson implements TSON ("Tiny/Tight/Terse Serialized Object Notation"), a
// compact binary interchange format for JSON-shaped data augmented with a richer
// type set: booleans, null, arbitrary-precision signed integers, single- and
// double-precision floats, UTF-8 strings, raw byte blobs, ordered arrays, keyed
// documents, timestamps, durations with units, and geographic latitude/longitude
// pairs.
//
// The encoding favors smallness: short opcodes cover small, common values, a
// base-128 variable-length encoding covers magnitudes, and repeated strings and
// document keys are deduplicated via back-references scoped to a single encoded
// value.
//
// A TSON message is exactly one encoded Value: there is no file header, no magic
// number, and no version byte.
package tson
