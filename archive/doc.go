// Package archive implements an ordered key→FST container: a single
// file holding many named transducers, modeled on far.h's
// FarWriter/FarReader hierarchy (STTableFarWriter, STListFarWriter, and
// the single-fst case).
//
// Three container Kinds are supported. KindSTTable requires keys added
// in strictly increasing lexicographic order and supports binary-search
// Find; KindSTList accepts keys in any order and Find falls back to a
// linear scan; KindSingle holds exactly one entry.
package archive
