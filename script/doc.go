// Package script is a polymorphic dispatch layer: given a runtime
// arc-type string ("standard", "log", "boolean", "probability"), it
// resolves the concrete semiring's Zero/One weights and a
// fstfile.WeightCodec for that type, the way OpenFST's script layer
// resolves a template arc type from a string at runtime.
package script
