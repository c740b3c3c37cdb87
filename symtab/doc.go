// Package symtab implements a bidirectional string↔Label symbol table:
// every symbol table carries a content checksum, and two tables are
// compatible for use together in one operation iff they share a
// checksum or one side is nil.
package symtab
