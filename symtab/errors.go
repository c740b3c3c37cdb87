package symtab

import "errors"

// ErrSymbolIncompatible is returned when an operation is asked to
// combine two symbol tables that are neither identical by checksum nor
// one of them nil.
var ErrSymbolIncompatible = errors.New("symtab: incompatible symbol tables")

// ErrUnknownLabel is returned when a label has no symbol bound to it.
var ErrUnknownLabel = errors.New("symtab: unknown label")

// ErrUnknownSymbol is returned when a symbol has never been added.
var ErrUnknownSymbol = errors.New("symtab: unknown symbol")
