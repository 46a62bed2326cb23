// Package swift decodes mangled Swift symbol names into node trees and
// renders those trees as human-readable declarations.
//
// # Overview
//
// Mangled names are flat strings produced by the compiler to encode a
// declaration's full structure: its module path, nesting, name, and type
// signature. This package recovers that structure. Decoding and rendering
// are separate stages with a single tree IR between them, so tools can
// inspect or transform the tree instead of scraping display text.
//
// The usual entry points are Demangle and DemangleSimple, which decode and
// render in one step, and DemangleToTree plus NodeToString for tools that
// want the tree:
//
//	root := swift.DemangleToTree("_TF4main3fooFT_T_", swift.DefaultOptions())
//	if root.Kind() != swift.KindFailure {
//		fmt.Println(swift.NodeToString(root, swift.DefaultOptions()))
//	}
//
// # Node Structure
//
// A Node carries a NodeKind tag, an optional text payload (identifiers,
// numbers, operator spellings), and an ordered child sequence. Child order
// is meaningful: an argument tuple precedes its return type, a context
// precedes the name it qualifies. Every node has at most one parent for its
// lifetime, and sibling navigation is computed from the parent's sequence.
// Trees returned by the demangler are never mutated afterwards, so they are
// safe to share across goroutines.
//
// # Decoding
//
// Decoding is total. Every input produces exactly one tree: a successful
// decode yields a root describing the symbol, and anything else (a missing
// prefix, a truncated literal, an unknown code, leftover input, an
// out-of-range back-reference) yields a root of KindFailure that retains
// the original input. No error values cross this API.
//
// Mangled names compress repeated structure with back-references into a
// substitution table built during the decode. Table indices are assigned in
// completion order, and resolving a reference clones the recorded entry, so
// a subtree reached through a back-reference is structurally equal to but
// never the same node as its first occurrence.
//
// # Rendering
//
// NodeToString is a pure function of the tree and a DemangleOptions value.
// Equal trees render identically, rendering never mutates the tree, and the
// printer produces output for every kind, including hand-built trees in
// shapes the demangler would not emit. DemangleOptions selects sugared
// spellings for Array and Optional instantiations and controls whether
// field offset records show the field's declared type.
package swift
