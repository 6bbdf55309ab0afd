// Dictionary container.
//
// The dictionary is the reversible record of every substitution, in creation
// order. Order is load-bearing: a later entry's replacement may contain an
// earlier entry's symbol (nesting), so expansion walks the dictionary
// backwards and forward references are impossible by construction.
package llc

// Entry maps one synthetic symbol to the text it replaced. The replacement
// is stored verbatim — synthetic symbols nested inside it are not expanded
// until their own entries are processed.
type Entry struct {
	Symbol      rune
	Replacement string
}

// Dictionary holds substitutions in creation order. No two entries share a
// symbol; every synthetic symbol used in the compressed text or in a
// replacement is defined by exactly one entry, and replacements only
// reference strictly earlier entries.
type Dictionary []Entry
