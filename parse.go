// Package hilo implements the front-end parser for the HILO surface
// language: a pure transformation from source text to an immutable
// module tree, or a diagnostic describing why it could not be built.
package hilo

// Parse is the single entry point described in spec §6: it runs the
// combinator-style header phase (optional module declaration, then
// imports) and, only if that phase fully succeeds, the handwritten
// item dispatcher over whatever source remains. The header phase is
// the only one that can fail the call; malformed material at item
// level is preserved as an Other item rather than raising an error.
func Parse(source string) (*Module, *Diagnostic) {
	hdr, err := parseHeader(source)
	if err != nil {
		return nil, err
	}

	items := parseItems(source[hdr.remainderStart:])

	return &Module{
		Name:    hdr.name,
		Imports: hdr.imports,
		Items:   items,
	}, nil
}
