package hilo

import "strings"

// parseTypeExpr parses a type-expression string per spec §4.5. An empty
// or all-whitespace input yields Unknown(""). Leftover non-whitespace
// (besides one trailing '?', already handled inside the walk) makes the
// whole input Unknown(raw), preserving round-trip information.
func parseTypeExpr(raw string) TypeExpr {
	p := &typeParser{src: strings.TrimSpace(raw)}
	if p.src == "" {
		empty := ""
		return TypeExpr{Unknown: &empty}
	}

	ty, ok := p.parseWithOptional()
	if !ok {
		trimmed := p.src
		return TypeExpr{Unknown: &trimmed}
	}

	p.skipWS()
	if p.idx < len(p.src) {
		trimmed := p.src
		return TypeExpr{Unknown: &trimmed}
	}
	return ty
}

type typeParser struct {
	src string
	idx int
}

func (p *typeParser) parseWithOptional() (TypeExpr, bool) {
	ty, ok := p.parseInner()
	if !ok {
		return TypeExpr{}, false
	}
	p.skipWS()
	if p.peek() == '?' {
		p.idx++
		wrapped := ty
		ty = TypeExpr{Optional: &wrapped}
	}
	return ty, true
}

func (p *typeParser) parseInner() (TypeExpr, bool) {
	p.skipWS()
	if p.idx >= len(p.src) {
		return TypeExpr{}, false
	}

	if p.peek() == '{' {
		p.idx++
		fields := p.parseStructFields()
		if fields == nil {
			// Keep an empty struct `{}` distinguishable from the zero value.
			fields = []StructFieldType{}
		}
		return TypeExpr{Struct: fields}, true
	}

	base := p.parseQualifiedIdentifier()
	if len(base) == 0 {
		return TypeExpr{}, false
	}

	p.skipWS()
	if p.consume('<') {
		args := p.parseTypeArguments('>')
		return TypeExpr{Generic: &GenericType{Base: base, Arguments: args}}, true
	}

	p.skipWS()
	if p.consume('[') {
		p.skipWS()
		if len(base) == 1 && base[0] == "List" {
			var elem TypeExpr
			if p.peek() == ']' {
				p.idx++
				elem = TypeExpr{Simple: base}
			} else {
				ty, ok := p.parseWithOptional()
				if !ok {
					empty := ""
					ty = TypeExpr{Unknown: &empty}
				}
				p.skipWS()
				p.consume(']')
				elem = ty
			}
			return TypeExpr{List: &elem}, true
		}

		args := p.parseTypeArguments(']')
		return TypeExpr{Generic: &GenericType{Base: base, Arguments: args}}, true
	}

	return TypeExpr{Simple: base}, true
}

func (p *typeParser) parseStructFields() []StructFieldType {
	var fields []StructFieldType
	for {
		p.skipWS()
		if p.peek() == '}' {
			p.idx++
			break
		}

		name := p.parseIdentifierAllowQuestion()
		if name == "" {
			break
		}
		optional := strings.HasSuffix(name, "?")
		if optional {
			name = strings.TrimSuffix(name, "?")
		}

		p.skipWS()
		if !p.consume(':') {
			break
		}

		ty, ok := p.parseWithOptional()
		if !ok {
			empty := ""
			ty = TypeExpr{Unknown: &empty}
		}
		fields = append(fields, StructFieldType{Name: name, Optional: optional, Type: ty})

		p.skipWS()
		if !p.consume(',') {
			p.skipWS()
			if p.peek() == '}' {
				p.idx++
			}
			break
		}
	}
	return fields
}

func (p *typeParser) parseTypeArguments(closing byte) []TypeExpr {
	var args []TypeExpr
	for {
		p.skipWS()
		if p.peek() == closing {
			p.idx++
			break
		}
		before := p.idx
		ty, ok := p.parseWithOptional()
		if !ok {
			empty := ""
			ty = TypeExpr{Unknown: &empty}
		}
		args = append(args, ty)
		p.skipWS()
		if p.consume(closing) {
			break
		}
		p.consume(',')
		// An unterminated argument list (e.g. "Foo<" with no matching
		// closer) would otherwise spin here forever: parseWithOptional
		// fails without advancing, and neither closing nor ',' is
		// present to retry against. Bail out once a full iteration
		// makes no progress.
		if p.idx == before {
			break
		}
	}
	return args
}

func (p *typeParser) parseQualifiedIdentifier() QualifiedName {
	var parts QualifiedName
	for {
		ident := p.parseIdentifier()
		if ident == "" {
			break
		}
		parts = append(parts, ident)
		p.skipWS()
		if !p.consume('.') {
			break
		}
	}
	return parts
}

func (p *typeParser) parseIdentifier() string {
	p.skipWS()
	start := p.idx
	for p.idx < len(p.src) {
		r, w, ok := peekRune(p.src, p.idx)
		if !ok || !isIdentContinue(r) {
			break
		}
		p.idx += w
	}
	return strings.TrimSpace(p.src[start:p.idx])
}

// parseIdentifierAllowQuestion scans an identifier that may carry a
// trailing '?' (used for a struct-type field name's optional marker).
func (p *typeParser) parseIdentifierAllowQuestion() string {
	p.skipWS()
	start := p.idx
	for p.idx < len(p.src) {
		r, w, ok := peekRune(p.src, p.idx)
		if !ok || (!isIdentContinue(r) && r != '?') {
			break
		}
		p.idx += w
	}
	return strings.TrimSpace(p.src[start:p.idx])
}

func (p *typeParser) skipWS() {
	for p.idx < len(p.src) {
		r, w, ok := peekRune(p.src, p.idx)
		if !ok || !isWS(r) {
			break
		}
		p.idx += w
	}
}

func (p *typeParser) consume(ch byte) bool {
	p.skipWS()
	if p.peek() == ch {
		p.idx++
		return true
	}
	return false
}

func (p *typeParser) peek() byte {
	if p.idx >= len(p.src) {
		return 0
	}
	return p.src[p.idx]
}

func isWS(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// String renders the Simple case as a dot-joined qualified name, the
// canonical printer used by the round-trip property in spec §8: parsing
// the stringification of a Simple TypeExpr yields the same Simple.
func (t TypeExpr) String() string {
	if t.Simple != nil {
		return strings.Join(t.Simple, ".")
	}
	return ""
}
