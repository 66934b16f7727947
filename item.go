package hilo

import "strings"

// parseItems repeatedly tries record / task / workflow / test recognizers
// over src in fixed order. The first recognizer that matches consumes its
// declaration and iteration resumes; if none match and trimmed text
// remains, a single Other item is emitted and iteration stops (spec §4.3).
func parseItems(src string) []Item {
	var items []Item
	idx := skipIgnorable(src, 0)

	for idx < len(src) {
		if item, next, ok := parseRecordDecl(src, idx); ok {
			items = append(items, item)
			idx = skipIgnorable(src, next)
			continue
		}
		if item, next, ok := parseTaskDecl(src, idx); ok {
			items = append(items, item)
			idx = skipIgnorable(src, next)
			continue
		}
		if item, next, ok := parseWorkflowDecl(src, idx); ok {
			items = append(items, item)
			idx = skipIgnorable(src, next)
			continue
		}
		if item, next, ok := parseTestDecl(src, idx); ok {
			items = append(items, item)
			idx = skipIgnorable(src, next)
			continue
		}

		remainder := strings.TrimSpace(src[idx:])
		if remainder == "" {
			break
		}
		items = append(items, Item{Other: &remainder})
		break
	}

	return items
}

func parseRecordDecl(src string, start int) (Item, int, bool) {
	idx := skipDocComments(src, start)
	if !startsWithKeyword(src, idx, "record") {
		return Item{}, start, false
	}
	idx += len("record")
	idx = skipIgnorable(src, idx)

	name, idx, ok := takeIdent(src, idx)
	if !ok {
		return Item{}, start, false
	}
	idx = skipIgnorable(src, idx)

	var typeParams []Identifier
	if idx < len(src) && src[idx] == '<' {
		paramsSrc, next, ok := extractBalanced(src, idx, '<', '>')
		if !ok {
			return Item{}, start, false
		}
		idx = next
		typeParams = splitTrim(paramsSrc)
		idx = skipIgnorable(src, idx)
	}

	if idx >= len(src) || src[idx] != '{' {
		return Item{}, start, false
	}
	fieldsSrc, next, ok := extractBalanced(src, idx, '{', '}')
	if !ok {
		return Item{}, start, false
	}
	idx = next

	return Item{Record: &RecordDecl{
		Name:       name,
		TypeParams: typeParams,
		Fields:     parseRecordFields(fieldsSrc),
	}}, idx, true
}

func parseTaskDecl(src string, start int) (Item, int, bool) {
	idx := skipDocComments(src, start)
	if !startsWithKeyword(src, idx, "task") {
		return Item{}, start, false
	}
	idx += len("task")
	idx = skipIgnorable(src, idx)

	name, idx, ok := takeIdent(src, idx)
	if !ok {
		return Item{}, start, false
	}
	idx = skipIgnorable(src, idx)

	if idx >= len(src) || src[idx] != '(' {
		return Item{}, start, false
	}
	paramsSrc, next, ok := extractBalanced(src, idx, '(', ')')
	if !ok {
		return Item{}, start, false
	}
	idx = next
	params := parseParams(paramsSrc)
	idx = skipIgnorable(src, idx)

	var returnType *TypeExpr
	if idx < len(src) && strings.HasPrefix(src[idx:], "->") {
		idx += 2
		idx = skipIgnorable(src, idx)
		typeStart := idx
		for idx < len(src) && src[idx] != '{' {
			_, w, ok := peekRune(src, idx)
			if !ok {
				break
			}
			idx += w
		}
		tyStr := strings.TrimSpace(src[typeStart:idx])
		if tyStr != "" {
			ty := parseTypeExpr(tyStr)
			returnType = &ty
		}
	}
	idx = skipIgnorable(src, idx)

	if idx >= len(src) || src[idx] != '{' {
		return Item{}, start, false
	}
	bodySrc, next, ok := extractBalanced(src, idx, '{', '}')
	if !ok {
		return Item{}, start, false
	}
	idx = next

	return Item{Task: &TaskDecl{
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Body:       buildBlock(bodySrc),
	}}, idx, true
}

func parseWorkflowDecl(src string, start int) (Item, int, bool) {
	idx := skipDocComments(src, start)
	if !startsWithKeyword(src, idx, "workflow") {
		return Item{}, start, false
	}
	idx += len("workflow")
	idx = skipIgnorable(src, idx)

	name, idx, ok := takeIdent(src, idx)
	if !ok {
		return Item{}, start, false
	}
	idx = skipIgnorable(src, idx)

	if idx >= len(src) || src[idx] != '{' {
		return Item{}, start, false
	}
	bodySrc, next, ok := extractBalanced(src, idx, '{', '}')
	if !ok {
		return Item{}, start, false
	}
	idx = next

	return Item{Workflow: &WorkflowDecl{
		Name: name,
		Body: buildBlock(bodySrc),
	}}, idx, true
}

func parseTestDecl(src string, start int) (Item, int, bool) {
	idx := skipDocComments(src, start)
	if !startsWithKeyword(src, idx, "test") {
		return Item{}, start, false
	}
	idx += len("test")
	idx = skipIgnorable(src, idx)

	var name string
	var ok bool
	if idx < len(src) && src[idx] == '"' {
		name, idx, ok = takeStringLiteral(src, idx)
	} else {
		name, idx, ok = takeIdent(src, idx)
	}
	if !ok {
		return Item{}, start, false
	}
	idx = skipIgnorable(src, idx)

	if idx >= len(src) || src[idx] != '{' {
		return Item{}, start, false
	}
	bodySrc, next, ok := extractBalanced(src, idx, '{', '}')
	if !ok {
		return Item{}, start, false
	}
	idx = next

	return Item{Test: &TestDecl{
		Name: name,
		Body: buildBlock(bodySrc),
	}}, idx, true
}

// splitTrim splits a comma-separated list, trims each element, and drops
// empties — used for a record's `<T, U>` type-parameter list.
func splitTrim(s string) []Identifier {
	var out []Identifier
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseRecordFields splits a record body by line, dropping blank lines
// and lines that are comments or stray braces, then splits each
// remaining line at depth-zero commas (a nested `{ ... }` struct type on
// the same line does not get split apart) and parses each resulting
// chunk as `name[?]: type[ = default]`. This handles both a
// traditional one-field-per-line body and the single-line,
// comma-separated style used in spec §8's record example.
func parseRecordFields(body string) []RecordField {
	var fields []RecordField
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") || strings.HasPrefix(line, "}") {
			continue
		}
		for _, chunk := range splitArgsDepthZero(line) {
			chunk = strings.TrimSpace(chunk)
			if chunk == "" {
				continue
			}
			namePart, rest, ok := cutFirst(chunk, ':')
			if !ok {
				continue
			}
			name := strings.TrimSpace(namePart)
			optional := strings.HasSuffix(name, "?")
			if optional {
				name = strings.TrimSuffix(name, "?")
			}

			tyStr := rest
			if ty, _, ok := cutFirst(rest, '='); ok {
				tyStr = ty
			}
			tyStr = strings.TrimSpace(tyStr)
			tyStr = strings.TrimSuffix(tyStr, ",")
			tyStr = strings.TrimSpace(tyStr)

			fields = append(fields, RecordField{
				Name:     name,
				Optional: optional,
				Type:     parseTypeExpr(tyStr),
			})
		}
	}
	return fields
}

// parseParams splits a task's parameter list at depth-zero commas and
// parses each as `name: type[ = default]`.
func parseParams(src string) []Param {
	var params []Param
	for _, part := range splitArgsDepthZero(src) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		namePart, rest, ok := cutFirst(part, ':')
		if !ok {
			continue
		}
		name := strings.TrimSpace(namePart)
		rest = strings.TrimSpace(rest)

		tyPart := rest
		var def *string
		if ty, defaultText, ok := cutFirst(rest, '='); ok {
			tyPart = strings.TrimSpace(ty)
			d := strings.TrimSpace(defaultText)
			def = &d
		}

		params = append(params, Param{
			Name:    name,
			Type:    parseTypeExpr(tyPart),
			Default: def,
		})
	}
	return params
}

// cutFirst splits s at the first occurrence of sep, mirroring Rust's
// str::split_once.
func cutFirst(s string, sep byte) (before, after string, found bool) {
	idx := strings.IndexByte(s, sep)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}
