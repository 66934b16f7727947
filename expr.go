package hilo

import (
	"strconv"
	"strings"
)

// binaryOperators is the fixed scan order for rightmost-operator-wins
// binary recognition (spec §4.6 item 3). Longer operators are listed
// before any shorter one they share a prefix with.
var binaryOperators = []string{"==", "!=", "<=", ">=", "&&", "||", "+", "-", "*", "/", "%", "<", ">"}

// parseExpression recognizes one expression from trimmed text, trying
// each shape in the fixed priority order from spec §4.6: struct literal,
// call, binary, optional chain, member, index, identifier, literal, and
// finally a raw fallback. The boolean keywords true and false are
// literals, never identifiers. Every shape but the last three recurses
// into its own sub-expressions.
func parseExpression(src string) Expression {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		empty := ""
		return Expression{Raw: &empty}
	}

	if lit, ok := parseStructLiteralExpr(trimmed); ok {
		return lit
	}

	if target, args, ok := parseCallExpr(trimmed); ok {
		targetExpr := parseExpression(target)
		argExprs := make([]Expression, len(args))
		for i, a := range args {
			argExprs[i] = parseExpression(a)
		}
		return Expression{Call: &CallExpr{Target: &targetExpr, Args: argExprs}}
	}

	if left, op, right, ok := parseBinaryExpr(trimmed); ok {
		l := parseExpression(left)
		r := parseExpression(right)
		return Expression{Binary: &BinaryExpr{Left: &l, Op: op, Right: &r}}
	}

	if target, property, ok := parseOptionalChainExpr(trimmed); ok {
		t := parseExpression(target)
		return Expression{OptionalChain: &OptionalChainExpr{Target: &t, Property: property}}
	}

	if target, property, ok := parseMemberExpr(trimmed); ok {
		t := parseExpression(target)
		return Expression{Member: &MemberExpr{Target: &t, Property: property}}
	}

	if target, index, ok := parseIndexExpr(trimmed); ok {
		t := parseExpression(target)
		i := parseExpression(index)
		return Expression{Index: &IndexExpr{Target: &t, Index: &i}}
	}

	if isIdentifierText(trimmed) && trimmed != "true" && trimmed != "false" {
		ident := trimmed
		return Expression{Identifier: &ident}
	}

	if isLiteralText(trimmed) {
		lit := trimmed
		return Expression{Literal: &lit}
	}

	raw := trimmed
	return Expression{Raw: &raw}
}

// parseStructLiteralExpr matches `QualifiedName { field: expr, … }`: the
// text up to the first '{' must be a bare qualified name, the brace span
// must be balanced and run to the exact end of src, and every depth-zero
// comma-separated entry inside must split on its first ':' into a plain
// identifier and a value expression.
func parseStructLiteralExpr(src string) (Expression, bool) {
	idx := strings.IndexByte(src, '{')
	if idx < 0 {
		return Expression{}, false
	}
	name, ok := parseQualifiedNameText(strings.TrimSpace(src[:idx]))
	if !ok {
		return Expression{}, false
	}
	interior, end, ok := extractBalanced(src, idx, '{', '}')
	if !ok || end != len(src) {
		return Expression{}, false
	}

	var fields []StructLiteralField
	for _, part := range splitArgsDepthZero(interior) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		namePart, rest, ok := cutFirst(part, ':')
		if !ok {
			return Expression{}, false
		}
		fieldName := strings.TrimSpace(namePart)
		if !isIdentifierText(fieldName) {
			return Expression{}, false
		}
		fields = append(fields, StructLiteralField{Name: fieldName, Value: parseExpression(rest)})
	}

	return Expression{StructLiteral: &StructLiteralExpr{TypeName: name, Fields: fields}}, true
}

// parseCallExpr locates the first '(' and the last ')' in src; if the
// latter is not before the former, everything up to the '(' is the
// target and the interior is depth-zero-comma-split into arguments. Text
// after the matched ')' is not required to be empty, matching the
// original parser's permissive behavior.
func parseCallExpr(src string) (target string, args []string, ok bool) {
	openIdx := strings.IndexByte(src, '(')
	if openIdx < 0 {
		return "", nil, false
	}
	closeIdx := strings.LastIndexByte(src, ')')
	if closeIdx < 0 || closeIdx < openIdx {
		return "", nil, false
	}
	target = strings.TrimSpace(src[:openIdx])
	if target == "" {
		return "", nil, false
	}
	return target, splitArgsDepthZero(src[openIdx+1 : closeIdx]), true
}

// splitArgsDepthZero splits src on commas that appear at bracket depth
// zero, tracking '(', '{', '[' against their closers. It does not honor
// string literals (neither does the behavior it is ported from): a
// comma inside a quoted argument still splits.
func splitArgsDepthZero(src string) []string {
	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(src[start:i]))
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(src[start:]); tail != "" {
		args = append(args, tail)
	}
	return args
}

// parseBinaryExpr scans src from the right at depth zero for the
// rightmost occurrence of any operator in binaryOperators; the first one
// found (scanning right to left) wins, giving a left-associative
// re-parse rather than standard precedence (spec §9).
func parseBinaryExpr(src string) (left, op, right string, ok bool) {
	runes := []rune(src)
	depth := 0
	for idx := len(runes) - 1; idx >= 0; idx-- {
		switch runes[idx] {
		case ')', ']', '}':
			depth++
		case '(', '[', '{':
			depth--
		default:
			if depth != 0 {
				continue
			}
			for _, candidate := range binaryOperators {
				opRunes := []rune(candidate)
				if idx+1 < len(opRunes) {
					continue
				}
				start := idx + 1 - len(opRunes)
				if string(runes[start:idx+1]) != candidate {
					continue
				}
				l := strings.TrimSpace(string(runes[:start]))
				r := strings.TrimSpace(string(runes[idx+1:]))
				if l != "" && r != "" {
					return l, candidate, r, true
				}
			}
		}
	}
	return "", "", "", false
}

// parseOptionalChainExpr scans src from the right at depth zero for the
// rightmost "?." whose trailing text is a plain identifier, mirroring
// parseMemberExpr's rightmost-dot scan but requiring the preceding '?'.
func parseOptionalChainExpr(src string) (target, property string, ok bool) {
	runes := []rune(src)
	depth := 0
	for idx := len(runes) - 1; idx >= 1; idx-- {
		switch runes[idx] {
		case ')', ']', '}':
			depth++
		case '(', '[', '{':
			depth--
		case '.':
			if depth == 0 && runes[idx-1] == '?' {
				t := strings.TrimSpace(string(runes[:idx-1]))
				p := strings.TrimSpace(string(runes[idx+1:]))
				if t != "" && isIdentifierText(p) {
					return t, p, true
				}
			}
		}
	}
	return "", "", false
}

// parseMemberExpr scans src from the right at depth zero for the
// rightmost '.' whose trailing text is a plain identifier and whose
// leading text is non-empty.
func parseMemberExpr(src string) (target, property string, ok bool) {
	runes := []rune(src)
	depth := 0
	for idx := len(runes) - 1; idx >= 0; idx-- {
		switch runes[idx] {
		case ')', ']', '}':
			depth++
		case '(', '[', '{':
			depth--
		case '.':
			if depth == 0 {
				t := strings.TrimSpace(string(runes[:idx]))
				p := strings.TrimSpace(string(runes[idx+1:]))
				if t != "" && isIdentifierText(p) {
					return t, p, true
				}
			}
		}
	}
	return "", "", false
}

// parseIndexExpr matches text ending in ']' whose matching '[' is found
// by scanning backward and tracking bracket depth, so a nested `[...]`
// earlier in the text does not get mistaken for the outer pair.
func parseIndexExpr(src string) (target, index string, ok bool) {
	if !strings.HasSuffix(src, "]") {
		return "", "", false
	}
	runes := []rune(src)
	depth := 0
	openIdx := -1
	for idx := len(runes) - 1; idx >= 0; idx-- {
		switch runes[idx] {
		case ']':
			depth++
		case '[':
			depth--
			if depth == 0 {
				openIdx = idx
			}
		}
		if openIdx >= 0 {
			break
		}
	}
	if openIdx <= 0 {
		return "", "", false
	}
	target = strings.TrimSpace(string(runes[:openIdx]))
	if target == "" {
		return "", "", false
	}
	return target, string(runes[openIdx+1 : len(runes)-1]), true
}

// parseQualifiedNameText requires all of s to be a dot-joined sequence
// of identifiers, unlike parseQualifiedName which only consumes a
// prefix.
func parseQualifiedNameText(s string) (QualifiedName, bool) {
	if s == "" {
		return nil, false
	}
	var name QualifiedName
	for _, part := range strings.Split(s, ".") {
		part = strings.TrimSpace(part)
		if !isIdentifierText(part) {
			return nil, false
		}
		name = append(name, part)
	}
	return name, true
}

// isIdentifierText reports whether s, in its entirety, matches the
// identifier pattern.
func isIdentifierText(s string) bool {
	r, w, ok := peekRune(s, 0)
	if !ok || !isIdentStart(r) {
		return false
	}
	for i := w; i < len(s); {
		r, w2, ok := peekRune(s, i)
		if !ok || !isIdentContinue(r) {
			return false
		}
		i += w2
	}
	return true
}

// isLiteralText reports whether s is a quoted string, the boolean
// keywords, or parses as a float.
func isLiteralText(s string) bool {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return true
	}
	if s == "true" || s == "false" {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
