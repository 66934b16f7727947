package hilo

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// peekRune returns the rune starting at idx and its width in bytes, or
// (0, 0, false) at end of input.
func peekRune(src string, idx int) (rune, int, bool) {
	if idx >= len(src) {
		return 0, 0, false
	}
	r, w := utf8.DecodeRuneInString(src[idx:])
	return r, w, true
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// skipSpaces advances idx past a run of whitespace characters.
func skipSpaces(src string, idx int) int {
	for idx < len(src) {
		r, w, ok := peekRune(src, idx)
		if !ok || !unicode.IsSpace(r) {
			break
		}
		idx += w
	}
	return idx
}

// skipLineComment advances idx past the remainder of a `//` or `///`
// comment, through the next newline (inclusive) or end-of-input.
func skipLineComment(src string, idx int) int {
	for idx < len(src) {
		r, w, _ := peekRune(src, idx)
		idx += w
		if r == '\n' {
			break
		}
	}
	return idx
}

// skipBlockComment advances idx past a `/*...*/` comment. An unterminated
// block comment consumes to end-of-input without failing (see spec's open
// question on this behavior).
func skipBlockComment(src string, idx int) int {
	for idx < len(src) {
		if strings.HasPrefix(src[idx:], "*/") {
			return idx + 2
		}
		_, w, ok := peekRune(src, idx)
		if !ok {
			break
		}
		idx += w
	}
	return idx
}

// skipDocComments skips only whitespace and `///` runs, so that a doc
// comment directly attached to a declaration keyword is not mistaken for
// the start of the keyword itself. It deliberately does not skip `//` or
// `/*...*/`, unlike skipIgnorable.
func skipDocComments(src string, idx int) int {
	for {
		idx = skipSpaces(src, idx)
		if strings.HasPrefix(src[idx:], "///") {
			idx = skipLineComment(src, idx+3)
			continue
		}
		break
	}
	return idx
}

// skipIgnorable skips any mixture of whitespace and all three comment
// flavors. Doc-comment (`///`) is checked before line-comment (`//`)
// since the former is a prefix match of the latter.
func skipIgnorable(src string, idx int) int {
	for {
		start := idx
		idx = skipSpaces(src, idx)
		switch {
		case strings.HasPrefix(src[idx:], "///"):
			idx = skipLineComment(src, idx+3)
		case strings.HasPrefix(src[idx:], "//"):
			idx = skipLineComment(src, idx+2)
		case strings.HasPrefix(src[idx:], "/*"):
			idx = skipBlockComment(src, idx+2)
		}
		if idx == start {
			break
		}
	}
	return idx
}

// startsWithKeyword reports whether src[idx:] begins with keyword followed
// by a right word boundary (the next character, if any, is not a valid
// identifier-continuation character).
func startsWithKeyword(src string, idx int, keyword string) bool {
	if idx >= len(src) || !strings.HasPrefix(src[idx:], keyword) {
		return false
	}
	r, _, ok := peekRune(src, idx+len(keyword))
	if !ok {
		return true
	}
	return !isIdentContinue(r)
}

// takeIdent scans one identifier starting exactly at idx.
func takeIdent(src string, idx int) (string, int, bool) {
	r, w, ok := peekRune(src, idx)
	if !ok || !isIdentStart(r) {
		return "", idx, false
	}
	end := idx + w
	for {
		r, w, ok := peekRune(src, end)
		if !ok || !isIdentContinue(r) {
			break
		}
		end += w
	}
	return src[idx:end], end, true
}

// takeStringLiteral scans a double-quoted string literal starting exactly
// at idx, resolving backslash escapes by copying the escaped byte
// literally (no interpretation of \n, \t, etc.), and returns the
// unescaped content without surrounding quotes.
func takeStringLiteral(src string, idx int) (string, int, bool) {
	if idx >= len(src) || src[idx] != '"' {
		return "", idx, false
	}
	var sb strings.Builder
	i := idx + 1
	escape := false
	for i < len(src) {
		r, w, ok := peekRune(src, i)
		if !ok {
			break
		}
		i += w
		if escape {
			sb.WriteRune(r)
			escape = false
			continue
		}
		switch r {
		case '\\':
			escape = true
		case '"':
			return sb.String(), i, true
		default:
			sb.WriteRune(r)
		}
	}
	return "", idx, false
}

// extractBalanced extracts the interior text of a bracketed span opening
// with open at idx, honoring nested occurrences of open/close and
// ignoring bracket characters inside double-quoted string literals
// (backslash escapes protect the following byte). It returns the interior
// text and the index immediately after the matching closer.
func extractBalanced(src string, idx int, open, close byte) (string, int, bool) {
	if idx >= len(src) || src[idx] != open {
		return "", idx, false
	}
	depth := 1
	i := idx + 1
	contentStart := i
	inString := false
	escape := false
	for i < len(src) {
		ch := src[i]
		i++
		if inString {
			if escape {
				escape = false
				continue
			}
			switch ch {
			case '\\':
				escape = true
			case '"':
				inString = false
			}
			continue
		}
		switch {
		case ch == '"':
			inString = true
		case ch == open:
			depth++
		case ch == close:
			depth--
			if depth == 0 {
				return src[contentStart : i-1], i, true
			}
		}
	}
	return "", idx, false
}
