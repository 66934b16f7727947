package hilo

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// memberListGrammar is the one fragment of the header grammar expressed
// declaratively, the way the teacher repo expresses List[T] and similar
// comma-separated-with-trailing-comma shapes (hikitani-easylang/ast.go's
// `List[T]`: "@@ ( EOL* \",\" EOL* @@? )*"). It is always fed a
// self-contained, already brace-delimited substring located by the
// handwritten scanner below, so full consumption to EOF is guaranteed by
// construction rather than by any parser option.
type memberListGrammar struct {
	Members []string `"{" @Ident ("," @Ident)* ","? "}"`
}

var memberListLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Comma", Pattern: `,`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
})

var memberListParser = participle.MustBuild[memberListGrammar](
	participle.Lexer(memberListLexer),
	participle.Elide("Whitespace"),
)

// header holds the result of the combinator phase: the optional module
// name, the ordered imports, and the byte offset in source where the
// handwritten item dispatcher should take over.
type header struct {
	name           QualifiedName
	imports        []Import
	remainderStart int
}

// parseHeader runs the combinator-style phase of the grammar described in
// spec §4.2: an optional `module` declaration followed by zero or more
// `import` clauses. Any malformed module/import clause aggregates into a
// single Parse diagnostic and aborts the whole parse, mirroring the
// original chumsky-based parser's behavior (see SPEC_FULL.md §4/§7).
func parseHeader(src string) (header, *Diagnostic) {
	var errs []string
	idx := skipIgnorable(src, 0)

	var name QualifiedName
	next, ok, errMsg := parseModuleDecl(src, idx)
	if errMsg != "" {
		errs = append(errs, errMsg)
	} else if ok {
		name = next.name
		idx = skipIgnorable(src, next.end)
	}

	var imports []Import
	for {
		imp, end, matched, errMsg := parseImport(src, idx)
		if errMsg != "" {
			errs = append(errs, errMsg)
			break
		}
		if !matched {
			break
		}
		imports = append(imports, imp)
		idx = skipIgnorable(src, end)
	}

	if len(errs) > 0 {
		return header{}, parseErrorf("%s", strings.Join(errs, "\n"))
	}

	return header{name: name, imports: imports, remainderStart: idx}, nil
}

type moduleDeclResult struct {
	name QualifiedName
	end  int
}

// parseModuleDecl matches `module <qualifiedName>`. If the keyword is
// absent, it returns (zero, false, ""): no module declaration here, not an
// error. If the keyword is present but no qualified name follows, it
// returns a non-empty error message.
func parseModuleDecl(src string, idx int) (moduleDeclResult, bool, string) {
	if !startsWithKeyword(src, idx, "module") {
		return moduleDeclResult{}, false, ""
	}
	pos := idx + len("module")
	pos = skipIgnorable(src, pos)
	name, end, ok := parseQualifiedName(src, pos)
	if !ok {
		return moduleDeclResult{}, false, "expected a qualified name after 'module'"
	}
	return moduleDeclResult{name: name, end: end}, true, ""
}

// parseImport matches one `import <qualifiedName> <importTail>` clause.
// The bool return reports whether the `import` keyword matched at all;
// the string return carries a non-empty error message when the keyword
// matched but the clause could not be completed.
func parseImport(src string, idx int) (Import, int, bool, string) {
	if !startsWithKeyword(src, idx, "import") {
		return Import{}, idx, false, ""
	}
	pos := idx + len("import")
	pos = skipIgnorable(src, pos)
	path, pos, ok := parseQualifiedName(src, pos)
	if !ok {
		return Import{}, idx, true, "expected a qualified name after 'import'"
	}

	alias, members, end, errMsg := parseImportTail(src, pos)
	if errMsg != "" {
		return Import{}, idx, true, errMsg
	}
	return Import{Path: path, Members: members, Alias: alias}, end, true, ""
}

// parseImportTail matches the either-order alias/member-list ambiguity
// described in spec §4.2: `(alias memberList?) | (memberList alias?) | ε`.
func parseImportTail(src string, idx int) (*Identifier, []Identifier, int, string) {
	pos := skipIgnorable(src, idx)

	if alias, next, ok := parseAlias(src, pos); ok {
		if members, next2, ok2, errMsg := parseMemberList(src, skipIgnorable(src, next)); errMsg != "" {
			return nil, nil, idx, errMsg
		} else if ok2 {
			return &alias, members, next2, ""
		}
		return &alias, nil, next, ""
	}

	if members, next, ok, errMsg := parseMemberList(src, pos); errMsg != "" {
		return nil, nil, idx, errMsg
	} else if ok {
		if alias, next2, ok2 := parseAlias(src, skipIgnorable(src, next)); ok2 {
			return &alias, members, next2, ""
		}
		return nil, members, next, ""
	}

	return nil, nil, pos, ""
}

// parseAlias matches `as <identifier>`.
func parseAlias(src string, idx int) (Identifier, int, bool) {
	if !startsWithKeyword(src, idx, "as") {
		return "", idx, false
	}
	pos := skipIgnorable(src, idx+len("as"))
	name, end, ok := takeIdent(src, pos)
	if !ok {
		return "", idx, false
	}
	return name, end, true
}

// parseMemberList matches `{ ident, ident, ... }` with an optional
// trailing comma, by locating the balanced brace span by hand and
// delegating the interior shape to memberListParser.
func parseMemberList(src string, idx int) ([]Identifier, int, bool, string) {
	if idx >= len(src) || src[idx] != '{' {
		return nil, idx, false, ""
	}
	span, end, ok := extractBalanced(src, idx, '{', '}')
	if !ok {
		return nil, idx, true, "unmatched '{' in import member list"
	}
	result, err := memberListParser.ParseString("", "{"+span+"}")
	if err != nil {
		return nil, idx, true, "malformed import member list: " + err.Error()
	}
	return result.Members, end, true, ""
}

// parseQualifiedName matches a non-empty dot-joined identifier sequence:
// `identifier (ws "." ws identifier)*`.
func parseQualifiedName(src string, idx int) (QualifiedName, int, bool) {
	first, end, ok := takeIdent(src, idx)
	if !ok {
		return nil, idx, false
	}
	parts := QualifiedName{first}
	for {
		pos := skipIgnorable(src, end)
		if pos >= len(src) || src[pos] != '.' {
			break
		}
		pos = skipIgnorable(src, pos+1)
		ident, next, ok := takeIdent(src, pos)
		if !ok {
			break
		}
		parts = append(parts, ident)
		end = next
	}
	return parts, end, true
}
