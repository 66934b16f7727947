package hilo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildBlock_RawIsTrimmedBody(t *testing.T) {
	block := buildBlock("\n  let x = 1\n  return x\n")
	if block.Raw != "let x = 1\n  return x" {
		t.Errorf("unexpected raw: %q", block.Raw)
	}
}

func TestBuildBlock_SkipsBraceOnlyAndBlankLines(t *testing.T) {
	block := buildBlock("\n{\nreturn 1\n}\n\n")
	if len(block.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(block.Statements))
	}
}

func TestParseStatement(t *testing.T) {
	cases := testCases[Statement]{
		{
			Name: "let with type and value",
			Code: "let y: Int = x + 1",
			Expected: Statement{Let: &LetStatement{
				Name:  "y",
				Type:  &TypeExpr{Simple: QualifiedName{"Int"}},
				Value: exprPtr(Expression{Binary: &BinaryExpr{Left: exprPtr(Expression{Identifier: ptr("x")}), Op: "+", Right: exprPtr(Expression{Literal: ptr("1")})}}),
			}},
		},
		{
			Name: "let with no declared type",
			Code: `let items = response?.data["items"]`,
			Expected: Statement{Let: &LetStatement{
				Name: "items",
				Value: exprPtr(Expression{Index: &IndexExpr{
					Target: exprPtr(Expression{OptionalChain: &OptionalChainExpr{
						Target:   exprPtr(Expression{Identifier: ptr("response")}),
						Property: "data",
					}}),
					Index: exprPtr(Expression{Literal: ptr(`"items"`)}),
				}}),
			}},
		},
		{
			Name: "return with value",
			Code: "return y",
			Expected: Statement{Return: &ReturnStatement{
				Value: exprPtr(Expression{Identifier: ptr("y")}),
			}},
		},
		{
			Name:     "return with no value",
			Code:     "return",
			Expected: Statement{Return: &ReturnStatement{}},
		},
		{
			Name:     "bare expression",
			Code:     "x",
			Expected: Statement{Expr: exprPtr(Expression{Identifier: ptr("x")})},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got := parseStatement(tc.Code)
			if diff := cmp.Diff(tc.Expected, got); diff != "" {
				t.Errorf("parseStatement(%q) mismatch (-want +got):\n%s", tc.Code, diff)
			}
		})
	}
}
