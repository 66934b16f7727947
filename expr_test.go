package hilo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseExpression(t *testing.T) {
	cases := testCases[Expression]{
		{
			Name:     "identifier",
			Code:     "x",
			Expected: Expression{Identifier: ptr("x")},
		},
		{
			Name:     "numeric literal",
			Code:     "1",
			Expected: Expression{Literal: ptr("1")},
		},
		{
			Name:     "boolean literal",
			Code:     "true",
			Expected: Expression{Literal: ptr("true")},
		},
		{
			Name:     "string literal",
			Code:     `"items"`,
			Expected: Expression{Literal: ptr(`"items"`)},
		},
		{
			Name: "binary picks the rightmost operator at depth zero",
			Code: "x + 1",
			Expected: Expression{Binary: &BinaryExpr{
				Left:  exprPtr(Expression{Identifier: ptr("x")}),
				Op:    "+",
				Right: exprPtr(Expression{Literal: ptr("1")}),
			}},
		},
		{
			Name: "binary does not implement standard precedence",
			Code: "a + b * c",
			Expected: Expression{Binary: &BinaryExpr{
				Left: exprPtr(Expression{Binary: &BinaryExpr{
					Left:  exprPtr(Expression{Identifier: ptr("a")}),
					Op:    "+",
					Right: exprPtr(Expression{Identifier: ptr("b")}),
				}}),
				Op:    "*",
				Right: exprPtr(Expression{Identifier: ptr("c")}),
			}},
		},
		{
			Name: "member access",
			Code: "Researcher.run",
			Expected: Expression{Member: &MemberExpr{
				Target:   exprPtr(Expression{Identifier: ptr("Researcher")}),
				Property: "run",
			}},
		},
		{
			Name: "call",
			Code: "Researcher.run(topic)",
			Expected: Expression{Call: &CallExpr{
				Target: exprPtr(Expression{Member: &MemberExpr{
					Target:   exprPtr(Expression{Identifier: ptr("Researcher")}),
					Property: "run",
				}}),
				Args: []Expression{{Identifier: ptr("topic")}},
			}},
		},
		{
			Name: "optional chain followed by index",
			Code: `response?.data["items"]`,
			Expected: Expression{Index: &IndexExpr{
				Target: exprPtr(Expression{OptionalChain: &OptionalChainExpr{
					Target:   exprPtr(Expression{Identifier: ptr("response")}),
					Property: "data",
				}}),
				Index: exprPtr(Expression{Literal: ptr(`"items"`)}),
			}},
		},
		{
			Name: "struct literal with nested index",
			Code: `Brief { title: topic, sources: data["sources"] }`,
			Expected: Expression{StructLiteral: &StructLiteralExpr{
				TypeName: QualifiedName{"Brief"},
				Fields: []StructLiteralField{
					{Name: "title", Value: Expression{Identifier: ptr("topic")}},
					{Name: "sources", Value: Expression{Index: &IndexExpr{
						Target: exprPtr(Expression{Identifier: ptr("data")}),
						Index:  exprPtr(Expression{Literal: ptr(`"sources"`)}),
					}}},
				},
			}},
		},
		{
			Name:     "unrecognizable text falls through to Raw",
			Code:     "!!!",
			Expected: Expression{Raw: ptr("!!!")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got := parseExpression(tc.Code)
			if diff := cmp.Diff(tc.Expected, got); diff != "" {
				t.Errorf("parseExpression(%q) mismatch (-want +got):\n%s", tc.Code, diff)
			}
		})
	}
}

func TestSplitArgsDepthZero(t *testing.T) {
	got := splitArgsDepthZero("a: String, b?: List[Int]?, c: { k: String, v?: Int }")
	want := []string{
		"a: String",
		"b?: List[Int]?",
		"c: { k: String, v?: Int }",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("splitArgsDepthZero mismatch (-want +got):\n%s", diff)
	}
}

func exprPtr(e Expression) *Expression {
	return &e
}
