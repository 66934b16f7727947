package hilo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParseRecordDecl_CommaSeparatedSingleLine is spec §8's record
// boundary scenario: a record body written entirely on one line, with
// fields separated by depth-zero commas rather than one per line.
func TestParseRecordDecl_CommaSeparatedSingleLine(t *testing.T) {
	src := `record R { a: String, b?: List[Int]?, c: { k: String, v?: Int } }`
	items := parseItems(src)
	require1Item(t, items)

	want := Item{Record: &RecordDecl{
		Name: "R",
		Fields: []RecordField{
			{Name: "a", Type: TypeExpr{Simple: QualifiedName{"String"}}},
			{Name: "b", Optional: true, Type: TypeExpr{Optional: &TypeExpr{
				List: &TypeExpr{Simple: QualifiedName{"Int"}},
			}}},
			{Name: "c", Type: TypeExpr{Struct: []StructFieldType{
				{Name: "k", Type: TypeExpr{Simple: QualifiedName{"String"}}},
				{Name: "v", Optional: true, Type: TypeExpr{Simple: QualifiedName{"Int"}}},
			}}},
		},
	}}
	if diff := cmp.Diff(want, items[0]); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecordDecl_TypeParams(t *testing.T) {
	src := `record Box<T> { value: T }`
	items := parseItems(src)
	require1Item(t, items)

	want := Item{Record: &RecordDecl{
		Name:       "Box",
		TypeParams: []Identifier{"T"},
		Fields: []RecordField{
			{Name: "value", Type: TypeExpr{Simple: QualifiedName{"T"}}},
		},
	}}
	if diff := cmp.Diff(want, items[0]); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTaskDecl(t *testing.T) {
	src := "task T(x: Int = 0) -> String { let y: Int = x + 1\nreturn y }"
	items := parseItems(src)
	require1Item(t, items)

	require1Record := items[0]
	if require1Record.Task == nil {
		t.Fatalf("expected a Task item, got %#v", require1Record)
	}
	task := require1Record.Task

	wantParams := []Param{{Name: "x", Type: TypeExpr{Simple: QualifiedName{"Int"}}, Default: ptr("0")}}
	if diff := cmp.Diff(wantParams, task.Params); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&TypeExpr{Simple: QualifiedName{"String"}}, task.ReturnType); diff != "" {
		t.Errorf("return type mismatch (-want +got):\n%s", diff)
	}

	wantStatements := []Statement{
		{Let: &LetStatement{
			Name: "y",
			Type: &TypeExpr{Simple: QualifiedName{"Int"}},
			Value: exprPtr(Expression{Binary: &BinaryExpr{
				Left:  exprPtr(Expression{Identifier: ptr("x")}),
				Op:    "+",
				Right: exprPtr(Expression{Literal: ptr("1")}),
			}}),
		}},
		{Return: &ReturnStatement{Value: exprPtr(Expression{Identifier: ptr("y")})}},
	}
	if diff := cmp.Diff(wantStatements, task.Body.Statements); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTaskDecl_OptionalChainAndIndex(t *testing.T) {
	src := `task D() { let items = response?.data["items"]
return items }`
	items := parseItems(src)
	require1Item(t, items)

	letStmt := items[0].Task.Body.Statements[0].Let
	if letStmt == nil {
		t.Fatalf("expected a Let statement")
	}
	want := &LetStatement{
		Name: "items",
		Value: exprPtr(Expression{Index: &IndexExpr{
			Target: exprPtr(Expression{OptionalChain: &OptionalChainExpr{
				Target:   exprPtr(Expression{Identifier: ptr("response")}),
				Property: "data",
			}}),
			Index: exprPtr(Expression{Literal: ptr(`"items"`)}),
		}}),
	}
	if diff := cmp.Diff(want, letStmt); diff != "" {
		t.Errorf("let mismatch (-want +got):\n%s", diff)
	}
}

func TestParseWorkflowDecl(t *testing.T) {
	src := "workflow W { x }"
	items := parseItems(src)
	require1Item(t, items)
	if items[0].Workflow == nil || items[0].Workflow.Name != "W" {
		t.Fatalf("unexpected item: %#v", items[0])
	}
}

func TestParseTestDecl_QuotedName(t *testing.T) {
	src := `test "it does the thing" { assertEqual(1, 1) }`
	items := parseItems(src)
	require1Item(t, items)
	if items[0].Test == nil || items[0].Test.Name != "it does the thing" {
		t.Fatalf("unexpected item: %#v", items[0])
	}
}

func TestParseItems_UnrecognizedTailBecomesOther(t *testing.T) {
	src := "record R { a: Int }\n&&& not a declaration"
	items := parseItems(src)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1].Other == nil || *items[1].Other != "&&& not a declaration" {
		t.Fatalf("unexpected second item: %#v", items[1])
	}
}

func require1Item(t *testing.T, items []Item) {
	t.Helper()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %#v", len(items), items)
	}
}
