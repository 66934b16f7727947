package hilo

// Identifier is text matching [A-Za-z_][A-Za-z0-9_]*.
type Identifier = string

// QualifiedName is a non-empty ordered sequence of Identifier.
type QualifiedName []Identifier

// Module is the top node of the AST: one compilation unit.
type Module struct {
	Name    QualifiedName
	Imports []Import
	Items   []Item
}

// Import brings names from another module into scope, optionally renaming
// or selecting members. Members and Alias are nil when absent.
type Import struct {
	Path    QualifiedName
	Members []Identifier
	Alias   *Identifier
}

// Item is a tagged variant over the four top-level declaration kinds plus
// an opaque fallback. Exactly one field is non-nil.
type Item struct {
	Record   *RecordDecl
	Task     *TaskDecl
	Workflow *WorkflowDecl
	Test     *TestDecl
	Other    *string
}

// RecordDecl is a named product type with ordered, optionally-marked
// fields and optional type parameters.
type RecordDecl struct {
	Name       Identifier
	TypeParams []Identifier
	Fields     []RecordField
}

// RecordField is one field of a RecordDecl. Optional is true iff the
// source field name had a trailing '?' before the colon; it never implies
// that Type is wrapped in TypeExprOptional.
type RecordField struct {
	Name     Identifier
	Optional bool
	Type     TypeExpr
}

// TaskDecl is a named, parameterized, body-bearing declaration that may
// return a typed value.
type TaskDecl struct {
	Name       Identifier
	Params     []Param
	ReturnType *TypeExpr
	Body       Block
}

// Param is one parameter of a TaskDecl. Default holds the raw,
// uninterpreted default-value text when present.
type Param struct {
	Name    Identifier
	Type    TypeExpr
	Default *string
}

// WorkflowDecl is a named, body-bearing declaration with no parameters or
// return.
type WorkflowDecl struct {
	Name Identifier
	Body Block
}

// TestDecl is a named, body-bearing declaration whose name may be a string
// literal (quotes stripped, escapes resolved) or a plain identifier.
type TestDecl struct {
	Name Identifier
	Body Block
}

// Block is the brace-enclosed body of a task/workflow/test, retained both
// as raw trimmed text and as parsed statements.
type Block struct {
	Raw        string
	Statements []Statement
}

// Statement is a tagged variant: exactly one field is non-nil.
type Statement struct {
	Let    *LetStatement
	Return *ReturnStatement
	Expr   *Expression
}

// LetStatement binds a name, with an optional declared type and an
// optional initializer expression.
type LetStatement struct {
	Name  Identifier
	Type  *TypeExpr
	Value *Expression
}

// ReturnStatement optionally carries a return value expression.
type ReturnStatement struct {
	Value *Expression
}

// StructFieldType is one field of an anonymous struct TypeExpr.
type StructFieldType struct {
	Name     Identifier
	Optional bool
	Type     TypeExpr
}

// TypeExpr is a tagged variant over the type-expression grammar. Exactly
// one field is non-nil for any given value, except the zero value, which
// never occurs in a parsed tree.
type TypeExpr struct {
	Simple   QualifiedName
	Generic  *GenericType
	List     *TypeExpr
	Struct   []StructFieldType
	Optional *TypeExpr
	Unknown  *string
}

// GenericType is a base qualified name applied to an ordered list of type
// arguments, produced by either Foo<A,B> or Foo[A,B] (base != "List").
type GenericType struct {
	Base      QualifiedName
	Arguments []TypeExpr
}

// Expression is a tagged variant over the expression grammar. Exactly one
// field is non-nil.
type Expression struct {
	Identifier    *Identifier
	Literal       *string
	Call          *CallExpr
	Member        *MemberExpr
	OptionalChain *OptionalChainExpr
	Index         *IndexExpr
	Binary        *BinaryExpr
	StructLiteral *StructLiteralExpr
	Raw           *string
}

// CallExpr is target(args...).
type CallExpr struct {
	Target *Expression
	Args   []Expression
}

// MemberExpr is target.property.
type MemberExpr struct {
	Target   *Expression
	Property Identifier
}

// OptionalChainExpr is target?.property.
type OptionalChainExpr struct {
	Target   *Expression
	Property Identifier
}

// IndexExpr is target[index].
type IndexExpr struct {
	Target *Expression
	Index  *Expression
}

// BinaryExpr is left op right.
type BinaryExpr struct {
	Left  *Expression
	Op    string
	Right *Expression
}

// StructLiteralExpr is TypeName { field: expr, ... }.
type StructLiteralExpr struct {
	TypeName QualifiedName
	Fields   []StructLiteralField
}

// StructLiteralField is one name: expr entry of a StructLiteralExpr,
// preserving source order.
type StructLiteralField struct {
	Name  Identifier
	Value Expression
}
