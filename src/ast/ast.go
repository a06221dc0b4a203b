package ast

// Program is the root of an L1 syntax tree: an ordered sequence of top-level
// definitions, collected in a first pass before any body is lowered so that
// mutual recursion and forward references work (two-pass design, see
// checker.Compile).
type Program struct {
	TopDefs []TopDef
}

// TopDef is a tagged variant over the top-level definitions a parser may
// produce. FuncDef is the only one this compiler lowers; ClassDef is
// reserved grammar surfaced only so the checker can reject it with the
// "Latte extension, not implemented" diagnostic.
type TopDef interface {
	topDef()
}

// FuncDef is a function definition: name, declared return type, formal
// parameters and a statement body.
type FuncDef struct {
	Name   string
	Ret    Type
	Params []Param
	Body   []Stmt
	Line   int
	Col    int
}

func (*FuncDef) topDef() {}

// Param is a single formal parameter.
type Param struct {
	Name string
	Type Type
}

// ClassDef is the reserved, unimplemented class-definition extension.
type ClassDef struct {
	Name string
	Line int
	Col  int
}

func (*ClassDef) topDef() {}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

// Stmt is a tagged variant over L1 statements.
type Stmt interface {
	stmt()
}

// EmptyStmt is the `;` no-op statement.
type EmptyStmt struct{}

func (*EmptyStmt) stmt() {}

// BlockStmt introduces a new lexical scope around a sequence of statements.
type BlockStmt struct {
	Stmts []Stmt
}

func (*BlockStmt) stmt() {}

// DeclItem is one `name[=init]` entry of a DeclStmt.
type DeclItem struct {
	Name string
	Init Expr // nil if the item has no explicit initializer
	Line int
	Col  int
}

// DeclStmt declares one or more variables of type Type in the current scope.
type DeclStmt struct {
	Type  Type
	Items []DeclItem
	Line  int
	Col   int
}

func (*DeclStmt) stmt() {}

// AssignStmt assigns the value of Expr to the variable Name.
type AssignStmt struct {
	Name string
	Expr Expr
	Line int
	Col  int
}

func (*AssignStmt) stmt() {}

// IncrStmt is `name++`.
type IncrStmt struct {
	Name string
	Line int
	Col  int
}

func (*IncrStmt) stmt() {}

// DecrStmt is `name--`.
type DecrStmt struct {
	Name string
	Line int
	Col  int
}

func (*DecrStmt) stmt() {}

// ReturnStmt is `return expr;`.
type ReturnStmt struct {
	Expr Expr
	Line int
	Col  int
}

func (*ReturnStmt) stmt() {}

// ReturnVoidStmt is `return;`.
type ReturnVoidStmt struct {
	Line int
	Col  int
}

func (*ReturnVoidStmt) stmt() {}

// IfStmt is `if (Cond) Then [else Else]`. Else is nil when there is no else
// branch.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
	Line int
	Col  int
}

func (*IfStmt) stmt() {}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	Cond Expr
	Body Stmt
	Line int
	Col  int
}

func (*WhileStmt) stmt() {}

// ForStmt is the reserved, unimplemented for-loop extension.
type ForStmt struct {
	Line int
	Col  int
}

func (*ForStmt) stmt() {}

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expr
	Line int
	Col  int
}

func (*ExprStmt) stmt() {}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

// Expr is a tagged variant over L1 expressions.
type Expr interface {
	expr()
	Pos() (line, col int)
}

type pos struct {
	Line int
	Col  int
}

func (p pos) Pos() (int, int) { return p.Line, p.Col }

// IntLit is an integer literal.
type IntLit struct {
	pos
	Val int32
}

func (*IntLit) expr() {}

// BoolLit is `true`/`false`.
type BoolLit struct {
	pos
	Val bool
}

func (*BoolLit) expr() {}

// StrLit is a string literal (without surrounding quotes).
type StrLit struct {
	pos
	Val string
}

func (*StrLit) expr() {}

// VarExpr reads the value of a variable.
type VarExpr struct {
	pos
	Name string
}

func (*VarExpr) expr() {}

// ParenExpr is transparent during lowering; kept for source fidelity.
type ParenExpr struct {
	pos
	Inner Expr
}

func (*ParenExpr) expr() {}

// AppExpr is a function call `Func(Args...)`.
type AppExpr struct {
	pos
	Func string
	Args []Expr
}

func (*AppExpr) expr() {}

// NegExpr is unary `-e` (requires Int).
type NegExpr struct {
	pos
	Inner Expr
}

func (*NegExpr) expr() {}

// NotExpr is unary `!e` (requires Bool).
type NotExpr struct {
	pos
	Inner Expr
}

func (*NotExpr) expr() {}

// BinExpr covers multiplicative (*, /, %), additive (+, -) and relational
// (<, <=, >, >=, ==, !=) binary operators. Op carries the source operator
// symbol verbatim so lowering can select the IR mnemonic.
type BinExpr struct {
	pos
	Op string
	L  Expr
	R  Expr
}

func (*BinExpr) expr() {}

// AndExpr is short-circuit `&&`.
type AndExpr struct {
	pos
	L Expr
	R Expr
}

func (*AndExpr) expr() {}

// OrExpr is short-circuit `||`.
type OrExpr struct {
	pos
	L Expr
	R Expr
}

func (*OrExpr) expr() {}
