package ast

// Param is one function/method/lambda parameter: a name, a declared type,
// and the `mutable` bit that participates in mutability checking.
type Param struct {
	Loc     Location
	Name    string
	Type    *TypeAnnotation
	Mutable bool
	Default Expression // nil when the parameter has no default value
}

// FunctionDecl is a top-level (or nested, lambda-registered) function
// declaration. Body is set for statement-form functions; ExprBody is set
// for `fn f(x) = expr` expression-form functions — exactly one is non-nil.
// ReturnStatements accumulates every return encountered while inferring
// Body, consumed when unifying the function's return type.
type FunctionDecl struct {
	Loc             Location
	Name            string
	Generics        []*GenericParam
	Params          []*Param
	ReturnType      *TypeAnnotation
	Body            *BlockStatement
	ExprBody        Expression
	ReturnStatements []*ReturnStatement

	// currentlyInferring guards mutual recursion: entering the analyzer's
	// inferFunctionBody while already inferring returns the in-progress
	// (possibly Unset) header instead of recursing.
	currentlyInferring bool
	inferred            bool
}

func (f *FunctionDecl) Pos() Location { return f.Loc }
func (f *FunctionDecl) stmtNode()     {}
func (f *FunctionDecl) declNode()     {}
func (f *FunctionDecl) String() string {
	s := "fn " + f.Name + "("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.Name
	}
	return s + ")"
}

// IsGeneric reports whether this declaration carries any generic
// placeholders.
func (f *FunctionDecl) IsGeneric() bool { return len(f.Generics) > 0 }

// BeginInferring / EndInferring / IsInferring implement the "currently
// inferring" guard used to make mutually recursive functions cycle-safe.
func (f *FunctionDecl) BeginInferring() bool {
	if f.currentlyInferring {
		return false
	}
	f.currentlyInferring = true
	return true
}

func (f *FunctionDecl) EndInferring() { f.currentlyInferring = false; f.inferred = true }
func (f *FunctionDecl) IsInferring() bool { return f.currentlyInferring }
func (f *FunctionDecl) Inferred() bool    { return f.inferred }

// DoExpression is a `do { ...; return expr }` block used as an expression;
// its last statement must be a return, and every return's type participates
// in unification.
type DoExpression struct {
	ExprInfo
	Body             *BlockStatement
	ReturnStatements []*ReturnStatement
}

func (d *DoExpression) String() string { return "do " + d.Body.String() }

// SpawnExpression (`spawn f(args)`) returns Promise(T) for T the type of
// its argument expression.
type SpawnExpression struct {
	ExprInfo
	Call Expression
}

func (s *SpawnExpression) String() string { return "spawn " + s.Call.String() }

// AwaitExpression (`await p`) unwraps Promise(T) to T.
type AwaitExpression struct {
	ExprInfo
	Operand Expression
}

func (a *AwaitExpression) String() string { return "await " + a.Operand.String() }
