package ast

// LambdaExpression creates its own scope; parameters are added as symbols
// and it registers itself as a global lambda definition with an
// auto-generated name (`lambda-<N>`) the moment it begins inference.
// Coroutine-callable lambdas must not contain `return`; non-coroutine
// lambdas must not contain `yield`.
type LambdaExpression struct {
	ExprInfo
	Name             string // filled by BasePackage.NextLambdaName during inference
	Params           []*Param
	DeclaredReturn   *TypeAnnotation // nil when the return type is inferred
	Body             *BlockStatement
	ExprBody         Expression
	IsCoroutine      bool
	ReturnStatements []*ReturnStatement
	HasYield         bool
}

func (l *LambdaExpression) String() string {
	s := "lambda("
	for i, p := range l.Params {
		if i > 0 {
			s += ", "
		}
		s += p.Name
	}
	return s + ")"
}
