package ast

// ThrowExpression raises an error; Message must be a String, Code (if
// present) must be u32. Its type is always Unreachable.
type ThrowExpression struct {
	ExprInfo
	Message Expression
	Code    Expression // nil when no code is given
}

func (t *ThrowExpression) String() string {
	if t.Code != nil {
		return "throw " + t.Message.String() + ", " + t.Code.String()
	}
	return "throw " + t.Message.String()
}
