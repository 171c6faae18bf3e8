package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// inferBlock infers every statement of block in its own nested scope.
// retHint is the enclosing function/method's return type (Unset while it is
// still being inferred from its own return statements), threaded down so
// nested return/if-expression inference can check against it.
func (a *Analyzer) inferBlock(outer *Context, block *ast.BlockStatement, retHint types.Type) {
	if block == nil {
		return
	}
	ctx := outer.Nested()
	for _, st := range block.Statements {
		a.inferStatement(ctx, st, retHint)
	}
}

func (a *Analyzer) inferStatement(ctx *Context, st ast.Statement, retHint types.Type) {
	switch s := st.(type) {
	case *ast.ExpressionStatement:
		if s.Expr != nil {
			a.infer(ctx, s.Expr, types.Unset)
		}
	case *ast.VarDeclStatement:
		a.inferVarDecl(ctx, s)
	case *ast.ReturnStatement:
		a.inferReturn(ctx, s, retHint)
	case *ast.BlockStatement:
		a.inferBlock(ctx, s, retHint)
	case *ast.IfStatement:
		a.infer(ctx, s.Condition, types.Bool)
		a.inferBlock(ctx, s.Then, retHint)
		switch e := s.Else.(type) {
		case nil:
		case *ast.BlockStatement:
			a.inferBlock(ctx, e, retHint)
		case *ast.IfStatement:
			a.inferStatement(ctx, e, retHint)
		}
	case *ast.WhileStatement:
		a.infer(ctx, s.Condition, types.Bool)
		a.loopDepth++
		a.inferBlock(ctx, s.Body, retHint)
		a.loopDepth--
	case *ast.ForEachStatement:
		a.inferForEach(ctx, s, retHint)
	case *ast.BreakStatement:
		if a.loopDepth == 0 {
			a.diag.customError(CodeInvalidControlFlow, s.Loc, "'break' outside of a loop")
		}
	case *ast.ContinueStatement:
		if a.loopDepth == 0 {
			a.diag.customError(CodeInvalidControlFlow, s.Loc, "'continue' outside of a loop")
		}
	case *ast.StaticBlockDecl:
		a.inferBlock(ctx, s.Body, types.Void)
	}
}

func (a *Analyzer) inferVarDecl(ctx *Context, s *ast.VarDeclStatement) {
	declared := a.resolveAnnotation(nil, s.Declared)

	if len(s.Names) > 1 {
		if s.Init == nil {
			a.diag.customError(CodeTypeMismatch, s.Loc, "destructuring declaration requires an initializer")
			return
		}
		if !s.Mutable {
			a.diag.customError(CodeInvalidOperation, s.Loc, "destructuring declaration must bind mutable locals")
		}
		initType := a.infer(ctx, s.Init, types.Unset)
		tup, ok := types.Dereference(initType).(*types.TupleType)
		if !ok || len(tup.Elements) != len(s.Names) {
			a.diag.typeMismatch(s.Loc, &types.TupleType{}, initType)
			return
		}
		for i, name := range s.Names {
			if !ctx.Define(name, &Symbol{Name: name, Kind: SymbolVariable, Type: tup.Elements[i], Mutable: s.Mutable}) {
				a.diag.redeclaration(s.Loc, name)
			}
		}
		return
	}

	name := s.Names[0]
	var declType types.Type = declared
	if s.Init != nil {
		initType := a.infer(ctx, s.Init, declared)
		if types.IsUnset(declared) {
			declType = initType
		} else if !a.assignable(declared, initType, false) {
			a.diag.typeMismatch(s.Loc, declared, initType)
		}
	} else if types.IsUnset(declared) {
		a.diag.customError(CodeMissingInit, s.Loc, "variable '%s' needs either a declared type or an initializer", name)
	}
	if !ctx.Define(name, &Symbol{Name: name, Kind: SymbolVariable, Type: declType, Mutable: s.Mutable}) {
		a.diag.redeclaration(s.Loc, name)
	}
}

func (a *Analyzer) inferReturn(ctx *Context, s *ast.ReturnStatement, retHint types.Type) {
	s.Hint = retHint
	if s.Value == nil {
		if !types.IsUnset(retHint) && !types.IsVoid(retHint) {
			a.diag.typeMismatch(s.Loc, retHint, types.Void)
		}
		return
	}
	valType := a.infer(ctx, s.Value, retHint)
	if !types.IsUnset(retHint) && !a.assignable(retHint, valType, false) {
		a.diag.typeMismatch(s.Loc, retHint, valType)
	}
}

// inferForEach binds the loop variable to a plain array's element type;
// iteration over a user-defined iterator protocol is out of scope for this
// pass and reported as an unsupported iterable.
func (a *Analyzer) inferForEach(ctx *Context, s *ast.ForEachStatement, retHint types.Type) {
	iterType := a.infer(ctx, s.Iterable, types.Unset)
	arr, ok := types.Dereference(iterType).(*types.ArrayType)
	if !ok {
		a.diag.customError(CodeTypeMismatch, s.Loc, "'%s' is not iterable", iterType.String())
		return
	}
	inner := ctx.Nested()
	inner.Define(s.VariableName, &Symbol{Name: s.VariableName, Kind: SymbolVariable, Type: arr.Element})
	a.loopDepth++
	a.inferBlock(inner, s.Body, retHint)
	a.loopDepth--
}
