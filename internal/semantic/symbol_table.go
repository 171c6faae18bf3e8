package semantic

import "github.com/asterlang/aster/internal/types"

// SymbolKind distinguishes what a Symbol names, mirrored onto
// ast.Identifier.ResolvedSymbolKind once a reference resolves.
type SymbolKind string

const (
	SymbolVariable SymbolKind = "variable"
	SymbolFunction SymbolKind = "function"
	SymbolType     SymbolKind = "type"
)

// Symbol is one name bound in a Context: a local, a parameter, a top-level
// function, or a type name (class/interface/variant/enum/string-enum).
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Type     types.Type
	Mutable  bool
	IsConst  bool
	ConstVal interface{}
}

// Context is one lexical scope: the symbol table's node. Functions,
// methods, lambdas, blocks, and match-case bodies each push a nested
// Context over their enclosing one; name resolution walks outward until it
// reaches the root Context holding every top-level declaration.
type Context struct {
	symbols map[string]*Symbol
	outer   *Context
}

// NewContext returns a fresh root context with no enclosing scope.
func NewContext() *Context {
	return &Context{symbols: make(map[string]*Symbol)}
}

// Nested returns a new Context enclosed by c.
func (c *Context) Nested() *Context {
	return &Context{symbols: make(map[string]*Symbol), outer: c}
}

// Define binds name to sym in the current scope, shadowing any binding of
// the same name from an outer scope. Returns false without replacing
// anything if name is already bound in THIS scope (a redeclaration, which
// the caller reports as a diagnostic).
func (c *Context) Define(name string, sym *Symbol) bool {
	if _, exists := c.symbols[name]; exists {
		return false
	}
	c.symbols[name] = sym
	return true
}

// Resolve looks up name in the current scope, then each enclosing scope in
// turn.
func (c *Context) Resolve(name string) (*Symbol, bool) {
	if sym, ok := c.symbols[name]; ok {
		return sym, true
	}
	if c.outer != nil {
		return c.outer.Resolve(name)
	}
	return nil, false
}

// DeclaredHere reports whether name is bound directly in c, ignoring outer
// scopes.
func (c *Context) DeclaredHere(name string) bool {
	_, ok := c.symbols[name]
	return ok
}

// Outer returns the enclosing context, or nil at the root.
func (c *Context) Outer() *Context { return c.outer }
