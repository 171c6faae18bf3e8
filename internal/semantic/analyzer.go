package semantic

import (
	"github.com/asterlang/aster/internal/ast"
	"github.com/asterlang/aster/internal/types"
)

// Analyzer holds every piece of mutable state one analysis run threads
// through the declaration and expression walk: the resolved-type registries
// keyed by declared name, the diagnostic sink, the shared cycle-safe match
// context, and the handful of "where am I" pointers/flags that expression
// and statement inference consult (currentClass for `this`, loopDepth for
// break/continue, ...).
type Analyzer struct {
	diag    *Handle
	matcher *types.MatchContext
	root    *Context
	pkg     *ast.BasePackage

	classTypes      map[string]*types.ClassType
	interfaceTypes  map[string]*types.InterfaceType
	variantTypes    map[string]*types.VariantType
	enumTypes       map[string]*types.EnumType
	stringEnumTypes map[string]*types.StringEnumType
	functions       map[string]*ast.FunctionDecl
	ffiNamespaces   map[string]map[string]*types.FFIMethodType

	classDecls     map[string]*ast.ClassDecl
	interfaceDecls map[string]*ast.InterfaceDecl
	variantDecls   map[string]*ast.VariantDecl

	currentFunction *ast.FunctionDecl
	currentClass    *types.ClassType
	currentMethod   *types.MethodInfo
	currentReturn   types.Type

	loopDepth      int
	inClassMethod  bool
	inStaticMethod bool
	inCoroutine    bool

	// forceStrict upgrades every assignable() check to strict matching
	// regardless of what the call site itself requested, the analyzer-wide
	// equivalent of passing --strict to asterc check.
	forceStrict bool

	// stringClass/charClass are the built-in classes String and Char:
	// string/char literals resolve to these rather than to a dedicated
	// basic-numeric kind, since the ten-member numeric lattice has no slot
	// for text. StringEnum's built-in-String assignability rule checks
	// against stringClass specifically.
	stringClass *types.ClassType
	charClass   *types.ClassType

	// genericFunctionInstances/genericMethodInstances record every distinct
	// monomorphized FunctionType a generic function/method call site
	// produced, keyed by the declaration's name ("Box.get" for a method).
	// Tooling (cmd/asterc dump-types) enumerates these after AnalyzeProgram
	// returns.
	genericFunctionInstances map[string][]*types.FunctionType
	genericMethodInstances   map[string][]*types.FunctionType
}

// NewAnalyzer returns an Analyzer ready to run AnalyzeProgram.
func NewAnalyzer() *Analyzer {
	a := &Analyzer{
		diag:            NewHandle(),
		matcher:         types.NewMatchContext(),
		root:            NewContext(),
		classTypes:      map[string]*types.ClassType{},
		interfaceTypes:  map[string]*types.InterfaceType{},
		variantTypes:    map[string]*types.VariantType{},
		enumTypes:       map[string]*types.EnumType{},
		stringEnumTypes: map[string]*types.StringEnumType{},
		functions:       map[string]*ast.FunctionDecl{},
		ffiNamespaces:   map[string]map[string]*types.FFIMethodType{},
		classDecls:      map[string]*ast.ClassDecl{},
		interfaceDecls:  map[string]*ast.InterfaceDecl{},
		variantDecls:    map[string]*ast.VariantDecl{},

		genericFunctionInstances: map[string][]*types.FunctionType{},
		genericMethodInstances:   map[string][]*types.FunctionType{},
	}
	a.stringClass = &types.ClassType{ID: types.NewClassID(), Name: "String"}
	a.charClass = &types.ClassType{ID: types.NewClassID(), Name: "Char"}
	a.classTypes["String"] = a.stringClass
	a.classTypes["Char"] = a.charClass
	a.root.Define("String", &Symbol{Name: "String", Kind: SymbolType, Type: &types.MetaClassType{Class: a.stringClass}})
	a.root.Define("Char", &Symbol{Name: "Char", Kind: SymbolType, Type: &types.MetaClassType{Class: a.charClass}})
	return a
}

// SetStrict forces every subsequent assignable() check this Analyzer
// performs to use strict matching, even at call sites (argument checks,
// assignments, returns) that would otherwise pass strict=false. Call before
// AnalyzeProgram.
func (a *Analyzer) SetStrict(strict bool) { a.forceStrict = strict }

// AnalyzeProgram runs every resolution pass over pkg in dependency order and
// returns the accumulated diagnostics.
//
// Enums and string-enums have no forward dependencies and resolve first.
// Interfaces, classes, and variants can all reference each other and
// themselves (a class field of its own nullable type, a method returning
// the interface it's declared against), so each gets a pre-registration
// pass that assigns its nominal id and an empty shell before any of the
// three fully resolves their bodies. Function and method bodies infer last,
// once every type name anywhere in the program resolves.
func (a *Analyzer) AnalyzeProgram(pkg *ast.BasePackage) *Handle {
	a.pkg = pkg
	a.registerEnums(pkg)
	a.registerStringEnums(pkg)
	a.preregisterInterfaces(pkg)
	a.preregisterClasses(pkg)
	a.preregisterVariants(pkg)

	a.resolveInterfaces(pkg)
	a.resolveClasses(pkg)
	a.resolveVariants(pkg)
	a.validateClasses(pkg)

	a.registerFFINamespaces(pkg)
	a.registerFunctions(pkg)

	for _, fn := range pkg.Functions {
		a.inferFunctionBody(a.root, fn)
	}
	for _, cd := range pkg.Classes {
		a.analyzeClassBodies(cd)
	}
	for _, sb := range pkg.StaticBlocks {
		ctx := a.root.Nested()
		a.inferBlock(ctx, sb.Body, types.Void)
	}

	return a.diag
}

// GenericFunctionInstances returns every distinct monomorphized signature a
// call site produced for each generic top-level function, keyed by function
// name.
func (a *Analyzer) GenericFunctionInstances() map[string][]*types.FunctionType {
	return a.genericFunctionInstances
}

// GenericMethodInstances returns every distinct monomorphized signature a
// call site produced for each generic method, keyed by "ClassName.method".
func (a *Analyzer) GenericMethodInstances() map[string][]*types.FunctionType {
	return a.genericMethodInstances
}

// ClassTypes returns every resolved class, keyed by declared name. Exposed
// for tooling (cmd/asterc dump-types) that needs to walk the whole resolved
// type lattice after AnalyzeProgram returns; nothing in the analyzer itself
// calls this.
func (a *Analyzer) ClassTypes() map[string]*types.ClassType { return a.classTypes }

// InterfaceTypes returns every resolved interface, keyed by declared name.
func (a *Analyzer) InterfaceTypes() map[string]*types.InterfaceType { return a.interfaceTypes }

// VariantTypes returns every resolved variant, keyed by declared name.
func (a *Analyzer) VariantTypes() map[string]*types.VariantType { return a.variantTypes }

// EnumTypes returns every resolved enum, keyed by declared name.
func (a *Analyzer) EnumTypes() map[string]*types.EnumType { return a.enumTypes }

// StringEnumTypes returns every resolved string-enum, keyed by declared name.
func (a *Analyzer) StringEnumTypes() map[string]*types.StringEnumType { return a.stringEnumTypes }
