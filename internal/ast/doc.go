// Package ast defines the abstract syntax tree node types consumed by the
// semantic analyzer. Lexing and parsing produce these nodes; this package
// only describes their shape and the mutable fields the analyzer fills in:
// InferredType, HintType and IsConstant on every Expression, plus the
// resolved-reference fields named in the analyzer's external interface
// (resolved callees, operator-overload method refs, class method tables).
package ast
