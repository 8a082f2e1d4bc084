package diag

import (
	"fmt"

	"github.com/cerium-lang/cerium/lang/token"
	"github.com/cerium-lang/cerium/lang/types"
)

// SyntaxError is a lexical error at a single offending character.
type SyntaxError struct {
	Char byte
	Idx  token.Pos
}

func (e *SyntaxError) Range() token.Range { return token.Range{Start: e.Idx, End: e.Idx + 1} }
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: unexpected %q", e.Char)
}

// UnexpectedToken is raised by the parser when a token it encounters cannot
// start or continue the construct it is parsing.
type UnexpectedToken struct {
	Rng token.Range
	Tok token.Token
}

func (e *UnexpectedToken) Range() token.Range { return e.Rng }
func (e *UnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token %s", e.Tok.GoString())
}

// MissingToken is raised when the parser requires a specific token and finds
// a different one (or EOF).
type MissingToken struct {
	Rng      token.Range
	Expected token.Token
	Found    token.Token
}

func (e *MissingToken) Range() token.Range { return e.Rng }
func (e *MissingToken) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected.GoString(), e.Found.GoString())
}

// MismatchedReturnType is raised when a function's tail expression or return
// does not match its declared return type.
type MismatchedReturnType struct {
	FnName   string
	Expected types.Type
	Actual   types.Type
	Rng      token.Range
}

func (e *MismatchedReturnType) Range() token.Range { return e.Rng }
func (e *MismatchedReturnType) Error() string {
	return fmt.Sprintf("function %q returns %s, found %s", e.FnName, typeName(e.Expected), typeName(e.Actual))
}

// MismatchedAssignType is raised when an assignment's or let-binding's
// right-hand side does not match the left-hand side's type.
type MismatchedAssignType struct {
	DstRng  token.Range
	DstType types.Type
	SrcRng  token.Range
	SrcType types.Type
}

func (e *MismatchedAssignType) Range() token.Range { return e.DstRng.Join(e.SrcRng) }
func (e *MismatchedAssignType) Error() string {
	return fmt.Sprintf("cannot assign %s to %s", typeName(e.SrcType), typeName(e.DstType))
}

// InvalidDeref is raised when `*e` or `^e` is applied to a non-pointer type.
type InvalidDeref struct {
	Rng       token.Range
	FoundType types.Type
}

func (e *InvalidDeref) Range() token.Range { return e.Rng }
func (e *InvalidDeref) Error() string {
	return fmt.Sprintf("cannot dereference value of type %s", typeName(e.FoundType))
}

// InvalidCharacterLiteralLength is raised when a character literal's decoded
// content is not exactly one byte long.
type InvalidCharacterLiteralLength struct {
	Rng     token.Range
	Literal string
}

func (e *InvalidCharacterLiteralLength) Range() token.Range { return e.Rng }
func (e *InvalidCharacterLiteralLength) Error() string {
	return fmt.Sprintf("character literal %s must have length 1", e.Literal)
}

// UnexpectedCharacter is raised by the scanner when a byte does not start any
// valid token.
type UnexpectedCharacter struct {
	Expected string
	Actual   byte
	Idx      token.Pos
}

func (e *UnexpectedCharacter) Range() token.Range { return token.Range{Start: e.Idx, End: e.Idx + 1} }
func (e *UnexpectedCharacter) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("unexpected character %q", e.Actual)
	}
	return fmt.Sprintf("unexpected character %q, expected %s", e.Actual, e.Expected)
}

// UnexpectedEof is raised when the parser or scanner runs out of input while
// a construct is still open.
type UnexpectedEof struct {
	ExpectedKind string
	Idx          token.Pos
}

func (e *UnexpectedEof) Range() token.Range { return token.Range{Start: e.Idx, End: e.Idx} }
func (e *UnexpectedEof) Error() string {
	return fmt.Sprintf("unexpected end of file, expected %s", e.ExpectedKind)
}

// DuplicateDefinition is raised by the registry when two top-level
// definitions (function, struct or const) share a qualified name.
type DuplicateDefinition struct {
	Name string
	Rng  token.Range
}

func (e *DuplicateDefinition) Range() token.Range { return e.Rng }
func (e *DuplicateDefinition) Error() string {
	return fmt.Sprintf("%q is already defined", e.Name)
}

// UndefinedName is raised when an identifier resolves to no local, parameter
// or global.
type UndefinedName struct {
	Name string
	Rng  token.Range
}

func (e *UndefinedName) Range() token.Range { return e.Rng }
func (e *UndefinedName) Error() string      { return fmt.Sprintf("undefined name %q", e.Name) }

// NotCallable is raised when a call expression's callee does not have
// function type.
type NotCallable struct {
	FoundType types.Type
	Rng       token.Range
}

func (e *NotCallable) Range() token.Range { return e.Rng }
func (e *NotCallable) Error() string {
	return fmt.Sprintf("cannot call value of type %s", typeName(e.FoundType))
}

// ArgumentCountMismatch is raised when a call supplies a different number of
// arguments than the callee's function type declares.
type ArgumentCountMismatch struct {
	Want, Got int
	Rng       token.Range
}

func (e *ArgumentCountMismatch) Range() token.Range { return e.Rng }
func (e *ArgumentCountMismatch) Error() string {
	return fmt.Sprintf("expected %d argument(s), found %d", e.Want, e.Got)
}

// UnsupportedConversion is raised by an `as` expression between two types
// with no defined value conversion: every `as` other than one between two
// integer types or to the same type (float, bool and pointer casts).
type UnsupportedConversion struct {
	From, To types.Type
	Rng      token.Range
}

func (e *UnsupportedConversion) Range() token.Range { return e.Rng }
func (e *UnsupportedConversion) Error() string {
	return fmt.Sprintf("no conversion from %s to %s", typeName(e.From), typeName(e.To))
}

// NoSuchField is raised when a field access names a field the struct does
// not declare.
type NoSuchField struct {
	StructName, Field string
	Rng               token.Range
}

func (e *NoSuchField) Range() token.Range { return e.Rng }
func (e *NoSuchField) Error() string {
	return fmt.Sprintf("struct %s has no field %q", e.StructName, e.Field)
}

// MismatchedOperandTypes is raised when a binary operator's operands do not
// agree on a type the operator supports.
type MismatchedOperandTypes struct {
	Op       string
	Lhs, Rhs types.Type
	Rng      token.Range
}

func (e *MismatchedOperandTypes) Range() token.Range { return e.Rng }
func (e *MismatchedOperandTypes) Error() string {
	return fmt.Sprintf("operator %s cannot apply to %s and %s", e.Op, typeName(e.Lhs), typeName(e.Rhs))
}

// CannotBorrow is raised when `&e` is applied to a value with no address:
// a register-resident local, or a non-assignable expression.
type CannotBorrow struct {
	Rng token.Range
}

func (e *CannotBorrow) Range() token.Range { return e.Rng }
func (e *CannotBorrow) Error() string      { return "cannot take the address of this expression" }

// BreakOutsideLoop is raised when `break` appears outside any enclosing
// while/loop/for.
type BreakOutsideLoop struct {
	Rng token.Range
}

func (e *BreakOutsideLoop) Range() token.Range { return e.Rng }
func (e *BreakOutsideLoop) Error() string      { return "break outside a loop" }

// ContinueOutsideLoop is raised when `continue` appears outside any
// enclosing while/loop/for.
type ContinueOutsideLoop struct {
	Rng token.Range
}

func (e *ContinueOutsideLoop) Range() token.Range { return e.Rng }
func (e *ContinueOutsideLoop) Error() string      { return "continue outside a loop" }

func typeName(t types.Type) string {
	if types.IsUnit(t) {
		return "unit"
	}
	return t.String()
}

var (
	_ Error = (*SyntaxError)(nil)
	_ Error = (*UnexpectedToken)(nil)
	_ Error = (*MissingToken)(nil)
	_ Error = (*MismatchedReturnType)(nil)
	_ Error = (*MismatchedAssignType)(nil)
	_ Error = (*InvalidDeref)(nil)
	_ Error = (*InvalidCharacterLiteralLength)(nil)
	_ Error = (*UnexpectedCharacter)(nil)
	_ Error = (*UnexpectedEof)(nil)
	_ Error = (*DuplicateDefinition)(nil)
	_ Error = (*UndefinedName)(nil)
	_ Error = (*NotCallable)(nil)
	_ Error = (*ArgumentCountMismatch)(nil)
	_ Error = (*UnsupportedConversion)(nil)
	_ Error = (*NoSuchField)(nil)
	_ Error = (*MismatchedOperandTypes)(nil)
	_ Error = (*CannotBorrow)(nil)
	_ Error = (*BreakOutsideLoop)(nil)
	_ Error = (*ContinueOutsideLoop)(nil)
)
