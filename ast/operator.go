package ast

// BinaryOperation is the operator of a BinaryExpression.
type BinaryOperation uint8

// Known binary operations.
const (
	// Plus is the operator '+'.
	Plus BinaryOperation = iota
	// Minus is the operator '-', when used as a binary operator.
	Minus
	// Times is the operator '*'.
	Times
	// Divide is the operator '/'.
	Divide
	// Exponent is the operator '^'.
	Exponent
	// Modulo is the operator '%'.
	Modulo
	// Concatenate is the operator '..'.
	Concatenate
	// LessThan is the operator '<'.
	LessThan
	// LessThanOrEqual is the operator '<='.
	LessThanOrEqual
	// GreaterThan is the operator '>'.
	GreaterThan
	// GreaterThanOrEqual is the operator '>='.
	GreaterThanOrEqual
	// Equal is the operator '=='.
	Equal
	// NotEqual is the operator '~='.
	NotEqual
	// And is the keyword operator 'and'.
	And
	// Or is the keyword operator 'or'.
	Or
)

// UnaryOperation is the operator of a UnaryExpression.
type UnaryOperation uint8

// Known unary operations.
const (
	// Negate is the operator '-', when used as a unary operator.
	Negate UnaryOperation = iota
	// Not is the keyword operator 'not'.
	Not
	// Length is the operator '#'.
	Length
)

var (
	binaryOperationSigils = [...]string{
		Plus:               "+",
		Minus:              "-",
		Times:              "*",
		Divide:             "/",
		Exponent:           "^",
		Modulo:             "%",
		Concatenate:        "..",
		LessThan:           "<",
		LessThanOrEqual:    "<=",
		GreaterThan:        ">",
		GreaterThanOrEqual: ">=",
		Equal:              "==",
		NotEqual:           "~=",
		And:                "and",
		Or:                 "or",
	}

	unaryOperationSigils = [...]string{
		Negate: "-",
		Not:    "not",
		Length: "#",
	}
)

// String returns the operator as it is written in Lua source.
func (op BinaryOperation) String() string {
	if int(op) < len(binaryOperationSigils) {
		return binaryOperationSigils[op]
	}
	return "BinaryOperation(?)"
}

// String returns the operator as it is written in Lua source.
func (op UnaryOperation) String() string {
	if int(op) < len(unaryOperationSigils) {
		return unaryOperationSigils[op]
	}
	return "UnaryOperation(?)"
}

// LookupBinaryOperation returns the binary operation that is written as
// the given sigil, or false if there is none.
func LookupBinaryOperation(sigil string) (BinaryOperation, bool) {
	for op, s := range binaryOperationSigils {
		if s == sigil {
			return BinaryOperation(op), true
		}
	}
	return 0, false
}

// LookupUnaryOperation returns the unary operation that is written as
// the given sigil, or false if there is none.
func LookupUnaryOperation(sigil string) (UnaryOperation, bool) {
	for op, s := range unaryOperationSigils {
		if s == sigil {
			return UnaryOperation(op), true
		}
	}
	return 0, false
}
