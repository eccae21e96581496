package parser

import "github.com/Ameliorate/buildlua/ast"

/*
Operator precedence as specified in the language reference, from lower to higher.

or
and
<     >     <=    >=    ~=    ==
..
+     -
*     /     %
unary operators (not   #     -)
^

*/

type precedence int8

const (
	precedenceNone precedence = iota - 1
	precedence0
	precedence1
	precedence2
	precedence3
	precedence4
	precedence5
	precedence6
	precedence7
)

// unaryPrecedence is the precedence of all unary operators. Only '^' binds
// tighter, so '-x^2' is '-(x^2)'.
const unaryPrecedence = precedence6

var (
	precedences = map[ast.BinaryOperation]precedence{
		ast.Or:                 precedence0,
		ast.And:                precedence1,
		ast.LessThan:           precedence2,
		ast.GreaterThan:        precedence2,
		ast.LessThanOrEqual:    precedence2,
		ast.GreaterThanOrEqual: precedence2,
		ast.NotEqual:           precedence2,
		ast.Equal:              precedence2,
		ast.Concatenate:        precedence3,
		ast.Plus:               precedence4,
		ast.Minus:              precedence4,
		ast.Times:              precedence5,
		ast.Divide:             precedence5,
		ast.Modulo:             precedence5,
		ast.Exponent:           precedence7,
	}
)

func precedenceOf(operator ast.BinaryOperation) precedence {
	return precedences[operator]
}

func isRightAssociative(operator ast.BinaryOperation) bool {
	return operator == ast.Concatenate || operator == ast.Exponent
}
