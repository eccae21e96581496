// Package ast declares the syntax tree of a Lua 5.2 chunk.
//
// Every closed choice of the grammar is a sealed interface (Statement,
// Expression, PrefixExpression, Variable, FunctionCall, FunctionArguments,
// ParameterList, Field), whose variants are the types in this package that
// implement it. Consumers dispatch over a choice with a type switch that
// names every variant; the exhaustive analyzer in
// internal/tools/analysis/exhaustive reports switches that don't.
//
// A tree is built once and never modified afterwards. It may then be read by
// any number of goroutines at the same time. Use Clone to obtain a copy that
// shares no memory with the original.
package ast

import "errors"

// ErrStatementAfterReturn is returned when a statement is appended to a Block
// that already ends with a ReturnStatement.
var ErrStatementAfterReturn = errors.New("statement after return")

type (
	// Node is any node of the tree.
	Node interface {
		_node()
	}

	// Chunk is just a Block, but is expected to run in a separate scope.
	// Name is the name of the source the chunk was parsed from.
	Chunk struct {
		Name string
		Block
	}

	// Block is a list of statements, optionally followed by a return
	// statement. Since Return is not a Statement, nothing can follow it.
	Block struct {
		Statements []Statement
		Return     *ReturnStatement
	}

	// ReturnStatement is the 'return' at the end of a Block. Values is nil if
	// nothing is returned.
	ReturnStatement struct {
		Values *ExpressionList
	}

	// Label is the name of a goto target.
	Label string

	// NameList is a non-empty, comma separated list of names.
	NameList struct {
		First string
		Rest  []string
	}

	// ExpressionList is a non-empty, comma separated list of expressions.
	ExpressionList struct {
		First Expression
		Rest  []Expression
	}

	// VariableList is a non-empty, comma separated list of variables, which
	// are the targets of an Assignment.
	VariableList struct {
		First Variable
		Rest  []Variable
	}
)

func (Chunk) _node()           {}
func (Block) _node()           {}
func (ReturnStatement) _node() {}
func (NameList) _node()        {}
func (ExpressionList) _node()  {}
func (VariableList) _node()    {}

// NewBlock creates a Block from the given statements, without a return
// statement.
func NewBlock(statements ...Statement) Block {
	return Block{
		Statements: append([]Statement(nil), statements...),
	}
}

// Append returns a copy of this block with the given statements appended.
// If the block has a return statement, ErrStatementAfterReturn is returned.
func (b Block) Append(statements ...Statement) (Block, error) {
	if len(statements) == 0 {
		return b, nil
	}
	if b.Return != nil {
		return b, ErrStatementAfterReturn
	}
	stmts := make([]Statement, 0, len(b.Statements)+len(statements))
	stmts = append(stmts, b.Statements...)
	stmts = append(stmts, statements...)
	return Block{
		Statements: stmts,
	}, nil
}

// WithReturn returns a copy of this block that ends with the given return
// statement.
func (b Block) WithReturn(ret ReturnStatement) Block {
	var stmts []Statement
	if b.Statements != nil {
		stmts = make([]Statement, len(b.Statements))
		copy(stmts, b.Statements)
	}
	return Block{
		Statements: stmts,
		Return:     &ret,
	}
}

// HasReturn determines whether this block ends with a return statement.
func (b Block) HasReturn() bool {
	return b.Return != nil
}

// NewNameList creates a NameList with at least the first name.
func NewNameList(first string, rest ...string) NameList {
	return NameList{
		First: first,
		Rest:  append([]string(nil), rest...),
	}
}

// Len returns the number of names in the list, which is at least 1.
func (l NameList) Len() int {
	return 1 + len(l.Rest)
}

// Names returns all names of the list in order.
func (l NameList) Names() []string {
	return append([]string{l.First}, l.Rest...)
}

// NewExpressionList creates an ExpressionList with at least the first
// expression.
func NewExpressionList(first Expression, rest ...Expression) ExpressionList {
	return ExpressionList{
		First: first,
		Rest:  append([]Expression(nil), rest...),
	}
}

// Len returns the number of expressions in the list, which is at least 1.
func (l ExpressionList) Len() int {
	return 1 + len(l.Rest)
}

// Expressions returns all expressions of the list in order.
func (l ExpressionList) Expressions() []Expression {
	return append([]Expression{l.First}, l.Rest...)
}

// NewVariableList creates a VariableList with at least the first variable.
func NewVariableList(first Variable, rest ...Variable) VariableList {
	return VariableList{
		First: first,
		Rest:  append([]Variable(nil), rest...),
	}
}

// Len returns the number of variables in the list, which is at least 1.
func (l VariableList) Len() int {
	return 1 + len(l.Rest)
}

// Variables returns all variables of the list in order.
func (l VariableList) Variables() []Variable {
	return append([]Variable{l.First}, l.Rest...)
}
