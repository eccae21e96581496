package ast

type (
	// Expression is a Lua expression.
	Expression interface {
		Node
		_exp()
	}

	// Nil is the constant nil.
	Nil struct{}

	// False is the constant false.
	False struct{}

	// True is the constant true.
	True struct{}

	// Number is a numeric literal.
	Number float64

	// String is a string literal, with all escape sequences resolved.
	String string

	// Vararg is the '...' expression, which accesses the extended arguments
	// of a function whose parameter list ends with '...'.
	Vararg struct{}

	// FunctionDefine is an anonymous function, 'function (...) ... end'.
	FunctionDefine struct {
		Body FunctionBody
	}

	// TableConstructor is a table constructor, which consists of
	// a list of Fields. Fields is nil for the empty table '{}'.
	TableConstructor struct {
		Fields *FieldList
	}

	// BinaryExpression is a binary operation. Operator precedence is already
	// resolved in the nesting of Left and Right.
	BinaryExpression struct {
		Operator BinaryOperation
		Left     Expression
		Right    Expression
	}

	// UnaryExpression is a unary operation.
	UnaryExpression struct {
		Operator UnaryOperation
		Operand  Expression
	}

	// PrefixExpression is an expression that may be followed by a call,
	// an index or a field access. This is a Variable, a FunctionCall or
	// a Parenthesis.
	PrefixExpression interface {
		Expression
		_prefixexp()
	}

	// Parenthesis is an expression in parenthesis. It truncates the
	// expression to a single value.
	Parenthesis struct {
		Inner Expression
	}

	// Variable is an assignable location.
	Variable interface {
		PrefixExpression
		_var()
	}

	// Name is a variable that is referred to by its name only.
	Name string

	// ArrayAccess is an indexed variable, 'from[key]'.
	ArrayAccess struct {
		From PrefixExpression
		Key  Expression
	}

	// DotAccess is a field of a table, 'from.key'.
	DotAccess struct {
		From PrefixExpression
		Key  string
	}

	// FieldList is the non-empty list of fields of a TableConstructor.
	// Field order is kept as it was in the source.
	FieldList struct {
		First Field
		Rest  []Field
	}

	// Field is a field in a table constructor.
	Field interface {
		Node
		_field()
	}

	// ExpressionForName is a field whose key is computed, '[name] = value'.
	ExpressionForName struct {
		Name  Expression
		Value Expression
	}

	// Equals is a field with a name as key, 'name = value'.
	Equals struct {
		Name  string
		Value Expression
	}

	// ArrayStyle is a positional field, whose key is the next free integer
	// key.
	ArrayStyle struct {
		Value Expression
	}
)

func (Nil) _node()               {}
func (False) _node()             {}
func (True) _node()              {}
func (Number) _node()            {}
func (String) _node()            {}
func (Vararg) _node()            {}
func (FunctionDefine) _node()    {}
func (TableConstructor) _node()  {}
func (BinaryExpression) _node()  {}
func (UnaryExpression) _node()   {}
func (Parenthesis) _node()       {}
func (Name) _node()              {}
func (ArrayAccess) _node()       {}
func (DotAccess) _node()         {}
func (FieldList) _node()         {}
func (ExpressionForName) _node() {}
func (Equals) _node()            {}
func (ArrayStyle) _node()        {}

func (Nil) _exp()              {}
func (False) _exp()            {}
func (True) _exp()             {}
func (Number) _exp()           {}
func (String) _exp()           {}
func (Vararg) _exp()           {}
func (FunctionDefine) _exp()   {}
func (TableConstructor) _exp() {}
func (BinaryExpression) _exp() {}
func (UnaryExpression) _exp()  {}
func (Parenthesis) _exp()      {}
func (Name) _exp()             {}
func (ArrayAccess) _exp()      {}
func (DotAccess) _exp()        {}

func (Parenthesis) _prefixexp() {}
func (Name) _prefixexp()        {}
func (ArrayAccess) _prefixexp() {}
func (DotAccess) _prefixexp()   {}

func (Name) _var()        {}
func (ArrayAccess) _var() {}
func (DotAccess) _var()   {}

func (ExpressionForName) _field() {}
func (Equals) _field()            {}
func (ArrayStyle) _field()        {}

// NewFieldList creates a FieldList with at least the first field.
func NewFieldList(first Field, rest ...Field) FieldList {
	return FieldList{
		First: first,
		Rest:  append([]Field(nil), rest...),
	}
}

// Len returns the number of fields in the list, which is at least 1.
func (l FieldList) Len() int {
	return 1 + len(l.Rest)
}

// Fields returns all fields of the list in order.
func (l FieldList) Fields() []Field {
	return append([]Field{l.First}, l.Rest...)
}
