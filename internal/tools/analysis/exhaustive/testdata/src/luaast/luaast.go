// Package luaast has the shape of a Lua syntax tree: layered sealed
// interfaces and operator enums.
package luaast

type (
	Node interface{ _node() }

	Statement interface {
		Node
		_stmt()
	}

	Expression interface {
		Node
		_exp()
	}

	PrefixExpression interface {
		Expression
		_prefixexp()
	}

	Variable interface {
		PrefixExpression
		_var()
	}

	FunctionCall interface {
		PrefixExpression
		_call()
	}

	Field interface {
		Node
		_field()
	}

	ParameterList interface {
		Node
		_params()
	}

	FunctionArguments interface {
		Node
		_args()
	}
)

type (
	Chunk struct{ Block Block }
	Block struct{ Statements []Statement }

	Semicolon             struct{}
	Break                 struct{}
	Goto                  struct{ Label string }
	Assignment            struct{ Targets []Variable }
	FunctionCallStatement struct{ Call FunctionCall }

	Nil              struct{}
	Number           float64
	BinaryExpression struct{ Operator BinaryOperation }
	UnaryExpression  struct{ Operator UnaryOperation }
	Parenthesis      struct{ Inner Expression }
	Name             string
	DotAccess        struct{ From PrefixExpression }
	StaticCall       struct{ Arguments FunctionArguments }
	SelfTakingCall   struct{ Arguments FunctionArguments }

	ArrayStyle struct{ Value Expression }
	Equals     struct{ Value Expression }

	NamedParameters    struct{ Names []string }
	VariadicParameters struct{}

	ParenthesisArguments struct{ Values []Expression }
	StringArguments      struct{ Value string }
)

type BinaryOperation uint8

const (
	Plus BinaryOperation = iota
	Minus
	Times
	Divide
	Exponent
	Modulo
	Concatenate
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
	Equal
	NotEqual
	And
	Or
)

type UnaryOperation uint8

const (
	Negate UnaryOperation = iota
	Not
	Length
)

func (Chunk) _node()                 {}
func (Block) _node()                 {}
func (Semicolon) _node()             {}
func (Break) _node()                 {}
func (Goto) _node()                  {}
func (Assignment) _node()            {}
func (FunctionCallStatement) _node() {}
func (Nil) _node()                   {}
func (Number) _node()                {}
func (BinaryExpression) _node()      {}
func (UnaryExpression) _node()       {}
func (Parenthesis) _node()           {}
func (Name) _node()                  {}
func (DotAccess) _node()             {}
func (StaticCall) _node()            {}
func (SelfTakingCall) _node()        {}
func (ArrayStyle) _node()            {}
func (Equals) _node()                {}
func (NamedParameters) _node()       {}
func (VariadicParameters) _node()    {}
func (ParenthesisArguments) _node()  {}
func (StringArguments) _node()       {}

func (Semicolon) _stmt()             {}
func (Break) _stmt()                 {}
func (Goto) _stmt()                  {}
func (Assignment) _stmt()            {}
func (FunctionCallStatement) _stmt() {}

func (Nil) _exp()              {}
func (Number) _exp()           {}
func (BinaryExpression) _exp() {}
func (UnaryExpression) _exp()  {}
func (Parenthesis) _exp()      {}
func (Name) _exp()             {}
func (DotAccess) _exp()        {}
func (StaticCall) _exp()       {}
func (SelfTakingCall) _exp()   {}

func (Parenthesis) _prefixexp()    {}
func (Name) _prefixexp()           {}
func (DotAccess) _prefixexp()      {}
func (StaticCall) _prefixexp()     {}
func (SelfTakingCall) _prefixexp() {}

func (Name) _var()      {}
func (DotAccess) _var() {}

func (StaticCall) _call()     {}
func (SelfTakingCall) _call() {}

func (ArrayStyle) _field() {}
func (Equals) _field()     {}

func (NamedParameters) _params()    {}
func (VariadicParameters) _params() {}

func (ParenthesisArguments) _args() {}
func (StringArguments) _args()      {}
