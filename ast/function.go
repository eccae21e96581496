package ast

type (
	// FunctionName is the name a Function statement binds to, e.g. a.b.c:d
	// or just foo.bar. Method is empty if there is no ':' part.
	FunctionName struct {
		First  string
		Rest   []string
		Method string
	}

	// FunctionBody is a Lua function body, including the parameter list.
	// Parameters is nil if the function takes no parameters.
	FunctionBody struct {
		Parameters ParameterList
		Block      Block
	}

	// ParameterList is a function parameter list.
	ParameterList interface {
		Node
		_params()
	}

	// NamedParameters is a parameter list without extended arguments.
	//
	//	function foo(a, b) end
	NamedParameters struct {
		Names NameList
	}

	// NamedVariadicParameters is a parameter list with names followed by
	// extended arguments.
	//
	//	function foo(a, b, ...) end
	NamedVariadicParameters struct {
		Names NameList
	}

	// VariadicParameters is a parameter list that consists of extended
	// arguments only.
	//
	//	function foo(...) end
	VariadicParameters struct{}

	// FunctionCall is a Lua function call.
	FunctionCall interface {
		PrefixExpression
		_call()
	}

	// StaticCall calls a function without passing a self argument.
	//
	//	abcde("foo")
	//	bar.foo("foobar")
	StaticCall struct {
		Callee    PrefixExpression
		Arguments FunctionArguments
	}

	// SelfTakingCall calls a method on Receiver, passing the receiver as
	// implicit first argument.
	//
	//	foo:bar("barfoo")
	SelfTakingCall struct {
		Receiver  PrefixExpression
		Method    string
		Arguments FunctionArguments
	}

	// FunctionArguments are the arguments of a function call.
	FunctionArguments interface {
		Node
		_args()
	}

	// ParenthesisArguments is the regular argument list, 'f(a, b)'. Values
	// is nil for 'f()'.
	ParenthesisArguments struct {
		Values *ExpressionList
	}

	// TableArguments calls a function with a single table, 'f{a = "aaa"}'.
	TableArguments struct {
		Table TableConstructor
	}

	// StringArguments calls a function with a single string literal,
	// 'f"abc"'.
	StringArguments struct {
		Value string
	}
)

func (FunctionName) _node()            {}
func (FunctionBody) _node()            {}
func (NamedParameters) _node()         {}
func (NamedVariadicParameters) _node() {}
func (VariadicParameters) _node()      {}
func (StaticCall) _node()              {}
func (SelfTakingCall) _node()          {}
func (ParenthesisArguments) _node()    {}
func (TableArguments) _node()          {}
func (StringArguments) _node()         {}

func (NamedParameters) _params()         {}
func (NamedVariadicParameters) _params() {}
func (VariadicParameters) _params()      {}

func (StaticCall) _exp()     {}
func (SelfTakingCall) _exp() {}

func (StaticCall) _prefixexp()     {}
func (SelfTakingCall) _prefixexp() {}

func (StaticCall) _call()     {}
func (SelfTakingCall) _call() {}

func (ParenthesisArguments) _args() {}
func (TableArguments) _args()       {}
func (StringArguments) _args()      {}

// Names returns the dotted part of the function name in order.
func (n FunctionName) Names() []string {
	return append([]string{n.First}, n.Rest...)
}

// IsMethod determines whether the function is declared with ':'
// and thus takes an implicit self parameter.
func (n FunctionName) IsMethod() bool {
	return n.Method != ""
}
