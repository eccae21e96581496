package ast

type (
	// Statement is a Lua statement.
	Statement interface {
		Node
		_stmt()
	}

	// Semicolon is the empty statement ';'.
	Semicolon struct{}

	// Assignment is a Lua assignment. An expression list is assigned to
	// a variable list. The lists may differ in length.
	Assignment struct {
		Targets VariableList
		Values  ExpressionList
	}

	// FunctionCallStatement is a function call whose results are discarded.
	FunctionCallStatement struct {
		Call FunctionCall
	}

	// LabelStatement is a goto target, '::name::'.
	LabelStatement struct {
		Label Label
	}

	// Break is the Lua break statement.
	Break struct{}

	// Goto is the Lua goto statement.
	Goto struct {
		Label Label
	}

	// Do is a Lua do construct.
	Do struct {
		Block Block
	}

	// While is a Lua while construct.
	While struct {
		Condition Expression
		Block     Block
	}

	// Repeat is a Lua repeat construct.
	Repeat struct {
		Block Block
		Until Expression
	}

	// If is a Lua if construct. ElseIfs holds every elseif branch in source
	// order, Else is nil if there is no else branch.
	If struct {
		Condition Expression
		Then      Block
		ElseIfs   []ElseIf
		Else      *Block
	}

	// ElseIf is a single elseif branch of an If.
	ElseIf struct {
		Condition Expression
		Then      Block
	}

	// ForStepping is a Lua for construct, using the production from,to,step.
	// Step is nil if it was omitted, in which case it defaults to 1.
	ForStepping struct {
		Name  string
		From  Expression
		To    Expression
		Step  Expression
		Block Block
	}

	// ForIn is a Lua for in construct.
	ForIn struct {
		Names NameList
		In    ExpressionList
		Block Block
	}

	// Function is a non-local function declaration, e.g.
	//
	//	function a.b.c:d() end
	Function struct {
		Name FunctionName
		Body FunctionBody
	}

	// LocalFunction is a Lua local function construct.
	LocalFunction struct {
		Name string
		Body FunctionBody
	}

	// LocalVariableBinding is a Lua local construct. Values is nil if the
	// names are declared without initializer.
	LocalVariableBinding struct {
		Names  NameList
		Values *ExpressionList
	}
)

func (Semicolon) _node()             {}
func (Assignment) _node()            {}
func (FunctionCallStatement) _node() {}
func (LabelStatement) _node()        {}
func (Break) _node()                 {}
func (Goto) _node()                  {}
func (Do) _node()                    {}
func (While) _node()                 {}
func (Repeat) _node()                {}
func (If) _node()                    {}
func (ElseIf) _node()                {}
func (ForStepping) _node()           {}
func (ForIn) _node()                 {}
func (Function) _node()              {}
func (LocalFunction) _node()         {}
func (LocalVariableBinding) _node()  {}

func (Semicolon) _stmt()             {}
func (Assignment) _stmt()            {}
func (FunctionCallStatement) _stmt() {}
func (LabelStatement) _stmt()        {}
func (Break) _stmt()                 {}
func (Goto) _stmt()                  {}
func (Do) _stmt()                    {}
func (While) _stmt()                 {}
func (Repeat) _stmt()                {}
func (If) _stmt()                    {}
func (ForStepping) _stmt()           {}
func (ForIn) _stmt()                 {}
func (Function) _stmt()              {}
func (LocalFunction) _stmt()         {}
func (LocalVariableBinding) _stmt()  {}
