package ast

// Walk traverses the tree starting at node, calling fn for each node in
// source order. If fn returns false, Walk does not visit the children of
// that node. Optional children that are absent are not visited.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case Chunk:
		Walk(n.Block, fn)

	case Block:
		for _, stmt := range n.Statements {
			Walk(stmt, fn)
		}
		if n.Return != nil {
			Walk(*n.Return, fn)
		}

	case ReturnStatement:
		if n.Values != nil {
			Walk(*n.Values, fn)
		}

	case ExpressionList:
		for _, exp := range n.Expressions() {
			Walk(exp, fn)
		}

	case VariableList:
		for _, v := range n.Variables() {
			Walk(v, fn)
		}

	case FieldList:
		for _, field := range n.Fields() {
			Walk(field, fn)
		}

	case Assignment:
		Walk(n.Targets, fn)
		Walk(n.Values, fn)

	case FunctionCallStatement:
		Walk(n.Call, fn)

	case Do:
		Walk(n.Block, fn)

	case While:
		Walk(n.Condition, fn)
		Walk(n.Block, fn)

	case Repeat:
		Walk(n.Block, fn)
		Walk(n.Until, fn)

	case If:
		Walk(n.Condition, fn)
		Walk(n.Then, fn)
		for _, elseIf := range n.ElseIfs {
			Walk(elseIf, fn)
		}
		if n.Else != nil {
			Walk(*n.Else, fn)
		}

	case ElseIf:
		Walk(n.Condition, fn)
		Walk(n.Then, fn)

	case ForStepping:
		Walk(n.From, fn)
		Walk(n.To, fn)
		if n.Step != nil {
			Walk(n.Step, fn)
		}
		Walk(n.Block, fn)

	case ForIn:
		Walk(n.Names, fn)
		Walk(n.In, fn)
		Walk(n.Block, fn)

	case Function:
		Walk(n.Name, fn)
		Walk(n.Body, fn)

	case LocalFunction:
		Walk(n.Body, fn)

	case LocalVariableBinding:
		Walk(n.Names, fn)
		if n.Values != nil {
			Walk(*n.Values, fn)
		}

	case FunctionDefine:
		Walk(n.Body, fn)

	case FunctionBody:
		if n.Parameters != nil {
			Walk(n.Parameters, fn)
		}
		Walk(n.Block, fn)

	case NamedParameters:
		Walk(n.Names, fn)

	case NamedVariadicParameters:
		Walk(n.Names, fn)

	case TableConstructor:
		if n.Fields != nil {
			Walk(*n.Fields, fn)
		}

	case ExpressionForName:
		Walk(n.Name, fn)
		Walk(n.Value, fn)

	case Equals:
		Walk(n.Value, fn)

	case ArrayStyle:
		Walk(n.Value, fn)

	case BinaryExpression:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case UnaryExpression:
		Walk(n.Operand, fn)

	case Parenthesis:
		Walk(n.Inner, fn)

	case ArrayAccess:
		Walk(n.From, fn)
		Walk(n.Key, fn)

	case DotAccess:
		Walk(n.From, fn)

	case StaticCall:
		Walk(n.Callee, fn)
		Walk(n.Arguments, fn)

	case SelfTakingCall:
		Walk(n.Receiver, fn)
		Walk(n.Arguments, fn)

	case ParenthesisArguments:
		if n.Values != nil {
			Walk(*n.Values, fn)
		}

	case TableArguments:
		Walk(n.Table, fn)

	case NameList, FunctionName, Semicolon, LabelStatement, Break, Goto,
		Nil, False, True, Number, String, Vararg, Name,
		VariadicParameters, StringArguments:
		// leaves
	}
}
