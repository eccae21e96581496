package ast

import "fmt"

// Clone returns a deep copy of the given node. The copy shares no slices or
// pointers with the original, so either of them may be handed to code that
// is not trusted to leave it alone.
func Clone(node Node) Node {
	if node == nil {
		return nil
	}
	switch n := node.(type) {
	case Chunk:
		return CloneChunk(n)
	case Block:
		return cloneBlock(n)
	case ReturnStatement:
		return cloneReturn(n)
	case NameList:
		return cloneNameList(n)
	case ExpressionList:
		return cloneExpressionList(n)
	case VariableList:
		return cloneVariableList(n)
	case FieldList:
		return cloneFieldList(n)
	case ElseIf:
		return cloneElseIf(n)
	case FunctionName:
		return cloneFunctionName(n)
	case FunctionBody:
		return cloneFunctionBody(n)
	case Statement:
		return cloneStatement(n)
	case Expression:
		return cloneExpression(n)
	case Field:
		return cloneField(n)
	case ParameterList:
		return cloneParameters(n)
	case FunctionArguments:
		return cloneArguments(n)
	}
	panic(fmt.Sprintf("unknown node type %T", node))
}

// CloneChunk returns a deep copy of the given chunk.
func CloneChunk(c Chunk) Chunk {
	return Chunk{
		Name:  c.Name,
		Block: cloneBlock(c.Block),
	}
}

func cloneSlice[T any](s []T, clone func(T) T) []T {
	if s == nil {
		return nil
	}
	res := make([]T, len(s))
	for i, elem := range s {
		res[i] = clone(elem)
	}
	return res
}

func cloneString(s string) string { return s }

func cloneBlock(b Block) Block {
	res := Block{
		Statements: cloneSlice(b.Statements, cloneStatement),
	}
	if b.Return != nil {
		ret := cloneReturn(*b.Return)
		res.Return = &ret
	}
	return res
}

func cloneReturn(r ReturnStatement) ReturnStatement {
	return ReturnStatement{
		Values: cloneExpressionListPtr(r.Values),
	}
}

func cloneNameList(l NameList) NameList {
	return NameList{
		First: l.First,
		Rest:  cloneSlice(l.Rest, cloneString),
	}
}

func cloneExpressionList(l ExpressionList) ExpressionList {
	return ExpressionList{
		First: cloneExpression(l.First),
		Rest:  cloneSlice(l.Rest, cloneExpression),
	}
}

func cloneExpressionListPtr(l *ExpressionList) *ExpressionList {
	if l == nil {
		return nil
	}
	res := cloneExpressionList(*l)
	return &res
}

func cloneVariableList(l VariableList) VariableList {
	return VariableList{
		First: cloneVariable(l.First),
		Rest:  cloneSlice(l.Rest, cloneVariable),
	}
}

func cloneFieldList(l FieldList) FieldList {
	return FieldList{
		First: cloneField(l.First),
		Rest:  cloneSlice(l.Rest, cloneField),
	}
}

func cloneElseIf(e ElseIf) ElseIf {
	return ElseIf{
		Condition: cloneExpression(e.Condition),
		Then:      cloneBlock(e.Then),
	}
}

func cloneFunctionName(n FunctionName) FunctionName {
	return FunctionName{
		First:  n.First,
		Rest:   cloneSlice(n.Rest, cloneString),
		Method: n.Method,
	}
}

func cloneFunctionBody(b FunctionBody) FunctionBody {
	return FunctionBody{
		Parameters: cloneParameters(b.Parameters),
		Block:      cloneBlock(b.Block),
	}
}

func cloneStatement(stmt Statement) Statement {
	switch s := stmt.(type) {
	case nil:
		return nil
	case Semicolon, Break, LabelStatement, Goto:
		return s
	case Assignment:
		return Assignment{
			Targets: cloneVariableList(s.Targets),
			Values:  cloneExpressionList(s.Values),
		}
	case FunctionCallStatement:
		return FunctionCallStatement{
			Call: cloneCall(s.Call),
		}
	case Do:
		return Do{
			Block: cloneBlock(s.Block),
		}
	case While:
		return While{
			Condition: cloneExpression(s.Condition),
			Block:     cloneBlock(s.Block),
		}
	case Repeat:
		return Repeat{
			Block: cloneBlock(s.Block),
			Until: cloneExpression(s.Until),
		}
	case If:
		res := If{
			Condition: cloneExpression(s.Condition),
			Then:      cloneBlock(s.Then),
			ElseIfs:   cloneSlice(s.ElseIfs, cloneElseIf),
		}
		if s.Else != nil {
			elseBlock := cloneBlock(*s.Else)
			res.Else = &elseBlock
		}
		return res
	case ForStepping:
		return ForStepping{
			Name:  s.Name,
			From:  cloneExpression(s.From),
			To:    cloneExpression(s.To),
			Step:  cloneExpression(s.Step),
			Block: cloneBlock(s.Block),
		}
	case ForIn:
		return ForIn{
			Names: cloneNameList(s.Names),
			In:    cloneExpressionList(s.In),
			Block: cloneBlock(s.Block),
		}
	case Function:
		return Function{
			Name: cloneFunctionName(s.Name),
			Body: cloneFunctionBody(s.Body),
		}
	case LocalFunction:
		return LocalFunction{
			Name: s.Name,
			Body: cloneFunctionBody(s.Body),
		}
	case LocalVariableBinding:
		return LocalVariableBinding{
			Names:  cloneNameList(s.Names),
			Values: cloneExpressionListPtr(s.Values),
		}
	}
	panic(fmt.Sprintf("unknown statement type %T", stmt))
}

func cloneExpression(exp Expression) Expression {
	switch e := exp.(type) {
	case nil:
		return nil
	case Nil, False, True, Number, String, Vararg, Name:
		return e
	case FunctionDefine:
		return FunctionDefine{
			Body: cloneFunctionBody(e.Body),
		}
	case TableConstructor:
		return cloneTable(e)
	case BinaryExpression:
		return BinaryExpression{
			Operator: e.Operator,
			Left:     cloneExpression(e.Left),
			Right:    cloneExpression(e.Right),
		}
	case UnaryExpression:
		return UnaryExpression{
			Operator: e.Operator,
			Operand:  cloneExpression(e.Operand),
		}
	case Parenthesis:
		return Parenthesis{
			Inner: cloneExpression(e.Inner),
		}
	case ArrayAccess:
		return ArrayAccess{
			From: clonePrefix(e.From),
			Key:  cloneExpression(e.Key),
		}
	case DotAccess:
		return DotAccess{
			From: clonePrefix(e.From),
			Key:  e.Key,
		}
	case StaticCall:
		return StaticCall{
			Callee:    clonePrefix(e.Callee),
			Arguments: cloneArguments(e.Arguments),
		}
	case SelfTakingCall:
		return SelfTakingCall{
			Receiver:  clonePrefix(e.Receiver),
			Method:    e.Method,
			Arguments: cloneArguments(e.Arguments),
		}
	}
	panic(fmt.Sprintf("unknown expression type %T", exp))
}

func clonePrefix(p PrefixExpression) PrefixExpression {
	if p == nil {
		return nil
	}
	return cloneExpression(p).(PrefixExpression)
}

func cloneVariable(v Variable) Variable {
	if v == nil {
		return nil
	}
	return cloneExpression(v).(Variable)
}

func cloneCall(c FunctionCall) FunctionCall {
	if c == nil {
		return nil
	}
	return cloneExpression(c).(FunctionCall)
}

func cloneTable(t TableConstructor) TableConstructor {
	if t.Fields == nil {
		return TableConstructor{}
	}
	fields := cloneFieldList(*t.Fields)
	return TableConstructor{
		Fields: &fields,
	}
}

func cloneField(field Field) Field {
	switch f := field.(type) {
	case nil:
		return nil
	case ExpressionForName:
		return ExpressionForName{
			Name:  cloneExpression(f.Name),
			Value: cloneExpression(f.Value),
		}
	case Equals:
		return Equals{
			Name:  f.Name,
			Value: cloneExpression(f.Value),
		}
	case ArrayStyle:
		return ArrayStyle{
			Value: cloneExpression(f.Value),
		}
	}
	panic(fmt.Sprintf("unknown field type %T", field))
}

func cloneParameters(params ParameterList) ParameterList {
	switch p := params.(type) {
	case nil:
		return nil
	case NamedParameters:
		return NamedParameters{
			Names: cloneNameList(p.Names),
		}
	case NamedVariadicParameters:
		return NamedVariadicParameters{
			Names: cloneNameList(p.Names),
		}
	case VariadicParameters:
		return p
	}
	panic(fmt.Sprintf("unknown parameter list type %T", params))
}

func cloneArguments(args FunctionArguments) FunctionArguments {
	switch a := args.(type) {
	case nil:
		return nil
	case ParenthesisArguments:
		return ParenthesisArguments{
			Values: cloneExpressionListPtr(a.Values),
		}
	case TableArguments:
		return TableArguments{
			Table: cloneTable(a.Table),
		}
	case StringArguments:
		return a
	}
	panic(fmt.Sprintf("unknown arguments type %T", args))
}
