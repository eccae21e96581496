package codec

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/Ameliorate/buildlua/ast"
)

// DecodeError describes a document that does not describe a valid tree.
// Path locates the offending value, e.g. '$.block.statements[2].condition'.
type DecodeError struct {
	Path    string
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Path, e.Message)
}

func errorAt(path, format string, args ...interface{}) error {
	return &DecodeError{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}

// Decode converts a generic document, as produced by Encode or by
// unmarshalling JSON or YAML into an interface{}, back into a chunk.
func Decode(doc interface{}) (ast.Chunk, error) {
	o, err := asObject(doc, "$")
	if err != nil {
		return ast.Chunk{}, err
	}
	if err := o.expectKind(kindChunk); err != nil {
		return ast.Chunk{}, err
	}
	name, err := o.optString(keyName)
	if err != nil {
		return ast.Chunk{}, err
	}
	block, err := o.block(keyBlock)
	if err != nil {
		return ast.Chunk{}, err
	}
	return ast.Chunk{
		Name:  name,
		Block: block,
	}, nil
}

type object struct {
	path string
	m    map[string]interface{}
}

func asObject(v interface{}, path string) (object, error) {
	switch m := v.(type) {
	case map[string]interface{}:
		return object{path: path, m: m}, nil
	case map[interface{}]interface{}:
		converted := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return object{}, errorAt(path, "object key %v is not a string", k)
			}
			converted[key] = v
		}
		return object{path: path, m: converted}, nil
	}
	return object{}, errorAt(path, "expected an object, got %T", v)
}

func (o object) at(key string) string {
	return o.path + "." + key
}

func (o object) kind() (string, error) {
	return o.str(keyKind)
}

func (o object) expectKind(kind string) error {
	got, err := o.kind()
	if err != nil {
		return err
	}
	if got != kind {
		return errorAt(o.path, "expected kind %q, got %q", kind, got)
	}
	return nil
}

func (o object) has(key string) bool {
	_, ok := o.m[key]
	return ok
}

func (o object) str(key string) (string, error) {
	v, ok := o.m[key]
	if !ok {
		return "", errorAt(o.at(key), "missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", errorAt(o.at(key), "expected a string, got %T", v)
	}
	return s, nil
}

func (o object) optString(key string) (string, error) {
	if !o.has(key) {
		return "", nil
	}
	return o.str(key)
}

func (o object) obj(key string) (object, error) {
	v, ok := o.m[key]
	if !ok {
		return object{}, errorAt(o.at(key), "missing")
	}
	return asObject(v, o.at(key))
}

// list returns the array stored under key. Arrays are never empty.
// array returns the array at key, which may be empty.
func (o object) array(key string) ([]interface{}, error) {
	v, ok := o.m[key]
	if !ok {
		return nil, errorAt(o.at(key), "missing")
	}
	l, ok := v.([]interface{})
	if !ok {
		return nil, errorAt(o.at(key), "expected an array, got %T", v)
	}
	return l, nil
}

// list returns the non-empty array at key.
func (o object) list(key string) ([]interface{}, error) {
	l, err := o.array(key)
	if err != nil {
		return nil, err
	}
	if len(l) == 0 {
		return nil, errorAt(o.at(key), "array must not be empty")
	}
	return l, nil
}

// text decodes the content of a String node or StringArguments.
func (o object) text() (string, error) {
	if o.has(keyBytes) {
		encoded, err := o.str(keyBytes)
		if err != nil {
			return "", err
		}
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return "", errorAt(o.at(keyBytes), "invalid base64: %v", err)
		}
		return string(raw), nil
	}
	return o.str(keyValue)
}

func (o object) number(key string) (float64, error) {
	v, ok := o.m[key]
	if !ok {
		return 0, errorAt(o.at(key), "missing")
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, errorAt(o.at(key), "invalid number %q", n)
		}
		return f, nil
	}
	return 0, errorAt(o.at(key), "expected a number, got %T", v)
}

func (o object) block(key string) (ast.Block, error) {
	b, err := o.obj(key)
	if err != nil {
		return ast.Block{}, err
	}
	return decodeBlock(b)
}

func (o object) optBlock(key string) (*ast.Block, error) {
	if !o.has(key) {
		return nil, nil
	}
	b, err := o.block(key)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (o object) expression(key string) (ast.Expression, error) {
	e, err := o.obj(key)
	if err != nil {
		return nil, err
	}
	return decodeExpression(e)
}

func (o object) optExpression(key string) (ast.Expression, error) {
	if !o.has(key) {
		return nil, nil
	}
	return o.expression(key)
}

func (o object) prefix(key string) (ast.PrefixExpression, error) {
	exp, err := o.expression(key)
	if err != nil {
		return nil, err
	}
	p, ok := exp.(ast.PrefixExpression)
	if !ok {
		return nil, errorAt(o.at(key), "expected a prefix expression, got %T", exp)
	}
	return p, nil
}

func (o object) names(key string) (ast.NameList, error) {
	l, err := o.list(key)
	if err != nil {
		return ast.NameList{}, err
	}
	names := make([]string, len(l))
	for i, v := range l {
		name, ok := v.(string)
		if !ok {
			return ast.NameList{}, errorAt(fmt.Sprintf("%s[%d]", o.at(key), i), "expected a string, got %T", v)
		}
		names[i] = name
	}
	return ast.NewNameList(names[0], names[1:]...), nil
}

func (o object) expressions(key string) (ast.ExpressionList, error) {
	l, err := o.list(key)
	if err != nil {
		return ast.ExpressionList{}, err
	}
	exps := make([]ast.Expression, len(l))
	for i, v := range l {
		e, err := asObject(v, fmt.Sprintf("%s[%d]", o.at(key), i))
		if err != nil {
			return ast.ExpressionList{}, err
		}
		if exps[i], err = decodeExpression(e); err != nil {
			return ast.ExpressionList{}, err
		}
	}
	return ast.NewExpressionList(exps[0], exps[1:]...), nil
}

func (o object) optExpressions(key string) (*ast.ExpressionList, error) {
	if !o.has(key) {
		return nil, nil
	}
	l, err := o.expressions(key)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (o object) variables(key string) (ast.VariableList, error) {
	exps, err := o.expressions(key)
	if err != nil {
		return ast.VariableList{}, err
	}
	all := exps.Expressions()
	vars := make([]ast.Variable, len(all))
	for i, exp := range all {
		v, ok := exp.(ast.Variable)
		if !ok {
			return ast.VariableList{}, errorAt(fmt.Sprintf("%s[%d]", o.at(key), i), "expected a variable, got %T", exp)
		}
		vars[i] = v
	}
	return ast.NewVariableList(vars[0], vars[1:]...), nil
}

func decodeBlock(o object) (ast.Block, error) {
	if err := o.expectKind(kindBlock); err != nil {
		return ast.Block{}, err
	}

	var block ast.Block
	if o.has(keyStatements) {
		l, err := o.array(keyStatements)
		if err != nil {
			return ast.Block{}, err
		}
		block.Statements = make([]ast.Statement, len(l))
		for i, v := range l {
			s, err := asObject(v, fmt.Sprintf("%s[%d]", o.at(keyStatements), i))
			if err != nil {
				return ast.Block{}, err
			}
			if block.Statements[i], err = decodeStatement(s); err != nil {
				return ast.Block{}, err
			}
		}
	}

	if o.has(keyReturn) {
		r, err := o.obj(keyReturn)
		if err != nil {
			return ast.Block{}, err
		}
		if err := r.expectKind(kindReturn); err != nil {
			return ast.Block{}, err
		}
		values, err := r.optExpressions(keyValues)
		if err != nil {
			return ast.Block{}, err
		}
		block.Return = &ast.ReturnStatement{Values: values}
	}
	return block, nil
}

func decodeStatement(o object) (ast.Statement, error) {
	kind, err := o.kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case kindSemicolon:
		return ast.Semicolon{}, nil
	case kindBreak:
		return ast.Break{}, nil
	case kindLabel:
		label, err := o.str(keyLabel)
		if err != nil {
			return nil, err
		}
		return ast.LabelStatement{Label: ast.Label(label)}, nil
	case kindGoto:
		label, err := o.str(keyLabel)
		if err != nil {
			return nil, err
		}
		return ast.Goto{Label: ast.Label(label)}, nil
	case kindAssignment:
		targets, err := o.variables(keyTargets)
		if err != nil {
			return nil, err
		}
		values, err := o.expressions(keyValues)
		if err != nil {
			return nil, err
		}
		return ast.Assignment{Targets: targets, Values: values}, nil
	case kindCallStatement:
		exp, err := o.expression(keyCall)
		if err != nil {
			return nil, err
		}
		call, ok := exp.(ast.FunctionCall)
		if !ok {
			return nil, errorAt(o.at(keyCall), "expected a function call, got %T", exp)
		}
		return ast.FunctionCallStatement{Call: call}, nil
	case kindDo:
		block, err := o.block(keyBlock)
		if err != nil {
			return nil, err
		}
		return ast.Do{Block: block}, nil
	case kindWhile:
		cond, err := o.expression(keyCondition)
		if err != nil {
			return nil, err
		}
		block, err := o.block(keyBlock)
		if err != nil {
			return nil, err
		}
		return ast.While{Condition: cond, Block: block}, nil
	case kindRepeat:
		block, err := o.block(keyBlock)
		if err != nil {
			return nil, err
		}
		until, err := o.expression(keyUntil)
		if err != nil {
			return nil, err
		}
		return ast.Repeat{Block: block, Until: until}, nil
	case kindIf:
		return decodeIf(o)
	case kindForStepping:
		var stmt ast.ForStepping
		if stmt.Name, err = o.str(keyName); err != nil {
			return nil, err
		}
		if stmt.From, err = o.expression(keyFrom); err != nil {
			return nil, err
		}
		if stmt.To, err = o.expression(keyTo); err != nil {
			return nil, err
		}
		if stmt.Step, err = o.optExpression(keyStep); err != nil {
			return nil, err
		}
		if stmt.Block, err = o.block(keyBlock); err != nil {
			return nil, err
		}
		return stmt, nil
	case kindForIn:
		var stmt ast.ForIn
		if stmt.Names, err = o.names(keyNames); err != nil {
			return nil, err
		}
		if stmt.In, err = o.expressions(keyIn); err != nil {
			return nil, err
		}
		if stmt.Block, err = o.block(keyBlock); err != nil {
			return nil, err
		}
		return stmt, nil
	case kindFunction:
		n, err := o.obj(keyName)
		if err != nil {
			return nil, err
		}
		name, err := decodeFunctionName(n)
		if err != nil {
			return nil, err
		}
		body, err := o.functionBody(keyBody)
		if err != nil {
			return nil, err
		}
		return ast.Function{Name: name, Body: body}, nil
	case kindLocalFunction:
		name, err := o.str(keyName)
		if err != nil {
			return nil, err
		}
		body, err := o.functionBody(keyBody)
		if err != nil {
			return nil, err
		}
		return ast.LocalFunction{Name: name, Body: body}, nil
	case kindLocal:
		names, err := o.names(keyNames)
		if err != nil {
			return nil, err
		}
		values, err := o.optExpressions(keyValues)
		if err != nil {
			return nil, err
		}
		return ast.LocalVariableBinding{Names: names, Values: values}, nil
	}
	return nil, errorAt(o.path, "unknown statement kind %q", kind)
}

func decodeIf(o object) (ast.Statement, error) {
	var stmt ast.If
	var err error
	if stmt.Condition, err = o.expression(keyCondition); err != nil {
		return nil, err
	}
	if stmt.Then, err = o.block(keyThen); err != nil {
		return nil, err
	}
	if o.has(keyElseIfs) {
		l, err := o.list(keyElseIfs)
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = make([]ast.ElseIf, len(l))
		for i, v := range l {
			e, err := asObject(v, fmt.Sprintf("%s[%d]", o.at(keyElseIfs), i))
			if err != nil {
				return nil, err
			}
			if err := e.expectKind(kindElseIf); err != nil {
				return nil, err
			}
			if stmt.ElseIfs[i].Condition, err = e.expression(keyCondition); err != nil {
				return nil, err
			}
			if stmt.ElseIfs[i].Then, err = e.block(keyThen); err != nil {
				return nil, err
			}
		}
	}
	if stmt.Else, err = o.optBlock(keyElse); err != nil {
		return nil, err
	}
	return stmt, nil
}

func decodeFunctionName(o object) (ast.FunctionName, error) {
	if err := o.expectKind(kindFunctionName); err != nil {
		return ast.FunctionName{}, err
	}
	names, err := o.names(keyNames)
	if err != nil {
		return ast.FunctionName{}, err
	}
	method, err := o.optString(keyMethod)
	if err != nil {
		return ast.FunctionName{}, err
	}
	return ast.FunctionName{
		First:  names.First,
		Rest:   names.Rest,
		Method: method,
	}, nil
}

func (o object) functionBody(key string) (ast.FunctionBody, error) {
	b, err := o.obj(key)
	if err != nil {
		return ast.FunctionBody{}, err
	}
	if err := b.expectKind(kindFunctionBody); err != nil {
		return ast.FunctionBody{}, err
	}

	var body ast.FunctionBody
	if b.has(keyParameters) {
		p, err := b.obj(keyParameters)
		if err != nil {
			return ast.FunctionBody{}, err
		}
		if body.Parameters, err = decodeParameters(p); err != nil {
			return ast.FunctionBody{}, err
		}
	}
	if body.Block, err = b.block(keyBlock); err != nil {
		return ast.FunctionBody{}, err
	}
	return body, nil
}

func decodeParameters(o object) (ast.ParameterList, error) {
	kind, err := o.kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case kindNamedParameters:
		names, err := o.names(keyNames)
		if err != nil {
			return nil, err
		}
		return ast.NamedParameters{Names: names}, nil
	case kindNamedVariadicParameters:
		names, err := o.names(keyNames)
		if err != nil {
			return nil, err
		}
		return ast.NamedVariadicParameters{Names: names}, nil
	case kindVariadicParameters:
		return ast.VariadicParameters{}, nil
	}
	return nil, errorAt(o.path, "unknown parameter list kind %q", kind)
}

func decodeExpression(o object) (ast.Expression, error) {
	kind, err := o.kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case kindNil:
		return ast.Nil{}, nil
	case kindFalse:
		return ast.False{}, nil
	case kindTrue:
		return ast.True{}, nil
	case kindVararg:
		return ast.Vararg{}, nil
	case kindNumber:
		n, err := o.number(keyValue)
		if err != nil {
			return nil, err
		}
		return ast.Number(n), nil
	case kindString:
		s, err := o.text()
		if err != nil {
			return nil, err
		}
		return ast.String(s), nil
	case kindFunctionDefine:
		body, err := o.functionBody(keyBody)
		if err != nil {
			return nil, err
		}
		return ast.FunctionDefine{Body: body}, nil
	case kindTable:
		return decodeTable(o)
	case kindBinary:
		sigil, err := o.str(keyOperator)
		if err != nil {
			return nil, err
		}
		op, ok := ast.LookupBinaryOperation(sigil)
		if !ok {
			return nil, errorAt(o.at(keyOperator), "unknown binary operator %q", sigil)
		}
		left, err := o.expression(keyLeft)
		if err != nil {
			return nil, err
		}
		right, err := o.expression(keyRight)
		if err != nil {
			return nil, err
		}
		return ast.BinaryExpression{Operator: op, Left: left, Right: right}, nil
	case kindUnary:
		sigil, err := o.str(keyOperator)
		if err != nil {
			return nil, err
		}
		op, ok := ast.LookupUnaryOperation(sigil)
		if !ok {
			return nil, errorAt(o.at(keyOperator), "unknown unary operator %q", sigil)
		}
		operand, err := o.expression(keyOperand)
		if err != nil {
			return nil, err
		}
		return ast.UnaryExpression{Operator: op, Operand: operand}, nil
	case kindParenthesis:
		inner, err := o.expression(keyInner)
		if err != nil {
			return nil, err
		}
		return ast.Parenthesis{Inner: inner}, nil
	case kindName:
		name, err := o.str(keyName)
		if err != nil {
			return nil, err
		}
		return ast.Name(name), nil
	case kindArrayAccess:
		from, err := o.prefix(keyFrom)
		if err != nil {
			return nil, err
		}
		key, err := o.expression(keyKey)
		if err != nil {
			return nil, err
		}
		return ast.ArrayAccess{From: from, Key: key}, nil
	case kindDotAccess:
		from, err := o.prefix(keyFrom)
		if err != nil {
			return nil, err
		}
		key, err := o.str(keyKey)
		if err != nil {
			return nil, err
		}
		return ast.DotAccess{From: from, Key: key}, nil
	case kindStaticCall:
		callee, err := o.prefix(keyCallee)
		if err != nil {
			return nil, err
		}
		args, err := o.arguments(keyArguments)
		if err != nil {
			return nil, err
		}
		return ast.StaticCall{Callee: callee, Arguments: args}, nil
	case kindSelfTakingCall:
		receiver, err := o.prefix(keyReceiver)
		if err != nil {
			return nil, err
		}
		method, err := o.str(keyMethod)
		if err != nil {
			return nil, err
		}
		args, err := o.arguments(keyArguments)
		if err != nil {
			return nil, err
		}
		return ast.SelfTakingCall{Receiver: receiver, Method: method, Arguments: args}, nil
	}
	return nil, errorAt(o.path, "unknown expression kind %q", kind)
}

func decodeTable(o object) (ast.TableConstructor, error) {
	if err := o.expectKind(kindTable); err != nil {
		return ast.TableConstructor{}, err
	}
	if !o.has(keyFields) {
		return ast.TableConstructor{}, nil
	}

	l, err := o.list(keyFields)
	if err != nil {
		return ast.TableConstructor{}, err
	}
	fields := make([]ast.Field, len(l))
	for i, v := range l {
		f, err := asObject(v, fmt.Sprintf("%s[%d]", o.at(keyFields), i))
		if err != nil {
			return ast.TableConstructor{}, err
		}
		if fields[i], err = decodeField(f); err != nil {
			return ast.TableConstructor{}, err
		}
	}
	list := ast.NewFieldList(fields[0], fields[1:]...)
	return ast.TableConstructor{Fields: &list}, nil
}

func decodeField(o object) (ast.Field, error) {
	kind, err := o.kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case kindExpressionForName:
		key, err := o.expression(keyKey)
		if err != nil {
			return nil, err
		}
		value, err := o.expression(keyValue)
		if err != nil {
			return nil, err
		}
		return ast.ExpressionForName{Name: key, Value: value}, nil
	case kindEquals:
		name, err := o.str(keyName)
		if err != nil {
			return nil, err
		}
		value, err := o.expression(keyValue)
		if err != nil {
			return nil, err
		}
		return ast.Equals{Name: name, Value: value}, nil
	case kindArrayStyle:
		value, err := o.expression(keyValue)
		if err != nil {
			return nil, err
		}
		return ast.ArrayStyle{Value: value}, nil
	}
	return nil, errorAt(o.path, "unknown field kind %q", kind)
}

func (o object) arguments(key string) (ast.FunctionArguments, error) {
	a, err := o.obj(key)
	if err != nil {
		return nil, err
	}
	kind, err := a.kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case kindParenthesisArguments:
		values, err := a.optExpressions(keyValues)
		if err != nil {
			return nil, err
		}
		return ast.ParenthesisArguments{Values: values}, nil
	case kindTableArguments:
		t, err := a.obj(keyTable)
		if err != nil {
			return nil, err
		}
		table, err := decodeTable(t)
		if err != nil {
			return nil, err
		}
		return ast.TableArguments{Table: table}, nil
	case kindStringArguments:
		s, err := a.text()
		if err != nil {
			return nil, err
		}
		return ast.StringArguments{Value: s}, nil
	}
	return nil, errorAt(a.path, "unknown arguments kind %q", kind)
}
