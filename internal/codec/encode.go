// Package codec converts trees to and from generic documents made of maps,
// slices, strings and numbers, and serializes those documents as JSON or YAML.
//
// Every node is encoded as a map with a "kind" key naming the node type.
// Non-empty lists are encoded as arrays. Optional children that are absent
// are omitted. A block's statements are omitted if they are nil and encoded
// as an empty array if they are empty, so both survive a round trip.
package codec

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/Ameliorate/buildlua/ast"
)

type document = map[string]interface{}

// Encode converts the chunk into a generic document.
func Encode(chunk ast.Chunk) map[string]interface{} {
	doc := document{
		keyKind:  kindChunk,
		keyBlock: encodeBlock(chunk.Block),
	}
	if chunk.Name != "" {
		doc[keyName] = chunk.Name
	}
	return doc
}

func node(kind string) document {
	return document{keyKind: kind}
}

func encodeBlock(b ast.Block) document {
	doc := node(kindBlock)
	if b.Statements != nil {
		stmts := make([]interface{}, len(b.Statements))
		for i, stmt := range b.Statements {
			stmts[i] = encodeStatement(stmt)
		}
		doc[keyStatements] = stmts
	}
	if b.Return != nil {
		ret := node(kindReturn)
		if b.Return.Values != nil {
			ret[keyValues] = encodeExpressionList(*b.Return.Values)
		}
		doc[keyReturn] = ret
	}
	return doc
}

func encodeNameList(l ast.NameList) []interface{} {
	names := l.Names()
	res := make([]interface{}, len(names))
	for i, name := range names {
		res[i] = name
	}
	return res
}

func encodeExpressionList(l ast.ExpressionList) []interface{} {
	exps := l.Expressions()
	res := make([]interface{}, len(exps))
	for i, exp := range exps {
		res[i] = encodeExpression(exp)
	}
	return res
}

func encodeVariableList(l ast.VariableList) []interface{} {
	vars := l.Variables()
	res := make([]interface{}, len(vars))
	for i, v := range vars {
		res[i] = encodeExpression(v)
	}
	return res
}

func encodeStatement(stmt ast.Statement) document {
	switch s := stmt.(type) {
	case ast.Semicolon:
		return node(kindSemicolon)
	case ast.Break:
		return node(kindBreak)
	case ast.LabelStatement:
		doc := node(kindLabel)
		doc[keyLabel] = string(s.Label)
		return doc
	case ast.Goto:
		doc := node(kindGoto)
		doc[keyLabel] = string(s.Label)
		return doc
	case ast.Assignment:
		doc := node(kindAssignment)
		doc[keyTargets] = encodeVariableList(s.Targets)
		doc[keyValues] = encodeExpressionList(s.Values)
		return doc
	case ast.FunctionCallStatement:
		doc := node(kindCallStatement)
		doc[keyCall] = encodeExpression(s.Call)
		return doc
	case ast.Do:
		doc := node(kindDo)
		doc[keyBlock] = encodeBlock(s.Block)
		return doc
	case ast.While:
		doc := node(kindWhile)
		doc[keyCondition] = encodeExpression(s.Condition)
		doc[keyBlock] = encodeBlock(s.Block)
		return doc
	case ast.Repeat:
		doc := node(kindRepeat)
		doc[keyBlock] = encodeBlock(s.Block)
		doc[keyUntil] = encodeExpression(s.Until)
		return doc
	case ast.If:
		doc := node(kindIf)
		doc[keyCondition] = encodeExpression(s.Condition)
		doc[keyThen] = encodeBlock(s.Then)
		if len(s.ElseIfs) > 0 {
			elseIfs := make([]interface{}, len(s.ElseIfs))
			for i, elseIf := range s.ElseIfs {
				e := node(kindElseIf)
				e[keyCondition] = encodeExpression(elseIf.Condition)
				e[keyThen] = encodeBlock(elseIf.Then)
				elseIfs[i] = e
			}
			doc[keyElseIfs] = elseIfs
		}
		if s.Else != nil {
			doc[keyElse] = encodeBlock(*s.Else)
		}
		return doc
	case ast.ForStepping:
		doc := node(kindForStepping)
		doc[keyName] = s.Name
		doc[keyFrom] = encodeExpression(s.From)
		doc[keyTo] = encodeExpression(s.To)
		if s.Step != nil {
			doc[keyStep] = encodeExpression(s.Step)
		}
		doc[keyBlock] = encodeBlock(s.Block)
		return doc
	case ast.ForIn:
		doc := node(kindForIn)
		doc[keyNames] = encodeNameList(s.Names)
		doc[keyIn] = encodeExpressionList(s.In)
		doc[keyBlock] = encodeBlock(s.Block)
		return doc
	case ast.Function:
		name := node(kindFunctionName)
		names := make([]interface{}, 0, len(s.Name.Rest)+1)
		for _, n := range s.Name.Names() {
			names = append(names, n)
		}
		name[keyNames] = names
		if s.Name.IsMethod() {
			name[keyMethod] = s.Name.Method
		}
		doc := node(kindFunction)
		doc[keyName] = name
		doc[keyBody] = encodeFunctionBody(s.Body)
		return doc
	case ast.LocalFunction:
		doc := node(kindLocalFunction)
		doc[keyName] = s.Name
		doc[keyBody] = encodeFunctionBody(s.Body)
		return doc
	case ast.LocalVariableBinding:
		doc := node(kindLocal)
		doc[keyNames] = encodeNameList(s.Names)
		if s.Values != nil {
			doc[keyValues] = encodeExpressionList(*s.Values)
		}
		return doc
	}
	panic(fmt.Sprintf("unknown statement type %T", stmt))
}

func encodeFunctionBody(b ast.FunctionBody) document {
	doc := node(kindFunctionBody)
	if b.Parameters != nil {
		doc[keyParameters] = encodeParameters(b.Parameters)
	}
	doc[keyBlock] = encodeBlock(b.Block)
	return doc
}

func encodeParameters(params ast.ParameterList) document {
	switch p := params.(type) {
	case ast.NamedParameters:
		doc := node(kindNamedParameters)
		doc[keyNames] = encodeNameList(p.Names)
		return doc
	case ast.NamedVariadicParameters:
		doc := node(kindNamedVariadicParameters)
		doc[keyNames] = encodeNameList(p.Names)
		return doc
	case ast.VariadicParameters:
		return node(kindVariadicParameters)
	}
	panic(fmt.Sprintf("unknown parameter list type %T", params))
}

// encodeString stores s as plain text, or base64 encoded if it is not valid
// UTF-8, since Lua strings are arbitrary bytes.
func encodeString(doc document, s string) {
	if utf8.ValidString(s) {
		doc[keyValue] = s
		return
	}
	doc[keyBytes] = base64.StdEncoding.EncodeToString([]byte(s))
}

// encodeNumber stores non-finite numbers as strings, as neither JSON nor
// every YAML consumer can represent them. So is negative zero, which YAML
// decodes as the integer 0.
func encodeNumber(n float64) interface{} {
	if math.IsInf(n, 0) || math.IsNaN(n) || (n == 0 && math.Signbit(n)) {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return n
}

func encodeExpression(exp ast.Expression) document {
	switch e := exp.(type) {
	case ast.Nil:
		return node(kindNil)
	case ast.False:
		return node(kindFalse)
	case ast.True:
		return node(kindTrue)
	case ast.Vararg:
		return node(kindVararg)
	case ast.Number:
		doc := node(kindNumber)
		doc[keyValue] = encodeNumber(float64(e))
		return doc
	case ast.String:
		doc := node(kindString)
		encodeString(doc, string(e))
		return doc
	case ast.FunctionDefine:
		doc := node(kindFunctionDefine)
		doc[keyBody] = encodeFunctionBody(e.Body)
		return doc
	case ast.TableConstructor:
		return encodeTable(e)
	case ast.BinaryExpression:
		doc := node(kindBinary)
		doc[keyOperator] = e.Operator.String()
		doc[keyLeft] = encodeExpression(e.Left)
		doc[keyRight] = encodeExpression(e.Right)
		return doc
	case ast.UnaryExpression:
		doc := node(kindUnary)
		doc[keyOperator] = e.Operator.String()
		doc[keyOperand] = encodeExpression(e.Operand)
		return doc
	case ast.Parenthesis:
		doc := node(kindParenthesis)
		doc[keyInner] = encodeExpression(e.Inner)
		return doc
	case ast.Name:
		doc := node(kindName)
		doc[keyName] = string(e)
		return doc
	case ast.ArrayAccess:
		doc := node(kindArrayAccess)
		doc[keyFrom] = encodeExpression(e.From)
		doc[keyKey] = encodeExpression(e.Key)
		return doc
	case ast.DotAccess:
		doc := node(kindDotAccess)
		doc[keyFrom] = encodeExpression(e.From)
		doc[keyKey] = e.Key
		return doc
	case ast.StaticCall:
		doc := node(kindStaticCall)
		doc[keyCallee] = encodeExpression(e.Callee)
		doc[keyArguments] = encodeArguments(e.Arguments)
		return doc
	case ast.SelfTakingCall:
		doc := node(kindSelfTakingCall)
		doc[keyReceiver] = encodeExpression(e.Receiver)
		doc[keyMethod] = e.Method
		doc[keyArguments] = encodeArguments(e.Arguments)
		return doc
	}
	panic(fmt.Sprintf("unknown expression type %T", exp))
}

func encodeTable(t ast.TableConstructor) document {
	doc := node(kindTable)
	if t.Fields == nil {
		return doc
	}
	fields := t.Fields.Fields()
	res := make([]interface{}, len(fields))
	for i, field := range fields {
		res[i] = encodeField(field)
	}
	doc[keyFields] = res
	return doc
}

func encodeField(field ast.Field) document {
	switch f := field.(type) {
	case ast.ExpressionForName:
		doc := node(kindExpressionForName)
		doc[keyKey] = encodeExpression(f.Name)
		doc[keyValue] = encodeExpression(f.Value)
		return doc
	case ast.Equals:
		doc := node(kindEquals)
		doc[keyName] = f.Name
		doc[keyValue] = encodeExpression(f.Value)
		return doc
	case ast.ArrayStyle:
		doc := node(kindArrayStyle)
		doc[keyValue] = encodeExpression(f.Value)
		return doc
	}
	panic(fmt.Sprintf("unknown field type %T", field))
}

func encodeArguments(args ast.FunctionArguments) document {
	switch a := args.(type) {
	case ast.ParenthesisArguments:
		doc := node(kindParenthesisArguments)
		if a.Values != nil {
			doc[keyValues] = encodeExpressionList(*a.Values)
		}
		return doc
	case ast.TableArguments:
		doc := node(kindTableArguments)
		doc[keyTable] = encodeTable(a.Table)
		return doc
	case ast.StringArguments:
		doc := node(kindStringArguments)
		encodeString(doc, a.Value)
		return doc
	}
	panic(fmt.Sprintf("unknown arguments type %T", args))
}
