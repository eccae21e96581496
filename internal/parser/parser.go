package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Ameliorate/buildlua/ast"
	"github.com/Ameliorate/buildlua/internal/token"
)

// UnknownInputName is the chunk name used if the input does not have a name.
const UnknownInputName = "<unknown input>"

// Parser describes a parser that can parse input into a Lua ast.Chunk.
type Parser interface {
	Parse() (ast.Chunk, bool)
	Errors() []error
}

type namer interface {
	Name() string
}

type parser struct {
	scanner

	input  io.Reader
	errors []error

	tkstash []token.Token
	eof     bool
}

// New creates a new single-use Lua-parser.
func New(input io.Reader) (Parser, error) {
	sc, err := newInMemoryScanner(input)
	if err != nil {
		return nil, fmt.Errorf("in memory scanner: %w", err)
	}
	return &parser{
		scanner: sc,
		input:   input,
	}, nil
}

// Parse parses the input of this parser. If the parsing was successful, the chunk
// and true will be returned. Otherwise, an empty chunk together with false will
// be returned. If this method returns false, obtain the parse errors with
// Parser.Errors.
func (p *parser) Parse() (ast.Chunk, bool) {
	block, ok := p.block()
	if ok {
		if next, more := p.next(); more {
			p.collectError(p.unexpected("<EOF>", next))
		}
	}
	if !ok || len(p.errors) > 0 {
		return ast.Chunk{}, false
	}

	name := UnknownInputName
	if n, ok := p.input.(namer); ok {
		name = filepath.Base(n.Name())
	}

	return ast.Chunk{
		Name:  name,
		Block: block,
	}, true
}

// Errors returns all the parse errors that may have occurred during the parsing.
func (p *parser) Errors() []error {
	return p.errors
}

func (p *parser) collectError(err error) {
	if err != nil {
		p.errors = append(p.errors, err)
	}
}

func (p *parser) stash(tokens ...token.Token) {
	p.tkstash = append(tokens, p.tkstash...)
}

func (p *parser) next() (token.Token, bool) {
	if len(p.tkstash) > 0 {
		tk := p.tkstash[0]
		p.tkstash = p.tkstash[1:]
		return tk, true
	}
	if p.eof {
		return nil, false
	}

	next, ok := p.scanner.next()
	if next != nil && next.Is(token.Error) {
		p.collectError(fmt.Errorf("error at %s: %s", next.Pos(), next.Value()))
	}
	if !ok {
		p.eof = true
		return nil, false
	}
	if next == nil {
		p.collectError(fmt.Errorf("could not compute token"))
		p.eof = true
		return nil, false
	}
	return next, true
}

// peek returns the next token without consuming it.
func (p *parser) peek() (token.Token, bool) {
	next, ok := p.next()
	if ok {
		p.stash(next)
	}
	return next, ok
}

// accept consumes the next token if it is of the given type.
func (p *parser) accept(typ token.Type) bool {
	next, ok := p.next()
	if !ok {
		return false
	}
	if !next.Is(typ) {
		p.stash(next)
		return false
	}
	return true
}

// requireToken obtains the next token (using next()) and checks its type
// against the given type. If they are equal, true is returned.
// Otherwise, an error is collected and false is returned.
//
// THE OFFENDING TOKEN IS NOT STASHED.
func (p *parser) requireToken(typ token.Type) bool {
	_, ok := p.expect(typ)
	return ok
}

// expect works like requireToken, but also returns the matched token.
func (p *parser) expect(typ token.Type) (token.Token, bool) {
	next, ok := p.next()
	if !ok {
		p.collectError(ErrUnexpectedEof(typ))
		return nil, false
	}
	if !next.Is(typ) {
		p.collectError(p.unexpected(typ, next))
		return nil, false
	}
	return next, true
}

func (p *parser) name() (string, bool) {
	next, ok := p.expect(token.Name)
	if !ok {
		return "", false
	}
	return next.Value(), true
}

func isBlockEnd(tk token.Token) bool {
	return tk.Is(token.End) || tk.Is(token.Else) || tk.Is(token.Elseif) || tk.Is(token.Until)
}

func (p *parser) block() (ast.Block, bool) {
	var block ast.Block
	for {
		next, ok := p.peek()
		if !ok || isBlockEnd(next) {
			break
		}
		if next.Is(token.Return) {
			ret, ok := p.retstat()
			if !ok {
				return ast.Block{}, false
			}
			block.Return = &ret
			break
		}
		stmt, ok := p.stmt()
		if !ok {
			return ast.Block{}, false
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block, true
}

// blockEnd parses a block that is terminated by the given token.
func (p *parser) blockEnd(terminator token.Type) (ast.Block, bool) {
	block, ok := p.block()
	if !ok || !p.requireToken(terminator) {
		return ast.Block{}, false
	}
	return block, true
}

func (p *parser) retstat() (ast.ReturnStatement, bool) {
	if !p.requireToken(token.Return) {
		return ast.ReturnStatement{}, false
	}

	var ret ast.ReturnStatement
	next, ok := p.peek()
	if ok && !isBlockEnd(next) && !next.Is(token.SemiColon) {
		values, ok := p.explist()
		if !ok {
			return ast.ReturnStatement{}, false
		}
		ret.Values = &values
	}
	p.accept(token.SemiColon)
	return ret, true
}

func (p *parser) stmt() (ast.Statement, bool) {
	tk, ok := p.next()
	if !ok {
		p.collectError(ErrUnexpectedEof("statement"))
		return nil, false
	}

	switch {
	case tk.Is(token.SemiColon):
		return ast.Semicolon{}, true
	case tk.Is(token.DoubleColon):
		name, ok := p.name()
		if !ok || !p.requireToken(token.DoubleColon) {
			return nil, false
		}
		return ast.LabelStatement{Label: ast.Label(name)}, true
	case tk.Is(token.Break):
		return ast.Break{}, true
	case tk.Is(token.Goto):
		name, ok := p.name()
		if !ok {
			return nil, false
		}
		return ast.Goto{Label: ast.Label(name)}, true
	case tk.Is(token.Do):
		block, ok := p.blockEnd(token.End)
		if !ok {
			return nil, false
		}
		return ast.Do{Block: block}, true
	case tk.Is(token.While):
		return p.while()
	case tk.Is(token.Repeat):
		return p.repeat()
	case tk.Is(token.If):
		return p.if_()
	case tk.Is(token.For):
		return p.for_()
	case tk.Is(token.Function):
		return p.function()
	case tk.Is(token.Local):
		if p.accept(token.Function) {
			return p.localFunction()
		}
		return p.localVariables()
	}

	p.stash(tk)
	return p.exprstat()
}

func (p *parser) while() (ast.Statement, bool) {
	cond, ok := p.exp()
	if !ok || !p.requireToken(token.Do) {
		return nil, false
	}
	block, ok := p.blockEnd(token.End)
	if !ok {
		return nil, false
	}
	return ast.While{
		Condition: cond,
		Block:     block,
	}, true
}

func (p *parser) repeat() (ast.Statement, bool) {
	block, ok := p.blockEnd(token.Until)
	if !ok {
		return nil, false
	}
	until, ok := p.exp()
	if !ok {
		return nil, false
	}
	return ast.Repeat{
		Block: block,
		Until: until,
	}, true
}

func (p *parser) if_() (ast.Statement, bool) {
	cond, ok := p.exp()
	if !ok || !p.requireToken(token.Then) {
		return nil, false
	}
	then, ok := p.block()
	if !ok {
		return nil, false
	}
	stmt := ast.If{
		Condition: cond,
		Then:      then,
	}

	for p.accept(token.Elseif) {
		cond, ok := p.exp()
		if !ok || !p.requireToken(token.Then) {
			return nil, false
		}
		then, ok := p.block()
		if !ok {
			return nil, false
		}
		stmt.ElseIfs = append(stmt.ElseIfs, ast.ElseIf{
			Condition: cond,
			Then:      then,
		})
	}

	if p.accept(token.Else) {
		elseBlock, ok := p.block()
		if !ok {
			return nil, false
		}
		stmt.Else = &elseBlock
	}

	if !p.requireToken(token.End) {
		return nil, false
	}
	return stmt, true
}

func (p *parser) for_() (ast.Statement, bool) {
	first, ok := p.name()
	if !ok {
		return nil, false
	}

	if p.accept(token.Assign) {
		stmt := ast.ForStepping{Name: first}
		if stmt.From, ok = p.exp(); !ok {
			return nil, false
		}
		if !p.requireToken(token.Comma) {
			return nil, false
		}
		if stmt.To, ok = p.exp(); !ok {
			return nil, false
		}
		if p.accept(token.Comma) {
			if stmt.Step, ok = p.exp(); !ok {
				return nil, false
			}
		}
		if !p.requireToken(token.Do) {
			return nil, false
		}
		if stmt.Block, ok = p.blockEnd(token.End); !ok {
			return nil, false
		}
		return stmt, true
	}

	names, ok := p.namelistAfter(first)
	if !ok || !p.requireToken(token.In) {
		return nil, false
	}
	in, ok := p.explist()
	if !ok || !p.requireToken(token.Do) {
		return nil, false
	}
	block, ok := p.blockEnd(token.End)
	if !ok {
		return nil, false
	}
	return ast.ForIn{
		Names: names,
		In:    in,
		Block: block,
	}, true
}

func (p *parser) function() (ast.Statement, bool) {
	name, ok := p.funcname()
	if !ok {
		return nil, false
	}
	body, ok := p.funcbody()
	if !ok {
		return nil, false
	}
	return ast.Function{
		Name: name,
		Body: body,
	}, true
}

func (p *parser) localFunction() (ast.Statement, bool) {
	name, ok := p.name()
	if !ok {
		return nil, false
	}
	body, ok := p.funcbody()
	if !ok {
		return nil, false
	}
	return ast.LocalFunction{
		Name: name,
		Body: body,
	}, true
}

func (p *parser) localVariables() (ast.Statement, bool) {
	first, ok := p.name()
	if !ok {
		return nil, false
	}
	names, ok := p.namelistAfter(first)
	if !ok {
		return nil, false
	}
	stmt := ast.LocalVariableBinding{Names: names}
	if p.accept(token.Assign) {
		values, ok := p.explist()
		if !ok {
			return nil, false
		}
		stmt.Values = &values
	}
	return stmt, true
}

// exprstat parses either an assignment or a function call statement. Both
// start with a suffixed expression.
func (p *parser) exprstat() (ast.Statement, bool) {
	start, _ := p.peek()
	exp, ok := p.suffixedexp()
	if !ok {
		return nil, false
	}

	next, ok := p.peek()
	if ok && (next.Is(token.Assign) || next.Is(token.Comma)) {
		first, isVar := exp.(ast.Variable)
		if !isVar {
			p.collectError(p.unexpected("assignable expression", start))
			return nil, false
		}
		targets := ast.VariableList{First: first}
		for p.accept(token.Comma) {
			start, _ := p.peek()
			exp, ok := p.suffixedexp()
			if !ok {
				return nil, false
			}
			v, isVar := exp.(ast.Variable)
			if !isVar {
				p.collectError(p.unexpected("assignable expression", start))
				return nil, false
			}
			targets.Rest = append(targets.Rest, v)
		}
		if !p.requireToken(token.Assign) {
			return nil, false
		}
		values, ok := p.explist()
		if !ok {
			return nil, false
		}
		return ast.Assignment{
			Targets: targets,
			Values:  values,
		}, true
	}

	call, isCall := exp.(ast.FunctionCall)
	if !isCall {
		p.collectError(p.unexpected("function call or assignment", start))
		return nil, false
	}
	return ast.FunctionCallStatement{Call: call}, true
}

func (p *parser) funcname() (ast.FunctionName, bool) {
	first, ok := p.name()
	if !ok {
		return ast.FunctionName{}, false
	}
	name := ast.FunctionName{First: first}
	for p.accept(token.Dot) {
		next, ok := p.name()
		if !ok {
			return ast.FunctionName{}, false
		}
		name.Rest = append(name.Rest, next)
	}
	if p.accept(token.Colon) {
		if name.Method, ok = p.name(); !ok {
			return ast.FunctionName{}, false
		}
	}
	return name, true
}

func (p *parser) funcbody() (ast.FunctionBody, bool) {
	if !p.requireToken(token.ParLeft) {
		return ast.FunctionBody{}, false
	}
	params, ok := p.parlist()
	if !ok || !p.requireToken(token.ParRight) {
		return ast.FunctionBody{}, false
	}
	block, ok := p.blockEnd(token.End)
	if !ok {
		return ast.FunctionBody{}, false
	}
	return ast.FunctionBody{
		Parameters: params,
		Block:      block,
	}, true
}

// parlist parses the parameters of a function, but not the enclosing
// parentheses. If there are no parameters, nil is returned.
func (p *parser) parlist() (ast.ParameterList, bool) {
	next, ok := p.peek()
	if !ok {
		p.collectError(ErrUnexpectedEof(token.ParRight))
		return nil, false
	}
	switch {
	case next.Is(token.ParRight):
		return nil, true
	case next.Is(token.Ellipsis):
		p.accept(token.Ellipsis)
		return ast.VariadicParameters{}, true
	}

	first, ok := p.name()
	if !ok {
		return nil, false
	}
	names := ast.NameList{First: first}
	for p.accept(token.Comma) {
		if p.accept(token.Ellipsis) {
			return ast.NamedVariadicParameters{Names: names}, true
		}
		name, ok := p.name()
		if !ok {
			return nil, false
		}
		names.Rest = append(names.Rest, name)
	}
	return ast.NamedParameters{Names: names}, true
}

// namelistAfter parses the remainder of a name list whose first name has
// already been consumed.
func (p *parser) namelistAfter(first string) (ast.NameList, bool) {
	names := ast.NameList{First: first}
	for p.accept(token.Comma) {
		name, ok := p.name()
		if !ok {
			return ast.NameList{}, false
		}
		names.Rest = append(names.Rest, name)
	}
	return names, true
}

func (p *parser) explist() (ast.ExpressionList, bool) {
	first, ok := p.exp()
	if !ok {
		return ast.ExpressionList{}, false
	}
	list := ast.ExpressionList{First: first}
	for p.accept(token.Comma) {
		exp, ok := p.exp()
		if !ok {
			return ast.ExpressionList{}, false
		}
		list.Rest = append(list.Rest, exp)
	}
	return list, true
}

func (p *parser) exp() (ast.Expression, bool) {
	return p.subexp(precedenceNone)
}

// subexp parses an expression whose binary operators all bind tighter than
// limit.
func (p *parser) subexp(limit precedence) (ast.Expression, bool) {
	next, ok := p.next()
	if !ok {
		p.collectError(ErrUnexpectedEof("expression"))
		return nil, false
	}

	var left ast.Expression
	if next.Is(token.UnaryOperator) {
		op, known := ast.LookupUnaryOperation(next.Value())
		if !known {
			p.collectError(p.unexpected("unary operator", next))
			return nil, false
		}
		operand, ok := p.subexp(unaryPrecedence)
		if !ok {
			return nil, false
		}
		left = ast.UnaryExpression{
			Operator: op,
			Operand:  operand,
		}
	} else {
		p.stash(next)
		if left, ok = p.simpleexp(); !ok {
			return nil, false
		}
	}

	for {
		next, ok := p.next()
		if !ok {
			break
		}
		if !next.Is(token.BinaryOperator) {
			p.stash(next)
			break
		}
		op, known := ast.LookupBinaryOperation(next.Value())
		if !known {
			p.collectError(p.unexpected("binary operator", next))
			return nil, false
		}
		prec := precedenceOf(op)
		if prec <= limit {
			p.stash(next)
			break
		}

		rightLimit := prec
		if isRightAssociative(op) {
			rightLimit = prec - 1
		}
		right, ok := p.subexp(rightLimit)
		if !ok {
			return nil, false
		}
		left = ast.BinaryExpression{
			Operator: op,
			Left:     left,
			Right:    right,
		}
	}
	return left, true
}

func (p *parser) simpleexp() (ast.Expression, bool) {
	next, ok := p.next()
	if !ok {
		p.collectError(ErrUnexpectedEof("expression"))
		return nil, false
	}

	switch {
	case next.Is(token.Nil):
		return ast.Nil{}, true
	case next.Is(token.True):
		return ast.True{}, true
	case next.Is(token.False):
		return ast.False{}, true
	case next.Is(token.Ellipsis):
		return ast.Vararg{}, true
	case next.Is(token.Number):
		n, err := parseNumber(next.Value())
		if err != nil {
			p.collectError(fmt.Errorf("error at %s: %w", next.Pos(), err))
			return nil, false
		}
		return ast.Number(n), true
	case next.Is(token.String):
		return ast.String(next.Value()), true
	case next.Is(token.Function):
		body, ok := p.funcbody()
		if !ok {
			return nil, false
		}
		return ast.FunctionDefine{Body: body}, true
	case next.Is(token.CurlyLeft):
		p.stash(next)
		table, ok := p.tableconstructor()
		if !ok {
			return nil, false
		}
		return table, true
	}

	p.stash(next)
	return p.suffixedexp()
}

func (p *parser) primaryexp() (ast.PrefixExpression, bool) {
	next, ok := p.next()
	if !ok {
		p.collectError(ErrUnexpectedEof("expression"))
		return nil, false
	}

	switch {
	case next.Is(token.Name):
		return ast.Name(next.Value()), true
	case next.Is(token.ParLeft):
		inner, ok := p.exp()
		if !ok || !p.requireToken(token.ParRight) {
			return nil, false
		}
		return ast.Parenthesis{Inner: inner}, true
	}

	p.collectError(p.unexpected("expression", next))
	return nil, false
}

// suffixedexp parses a primary expression followed by any number of field
// accesses, index operations and calls.
func (p *parser) suffixedexp() (ast.PrefixExpression, bool) {
	exp, ok := p.primaryexp()
	if !ok {
		return nil, false
	}

	for {
		next, ok := p.next()
		if !ok {
			return exp, true
		}

		switch {
		case next.Is(token.Dot):
			key, ok := p.name()
			if !ok {
				return nil, false
			}
			exp = ast.DotAccess{From: exp, Key: key}
		case next.Is(token.BracketLeft):
			key, ok := p.exp()
			if !ok || !p.requireToken(token.BracketRight) {
				return nil, false
			}
			exp = ast.ArrayAccess{From: exp, Key: key}
		case next.Is(token.Colon):
			method, ok := p.name()
			if !ok {
				return nil, false
			}
			args, ok := p.args()
			if !ok {
				return nil, false
			}
			exp = ast.SelfTakingCall{
				Receiver:  exp,
				Method:    method,
				Arguments: args,
			}
		case next.Is(token.ParLeft), next.Is(token.CurlyLeft), next.Is(token.String):
			p.stash(next)
			args, ok := p.args()
			if !ok {
				return nil, false
			}
			exp = ast.StaticCall{
				Callee:    exp,
				Arguments: args,
			}
		default:
			p.stash(next)
			return exp, true
		}
	}
}

func (p *parser) args() (ast.FunctionArguments, bool) {
	next, ok := p.next()
	if !ok {
		p.collectError(ErrUnexpectedEof("function arguments"))
		return nil, false
	}

	switch {
	case next.Is(token.ParLeft):
		if p.accept(token.ParRight) {
			return ast.ParenthesisArguments{}, true
		}
		values, ok := p.explist()
		if !ok || !p.requireToken(token.ParRight) {
			return nil, false
		}
		return ast.ParenthesisArguments{Values: &values}, true
	case next.Is(token.CurlyLeft):
		p.stash(next)
		table, ok := p.tableconstructor()
		if !ok {
			return nil, false
		}
		return ast.TableArguments{Table: table}, true
	case next.Is(token.String):
		return ast.StringArguments{Value: next.Value()}, true
	}

	p.collectError(p.unexpected("function arguments", next))
	return nil, false
}

func (p *parser) tableconstructor() (ast.TableConstructor, bool) {
	if !p.requireToken(token.CurlyLeft) {
		return ast.TableConstructor{}, false
	}
	if p.accept(token.CurlyRight) {
		return ast.TableConstructor{}, true
	}

	var fields []ast.Field
	for {
		field, ok := p.field()
		if !ok {
			return ast.TableConstructor{}, false
		}
		fields = append(fields, field)

		if p.accept(token.Comma) || p.accept(token.SemiColon) {
			if p.accept(token.CurlyRight) {
				break
			}
			continue
		}
		if !p.requireToken(token.CurlyRight) {
			return ast.TableConstructor{}, false
		}
		break
	}

	list := ast.NewFieldList(fields[0], fields[1:]...)
	return ast.TableConstructor{Fields: &list}, true
}

func (p *parser) field() (ast.Field, bool) {
	next, ok := p.next()
	if !ok {
		p.collectError(ErrUnexpectedEof("table field"))
		return nil, false
	}

	switch {
	case next.Is(token.BracketLeft):
		key, ok := p.exp()
		if !ok || !p.requireToken(token.BracketRight) || !p.requireToken(token.Assign) {
			return nil, false
		}
		value, ok := p.exp()
		if !ok {
			return nil, false
		}
		return ast.ExpressionForName{Name: key, Value: value}, true
	case next.Is(token.Name):
		if p.accept(token.Assign) {
			value, ok := p.exp()
			if !ok {
				return nil, false
			}
			return ast.Equals{Name: next.Value(), Value: value}, true
		}
	}

	p.stash(next)
	value, ok := p.exp()
	if !ok {
		return nil, false
	}
	return ast.ArrayStyle{Value: value}, true
}

// parseNumber converts the text of a number token into its value. Hexadecimal
// numbers may have a fraction and a binary exponent. Numbers that are too
// large to be represented evaluate to infinity.
func parseNumber(text string) (float64, error) {
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "0x") {
		if !strings.Contains(lower, "p") {
			lower += "p0"
		}
		text = lower
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return n, nil
		}
		return 0, fmt.Errorf("malformed number %q", text)
	}
	return n, nil
}
