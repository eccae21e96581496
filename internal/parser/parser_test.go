package parser

import (
	"math"
	"os"
	"path/filepath"

	"github.com/Ameliorate/buildlua/ast"
)

func call(callee ast.PrefixExpression, args ...ast.Expression) ast.StaticCall {
	arguments := ast.ParenthesisArguments{}
	if len(args) > 0 {
		values := ast.NewExpressionList(args[0], args[1:]...)
		arguments.Values = &values
	}
	return ast.StaticCall{
		Callee:    callee,
		Arguments: arguments,
	}
}

func list(first ast.Expression, rest ...ast.Expression) *ast.ExpressionList {
	l := ast.NewExpressionList(first, rest...)
	return &l
}

func bin(op ast.BinaryOperation, left, right ast.Expression) ast.BinaryExpression {
	return ast.BinaryExpression{
		Operator: op,
		Left:     left,
		Right:    right,
	}
}

func (suite *ParserSuite) TestEmpty() {
	suite.assertChunkString(``, ast.Chunk{Name: UnknownInputName})
	suite.assertChunkString("-- only a comment\n", ast.Chunk{Name: UnknownInputName})
}

func (suite *ParserSuite) TestIfWithCall() {
	suite.assertStatementsString(`if a then b() end`,
		ast.If{
			Condition: ast.Name("a"),
			Then: ast.NewBlock(ast.FunctionCallStatement{
				Call: call(ast.Name("b")),
			}),
		},
	)
}

func (suite *ParserSuite) TestLocalVariableBinding() {
	suite.assertStatementsString(`local x, y = 1, 2`,
		ast.LocalVariableBinding{
			Names:  ast.NewNameList("x", "y"),
			Values: list(ast.Number(1), ast.Number(2)),
		},
	)
	suite.assertStatementsString(`local z`,
		ast.LocalVariableBinding{
			Names: ast.NewNameList("z"),
		},
	)
}

func (suite *ParserSuite) TestSelfTakingCall() {
	suite.assertStatementsString(`foo:bar("x")`,
		ast.FunctionCallStatement{
			Call: ast.SelfTakingCall{
				Receiver:  ast.Name("foo"),
				Method:    "bar",
				Arguments: ast.ParenthesisArguments{Values: list(ast.String("x"))},
			},
		},
	)
	suite.assertStatementsString(`io.stderr:write"foobar"`,
		ast.FunctionCallStatement{
			Call: ast.SelfTakingCall{
				Receiver:  ast.DotAccess{From: ast.Name("io"), Key: "stderr"},
				Method:    "write",
				Arguments: ast.StringArguments{Value: "foobar"},
			},
		},
	)
}

func (suite *ParserSuite) TestForStepping() {
	suite.assertStatementsString(`for i = 1, 10 do end`,
		ast.ForStepping{
			Name: "i",
			From: ast.Number(1),
			To:   ast.Number(10),
		},
	)
	suite.assertStatementsString(`for i = 10, 1, -1 do break end`,
		ast.ForStepping{
			Name:  "i",
			From:  ast.Number(10),
			To:    ast.Number(1),
			Step:  ast.UnaryExpression{Operator: ast.Negate, Operand: ast.Number(1)},
			Block: ast.NewBlock(ast.Break{}),
		},
	)
}

func (suite *ParserSuite) TestTableConstructor() {
	fields := ast.NewFieldList(
		ast.ArrayStyle{Value: ast.Number(1)},
		ast.Equals{Name: "x", Value: ast.Number(2)},
		ast.ExpressionForName{Name: ast.Name("k"), Value: ast.Number(3)},
	)
	suite.assertStatementsString(`t = {1, x = 2, [k] = 3}`,
		ast.Assignment{
			Targets: ast.NewVariableList(ast.Name("t")),
			Values:  ast.NewExpressionList(ast.TableConstructor{Fields: &fields}),
		},
	)

	suite.assertExpressionString(`{}`, ast.TableConstructor{})

	trailing := ast.NewFieldList(
		ast.ArrayStyle{Value: ast.Name("a")},
		ast.ArrayStyle{Value: bin(ast.Equal, ast.Name("b"), ast.Name("c"))},
	)
	suite.assertExpressionString(`{a; b == c,}`, ast.TableConstructor{Fields: &trailing})
}

func (suite *ParserSuite) TestElseIfChain() {
	elseBlock := ast.NewBlock(ast.Break{})
	suite.assertStatementsString(`
if a then
elseif b then
	x = 1
elseif c then
else
	break
end`,
		ast.If{
			Condition: ast.Name("a"),
			ElseIfs: []ast.ElseIf{
				{
					Condition: ast.Name("b"),
					Then: ast.NewBlock(ast.Assignment{
						Targets: ast.NewVariableList(ast.Name("x")),
						Values:  ast.NewExpressionList(ast.Number(1)),
					}),
				},
				{Condition: ast.Name("c")},
			},
			Else: &elseBlock,
		},
	)
}

func (suite *ParserSuite) TestLoops() {
	suite.assertStatementsString(`
while true do end
repeat local x until x
for k, v in pairs(t) do end
do ; end`,
		ast.While{Condition: ast.True{}},
		ast.Repeat{
			Block: ast.NewBlock(ast.LocalVariableBinding{Names: ast.NewNameList("x")}),
			Until: ast.Name("x"),
		},
		ast.ForIn{
			Names: ast.NewNameList("k", "v"),
			In:    ast.NewExpressionList(call(ast.Name("pairs"), ast.Name("t"))),
		},
		ast.Do{Block: ast.NewBlock(ast.Semicolon{})},
	)
}

func (suite *ParserSuite) TestLabelsAndGoto() {
	suite.assertStatementsString(`::top:: goto top`,
		ast.LabelStatement{Label: "top"},
		ast.Goto{Label: "top"},
	)
}

func (suite *ParserSuite) TestFunctions() {
	suite.assertStatementsString(`
function a.b.c:d(x, ...) end
function f() end
local function g(...) return ... end`,
		ast.Function{
			Name: ast.FunctionName{First: "a", Rest: []string{"b", "c"}, Method: "d"},
			Body: ast.FunctionBody{
				Parameters: ast.NamedVariadicParameters{Names: ast.NewNameList("x")},
			},
		},
		ast.Function{
			Name: ast.FunctionName{First: "f"},
		},
		ast.LocalFunction{
			Name: "g",
			Body: ast.FunctionBody{
				Parameters: ast.VariadicParameters{},
				Block: ast.Block{
					Return: &ast.ReturnStatement{Values: list(ast.Vararg{})},
				},
			},
		},
	)

	suite.assertExpressionString(`function(a, b) end`, ast.FunctionDefine{
		Body: ast.FunctionBody{
			Parameters: ast.NamedParameters{Names: ast.NewNameList("a", "b")},
		},
	})
}

func (suite *ParserSuite) TestMultipleAssignment() {
	suite.assertStatementsString(`a.b, c[1], d = 1, 2`,
		ast.Assignment{
			Targets: ast.NewVariableList(
				ast.DotAccess{From: ast.Name("a"), Key: "b"},
				ast.ArrayAccess{From: ast.Name("c"), Key: ast.Number(1)},
				ast.Name("d"),
			),
			Values: ast.NewExpressionList(ast.Number(1), ast.Number(2)),
		},
	)
}

func (suite *ParserSuite) TestCallArguments() {
	suite.assertStatementsString(`f{} g"s" h(1)(2)`,
		ast.FunctionCallStatement{Call: ast.StaticCall{
			Callee:    ast.Name("f"),
			Arguments: ast.TableArguments{},
		}},
		ast.FunctionCallStatement{Call: ast.StaticCall{
			Callee:    ast.Name("g"),
			Arguments: ast.StringArguments{Value: "s"},
		}},
		ast.FunctionCallStatement{Call: call(call(ast.Name("h"), ast.Number(1)), ast.Number(2))},
	)
}

func (suite *ParserSuite) TestReturn() {
	suite.assertChunkString(`return`, ast.Chunk{
		Name:  UnknownInputName,
		Block: ast.Block{Return: &ast.ReturnStatement{}},
	})
	suite.assertChunkString(`do return; end`, ast.Chunk{
		Name: UnknownInputName,
		Block: ast.NewBlock(ast.Do{
			Block: ast.Block{Return: &ast.ReturnStatement{}},
		}),
	})
	suite.assertChunkString(`return 1, 2;`, ast.Chunk{
		Name: UnknownInputName,
		Block: ast.Block{Return: &ast.ReturnStatement{
			Values: list(ast.Number(1), ast.Number(2)),
		}},
	})
}

func (suite *ParserSuite) TestPrecedence() {
	suite.assertExpressionString(`1 + 2 * 3`,
		bin(ast.Plus, ast.Number(1), bin(ast.Times, ast.Number(2), ast.Number(3))))
	suite.assertExpressionString(`1 - 2 - 3`,
		bin(ast.Minus, bin(ast.Minus, ast.Number(1), ast.Number(2)), ast.Number(3)))
	suite.assertExpressionString(`2 ^ 3 ^ 2`,
		bin(ast.Exponent, ast.Number(2), bin(ast.Exponent, ast.Number(3), ast.Number(2))))
	suite.assertExpressionString(`a .. b .. c`,
		bin(ast.Concatenate, ast.Name("a"), bin(ast.Concatenate, ast.Name("b"), ast.Name("c"))))
	suite.assertExpressionString(`-x ^ 2`,
		ast.UnaryExpression{Operator: ast.Negate, Operand: bin(ast.Exponent, ast.Name("x"), ast.Number(2))})
	suite.assertExpressionString(`not a == b`,
		bin(ast.Equal, ast.UnaryExpression{Operator: ast.Not, Operand: ast.Name("a")}, ast.Name("b")))
	suite.assertExpressionString(`a or b and c`,
		bin(ast.Or, ast.Name("a"), bin(ast.And, ast.Name("b"), ast.Name("c"))))
	suite.assertExpressionString(`a < b .. c`,
		bin(ast.LessThan, ast.Name("a"), bin(ast.Concatenate, ast.Name("b"), ast.Name("c"))))
	suite.assertExpressionString(`#t % 2 ~= 0`,
		bin(ast.NotEqual,
			bin(ast.Modulo, ast.UnaryExpression{Operator: ast.Length, Operand: ast.Name("t")}, ast.Number(2)),
			ast.Number(0)))
	suite.assertExpressionString(`(1 + 2) * 3`,
		bin(ast.Times, ast.Parenthesis{Inner: bin(ast.Plus, ast.Number(1), ast.Number(2))}, ast.Number(3)))
}

func (suite *ParserSuite) TestSimpleExpressions() {
	suite.assertExpressionString(`nil`, ast.Nil{})
	suite.assertExpressionString(`true`, ast.True{})
	suite.assertExpressionString(`false`, ast.False{})
	suite.assertExpressionString(`...`, ast.Vararg{})
	suite.assertExpressionString(`0x10`, ast.Number(16))
	suite.assertExpressionString(`0x.8p1`, ast.Number(1))
	suite.assertExpressionString(`1e400`, ast.Number(math.Inf(1)))
	suite.assertExpressionString(`[==[long]==]`, ast.String("long"))
	suite.assertExpressionString(`a[b].c`, ast.DotAccess{
		From: ast.ArrayAccess{From: ast.Name("a"), Key: ast.Name("b")},
		Key:  "c",
	})
}

func (suite *ParserSuite) TestChunkName() {
	dir := suite.T().TempDir()
	path := filepath.Join(dir, "named.lua")
	suite.NoError(os.WriteFile(path, []byte("x = 1"), 0o644))

	f, err := os.Open(path)
	suite.Require().NoError(err)
	defer func() { _ = f.Close() }()

	suite.assertChunk(f, ast.Chunk{
		Name: "named.lua",
		Block: ast.NewBlock(ast.Assignment{
			Targets: ast.NewVariableList(ast.Name("x")),
			Values:  ast.NewExpressionList(ast.Number(1)),
		}),
	})
}

func (suite *ParserSuite) TestErrors() {
	suite.assertErrorString(`x`, "expected function call or assignment")
	suite.assertErrorString(`f() = 1`, "expected assignable expression")
	suite.assertErrorString(`if a then`, "expected End, but got EOF")
	suite.assertErrorString(`return 1 x = 2`, "expected <EOF>")
	suite.assertErrorString(`local = 1`, "expected Name")
	suite.assertErrorString(`x = "unterminated`, "incomplete string")
	suite.assertErrorString(`x = 3x`, "malformed number")
	suite.assertErrorString(`end`, "expected <EOF>")
	suite.assertErrorString(`x = {1 2}`, "expected CurlyRight")
	suite.assertErrorString(`x = 1 +`, "expected expression, but got EOF")
}

func (suite *ParserSuite) TestByteStrings() {
	suite.assertStatementsString("s = \"\xff\\255\" .. 'a\\\r\nb'",
		ast.Assignment{
			Targets: ast.NewVariableList(ast.Name("s")),
			Values: ast.NewExpressionList(
				bin(ast.Concatenate, ast.String("\xff\xff"), ast.String("a\nb")),
			),
		},
	)
}

func (suite *ParserSuite) TestErrorPositions() {
	suite.assertErrorString("local = 1", "1:7: expected Name, but got '='")
	suite.assertErrorString("return 1\n  [==[x]==]", "2:3: expected <EOF>, but got '[==[x]==]'")
	suite.assertErrorString("f(\"a\\65\" \"b\")", "1:10: expected ParRight, but got '\"b\"'")
	suite.assertErrorString("é = 1", "error at 1:1: unexpected symbol")
}
