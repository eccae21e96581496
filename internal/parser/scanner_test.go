package parser

import (
	"strings"

	"github.com/Ameliorate/buildlua/internal/token"
)

func (suite *ScannerSuite) TestEmptyInput() {
	suite.assertTokensString(``, []token.Token{})
}

func (suite *ScannerSuite) TestSmallInput() {
	suite.assertTokensString(`a`, []token.Token{
		token.New("a", token.Position{Line: 1, Col: 1, Offset: 0}, token.Name),
	})
	suite.assertTokensString(`brea`, []token.Token{
		token.New("brea", token.Position{Line: 1, Col: 1, Offset: 0}, token.Name),
	})
}

func (suite *ScannerSuite) TestKeywordTypes() {
	suite.assertTokensString("and break do else elseif end false for function goto if in local nil not or repeat return then true until while",
		[]token.Token{
			token.New("and", token.Position{Line: 1, Col: 1, Offset: 0}, token.And, token.BinaryOperator),
			token.New("break", token.Position{Line: 1, Col: 5, Offset: 4}, token.Break),
			token.New("do", token.Position{Line: 1, Col: 11, Offset: 10}, token.Do),
			token.New("else", token.Position{Line: 1, Col: 14, Offset: 13}, token.Else),
			token.New("elseif", token.Position{Line: 1, Col: 19, Offset: 18}, token.Elseif),
			token.New("end", token.Position{Line: 1, Col: 26, Offset: 25}, token.End),
			token.New("false", token.Position{Line: 1, Col: 30, Offset: 29}, token.False),
			token.New("for", token.Position{Line: 1, Col: 36, Offset: 35}, token.For),
			token.New("function", token.Position{Line: 1, Col: 40, Offset: 39}, token.Function),
			token.New("goto", token.Position{Line: 1, Col: 49, Offset: 48}, token.Goto),
			token.New("if", token.Position{Line: 1, Col: 54, Offset: 53}, token.If),
			token.New("in", token.Position{Line: 1, Col: 57, Offset: 56}, token.In),
			token.New("local", token.Position{Line: 1, Col: 60, Offset: 59}, token.Local),
			token.New("nil", token.Position{Line: 1, Col: 66, Offset: 65}, token.Nil),
			token.New("not", token.Position{Line: 1, Col: 70, Offset: 69}, token.Not, token.UnaryOperator),
			token.New("or", token.Position{Line: 1, Col: 74, Offset: 73}, token.Or, token.BinaryOperator),
			token.New("repeat", token.Position{Line: 1, Col: 77, Offset: 76}, token.Repeat),
			token.New("return", token.Position{Line: 1, Col: 84, Offset: 83}, token.Return),
			token.New("then", token.Position{Line: 1, Col: 91, Offset: 90}, token.Then),
			token.New("true", token.Position{Line: 1, Col: 96, Offset: 95}, token.True),
			token.New("until", token.Position{Line: 1, Col: 101, Offset: 100}, token.Until),
			token.New("while", token.Position{Line: 1, Col: 107, Offset: 106}, token.While),
		})
}

func (suite *ScannerSuite) TestOperatorTypes() {
	suite.assertTokensString("+ - * / ^ % .. < <= > >= == ~= #",
		[]token.Token{
			token.New("+", token.Position{Line: 1, Col: 1, Offset: 0}, token.BinaryOperator),
			token.New("-", token.Position{Line: 1, Col: 3, Offset: 2}, token.UnaryOperator, token.BinaryOperator),
			token.New("*", token.Position{Line: 1, Col: 5, Offset: 4}, token.BinaryOperator),
			token.New("/", token.Position{Line: 1, Col: 7, Offset: 6}, token.BinaryOperator),
			token.New("^", token.Position{Line: 1, Col: 9, Offset: 8}, token.BinaryOperator),
			token.New("%", token.Position{Line: 1, Col: 11, Offset: 10}, token.BinaryOperator),
			token.New("..", token.Position{Line: 1, Col: 13, Offset: 12}, token.DoubleDot, token.BinaryOperator),
			token.New("<", token.Position{Line: 1, Col: 16, Offset: 15}, token.BinaryOperator),
			token.New("<=", token.Position{Line: 1, Col: 18, Offset: 17}, token.BinaryOperator),
			token.New(">", token.Position{Line: 1, Col: 21, Offset: 20}, token.BinaryOperator),
			token.New(">=", token.Position{Line: 1, Col: 23, Offset: 22}, token.BinaryOperator),
			token.New("==", token.Position{Line: 1, Col: 26, Offset: 25}, token.BinaryOperator),
			token.New("~=", token.Position{Line: 1, Col: 29, Offset: 28}, token.BinaryOperator),
			token.New("#", token.Position{Line: 1, Col: 32, Offset: 31}, token.UnaryOperator),
		})
}

func (suite *ScannerSuite) TestLinefeed() {
	suite.assertTokensString(`
break
 break
		break

do`,
		[]token.Token{
			token.New("break", token.Position{Line: 2, Col: 1, Offset: 1}, token.Break),
			token.New("break", token.Position{Line: 3, Col: 2, Offset: 8}, token.Break),
			token.New("break", token.Position{Line: 4, Col: 3, Offset: 16}, token.Break),
			token.New("do", token.Position{Line: 6, Col: 1, Offset: 23}, token.Do),
		})
}

func (suite *ScannerSuite) TestConcatenatedTokens() {
	suite.assertTokensString(`andThese are not_keywords at all, but this is and`,
		[]token.Token{
			token.New("andThese", token.Position{Line: 1, Col: 1, Offset: 0}, token.Name),
			token.New("are", token.Position{Line: 1, Col: 10, Offset: 9}, token.Name),
			token.New("not_keywords", token.Position{Line: 1, Col: 14, Offset: 13}, token.Name),
			token.New("at", token.Position{Line: 1, Col: 27, Offset: 26}, token.Name),
			token.New("all", token.Position{Line: 1, Col: 30, Offset: 29}, token.Name),
			token.New(",", token.Position{Line: 1, Col: 33, Offset: 32}, token.Comma),
			token.New("but", token.Position{Line: 1, Col: 35, Offset: 34}, token.Name),
			token.New("this", token.Position{Line: 1, Col: 39, Offset: 38}, token.Name),
			token.New("is", token.Position{Line: 1, Col: 44, Offset: 43}, token.Name),
			token.New("and", token.Position{Line: 1, Col: 47, Offset: 46}, token.And, token.BinaryOperator),
		})
}

func (suite *ScannerSuite) TestNumbers() {
	suite.assertTokensString(`1.5E7`,
		[]token.Token{
			token.New("1.5E7", token.Position{Line: 1, Col: 1, Offset: 0}, token.Number),
		})
	suite.assertTokensString(`-1.5E7`,
		[]token.Token{
			token.New("-", token.Position{Line: 1, Col: 1, Offset: 0}, token.UnaryOperator, token.BinaryOperator),
			token.New("1.5E7", token.Position{Line: 1, Col: 2, Offset: 1}, token.Number),
		})
	suite.assertTokensString(`-.5`,
		[]token.Token{
			token.New("-", token.Position{Line: 1, Col: 1, Offset: 0}, token.UnaryOperator, token.BinaryOperator),
			token.New(".5", token.Position{Line: 1, Col: 2, Offset: 1}, token.Number),
		})
	suite.assertTokensString(`.3E9`,
		[]token.Token{
			token.New(".3E9", token.Position{Line: 1, Col: 1, Offset: 0}, token.Number),
		})
}

func (suite *ScannerSuite) TestStrings() {
	suite.assertTokensString(`'a' "b" [[c]]`,
		[]token.Token{
			token.New("a", token.Position{Line: 1, Col: 1, Offset: 0}, token.String),
			token.New("b", token.Position{Line: 1, Col: 5, Offset: 4}, token.String),
			token.New("c", token.Position{Line: 1, Col: 9, Offset: 8}, token.String),
		})

	suite.assertTokensString(`'a' "b" [[
c]]`,
		[]token.Token{
			token.New("a", token.Position{Line: 1, Col: 1, Offset: 0}, token.String),
			token.New("b", token.Position{Line: 1, Col: 5, Offset: 4}, token.String),
			token.New("c", token.Position{Line: 1, Col: 9, Offset: 8}, token.String),
		})

	suite.assertTokensString(`'a' "b" [[
c
]]`,
		[]token.Token{
			token.New("a", token.Position{Line: 1, Col: 1, Offset: 0}, token.String),
			token.New("b", token.Position{Line: 1, Col: 5, Offset: 4}, token.String),
			token.New("c\n", token.Position{Line: 1, Col: 9, Offset: 8}, token.String),
		})

	suite.assertTokensString(`[[a]] [=[b]=] [===[foobar]===]`,
		[]token.Token{
			token.New("a", token.Position{Line: 1, Col: 1, Offset: 0}, token.String),
			token.New("b", token.Position{Line: 1, Col: 7, Offset: 6}, token.String),
			token.New("foobar", token.Position{Line: 1, Col: 15, Offset: 14}, token.String),
		})

	suite.assertTokensString(`[============================================================================[whatever]============================================================================]`,
		[]token.Token{
			token.New("whatever", token.Position{Line: 1, Col: 1, Offset: 0}, token.String),
		})
}

func (suite *ScannerSuite) TestHexNumbers() {
	suite.assertTokensString(`0xff 0X1p4 0xA.8 3e-2`,
		[]token.Token{
			token.New("0xff", token.Position{Line: 1, Col: 1, Offset: 0}, token.Number),
			token.New("0X1p4", token.Position{Line: 1, Col: 6, Offset: 5}, token.Number),
			token.New("0xA.8", token.Position{Line: 1, Col: 12, Offset: 11}, token.Number),
			token.New("3e-2", token.Position{Line: 1, Col: 18, Offset: 17}, token.Number),
		})
}

func (suite *ScannerSuite) TestLabelsAndConcat() {
	suite.assertTokensString(`::top:: goto top a..b`,
		[]token.Token{
			token.New("::", token.Position{Line: 1, Col: 1, Offset: 0}, token.DoubleColon),
			token.New("top", token.Position{Line: 1, Col: 3, Offset: 2}, token.Name),
			token.New("::", token.Position{Line: 1, Col: 6, Offset: 5}, token.DoubleColon),
			token.New("goto", token.Position{Line: 1, Col: 9, Offset: 8}, token.Goto),
			token.New("top", token.Position{Line: 1, Col: 14, Offset: 13}, token.Name),
			token.New("a", token.Position{Line: 1, Col: 18, Offset: 17}, token.Name),
			token.New("..", token.Position{Line: 1, Col: 19, Offset: 18}, token.DoubleDot, token.BinaryOperator),
			token.New("b", token.Position{Line: 1, Col: 21, Offset: 20}, token.Name),
		})
}

func (suite *ScannerSuite) TestComments() {
	suite.assertTokensString(`a -- comment
--[[ long
comment ]] b --[==[ x ]==] c`,
		[]token.Token{
			token.New("a", token.Position{Line: 1, Col: 1, Offset: 0}, token.Name),
			token.New("b", token.Position{Line: 3, Col: 12, Offset: 34}, token.Name),
			token.New("c", token.Position{Line: 3, Col: 28, Offset: 50}, token.Name),
		})
}

func (suite *ScannerSuite) TestStringEscapes() {
	suite.assertTokensString(`"a\tb" 'it\'s' "\65\x42"`,
		[]token.Token{
			token.New("a\tb", token.Position{Line: 1, Col: 1, Offset: 0}, token.String),
			token.New("it's", token.Position{Line: 1, Col: 8, Offset: 7}, token.String),
			token.New("AB", token.Position{Line: 1, Col: 16, Offset: 15}, token.String),
		})
}

func (suite *ScannerSuite) TestEscapedLineBreaks() {
	suite.assertTokensString("x = \"a\\\r\nb\" y", []token.Token{
		token.New("x", token.Position{Line: 1, Col: 1, Offset: 0}, token.Name),
		token.New("=", token.Position{Line: 1, Col: 3, Offset: 2}, token.Assign),
		token.New("a\nb", token.Position{Line: 1, Col: 5, Offset: 4}, token.String),
		token.New("y", token.Position{Line: 2, Col: 4, Offset: 12}, token.Name),
	})
	suite.assertTokensString("'a\\\n\rb'", []token.Token{
		token.New("a\nb", token.Position{Line: 1, Col: 1, Offset: 0}, token.String),
	})
	suite.assertTokensString("'a\\z \r\n  b'", []token.Token{
		token.New("ab", token.Position{Line: 1, Col: 1, Offset: 0}, token.String),
	})
}

func (suite *ScannerSuite) TestUnescapedLineBreakInString() {
	suite.assertErrorString("x = \"a\rb\"", "incomplete string")
	suite.assertErrorString("x = 'a\nb'", "incomplete string")
}

func (suite *ScannerSuite) TestLongStringLineBreaks() {
	suite.assertTokensString("[[\r\na\r\nb\n\rc\rd]]", []token.Token{
		token.New("a\nb\nc\nd", token.Position{Line: 1, Col: 1, Offset: 0}, token.String),
	})
}

func (suite *ScannerSuite) TestRawBytesInStrings() {
	suite.assertTokensString("x = \"\xff\xfe\" [[\x80]]", []token.Token{
		token.New("x", token.Position{Line: 1, Col: 1, Offset: 0}, token.Name),
		token.New("=", token.Position{Line: 1, Col: 3, Offset: 2}, token.Assign),
		token.New("\xff\xfe", token.Position{Line: 1, Col: 5, Offset: 4}, token.String),
		token.New("\x80", token.Position{Line: 1, Col: 10, Offset: 9}, token.String),
	})
}

func (suite *ScannerSuite) TestNonASCII() {
	suite.assertErrorString("\u00e9 = 1", `unexpected symbol near "\xc3"`)
	suite.assertErrorString("x\u00a0= 1", `unexpected symbol near "\xc2"`)
	suite.assertErrorString("caf\u00e9 = 1", `unexpected symbol near "\xc3"`)
	suite.assertErrorString("x = 1\u3000", `unexpected symbol near "\xe3"`)
}

func (suite *ScannerSuite) TestMalformedNumbers() {
	suite.assertErrorString("x = 3x", "malformed number")
	suite.assertErrorString("x = 1..2", "malformed number")
	suite.assertErrorString("x = 0x", "malformed number")
	suite.assertErrorString("x = 1e+", "malformed number")
}

func (suite *ScannerSuite) TestTokenSpans() {
	input := `x = "a\65" .. [==[b]==] -- done`
	sc, err := suite.scannerGenerator(strings.NewReader(input))
	suite.NoError(err)

	var sources []string
	var lengths []int
	for tk, ok := sc.next(); ok; tk, ok = sc.next() {
		sources = append(sources, sc.source(tk))
		lengths = append(lengths, tk.Length())
	}
	suite.Equal([]string{`x`, `=`, `"a\65"`, `..`, `[==[b]==]`}, sources)
	suite.Equal([]int{1, 1, 6, 2, 9}, lengths)
}
