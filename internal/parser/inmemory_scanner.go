package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/Ameliorate/buildlua/internal/token"
)

type state struct {
	start     int
	startLine int
	startCol  int

	pos  int
	line int
	col  int
}

// inMemoryScanner scans bytes, not runes. Lua strings are byte strings, and
// names, keywords and whitespace are ASCII only.
type inMemoryScanner struct {
	input []byte

	state
}

func newInMemoryScanner(source io.Reader) (*inMemoryScanner, error) {
	data, err := io.ReadAll(source)
	if err != nil {
		return nil, fmt.Errorf("read all: %w", err)
	}

	return &inMemoryScanner{
		input: data,
		state: state{
			startLine: 1,
			startCol:  1,
			line:      1,
			col:       1,
		},
	}, nil
}

func (s *inMemoryScanner) next() (token.Token, bool) {
	return s.computeNext()
}

// source returns the source text the given token was scanned from.
func (s *inMemoryScanner) source(tk token.Token) string {
	from := int(tk.Pos().Offset)
	to := from + tk.Length()
	if from < 0 || to > len(s.input) || from > to {
		return ""
	}
	return string(s.input[from:to])
}

func (s *inMemoryScanner) updateStartPositions() {
	s.start = s.pos
	s.startLine = s.line
	s.startCol = s.col
}

func (s *inMemoryScanner) token(typ ...token.Type) token.Token {
	return s.tokenWithValue(s.candidate(), typ...)
}

func (s *inMemoryScanner) tokenWithValue(value string, typ ...token.Type) token.Token {
	tok := token.NewSpanning(value, s.tkpos(), s.pos-s.start, typ...)
	s.updateStartPositions()
	return tok
}

func (s *inMemoryScanner) error(err error) token.Token {
	return s.tokenWithValue(err.Error(), token.Error)
}

func (s *inMemoryScanner) candidate() string {
	return string(s.input[s.start:s.pos])
}

func (s *inMemoryScanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *inMemoryScanner) lookahead() (byte, bool) {
	return s.peek(0)
}

func (s *inMemoryScanner) peek(n int) (byte, bool) {
	if s.pos+n < len(s.input) {
		return s.input[s.pos+n], true
	}
	return 0, false
}

func (s *inMemoryScanner) consume() {
	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

func (s *inMemoryScanner) consumeN(n int) {
	for i := 0; i < n; i++ {
		s.consume()
	}
}

func (s *inMemoryScanner) matches(ahead string) bool {
	if s.pos+len(ahead) > len(s.input) {
		return false
	}
	return string(s.input[s.pos:s.pos+len(ahead)]) == ahead
}

func (s *inMemoryScanner) check(ahead string) bool {
	if !s.matches(ahead) {
		return false
	}
	s.consumeN(len(ahead))
	return true
}

func (s *inMemoryScanner) checkWord(ahead string) bool {
	if !s.matches(ahead) {
		return false
	}

	if b, ok := s.peek(len(ahead)); ok && isNameByte(b) {
		/*
			Assuming that ahead is e.g. 'and', we can't match a variable name like
			'and_this_is_my_var', or 'andThis', which is, why we check if the word
			is followed by a byte that would be valid for a Lua name.
		*/
		return false
	}
	s.consumeN(len(ahead))
	return true
}

// consumeLineBreak consumes a line break at the current position. "\r\n"
// and "\n\r" count as a single line break.
func (s *inMemoryScanner) consumeLineBreak() bool {
	return s.check("\r\n") || s.check("\n\r") || s.check("\n") || s.check("\r")
}

// checkNumber consumes a decimal or hexadecimal numeral. Numerals never
// include a sign, '-1' is a unary operation on the numeral '1'.
func (s *inMemoryScanner) checkNumber() bool {
	i := 0
	hasMore := func() bool {
		return len(s.input) > s.pos+i
	}
	get := func() byte {
		return s.input[s.pos+i]
	}
	consume := func() {
		i++
	}
	digits := func(isDigit func(byte) bool) int {
		n := 0
		for hasMore() && isDigit(get()) {
			consume()
			n++
		}
		return n
	}

	isDigit := isDecimalDigit
	exponent := "eE"
	if s.matches("0x") || s.matches("0X") {
		consume()
		consume()
		isDigit = isHexDigit
		exponent = "pP"
	}

	mantissaDigits := digits(isDigit)
	if hasMore() && get() == '.' {
		consume()
		mantissaDigits += digits(isDigit)
	}
	if mantissaDigits == 0 {
		// neither integral nor fractional digits
		return false
	}

	// optional exponent part
	if hasMore() && (get() == exponent[0] || get() == exponent[1]) {
		consume()
		if hasMore() && (get() == '+' || get() == '-') {
			consume()
		}
		if digits(isDecimalDigit) == 0 {
			// require at least one digit after exponent indicator
			return false
		}
	}

	if hasMore() && (isNameByte(get()) || get() == '.') {
		// something like 3x, 0x1g or 1.2.3
		return false
	}

	s.consumeN(i)
	return true
}

// longBracket determines whether a long bracket ('[[', '[==[') starts at the
// current position. If so, its level (the number of '=') is returned.
func (s *inMemoryScanner) longBracket() (int, bool) {
	if b, ok := s.peek(0); !ok || b != '[' {
		return 0, false
	}
	level := 0
	for {
		b, ok := s.peek(1 + level)
		if !ok {
			return 0, false
		}
		switch b {
		case '=':
			level++
		case '[':
			return level, true
		default:
			return 0, false
		}
	}
}

// longString consumes a long bracket of the given level and returns its
// content. A line break directly after the opening bracket is not part of
// the content, and every line break in the content reads as "\n".
func (s *inMemoryScanner) longString(level int) (string, error) {
	s.consumeN(level + 2)
	s.consumeLineBreak()

	closing := "]" + strings.Repeat("=", level) + "]"

	var content []byte
	for !s.done() {
		if s.matches(closing) {
			s.consumeN(len(closing))
			return string(content), nil
		}
		if s.consumeLineBreak() {
			content = append(content, '\n')
			continue
		}
		content = append(content, s.input[s.pos])
		s.consume()
	}
	return "", fmt.Errorf("unfinished long string or comment")
}

func (s *inMemoryScanner) tkpos() token.Position {
	return token.Position{
		Line:   s.startLine,
		Col:    s.startCol,
		Offset: int64(s.start),
	}
}

func (s *inMemoryScanner) drainWhitespace() {
	for {
		b, ok := s.lookahead()
		if !(ok && isSpace(b)) {
			break
		}
		s.consume()
	}
	s.updateStartPositions() // ignore whitespaces
}

func (s *inMemoryScanner) skipRemainingLine() {
	for {
		next, ok := s.lookahead()
		if !ok || next == '\n' || next == '\r' {
			break
		}
		s.consume()
	}
	s.updateStartPositions() // ignore this line
}

func (s *inMemoryScanner) computeNext() (token.Token, bool) {
start:
	if s.pos == 0 {
		// a first line starting with '#', like a shebang, is ignored
		if s.check("#") {
			s.skipRemainingLine()
		}
	}
	s.drainWhitespace()
	b, ok := s.lookahead()
	if !ok {
		return nil, false
	}
	switch b {
	case 'a':
		if s.checkWord("and") {
			return s.token(token.And, token.BinaryOperator), true
		}
	case 'b':
		if s.checkWord("break") {
			return s.token(token.Break), true
		}
	case 'd':
		if s.checkWord("do") {
			return s.token(token.Do), true
		}
	case 'e':
		if s.checkWord("elseif") {
			return s.token(token.Elseif), true
		} else if s.checkWord("else") {
			return s.token(token.Else), true
		} else if s.checkWord("end") {
			return s.token(token.End), true
		}
	case 'f':
		if s.checkWord("false") {
			return s.token(token.False), true
		} else if s.checkWord("for") {
			return s.token(token.For), true
		} else if s.checkWord("function") {
			return s.token(token.Function), true
		}
	case 'g':
		if s.checkWord("goto") {
			return s.token(token.Goto), true
		}
	case 'i':
		if s.checkWord("if") {
			return s.token(token.If), true
		} else if s.checkWord("in") {
			return s.token(token.In), true
		}
	case 'l':
		if s.checkWord("local") {
			return s.token(token.Local), true
		}
	case 'n':
		if s.checkWord("nil") {
			return s.token(token.Nil), true
		} else if s.checkWord("not") {
			return s.token(token.Not, token.UnaryOperator), true
		}
	case 'o':
		if s.checkWord("or") {
			return s.token(token.Or, token.BinaryOperator), true
		}
	case 'r':
		if s.checkWord("repeat") {
			return s.token(token.Repeat), true
		} else if s.checkWord("return") {
			return s.token(token.Return), true
		}
	case 't':
		if s.checkWord("then") {
			return s.token(token.Then), true
		} else if s.checkWord("true") {
			return s.token(token.True), true
		}
	case 'u':
		if s.checkWord("until") {
			return s.token(token.Until), true
		}
	case 'w':
		if s.checkWord("while") {
			return s.token(token.While), true
		}
	case '(':
		if s.check("(") {
			return s.token(token.ParLeft), true
		}
	case ')':
		if s.check(")") {
			return s.token(token.ParRight), true
		}
	case '[':
		if level, ok := s.longBracket(); ok {
			content, err := s.longString(level)
			if err != nil {
				return s.error(err), false
			}
			return s.tokenWithValue(content, token.String), true
		} else if s.check("[") {
			return s.token(token.BracketLeft), true
		}
	case ']':
		if s.check("]") {
			return s.token(token.BracketRight), true
		}
	case '{':
		if s.check("{") {
			return s.token(token.CurlyLeft), true
		}
	case '}':
		if s.check("}") {
			return s.token(token.CurlyRight), true
		}
	case '.':
		if s.check("...") {
			return s.token(token.Ellipsis), true
		} else if s.check("..") {
			return s.token(token.DoubleDot, token.BinaryOperator), true
		} else if next, ok := s.peek(1); ok && isDecimalDigit(next) {
			if s.checkNumber() {
				return s.token(token.Number), true
			}
			return s.error(fmt.Errorf("malformed number near %s", string(s.input[s.pos:s.pos+2]))), false
		} else if s.check(".") {
			return s.token(token.Dot), true
		}
	case '+':
		if s.check("+") {
			return s.token(token.BinaryOperator), true
		}
	case '-':
		if s.check("--") { // comment
			if level, ok := s.longBracket(); ok {
				if _, err := s.longString(level); err != nil {
					return s.error(err), false
				}
				s.updateStartPositions() // ignore the comment
			} else {
				s.skipRemainingLine() // ignore everything until line-end
			}
			goto start
		} else if s.check("-") {
			return s.token(token.UnaryOperator, token.BinaryOperator), true
		}
	case '*':
		if s.check("*") {
			return s.token(token.BinaryOperator), true
		}
	case '/':
		if s.check("/") {
			return s.token(token.BinaryOperator), true
		}
	case '^':
		if s.check("^") {
			return s.token(token.BinaryOperator), true
		}
	case '%':
		if s.check("%") {
			return s.token(token.BinaryOperator), true
		}
	case '<':
		if s.check("<=") {
			return s.token(token.BinaryOperator), true
		} else if s.check("<") {
			return s.token(token.BinaryOperator), true
		}
	case '>':
		if s.check(">=") {
			return s.token(token.BinaryOperator), true
		} else if s.check(">") {
			return s.token(token.BinaryOperator), true
		}
	case '=':
		if s.check("==") {
			return s.token(token.BinaryOperator), true
		} else if s.check("=") {
			return s.token(token.Assign), true
		}
	case '~':
		if s.check("~=") {
			return s.token(token.BinaryOperator), true
		}
	case '#':
		if s.check("#") {
			return s.token(token.UnaryOperator), true
		}
	case ',':
		if s.check(",") {
			return s.token(token.Comma), true
		}
	case ':':
		if s.check("::") {
			return s.token(token.DoubleColon), true
		} else if s.check(":") {
			return s.token(token.Colon), true
		}
	case '"', '\'':
		return s.string_()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if s.checkNumber() {
			return s.token(token.Number), true
		}
		return s.error(fmt.Errorf("malformed number starting with %c", b)), false
	case ';':
		if s.check(";") {
			return s.token(token.SemiColon), true
		}
	}
	// if none of these optimized lookaheads match, try this next
	if isNameStart(b) {
		return s.ident()
	}
	s.consume()
	return s.error(fmt.Errorf("unexpected symbol near %q", s.candidate())), false
}

func (s *inMemoryScanner) string_() (token.Token, bool) {
	var delimiter byte
	if s.check("\"") {
		delimiter = '"'
	} else if s.check("'") {
		delimiter = '\''
	} else {
		return s.error(fmt.Errorf("string can not start with %q", s.input[s.pos])), false
	}

	contentStart := s.pos
	var complete bool
	for next, ok := s.lookahead(); ok; next, ok = s.lookahead() {
		if next == '\n' || next == '\r' {
			// only escaped line breaks may appear in a short string
			break
		}
		s.consume()
		if next == delimiter {
			complete = true
			break
		}
		if next != '\\' {
			continue
		}

		escaped, ok := s.lookahead()
		if !ok {
			break
		}
		switch escaped {
		case '\n', '\r':
			s.consumeLineBreak()
		case 'z':
			// '\z' skips all following whitespace, including line breaks
			s.consume()
			for b, ok := s.lookahead(); ok && isSpace(b); b, ok = s.lookahead() {
				s.consume()
			}
		default:
			s.consume()
		}
	}
	if !complete {
		return s.error(fmt.Errorf("incomplete string %s<EOF>", s.candidate())), false
	}

	value, err := unescape(string(s.input[contentStart : s.pos-1]))
	if err != nil {
		return s.error(fmt.Errorf("string %s: %w", s.candidate(), err)), false
	}
	return s.tokenWithValue(value, token.String), true
}

func (s *inMemoryScanner) ident() (token.Token, bool) {
	first, ok := s.lookahead()
	if !ok {
		return nil, false
	}
	if !isNameStart(first) {
		return s.error(fmt.Errorf("expected letter or underscore, but got %q", first)), false
	}
	s.consume()
	for {
		next, ok := s.lookahead()
		if !ok || !isNameByte(next) {
			break
		}
		s.consume()
	}
	return s.token(token.Name), true
}

func isNameStart(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || b == '_'
}

func isNameByte(b byte) bool {
	return isNameStart(b) || isDecimalDigit(b)
}

func isDecimalDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
