package codec

// Node kinds, the value of the "kind" key.
const (
	kindChunk                   = "Chunk"
	kindBlock                   = "Block"
	kindReturn                  = "Return"
	kindSemicolon               = "Semicolon"
	kindBreak                   = "Break"
	kindLabel                   = "Label"
	kindGoto                    = "Goto"
	kindAssignment              = "Assignment"
	kindCallStatement           = "CallStatement"
	kindDo                      = "Do"
	kindWhile                   = "While"
	kindRepeat                  = "Repeat"
	kindIf                      = "If"
	kindElseIf                  = "ElseIf"
	kindForStepping             = "ForStepping"
	kindForIn                   = "ForIn"
	kindFunction                = "Function"
	kindFunctionName            = "FunctionName"
	kindLocalFunction           = "LocalFunction"
	kindLocal                   = "Local"
	kindFunctionBody            = "FunctionBody"
	kindNamedParameters         = "NamedParameters"
	kindNamedVariadicParameters = "NamedVariadicParameters"
	kindVariadicParameters      = "VariadicParameters"
	kindNil                     = "Nil"
	kindFalse                   = "False"
	kindTrue                    = "True"
	kindVararg                  = "Vararg"
	kindNumber                  = "Number"
	kindString                  = "String"
	kindFunctionDefine          = "FunctionDefine"
	kindTable                   = "Table"
	kindBinary                  = "Binary"
	kindUnary                   = "Unary"
	kindParenthesis             = "Parenthesis"
	kindName                    = "Name"
	kindArrayAccess             = "ArrayAccess"
	kindDotAccess               = "DotAccess"
	kindStaticCall              = "StaticCall"
	kindSelfTakingCall          = "SelfTakingCall"
	kindExpressionForName       = "ExpressionForName"
	kindEquals                  = "Equals"
	kindArrayStyle              = "ArrayStyle"
	kindParenthesisArguments    = "ParenthesisArguments"
	kindTableArguments          = "TableArguments"
	kindStringArguments         = "StringArguments"
)

const (
	keyKind       = "kind"
	keyName       = "name"
	keyNames      = "names"
	keyBlock      = "block"
	keyStatements = "statements"
	keyReturn     = "return"
	keyValues     = "values"
	keyValue      = "value"
	keyBytes      = "bytes"
	keyLabel      = "label"
	keyTargets    = "targets"
	keyCall       = "call"
	keyCondition  = "condition"
	keyUntil      = "until"
	keyThen       = "then"
	keyElseIfs    = "elseIfs"
	keyElse       = "else"
	keyFrom       = "from"
	keyTo         = "to"
	keyStep       = "step"
	keyIn         = "in"
	keyMethod     = "method"
	keyBody       = "body"
	keyParameters = "parameters"
	keyOperator   = "operator"
	keyLeft       = "left"
	keyRight      = "right"
	keyOperand    = "operand"
	keyInner      = "inner"
	keyKey        = "key"
	keyCallee     = "callee"
	keyReceiver   = "receiver"
	keyArguments  = "arguments"
	keyFields     = "fields"
	keyTable      = "table"
)
