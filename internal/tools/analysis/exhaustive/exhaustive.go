// Package exhaustive defines an Analyzer that reports switches over closed
// sets of types or constants that do not handle every member of the set.
package exhaustive

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `check that switches over sealed interfaces and enums are exhaustive

A sealed interface is a named interface type with at least one unexported
method. Its variants are the named non-interface types of the same package
that implement it. A type switch on a sealed interface must have a case for
every variant, either naming the variant, a pointer to it, or an interface
the variant implements.

An enum is a named integer type with at least two constants of that type
declared in its package. A switch on an enum must have a case for every
constant value.

A default clause does not make a switch exhaustive. A switch directly
preceded by, or on the same line as, an //exhaustive:ignore comment is not
checked.

With -pkgs, only interfaces and enums declared in packages whose import path
starts with one of the comma separated prefixes are checked.`

const ignoreDirective = "//exhaustive:ignore"

// Analyzer reports non-exhaustive switches.
var Analyzer = &analysis.Analyzer{
	Name:     "exhaustive",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var pkgs string

func init() {
	Analyzer.Flags.StringVar(&pkgs, "pkgs", "", "comma separated import path prefixes of the packages whose interfaces and enums are checked (default: all)")
}

// inScope reports whether sealed interfaces and enums declared in pkg are
// checked.
func inScope(pkg *types.Package) bool {
	if pkgs == "" {
		return true
	}
	for _, prefix := range strings.Split(pkgs, ",") {
		prefix = strings.TrimSpace(prefix)
		if prefix != "" && strings.HasPrefix(pkg.Path(), prefix) {
			return true
		}
	}
	return false
}

type lineKey struct {
	file string
	line int
}

// ignoredLines returns the lines holding an ignore directive.
func ignoredLines(pass *analysis.Pass) map[lineKey]bool {
	ignored := make(map[lineKey]bool)
	for _, file := range pass.Files {
		for _, group := range file.Comments {
			for _, c := range group.List {
				if strings.TrimSpace(c.Text) != ignoreDirective {
					continue
				}
				pos := pass.Fset.Position(c.Slash)
				ignored[lineKey{pos.Filename, pos.Line}] = true
			}
		}
	}
	return ignored
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	ignored := ignoredLines(pass)
	isIgnored := func(n ast.Node) bool {
		pos := pass.Fset.Position(n.Pos())
		return ignored[lineKey{pos.Filename, pos.Line}] || ignored[lineKey{pos.Filename, pos.Line - 1}]
	}

	nodeFilter := []ast.Node{
		(*ast.TypeSwitchStmt)(nil),
		(*ast.SwitchStmt)(nil),
	}
	inspect.Preorder(nodeFilter, func(n ast.Node) {
		if isIgnored(n) {
			return
		}
		switch stmt := n.(type) {
		case *ast.TypeSwitchStmt:
			checkTypeSwitch(pass, stmt)
		case *ast.SwitchStmt:
			checkSwitch(pass, stmt)
		}
	})
	return nil, nil
}

func checkTypeSwitch(pass *analysis.Pass, stmt *ast.TypeSwitchStmt) {
	subject := typeSwitchSubject(stmt)
	if subject == nil {
		return
	}
	named, iface, ok := sealedInterface(pass.TypesInfo.TypeOf(subject))
	if !ok {
		return
	}

	var cases []types.Type
	for _, clause := range stmt.Body.List {
		for _, expr := range clause.(*ast.CaseClause).List {
			if t := pass.TypesInfo.TypeOf(expr); t != nil {
				cases = append(cases, t)
			}
		}
	}

	var missing []string
	for _, variant := range variants(named, iface) {
		if !covered(variant, cases) {
			missing = append(missing, qualifiedName(variant))
		}
	}
	if len(missing) > 0 {
		pass.Reportf(stmt.Pos(), "missing cases in type switch on %s: %s", qualifiedName(named), strings.Join(missing, ", "))
	}
}

// typeSwitchSubject returns x of 'switch x.(type)' or 'switch v := x.(type)'.
func typeSwitchSubject(stmt *ast.TypeSwitchStmt) ast.Expr {
	var assert ast.Expr
	switch s := stmt.Assign.(type) {
	case *ast.ExprStmt:
		assert = s.X
	case *ast.AssignStmt:
		if len(s.Rhs) == 1 {
			assert = s.Rhs[0]
		}
	}
	if ta, ok := assert.(*ast.TypeAssertExpr); ok {
		return ta.X
	}
	return nil
}

func sealedInterface(t types.Type) (*types.Named, *types.Interface, bool) {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil || !inScope(named.Obj().Pkg()) {
		return nil, nil, false
	}
	iface, ok := named.Underlying().(*types.Interface)
	if !ok {
		return nil, nil, false
	}
	for i := 0; i < iface.NumMethods(); i++ {
		if !iface.Method(i).Exported() {
			return named, iface, true
		}
	}
	return nil, nil, false
}

// variants returns the named non-interface types of the interface's package
// whose value or pointer type implements it, sorted by name.
func variants(named *types.Named, iface *types.Interface) []*types.Named {
	scope := named.Obj().Pkg().Scope()

	var res []*types.Named
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || obj.IsAlias() {
			continue
		}
		candidate, ok := obj.Type().(*types.Named)
		if !ok || types.IsInterface(candidate) || candidate.TypeParams().Len() > 0 {
			continue
		}
		if implements(candidate, iface) {
			res = append(res, candidate)
		}
	}
	return res
}

func implements(t types.Type, iface *types.Interface) bool {
	return types.Implements(t, iface) || types.Implements(types.NewPointer(t), iface)
}

func covered(variant *types.Named, cases []types.Type) bool {
	for _, c := range cases {
		if types.Identical(c, variant) || types.Identical(c, types.NewPointer(variant)) {
			return true
		}
		if iface, ok := c.Underlying().(*types.Interface); ok && implements(variant, iface) {
			return true
		}
	}
	return false
}

type enumMember struct {
	name  string
	value constant.Value
}

func checkSwitch(pass *analysis.Pass, stmt *ast.SwitchStmt) {
	if stmt.Tag == nil {
		return
	}
	named, ok := pass.TypesInfo.TypeOf(stmt.Tag).(*types.Named)
	if !ok {
		return
	}
	members := enumMembers(named)
	if len(members) < 2 {
		return
	}

	var values []constant.Value
	for _, clause := range stmt.Body.List {
		for _, expr := range clause.(*ast.CaseClause).List {
			if tv, ok := pass.TypesInfo.Types[expr]; ok && tv.Value != nil {
				values = append(values, tv.Value)
			}
		}
	}

	var missing []string
	seen := make(map[string]bool)
	for _, member := range members {
		key := member.value.ExactString()
		if seen[key] {
			continue
		}
		seen[key] = true
		if !containsValue(values, member.value) {
			missing = append(missing, member.name)
		}
	}
	if len(missing) > 0 {
		pass.Reportf(stmt.Pos(), "missing cases in switch on %s: %s", qualifiedName(named), strings.Join(missing, ", "))
	}
}

// enumMembers returns the constants of the given named integer type declared
// in its package, ordered by value.
func enumMembers(named *types.Named) []enumMember {
	pkg := named.Obj().Pkg()
	if pkg == nil || !inScope(pkg) {
		return nil
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil
	}

	var members []enumMember
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), named) {
			continue
		}
		members = append(members, enumMember{
			name:  name,
			value: c.Val(),
		})
	}
	sort.SliceStable(members, func(i, j int) bool {
		return constant.Compare(members[i].value, token.LSS, members[j].value)
	})
	return members
}

func containsValue(values []constant.Value, v constant.Value) bool {
	for _, candidate := range values {
		if constant.Compare(candidate, token.EQL, v) {
			return true
		}
	}
	return false
}

func qualifiedName(named *types.Named) string {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return fmt.Sprintf("%s.%s", obj.Pkg().Name(), obj.Name())
}
