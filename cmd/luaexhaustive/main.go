// Command luaexhaustive reports switches over sealed interfaces and enums,
// such as the node kinds of package ast, that do not handle every case.
//
// By default, only the interfaces and enums of this module are checked. Pass
// -pkgs= to check those of every package.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/Ameliorate/buildlua/internal/tools/analysis/exhaustive"
)

// modulePath is the default scope of the analyzer.
const modulePath = "github.com/Ameliorate/buildlua"

func main() {
	if err := exhaustive.Analyzer.Flags.Set("pkgs", modulePath); err != nil {
		panic(err)
	}
	singlechecker.Main(exhaustive.Analyzer)
}
