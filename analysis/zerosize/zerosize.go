// Package zerosize defines an Analyzer that reports byte views of zero-sized types.
//
// bytecast.RawView accepts any type argument. For a type without any bytes, such as struct{}
// or [0]uint32, the view is always empty, which is almost never what the caller meant. The
// analyzer flags these instantiations so that they fail at vet time instead of silently
// producing empty views.
package zerosize

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const Doc = `report byte views of zero-sized types

The zerosize analyzer reports calls to bytecast.RawView whose type argument
has a size of zero bytes. Such a call always returns an empty view.`

var Analyzer = &analysis.Analyzer{
	Name:     "zerosize",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// functions taking a type argument that must not be zero-sized
var checked = map[string]bool{
	"RawView": true,
}

func run(pass *analysis.Pass) (any, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		ident := calleeIdent(call.Fun)
		if ident == nil {
			return
		}

		fn, ok := pass.TypesInfo.Uses[ident].(*types.Func)
		if !ok || !checked[fn.Name()] || fn.Pkg() == nil || fn.Pkg().Name() != "bytecast" {
			return
		}

		inst, ok := pass.TypesInfo.Instances[ident]
		if !ok || inst.TypeArgs.Len() != 1 {
			return
		}

		typeArg := inst.TypeArgs.At(0)
		if _, isParam := typeArg.(*types.TypeParam); isParam {
			// the size is only known at the instantiation of the enclosing function
			return
		}

		if pass.TypesSizes.Sizeof(typeArg) == 0 {
			pass.Reportf(call.Pos(), "%s of zero-sized type %s is always empty", fn.Name(), typeArg)
		}
	})

	return nil, nil
}

// calleeIdent returns the identifier naming the called function, stripping an explicit
// instantiation and a package qualifier.
func calleeIdent(fun ast.Expr) *ast.Ident {
	switch expr := fun.(type) {
	case *ast.IndexExpr:
		return calleeIdent(expr.X)
	case *ast.IndexListExpr:
		return calleeIdent(expr.X)
	case *ast.SelectorExpr:
		return expr.Sel
	case *ast.Ident:
		return expr
	}

	return nil
}
