package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Nyrox/motokigo/lang/ast"
	"github.com/Nyrox/motokigo/lang/parser"
	"github.com/Nyrox/motokigo/lang/resolver"
	"github.com/Nyrox/motokigo/lang/sym"
)

// parseAndResolve reads path, parses it, and resolves the result. Motokigo
// has no separate compilation units (§1 Non-goals), so this is a single
// source blob in, one *ast.Program and *sym.Program out.
func parseAndResolve(ctx context.Context, path string) (*ast.Program, *sym.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, nil, err
	}
	data, err := resolver.Resolve(prog)
	if err != nil {
		return nil, nil, err
	}
	return prog, data, nil
}
