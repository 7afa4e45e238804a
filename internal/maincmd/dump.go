package maincmd

import (
	"context"

	"github.com/mna/mainer"

	"github.com/Nyrox/motokigo/lang/ast"
)

// Dump parses and resolves args[0] and prints an indented AST dump to
// stdout (SPEC_FULL.md §6 "motokigo dump").
func (c *Cmd) Dump(ctx context.Context, stdio mainer.Stdio, args []string) error {
	prog, _, err := parseAndResolve(ctx, args[0])
	if err != nil {
		return printErr(stdio, err)
	}
	ast.Print(stdio.Stdout, prog)
	return nil
}
