package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/Nyrox/motokigo/lang/glsl"
)

// Glsl parses and resolves args[0] and prints the generated GLSL
// translation unit to stdout (SPEC_FULL.md §6 "motokigo glsl").
func (c *Cmd) Glsl(ctx context.Context, stdio mainer.Stdio, args []string) error {
	prog, data, err := parseAndResolve(ctx, args[0])
	if err != nil {
		return printErr(stdio, err)
	}
	fmt.Fprint(stdio.Stdout, glsl.Emit(prog, data))
	return nil
}
