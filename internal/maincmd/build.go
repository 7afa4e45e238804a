package maincmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/mna/mainer"

	"github.com/Nyrox/motokigo/lang/compiler"
	"github.com/Nyrox/motokigo/lang/types"
)

// Build parses, resolves and compiles args[0], printing the resulting
// static layout (function addresses, struct sizes, global offsets) or the
// first diagnostic on failure (SPEC_FULL.md §6 "motokigo build").
func (c *Cmd) Build(ctx context.Context, stdio mainer.Stdio, args []string) error {
	prog, data, err := parseAndResolve(ctx, args[0])
	if err != nil {
		return printErr(stdio, err)
	}
	vmProg, err := compiler.Compile(prog, data)
	if err != nil {
		return printErr(stdio, err)
	}

	fmt.Fprintln(stdio.Stdout, "functions:")
	names := make([]string, 0, len(data.Funcs))
	for name := range data.Funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(stdio.Stdout, "  %s: addr=%d frame_size=%d\n", name, data.Funcs[name].Address, data.Funcs[name].FrameSize)
	}

	fmt.Fprintln(stdio.Stdout, "structs:")
	for i := 0; i < data.Structs.Len(); i++ {
		decl := data.Structs.Get(types.StructID(i))
		fmt.Fprintf(stdio.Stdout, "  %s: size=%d\n", decl.Name, decl.Size)
	}

	fmt.Fprintln(stdio.Stdout, "globals:")
	gnames := make([]string, 0, len(data.Globals))
	for name := range data.Globals {
		gnames = append(gnames, name)
	}
	sort.Strings(gnames)
	for _, name := range gnames {
		s := data.Globals[name]
		fmt.Fprintf(stdio.Stdout, "  %s: offset=%d size=%d uniform=%t\n", name, s.Offset, s.Type.Size(data.Structs), s.IsUniform)
	}

	fmt.Fprintf(stdio.Stdout, "code size: %d cells\n", len(vmProg.Code))
	return nil
}
