package maincmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mna/mainer"

	"github.com/Nyrox/motokigo/lang/compiler"
	"github.com/Nyrox/motokigo/lang/machine"
)

// Run parses, resolves and compiles args[0], constructs a VM, applies each
// remaining "name=value" argument as a typed global write, runs "main" to
// completion, and prints its typed return value (SPEC_FULL.md §6 "motokigo
// run").
func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	prog, data, err := parseAndResolve(ctx, args[0])
	if err != nil {
		return printErr(stdio, err)
	}
	vmProg, err := compiler.Compile(prog, data)
	if err != nil {
		return printErr(stdio, err)
	}

	vm := machine.New(vmProg, c.StepLimit)
	vm.SetCallDepthLimit(c.CallDepthLimit)
	for _, kv := range args[1:] {
		name, raw, ok := strings.Cut(kv, "=")
		if !ok {
			return printErr(stdio, fmt.Errorf("invalid argument %q, expected name=value", kv))
		}
		sym, ok := data.Globals[name]
		if !ok {
			return printErr(stdio, fmt.Errorf("unknown global %q", name))
		}
		b, err := encodeValue(sym.Type, raw)
		if err != nil {
			return printErr(stdio, fmt.Errorf("%s: %w", name, err))
		}
		if err := vm.SetGlobal(name, b); err != nil {
			return printErr(stdio, err)
		}
	}

	state, err := vm.RunFn("main", nil)
	if err != nil {
		return printErr(stdio, err)
	}
	if state != machine.Finished {
		return printErr(stdio, fmt.Errorf("run: main suspended unexpectedly (state %s)", state))
	}

	meta, ok := data.Funcs["main"]
	if !ok {
		return printErr(stdio, fmt.Errorf("program has no main function"))
	}
	size := meta.ReturnType.Size(data.Structs)
	ret := vm.Stack[len(vm.Stack)-size:]
	fmt.Fprintln(stdio.Stdout, decodeValue(meta.ReturnType, ret, data.Structs))
	return nil
}
