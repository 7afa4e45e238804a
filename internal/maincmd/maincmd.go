// Package maincmd implements the motokigo binary's command dispatcher: a
// thin client over the compiler host API (lang/parser, lang/resolver,
// lang/compiler, lang/glsl, lang/machine) that owns process exit codes and
// stdio and nothing else (SPEC_FULL.md §6 "CLI front end"). Its run-away
// guards (--step-limit, --call-depth-limit) are also overridable by
// MOTOKIGO_-prefixed environment variables, layered underneath explicit
// flags, via mainer.Parser's own env-var support (SPEC_FULL.md §7 "Ambient
// configuration").
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "motokigo"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> <file.mgo> [<arg>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> <file.mgo> [<arg>...]
       %[1]s -h|--help
       %[1]s -v|--version

Compiler and all-in-one tool for the Motokigo shading language.

The <command> can be one of:
       build      <file.mgo>                Parse, resolve and compile the
                                             program; print its static
                                             layout (function addresses,
                                             struct sizes, global offsets)
                                             or the first diagnostic.
       glsl       <file.mgo>                 Parse and resolve the program
                                             and print the generated GLSL
                                             translation unit.
       run        <file.mgo> [name=value...] Parse, resolve, compile and
                                             run "main", applying each
                                             name=value pair as a typed
                                             global write before running,
                                             then print the typed return
                                             value.
       dump       <file.mgo>                 Parse and resolve the program
                                             and print an indented AST dump.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --step-limit <n>          Abort "run" after n VM steps (0: no limit).
       --call-depth-limit <n>    Abort "run" after n nested calls (0: no
                                 limit).

--step-limit and --call-depth-limit default to the MOTOKIGO_STEP_LIMIT and
MOTOKIGO_CALL_DEPTH_LIMIT environment variables when the flag is omitted.
`, binName)
)

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help           bool   `flag:"h,help"`
	Version        bool   `flag:"v,version"`
	StepLimit      uint64 `flag:"step-limit" env:"STEP_LIMIT"`
	CallDepthLimit uint64 `flag:"call-depth-limit" env:"CALL_DEPTH_LIMIT"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	if len(c.args[1:]) == 0 {
		return fmt.Errorf("%s: a source file must be provided", cmdName)
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   true,
		EnvPrefix: strings.ToUpper(binName) + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		return mainer.Failure
	}
	return mainer.Success
}

// buildCmds discovers v's subcommand methods by reflection: every method
// taking (context.Context, mainer.Stdio, []string) and returning error
// becomes a subcommand named after its lower-cased method name, the same
// dispatcher idiom this repository's own CLI uses.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}

func printErr(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}
