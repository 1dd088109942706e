package clapz

import (
	"fmt"
	"io"
	"strings"

	"github.com/anacrolix/missinggo/v2"
)

// Help renders a set of argument declarations as formatted documentation:
// a usage section, one help block per documented argument, and an examples
// section. Sections with no content are omitted.
type Help struct {
	program      string
	description  string
	usage        [][]Doc
	docs         []Doc
	examples     []string
	autoExamples bool
}

type HelpOpt func(*Help)

// Program prefixes every usage line with the program name.
func Program(program string) HelpOpt {
	return func(h *Help) {
		h.program = program
	}
}

// Description writes free text between the usage block and the argument
// help blocks.
func Description(desc string) HelpOpt {
	return func(h *Help) {
		h.description = desc
	}
}

// Usage appends one usage line.
func Usage(args ...Doc) HelpOpt {
	return func(h *Help) {
		h.usage = append(h.usage, args)
	}
}

// Document appends arguments to the help-block set. Arguments rendering to
// the same heading are emitted once.
func Document(args ...Doc) HelpOpt {
	return func(h *Help) {
		h.docs = append(h.docs, args...)
	}
}

// ExampleLines appends verbatim example lines.
func ExampleLines(lines ...string) HelpOpt {
	return func(h *Help) {
		h.examples = append(h.examples, lines...)
	}
}

// AutoExamples synthesizes the examples section from the Cartesian product
// of each usage line's per-argument example lists, replacing any verbatim
// example lines.
func AutoExamples() HelpOpt {
	return func(h *Help) {
		h.autoExamples = true
	}
}

func NewHelp(opts ...HelpOpt) *Help {
	h := new(Help)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (me *Help) usageLine(args []Doc) string {
	var parts []string
	if me.program != "" {
		parts = append(parts, me.program)
	}
	for _, a := range args {
		parts = append(parts, a.SyntaxString())
	}
	return strings.Join(parts, " ")
}

// Arguments with no examples contribute nothing to their line's product, so
// one undocumented argument doesn't empty the whole line.
func (me *Help) exampleProduct() (ret []string) {
	for _, line := range me.usage {
		lines := []string{""}
		if me.program != "" {
			lines = []string{me.program}
		}
		for _, a := range line {
			exs := a.Examples()
			if len(exs) == 0 {
				continue
			}
			var next []string
			for _, prefix := range lines {
				for _, ex := range exs {
					if prefix == "" {
						next = append(next, ex)
					} else {
						next = append(next, prefix+" "+ex)
					}
				}
			}
			lines = next
		}
		for _, l := range lines {
			if l != "" && l != me.program {
				ret = append(ret, l)
			}
		}
	}
	return
}

func (me *Help) Write(w io.Writer) {
	if len(me.usage) != 0 {
		fmt.Fprintf(w, "Usage:\n\n")
		for _, line := range me.usage {
			fmt.Fprintf(w, "%s\n", me.usageLine(line))
		}
		fmt.Fprintf(w, "\n")
	}
	if me.description != "" {
		fmt.Fprint(w, missinggo.Unchomp(me.description))
		fmt.Fprintf(w, "\n")
	}
	seen := make(map[string]bool)
	for _, d := range me.docs {
		name := d.DocName()
		if seen[name] {
			continue
		}
		seen[name] = true
		fmt.Fprint(w, d.DocString())
		fmt.Fprintf(w, "\n")
	}
	examples := me.examples
	if me.autoExamples {
		examples = me.exampleProduct()
	}
	if len(examples) != 0 {
		fmt.Fprintf(w, "Examples:\n\n")
		for _, l := range examples {
			fmt.Fprintf(w, "%s\n", l)
		}
	}
}
