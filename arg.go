package clapz

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// ValueDoc is one documentation row for a value an argument accepts.
type ValueDoc struct {
	Label string
	Alias string
	Desc  string
}

// Doc is the static metadata view of an argument, everything the
// documentation renderer needs. All argument types implement it.
type Doc interface {
	SyntaxString() string
	DocString() string
	DocName() string
	Examples() []string
}

type meta struct {
	name     Name
	quant    quantifier
	atom     string
	desc     string
	values   []ValueDoc
	examples []string
}

// ArgOpt attaches presentation metadata to an argument at construction.
type ArgOpt func(*meta)

// Desc sets the argument's free-text description.
func Desc(desc string) ArgOpt {
	return func(m *meta) {
		m.desc = desc
	}
}

// Values sets the per-value documentation rows, in display order.
func Values(values ...ValueDoc) ArgOpt {
	return func(m *meta) {
		m.values = values
	}
}

// Examples sets the argument's usage examples.
func Examples(examples ...string) ArgOpt {
	return func(m *meta) {
		m.examples = examples
	}
}

func newMeta(name Name, quant quantifier, atom string, opts []ArgOpt) meta {
	m := meta{
		name:  name,
		quant: quant,
		atom:  atom,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// SyntaxString renders the argument's call-site shape: <x> required, [x]
// optional, a trailing ... for variable arity, the bare name for literals.
func (me *meta) SyntaxString() string {
	return me.quant.wrap(me.atom)
}

func (me *meta) DocName() string {
	return me.name.title()
}

func (me *meta) Examples() []string {
	return me.examples
}

// DocString renders the argument's help block: a title-cased heading, then
// one left-aligned row per documented value, the left column padded to the
// widest entry plus four spaces. With no value rows a single row is
// synthesized from the display name and the argument description.
func (me *meta) DocString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n\n", me.name.title())
	tw := tabwriter.NewWriter(&sb, 0, 0, 4, ' ', 0)
	if len(me.values) == 0 {
		fmt.Fprintf(tw, "%s\t%s\n", me.name.display(), me.desc)
	}
	for _, v := range me.values {
		left := v.Label
		if v.Alias != "" {
			left += ", " + v.Alias
		}
		fmt.Fprintf(tw, "%s\t%s\n", left, v.Desc)
	}
	tw.Flush()
	return sb.String()
}

// Arg parses exactly one token.
type Arg[T any] struct {
	meta
	bind binding[T]
}

func One[T any](name Name, st Structure[T], opts ...ArgOpt) *Arg[T] {
	b := binding[T]{name, st}
	return &Arg[T]{newMeta(name, one, b.atom(), opts), b}
}

func (me *Arg[T]) Parse(c *Cursor) (ret T, err error) {
	vals, err := parseRun(c, me.name, me.quant.arity(), me.bind.decode)
	if err != nil {
		return
	}
	ret = vals[0]
	return
}

// OptArg parses zero or one token. Parse's second return reports whether a
// value was present.
type OptArg[T any] struct {
	meta
	bind binding[T]
}

func Opt[T any](name Name, st Structure[T], opts ...ArgOpt) *OptArg[T] {
	b := binding[T]{name, st}
	return &OptArg[T]{newMeta(name, zeroOrOne, b.atom(), opts), b}
}

func (me *OptArg[T]) Parse(c *Cursor) (ret T, ok bool, err error) {
	vals, err := parseRun(c, me.name, me.quant.arity(), me.bind.decode)
	if err != nil || len(vals) == 0 {
		return
	}
	ret = vals[len(vals)-1]
	ok = true
	return
}

// SliceArg parses a variable-length run of tokens.
type SliceArg[T any] struct {
	meta
	bind binding[T]
}

// Many accepts zero or more tokens.
func Many[T any](name Name, st Structure[T], opts ...ArgOpt) *SliceArg[T] {
	b := binding[T]{name, st}
	return &SliceArg[T]{newMeta(name, zeroOrMore, b.atom(), opts), b}
}

// Some accepts one or more tokens.
func Some[T any](name Name, st Structure[T], opts ...ArgOpt) *SliceArg[T] {
	b := binding[T]{name, st}
	return &SliceArg[T]{newMeta(name, oneOrMore, b.atom(), opts), b}
}

func (me *SliceArg[T]) Parse(c *Cursor) (ret []T, err error) {
	ret, err = parseRun(c, me.name, me.quant.arity(), me.bind.decode)
	if err != nil {
		ret = nil
		return
	}
	if me.quant == oneOrMore && len(ret) == 0 {
		// The required phase guarantees at least one element.
		panic("one-or-more run came back empty")
	}
	return
}

// LiteralArg matches one token by exact equality with the argument's long
// or short name. A mismatch does not consume the token.
type LiteralArg struct {
	meta
}

func Lit(name Name, opts ...ArgOpt) *LiteralArg {
	return &LiteralArg{newMeta(name, literal, name.display(), opts)}
}

func (me *LiteralArg) Parse(c *Cursor) (ret string, err error) {
	s, ok := c.Peek()
	if !ok {
		err = NotEnoughValuesError{Arg: me.name.display()}
		return
	}
	if !me.name.matches(s) {
		err = InvalidValueError{Token: s, Reason: fmt.Sprintf("expected %s", me.name.display())}
		return
	}
	c.Accept()
	ret = s
	return
}
