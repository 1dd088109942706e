package clapz

import (
	"github.com/bradfitz/iter"
)

const infArity = 1000

type arity struct {
	min, max int
}

type quantifier int

const (
	literal quantifier = iota
	one
	zeroOrOne
	oneOrMore
	zeroOrMore
)

func (me quantifier) arity() arity {
	switch me {
	case literal, one:
		return arity{1, 1}
	case zeroOrOne:
		return arity{0, 1}
	case oneOrMore:
		return arity{1, infArity}
	case zeroOrMore:
		return arity{0, infArity}
	default:
		panic(me)
	}
}

func (me quantifier) wrap(atom string) string {
	switch me {
	case literal:
		return atom
	case one:
		return "<" + atom + ">"
	case zeroOrOne:
		return "[" + atom + "]"
	case oneOrMore:
		return "<" + atom + "...>"
	case zeroOrMore:
		return "[" + atom + "...]"
	default:
		panic(me)
	}
}

// parseRun consumes between ar.min and ar.max decodable tokens from the
// cursor. The required phase propagates: an exhausted cursor is
// NotEnoughValuesError, a decode failure is the decoder's error, and in
// both cases the offending token (if any) is left unaccepted. The optional
// phase never fails: a decode failure or exhaustion just ends the run,
// leaving the failing token for the next argument. This asymmetry is what
// lets adjacent optional arguments share a command line without one
// stealing a token meant for the next.
func parseRun[T any](c *Cursor, name Name, ar arity, decode func(string) (T, error)) (vals []T, err error) {
	for range iter.N(ar.min) {
		s, ok := c.Peek()
		if !ok {
			err = NotEnoughValuesError{Arg: name.display()}
			return
		}
		var v T
		v, err = decode(s)
		if err != nil {
			return
		}
		c.Accept()
		vals = append(vals, v)
	}
	for range iter.N(ar.max - ar.min) {
		s, ok := c.Peek()
		if !ok {
			break
		}
		v, verr := decode(s)
		if verr != nil {
			break
		}
		c.Accept()
		vals = append(vals, v)
	}
	return
}
