package clapz

import (
	"fmt"
	"strings"
)

// Decoder decodes one raw token into a T. TypeName is what usage strings
// show after the '=' in keyed arguments.
type Decoder[T any] interface {
	Decode(token string) (T, error)
	TypeName() string
}

type stringDecoder struct{}

func (stringDecoder) Decode(token string) (string, error) {
	return token, nil
}

func (stringDecoder) TypeName() string {
	return "string"
}

// String decodes a token to itself. It never fails, so arguments using it
// are bounded only by their arity and position (see the package comment).
func String() Decoder[string] {
	return stringDecoder{}
}

// EnumLabel binds a textual label to an enumeration member. Several labels
// may map to the same member; the first declared is the primary one shown
// in usage strings.
type EnumLabel[T comparable] struct {
	Label string
	Value T
}

func Label[T comparable](label string, value T) EnumLabel[T] {
	return EnumLabel[T]{label, value}
}

type enumDecoder[T comparable] struct {
	labels   []EnumLabel[T]
	typeName string
}

// Enum decodes a token against a closed label set in declaration order;
// the first exact match wins, there is no prefix matching. Every member of
// members must appear as some label's value, otherwise Enum panics with
// NotEnoughVariantsError. members is the complete member list of the target
// enumeration, so under-declared labels are caught here rather than at
// parse time.
func Enum[T comparable](members []T, labels ...EnumLabel[T]) Decoder[T] {
	for _, m := range members {
		found := false
		for _, l := range labels {
			if l.Value == m {
				found = true
				break
			}
		}
		if !found {
			panic(NotEnoughVariantsError{Member: fmt.Sprintf("%v", m)})
		}
	}
	return enumDecoder[T]{
		labels:   labels,
		typeName: enumTypeName(labels),
	}
}

// The primary label per member, declaration order, joined with '|'.
func enumTypeName[T comparable](labels []EnumLabel[T]) string {
	var primaries []string
	seen := make(map[T]bool)
	for _, l := range labels {
		if seen[l.Value] {
			continue
		}
		seen[l.Value] = true
		primaries = append(primaries, l.Label)
	}
	return strings.Join(primaries, "|")
}

func (me enumDecoder[T]) Decode(token string) (ret T, err error) {
	for _, l := range me.labels {
		if l.Label == token {
			ret = l.Value
			return
		}
	}
	err = InvalidValueError{
		Token:  token,
		Reason: fmt.Sprintf("expected one of %s", me.typeName),
	}
	return
}

func (me enumDecoder[T]) TypeName() string {
	return me.typeName
}
