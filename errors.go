package clapz

import (
	"fmt"

	"golang.org/x/xerrors"
)

// NotEnoughValuesError means the cursor ran out of tokens before an
// argument's required arity was satisfied.
type NotEnoughValuesError struct {
	Arg string
}

func (me NotEnoughValuesError) Error() string {
	return fmt.Sprintf("not enough values for %s", me.Arg)
}

// InvalidValueError means a token was present but failed structural or
// decode validation.
type InvalidValueError struct {
	Token  string
	Reason string
}

func (me InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q: %s", me.Token, me.Reason)
}

// NotEnoughVariantsError is a configuration error: an Enum was declared
// without a label for every member. It is raised as a panic at construction
// time, before any parsing can occur.
type NotEnoughVariantsError struct {
	Member string
}

func (me NotEnoughVariantsError) Error() string {
	return fmt.Sprintf("enum member %s has no label", me.Member)
}

func IsNotEnoughValues(err error) bool {
	var neve NotEnoughValuesError
	return xerrors.As(err, &neve)
}

func IsInvalidValue(err error) bool {
	var ive InvalidValueError
	return xerrors.As(err, &ive)
}
