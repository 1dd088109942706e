package clapz

import (
	"fmt"
	"strings"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Name is the pair of match targets for an argument. Either may be empty.
// Names are stored verbatim, prefixes included, so a flag-style argument is
// declared as Name{Long: "--filter", Short: "-f"}.
type Name struct {
	Long  string
	Short string
}

func (me Name) matches(token string) bool {
	if me.Long != "" && token == me.Long {
		return true
	}
	if me.Short != "" && token == me.Short {
		return true
	}
	return false
}

// short|long when a short name exists, else long alone.
func (me Name) display() string {
	if me.Short != "" && me.Long != "" {
		return me.Short + "|" + me.Long
	}
	if me.Long != "" {
		return me.Long
	}
	return me.Short
}

// Heading form: leading dashes stripped, kebab/snake words capitalized and
// space separated.
func (me Name) title() string {
	base := me.Long
	if base == "" {
		base = me.Short
	}
	base = strings.TrimLeft(base, "-")
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = xstrings.FirstRuneToUpper(w)
	}
	return strings.Join(words, " ")
}

// Structure binds a Decoder to a value-passing mode: positional (the token
// is the value) or keyed (the token is name=value). The name itself is bound
// when the Structure is attached to an argument.
type Structure[T any] struct {
	keyed bool
	dec   Decoder[T]
}

func Pos[T any](dec Decoder[T]) Structure[T] {
	return Structure[T]{dec: dec}
}

func Key[T any](dec Decoder[T]) Structure[T] {
	return Structure[T]{keyed: true, dec: dec}
}

// A Structure with its argument's Name bound.
type binding[T any] struct {
	name Name
	st   Structure[T]
}

func (me binding[T]) decode(token string) (ret T, err error) {
	if !me.st.keyed {
		return me.st.dec.Decode(token)
	}
	i := strings.IndexByte(token, '=')
	if i == -1 {
		err = InvalidValueError{Token: token, Reason: "expected name=value"}
		return
	}
	k, v := token[:i], token[i+1:]
	if k == "" || v == "" {
		err = InvalidValueError{Token: token, Reason: "expected name=value"}
		return
	}
	if !me.name.matches(k) {
		err = InvalidValueError{Token: token, Reason: fmt.Sprintf("unknown name %q", k)}
		return
	}
	ret, err = me.st.dec.Decode(v)
	err = errors.Wrapf(err, "value for %s", me.name.display())
	return
}

// The unit usage strings quantify: the display name for positionals,
// name=type for keyed arguments.
func (me binding[T]) atom() string {
	if me.st.keyed {
		return me.name.display() + "=" + me.st.dec.TypeName()
	}
	return me.name.display()
}
