package clapz

// Cursor walks the remaining command-line tokens with a single token of
// lookahead. Peek buffers the next token without committing to it; Accept
// commits. A parse attempt that peeks a token and rejects it leaves the
// token in place for the next argument. At most one token is ever buffered.
type Cursor struct {
	rest     []string
	buf      string
	buffered bool
}

func NewCursor(tokens []string) *Cursor {
	return &Cursor{rest: tokens}
}

// Peek returns the next token without consuming it. Repeated calls without
// an intervening Accept return the same token. Exhaustion is not an error.
func (me *Cursor) Peek() (string, bool) {
	if me.buffered {
		return me.buf, true
	}
	if len(me.rest) == 0 {
		return "", false
	}
	me.buf = me.rest[0]
	me.rest = me.rest[1:]
	me.buffered = true
	return me.buf, true
}

// Accept discards the buffered token. No-op if nothing is buffered.
func (me *Cursor) Accept() {
	me.buffered = false
	me.buf = ""
}

// Remaining counts the tokens not yet accepted, including a buffered one.
func (me *Cursor) Remaining() int {
	n := len(me.rest)
	if me.buffered {
		n++
	}
	return n
}
