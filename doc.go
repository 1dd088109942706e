// Package clapz declares typed command-line arguments, parses them from a
// token stream with exactly one token of backtracking, and renders the same
// declarations as usage and help text.
//
// For example:
//
//	var (
//	    filter = clapz.One(
//	        clapz.Name{Long: "--filter", Short: "-f"},
//	        clapz.Key(clapz.String()),
//	        clapz.Desc("only run matching targets"))
//	    files = clapz.Some(
//	        clapz.Name{Long: "file"},
//	        clapz.Pos(clapz.String()))
//	)
//
//	c := clapz.NewCursor(tokens)
//	f, err := filter.Parse(c)
//	...
//	paths, err := files.Parse(c)
//
// Arguments are parsed in the order the program expects them on the command
// line. Each Parse consumes between its arity's lower and upper bound of
// tokens. A token that fails to decode in the optional tail of a run is left
// on the cursor for the next argument; a failure inside the required count
// is an error.
//
// Decoders that always succeed (String) are bounded only by argument order:
// an optional string argument declared ahead of a required one will take the
// required one's token. Declare such sequences so the always-succeeding
// argument comes last, or use a Decoder that can reject the token.
package clapz
