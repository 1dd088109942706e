package clapz

import (
	"github.com/dustin/go-humanize"
)

// Bytes holds a byte quantity decoded from a human readable string, for
// example 100GB. See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}

type bytesDecoder struct{}

func (bytesDecoder) Decode(token string) (ret Bytes, err error) {
	ui64, err := humanize.ParseBytes(token)
	if err != nil {
		err = InvalidValueError{Token: token, Reason: err.Error()}
		return
	}
	ret = Bytes(ui64)
	return
}

func (bytesDecoder) TypeName() string {
	return "bytes"
}

// BytesDecoder decodes human readable byte quantities.
func BytesDecoder() Decoder[Bytes] {
	return bytesDecoder{}
}
