package clapz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringDecode(t *testing.T) {
	s, err := String().Decode("hello, world")
	require.NoError(t, err)
	assert.EqualValues(t, "hello, world", s)
	assert.EqualValues(t, "string", String().TypeName())
}

func TestEnumDecode(t *testing.T) {
	dec := newSubCmdDecoder()
	for _, _case := range []struct {
		token    string
		err      error
		expected subCmd
	}{
		{"build", nil, cmdBuild},
		{"b", nil, cmdBuild},
		{"run", nil, cmdRun},
		{"test", nil, cmdTest},
		{"deploy", InvalidValueError{Token: "deploy", Reason: "expected one of build|run|test"}, 0},
		{"bui", InvalidValueError{Token: "bui", Reason: "expected one of build|run|test"}, 0},
	} {
		v, err := dec.Decode(_case.token)
		assert.EqualValues(t, _case.err, err, "%v", _case)
		if _case.err != nil {
			continue
		}
		assert.EqualValues(t, _case.expected, v)
	}
}

func TestEnumTypeNameSkipsAliases(t *testing.T) {
	assert.EqualValues(t, "build|run|test", newSubCmdDecoder().TypeName())
}

func TestEnumMissingLabelPanics(t *testing.T) {
	assert.PanicsWithValue(t, NotEnoughVariantsError{Member: "2"}, func() {
		Enum(subCmds,
			Label("build", cmdBuild),
			Label("run", cmdRun))
	})
}

func TestBytesDecode(t *testing.T) {
	b, err := BytesDecoder().Decode("100g")
	require.NoError(t, err)
	assert.EqualValues(t, 100e9, b.Int64())
	_, err = BytesDecoder().Decode("over 9000")
	assert.True(t, IsInvalidValue(err))
}
