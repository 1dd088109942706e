package clapz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpWrite(t *testing.T) {
	sub := One(Name{Long: "sub-command"}, Pos(newSubCmdDecoder()),
		Values(
			ValueDoc{"build", "b", "compile the project"},
			ValueDoc{"run", "", "run the project"},
			ValueDoc{"test", "", "run the tests"}))
	filter := Opt(Name{Long: "--filter", Short: "-f"}, Key(String()),
		Desc("only run matching targets"))
	files := Many(Name{Long: "file"}, Pos(String()))
	h := NewHelp(
		Program("mk"),
		Description("Builds things."),
		Usage(sub, filter, files),
		Document(sub, filter),
		ExampleLines("mk build -f=unit"),
	)
	var buf bytes.Buffer
	h.Write(&buf)
	expected := "Usage:\n" +
		"\n" +
		"mk <sub-command> [-f|--filter=string] [file...]\n" +
		"\n" +
		"Builds things.\n" +
		"\n" +
		"Sub Command:\n" +
		"\n" +
		"build, b    compile the project\n" +
		"run         run the project\n" +
		"test        run the tests\n" +
		"\n" +
		"Filter:\n" +
		"\n" +
		"-f|--filter    only run matching targets\n" +
		"\n" +
		"Examples:\n" +
		"\n" +
		"mk build -f=unit\n"
	assert.EqualValues(t, expected, buf.String())
}

func TestHelpOmitsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	NewHelp().Write(&buf)
	assert.Empty(t, buf.String())

	buf.Reset()
	NewHelp(ExampleLines("x")).Write(&buf)
	assert.EqualValues(t, "Examples:\n\nx\n", buf.String())

	buf.Reset()
	NewHelp(Usage(Lit(Name{Long: "version"}))).Write(&buf)
	assert.EqualValues(t, "Usage:\n\nversion\n\n", buf.String())
}

func TestHelpDedupesDocs(t *testing.T) {
	path := Opt(Name{Long: "path"}, Pos(String()), Desc("where to write output"))
	var buf bytes.Buffer
	NewHelp(Document(path, path)).Write(&buf)
	expected := "Path:\n" +
		"\n" +
		"path    where to write output\n" +
		"\n"
	assert.EqualValues(t, expected, buf.String())
}

func TestHelpAutoExamples(t *testing.T) {
	sub := One(Name{Long: "sub-command"}, Pos(newSubCmdDecoder()),
		Examples("build", "test"))
	filter := Opt(Name{Long: "--filter", Short: "-f"}, Key(String()),
		Examples("-f=unit"))
	files := Many(Name{Long: "file"}, Pos(String()))
	var buf bytes.Buffer
	NewHelp(
		Usage(sub, filter, files),
		AutoExamples(),
	).Write(&buf)
	expected := "Usage:\n" +
		"\n" +
		"<sub-command> [-f|--filter=string] [file...]\n" +
		"\n" +
		"Examples:\n" +
		"\n" +
		"build -f=unit\n" +
		"test -f=unit\n"
	assert.EqualValues(t, expected, buf.String())
}

func TestHelpAutoExamplesWithProgram(t *testing.T) {
	sub := One(Name{Long: "sub-command"}, Pos(newSubCmdDecoder()),
		Examples("build"))
	var buf bytes.Buffer
	NewHelp(
		Program("mk"),
		Usage(sub),
		AutoExamples(),
	).Write(&buf)
	assert.Contains(t, buf.String(), "Examples:\n\nmk build\n")
}

func TestHelpAutoExamplesNoneDocumented(t *testing.T) {
	files := Many(Name{Long: "file"}, Pos(String()))
	var buf bytes.Buffer
	NewHelp(Usage(files), AutoExamples()).Write(&buf)
	assert.NotContains(t, buf.String(), "Examples")
}
