package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/store"
)

const sample = record.Header + `
1,Alice,F,20,88.5,91.0,76.0
2,Bob,M,21,59.0,60.0,62.0
3,Carol,F,19,95.0,89.0,90.0
`

func sampleFile(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "data", "stu.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0755))
	require.NoError(t, os.WriteFile(filename, []byte(content), 0666))
	return filename
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := NewRootCmd("test")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stuctl test\n", out)
}

func TestInit(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "data", "stu.csv")

	out, _, err := execute(t, "init", "--file", filename)
	require.NoError(t, err)
	assert.Contains(t, out, "Created new student data file")
	assert.Contains(t, out, "File size: 37 bytes")

	out, _, err = execute(t, "init", "--file", filename)
	require.NoError(t, err)
	assert.Contains(t, out, "Using student data file")

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, record.Header+"\n", string(content))
}

func TestList(t *testing.T) {
	filename := sampleFile(t, sample)

	out, _, err := execute(t, "list", "--file", filename, "-o", "csv")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"ID,Name,Sex,Age,Math,Chinese,English",
		"1,Alice,F,20,88.5,91.0,76.0",
		"2,Bob,M,21,59.0,60.0,62.0",
		"3,Carol,F,19,95.0,89.0,90.0",
		"",
	}, "\n"), out)
}

func TestList_Sorted(t *testing.T) {
	filename := sampleFile(t, sample)

	out, _, err := execute(t, "list", "--file", filename, "-o", "csv", "--sort", "math", "--reverse")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "3,Carol"))
	assert.True(t, strings.HasPrefix(lines[3], "2,Bob"))
}

func TestList_UnknownSortField(t *testing.T) {
	filename := sampleFile(t, sample)

	_, _, err := execute(t, "list", "--file", filename, "--sort", "name")
	assert.ErrorIs(t, err, record.ErrUnknownField)
}

func TestList_Empty(t *testing.T) {
	filename := sampleFile(t, record.Header+"\n")

	out, _, err := execute(t, "list", "--file", filename)
	require.NoError(t, err)
	assert.Equal(t, noStudents+"\n", out)

	out, _, err = execute(t, "list", "--file", filename, "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestList_BadFormat(t *testing.T) {
	filename := sampleFile(t, sample)

	_, _, err := execute(t, "list", "--file", filename, "-o", "xml")
	assert.ErrorContains(t, err, "bad format 'xml'")
}

func TestList_MissingFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing.csv")

	_, _, err := execute(t, "list", "--file", filename)
	var ioErr *store.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestList_ParseErrorPolicy(t *testing.T) {
	filename := sampleFile(t, sample+"4,Dan,M,x,1,2,3\n")

	_, _, err := execute(t, "list", "--file", filename)
	var parseErr *store.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 5, parseErr.Line)

	out, stderr, err := execute(t, "list", "--file", filename, "--policy", "lenient", "-o", "csv")
	require.NoError(t, err)
	assert.NotContains(t, out, "Dan")
	assert.Contains(t, stderr, "skip line")
}

func TestList_ShapeErrorIsLogged(t *testing.T) {
	filename := sampleFile(t, sample+"bad,line\n")

	out, stderr, err := execute(t, "list", "--file", filename, "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "3,Carol")
	assert.Contains(t, stderr, "skip line")
	assert.Contains(t, stderr, "line=5")
}

func TestFind(t *testing.T) {
	filename := sampleFile(t, sample)

	out, _, err := execute(t, "find", "--file", filename, "--min", "88.5", "--max", "95", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "1,Alice")
	assert.Contains(t, out, "3,Carol")
	assert.NotContains(t, out, "2,Bob")
}

func TestFind_OtherField(t *testing.T) {
	filename := sampleFile(t, sample)

	out, _, err := execute(t, "find", "--file", filename, "--field", "age", "--min", "21", "--max", "21", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "2,Bob")
	assert.NotContains(t, out, "Alice")
}

func TestFind_NoResults(t *testing.T) {
	filename := sampleFile(t, sample)

	out, _, err := execute(t, "find", "--file", filename, "--min", "100", "--max", "0")
	require.NoError(t, err)
	assert.Equal(t, noMatches+"\n", out)
}

func TestFind_RequiresBounds(t *testing.T) {
	filename := sampleFile(t, sample)

	_, _, err := execute(t, "find", "--file", filename, "--min", "10")
	assert.Error(t, err)
}

func TestMatch(t *testing.T) {
	filename := sampleFile(t, sample)

	out, _, err := execute(t, "match", `{"sex":"F"}`, "--file", filename, "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "1,Alice")
	assert.Contains(t, out, "3,Carol")
	assert.NotContains(t, out, "Bob")

	out, _, err = execute(t, "match", `{"sex":"F"}`, "--file", filename, "-o", "csv", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1,Alice")
	assert.NotContains(t, out, "Carol")
}

func TestMatch_BadFilter(t *testing.T) {
	filename := sampleFile(t, sample)

	_, _, err := execute(t, "match", `{sex`, "--file", filename)
	assert.ErrorContains(t, err, "bad filter")
}

func TestStats(t *testing.T) {
	filename := sampleFile(t, sample)

	out, _, err := execute(t, "stats", "--file", filename)
	require.NoError(t, err)
	assert.Contains(t, out, "Students: 3")
	assert.Contains(t, out, "80.83")
}

func TestStats_CSV(t *testing.T) {
	filename := sampleFile(t, sample)

	out, _, err := execute(t, "stats", "--file", filename, "-o", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Field,Count,Min,Max,Mean\n"))
	assert.Contains(t, out, "math,3,59.00,95.00,80.83\n")
	assert.NotContains(t, out, "Students:")
}

type fakeReader struct {
	lines   []string
	prompts []string
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeReader) SetPrompt(prompt string) {
	f.prompts = append(f.prompts, prompt)
}

func runFakeMenu(t *testing.T, filename string, lines ...string) (string, string, *fakeReader) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := &cobra.Command{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	opts := &Options{
		File:   filename,
		Output: "csv",
		loader: &store.Loader{},
	}
	rl := &fakeReader{lines: lines}

	require.NoError(t, runMenu(cmd, opts, rl))
	return stdout.String(), stderr.String(), rl
}

func TestMenu(t *testing.T) {
	filename := sampleFile(t, sample)

	out, _, rl := runFakeMenu(t, filename,
		"1", "",
		"2", "english", "90", "100", "",
		"3", "",
		"0",
	)

	assert.Contains(t, out, "Using student data file")
	assert.Contains(t, out, "2,Bob,M,21")
	assert.Contains(t, out, "3,Carol,F,19,95.0,89.0,90.0")
	assert.Contains(t, out, "Students: 3")
	assert.True(t, strings.HasSuffix(out, "Bye\n"))
	assert.Contains(t, rl.prompts, pausePrompt)
	assert.Contains(t, rl.prompts, "min: ")
}

func TestMenu_CreatesFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "data", "stu.csv")

	out, _, _ := runFakeMenu(t, filename, "1", "", "0")

	assert.Contains(t, out, "Created new student data file")
	assert.Contains(t, out, noStudents)
}

func TestMenu_BadInput(t *testing.T) {
	filename := sampleFile(t, sample)

	out, stderr, _ := runFakeMenu(t, filename,
		"9", "",
		"2", "", "abc", "",
		"2", "name", "",
	)

	assert.Contains(t, out, "Unknown option '9'")
	assert.Contains(t, stderr, "'abc' is not a number")
	assert.Contains(t, stderr, "unknown field")
}

func TestMenu_EndOfInput(t *testing.T) {
	filename := sampleFile(t, sample)

	out, _, _ := runFakeMenu(t, filename, "2", "math")

	assert.NotContains(t, out, "Bye")
}
