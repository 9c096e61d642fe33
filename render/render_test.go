package render

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/record"
)

var sample = []record.Record{
	{Id: 1, Name: "Alice", Sex: "F", Age: 20, Math: 88.5, Chinese: 91, English: 76},
	{Id: 3, Name: "Carol", Sex: "F", Age: 19, Math: 95, Chinese: 89, English: 90},
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantOut []string
	}{
		{
			name:    "default is table",
			format:  "",
			wantOut: []string{"ID", "Alice", "88.5", "91.0", "Carol"},
		},
		{
			name:    "markdown",
			format:  "markdown",
			wantOut: []string{"| ID |", "| Alice |"},
		},
		{
			name:    "tsv",
			format:  "tsv",
			wantOut: []string{"ID\tName\tSex\tAge\tMath\tChinese\tEnglish\n", tsvRule, "1\tAlice\tF\t20\t88.5\t91.0\t76.0\n"},
		},
		{
			name:    "csv",
			format:  "csv",
			wantOut: []string{"ID,Name,Sex,Age,Math,Chinese,English\n", "3,Carol,F,19,95.0,89.0,90.0\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, Render(buf, tt.format, sample))

			for _, want := range tt.wantOut {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRender_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, "json", sample))

	decoded := []record.Record{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sample, decoded)
}

func TestRender_JSONEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Render(buf, "json", nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, "xml", sample)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv|json|markdown|md|table|tsv")
}

func TestRenderSummary(t *testing.T) {
	summary := query.Summarize(sample)

	t.Run("table", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, RenderSummary(buf, "table", summary))
		assert.Contains(t, buf.String(), "Students: 2")
		assert.Contains(t, buf.String(), "91.75")
	})

	t.Run("json", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, RenderSummary(buf, "json", summary))

		decoded := query.Summary{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, summary, decoded)
	})

	t.Run("empty", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, RenderSummary(buf, "table", query.Summarize(nil)))
		assert.Equal(t, "Students: 0\n", buf.String())
	})

	t.Run("csv", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, RenderSummary(buf, "csv", summary))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 6)
		assert.Equal(t, "Field,Count,Min,Max,Mean", lines[0])
		assert.Equal(t, "math,2,88.50,95.00,91.75", lines[3])
	})

	t.Run("tsv", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, RenderSummary(buf, "tsv", summary))
		assert.Contains(t, buf.String(), "age\t2\t19.00\t20.00\t19.50\n")
	})

	t.Run("markdown", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, RenderSummary(buf, "md", summary))
		assert.True(t, strings.HasPrefix(buf.String(), "Students: 2\n|"))
		assert.Contains(t, buf.String(), "91.75")
	})

	t.Run("unknown format", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := RenderSummary(buf, "xml", summary)
		assert.ErrorContains(t, err, "bad format 'xml'")
		assert.Empty(t, buf.String())
	})
}
