package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/record"
)

// RenderSummary writes aggregates in any of Formats. Table and markdown
// start with a "Students: N" line. CSV and TSV carry the count in every row.
func RenderSummary(w io.Writer, format string, summary query.Summary) error {

	if format == "" {
		format = DefaultFormat
	}
	if err := Validate(format); err != nil {
		return err
	}

	switch format {
	case "json":
		err := json.MarshalWrite(w, summary, jsontext.WithIndent("  "), json.Deterministic(true))
		if err != nil {
			return fmt.Errorf("json encode summary: %w", err)
		}
		_, err = io.WriteString(w, "\n")
		return err
	case "csv":
		return writeSummaryRows(w, ',', summary)
	case "tsv":
		return writeSummaryRows(w, '\t', summary)
	}

	if _, err := fmt.Fprintf(w, "Students: %d\n", summary.Count); err != nil {
		return err
	}
	if summary.Count == 0 {
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Min", "Max", "Mean"})
	for _, field := range record.Fields {
		fs := summary.Fields[field.String()]
		t.AppendRow(table.Row{field.String(), formatNumber(fs.Min), formatNumber(fs.Max), formatNumber(fs.Mean)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	if format == "markdown" || format == "md" {
		t.RenderMarkdown()
		return nil
	}
	t.Render()

	return nil
}

func writeSummaryRows(w io.Writer, comma rune, summary query.Summary) error {
	c := csv.NewWriter(w)
	c.Comma = comma

	if err := c.Write([]string{"Field", "Count", "Min", "Max", "Mean"}); err != nil {
		return err
	}
	if summary.Count > 0 {
		count := strconv.Itoa(summary.Count)
		for _, field := range record.Fields {
			fs := summary.Fields[field.String()]
			row := []string{field.String(), count, formatNumber(fs.Min), formatNumber(fs.Max), formatNumber(fs.Mean)}
			if err := c.Write(row); err != nil {
				return err
			}
		}
	}

	c.Flush()
	return c.Error()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
