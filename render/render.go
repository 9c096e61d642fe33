// Package render writes records in the output formats offered by the
// command line and the web page.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/fulldump/studentdb/query"
	"github.com/fulldump/studentdb/record"
	"github.com/fulldump/studentdb/utils"
)

const DefaultFormat = "table"

type renderer func(w io.Writer, records []record.Record) error

var renderers = map[string]renderer{
	"table":    renderTable,
	"markdown": renderMarkdown,
	"md":       renderMarkdown,
	"tsv":      renderTSV,
	"csv":      renderCSV,
	"json":     renderJSON,
}

// Formats lists the accepted format names.
func Formats() []string {
	return utils.GetKeys(renderers)
}

func Validate(format string) error {
	if _, ok := renderers[format]; !ok {
		return fmt.Errorf("bad format '%s', must be [%s]", format, strings.Join(Formats(), "|"))
	}
	return nil
}

// Render writes records to w. An empty format means DefaultFormat.
func Render(w io.Writer, format string, records []record.Record) error {
	if format == "" {
		format = DefaultFormat
	}
	if err := Validate(format); err != nil {
		return err
	}
	return renderers[format](w, records)
}

func newTableWriter(w io.Writer, records []record.Record) table.Writer {
	rows := query.ListAll(records)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(rows.Header))
	for i, h := range rows.Header {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, row := range rows.Rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = v
		}
		t.AppendRow(r)
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})

	return t
}

func renderTable(w io.Writer, records []record.Record) error {
	newTableWriter(w, records).Render()
	return nil
}

func renderMarkdown(w io.Writer, records []record.Record) error {
	newTableWriter(w, records).RenderMarkdown()
	return nil
}

const tsvRule = "-----------------------------------------------------"

// renderTSV writes the classic tab separated listing.
func renderTSV(w io.Writer, records []record.Record) error {
	rows := query.ListAll(records)

	lines := []string{
		strings.Join(rows.Header, "\t"),
		tsvRule,
	}
	for _, row := range rows.Rows {
		lines = append(lines, strings.Join(row, "\t"))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func renderCSV(w io.Writer, records []record.Record) error {
	rows := query.ListAll(records)

	c := csv.NewWriter(w)
	if err := c.Write(rows.Header); err != nil {
		return err
	}
	if err := c.WriteAll(rows.Rows); err != nil {
		return err
	}
	return c.Error()
}

func renderJSON(w io.Writer, records []record.Record) error {
	if records == nil {
		records = []record.Record{}
	}
	err := json.MarshalWrite(w, records, jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("json encode records: %w", err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}
