package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"sigs.k8s.io/yaml"
)

// Formatter renders command results on the terminal or into a CSV file.
type Formatter struct {
	out      io.Writer
	notifier *Notifier
	options  Options
}

// NewFormatter creates a formatter writing tables and payloads to out.
func NewFormatter(out io.Writer, notifier *Notifier, options Options) *Formatter {
	return &Formatter{out: out, notifier: notifier, options: options}
}

// MachineReadable reports whether output is JSON or YAML.
func (f *Formatter) MachineReadable() bool {
	return f.options.MachineReadable()
}

// Render writes resp according to the options: raw JSON or YAML when asked
// for, a CSV file for list views with --csv, otherwise a table laid out by
// view.
func (f *Formatter) Render(resp *sdk.Response, view View) error {
	payload := resp.Payload()
	switch f.options.Rendering() {
	case OutputFormatJSON:
		return f.JSON(payload)
	case OutputFormatYAML:
		return f.YAML(payload)
	}

	if !view.IsList() {
		record, err := DecodeRecord(payload)
		if err != nil {
			return err
		}
		return f.KeyValue(record)
	}

	records, err := DecodeRecords(payload)
	if err != nil {
		return err
	}
	if f.options.CSV != "" {
		return f.CSV(records, view)
	}
	return f.List(records, Page{Offset: resp.Offset, Limit: resp.Limit, Total: resp.Total}, view)
}

// JSON writes the payload unmodified apart from indentation.
func (f *Formatter) JSON(payload json.RawMessage) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	buf.WriteByte('\n')
	_, err := f.out.Write(buf.Bytes())
	return err
}

// YAML writes the payload converted to YAML, keeping member order.
func (f *Formatter) YAML(payload json.RawMessage) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	out, err := yaml.JSONToYAML(payload)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = f.out.Write(out)
	return err
}

// KeyValue writes one record as numbered Attribute/Value rows.
func (f *Formatter) KeyValue(record Record) error {
	fmt.Fprintln(f.out)
	t := newTable(f.out, "#", "Attribute", "Value")
	i := 1
	for pair := record.Oldest(); pair != nil; pair = pair.Next() {
		t.AppendRow(table.Row{i, text.FgCyan.Sprint(pair.Key), Classify(pair.Value).Render()})
		i++
	}
	t.Render()
	fmt.Fprintln(f.out)
	return nil
}

// List writes records as a table with the view's columns, preceded by a
// pagination banner when the server holds more than one page.
func (f *Formatter) List(records []Record, page Page, view View) error {
	if page.Paginated() {
		fmt.Fprintln(f.out, page.Banner())
	}
	fmt.Fprintln(f.out)

	headers := make([]string, 0, len(view.Columns)+1)
	headers = append(headers, "#")
	for _, c := range view.Columns {
		headers = append(headers, c.Header)
	}
	t := newTable(f.out, headers...)

	pageLimit := page.Limit
	if pageLimit <= 0 {
		pageLimit = f.options.EffectiveLimit()
	}
	for i, record := range records {
		row := make(table.Row, 0, len(headers))
		row = append(row, strconv.Itoa(RowIndex(f.options.Page, pageLimit, i)))
		for _, c := range view.Columns {
			row = append(row, c.cell(record))
		}
		t.AppendRow(row)
	}
	t.Render()
	fmt.Fprintln(f.out)

	found := len(records)
	if page.Total > found {
		found = page.Total
	}
	f.notifier.Success(fmt.Sprintf("%d %s found.", found, view.Noun))
	return nil
}

// CSV exports records to the --csv file and reports how many were written.
func (f *Formatter) CSV(records []Record, view View) error {
	n, err := WriteCSV(f.options.CSV, records)
	if err != nil {
		return &OutputWriteError{Path: f.options.CSV, Reason: err}
	}
	f.notifier.Success(fmt.Sprintf("Successfully saved %d %s to '%s'", n, view.Noun, f.options.CSV))
	return nil
}

// plainStyle draws tables without borders: a header, a dashed rule, rows.
var plainStyle = func() table.Style {
	s := table.StyleDefault
	s.Name = "Plain"
	s.Options = table.Options{SeparateHeader: true}
	s.Box.PaddingLeft = ""
	s.Box.PaddingRight = "   "
	s.Box.MiddleHorizontal = "-"
	s.Format.Header = text.FormatDefault
	s.Color.Header = text.Colors{text.FgHiBlack}
	return s
}()

func newTable(out io.Writer, headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(plainStyle)
	row := make(table.Row, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	t.AppendHeader(row)
	return t
}
