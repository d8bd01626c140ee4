package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/kotaroooo0/facetfish"
)

// Table renders rows with the borderless left-aligned style used by every listing.
type Table struct {
	table  *tablewriter.Table
	header []string
	rows   [][]string
}

func NewTable(w io.Writer, headers []string) *Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
	return &Table{table: table, header: headers}
}

func (t *Table) AddRow(row ...string) {
	t.rows = append(t.rows, row)
}

func (t *Table) Render() error {
	t.table.Header(t.header)
	if err := t.table.Bulk(t.rows); err != nil {
		return err
	}
	return t.table.Render()
}

func renderResults(w io.Writer, results facetfish.SearchResults) error {
	shirts := NewTable(w, []string{"ID", "Name", "Size", "Color"})
	for _, s := range results.Shirts {
		shirts.AddRow(s.ID.String(), s.Name, s.Size.Name, s.Color.Name)
	}
	if err := shirts.Render(); err != nil {
		return fmt.Errorf("render shirts: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	colors := NewTable(w, []string{"Color", "Count"})
	for _, c := range results.ColorCounts {
		colors.AddRow(c.Color.Name, strconv.Itoa(c.Count))
	}
	if err := colors.Render(); err != nil {
		return fmt.Errorf("render color counts: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	sizes := NewTable(w, []string{"Size", "Count"})
	for _, s := range results.SizeCounts {
		sizes.AddRow(s.Size.Name, strconv.Itoa(s.Count))
	}
	if err := sizes.Render(); err != nil {
		return fmt.Errorf("render size counts: %w", err)
	}
	return nil
}

func renderColors(w io.Writer) error {
	t := NewTable(w, []string{"Name", "ID"})
	for _, c := range facetfish.AllColors() {
		t.AddRow(c.Name, c.ID.String())
	}
	return t.Render()
}

func renderSizes(w io.Writer) error {
	t := NewTable(w, []string{"Name", "ID"})
	for _, s := range facetfish.AllSizes() {
		t.AddRow(s.Name, s.ID.String())
	}
	return t.Render()
}
