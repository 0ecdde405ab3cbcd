package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// summaryTable renders the two-column field/value tables the CLI prints
// after a run. Field names stay left-aligned; numeric value columns can be
// pushed right.
type summaryTable struct {
	rows        []table.Row
	rightValues bool
}

func (s *summaryTable) add(field, value string) {
	s.rows = append(s.rows, table.Row{field, value})
}

func (s *summaryTable) render() string {
	if len(s.rows) == 0 {
		return ""
	}
	valueAlign := text.AlignLeft
	if s.rightValues {
		valueAlign = text.AlignRight
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Field", "Value"})
	for _, row := range s.rows {
		tw.AppendRow(row)
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: valueAlign, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
