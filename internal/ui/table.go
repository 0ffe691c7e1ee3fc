package ui

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// RenderTable writes header and rows as an aligned table. The active
// column, when present, carries "Yes"/"No" the way the configuration
// screens display it.
func RenderTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writeRow(tw, header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(tw, row); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) error {
	for i, cell := range cells {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\t"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, cell); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// YesNo renders an active flag the way the editor's tables show it.
func YesNo(active bool) string {
	if active {
		return "Yes"
	}
	return "No"
}
