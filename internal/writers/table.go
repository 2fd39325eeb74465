package writers

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// errWriter remembers the first write error; tablewriter drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// renderTable writes a borderless, left-aligned table of rows.
func renderTable(w io.Writer, header bool, cols []string, rows [][]string) error {
	ew := &errWriter{w: w}
	table := tablewriter.NewWriter(ew)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	if header {
		table.SetHeader(cols)
	}
	table.AppendBulk(rows)
	table.Render()
	return ew.err
}
