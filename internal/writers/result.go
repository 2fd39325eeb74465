package writers

import (
	"fmt"
	"io"
	"strconv"

	"almanac/pkg/api"
)

func init() {
	Register(KindResult, FormatText, renderResultsText)
	Register(KindResult, FormatJSON, func(w io.Writer, _ bool, payload any) error {
		return encodePretty(w, payload)
	})
}

func renderResultsText(w io.Writer, header bool, payload any) error {
	rs, ok := payload.([]api.ResultV1)
	if !ok {
		return fmt.Errorf("result text writer: unexpected payload %T", payload)
	}
	rows := make([][]string, 0, len(rs))
	var ivRows [][]string
	for _, r := range rs {
		rows = append(rows, []string{
			r.Source, r.Mode, r.Start + " → " + r.Terminal,
			strconv.Itoa(r.Hops), strconv.FormatInt(r.Count, 10), strconv.FormatInt(r.Lowest, 10),
		})
		for _, iv := range r.Intervals {
			ivRows = append(ivRows, []string{
				r.Source, r.Mode,
				strconv.FormatInt(iv.Start, 10), strconv.FormatInt(iv.End, 10), strconv.FormatInt(iv.End-iv.Start, 10),
			})
		}
	}
	if err := renderTable(w, header, []string{"SOURCE", "MODE", "CHAIN", "HOPS", "COUNT", "LOWEST"}, rows); err != nil {
		return err
	}
	if len(ivRows) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return renderTable(w, header, []string{"SOURCE", "MODE", "START", "END", "LENGTH"}, ivRows)
}
