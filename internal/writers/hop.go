package writers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"almanac/pkg/api"
)

func init() {
	Register(KindHop, FormatText, renderHopsText)
	Register(KindHop, FormatJSON, func(w io.Writer, _ bool, payload any) error {
		return encodePretty(w, payload)
	})
}

func renderHopsText(w io.Writer, header bool, payload any) error {
	hs, ok := payload.([]api.HopV1)
	if !ok {
		return fmt.Errorf("hop text writer: unexpected payload %T", payload)
	}
	rows := make([][]string, 0, len(hs))
	for _, h := range hs {
		rows = append(rows, []string{
			h.Source, h.Mode, strconv.Itoa(h.Index), h.From, h.To,
			strconv.Itoa(len(h.Intervals)), strconv.FormatInt(h.Count, 10), strconv.FormatInt(h.Lowest, 10),
			formatIntervals(h.Intervals),
		})
	}
	return renderTable(w, header, []string{"SOURCE", "MODE", "HOP", "FROM", "TO", "INTERVALS", "COUNT", "LOWEST", "SET"}, rows)
}

func formatIntervals(ivs []api.IntervalV1) string {
	parts := make([]string, len(ivs))
	for i, iv := range ivs {
		parts[i] = fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
	}
	return strings.Join(parts, " ")
}
