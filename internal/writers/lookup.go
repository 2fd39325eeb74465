package writers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"almanac/pkg/api"
)

func init() {
	Register(KindLookup, FormatText, renderLookupsText)
	Register(KindLookup, FormatJSON, func(w io.Writer, _ bool, payload any) error {
		return encodePretty(w, payload)
	})
}

func renderLookupsText(w io.Writer, header bool, payload any) error {
	ls, ok := payload.([]api.LookupV1)
	if !ok {
		return fmt.Errorf("lookup text writer: unexpected payload %T", payload)
	}
	rows := make([][]string, 0, len(ls))
	for _, l := range ls {
		path := make([]string, len(l.Steps))
		for i, s := range l.Steps {
			path[i] = s.Category + " " + strconv.FormatInt(s.Value, 10)
		}
		rows = append(rows, []string{
			l.Source, strconv.FormatInt(l.Value, 10), strconv.FormatInt(l.Result, 10), strings.Join(path, ", "),
		})
	}
	return renderTable(w, header, []string{"SOURCE", "VALUE", "RESULT", "PATH"}, rows)
}
