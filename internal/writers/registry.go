// internal/writers/registry.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Payload kinds.
const (
	KindResult = "result"
	KindHop    = "hop"
	KindLookup = "lookup"
)

// Renderer writes a whole batch of one payload kind.
type Renderer func(w io.Writer, header bool, payload any) error

// Batch renderers (kind → format → handler). Register in init() blocks from
// the per-kind files. JSONL never goes through here; it is streamed.
var renderers = map[string]map[string]Renderer{}

// Register adds or replaces a renderer (last wins).
func Register(kind, format string, fn Renderer) {
	if renderers[kind] == nil {
		renderers[kind] = map[string]Renderer{}
	}
	renderers[kind][format] = fn
}

// Render dispatches payload to the renderer registered for kind and format.
func Render(kind, format string, w io.Writer, header bool, payload any) error {
	fn, ok := renderers[kind][format]
	if !ok {
		return fmt.Errorf("unknown %s format %q (no writer registered)", kind, format)
	}
	return fn(w, header, payload)
}

// Formats lists every selectable output format.
func Formats() []string {
	seen := map[string]bool{FormatJSONL: true}
	for _, byFormat := range renderers {
		for f := range byFormat {
			seen[f] = true
		}
	}
	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// ValidFormat reports whether format can be selected with --output.
func ValidFormat(format string) bool {
	switch format {
	case FormatText, FormatJSON, FormatJSONL:
		return true
	}
	return false
}

// encodePretty writes v as indented JSON to w.
func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
