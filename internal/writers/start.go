package writers

import (
	"encoding/json"
	"io"

	"almanac/internal/jsonlutil"
)

// Start spins up a writer goroutine for items of type T. JSONL lines are
// written as items arrive; text and JSON are rendered once the channel is
// closed. The error channel yields exactly one value.
func Start[T any](out io.Writer, kind, format string, header bool, bufSize int) (chan<- T, <-chan error) {
	if format == FormatJSONL {
		return jsonlutil.Start[T](out, bufSize,
			func(enc *json.Encoder, v T) error { return enc.Encode(v) },
			IsBrokenPipe,
		)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)

	go func() {
		buf := make([]T, 0, bufSize)
		for v := range in {
			buf = append(buf, v)
		}
		err := Render(kind, format, out, header, buf)
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}
