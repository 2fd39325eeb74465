package appcore

import (
	"io"

	"almanac/internal/writers"
	"almanac/pkg/api"
)

// FormatWriter starts the writers registered for one payload kind.
type FormatWriter[T any] struct {
	Kind   string
	Format string
	Header bool
}

func (w FormatWriter[T]) Start(out io.Writer, bufSize int) (chan<- T, <-chan error) {
	return writers.Start[T](out, w.Kind, w.Format, w.Header, bufSize)
}

func NewResultWriterFactory(format string, header bool) FormatWriter[api.ResultV1] {
	return FormatWriter[api.ResultV1]{Kind: writers.KindResult, Format: format, Header: header}
}

func NewHopWriterFactory(format string, header bool) FormatWriter[api.HopV1] {
	return FormatWriter[api.HopV1]{Kind: writers.KindHop, Format: format, Header: header}
}

func NewLookupWriterFactory(format string, header bool) FormatWriter[api.LookupV1] {
	return FormatWriter[api.LookupV1]{Kind: writers.KindLookup, Format: format, Header: header}
}
