package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"almanac/pkg/api"
)

var sampleResults = []api.ResultV1{
	{Source: "a.txt", Mode: "seeds", Start: "seed", Terminal: "location", Hops: 7, Lowest: 35, Count: 4},
	{Source: "a.txt", Mode: "ranges", Start: "seed", Terminal: "location", Hops: 7, Lowest: 46, Count: 27,
		Intervals: []api.IntervalV1{{Start: 46, End: 56}}},
}

func collect[T any](t *testing.T, kind, format string, header bool, items []T) string {
	t.Helper()
	var buf bytes.Buffer
	in, errCh := Start[T](&buf, kind, format, header, 4)
	for _, it := range items {
		in <- it
	}
	close(in)
	require.NoError(t, <-errCh)
	return buf.String()
}

func TestResultText(t *testing.T) {
	out := collect(t, KindResult, FormatText, true, sampleResults)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "LOWEST")
	assert.Contains(t, lines[1], "35")
	assert.Contains(t, lines[2], "46")
	assert.Contains(t, out, "LENGTH", "interval table follows when intervals are present")

	noHdr := collect(t, KindResult, FormatText, false, sampleResults[:1])
	assert.NotContains(t, noHdr, "LOWEST")
	assert.Contains(t, noHdr, "seed → location")
}

func TestResultJSON(t *testing.T) {
	out := collect(t, KindResult, FormatJSON, true, sampleResults)
	var got []api.ResultV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, sampleResults, got)
}

func TestResultJSONLStreamsOneLinePerItem(t *testing.T) {
	out := collect(t, KindResult, FormatJSONL, true, sampleResults)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	var r api.ResultV1
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &r))
	assert.Equal(t, sampleResults[1], r)
}

func TestHopText(t *testing.T) {
	hops := []api.HopV1{{Source: "a", Mode: "seeds", Index: 0, From: "seed", To: "soil", Count: 2, Lowest: 13,
		Intervals: []api.IntervalV1{{Start: 13, End: 14}, {Start: 81, End: 82}}}}
	out := collect(t, KindHop, FormatText, true, hops)
	assert.Contains(t, out, "[13,14) [81,82)")
	assert.Contains(t, out, "FROM")
}

func TestLookupText(t *testing.T) {
	ls := []api.LookupV1{{Source: "a", Value: 79, Result: 81, Steps: []api.StepV1{{Category: "seed", Value: 79}, {Category: "soil", Value: 81}}}}
	out := collect(t, KindLookup, FormatText, false, ls)
	assert.Contains(t, out, "seed 79, soil 81")
}

func TestUnknownFormat(t *testing.T) {
	err := Render(KindResult, "fasta", io.Discard, true, sampleResults)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown result format "fasta"`)

	err = Render(KindHop, FormatText, io.Discard, true, sampleResults)
	assert.Error(t, err, "payload of the wrong kind")
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "jsonl", "text"}, Formats())
	assert.True(t, ValidFormat("jsonl"))
	assert.False(t, ValidFormat("tsv"))
}

type pipeWriter struct{}

func (pipeWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestBrokenPipeIsSilent(t *testing.T) {
	in, errCh := Start[api.ResultV1](pipeWriter{}, KindResult, FormatText, true, 1)
	in <- sampleResults[0]
	close(in)
	assert.NoError(t, <-errCh)

	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(errors.New("disk full")))
	assert.False(t, IsBrokenPipe(nil))
}
