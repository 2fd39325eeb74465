package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWritesOneLinePerValue(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[int](&buf, 1, func(enc *json.Encoder, v int) error {
		return enc.Encode(map[string]int{"v": v})
	}, func(error) bool { return false })
	for i := 0; i < 3; i++ {
		in <- i
	}
	close(in)
	require.NoError(t, <-done)
	assert.Equal(t, "{\"v\":0}\n{\"v\":1}\n{\"v\":2}\n", buf.String())
}

func TestStartDrainsAfterError(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start[int](&bytes.Buffer{}, 1, func(*json.Encoder, int) error { return boom },
		func(error) bool { return false })
	for i := 0; i < 10; i++ {
		in <- i // must not block once the encoder has failed
	}
	close(in)
	assert.ErrorIs(t, <-done, boom)
}
