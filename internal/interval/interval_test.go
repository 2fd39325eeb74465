package interval

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvertedBounds(t *testing.T) {
	_, err := New(5, 4)
	require.ErrorIs(t, err, ErrInvalidInput)

	iv, err := New(4, 4)
	require.NoError(t, err)
	assert.True(t, iv.Empty())
}

func TestFromLength(t *testing.T) {
	iv, err := FromLength(79, 14)
	require.NoError(t, err)
	assert.Equal(t, Interval{79, 93}, iv)

	_, err = FromLength(1, -1)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = FromLength(math.MaxInt64-1, 5)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestIntersectAndPieces(t *testing.T) {
	iv := Interval{10, 20}
	cases := []struct {
		name          string
		cut           Interval
		overlap       Interval
		before, after Interval
	}{
		{"inside", Interval{12, 15}, Interval{12, 15}, Interval{10, 12}, Interval{15, 20}},
		{"covers", Interval{0, 30}, Interval{10, 20}, Interval{10, 10}, Interval{20, 20}},
		{"left edge", Interval{5, 10}, Interval{10, 10}, Interval{10, 10}, Interval{10, 20}},
		{"right edge", Interval{20, 25}, Interval{20, 20}, Interval{10, 20}, Interval{20, 20}},
		{"tail", Interval{18, 40}, Interval{18, 20}, Interval{10, 18}, Interval{20, 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := iv.Intersect(tc.cut)
			if got.Empty() {
				assert.True(t, tc.overlap.Empty())
			} else {
				assert.Equal(t, tc.overlap, got)
			}
			assert.Equal(t, tc.before.Len(), iv.Before(tc.cut).Len())
			assert.Equal(t, tc.after.Len(), iv.After(tc.cut).Len())
			if !tc.before.Empty() {
				assert.Equal(t, tc.before, iv.Before(tc.cut))
			}
			if !tc.after.Empty() {
				assert.Equal(t, tc.after, iv.After(tc.cut))
			}
		})
	}
}

func TestPointsAndPairs(t *testing.T) {
	assert.Equal(t, Set{{79, 80}, {14, 15}}, Points([]int64{79, 14}))

	s, err := Pairs([]int64{79, 14, 55, 13})
	require.NoError(t, err)
	assert.Equal(t, Set{{79, 93}, {55, 68}}, s)
	assert.Equal(t, int64(27), s.Count())

	_, err = Pairs([]int64{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = Pairs([]int64{1, 2, 3, -4})
	var ie *InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Index)
}

func TestValidateReportsIndex(t *testing.T) {
	err := Set{{1, 2}, {7, 3}}.Validate()
	var ie *InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 1, ie.Index)
	assert.Contains(t, err.Error(), "start=7 end=3")
}

func TestNormalizeMergesOverlapAndAdjacency(t *testing.T) {
	in := Set{{20, 25}, {3, 3}, {0, 5}, {5, 8}, {22, 30}, {40, 41}}
	want := Set{{0, 8}, {20, 30}, {40, 41}}
	if diff := cmp.Diff(want, in.Normalize()); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Interval{20, 25}, in[0], "input must not be mutated")
}

func TestMinSkipsEmpty(t *testing.T) {
	v, ok := Set{{-3, -3}, {9, 12}, {4, 5}}.Min()
	require.True(t, ok)
	assert.Equal(t, int64(4), v)

	_, ok = Set{{2, 2}}.Min()
	assert.False(t, ok)
}
