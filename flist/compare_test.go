package flist_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/percona-lab/forward-list/flist"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b *flist.List[int]
		want bool
	}{
		{"both empty", flist.New[int](), flist.New[int](), true},
		{"equal elements", flist.Of(1, 2, 3), flist.Of(1, 2, 3), true},
		{"different values", flist.Of(1, 2, 3), flist.Of(1, 9, 3), false},
		{"strict prefix", flist.Of(1, 2), flist.Of(1, 2, 3), false},
		{"empty vs non-empty", flist.New[int](), flist.Of(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, flist.Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, flist.Equal(tt.b, tt.a))
		})
	}
}

func TestEqualFunc(t *testing.T) {
	t.Parallel()

	a := flist.Of(1, 2, 3)
	b := flist.Of("1", "2", "3")

	eq := func(n int, s string) bool { return strconv.Itoa(n) == s }

	assert.True(t, flist.EqualFunc(a, b, eq))
	assert.False(t, flist.EqualFunc(flist.Of(1, 2), b, eq))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b *flist.List[int]
		want int
	}{
		{"both empty", flist.New[int](), flist.New[int](), 0},
		{"equal", flist.Of(1, 2, 3), flist.Of(1, 2, 3), 0},
		{"first differing element less", flist.Of(1, 2, 3), flist.Of(1, 3, 0), -1},
		{"first differing element greater", flist.Of(2), flist.Of(1, 9), +1},
		{"strict prefix is less", flist.Of(1, 2), flist.Of(1, 2, 3), -1},
		{"empty is less than anything", flist.New[int](), flist.Of(0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, flist.Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, flist.Compare(tt.b, tt.a))
		})
	}
}

func TestCompareFunc(t *testing.T) {
	t.Parallel()

	a := flist.Of(1, 2)
	b := flist.Of("1", "03")

	cmp := func(n int, s string) int {
		m, err := strconv.Atoi(s)
		if err != nil {
			t.Fatalf("bad fixture: %v", err)
		}
		switch {
		case n < m:
			return -1
		case n > m:
			return +1
		}
		return 0
	}

	assert.Equal(t, -1, flist.CompareFunc(a, b, cmp))
	assert.Equal(t, 0, flist.CompareFunc(flist.Of(1, 3), b, cmp))
}

func TestLess(t *testing.T) {
	t.Parallel()

	assert.True(t, flist.Less(flist.Of("a", "b"), flist.Of("a", "c")))
	assert.True(t, flist.Less(flist.Of("a"), flist.Of("a", "a")))
	assert.False(t, flist.Less(flist.Of("b"), flist.Of("a", "z")))
	assert.False(t, flist.Less(flist.Of(1, 2), flist.Of(1, 2)))
}
