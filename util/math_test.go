package util

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDivAndMod(t *testing.T) {
	cases := []struct {
		a, b, div, mod int
	}{
		{0, 12, 0, 0},
		{11, 12, 0, 11},
		{12, 12, 1, 0},
		{-1, 12, -1, 11},
		{-12, 12, -1, 0},
		{-13, 12, -2, 11},
		{-25, 12, -3, 11},
		{7, -12, -1, -5},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d by %d", c.a, c.b), func(t *testing.T) {
			assert.Equal(t, c.div, FloorDiv(c.a, c.b))
			assert.Equal(t, c.mod, FloorMod(c.a, c.b))
			assert.Equal(t, c.a, FloorDiv(c.a, c.b)*c.b+FloorMod(c.a, c.b))
		})
	}
}

func TestFloorModSmallTypes(t *testing.T) {
	assert.Equal(t, int8(11), FloorMod(int8(-1), 12))
	assert.Equal(t, int8(-1), FloorDiv(int8(-1), 12))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, 0, Abs(0))
}
