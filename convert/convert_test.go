package convert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	id   int
	data []byte
}

type namedBytes []byte

func TestIfDowncastInto_Match(t *testing.T) {
	src := []byte("shared")
	calls := 0
	var got []byte

	ran := IfDowncastInto[[]byte](src, func(b []byte) {
		calls++
		got = b
	})

	require.True(t, ran)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "shared", string(got))
	// The backing array is handed over, not copied.
	assert.Same(t, &src[0], &got[0])
}

func TestIfDowncastInto_Mismatch(t *testing.T) {
	src := "still mine"
	calls := 0

	ran := IfDowncastInto[[]byte](src, func([]byte) { calls++ })

	require.False(t, ran)
	assert.Zero(t, calls)
	assert.Equal(t, "still mine", src)
}

func TestIfDowncastInto_Struct(t *testing.T) {
	in := payload{id: 7, data: []byte{1, 2, 3}}
	var got payload

	ran := IfDowncastInto[payload](in, func(p payload) { got = p })

	require.True(t, ran)
	assert.Equal(t, in, got)
	assert.Equal(t, 7, in.id, "source value must stay usable")
}

func TestIfDowncastInto_ExactTypeOnly(t *testing.T) {
	tests := []struct {
		name string
		ran  bool
	}{
		{"named slice is not []byte", IfDowncastInto[[]byte](namedBytes("x"), func([]byte) {})},
		{"[]byte is not named slice", IfDowncastInto[namedBytes]([]byte("x"), func(namedBytes) {})},
		{"concrete is not interface", IfDowncastInto[fmt.Stringer](stringer{}, func(fmt.Stringer) {})},
		{"concrete is not any", IfDowncastInto[any](42, func(any) {})},
		{"int is not int64", IfDowncastInto[int64](42, func(int64) {})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.ran)
		})
	}
}

func TestIfDowncastInto_InterfaceToSameInterface(t *testing.T) {
	var s fmt.Stringer = stringer{}
	calls := 0

	ran := IfDowncastInto[fmt.Stringer](s, func(fmt.Stringer) { calls++ })

	assert.True(t, ran)
	assert.Equal(t, 1, calls)
}

func TestDowncastInto(t *testing.T) {
	n, ok := DowncastInto[string]("abc", func(s string) int { return len(s) })
	require.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = DowncastInto[string]([]byte("abc"), func(s string) int { return len(s) })
	require.False(t, ok)
	assert.Zero(t, n)
}

func TestSameType(t *testing.T) {
	assert.True(t, SameType[[]byte, []byte]())
	assert.True(t, SameType[payload, payload]())
	assert.False(t, SameType[[]byte, namedBytes]())
	assert.False(t, SameType[stringer, fmt.Stringer]())
}

type stringer struct{}

func (stringer) String() string { return "stringer" }
