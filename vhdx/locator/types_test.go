package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetDelete(t *testing.T) {
	l := New()
	l.Set("b", "1")
	l.Set("a", "2")
	l.Set("c", "3")
	l.Set("b", "4")

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"b", "a", "c"}, l.Keys(), "overwrite keeps position")

	v, ok := l.Get("b")
	require.True(t, ok)
	assert.Equal(t, "4", v)

	assert.True(t, l.Delete("a"))
	assert.False(t, l.Delete("a"))
	assert.Equal(t, []string{"b", "c"}, l.Keys())

	v, ok = l.Get("c")
	require.True(t, ok, "index must follow the shifted entries")
	assert.Equal(t, "3", v)

	_, ok = l.Get("a")
	assert.False(t, ok)
}

func TestZeroValueLocator(t *testing.T) {
	var l Locator
	_, ok := l.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 20, l.Size())

	l.Set("x", "y")
	assert.Equal(t, map[string]string{"x": "y"}, l.Map())
}

func TestEntriesIsCopy(t *testing.T) {
	l := New()
	l.Set("k", "v")
	e := l.Entries()
	e[0].Value = "changed"

	v, _ := l.Get("k")
	assert.Equal(t, "v", v)
}

func TestSizeFormula(t *testing.T) {
	tests := []struct {
		name    string
		entries [][2]string
		want    int
	}{
		{"empty", nil, 20},
		{"volume path", [][2]string{{"volume_path", `C:\disk.vhdx`}}, 78},
		{"empty strings", [][2]string{{"", ""}}, 32},
		{"two", [][2]string{{"ab", "c"}, {"d", "efg"}}, 20 + 24 + 2*(3+4)},
		{"surrogate pair counts twice", [][2]string{{"k", "\U0001F4BE"}}, 20 + 12 + 2*(1+2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			for _, kv := range tt.entries {
				l.Set(kv[0], kv[1])
			}
			assert.Equal(t, tt.want, l.Size())
		})
	}
}
