package smartlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewList(t *testing.T) {
	l := New[string]()
	require.NotNil(t, l)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, DefaultCapacity, l.Cap())
}

func TestAddThenGetLast(t *testing.T) {
	l := New[string]()
	for i, name := range []string{"a.c", "b.c", "sub/c.c"} {
		l.Add(name)
		assert.Equal(t, i+1, l.Len())
		assert.Equal(t, name, l.Get(l.Len()-1))
	}
}

func TestCapacityGrowth(t *testing.T) {
	tests := []struct {
		name    string
		appends int
		wantCap int
	}{
		{"within initial capacity", 16, 16},
		{"one past initial", 17, 32},
		{"exactly doubled", 32, 32},
		{"needs two doublings", 33, 64},
		{"larger", 200, 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			for i := 0; i < tt.appends; i++ {
				l.Add(i)
			}
			assert.Equal(t, tt.appends, l.Len())
			assert.Equal(t, tt.wantCap, l.Cap())
			assert.GreaterOrEqual(t, l.Cap(), l.Len())
			for i := 0; i < tt.appends; i++ {
				assert.Equal(t, i, l.Get(i))
			}
		})
	}
}

func TestEnsureCapacityDoublesUntilSufficient(t *testing.T) {
	l := New[int]()
	l.EnsureCapacity(100)
	assert.Equal(t, 128, l.Cap())
	assert.Equal(t, 0, l.Len())

	l.EnsureCapacity(10)
	assert.Equal(t, 128, l.Cap(), "shrinking requests are ignored")
}

func TestEnsureCapacityJumpsToMax(t *testing.T) {
	saved := MaxCapacity
	MaxCapacity = 100
	defer func() { MaxCapacity = saved }()

	l := New[int]()
	l.EnsureCapacity(60)
	assert.Equal(t, 100, l.Cap())
}

func TestEnsureCapacityOverflowPanics(t *testing.T) {
	saved := MaxCapacity
	MaxCapacity = 20
	defer func() { MaxCapacity = saved }()

	l := New[int]()
	for i := 0; i < 20; i++ {
		l.Add(i)
	}
	assert.Equal(t, 20, l.Cap())
	assert.Panics(t, func() { l.Add(20) })
	assert.Panics(t, func() { l.EnsureCapacity(-1) })
}

func TestGetOutOfRangePanics(t *testing.T) {
	l := New[string]()
	l.Add("x.c")

	assert.Panics(t, func() { l.Get(-1) })
	assert.Panics(t, func() { l.Get(1) })
	assert.Panics(t, func() { l.Set(1, "y.c") })
	assert.NotPanics(t, func() { l.Get(0) })
}

func TestDelSwapsLast(t *testing.T) {
	l := New[string]()
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Add(s)
	}

	l.Del(1)
	assert.Equal(t, []string{"a", "d", "c"}, l.Items())

	l.Del(2)
	assert.Equal(t, []string{"a", "d"}, l.Items())
	assert.Equal(t, "", l.items[2], "slot beyond Len must be zeroed")
}

func TestDelKeepOrderShifts(t *testing.T) {
	l := New[string]()
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Add(s)
	}

	l.DelKeepOrder(1)
	assert.Equal(t, []string{"a", "c", "d"}, l.Items())
	assert.Equal(t, "", l.items[3])

	l.DelKeepOrder(2)
	assert.Equal(t, []string{"a", "c"}, l.Items())

	assert.Panics(t, func() { l.DelKeepOrder(2) })
}

func TestAddAll(t *testing.T) {
	a := New[int]()
	b := New[int]()
	for i := 0; i < 10; i++ {
		a.Add(i)
		b.Add(100 + i)
	}

	a.AddAll(b)
	assert.Equal(t, 20, a.Len())
	assert.Equal(t, 32, a.Cap())
	assert.Equal(t, 100, a.Get(10))

	a.AddAll(New[int]())
	a.AddAll(nil)
	assert.Equal(t, 20, a.Len())
}

func TestClearAndWipe(t *testing.T) {
	l := New[string]()
	l.Add("a")
	l.Add("b")

	var seen []string
	l.Wipe(func(s string) { seen = append(seen, s) })
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, DefaultCapacity, l.Cap())
}

func TestFreeAll(t *testing.T) {
	l := New[string]()
	l.Add("a")
	l.Add("b")

	released := 0
	l.FreeAll(func(string) { released++ })
	assert.Equal(t, 2, released)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Cap())
}

func TestSortAndMakeUniq(t *testing.T) {
	l := New[string]()
	for _, s := range []string{"src", "lib", "src", "test", "lib"} {
		l.Add(s)
	}

	l.Sort(func(a, b string) bool { return a < b })
	assert.Equal(t, []string{"lib", "lib", "src", "src", "test"}, l.Items())
	assert.Equal(t, 2, l.Duplicates(strings.Compare))

	var dropped []string
	l.MakeUniq(strings.Compare, func(s string) { dropped = append(dropped, s) })
	assert.Equal(t, []string{"lib", "src", "test"}, l.Items())
	assert.Equal(t, []string{"lib", "src"}, dropped)
	assert.Equal(t, 0, l.Duplicates(strings.Compare))
}

func TestIndexAndContains(t *testing.T) {
	l := New[string]()
	l.Add("src")
	l.Add("lib")

	assert.Equal(t, 1, l.Index(func(s string) bool { return s == "lib" }))
	assert.Equal(t, -1, l.Index(func(s string) bool { return s == "LIB" }))
	assert.True(t, l.Contains(func(s string) bool { return s == "src" }))
}
