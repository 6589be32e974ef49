package locator

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/textparser/pkg/textparser"
)

func TestNew(t *testing.T) {
	l := New()
	assert.NotNil(t, l)
	assert.Equal(t, 0, l.Len())
}

func TestBindAndMake(t *testing.T) {
	l := New()
	var n int
	l.Bind("counter", func() any {
		n++
		return n
	})

	v, err := l.Make("counter")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Fresh instance every time
	v, err = l.Make("counter")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSingleton(t *testing.T) {
	l := New()
	var n int
	l.Singleton("shared", func() any {
		n++
		return &n
	})

	first, err := l.Make("shared")
	require.NoError(t, err)
	second, err := l.Make("shared")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, n)
}

func TestRebindDropsSharedInstance(t *testing.T) {
	l := New()
	l.Singleton("svc", func() any { return "old" })
	_, err := l.Make("svc")
	require.NoError(t, err)

	l.Singleton("svc", func() any { return "new" })
	v, err := l.Make("svc")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestMakeNotBound(t *testing.T) {
	l := New()
	_, err := l.Make("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotBound)
	assert.Contains(t, err.Error(), "missing")
}

func TestMustMake(t *testing.T) {
	l := New()
	l.Bind("key", func() any { return 42 })
	assert.Equal(t, 42, l.MustMake("key"))
}

func TestMustMakePanic(t *testing.T) {
	l := New()
	assert.PanicsWithValue(t, "locator: name not bound: missing", func() {
		l.MustMake("missing")
	})
}

func TestHasAndUnbind(t *testing.T) {
	l := New()
	l.Singleton("key", func() any { return 1 })
	_, err := l.Make("key")
	require.NoError(t, err)
	assert.True(t, l.Has("key"))

	l.Unbind("key")
	assert.False(t, l.Has("key"))
	_, err = l.Make("key")
	assert.ErrorIs(t, err, ErrNotBound)

	// Unbinding again is a no-op
	l.Unbind("key")
	assert.Equal(t, 0, l.Len())
}

func TestNames(t *testing.T) {
	l := New()
	assert.Empty(t, l.Names())

	l.Bind("b", func() any { return nil })
	l.Bind("a", func() any { return nil })
	l.Singleton("c", func() any { return nil })

	assert.Equal(t, []string{"a", "b", "c"}, l.Names())
	assert.Equal(t, 3, l.Len())
}

func TestResolve(t *testing.T) {
	l := New()
	l.Bind("greeting", func() any { return "hello" })

	s, err := Resolve[string](l, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	_, err = Resolve[int](l, "greeting")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = Resolve[string](l, "missing")
	assert.ErrorIs(t, err, ErrNotBound)
}

func TestNilInstance(t *testing.T) {
	l := New()
	l.Singleton("nil", func() any { return nil })

	v, err := l.Make("nil")
	require.NoError(t, err)
	assert.Nil(t, v)
}

// Parser binding tests

func TestBindParser(t *testing.T) {
	l := New()
	BindParser(l)
	assert.True(t, l.Has("Parser"))

	parse, err := Parser(l)
	require.NoError(t, err)

	out, err := parse("Hi [name]").Values(map[string]any{"name": "Ann"}).Parse()
	require.NoError(t, err)
	assert.Equal(t, "Hi Ann", out)
}

func TestBindParser_FreshParsers(t *testing.T) {
	l := New()
	BindParser(l)

	parse, err := Parser(l)
	require.NoError(t, err)

	a := parse("[x]").Values(map[string]any{"x": "a"})
	b := parse("[x]")
	assert.NotSame(t, a, b)

	out, err := b.Parse()
	require.NoError(t, err)
	assert.Equal(t, "[x]", out, "configuration must not leak between parsers")
}

func TestBindParser_Options(t *testing.T) {
	l := New()
	BindParser(l, textparser.WithRunID("host"))

	parse := l.MustMake(ParserName).(ParserFactory)
	out, err := parse("[a]").Values(map[string]any{"a": 1}).Parse()
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

func TestParserNotBound(t *testing.T) {
	_, err := Parser(New())
	assert.ErrorIs(t, err, ErrNotBound)
}

// Thread-safety tests

func TestConcurrentBind(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	n := 1000

	for i := range n {
		wg.Add(1)
		go func(val int) {
			defer wg.Done()
			l.Bind(fmt.Sprint(val), func() any { return val * 2 })
		}(i)
	}

	wg.Wait()

	assert.Equal(t, n, l.Len())
	for i := range n {
		v, err := l.Make(fmt.Sprint(i))
		require.NoError(t, err)
		assert.Equal(t, i*2, v)
	}
}

func TestConcurrentSingleton(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	n := 100
	var callCount atomic.Int32

	l.Singleton("key", func() any {
		callCount.Add(1)
		return 42
	})

	// Many goroutines trying to create the same instance
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := l.Make("key")
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}

	wg.Wait()

	// Factory should only be called once
	assert.Equal(t, int32(1), callCount.Load())
}

func TestConcurrentParsers(t *testing.T) {
	l := New()
	BindParser(l)
	parse, err := Parser(l)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := parse("#[n]").Values(map[string]any{"n": i}).Parse()
			assert.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("#%d", i), out)
		}(i)
	}
	wg.Wait()
}

func BenchmarkMake_Singleton(b *testing.B) {
	l := New()
	l.Singleton("key", func() any { return 42 })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Make("key")
	}
}

func BenchmarkMake_Concurrent(b *testing.B) {
	l := New()
	BindParser(l)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = Parser(l)
		}
	})
}
