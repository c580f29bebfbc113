package purefunc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// ReadFunc Tests
// ============================================================================

func sourceOf(data string) ReadFunc {
	return func(p []byte) (int, error) {
		return copy(p, data), io.EOF
	}
}

func TestReadFunc_Map(t *testing.T) {
	upper := TransformerFunc[[]byte, []byte](bytes.ToUpper)

	data, err := io.ReadAll(sourceOf("hello").Map(upper))

	require.NoError(t, err)
	assert.Equal(t, "HELLO", string(data))
}

func TestReadFunc_Filter(t *testing.T) {
	notSpace := PredicateFunc[byte](func(b byte) bool { return b != ' ' })
	vowel := PredicateFunc[byte](func(b byte) bool { return strings.IndexByte("aeiou", b) >= 0 })

	data, err := io.ReadAll(sourceOf("a b c e").Filter(notSpace.And(vowel.Not())))

	require.NoError(t, err)
	assert.Equal(t, "bc", string(data))
}

// ============================================================================
// Stringer Tests
// ============================================================================

func TestStringerFunc_String(t *testing.T) {
	s := StringerFunc(func() string { return "hello" })
	assert.Equal(t, "hello", s.String())
	assert.Equal(t, "hello", s.Value())
}

func TestStringerFunc_Map(t *testing.T) {
	s := StringerFunc(func() string { return "hello" }).
		Map(TransformerFunc[string, string](strings.ToUpper))
	assert.Equal(t, "HELLO", s.String())
}

func TestStringerFunc_ComposeJoin(t *testing.T) {
	hello := StringerFunc(func() string { return "hello" })
	world := Stringer(Constant("world"))

	assert.Equal(t, "helloworld", hello.Compose(world).String())
	assert.Equal(t, "hello, world, !", hello.Join(", ", world, StringerFunc(func() string { return "!" })).String())
	assert.Equal(t, "hello", hello.Join("-").String())
}

func TestStringer(t *testing.T) {
	version := Stringer(Constant("v1.4.2").Map(TransformerFunc[string, string](strings.ToUpper)))

	assert.Equal(t, "V1.4.2", version.String())
	assert.Equal(t, "release V1.4.2", fmt.Sprintf("release %v", version))
}

// ============================================================================
// Writer Tests
// ============================================================================

func TestWriter_CopiesBuffer(t *testing.T) {
	var chunks [][]byte
	w := Writer(ConsumerFunc[[]byte](func(p []byte) { chunks = append(chunks, p) }))

	buf := []byte("abc")
	n, err := w.Write(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	copy(buf, "xyz")
	require.Len(t, chunks, 1)
	assert.Equal(t, "abc", string(chunks[0]))
}

func TestWriter_Tee(t *testing.T) {
	var a, b bytes.Buffer
	sink := ConsumerFunc[[]byte](func(p []byte) { a.Write(p) }).
		AndThen(ConsumerFunc[[]byte](func(p []byte) { b.Write(p) }))

	_, err := io.Copy(Writer(sink), strings.NewReader("hello world"))

	require.NoError(t, err)
	assert.Equal(t, "hello world", a.String())
	assert.Equal(t, "hello world", b.String())
}

func TestWriteFunc_Map(t *testing.T) {
	var buf bytes.Buffer
	w := WriteFunc(buf.Write).Map(TransformerFunc[[]byte, []byte](func(p []byte) []byte {
		return append([]byte(">> "), p...)
	}))

	n, err := w.Write([]byte("hi"))

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, ">> hi", buf.String())
}

func TestWriteFunc_Filter(t *testing.T) {
	var buf bytes.Buffer
	digit := PredicateFunc[byte](func(b byte) bool { return b >= '0' && b <= '9' })

	n, err := WriteFunc(buf.Write).Filter(digit.Not()).Write([]byte("a1b2c3"))

	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "abc", buf.String())
}

func TestWriteFunc_Tee(t *testing.T) {
	var a, b bytes.Buffer
	_, err := WriteFunc(a.Write).Tee(&b).Write([]byte("both"))

	require.NoError(t, err)
	assert.Equal(t, "both", a.String())
	assert.Equal(t, "both", b.String())

	short := WriteFunc(func(p []byte) (int, error) { return len(p) - 1, nil })
	_, err = WriteFunc(a.Write).Tee(short, &b).Write([]byte("xy"))
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, "both", b.String(), "writers after a short write are skipped")
}

func TestWriter_PointerSyncConsumer(t *testing.T) {
	c := NewSyncConsumer(func(p []byte) {
		if len(p) == 0 {
			panic("empty write")
		}
	})
	assert.Panics(t, func() { c.Accept(nil) })

	n, err := Writer(&c).Write([]byte("data"))

	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrPoisoned)
}

func TestWriter_PoisonedSyncConsumer(t *testing.T) {
	c := NewSyncConsumer(func(p []byte) {
		if len(p) == 0 {
			panic("empty write")
		}
	})
	assert.Panics(t, func() { c.Accept(nil) })

	n, err := Writer(c).Write([]byte("data"))

	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrPoisoned)
}

func TestWriter_BusyLocalConsumer(t *testing.T) {
	var w io.Writer
	var inner error
	c := NewLocalConsumer(func(p []byte) {
		if string(p) == "outer" {
			_, inner = w.Write([]byte("inner"))
		}
	})
	w = Writer(c)

	_, err := w.Write([]byte("outer"))

	require.NoError(t, err)
	assert.ErrorIs(t, inner, ErrReentrant)
}

// ============================================================================
// Closer Tests
// ============================================================================

func TestCloser(t *testing.T) {
	closes := 0
	c := Closer(NewSupplierOnce(func() error {
		closes++
		return nil
	}))

	require.NoError(t, c.Close())
	err := c.Close()

	assert.Equal(t, 1, closes)
	assert.ErrorIs(t, err, ErrAlreadyClosed)
	assert.ErrorIs(t, err, ErrConsumed)
}

func TestCloser_ReleaseError(t *testing.T) {
	errFlush := errors.New("flush failed")
	c := Closer(NewSupplierOnce(func() error { return errFlush }))

	assert.ErrorIs(t, c.Close(), errFlush)
	assert.ErrorIs(t, c.Close(), ErrAlreadyClosed)
}

// ============================================================================
// HandlerFunc Tests
// ============================================================================

func okHandler(body string) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestHandlerFunc_WithAuth(t *testing.T) {
	hasToken := PredicateFunc[*http.Request](func(r *http.Request) bool {
		return r.Header.Get("Authorization") != ""
	})
	h := okHandler("ok").WithAuth(hasToken)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandlerFunc_WithLogging(t *testing.T) {
	var lines []string
	log := ReadonlyConsumerFunc[string](func(s string) { lines = append(lines, s) })

	rec := httptest.NewRecorder()
	okHandler("ok").WithLogging(log).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users?id=1", nil))

	assert.Equal(t, []string{"Request: GET /users?id=1", "Completed: GET /users?id=1"}, lines)
}

func TestHandlerFunc_BeforeAfter(t *testing.T) {
	var order []string
	h := HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}).
		Before(ConsumerFunc[*http.Request](func(r *http.Request) { order = append(order, "before "+r.Method) })).
		After(NewSyncConsumer(func(r *http.Request) { order = append(order, "after "+r.URL.Path) }))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Equal(t, []string{"before POST", "handler", "after /x"}, order)
}

// ============================================================================
// Gate Tests
// ============================================================================

func TestGate(t *testing.T) {
	hasToken := PredicateFunc[*http.Request](func(r *http.Request) bool {
		return strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")
	})
	internal := PredicateFunc[*http.Request](func(r *http.Request) bool {
		return r.Header.Get("X-Internal") == "1"
	})
	ok := HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("admin"))
	})
	h := Gate(hasToken.Or(internal).ToSync(), ok)

	tests := []struct {
		name     string
		header   string
		value    string
		wantCode int
		wantBody string
	}{
		{name: "bearer token", header: "Authorization", value: "Bearer abc", wantCode: http.StatusOK, wantBody: "admin"},
		{name: "internal caller", header: "X-Internal", value: "1", wantCode: http.StatusOK, wantBody: "admin"},
		{name: "anonymous", wantCode: http.StatusForbidden, wantBody: "Forbidden\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ============================================================================
// Benchmarks
// ============================================================================

func BenchmarkPredicateFunc_And(b *testing.B) {
	p := PredicateFunc[int](func(n int) bool { return n > 0 }).And(isEven)
	for i := 0; i < b.N; i++ {
		p.Test(i)
	}
}

func BenchmarkSyncMutator_AndThen(b *testing.B) {
	inc := NewSyncMutator(func(n *int) { *n++ })
	m := inc.AndThen(NewSyncMutator(func(n *int) { *n *= 2 }))
	v := 0
	for i := 0; i < b.N; i++ {
		v = 0
		m.Mutate(&v)
	}
}

func BenchmarkLocalConsumer_Accept(b *testing.B) {
	sum := 0
	c := NewLocalConsumer(func(n int) { sum += n })
	for i := 0; i < b.N; i++ {
		c.Accept(i)
	}
}
