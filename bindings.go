package purefunc

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ============================================================================
// Standard Library Bindings
// ============================================================================

// ReadFunc is a functional binding for io.Reader.
type ReadFunc func(p []byte) (n int, err error)

// Read implements io.Reader.
func (f ReadFunc) Read(p []byte) (int, error) {
	return f(p)
}

// Map transforms bytes as they're read. A transform that returns more bytes
// than were read is truncated to the bytes read.
func (f ReadFunc) Map(transform Transformer[[]byte, []byte]) ReadFunc {
	return func(p []byte) (int, error) {
		n, err := f(p)
		if n > 0 {
			n = copy(p[:n], transform.Apply(p[:n]))
		}
		return n, err
	}
}

// Filter keeps only bytes matching keep.
func (f ReadFunc) Filter(keep Predicate[byte]) ReadFunc {
	return func(p []byte) (int, error) {
		n, err := f(p)
		j := 0
		for i := 0; i < n; i++ {
			if keep.Test(p[i]) {
				p[j] = p[i]
				j++
			}
		}
		return j, err
	}
}

// StringerFunc is a functional binding for fmt.Stringer. It is also a
// ReadonlySupplier of its string.
//
// Example:
//
//	greeting := StringerFunc(func() string { return "hello" }).
//	    Map(TransformerFunc[string, string](strings.ToUpper))
//	fmt.Println(greeting) // HELLO
type StringerFunc func() string

// String implements fmt.Stringer.
func (f StringerFunc) String() string {
	return f()
}

// Value implements ReadonlySupplier.
func (f StringerFunc) Value() string {
	return f()
}

// Map transforms the string.
func (f StringerFunc) Map(transform Transformer[string, string]) StringerFunc {
	return func() string {
		return transform.Apply(f())
	}
}

// Compose concatenates f and other.
func (f StringerFunc) Compose(other fmt.Stringer) StringerFunc {
	return func() string {
		return f() + other.String()
	}
}

// Join concatenates f and others with sep.
func (f StringerFunc) Join(sep string, others ...fmt.Stringer) StringerFunc {
	return func() string {
		parts := make([]string, 0, len(others)+1)
		parts = append(parts, f())
		for _, o := range others {
			parts = append(parts, o.String())
		}
		return strings.Join(parts, sep)
	}
}

// Stringer renders a string supplier as a fmt.Stringer.
//
// Example:
//
//	version := Stringer(Constant("v1.4.2").Map(TransformerFunc[string, string](strings.ToUpper)))
//	fmt.Println(version) // V1.4.2
func Stringer(s ReadonlySupplier[string]) StringerFunc {
	return s.Value
}

// WriteFunc is a functional binding for io.Writer.
type WriteFunc func(p []byte) (n int, err error)

// Write implements io.Writer.
func (f WriteFunc) Write(p []byte) (int, error) {
	return f(p)
}

// Map transforms bytes before writing. The caller's byte count is reported
// on success, whatever length the transform produced.
func (f WriteFunc) Map(transform Transformer[[]byte, []byte]) WriteFunc {
	return func(p []byte) (int, error) {
		n, err := f(transform.Apply(p))
		if err != nil {
			return n, err
		}
		return len(p), nil
	}
}

// Filter only writes bytes matching keep.
func (f WriteFunc) Filter(keep Predicate[byte]) WriteFunc {
	return func(p []byte) (int, error) {
		filtered := make([]byte, 0, len(p))
		for _, b := range p {
			if keep.Test(b) {
				filtered = append(filtered, b)
			}
		}
		n, err := f(filtered)
		if err != nil {
			return n, err
		}
		return len(p), nil
	}
}

// Tee writes p to f, then to each of others, stopping at the first error
// or short write.
func (f WriteFunc) Tee(others ...io.Writer) WriteFunc {
	all := append([]io.Writer{f}, others...)
	return func(p []byte) (int, error) {
		for _, w := range all {
			n, err := w.Write(p)
			if err != nil {
				return n, err
			}
			if n != len(p) {
				return n, io.ErrShortWrite
			}
		}
		return len(p), nil
	}
}

// tryAcceptor is implemented by the guarded consumer handles.
type tryAcceptor[T any] interface {
	TryAccept(v T) error
}

// Writer turns a byte-slice consumer into an io.Writer. The consumer gets
// its own copy of every buffer, since io.Writer forbids retaining p.
// Writes through a poisoned or busy guarded consumer report the guard
// error instead of panicking.
func Writer(c Consumer[[]byte]) WriteFunc {
	accept := func(p []byte) error {
		c.Accept(p)
		return nil
	}
	if g, ok := c.(tryAcceptor[[]byte]); ok {
		accept = g.TryAccept
	}
	return func(p []byte) (int, error) {
		buf := make([]byte, len(p))
		copy(buf, p)
		if err := accept(buf); err != nil {
			return 0, err
		}
		return len(p), nil
	}
}

// CloseFunc is a functional binding for io.Closer.
type CloseFunc func() error

// Close implements io.Closer.
func (f CloseFunc) Close() error {
	return f()
}

// ErrAlreadyClosed is returned by a Closer closed more than once.
var ErrAlreadyClosed = errors.New("purefunc: already closed")

// Closer turns a single-use release step into an io.Closer. The first
// Close runs it; later calls return ErrAlreadyClosed, which wraps
// ErrConsumed.
func Closer(release *OnceSupplier[error]) io.Closer {
	return CloseFunc(func() error {
		err, used := release.TryGetOnce()
		if used != nil {
			return fmt.Errorf("%w: %w", ErrAlreadyClosed, used)
		}
		return err
	})
}

// HandlerFunc is a functional binding for http.Handler.
type HandlerFunc func(w http.ResponseWriter, r *http.Request)

// ServeHTTP implements http.Handler.
func (f HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f(w, r)
}

// Before passes each request to step before the handler runs.
func (f HandlerFunc) Before(step Consumer[*http.Request]) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		step.Accept(r)
		f(w, r)
	}
}

// After passes each request to step once the handler has returned.
func (f HandlerFunc) After(step Consumer[*http.Request]) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f(w, r)
		step.Accept(r)
	}
}

// WithLogging reports "Request: METHOD path" before and "Completed: METHOD
// path" after the handler.
func (f HandlerFunc) WithLogging(log ReadonlyConsumer[string]) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fullPath := r.URL.Path
		if r.URL.RawQuery != "" {
			fullPath += "?" + r.URL.RawQuery
		}
		log.Observe(fmt.Sprintf("Request: %s %s", r.Method, fullPath))
		f(w, r)
		log.Observe(fmt.Sprintf("Completed: %s %s", r.Method, fullPath))
	}
}

// WithAuth answers requests failing authenticate with 401 Unauthorized.
func (f HandlerFunc) WithAuth(authenticate Predicate[*http.Request]) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authenticate.Test(r) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		f(w, r)
	}
}

// Gate admits requests matching allow to next and answers the rest with
// 403 Forbidden. Use WithAuth for requests that lack credentials and Gate
// for ones whose credentials are not enough.
//
// Example:
//
//	hasToken := PredicateFunc[*http.Request](func(r *http.Request) bool {
//	    return strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")
//	})
//	internal := PredicateFunc[*http.Request](func(r *http.Request) bool {
//	    return r.Header.Get("X-Internal") == "1"
//	})
//	http.Handle("/admin", Gate(hasToken.Or(internal), adminHandler))
func Gate(allow Predicate[*http.Request], next http.Handler) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allow.Test(r) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}
}
