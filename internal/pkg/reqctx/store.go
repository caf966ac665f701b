package reqctx

import (
	"context"
	"maps"
	"slices"
	"sync"

	"labflow/internal/pkg/errs"
)

// Values is a set of request-scoped entries keyed by name.
type Values map[string]any

type scopeKey struct{}

type scope struct {
	mu     sync.RWMutex
	values Values
	sealed bool
}

func (s *scope) seal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sealed = true
	s.values = nil
}

// Run opens a fresh scope seeded with a copy of initial, calls fn with a context
// carrying that scope and tears the scope down when fn returns or panics. A panic
// is re-raised after teardown. A scope opened inside another one shadows the outer
// scope for the duration of fn.
func Run(ctx context.Context, initial Values, fn func(ctx context.Context) error) error {
	s := &scope{values: make(Values, len(initial))}
	for k, v := range initial {
		if v != nil {
			s.values[k] = v
		}
	}
	defer s.seal()

	return fn(context.WithValue(ctx, scopeKey{}, s))
}

func from(ctx context.Context) *scope {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(scopeKey{}).(*scope)
	return s
}

// Active reports whether ctx carries a live scope.
func Active(ctx context.Context) bool {
	s := from(ctx)
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.sealed
}

// Get returns the value stored under key.
func Get(ctx context.Context, key string) (any, bool) {
	s := from(ctx)
	if s == nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// MustGet returns the value stored under key or a ContextValueNotFoundError.
func MustGet(ctx context.Context, key string) (any, error) {
	v, ok := Get(ctx, key)
	if !ok {
		return nil, errs.NewContextValueNotFoundError(key)
	}
	return v, nil
}

// Lookup returns the value under key when it holds a T.
func Lookup[T any](ctx context.Context, key string) (T, bool) {
	var zero T
	v, ok := Get(ctx, key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Set stores value under key. Without a live scope it does nothing.
func Set(ctx context.Context, key string, value any) {
	s := from(ctx)
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		return
	}
	s.values[key] = value
}

// Has reports whether key is present.
func Has(ctx context.Context, key string) bool {
	_, ok := Get(ctx, key)
	return ok
}

// Merge stores every entry of values, overwriting existing keys.
func Merge(ctx context.Context, values Values) {
	s := from(ctx)
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sealed {
		return
	}
	maps.Copy(s.values, values)
}

// Delete removes key and reports whether it was present.
func Delete(ctx context.Context, key string) bool {
	s := from(ctx)
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	return true
}

// Keys returns the stored keys in sorted order.
func Keys(ctx context.Context) []string {
	s := from(ctx)
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

// Clear removes every entry but keeps the scope open.
func Clear(ctx context.Context) {
	s := from(ctx)
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.values)
}

// Snapshot returns a copy of the stored entries.
func Snapshot(ctx context.Context) Values {
	s := from(ctx)
	if s == nil {
		return Values{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}
