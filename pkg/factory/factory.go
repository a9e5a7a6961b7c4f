package factory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/forgo/forge/pkg/pathvalue"
)

// Attributes is a resolved attribute tree. Dotted definition names become
// nested maps.
type Attributes = map[string]any

// Model is an instance a factory can persist.
type Model interface {
	// Save persists the instance and reports the outcome to done.
	Save(ctx context.Context, done func(error))
}

// Constructor builds a model instance from resolved attributes.
type Constructor[T Model] func(attrs Attributes) T

// Option configures a Factory.
type Option func(*options)

type options struct {
	registry *Registry
	logger   *slog.Logger
}

// WithRegistry sets the registry used by Extend and Register.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Factory produces instances of T from attribute definitions.
type Factory[T Model] struct {
	name     string
	ctor     Constructor[T]
	attrs    map[string]Definition
	parent   *Factory[T]
	hooks    *Hooks[T]
	seq      *Sequence
	registry *Registry
	logger   *slog.Logger
}

// New creates a root factory for ctor. It panics if ctor is nil.
func New[T Model](ctor Constructor[T], opts ...Option) *Factory[T] {
	if ctor == nil {
		panic(ErrNilConstructor)
	}
	o := options{registry: DefaultRegistry}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return &Factory[T]{
		ctor:     ctor,
		attrs:    make(map[string]Definition),
		hooks:    NewHooks[T](),
		seq:      &Sequence{},
		registry: o.registry,
		logger:   o.logger,
	}
}

// Name returns the name the factory was registered under, if any.
func (f *Factory[T]) Name() string { return f.name }

// Set defines the attribute name. Dotted names address nested values.
func (f *Factory[T]) Set(name string, def Definition) *Factory[T] {
	f.attrs[name] = def
	return f
}

// Hook appends fn to the chain for key.
func (f *Factory[T]) Hook(key Event, fn HookFunc[T]) *Factory[T] {
	f.hooks.Add(key, fn)
	return f
}

// Before registers fn as a pre:build hook.
//
// Deprecated: use Hook(PreBuild, fn).
func (f *Factory[T]) Before(fn HookFunc[T]) *Factory[T] {
	return f.Hook(PreBuild, fn)
}

// After registers fn as a post:save hook. fn only receives the
// continuation, never the saved instance.
//
// Deprecated: use Hook(PostSave, fn).
func (f *Factory[T]) After(fn func(next Next)) *Factory[T] {
	return f.Hook(PostSave, func(_ context.Context, _ T, next Next) {
		fn(next)
	})
}

// Hooks returns a copy of the chain registered for key.
func (f *Factory[T]) Hooks(key Event) []HookFunc[T] {
	return f.hooks.Chain(key)
}

// Events returns the keys that have hooks, in first-registration order.
func (f *Factory[T]) Events() []Event {
	return f.hooks.Events()
}

// Emit runs the hook chain for key with obj and reports the outcome to done.
func (f *Factory[T]) Emit(ctx context.Context, key Event, obj T, done Next) {
	f.hooks.Emit(ctx, key, obj, done)
}

// Register stores the factory in its registry under name.
func (f *Factory[T]) Register(name string) *Factory[T] {
	return Define(f.registry, name, f)
}

// Extend makes the factory registered as name the parent of f. See
// ExtendFactory.
func (f *Factory[T]) Extend(name string) (*Factory[T], error) {
	parent, err := Lookup[T](f.registry, name)
	if err != nil {
		return f, err
	}
	return f.ExtendFactory(parent), nil
}

// MustExtend is like Extend but panics when the parent cannot be found.
func (f *Factory[T]) MustExtend(name string) *Factory[T] {
	out, err := f.Extend(name)
	if err != nil {
		panic(err)
	}
	return out
}

// ExtendFactory sets parent as the parent of f. f starts drawing from the
// root's sequence, and every hook of every ancestor is appended to f's
// chains, nearest ancestor first and in each ancestor's registration order.
func (f *Factory[T]) ExtendFactory(parent *Factory[T]) *Factory[T] {
	f.parent = parent

	for _, ancestor := range f.Ancestors() {
		for _, key := range ancestor.hooks.Events() {
			for _, fn := range ancestor.hooks.Chain(key) {
				f.Hook(key, fn)
			}
		}
	}
	return f
}

// Parent returns the direct parent, or nil.
func (f *Factory[T]) Parent() *Factory[T] { return f.parent }

// Ancestors returns the parent chain, nearest first. A cyclic chain never
// terminates.
func (f *Factory[T]) Ancestors() []*Factory[T] {
	var out []*Factory[T]
	for current := f.parent; current != nil; current = current.parent {
		out = append(out, current)
	}
	return out
}

// HasAncestors reports whether f has a parent.
func (f *Factory[T]) HasAncestors() bool {
	return len(f.Ancestors()) > 0
}

// Root returns the farthest ancestor, or f itself.
func (f *Factory[T]) Root() *Factory[T] {
	root := f
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// NextSequence returns the next value of the lineage's sequence. The
// counter belongs to the root, resolved at call time, so factories that
// gain a parent later still share one counter with their descendants.
func (f *Factory[T]) NextSequence() int64 {
	return f.Root().seq.Next()
}

// Definitions returns f's definitions merged with its ancestors'. Nearer
// definitions win; farther ancestors only fill missing names.
func (f *Factory[T]) Definitions() map[string]Definition {
	out := make(map[string]Definition, len(f.attrs))
	for name, def := range f.attrs {
		out[name] = def
	}
	for _, ancestor := range f.Ancestors() {
		for name, def := range ancestor.attrs {
			if _, ok := out[name]; !ok {
				out[name] = def
			}
		}
	}
	return out
}

// Value resolves the definition stored under name in defs. A missing
// definition resolves to nil.
func (f *Factory[T]) Value(name string, defs map[string]Definition) any {
	def, ok := defs[name]
	if !ok || def == nil {
		return nil
	}
	return def.resolve(f.NextSequence)
}

// Attributes resolves every merged definition into a fresh tree. Names are
// resolved in lexical order, so sequence consumption and dotted-path
// collisions are deterministic.
func (f *Factory[T]) Attributes() Attributes {
	defs := f.Definitions()

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Attributes, len(names))
	for _, name := range names {
		value := f.Value(name, defs)
		// Map definitions are shared across builds.
		if m, ok := value.(map[string]any); ok {
			value = pathvalue.Clone(m)
		}
		pathvalue.Set(out, name, value)
	}
	return out
}

// Build constructs an instance from the resolved attributes deep-merged
// with overrides. Overrides win. No hooks run. Neither overrides nor the
// factory's definitions are modified.
func (f *Factory[T]) Build(overrides Attributes) T {
	attrs := pathvalue.Merge(f.Attributes(), overrides)
	return f.ctor(attrs)
}

// Create runs the full lifecycle and reports to callback exactly once.
//
// On failure callback receives the error unchanged, together with the
// instance if it was already built (the zero T for pre:build failures).
// Completed stages are not undone.
func (f *Factory[T]) Create(ctx context.Context, overrides Attributes, callback func(obj T, err error)) {
	var zero T
	fail := func(stage string, obj T, err error) {
		f.logger.Debug("factory: create failed",
			slog.String("factory", f.name),
			slog.String("stage", stage),
			slog.String("error", err.Error()),
		)
		callback(obj, err)
	}

	f.hooks.Emit(ctx, PreBuild, zero, func(err error) {
		if err != nil {
			fail(PreBuild, zero, err)
			return
		}

		obj := f.Build(overrides)
		f.hooks.Emit(ctx, PreSave, obj, func(err error) {
			if err != nil {
				fail(PreSave, obj, err)
				return
			}

			obj.Save(ctx, once(func(err error) {
				if err != nil {
					fail("save", obj, err)
					return
				}

				f.hooks.Emit(ctx, PostSave, obj, func(err error) {
					if err != nil {
						fail(PostSave, obj, err)
						return
					}
					callback(obj, nil)
				})
			}))
		})
	})
}

// CreateSync runs Create and waits for its outcome. If ctx ends first it
// stops waiting and returns ctx.Err(); the lifecycle itself keeps running.
func (f *Factory[T]) CreateSync(ctx context.Context, overrides Attributes) (T, error) {
	type result struct {
		obj T
		err error
	}
	ch := make(chan result, 1)

	f.Create(ctx, overrides, func(obj T, err error) {
		ch <- result{obj: obj, err: err}
	})

	select {
	case r := <-ch:
		return r.obj, r.err
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("factory %q: %w", f.name, ctx.Err())
	}
}
