package factory

// Definition describes how an attribute value is computed. Use Literal,
// Func or Seq to create one.
type Definition interface {
	resolve(next func() int64) any
}

type literal struct{ value any }

func (d literal) resolve(func() int64) any { return d.value }

type generator func() any

func (d generator) resolve(func() int64) any { return d() }

type sequenced func(n int64) any

func (d sequenced) resolve(next func() int64) any { return d(next()) }

// Literal returns a definition that always resolves to value.
func Literal(value any) Definition {
	return literal{value: value}
}

// Func returns a definition that calls fn on every resolution. It does not
// touch the sequence.
func Func(fn func() any) Definition {
	return generator(fn)
}

// Seq returns a definition that calls fn with the next sequence value on
// every resolution. One value is consumed even if fn ignores it.
func Seq(fn func(n int64) any) Definition {
	return sequenced(fn)
}
