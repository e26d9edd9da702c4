package fastersql

// OptionalPredicate may or may not hold a predicate. Absent predicates
// contribute nothing to a WHERE or HAVING clause.
type OptionalPredicate struct {
	p  Predicate
	ok bool
}

// Some wraps a present predicate.
func Some(p Predicate) OptionalPredicate {
	if p == nil {
		return None()
	}
	return OptionalPredicate{p: p, ok: true}
}

// None is the absent predicate.
func None() OptionalPredicate {
	return OptionalPredicate{}
}

// IfPresent builds a predicate from *v when v is not nil.
func IfPresent[T any](v *T, fn func(T) Predicate) OptionalPredicate {
	if v == nil {
		return None()
	}
	return Some(fn(*v))
}

// Get returns the predicate and whether it is present.
func (o OptionalPredicate) Get() (Predicate, bool) {
	return o.p, o.ok
}

func present(opts []OptionalPredicate) []Predicate {
	var preds []Predicate
	for _, o := range opts {
		if p, ok := o.Get(); ok {
			preds = append(preds, p)
		}
	}
	return preds
}

func supplied[T any](fns []func() T) []T {
	out := make([]T, 0, len(fns))
	for _, fn := range fns {
		out = append(out, fn())
	}
	return out
}
