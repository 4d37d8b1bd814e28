package shape

// A Variant is one named alternative of a sum type.  Schema gives the
// types of its arguments and Construct builds a value of the sum from
// one argument per schema position.  A Variant is owned by exactly one
// TypeSum.
type Variant struct {
	Name      string
	Schema    Schema
	Construct func(*Seq) any
}

// Make builds a value of the owning sum from args, failing with
// SchemaMismatchError when the number of arguments disagrees with the
// variant's schema.
func (v *Variant) Make(args *Seq) (any, error) {
	if n := args.Len(); n != len(v.Schema) {
		return nil, &SchemaMismatchError{What: v.Name + " constructor", Want: len(v.Schema), Got: n}
	}
	return v.Construct(args), nil
}

// TypeSum describes a sum type with named Variants, exactly one of which
// constructed any given value.  Untag reports the index of that variant
// along with the value's arguments, in schema order.
type TypeSum struct {
	Name     string
	Variants []Variant
	Untag    func(any) (int, *Seq)
}

func (t *TypeSum) Kind() Kind {
	return SumKind
}

// A Handler consumes one variant's arguments during elimination.
type Handler func(*Seq) any

// Elim returns the eliminator of t over handlers: a function dispatching
// any value of the sum to the handler for the variant that constructed
// it, returning that handler's result.  This is the sole generic
// dispatch primitive for sums.  The handler list must hold exactly one
// handler per variant, in variant order; otherwise Elim fails with
// SchemaMismatchError.
func (t *TypeSum) Elim(handlers ...Handler) (func(any) any, error) {
	if len(handlers) != len(t.Variants) {
		return nil, &SchemaMismatchError{What: t.Name + " eliminator", Want: len(t.Variants), Got: len(handlers)}
	}
	return func(val any) any {
		which, args := t.Untag(val)
		return handlers[which](args)
	}, nil
}
