package shape

// Some holds the payload of an option's "Some" alternative.  The "None"
// alternative is represented by nil.
type Some struct {
	Value any
}

// NewOption returns the sum descriptor for optional values of type elem.
func NewOption(elem Type) *TypeSum {
	return &TypeSum{
		Name: "option",
		Variants: []Variant{
			{
				Name:      "None",
				Construct: func(*Seq) any { return nil },
			},
			{
				Name:   "Some",
				Schema: Schema{elem},
				Construct: func(args *Seq) any {
					val, _ := args.Split()
					return Some{Value: val}
				},
			},
		},
		Untag: func(val any) (int, *Seq) {
			if val == nil {
				return 0, nil
			}
			return 1, SeqOf(val.(Some).Value)
		},
	}
}

// Ok and Err carry the two alternatives of a result value.
type Ok struct {
	Value any
}

type Err struct {
	Value any
}

// NewResult returns the sum descriptor distinguishing a successful value
// of type okType from a failure of type errType.
func NewResult(okType, errType Type) *TypeSum {
	return &TypeSum{
		Name: "result",
		Variants: []Variant{
			{
				Name:   "Ok",
				Schema: Schema{okType},
				Construct: func(args *Seq) any {
					val, _ := args.Split()
					return Ok{Value: val}
				},
			},
			{
				Name:   "Err",
				Schema: Schema{errType},
				Construct: func(args *Seq) any {
					val, _ := args.Split()
					return Err{Value: val}
				},
			},
		},
		Untag: func(val any) (int, *Seq) {
			if ok, isOk := val.(Ok); isOk {
				return 0, SeqOf(ok.Value)
			}
			return 1, SeqOf(val.(Err).Value)
		},
	}
}
