package shape

// A Field is a named, typed component of a record.  Get reads the field
// from a record value.  Set, when non-nil, writes it; a nil Set means the
// field is read-only through this generic interface even if the
// underlying storage is mutable by other means.
type Field struct {
	Name string
	Type Type
	Get  func(rec any) any
	Set  func(rec, val any)
}

func NewField(name string, typ Type, get func(any) any) Field {
	return Field{Name: name, Type: typ, Get: get}
}

// Update writes val to the field of rec, failing with ImmutableFieldError
// if the field carries no setter.
func (f Field) Update(rec, val any) error {
	if f.Set == nil {
		return &ImmutableFieldError{Field: f.Name}
	}
	f.Set(rec, val)
	return nil
}

// TypeRecord describes a product type holding all of Fields at once.
// Unlike a sum, every field is present and independently readable
// through its getter.  Construct builds a whole record from one value
// per field, in field order.
type TypeRecord struct {
	Name      string
	Fields    []Field
	Construct func(*Seq) any
}

func (t *TypeRecord) Kind() Kind {
	return RecordKind
}

// Make builds a record from one value per field, in field order,
// failing with SchemaMismatchError when the number of values disagrees
// with the field list.
func (t *TypeRecord) Make(vals *Seq) (any, error) {
	if n := vals.Len(); n != len(t.Fields) {
		return nil, &SchemaMismatchError{What: t.Name + " constructor", Want: len(t.Fields), Got: n}
	}
	return t.Construct(vals), nil
}

// NewSingleField returns a record descriptor named name exposing exactly
// one read-only field.  get reads the field from a record value and wrap
// builds a record from a field value.
func NewSingleField(name, fieldName string, typ Type, get, wrap func(any) any) *TypeRecord {
	return &TypeRecord{
		Name:   name,
		Fields: []Field{NewField(fieldName, typ, get)},
		Construct: func(vals *Seq) any {
			val, _ := vals.Split()
			return wrap(val)
		},
	}
}

// A Cell is a mutable reference cell holding a single value.
type Cell struct {
	Contents any
}

func NewCell(val any) *Cell {
	return &Cell{Contents: val}
}

// NewCellType returns the record descriptor for cells holding values of
// type elem.  Generic access is read-only: the descriptor exposes a
// "contents" getter and no setter even though the cell itself is
// mutable.
func NewCellType(elem Type) *TypeRecord {
	return NewSingleField("ref", "contents", elem,
		func(rec any) any { return rec.(*Cell).Contents },
		func(val any) any { return NewCell(val) })
}
