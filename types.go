// Package sift filters collections of tagged records by variant and field
// criteria. The Filter function narrows results at compile time for callers
// that know the variant statically; ByKind covers criteria that arrive at
// runtime, validating them against a per-variant field table before any
// record is examined.
package sift

// Kind discriminates the record variants.
type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// Valid reports whether k is a recognized variant kind.
func (k Kind) Valid() bool {
	_, ok := recordFields[k]
	return ok
}

// Record is one tagged variant instance. Only User and Admin satisfy it;
// the unexported method keeps the union closed.
type Record interface {
	Kind() Kind

	// fieldValue returns the record's value for a field name, reporting
	// whether the variant carries that field.
	fieldValue(name string) (any, bool)
}

// User represents a user record.
type User struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Occupation string `json:"occupation"`
}

// Kind returns KindUser.
func (User) Kind() Kind { return KindUser }

func (u User) fieldValue(name string) (any, bool) {
	switch name {
	case FieldName:
		return u.Name, true
	case FieldAge:
		return u.Age, true
	case FieldOccupation:
		return u.Occupation, true
	}
	return nil, false
}

// Admin represents an administrator record.
type Admin struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Role string `json:"role"`
}

// Kind returns KindAdmin.
func (Admin) Kind() Kind { return KindAdmin }

func (a Admin) fieldValue(name string) (any, bool) {
	switch name {
	case FieldName:
		return a.Name, true
	case FieldAge:
		return a.Age, true
	case FieldRole:
		return a.Role, true
	}
	return nil, false
}
