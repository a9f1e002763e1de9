package sift

// Constraint narrows records of variant T by exact field equality. A nil
// field leaves that field unconstrained; the zero value matches every
// record of the variant. Implementations live in this package only, so a
// constraint can never be paired with the wrong variant and there is no
// way to spell a constraint on the discriminant or on another variant's
// fields.
type Constraint[T Record] interface {
	appliesTo(T) bool
}

// UserConstraint selects User records.
type UserConstraint struct {
	Name       *string
	Age        *int
	Occupation *string
}

func (c UserConstraint) appliesTo(u User) bool {
	if c.Name != nil && u.Name != *c.Name {
		return false
	}
	if c.Age != nil && u.Age != *c.Age {
		return false
	}
	if c.Occupation != nil && u.Occupation != *c.Occupation {
		return false
	}
	return true
}

// AdminConstraint selects Admin records.
type AdminConstraint struct {
	Name *string
	Age  *int
	Role *string
}

func (c AdminConstraint) appliesTo(a Admin) bool {
	if c.Name != nil && a.Name != *c.Name {
		return false
	}
	if c.Age != nil && a.Age != *c.Age {
		return false
	}
	if c.Role != nil && a.Role != *c.Role {
		return false
	}
	return true
}

// Ptr returns a pointer to v, for constraint literals.
func Ptr[T any](v T) *T { return &v }
