package sift

import (
	"fmt"
	"sort"
)

// FieldType names the semantic type of a record field.
type FieldType string

const (
	TypeText   FieldType = "text"
	TypeNumber FieldType = "number"
)

// Field names shared by both variants, the variant-specific fields, and
// the discriminant.
const (
	FieldKind       = "kind"
	FieldName       = "name"
	FieldAge        = "age"
	FieldOccupation = "occupation"
	FieldRole       = "role"
)

// Fields is a partial field-name to expected-value mapping used as
// criteria on the dynamically checked path.
type Fields map[string]any

// recordFields maps each variant to its legal criteria fields and their
// types. The discriminant is deliberately absent: it is selected by the
// kind argument, never constrained.
var recordFields = map[Kind]map[string]FieldType{
	KindUser: {
		FieldName:       TypeText,
		FieldAge:        TypeNumber,
		FieldOccupation: TypeText,
	},
	KindAdmin: {
		FieldName: TypeText,
		FieldAge:  TypeNumber,
		FieldRole: TypeText,
	},
}

// Kinds returns the recognized variant kinds, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(recordFields))
	for k := range recordFields {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// FieldsOf returns the legal criteria field names for a kind, sorted.
// An unrecognized kind wraps ErrInvalidKind.
func FieldsOf(kind Kind) ([]string, error) {
	fields, ok := recordFields[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q (must be one of: %q, %q)", ErrInvalidKind, kind, KindUser, KindAdmin)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ValidateCriteria checks the kind and every criteria key before any
// record is examined. The whole call is rejected on the first problem:
// an unrecognized kind wraps ErrInvalidKind, a key outside the variant's
// field set (including the discriminant itself) wraps ErrInvalidField.
// Keys are checked in sorted order so the reported key is deterministic.
func ValidateCriteria(kind Kind, criteria Fields) error {
	fields, ok := recordFields[kind]
	if !ok {
		return fmt.Errorf("%w: %q (must be one of: %q, %q)", ErrInvalidKind, kind, KindUser, KindAdmin)
	}

	keys := make([]string, 0, len(criteria))
	for key := range criteria {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == FieldKind {
			return fmt.Errorf("%w: %q is the discriminant, select it with the kind argument", ErrInvalidField, key)
		}
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("%w: %q is not a field of kind %q", ErrInvalidField, key, kind)
		}
	}
	return nil
}
