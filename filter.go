package sift

// Filter returns the records of variant T that satisfy c, in input order.
// A nil constraint matches every record of the variant. The input is never
// mutated and the result is non-nil even when empty.
//
// Variant selection and the legal constraint fields are fixed at compile
// time: the result element type is T itself, and a constraint built for
// one variant does not type-check against another.
func Filter[T Record](records []Record, c Constraint[T]) []T {
	matched := make([]T, 0)
	for _, r := range records {
		v, ok := r.(T)
		if !ok {
			continue
		}
		if c != nil && !c.appliesTo(v) {
			continue
		}
		matched = append(matched, v)
	}
	return matched
}

// ByKind returns the records of the requested kind whose fields equal every
// value in criteria, in input order. Criteria arriving from outside the
// type system (flag values, decoded payloads) are validated against the
// kind's field table first: the whole call fails with ErrInvalidKind or
// ErrInvalidField before any record is examined, and no partial result is
// returned. Empty or nil criteria match every record of the kind. The
// input is never mutated and a successful result is non-nil even when
// empty.
func ByKind(records []Record, kind Kind, criteria Fields) ([]Record, error) {
	if err := ValidateCriteria(kind, criteria); err != nil {
		return nil, err
	}

	matched := make([]Record, 0)
	for _, r := range records {
		if r.Kind() != kind {
			continue
		}
		if !matches(r, criteria) {
			continue
		}
		matched = append(matched, r)
	}
	return matched, nil
}

func matches(r Record, criteria Fields) bool {
	for key, want := range criteria {
		got, ok := r.fieldValue(key)
		if !ok {
			return false
		}
		if !valuesEqual(got, want) {
			return false
		}
	}
	return true
}

// valuesEqual compares a record field value against a criteria value.
// Text compares byte for byte. Numbers compare by exact numeric value
// across int, int64, and float64, so criteria decoded from JSON (where
// every number is a float64) still match integer record fields. A criteria
// value of any other type matches nothing.
func valuesEqual(got, want any) bool {
	gotNum, gotIsNum := toFloat(got)
	wantNum, wantIsNum := toFloat(want)
	if gotIsNum || wantIsNum {
		return gotIsNum && wantIsNum && gotNum == wantNum
	}
	return got == want
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
