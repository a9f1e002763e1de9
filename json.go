package sift

import (
	"encoding/json"
	"fmt"
)

// kindProbe reads only the discriminant during decoding.
type kindProbe struct {
	Kind Kind `json:"kind"`
}

// MarshalJSON emits the user shape with its discriminant.
func (u User) MarshalJSON() ([]byte, error) {
	type user User
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		user
	}{Kind: KindUser, user: user(u)})
}

// MarshalJSON emits the admin shape with its discriminant.
func (a Admin) MarshalJSON() ([]byte, error) {
	type admin Admin
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		admin
	}{Kind: KindAdmin, admin: admin(a)})
}

// UnmarshalRecord decodes a single record, dispatching on its kind field.
// An unrecognized kind wraps ErrInvalidKind.
func UnmarshalRecord(data []byte) (Record, error) {
	var probe kindProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}

	switch probe.Kind {
	case KindUser:
		var u User
		if err := json.Unmarshal(data, &u); err != nil {
			return nil, fmt.Errorf("decode user record: %w", err)
		}
		return u, nil
	case KindAdmin:
		var a Admin
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("decode admin record: %w", err)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, probe.Kind)
	}
}

// UnmarshalRecords decodes a JSON array of records, preserving order.
func UnmarshalRecords(data []byte) ([]Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for i, item := range raw {
		r, err := UnmarshalRecord(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}
