package model

import "encoding/json"

// Optional distinguishes a JSON field that was omitted from one that was
// sent as null. A plain pointer cannot make that distinction, and the
// employee update contract needs it: sending "cafe_id": null unassigns the
// employee, while omitting the field leaves the assignment alone.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
