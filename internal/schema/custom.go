package schema

import "encoding/json"

// BitBool decodes the upstream chargeability flags, which arrive as the
// integers 1/0. A 1 becomes true, anything else (0, null, missing) false.
type BitBool bool

func (b *BitBool) UnmarshalJSON(data []byte) error {
	var number int
	if err := json.Unmarshal(data, &number); err == nil {
		*b = number == 1
		return nil
	}

	var boolean bool
	if err := json.Unmarshal(data, &boolean); err == nil {
		*b = BitBool(boolean)
		return nil
	}

	*b = false
	return nil
}

func (b BitBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// Verbatim keeps the upstream token text as-is so fields with no fixed type
// (bool, number or free text) can be rendered exactly as received.
type Verbatim string

func (v *Verbatim) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = Verbatim(text)
		return nil
	}

	*v = Verbatim(data)
	return nil
}

func (v Verbatim) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}
