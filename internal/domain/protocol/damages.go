package protocol

import (
	"bytes"
	"encoding/json"
)

// Damage is one annotated point on the vehicle diagram. X and Y are
// fractional positions in [0,1].
type Damage struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Type string  `json:"type"`
	Note string  `json:"note"`
}

// EncodeDamages serializes the damage list for storage. Non-ASCII text is
// written as-is rather than \u-escaped, and a nil list encodes as [].
func EncodeDamages(damages []Damage) (string, error) {
	if damages == nil {
		damages = []Damage{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(damages); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// DecodeDamages parses stored damages text. The error lets callers decide
// whether malformed legacy text is reported or defaulted; the returned list
// is always usable.
func DecodeDamages(raw string) ([]Damage, error) {
	if raw == "" {
		return []Damage{}, nil
	}

	var damages []Damage
	if err := json.Unmarshal([]byte(raw), &damages); err != nil {
		return []Damage{}, err
	}
	if damages == nil {
		damages = []Damage{}
	}
	return damages, nil
}
