package dto

import (
	"encoding/json"

	"github.com/Velocidex/ordereddict"
	"github.com/invopop/jsonschema"
)

// Profile is one prospect record with caller-defined columns. It wraps an
// ordered dictionary so that the column order of the incoming JSON object is
// preserved all the way into the persisted CSV header.
type Profile struct {
	*ordereddict.Dict
}

// UnmarshalJSON decodes a JSON object into the profile, keeping key order.
func (p *Profile) UnmarshalJSON(data []byte) error {
	d := ordereddict.NewDict()
	if err := json.Unmarshal(data, d); err != nil {
		return err
	}
	p.Dict = d
	return nil
}

// MarshalJSON encodes the profile in column order.
func (p Profile) MarshalJSON() ([]byte, error) {
	if p.Dict == nil {
		return []byte("null"), nil
	}
	return json.Marshal(p.Dict)
}

// JSONSchema describes a profile as a free-form object for the tool catalog.
func (Profile) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "One prospect record; keys are column names",
	}
}
