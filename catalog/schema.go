package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID is the $id of the catalog file schema.
const SchemaID = "https://github.com/randalmurphal/textkit/catalog.schema.json"

// Schema returns the JSON Schema describing catalog files. YAML and TOML
// files decode to the same structure, so editors can validate either.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&File{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "textkit template catalog"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
