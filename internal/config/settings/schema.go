package settings

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/atomicstack/multiselect/internal/widget"
)

// Schema returns the JSON schema describing a settings file.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := r.Reflect(&widget.Settings{})
	schema.ID = "https://github.com/atomicstack/multiselect/settings.schema.json"
	schema.Title = "multiselect settings"
	schema.Description = "Widget settings for the multiselect picker"
	return json.MarshalIndent(schema, "", "  ")
}
