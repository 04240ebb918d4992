package hierarchy

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// versionLabelPattern constrains version labels in the manifest schema.
const versionLabelPattern = `^[a-zA-Z0-9][a-zA-Z0-9._-]*$`

// GenerateManifestSchema reflects a JSON Schema for the manifest format.
// Version labels are rendered as pattern-constrained strings because they
// marshal as plain strings, not objects.
func GenerateManifestSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		Mapper: func(i reflect.Type) *jsonschema.Schema {
			if i == reflect.TypeOf(Version("")) {
				return &jsonschema.Schema{
					Type:    "string",
					Pattern: versionLabelPattern,
				}
			}
			return nil
		},
	}

	schema, err := r.ReflectFromType(reflect.TypeOf(&Manifest{})).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to create json schema for manifest: %w", err)
	}

	return schema, nil
}
