package export

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var registrySchema []byte

// Schema returns the JSON schema that registry output conforms to.
func Schema() []byte {
	return bytes.Clone(registrySchema)
}

// Validate checks JSON registry output against the registry schema.
func Validate(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("registry.json", bytes.NewReader(registrySchema)); err != nil {
		return fmt.Errorf("failed to load registry schema: %w", err)
	}
	schema, err := compiler.Compile("registry.json")
	if err != nil {
		return fmt.Errorf("failed to compile registry schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode registry JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("registry does not match schema: %w", err)
	}
	return nil
}
