package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of Config, pretty-printed.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/SeleniumHQ/htmlunit-driver-sub001/config.schema.json"
	schema.Title = "Dialog Bridge Configuration"
	schema.Description = "Configuration schema for the dialog synchronization bridge"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to the config file.
func (m *Manager) GenerateSchemaFile() (string, error) {
	data, err := Schema()
	if err != nil {
		return "", err
	}
	schemaFile := filepath.Join(m.configDir, "config.schema.json")
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
