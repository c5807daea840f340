package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed dxflow.schema.json
var schema []byte

const (
	editorDir      = ".vscode"
	schemaFileName = "dxflow.schema.json"
	settingsName   = "settings.json"
	schemasKey     = "yaml.schemas"
)

// SaveEditorSchema installs the JSON schema of the configuration file into the
// VS Code workspace of repoRoot and registers it for the YAML extension.
// Existing settings are preserved.
func SaveEditorSchema(repoRoot string) error {
	dir := filepath.Join(repoRoot, editorDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	if err := os.WriteFile(filepath.Join(dir, schemaFileName), schema, 0644); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}

	settingsPath := filepath.Join(dir, settingsName)
	settings, err := readSettings(settingsPath)
	if err != nil {
		return err
	}

	schemas, _ := settings[schemasKey].(map[string]any)
	if schemas == nil {
		schemas = map[string]any{}
	}
	schemas["./"+editorDir+"/"+schemaFileName] = FileName
	settings[schemasKey] = schemas

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", settingsPath, err)
	}
	if err := os.WriteFile(settingsPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", settingsPath, err)
	}
	return nil
}

// readSettings returns the parsed settings file, or an empty map when it does
// not exist. A file that is not plain JSON is left untouched.
func readSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	settings := map[string]any{}
	if len(data) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}
