// Package corrections loads extra name-correction pairs from a file.
//
// Two formats are accepted, chosen by file extension:
//   - .yaml / .yml, parsed with gopkg.in/yaml.v3
//   - .json / .jsonc, with comments and trailing commas stripped by
//     github.com/tidwall/jsonc before parsing with encoding/json
//
// Both use the same document shape:
//
//	corrections:
//	  - from: CaraFa
//	    to: Carafa
//
// Loaded pairs extend normalize.DefaultTable; they never replace it.
package corrections

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/gendict/internal/model"
	"github.com/shinji-kodama/gendict/internal/normalize"
)

// File is the on-disk document structure.
type File struct {
	Corrections normalize.Table `yaml:"corrections" json:"corrections"`
}

// Load reads path and returns the validated correction pairs it contains.
//
// Returns a CLIError with ExitInputNotFound if the file does not exist and
// ExitInvalidCorrections if it cannot be parsed or fails validation.
func Load(path string) (normalize.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitInputNotFound,
				fmt.Sprintf("corrections file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read corrections file: %w", err)
	}

	table, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidCorrections,
			fmt.Sprintf("invalid corrections file %s", path),
			err,
		)
	}
	return table, nil
}

// Parse decodes data according to ext (".yaml", ".yml", ".json" or
// ".jsonc") and validates the resulting table.
func Parse(data []byte, ext string) (normalize.Table, error) {
	var doc File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported corrections format %q (want .yaml, .yml, .json or .jsonc)", ext)
	}

	if err := doc.Corrections.Validate(); err != nil {
		return nil, err
	}
	return doc.Corrections, nil
}

// Marshal renders table as a YAML corrections document. The stats command
// uses it to show the effective table.
func Marshal(table normalize.Table) ([]byte, error) {
	return yaml.Marshal(&File{Corrections: table})
}
