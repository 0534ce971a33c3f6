package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// RenderJSON writes {users, pagination, controls} as indented JSON.
func RenderJSON(w io.Writer, pg Page) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(pg); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderNDJSON writes one JSON object per user on the current page.
func RenderNDJSON(w io.Writer, pg Page) error {
	encoder := json.NewEncoder(w)
	for _, u := range pg.Users {
		if err := encoder.Encode(u); err != nil {
			return fmt.Errorf("encoding user %d: %w", u.ID, err)
		}
	}
	return nil
}

// RenderYAML writes {users, pagination, controls} as YAML.
func RenderYAML(w io.Writer, pg Page) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2) //nolint:mnd // Two-space indent matches the config file.
	if err := encoder.Encode(pg); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}
