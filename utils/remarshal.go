package utils

import (
	"encoding/json"
	"fmt"
)

// Remarshal copies input into output through its JSON representation.
func Remarshal(input interface{}, output interface{}) error {
	b, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	err = json.Unmarshal(b, output)
	if err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}
