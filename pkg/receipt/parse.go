package receipt

import (
	"encoding/json"
	"fmt"
	"os"
)

// Parse parses a canonical receipt record from JSON bytes
func Parse(data []byte) (*ReceiptData, error) {
	var r ReceiptData
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse receipt: %w", err)
	}

	if err := Validate(&r); err != nil {
		return nil, err
	}

	return &r, nil
}

// ParseFile parses a canonical receipt record from disk
func ParseFile(path string) (*ReceiptData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt file: %w", err)
	}

	return Parse(data)
}

// ToJSON converts a ReceiptData to JSON bytes
func (r *ReceiptData) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
