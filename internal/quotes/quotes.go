// Package quotes serves the motivational quote shown on the account page.
package quotes

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
)

// Random reads the quote collection and returns one entry at random. The
// file is read on every call; it is maintained outside this application.
func Random(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read quotes file: %w", err)
	}

	var collection []string
	if err := json.Unmarshal(data, &collection); err != nil {
		return "", fmt.Errorf("parse quotes file: %w", err)
	}

	if len(collection) == 0 {
		return "", fmt.Errorf("quotes file %s is empty", path)
	}

	return collection[rand.Intn(len(collection))], nil
}
