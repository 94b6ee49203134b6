package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// SeedFromFile loads a JSON question dump (an array of Question objects) into
// the store. Existing rows with matching ids are overwritten, so re-seeding at
// boot is harmless.
func SeedFromFile(ctx context.Context, store Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("bank seed: %w", err)
	}
	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return 0, fmt.Errorf("bank seed: parse %s: %w", path, err)
	}
	return store.PutQuestions(ctx, qs)
}
