package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// SeedFile maps collection -> document id -> document fields.
type SeedFile map[string]map[string]map[string]any

// LoadSeedFile reads a seed file from disk.
func LoadSeedFile(path string) (SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return seed, nil
}

// Seed upserts every document of the seed into the store and returns how many were written.
func Seed(ctx context.Context, store *SQLStore, seed SeedFile) (int, error) {
	collections := make([]string, 0, len(seed))
	for collection := range seed {
		collections = append(collections, collection)
	}
	sort.Strings(collections)

	written := 0
	for _, collection := range collections {
		for id, data := range seed[collection] {
			if data == nil {
				data = map[string]any{}
			}
			if err := store.Put(ctx, collection, id, data); err != nil {
				return written, fmt.Errorf("seed %s/%s: %w", collection, id, err)
			}
			written++
		}
	}
	return written, nil
}
