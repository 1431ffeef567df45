// Package docstore provides collection/id addressed document access over Firestore
// or a SQL database.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

var ErrInvalidField = errors.New("invalid document field")

// Document is a single record inside a collection.
type Document struct {
	ID   string
	Data map[string]any
}

// Filter is an equality match on a top-level string field.
type Filter struct {
	Field string
	Value string
}

func Eq(field, value string) Filter {
	return Filter{Field: field, Value: value}
}

// Store reads documents. Get reports a missing document with found=false, never an error.
// Find returns matches in an order that is stable for a given snapshot.
type Store interface {
	Get(ctx context.Context, collection, id string) (doc Document, found bool, err error)
	Find(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
}

var fieldPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateField(field string) error {
	if !fieldPattern.MatchString(field) {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return nil
}

// Decode copies document data into out using `doc` struct tags.
// Timestamps may arrive as time.Time (Firestore) or RFC 3339 strings (SQL).
func Decode(doc Document, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "doc",
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(doc.Data); err != nil {
		return fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return nil
}
