package docstore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClientSource yields the shared Firestore client, typically from the admin bootstrapper.
type ClientSource func(ctx context.Context) (*firestore.Client, error)

type firestoreStore struct {
	source ClientSource
}

func NewFirestore(source ClientSource) Store {
	return &firestoreStore{source: source}
}

func (s *firestoreStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.Contains(id, "/") {
		return Document{}, false, nil
	}

	client, err := s.source(ctx)
	if err != nil {
		return Document{}, false, err
	}

	snap, err := client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Document{}, false, nil
	}
	if err != nil {
		return Document{}, false, err
	}
	if !snap.Exists() {
		return Document{}, false, nil
	}

	return Document{ID: snap.Ref.ID, Data: snap.Data()}, true, nil
}

func (s *firestoreStore) Find(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	for _, f := range filters {
		if err := validateField(f.Field); err != nil {
			return nil, err
		}
	}

	client, err := s.source(ctx)
	if err != nil {
		return nil, err
	}

	query := client.Collection(collection).Query
	for _, f := range filters {
		query = query.Where(f.Field, "==", f.Value)
	}
	query = query.OrderBy(firestore.DocumentID, firestore.Asc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	docs := make([]Document, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}
