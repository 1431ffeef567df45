package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type record struct {
	Collection string            `gorm:"primaryKey;type:varchar(191)"`
	ID         string            `gorm:"primaryKey;type:varchar(191)"`
	Data       datatypes.JSONMap `gorm:"not null"`
	CreatedAt  time.Time         `gorm:"not null"`
	UpdatedAt  time.Time         `gorm:"not null"`
}

func (record) TableName() string { return "documents" }

// SQLStore keeps documents as JSON rows in a single table.
type SQLStore struct {
	db *gorm.DB
}

func NewSQL(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate creates the documents table.
func (s *SQLStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&record{})
}

// Put inserts or replaces a document. The console only reads documents; Put backs
// Seed for development databases and test fixtures.
func (s *SQLStore) Put(ctx context.Context, collection, id string, data map[string]any) error {
	now := time.Now().UTC()
	row := record{
		Collection: collection,
		ID:         id,
		Data:       datatypes.JSONMap(data),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}

func (s *SQLStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Document{}, false, nil
	}

	var row record
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Document{}, false, nil
	}
	if err != nil {
		return Document{}, false, err
	}

	return Document{ID: row.ID, Data: map[string]any(row.Data)}, true, nil
}

func (s *SQLStore) Find(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	query := s.db.WithContext(ctx).Where("collection = ?", collection)
	for _, f := range filters {
		expr, err := s.fieldExpr(f.Field)
		if err != nil {
			return nil, err
		}
		query = query.Where(expr+" = ?", f.Value)
	}

	var rows []record
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, Document{ID: row.ID, Data: map[string]any(row.Data)})
	}
	return docs, nil
}

// fieldExpr extracts a top-level JSON field as text for the active dialect.
func (s *SQLStore) fieldExpr(field string) (string, error) {
	if err := validateField(field); err != nil {
		return "", err
	}
	switch s.db.Dialector.Name() {
	case "postgres":
		return fmt.Sprintf("data->>'%s'", field), nil
	case "mysql":
		return fmt.Sprintf("JSON_UNQUOTE(JSON_EXTRACT(data, '$.%s'))", field), nil
	default:
		return fmt.Sprintf("json_extract(data, '$.%s')", field), nil
	}
}
