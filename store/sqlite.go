// Package store provides storage implementations for the product manager.
package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"productman/domain"
)

// SQLiteStore is a gorm/SQLite-backed implementation of domain.ProductStore.
// Every operation is a single statement and therefore its own transaction;
// callers never observe a partial write.
type SQLiteStore struct {
	db *gorm.DB
}

// compile-time assertion that SQLiteStore implements domain.ProductStore
var _ domain.ProductStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens the database file at path, creating it and its parent
// directory if needed, and migrates the products table. The primary key is
// declared AUTOINCREMENT so ids are never reused after deletion.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, domain.NewStorageError("open", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, domain.NewStorageError("open", err)
	}
	if err := db.AutoMigrate(&domain.Product{}); err != nil {
		return nil, domain.NewStorageError("migrate", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	product.ID = 0 // id is always assigned here
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return domain.Product{}, domain.NewStorageError("create", err)
	}
	return product, nil
}

func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	var product domain.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, domain.NewNotFoundError(id)
		}
		return domain.Product{}, domain.NewStorageError("get", err)
	}
	return product, nil
}

func (s *SQLiteStore) Update(ctx context.Context, id int64, name string, price float64, category string) error {
	res := s.db.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":     name,
			"price":    price,
			"category": category,
		})
	if res.Error != nil {
		return domain.NewStorageError("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(id)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	if res.Error != nil {
		return domain.NewStorageError("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundError(id)
	}
	return nil
}

func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := s.db.WithContext(ctx).Order("category DESC, id ASC").Find(&products).Error; err != nil {
		return nil, domain.NewStorageError("list", err)
	}
	return products, nil
}
