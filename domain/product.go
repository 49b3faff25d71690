// Package domain defines core business types and interfaces.
package domain

import (
	"context"
	"time"
)

// Product represents a catalog product
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	CreatedDate time.Time `gorm:"not null" json:"created_date"`
}

// TableName returns the table name for Product rows.
func (Product) TableName() string {
	return "products"
}

// ProductStore defines the storage interface for products.
//
// Create assigns the id; ids are never reused after deletion. Update mutates
// only name, price and category; ID and CreatedDate are immutable. ListAll
// returns every product ordered by category descending, ties broken by
// ascending id.
type ProductStore interface {
	Create(ctx context.Context, product Product) (Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	Update(ctx context.Context, id int64, name string, price float64, category string) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]Product, error)
}
