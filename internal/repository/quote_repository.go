package repository

import (
	"context"

	"gorm.io/gorm"

	"constructora/internal/model"
)

// QuoteRepository defines quote request persistence operations.
type QuoteRepository interface {
	Create(ctx context.Context, quote *model.Quote) error
	Update(ctx context.Context, quote *model.Quote) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Quote, error)
	List(ctx context.Context, offset, limit int) ([]model.Quote, error)
}

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository.
func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Create(ctx context.Context, quote *model.Quote) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRepository) Update(ctx context.Context, quote *model.Quote) error {
	return r.db.WithContext(ctx).Save(quote).Error
}

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Quote{}, "id = ?", id).Error
}

func (r *quoteRepository) FindByID(ctx context.Context, id string) (*model.Quote, error) {
	var quote model.Quote
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&quote).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) List(ctx context.Context, offset, limit int) ([]model.Quote, error) {
	var quotes []model.Quote
	if err := r.db.WithContext(ctx).Order("created_at DESC").Offset(offset).Limit(limit).Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}
