package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"constructora/internal/errors"
	"constructora/internal/model"
	"constructora/internal/repository"
)

// QuoteService exposes customer quote request operations.
type QuoteService interface {
	CreateQuote(ctx context.Context, quote *model.Quote) (*model.Quote, error)
	ListQuotes(ctx context.Context, offset, limit int) ([]model.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id, status string) (*model.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
}

type quoteService struct {
	quotes repository.QuoteRepository
}

// NewQuoteService builds a QuoteService.
func NewQuoteService(quotes repository.QuoteRepository) QuoteService {
	return &quoteService{quotes: quotes}
}

// CreateQuote records a customer request. New quotes always start pending.
func (s *quoteService) CreateQuote(ctx context.Context, quote *model.Quote) (*model.Quote, error) {
	quote.Status = model.QuoteStatusPending
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	return quote, nil
}

func (s *quoteService) ListQuotes(ctx context.Context, offset, limit int) ([]model.Quote, error) {
	return s.quotes.List(ctx, offset, limit)
}

// UpdateQuoteStatus moves a quote to another lifecycle state.
func (s *quoteService) UpdateQuoteStatus(ctx context.Context, id, status string) (*model.Quote, error) {
	if !model.ValidQuoteStatus(status) {
		return nil, errors.ErrInvalidQuoteStatus
	}

	quote, err := s.quotes.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrQuoteNotFound
		}
		return nil, err
	}

	quote.Status = status
	if err := s.quotes.Update(ctx, quote); err != nil {
		return nil, fmt.Errorf("update quote: %w", err)
	}
	return quote, nil
}

func (s *quoteService) DeleteQuote(ctx context.Context, id string) error {
	if _, err := s.quotes.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrQuoteNotFound
		}
		return err
	}
	if err := s.quotes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}
