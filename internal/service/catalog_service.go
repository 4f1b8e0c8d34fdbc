package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"constructora/internal/cache"
	"constructora/internal/errors"
	"constructora/internal/model"
	"constructora/internal/repository"
)

const serviceListCacheKey = "services:list"
const serviceCacheTTL = 5 * time.Minute

// CatalogService exposes operations on the company's service catalog.
type CatalogService interface {
	ListServices(ctx context.Context, offset, limit int) ([]model.Service, error)
	CreateService(ctx context.Context, service *model.Service) (*model.Service, error)
	UpdateService(ctx context.Context, id string, input *model.Service) (*model.Service, error)
	DeleteService(ctx context.Context, id string) error
}

type catalogService struct {
	services repository.ServiceRepository
	cache    *cache.Client
}

// NewCatalogService builds a CatalogService with repository and cache.
func NewCatalogService(services repository.ServiceRepository, cacheClient *cache.Client) CatalogService {
	return &catalogService{services: services, cache: cacheClient}
}

func (s *catalogService) listKey(offset, limit int) string {
	return fmt.Sprintf("%s:%d:%d", serviceListCacheKey, offset, limit)
}

func (s *catalogService) ListServices(ctx context.Context, offset, limit int) ([]model.Service, error) {
	var cached []model.Service
	if s.cache.GetJSON(ctx, s.listKey(offset, limit), &cached) {
		return cached, nil
	}

	services, err := s.services.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, s.listKey(offset, limit), services, serviceCacheTTL)
	return services, nil
}

func (s *catalogService) CreateService(ctx context.Context, service *model.Service) (*model.Service, error) {
	if err := s.services.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	s.invalidateLists(ctx)
	return service, nil
}

func (s *catalogService) UpdateService(ctx context.Context, id string, input *model.Service) (*model.Service, error) {
	service, err := s.services.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrServiceNotFound
		}
		return nil, err
	}

	service.Title = input.Title
	service.Description = input.Description
	service.Details = input.Details
	service.ImageURL = input.ImageURL
	service.IsActive = input.IsActive

	if err := s.services.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	s.invalidateLists(ctx)
	return service, nil
}

func (s *catalogService) DeleteService(ctx context.Context, id string) error {
	if _, err := s.services.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrServiceNotFound
		}
		return err
	}
	if err := s.services.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	s.invalidateLists(ctx)
	return nil
}

// invalidateLists drops the default list page. Non-default pages age out via
// TTL instead of being tracked per key.
func (s *catalogService) invalidateLists(ctx context.Context) {
	_ = s.cache.Delete(ctx, s.listKey(0, 100))
}
