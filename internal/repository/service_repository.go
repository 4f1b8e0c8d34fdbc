package repository

import (
	"context"

	"gorm.io/gorm"

	"constructora/internal/model"
)

// ServiceRepository defines catalog service persistence operations.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	Update(ctx context.Context, service *model.Service) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Service, error)
	List(ctx context.Context, offset, limit int) ([]model.Service, error)
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new catalog service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) Update(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Service{}, "id = ?", id).Error
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (*model.Service, error) {
	var service model.Service
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) List(ctx context.Context, offset, limit int) ([]model.Service, error) {
	var services []model.Service
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
