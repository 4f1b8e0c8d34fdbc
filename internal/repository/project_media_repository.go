package repository

import (
	"context"

	"gorm.io/gorm"

	"constructora/internal/model"
)

// ProjectMediaRepository defines project media persistence operations.
type ProjectMediaRepository interface {
	Create(ctx context.Context, media *model.ProjectMedia) error
	FindByID(ctx context.Context, id string) (*model.ProjectMedia, error)
	Delete(ctx context.Context, id string) error
}

type projectMediaRepository struct {
	db *gorm.DB
}

// NewProjectMediaRepository creates a new project media repository.
func NewProjectMediaRepository(db *gorm.DB) ProjectMediaRepository {
	return &projectMediaRepository{db: db}
}

func (r *projectMediaRepository) Create(ctx context.Context, media *model.ProjectMedia) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *projectMediaRepository) FindByID(ctx context.Context, id string) (*model.ProjectMedia, error) {
	var media model.ProjectMedia
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *projectMediaRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ProjectMedia{}, "id = ?", id).Error
}
