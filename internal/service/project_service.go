package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/gorm"

	"constructora/internal/cache"
	"constructora/internal/errors"
	"constructora/internal/model"
	"constructora/internal/repository"
)

const projectCacheTTL = 5 * time.Minute

// MediaStore persists uploaded files and resolves their public URLs.
type MediaStore interface {
	SaveProjectFile(projectID, originalName string, r io.Reader) (string, error)
	RemoveFile(fileURL string) error
}

// MediaUpload is one incoming file from a multipart request.
type MediaUpload struct {
	Filename string
	Mime     string
	File     io.ReadSeeker
}

// ProjectService exposes portfolio project operations, including media
// upload and removal.
type ProjectService interface {
	ListProjects(ctx context.Context, offset, limit int) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	CreateProject(ctx context.Context, project *model.Project) (*model.Project, error)
	UpdateProject(ctx context.Context, id string, input *model.Project) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) error
	UploadMedia(ctx context.Context, projectID string, upload MediaUpload, description *string, isBefore *bool) (*model.ProjectMedia, error)
	UploadMediaBatch(ctx context.Context, projectID string, uploads []MediaUpload, description *string, isBefore *bool) ([]model.ProjectMedia, error)
	DeleteMedia(ctx context.Context, projectID, mediaID string) error
}

type projectService struct {
	projects  repository.ProjectRepository
	media     repository.ProjectMediaRepository
	store     MediaStore
	validator *UploadValidator
	cache     *cache.Client
}

// NewProjectService builds a ProjectService.
func NewProjectService(
	projects repository.ProjectRepository,
	media repository.ProjectMediaRepository,
	store MediaStore,
	validator *UploadValidator,
	cacheClient *cache.Client,
) ProjectService {
	return &projectService{
		projects:  projects,
		media:     media,
		store:     store,
		validator: validator,
		cache:     cacheClient,
	}
}

func (s *projectService) cacheKey(id string) string {
	return "project:" + id
}

func (s *projectService) ListProjects(ctx context.Context, offset, limit int) ([]model.Project, error) {
	return s.projects.List(ctx, offset, limit)
}

func (s *projectService) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var cached model.Project
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), project, projectCacheTTL)
	return project, nil
}

func (s *projectService) CreateProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, input *model.Project) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, err
	}

	project.Title = input.Title
	project.Description = input.Description
	project.Location = input.Location
	project.Service = input.Service
	project.CompletionDate = input.CompletionDate
	project.IsActive = input.IsActive

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProjectNotFound
		}
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// UploadMedia validates one file, stores it under a server-generated name and
// records it against the project.
func (s *projectService) UploadMedia(ctx context.Context, projectID string, upload MediaUpload, description *string, isBefore *bool) (*model.ProjectMedia, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, err
	}
	media, err := s.saveOne(ctx, projectID, upload, description, isBefore)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(projectID))
	return media, nil
}

// UploadMediaBatch validates and stores several files in one request. Each
// file is validated before it is written; a failing file aborts the batch.
func (s *projectService) UploadMediaBatch(ctx context.Context, projectID string, uploads []MediaUpload, description *string, isBefore *bool) ([]model.ProjectMedia, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, err
	}

	medias := make([]model.ProjectMedia, 0, len(uploads))
	for _, upload := range uploads {
		media, err := s.saveOne(ctx, projectID, upload, description, isBefore)
		if err != nil {
			return nil, err
		}
		medias = append(medias, *media)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(projectID))
	return medias, nil
}

func (s *projectService) saveOne(ctx context.Context, projectID string, upload MediaUpload, description *string, isBefore *bool) (*model.ProjectMedia, error) {
	if err := s.validator.Validate(upload.Mime, upload.File); err != nil {
		return nil, err
	}

	fileURL, err := s.store.SaveProjectFile(projectID, upload.Filename, upload.File)
	if err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	mime := upload.Mime
	if mime == "" {
		mime = "application/octet-stream"
	}
	media := &model.ProjectMedia{
		ProjectID:   projectID,
		FileURL:     fileURL,
		Mime:        mime,
		MediaType:   model.MediaTypeFor(mime),
		Description: description,
		IsBefore:    isBefore,
	}
	if err := s.media.Create(ctx, media); err != nil {
		// The record is authoritative; drop the orphaned file.
		if rerr := s.store.RemoveFile(fileURL); rerr != nil {
			log.Printf("warning: remove orphaned media file %s: %v", fileURL, rerr)
		}
		return nil, fmt.Errorf("create media record: %w", err)
	}
	return media, nil
}

// DeleteMedia removes the media record and deletes its file best-effort: a
// failing file removal is logged but never fails the delete.
func (s *projectService) DeleteMedia(ctx context.Context, projectID, mediaID string) error {
	media, err := s.media.FindByID(ctx, mediaID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrMediaNotFound
		}
		return err
	}
	if media.ProjectID != projectID {
		return errors.ErrMediaNotFound
	}

	if err := s.store.RemoveFile(media.FileURL); err != nil {
		log.Printf("warning: remove media file %s: %v", media.FileURL, err)
	}

	if err := s.media.Delete(ctx, mediaID); err != nil {
		return fmt.Errorf("delete media record: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(projectID))
	return nil
}
