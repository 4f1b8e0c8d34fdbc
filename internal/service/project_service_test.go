package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"constructora/internal/errors"
	"constructora/internal/model"
	"constructora/internal/storage"
)

// MockProjectRepository is a mock implementation of repository.ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context, offset, limit int) ([]model.Project, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

// MockProjectMediaRepository is a mock implementation of repository.ProjectMediaRepository.
type MockProjectMediaRepository struct {
	mock.Mock
}

func (m *MockProjectMediaRepository) Create(ctx context.Context, media *model.ProjectMedia) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *MockProjectMediaRepository) FindByID(ctx context.Context, id string) (*model.ProjectMedia, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectMedia), args.Error(1)
}

func (m *MockProjectMediaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMediaStore is a mock implementation of MediaStore.
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) SaveProjectFile(projectID, originalName string, r io.Reader) (string, error) {
	args := m.Called(projectID, originalName, r)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStore) RemoveFile(fileURL string) error {
	args := m.Called(fileURL)
	return args.Error(0)
}

func newTestValidator() *UploadValidator {
	return NewUploadValidator([]string{"image/jpeg", "image/png", "video/mp4"}, 5*1024*1024)
}

func TestProjectService_UploadMedia(t *testing.T) {
	project := &model.Project{ID: "proj-1", Title: "Villa"}

	t.Run("stores file and creates record", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		mediaRepo := new(MockProjectMediaRepository)
		store, err := storage.NewDiskStore(t.TempDir())
		require.NoError(t, err)

		projectRepo.On("FindByID", mock.Anything, "proj-1").Return(project, nil)
		mediaRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ProjectMedia")).Return(nil)

		svc := NewProjectService(projectRepo, mediaRepo, store, newTestValidator(), nil)
		media, err := svc.UploadMedia(context.Background(), "proj-1", MediaUpload{
			Filename: "facade.jpg",
			Mime:     "image/jpeg",
			File:     bytes.NewReader([]byte("jpeg bytes")),
		}, nil, nil)

		assert.NoError(t, err)
		require.NotNil(t, media)
		assert.Equal(t, "proj-1", media.ProjectID)
		assert.Equal(t, "image/jpeg", media.Mime)
		assert.Equal(t, model.MediaTypeImage, media.MediaType)
		assert.Contains(t, media.FileURL, "/uploads/projects/proj-1/")
		assert.Contains(t, media.FileURL, "facade.jpg")

		projectRepo.AssertExpectations(t)
		mediaRepo.AssertExpectations(t)
	})

	t.Run("project not found", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		mediaRepo := new(MockProjectMediaRepository)
		store := new(MockMediaStore)

		projectRepo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

		svc := NewProjectService(projectRepo, mediaRepo, store, newTestValidator(), nil)
		_, err := svc.UploadMedia(context.Background(), "missing", MediaUpload{
			Filename: "facade.jpg",
			Mime:     "image/jpeg",
			File:     bytes.NewReader([]byte("jpeg bytes")),
		}, nil, nil)

		assert.Equal(t, errors.ErrProjectNotFound, err)
		store.AssertNotCalled(t, "SaveProjectFile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejected mime never touches the store", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		mediaRepo := new(MockProjectMediaRepository)
		store := new(MockMediaStore)

		projectRepo.On("FindByID", mock.Anything, "proj-1").Return(project, nil)

		svc := NewProjectService(projectRepo, mediaRepo, store, newTestValidator(), nil)
		_, err := svc.UploadMedia(context.Background(), "proj-1", MediaUpload{
			Filename: "animation.gif",
			Mime:     "image/gif",
			File:     bytes.NewReader([]byte("gif bytes")),
		}, nil, nil)

		assert.Equal(t, errors.ErrUnsupportedMediaType, err)
		store.AssertNotCalled(t, "SaveProjectFile", mock.Anything, mock.Anything, mock.Anything)
		mediaRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("failed record drops the stored file", func(t *testing.T) {
		projectRepo := new(MockProjectRepository)
		mediaRepo := new(MockProjectMediaRepository)
		store := new(MockMediaStore)

		projectRepo.On("FindByID", mock.Anything, "proj-1").Return(project, nil)
		store.On("SaveProjectFile", "proj-1", "facade.jpg", mock.Anything).Return("/uploads/projects/proj-1/abc_facade.jpg", nil)
		mediaRepo.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("db down"))
		store.On("RemoveFile", "/uploads/projects/proj-1/abc_facade.jpg").Return(nil)

		svc := NewProjectService(projectRepo, mediaRepo, store, newTestValidator(), nil)
		_, err := svc.UploadMedia(context.Background(), "proj-1", MediaUpload{
			Filename: "facade.jpg",
			Mime:     "image/jpeg",
			File:     bytes.NewReader([]byte("jpeg bytes")),
		}, nil, nil)

		assert.Error(t, err)
		store.AssertExpectations(t)
	})
}

// Two uploads sharing the original filename must both succeed and land in
// two distinct stored files.
func TestProjectService_UploadMediaBatch_SameFilename(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	mediaRepo := new(MockProjectMediaRepository)
	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	projectRepo.On("FindByID", mock.Anything, "proj-1").Return(&model.Project{ID: "proj-1"}, nil)
	mediaRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ProjectMedia")).Return(nil).Twice()

	svc := NewProjectService(projectRepo, mediaRepo, store, newTestValidator(), nil)
	medias, err := svc.UploadMediaBatch(context.Background(), "proj-1", []MediaUpload{
		{Filename: "site.png", Mime: "image/png", File: bytes.NewReader([]byte("first"))},
		{Filename: "site.png", Mime: "image/png", File: bytes.NewReader([]byte("second"))},
	}, nil, nil)

	assert.NoError(t, err)
	require.Len(t, medias, 2)
	assert.NotEqual(t, medias[0].FileURL, medias[1].FileURL)
	mediaRepo.AssertExpectations(t)
}

func TestProjectService_DeleteMedia(t *testing.T) {
	media := &model.ProjectMedia{
		ID:        "media-1",
		ProjectID: "proj-1",
		FileURL:   "/uploads/projects/proj-1/abc_facade.jpg",
	}

	t.Run("file removal failure does not fail the delete", func(t *testing.T) {
		mediaRepo := new(MockProjectMediaRepository)
		store := new(MockMediaStore)

		mediaRepo.On("FindByID", mock.Anything, "media-1").Return(media, nil)
		store.On("RemoveFile", media.FileURL).Return(fmt.Errorf("file already gone"))
		mediaRepo.On("Delete", mock.Anything, "media-1").Return(nil)

		svc := NewProjectService(new(MockProjectRepository), mediaRepo, store, newTestValidator(), nil)
		err := svc.DeleteMedia(context.Background(), "proj-1", "media-1")

		assert.NoError(t, err)
		mediaRepo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("media belonging to another project is not found", func(t *testing.T) {
		mediaRepo := new(MockProjectMediaRepository)
		store := new(MockMediaStore)

		mediaRepo.On("FindByID", mock.Anything, "media-1").Return(media, nil)

		svc := NewProjectService(new(MockProjectRepository), mediaRepo, store, newTestValidator(), nil)
		err := svc.DeleteMedia(context.Background(), "other-project", "media-1")

		assert.Equal(t, errors.ErrMediaNotFound, err)
		store.AssertNotCalled(t, "RemoveFile", mock.Anything)
		mediaRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing media record", func(t *testing.T) {
		mediaRepo := new(MockProjectMediaRepository)
		mediaRepo.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		svc := NewProjectService(new(MockProjectRepository), mediaRepo, new(MockMediaStore), newTestValidator(), nil)
		err := svc.DeleteMedia(context.Background(), "proj-1", "ghost")

		assert.Equal(t, errors.ErrMediaNotFound, err)
	})
}

func TestProjectService_UpdateProject(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	existing := &model.Project{ID: "proj-1", Title: "Old title", IsActive: true}

	projectRepo.On("FindByID", mock.Anything, "proj-1").Return(existing, nil)
	projectRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	svc := NewProjectService(projectRepo, new(MockProjectMediaRepository), new(MockMediaStore), newTestValidator(), nil)
	updated, err := svc.UpdateProject(context.Background(), "proj-1", &model.Project{
		Title:    "New title",
		IsActive: false,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.False(t, updated.IsActive)
	projectRepo.AssertExpectations(t)
}
