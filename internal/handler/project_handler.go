package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"constructora/internal/model"
	"constructora/internal/service"
)

// ProjectHandler handles portfolio project endpoints.
type ProjectHandler struct {
	projects service.ProjectService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projects service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ProjectRequest represents a project create/update payload.
type ProjectRequest struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description" validate:"required"`
	Location       string    `json:"location" validate:"required"`
	Service        string    `json:"service" validate:"required"`
	CompletionDate time.Time `json:"completion_date" validate:"required"`
	IsActive       *bool     `json:"is_active"`
}

func (r *ProjectRequest) toModel() *model.Project {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.Project{
		Title:          r.Title,
		Description:    r.Description,
		Location:       r.Location,
		Service:        r.Service,
		CompletionDate: r.CompletionDate,
		IsActive:       active,
	}
}

// List godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows"
// @Success 200 {array} model.Project
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	skip, limit := pagination(c)
	projects, err := h.projects.ListProjects(c.Request().Context(), skip, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

// Get godoc
// @Summary Get project by id
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projects.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, project)
}

// Create godoc
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body ProjectRequest true "Project payload"
// @Success 201 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.CreateProject(c.Request().Context(), req.toModel())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, project)
}

// Update godoc
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body ProjectRequest true "Project payload"
// @Success 200 {object} model.Project
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.UpdateProject(c.Request().Context(), c.Param("id"), req.toModel())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary Delete project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projects.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// UploadMedia godoc
// @Summary Upload a project image or video
// @Tags projects
// @Accept mpfd
// @Produce json
// @Param id path string true "Project ID"
// @Param file formData file true "Media file"
// @Param description formData string false "Description"
// @Param is_before formData bool false "Before/after flag"
// @Success 201 {object} model.ProjectMedia
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/media [post]
func (h *ProjectHandler) UploadMedia(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	upload, closeFn, err := openUpload(fileHeader)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer closeFn()

	description, isBefore := mediaFormFields(c)
	media, err := h.projects.UploadMedia(c.Request().Context(), c.Param("id"), upload, description, isBefore)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, media)
}

// UploadMediaBatch godoc
// @Summary Upload several project media files at once
// @Tags projects
// @Accept mpfd
// @Produce json
// @Param id path string true "Project ID"
// @Param files formData file true "Media files"
// @Param description formData string false "Description"
// @Param is_before formData bool false "Before/after flag"
// @Success 201 {array} model.ProjectMedia
// @Failure 400 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/media/batch [post]
func (h *ProjectHandler) UploadMediaBatch(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart form")
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one file is required")
	}

	uploads := make([]service.MediaUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		upload, closeFn, err := openUpload(fh)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
		}
		defer closeFn()
		uploads = append(uploads, upload)
	}

	description, isBefore := mediaFormFields(c)
	medias, err := h.projects.UploadMediaBatch(c.Request().Context(), c.Param("id"), uploads, description, isBefore)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, medias)
}

// DeleteMedia godoc
// @Summary Delete a project media record and its file
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Param mediaID path string true "Media ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /projects/{id}/media/{mediaID} [delete]
func (h *ProjectHandler) DeleteMedia(c echo.Context) error {
	if err := h.projects.DeleteMedia(c.Request().Context(), c.Param("id"), c.Param("mediaID")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func openUpload(fh *multipart.FileHeader) (service.MediaUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return service.MediaUpload{}, nil, err
	}
	return service.MediaUpload{
		Filename: fh.Filename,
		Mime:     fh.Header.Get("Content-Type"),
		File:     f,
	}, func() { f.Close() }, nil
}

func mediaFormFields(c echo.Context) (description *string, isBefore *bool) {
	if v := c.FormValue("description"); v != "" {
		description = &v
	}
	if v := c.FormValue("is_before"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			isBefore = &parsed
		}
	}
	return description, isBefore
}
