package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/services"
	"github.com/osahenru/uniportal/internal/middleware"
	"github.com/osahenru/uniportal/internal/pkg/helpers"
)

// MediaController handles media library operations
type MediaController struct {
	mediaService services.MediaService
}

// NewMediaController creates a new MediaController
func NewMediaController(mediaService services.MediaService) *MediaController {
	return &MediaController{mediaService: mediaService}
}

// ListMedia handles retrieving media files with optional filtering
// @Summary List media files
// @Description Retrieves a filtered, paginated page of media files
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query over filename and original name"
// @Param type query string false "Filter by type (image|document|video)"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size (default: 10, max: 100)" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.MediaListResponse}
// @Router /media [get]
func (c *MediaController) ListMedia(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	response := c.mediaService.Search(ctx.Query("q"), ctx.Query("type"), page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetMedia handles retrieving one media record by id
// @Summary Get a media file record
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param id path string true "File ID"
// @Success 200 {object} dto.APIResponse{data=dto.MediaFileResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /media/{id} [get]
func (c *MediaController) GetMedia(ctx *gin.Context) {
	file, err := c.mediaService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.FromMediaFile(file, helpers.FormatFileSize(file.Size))))
}

// UploadMedia handles uploading a file to the media library
// @Summary Upload a media file
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} dto.APIResponse{data=dto.MediaFileResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Router /media [post]
func (c *MediaController) UploadMedia(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is required").
			WithField("file").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := c.mediaService.Upload(ctx.Request.Context(), fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(
		dto.FromMediaFile(file, helpers.FormatFileSize(file.Size))))
}

// DeleteMedia handles deleting a media file
// @Summary Delete a media file
// @Tags media
// @Produce json
// @Security BearerAuth
// @Param id path string true "File ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /media/{id} [delete]
func (c *MediaController) DeleteMedia(ctx *gin.Context) {
	if err := c.mediaService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
