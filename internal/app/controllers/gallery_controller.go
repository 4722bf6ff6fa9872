package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/services"
	"github.com/osahenru/uniportal/internal/middleware"
	"github.com/osahenru/uniportal/internal/pkg/helpers"
)

// GalleryController handles gallery operations
type GalleryController struct {
	galleryService services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService services.GalleryService) *GalleryController {
	return &GalleryController{galleryService: galleryService}
}

// ListGallery handles retrieving gallery items with optional filtering
// @Summary List gallery items
// @Description Retrieves a filtered, paginated page of gallery items
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query over title, description and tags"
// @Param category query string false "Filter by category"
// @Param featured query bool false "Filter by featured flag"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size (default: 10, max: 100)" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.GalleryListResponse}
// @Router /gallery [get]
func (c *GalleryController) ListGallery(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var featured *bool
	if raw := ctx.Query("featured"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			featured = &parsed
		}
	}

	response := c.galleryService.Search(ctx.Query("q"), ctx.Query("category"), featured, page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetGalleryItem handles retrieving one gallery item by id
// @Summary Get a gallery item
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} dto.APIResponse{data=models.GalleryItem}
// @Failure 404 {object} dto.ErrorResponse
// @Router /gallery/{id} [get]
func (c *GalleryController) GetGalleryItem(ctx *gin.Context) {
	item, err := c.galleryService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// CreateGalleryItem handles creating a gallery item
// @Summary Create a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGalleryItemRequest true "Item data"
// @Success 201 {object} dto.APIResponse{data=models.GalleryItem}
// @Failure 400 {object} dto.ErrorResponse
// @Router /gallery [post]
func (c *GalleryController) CreateGalleryItem(ctx *gin.Context) {
	var req dto.CreateGalleryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.galleryService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// UpdateGalleryItem handles partially updating a gallery item
// @Summary Update a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body models.GalleryPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.GalleryItem}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /gallery/{id} [put]
func (c *GalleryController) UpdateGalleryItem(ctx *gin.Context) {
	var patch models.GalleryPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.galleryService.Update(ctx.Request.Context(), ctx.Param("id"), &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// DeleteGalleryItem handles deleting a gallery item
// @Summary Delete a gallery item
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /gallery/{id} [delete]
func (c *GalleryController) DeleteGalleryItem(ctx *gin.Context) {
	if err := c.galleryService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
