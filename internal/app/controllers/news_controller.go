package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/services"
	"github.com/osahenru/uniportal/internal/middleware"
	"github.com/osahenru/uniportal/internal/pkg/helpers"
)

// NewsController handles news article operations
type NewsController struct {
	newsService services.NewsService
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService) *NewsController {
	return &NewsController{newsService: newsService}
}

// ListNews handles retrieving news articles with optional filtering
// @Summary List news articles
// @Description Retrieves a filtered, paginated page of news articles
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search query over title and description"
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status (draft|published)"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size (default: 10, max: 100)" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.NewsListResponse}
// @Router /news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	response := c.newsService.Search(ctx.Query("q"), ctx.Query("category"), ctx.Query("status"), page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetNews handles retrieving one article by id
// @Summary Get a news article
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} dto.APIResponse{data=models.NewsArticle}
// @Failure 404 {object} dto.ErrorResponse
// @Router /news/{id} [get]
func (c *NewsController) GetNews(ctx *gin.Context) {
	article, err := c.newsService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(article))
}

// GetNewsBySlug handles retrieving one article by slug
// @Summary Get a news article by slug
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Article slug"
// @Success 200 {object} dto.APIResponse{data=models.NewsArticle}
// @Failure 404 {object} dto.ErrorResponse
// @Router /news/slug/{slug} [get]
func (c *NewsController) GetNewsBySlug(ctx *gin.Context) {
	article, err := c.newsService.GetBySlug(ctx.Param("slug"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(article))
}

// CreateNews handles creating a news article
// @Summary Create a news article
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNewsRequest true "Article data"
// @Success 201 {object} dto.APIResponse{data=models.NewsArticle}
// @Failure 400 {object} dto.ErrorResponse
// @Router /news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	article, err := c.newsService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(article))
}

// UpdateNews handles partially updating a news article
// @Summary Update a news article
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body models.NewsPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.NewsArticle}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /news/{id} [put]
func (c *NewsController) UpdateNews(ctx *gin.Context) {
	var patch models.NewsPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	article, err := c.newsService.Update(ctx.Request.Context(), ctx.Param("id"), &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(article))
}

// DeleteNews handles deleting a news article
// @Summary Delete a news article
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /news/{id} [delete]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	if err := c.newsService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
