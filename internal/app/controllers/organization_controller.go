package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/app/models/dto"
	"github.com/osahenru/uniportal/internal/app/services"
	"github.com/osahenru/uniportal/internal/middleware"
)

// OrganizationController handles organizational chart operations
type OrganizationController struct {
	orgService services.OrganizationService
}

// NewOrganizationController creates a new OrganizationController
func NewOrganizationController(orgService services.OrganizationService) *OrganizationController {
	return &OrganizationController{orgService: orgService}
}

func orgTypeParam(ctx *gin.Context) models.OrganizationType {
	return models.OrganizationType(ctx.Param("type"))
}

// GetChart handles retrieving one organizational chart
// @Summary Get an organizational chart
// @Description Retrieves all sections of the dean or ITC chart with heads and members
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param type path string true "Chart type (dean|itc)"
// @Success 200 {object} dto.APIResponse{data=[]models.ExcoSection}
// @Failure 400 {object} dto.ErrorResponse
// @Router /organization/{type} [get]
func (c *OrganizationController) GetChart(ctx *gin.Context) {
	sections, err := c.orgService.GetChart(orgTypeParam(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(sections))
}

// CreateSection handles adding a section to a chart
// @Summary Create a section
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Chart type (dean|itc)"
// @Param request body dto.CreateSectionRequest true "Section data"
// @Success 201 {object} dto.APIResponse{data=models.ExcoSection}
// @Failure 400 {object} dto.ErrorResponse
// @Router /organization/{type}/sections [post]
func (c *OrganizationController) CreateSection(ctx *gin.Context) {
	var req dto.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	section, err := c.orgService.AddSection(ctx.Request.Context(), orgTypeParam(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(section))
}

// UpdateSection handles renaming a section
// @Summary Update a section
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Chart type (dean|itc)"
// @Param id path string true "Section ID"
// @Param request body models.SectionPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.ExcoSection}
// @Failure 404 {object} dto.ErrorResponse
// @Router /organization/{type}/sections/{id} [put]
func (c *OrganizationController) UpdateSection(ctx *gin.Context) {
	var patch models.SectionPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	section, err := c.orgService.UpdateSection(ctx.Request.Context(), orgTypeParam(ctx), ctx.Param("id"), &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(section))
}

// DeleteSection handles deleting a section and everything under it
// @Summary Delete a section
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param type path string true "Chart type (dean|itc)"
// @Param id path string true "Section ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /organization/{type}/sections/{id} [delete]
func (c *OrganizationController) DeleteSection(ctx *gin.Context) {
	if err := c.orgService.DeleteSection(ctx.Request.Context(), orgTypeParam(ctx), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}

// CreateMember handles adding a member to a section
// @Summary Add a committee member
// @Description Adds a member to a section. A member flagged as head takes the section's head slot.
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Chart type (dean|itc)"
// @Param id path string true "Section ID"
// @Param request body dto.CreateMemberRequest true "Member data"
// @Success 201 {object} dto.APIResponse{data=models.ExcoMember}
// @Failure 404 {object} dto.ErrorResponse
// @Router /organization/{type}/sections/{id}/members [post]
func (c *OrganizationController) CreateMember(ctx *gin.Context) {
	var req dto.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.orgService.AddMember(ctx.Request.Context(), orgTypeParam(ctx), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(member))
}

// UpdateMember handles partially updating a member
// @Summary Update a committee member
// @Tags organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Chart type (dean|itc)"
// @Param id path string true "Section ID"
// @Param memberId path string true "Member ID"
// @Param request body models.MemberPatch true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.ExcoMember}
// @Failure 404 {object} dto.ErrorResponse
// @Router /organization/{type}/sections/{id}/members/{memberId} [put]
func (c *OrganizationController) UpdateMember(ctx *gin.Context) {
	var patch models.MemberPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.orgService.UpdateMember(ctx.Request.Context(), orgTypeParam(ctx), ctx.Param("id"), ctx.Param("memberId"), &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(member))
}

// DeleteMember handles removing a member from a section
// @Summary Delete a committee member
// @Tags organization
// @Produce json
// @Security BearerAuth
// @Param type path string true "Chart type (dean|itc)"
// @Param id path string true "Section ID"
// @Param memberId path string true "Member ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /organization/{type}/sections/{id}/members/{memberId} [delete]
func (c *OrganizationController) DeleteMember(ctx *gin.Context) {
	if err := c.orgService.DeleteMember(ctx.Request.Context(), orgTypeParam(ctx), ctx.Param("id"), ctx.Param("memberId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": true}))
}
