package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/services"
	"github.com/adikale/placementhub/internal/middleware"
)

// SkillGapController handles skill gap analysis for students
type SkillGapController struct {
	skillGapService *services.SkillGapService
}

// NewSkillGapController creates a new SkillGapController
func NewSkillGapController(skillGapService *services.SkillGapService) *SkillGapController {
	return &SkillGapController{
		skillGapService: skillGapService,
	}
}

// GetRoles lists the target roles the analyzer knows about
// @Summary List analyzable roles
// @Description Retrieves the target roles available for skill gap analysis
// @Tags skill-gap
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SkillGapRolesResponse} "Roles retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /skill-gap/roles [get]
func (c *SkillGapController) GetRoles(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SkillGapRolesResponse{Roles: c.skillGapService.Roles()},
		Timestamp: time.Now(),
	})
}

// Analyze compares the caller's skills against a target role
// @Summary Analyze skill gap
// @Description Compares the authenticated student's skills against a target role and suggests learning resources for the missing ones
// @Tags skill-gap
// @Produce json
// @Security BearerAuth
// @Param role query string true "Target role" example("Data Analyst")
// @Success 200 {object} dto.APIResponse{data=dto.SkillGapResponse} "Analysis retrieved"
// @Failure 400 {object} dto.ErrorResponse "Missing role parameter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /skill-gap [get]
func (c *SkillGapController) Analyze(ctx *gin.Context) {
	role := ctx.Query("role")
	if role == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "role is required").WithField("role")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	analysis, err := c.skillGapService.AnalyzeForStudent(ctx, middleware.CurrentUserID(ctx), role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      analysis,
		Timestamp: time.Now(),
	})
}
