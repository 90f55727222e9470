package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/services"
	"github.com/adikale/placementhub/internal/middleware"
)

// ResumeController handles resume quality scoring and PDF generation
type ResumeController struct {
	resumeService *services.ResumeService
}

// NewResumeController creates a new ResumeController
func NewResumeController(resumeService *services.ResumeService) *ResumeController {
	return &ResumeController{
		resumeService: resumeService,
	}
}

// Quality scores the caller's profile for resume completeness
// @Summary Score resume quality
// @Description Scores the authenticated student's profile out of 100 with improvement tips
// @Tags resume
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ResumeQualityResponse} "Score retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resume/quality [get]
func (c *ResumeController) Quality(ctx *gin.Context) {
	quality, err := c.resumeService.Quality(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      quality,
		Timestamp: time.Now(),
	})
}

// Build renders the caller's resume as a PDF
// @Summary Build resume PDF
// @Description Renders the authenticated student's profile into a single-page PDF resume
// @Tags resume
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ResumeBuildResponse} "Resume generated"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resume/build [post]
func (c *ResumeController) Build(ctx *gin.Context) {
	meta, err := c.resumeService.Build(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ResumeBuildResponse{
			FileName:    services.FileName(meta),
			GeneratedAt: meta.GeneratedAt.Format(time.RFC3339),
		},
		Timestamp: time.Now(),
	})
}

// Download serves the caller's resume PDF
// @Summary Download resume PDF
// @Description Streams the authenticated student's resume PDF, generating it first when needed
// @Tags resume
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file "Resume PDF"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resume/download [get]
func (c *ResumeController) Download(ctx *gin.Context) {
	meta, err := c.resumeService.Download(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(meta.FilePath, services.FileName(meta))
}
