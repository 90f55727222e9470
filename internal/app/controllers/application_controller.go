package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/services"
	"github.com/adikale/placementhub/internal/middleware"
)

// ApplicationController handles drive applications and interview scheduling
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// Apply submits the caller's application to a drive
// @Summary Apply to a drive
// @Description Submits the authenticated student's application to an active drive
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied or drive completed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id}/apply [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "id", "drive ID")
	if !ok {
		return
	}

	application, err := c.applicationService.Apply(ctx, middleware.CurrentUserID(ctx), driveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// MyApplications lists the caller's applications
// @Summary List my applications
// @Description Retrieves the authenticated student's applications with their drives, newest first
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/me [get]
func (c *ApplicationController) MyApplications(ctx *gin.Context) {
	applications, err := c.applicationService.MyApplications(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      applications,
		Timestamp: time.Now(),
	})
}

// UpdateStatus moves an application to its next round
// @Summary Update application status
// @Description Moves an application through the selection pipeline and notifies the student
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "Next status"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Unknown status or transition not permitted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/status [put]
func (c *ApplicationController) UpdateStatus(ctx *gin.Context) {
	applicationID, ok := parseIDParam(ctx, "id", "application ID")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	application, err := c.applicationService.UpdateStatus(ctx, applicationID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      application,
		Timestamp: time.Now(),
	})
}

// ScheduleInterview books a student into an interview slot for a drive
// @Summary Schedule an interview
// @Description Books an interview slot for a student and notifies them. A date and time slot can be used once per drive.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Param request body dto.ScheduleInterviewRequest true "Interview details"
// @Success 201 {object} dto.APIResponse{data=models.InterviewSchedule} "Interview scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 409 {object} dto.ErrorResponse "Slot already booked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id}/schedule [post]
func (c *ApplicationController) ScheduleInterview(ctx *gin.Context) {
	driveID, ok := parseIDParam(ctx, "id", "drive ID")
	if !ok {
		return
	}

	var req dto.ScheduleInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule, err := c.applicationService.ScheduleInterview(ctx, driveID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// MySchedules lists the caller's upcoming interviews
// @Summary List my interview schedules
// @Description Retrieves the authenticated student's interview schedules in date order
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.InterviewSchedule} "Schedules retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/me [get]
func (c *ApplicationController) MySchedules(ctx *gin.Context) {
	schedules, err := c.applicationService.MySchedules(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedules,
		Timestamp: time.Now(),
	})
}
