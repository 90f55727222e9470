package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/services"
	"github.com/adikale/placementhub/internal/middleware"
	"github.com/adikale/placementhub/internal/pkg/helpers"
)

// DriveController handles placement drive operations
type DriveController struct {
	driveService *services.DriveService
}

// NewDriveController creates a new DriveController
func NewDriveController(driveService *services.DriveService) *DriveController {
	return &DriveController{
		driveService: driveService,
	}
}

// parseIDParam parses a path parameter as an int64 and writes the validation
// error itself. The bool reports whether parsing succeeded.
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label)
		errorDetail = errorDetail.WithDetails(label + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateDrive handles drive creation by the placement office
// @Summary Create a placement drive
// @Description Creates a drive and notifies every eligible student
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDriveRequest true "Drive information"
// @Success 201 {object} dto.APIResponse{data=dto.CreateDriveResponse} "Drive created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives [post]
func (c *DriveController) CreateDrive(ctx *gin.Context) {
	var req dto.CreateDriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.driveService.Create(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetAllDrives lists drives
// @Summary List drives
// @Description Retrieves one page of drives, newest first. Pass active=true to hide completed drives.
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Only active drives"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.DriveListResponse} "Drives retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives [get]
func (c *DriveController) GetAllDrives(ctx *gin.Context) {
	activeOnly := ctx.Query("active") == "true"
	page, size := helpers.ParsePaginationParams(ctx)

	listing, err := c.driveService.ListPage(ctx, activeOnly, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      listing,
		Timestamp: time.Now(),
	})
}

// GetDriveDetail returns the placement-office view of a drive
// @Summary Get drive detail
// @Description Retrieves a drive with its eligible students, branch breakdown, applications, interview schedules and selected students
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=dto.DriveDetailResponse} "Drive detail retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id} [get]
func (c *DriveController) GetDriveDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "drive ID")
	if !ok {
		return
	}

	detail, err := c.driveService.Detail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      detail,
		Timestamp: time.Now(),
	})
}

// CompleteDrive closes a drive
// @Summary Complete a drive
// @Description Marks a drive completed and notifies its applicants. Completion is one-way.
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse "Drive completed"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 409 {object} dto.ErrorResponse "Drive already completed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id}/complete [post]
func (c *DriveController) CompleteDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "drive ID")
	if !ok {
		return
	}

	if err := c.driveService.Complete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Drive completed",
		Timestamp: time.Now(),
	})
}

// EligibleCount previews how many students a set of criteria would match
// @Summary Preview eligible student count
// @Description Counts students matching the given CGPA, backlog and branch criteria without creating a drive
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EligibleCountRequest true "Eligibility criteria"
// @Success 200 {object} dto.APIResponse{data=dto.EligibleCountResponse} "Count retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /eligibility/preview [post]
func (c *DriveController) EligibleCount(ctx *gin.Context) {
	var req dto.EligibleCountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	count, err := c.driveService.EligibleCount(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.EligibleCountResponse{Count: count},
		Timestamp: time.Now(),
	})
}

// RemindEligible re-notifies every eligible student about the drive
// @Summary Send application reminders
// @Description Notifies every student eligible for the drive to apply before the deadline
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=dto.EligibleCountResponse} "Reminders sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id}/remind [post]
func (c *DriveController) RemindEligible(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "drive ID")
	if !ok {
		return
	}

	notified, err := c.driveService.RemindEligible(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.EligibleCountResponse{Count: notified},
		Timestamp: time.Now(),
	})
}

// Broadcast sends a message to every applicant of a drive
// @Summary Broadcast to applicants
// @Description Sends a free-text notification to every student who applied to the drive
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Param request body dto.BroadcastRequest true "Message"
// @Success 200 {object} dto.APIResponse{data=dto.EligibleCountResponse} "Broadcast sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id}/broadcast [post]
func (c *DriveController) Broadcast(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "drive ID")
	if !ok {
		return
	}

	var req dto.BroadcastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	notified, err := c.driveService.BroadcastToApplicants(ctx, id, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.EligibleCountResponse{Count: notified},
		Timestamp: time.Now(),
	})
}
