package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adikale/placementhub/internal/app/models/dto"
	"github.com/adikale/placementhub/internal/app/services"
	"github.com/adikale/placementhub/internal/middleware"
)

// ReferralController handles alumni referral posts and requests
type ReferralController struct {
	referralService *services.ReferralService
}

// NewReferralController creates a new ReferralController
func NewReferralController(referralService *services.ReferralService) *ReferralController {
	return &ReferralController{
		referralService: referralService,
	}
}

// CreatePost publishes a referral opening
// @Summary Create a referral post
// @Description Publishes a referral opening on behalf of the authenticated alumnus
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReferralPostRequest true "Opening details"
// @Success 201 {object} dto.APIResponse{data=models.ReferralPost} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /referrals [post]
func (c *ReferralController) CreatePost(ctx *gin.Context) {
	var req dto.CreateReferralPostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	post, err := c.referralService.CreatePost(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      post,
		Timestamp: time.Now(),
	})
}

// RequestReferral asks the post's author for a referral
// @Summary Request a referral
// @Description Sends a referral request from the authenticated student to the post's author
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Referral post ID"
// @Param request body dto.ReferralRequestRequest true "Optional message"
// @Success 201 {object} dto.APIResponse{data=models.ReferralRequest} "Request sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid post ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 409 {object} dto.ErrorResponse "Already requested"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /referrals/{id}/request [post]
func (c *ReferralController) RequestReferral(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx, "id", "post ID")
	if !ok {
		return
	}

	var req dto.ReferralRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	request, err := c.referralService.RequestReferral(ctx, middleware.CurrentUserID(ctx), postID, req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      request,
		Timestamp: time.Now(),
	})
}

// Respond records the alumnus's decision on a referral request
// @Summary Respond to a referral request
// @Description Lets the post's author approve, refer or reject a request, with an optional note, and notifies the student
// @Tags referrals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Referral request ID"
// @Param request body dto.RespondReferralRequest true "Decision"
// @Success 200 {object} dto.APIResponse "Response recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid action"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Request belongs to a different alumnus"
// @Failure 404 {object} dto.ErrorResponse "Request not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /referral-requests/{id}/respond [post]
func (c *ReferralController) Respond(ctx *gin.Context) {
	requestID, ok := parseIDParam(ctx, "id", "request ID")
	if !ok {
		return
	}

	var req dto.RespondReferralRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.referralService.Respond(ctx, middleware.CurrentUserID(ctx), requestID, req.Action, req.Note); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Response recorded",
		Timestamp: time.Now(),
	})
}
