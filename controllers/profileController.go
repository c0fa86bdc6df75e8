package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/middlewares"
	"github.com/velmart/velmart-api/services"
)

type ProfileController struct {
	Accounts *services.AccountService
}

func NewProfileController(accounts *services.AccountService) *ProfileController {
	return &ProfileController{Accounts: accounts}
}

// GetProfile returns the principal's account details.
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	user, err := c.Accounts.GetByID(principal.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
			return
		}
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	})
}

// UpdateProfile changes username/email and optionally the password. A
// password change requires the current password.
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	var body struct {
		Username        string `json:"username" binding:"required"`
		Email           string `json:"email" binding:"required,email"`
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := c.Accounts.UpdateProfile(principal.UserID, body.Username, body.Email, body.CurrentPassword, body.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrWrongPassword) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Current password is incorrect")
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
			return
		}
		log.Println("Profile update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Profile updated"})
}
