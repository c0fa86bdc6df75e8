package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/middlewares"
	"github.com/velmart/velmart-api/services"
)

type AdminController struct {
	Accounts *services.AccountService
}

func NewAdminController(accounts *services.AccountService) *AdminController {
	return &AdminController{Accounts: accounts}
}

// ListAdmins returns every admin account plus the configured allowlist.
func (c *AdminController) ListAdmins(ctx *gin.Context) {
	admins, err := c.Accounts.ListAdmins()
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"admins":           admins,
		"configuredEmails": c.Accounts.AdminEmails(),
	})
}

// PromoteAdmin grants the admin role to an existing account by email.
func (c *AdminController) PromoteAdmin(ctx *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.Accounts.PromoteByEmail(body.Email); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found. The account must be created first.")
			return
		}
		log.Println("Promote error:", err)
		sendErrorResponse(ctx, statusForError(err), msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User promoted to administrator"})
}

// RevokeAdmin demotes an account to client. Revoking your own admin role is
// rejected.
func (c *AdminController) RevokeAdmin(ctx *gin.Context) {
	principal, _ := middlewares.GetPrincipal(ctx)

	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := c.Accounts.RevokeAdmin(principal.UserID, uint(userID)); err != nil {
		if errors.Is(err, services.ErrSelfRevoke) {
			sendErrorResponse(ctx, http.StatusBadRequest, "You cannot revoke your own administrator role")
			return
		}
		log.Println("Revoke error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Administrator role revoked"})
}
