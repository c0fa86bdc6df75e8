package controllers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/velmart/velmart-api/auth"
	"github.com/velmart/velmart-api/config"
	"github.com/velmart/velmart-api/models"
	"github.com/velmart/velmart-api/services"
	"github.com/velmart/velmart-api/utils"
)

const (
	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "email or username already taken"
	msgInvalidCredentials    = "invalid email or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUserCreated           = "Account created successfully."
	msgUserNotFound          = "user with this email does not exist"
	msgResetLinkSent         = "Check your email for a password reset link."
	msgInvalidResetLink      = "Invalid or expired reset link"
	msgUnableToResetPassword = "unable to reset password"
	msgGoogleNotConfigured   = "Google authentication is not configured."
	msgGoogleAuthFailed      = "Google authentication failed."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// statusForError maps service error kinds to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrSelfRevoke),
		errors.Is(err, services.ErrWrongPassword):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type AuthController struct {
	Accounts *services.AccountService
	Verifier auth.TokenVerifier
	Cfg      *config.Config
}

func NewAuthController(accounts *services.AccountService, verifier auth.TokenVerifier, cfg *config.Config) *AuthController {
	return &AuthController{Accounts: accounts, Verifier: verifier, Cfg: cfg}
}

func (c *AuthController) issueToken(ctx *gin.Context, user *models.User) {
	tokenString, err := auth.GenerateToken(*user, c.Cfg.JWTSecret, c.Cfg.TokenTTL)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": tokenString,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Signup handles local account registration. The role is derived from the
// admin-email allowlist, never from the request body.
func (c *AuthController) Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	_, err := c.Accounts.Register(signUpData.Username, signUpData.Email, signUpData.Password)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			sendErrorResponse(ctx, http.StatusConflict, msgUserAlreadyExists)
			return
		}
		log.Println("User creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated})
}

// Login handles local authentication.
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := c.Accounts.Authenticate(loginData.Email, loginData.Password)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrWrongPassword) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		log.Println("Login error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	c.issueToken(ctx, user)
}

// GoogleLogin verifies a Google ID token and signs the account in, creating
// it on first login.
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	if !c.Cfg.GoogleAuthEnabled() {
		sendErrorResponse(ctx, http.StatusServiceUnavailable, msgGoogleNotConfigured)
		return
	}

	var body struct {
		Credential string `json:"credential" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	claims, err := c.Verifier.Verify(body.Credential)
	if err != nil {
		log.Println("Google auth error:", err)
		sendErrorResponse(ctx, http.StatusUnauthorized, msgGoogleAuthFailed)
		return
	}

	user, err := c.Accounts.LoginWithGoogle(claims.Email, claims.Name, claims.Subject)
	if err != nil {
		log.Println("Google login error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	c.issueToken(ctx, user)
}

// SendPasswordResetLink emails a single-use reset link to the user.
func (c *AuthController) SendPasswordResetLink(ctx *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, token, err := c.Accounts.CreateResetToken(body.Email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserNotFound)
			return
		}
		log.Println("Reset token error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	emailData := utils.EmailData{
		Name:      user.Username,
		Message:   "You requested a password reset. Click the button below to reset your password.",
		ActionURL: c.Cfg.FrontendURL + "/auth/reset-password?token=" + url.QueryEscape(token),
	}
	templatePath := filepath.Join("templates", "reset_password.html")
	if err := utils.SendEmail(c.Cfg, user.Email, "Password Reset", emailData, templatePath); err != nil {
		log.Println("Error sending password reset email:", err)
	} else {
		log.Println("Password reset email sent successfully to:", user.Email)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgResetLinkSent})
}

// ResetPassword consumes a reset token and sets a new password.
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var body struct {
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	resetToken := ctx.Param("resetToken")
	if err := c.Accounts.ResetPassword(resetToken, body.Password); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidResetLink)
			return
		}
		log.Println("Error resetting password:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgUnableToResetPassword)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Password reset successful"})
}
