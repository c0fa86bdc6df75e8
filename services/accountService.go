package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/velmart/velmart-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

// resetTokenTTL bounds how long a password reset link stays valid.
const resetTokenTTL = time.Hour

type AccountService struct {
	DB *gorm.DB

	// adminEmails is the lower-cased allowlist that grants the admin role at
	// registration time.
	adminEmails []string
}

func NewAccountService(db *gorm.DB, adminEmails []string) *AccountService {
	normalized := make([]string, 0, len(adminEmails))
	for _, email := range adminEmails {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(email)))
	}
	return &AccountService{DB: db, adminEmails: normalized}
}

// RoleForEmail derives the role assigned at registration or first OAuth login.
func (s *AccountService) RoleForEmail(email string) models.Role {
	lowered := strings.ToLower(email)
	for _, admin := range s.adminEmails {
		if admin == lowered {
			return models.RoleAdmin
		}
	}
	return models.RoleClient
}

// AdminEmails exposes the configured allowlist for the admin panel.
func (s *AccountService) AdminEmails() []string {
	return s.adminEmails
}

// Register creates a local account. Email and username must both be unused.
func (s *AccountService) Register(username, email, password string) (*models.User, error) {
	var existing models.User
	result := s.DB.Where("email = ? OR username = ?", email, username).Limit(1).Find(&existing)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		return nil, ErrConflict
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Role:     s.RoleForEmail(email),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks email/password credentials for login.
func (s *AccountService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := comparePasswords(user.Password, password); err != nil {
		return nil, ErrWrongPassword
	}
	return &user, nil
}

// LoginWithGoogle finds the account matching a verified Google identity, or
// creates one. Accounts created this way carry an unusable password value, so
// they can only ever sign in through Google.
func (s *AccountService) LoginWithGoogle(email, name, subject string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		Username: name,
		Email:    email,
		Password: "google_oauth_" + subject,
		Role:     s.RoleForEmail(email),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID loads one account.
func (s *AccountService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes username/email, and optionally the password after
// verifying the current one.
func (s *AccountService) UpdateProfile(userID uint, username, email, currentPassword, newPassword string) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}

	updates := map[string]any{
		"username": username,
		"email":    email,
	}

	if newPassword != "" {
		if err := comparePasswords(user.Password, currentPassword); err != nil {
			return ErrWrongPassword
		}
		hashed, err := hashPassword(newPassword)
		if err != nil {
			return err
		}
		updates["password"] = hashed
	}

	return s.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

// ListAdmins returns every account currently holding the admin role.
func (s *AccountService) ListAdmins() ([]models.User, error) {
	admins := []models.User{}
	err := s.DB.Where("role = ?", models.RoleAdmin).Find(&admins).Error
	return admins, err
}

// PromoteByEmail grants the admin role to an existing account. The account
// must already exist; the allowlist only covers registration-time grants.
func (s *AccountService) PromoteByEmail(email string) error {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return ErrInvalidInput
	}

	result := s.DB.Model(&models.User{}).
		Where("LOWER(email) = ?", normalized).
		Update("role", models.RoleAdmin)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RevokeAdmin demotes an account back to client. A principal may not revoke
// its own admin role; that would let the last admin lock everyone out.
func (s *AccountService) RevokeAdmin(actorID, targetID uint) error {
	if actorID == targetID {
		return ErrSelfRevoke
	}
	return s.DB.Model(&models.User{}).
		Where("id = ?", targetID).
		Update("role", models.RoleClient).Error
}

// CreateResetToken issues a single-use password reset token for the account
// registered under email.
func (s *AccountService) CreateResetToken(email string) (*models.User, string, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	token := uuid.NewString()
	reset := models.PasswordResetToken{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.DB.Create(&reset).Error; err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// ResetPassword consumes a reset token and replaces the account password.
func (s *AccountService) ResetPassword(token, newPassword string) error {
	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var reset models.PasswordResetToken
		err := tx.Where("token = ? AND used = ? AND expires_at > ?", token, false, time.Now()).
			First(&reset).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", reset.UserID).
			Update("password", hashed).Error; err != nil {
			return err
		}

		return tx.Model(&reset).Update("used", true).Error
	})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
