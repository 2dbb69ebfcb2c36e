package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/boardinghouse/rental-backend/internal/models"
	"github.com/boardinghouse/rental-backend/internal/utils"
	"github.com/boardinghouse/rental-backend/pkg/logger"
	"gorm.io/gorm"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

type AuthService struct {
	db             *gorm.DB
	jwtSecret      string
	googleClientID string
	emailService   *EmailService
	httpClient     *http.Client
}

func NewAuthService(db *gorm.DB, jwtSecret, googleClientID string, emailService *EmailService) *AuthService {
	return &AuthService{
		db:             db,
		jwtSecret:      jwtSecret,
		googleClientID: googleClientID,
		emailService:   emailService,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthRequest struct {
	IDToken string `json:"id_token" binding:"required"`
	Role    string `json:"role"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateProfileRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`

	University        *string `json:"university,omitempty"`
	YearOfStudy       *string `json:"year_of_study,omitempty"`
	Budget            *int    `json:"budget,omitempty"`
	PreferredLocation *string `json:"preferred_location,omitempty"`
	RoomType          *string `json:"room_type,omitempty"`

	BusinessName    *string `json:"business_name,omitempty"`
	BusinessAddress *string `json:"business_address,omitempty"`
	TaxID           *string `json:"tax_id,omitempty"`
	BankAccount     *string `json:"bank_account,omitempty"`
	Website         *string `json:"website,omitempty"`
	Experience      *int    `json:"experience,omitempty"`
}

type AuthResponse struct {
	Tokens utils.TokenPair `json:"tokens"`
	User   models.User     `json:"user"`
}

// Register creates a student or landlord account. Admin registration is
// blocked; admins are seeded at startup.
func (s *AuthService) Register(req RegisterRequest) (*AuthResponse, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if !utils.IsValidPassword(req.Password) {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	if req.Role == models.RoleAdmin {
		return nil, fmt.Errorf("%w: admin registration is not allowed", ErrValidation)
	}
	if !utils.IsValidRegistrationRole(req.Role) {
		return nil, fmt.Errorf("%w: role must be student or landlord", ErrValidation)
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	user := models.User{
		Name:         utils.SanitizeString(req.Name),
		Email:        utils.SanitizeString(req.Email),
		Password:     req.Password, // hashed in BeforeCreate
		Role:         req.Role,
		AuthProvider: models.AuthProviderLocal,
		IsActive:     true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	if s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
			logger.Errorf("failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	return s.issueTokens(&user)
}

func (s *AuthService) Login(req LoginRequest) (*AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrValidation)
	}

	if !user.CheckPassword(req.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrValidation)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", ErrInvalidState)
	}

	return s.issueTokens(&user)
}

type googleTokenInfo struct {
	Audience string `json:"aud"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
}

// GoogleLogin verifies the ID token against Google's tokeninfo endpoint and
// signs the caller in, creating a federated account on first login.
func (s *AuthService) GoogleLogin(req GoogleAuthRequest) (*AuthResponse, error) {
	info, err := s.verifyGoogleToken(req.IDToken)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.db.Where("email = ?", info.Email).First(&user).Error
	switch {
	case err == nil:
		// Existing account, any provider.
	case errors.Is(err, gorm.ErrRecordNotFound):
		role := req.Role
		if role == "" {
			role = models.RoleStudent
		}
		if !utils.IsValidRegistrationRole(role) {
			return nil, fmt.Errorf("%w: role must be student or landlord", ErrValidation)
		}
		user = models.User{
			Name:         info.Name,
			Email:        info.Email,
			Role:         role,
			AuthProvider: models.AuthProviderGoogle,
			ProfileImage: info.Picture,
			IsActive:     true,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create federated user: %v", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up user: %v", err)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", ErrInvalidState)
	}

	return s.issueTokens(&user)
}

func (s *AuthService) verifyGoogleToken(idToken string) (*googleTokenInfo, error) {
	resp, err := s.httpClient.Get(googleTokenInfoURL + "?id_token=" + url.QueryEscape(idToken))
	if err != nil {
		return nil, fmt.Errorf("google token verification failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: google token rejected", ErrValidation)
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode token info: %v", err)
	}
	if s.googleClientID != "" && info.Audience != s.googleClientID {
		return nil, fmt.Errorf("%w: token audience mismatch", ErrValidation)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("%w: token carries no email", ErrValidation)
	}
	return &info, nil
}

// Refresh exchanges a valid refresh token for a new token pair and revokes
// the old one.
func (s *AuthService) Refresh(req RefreshRequest) (*AuthResponse, error) {
	claims, err := utils.ValidateToken(req.RefreshToken, s.jwtSecret)
	if err != nil || claims.Type != string(utils.RefreshToken) {
		return nil, fmt.Errorf("%w: invalid refresh token", ErrValidation)
	}

	var stored models.RefreshToken
	err = s.db.Where("token = ? AND is_revoked = ?", req.RefreshToken, false).First(&stored).Error
	if err != nil {
		return nil, fmt.Errorf("%w: refresh token revoked or unknown", ErrValidation)
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, fmt.Errorf("%w: refresh token expired", ErrValidation)
	}

	var user models.User
	if err := s.db.First(&user, stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, stored.UserID)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", ErrInvalidState)
	}

	if err := s.db.Model(&stored).Update("is_revoked", true).Error; err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %v", err)
	}

	return s.issueTokens(&user)
}

// Logout revokes all of the user's refresh tokens.
func (s *AuthService) Logout(userID uint) error {
	err := s.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND is_revoked = ?", userID, false).
		Update("is_revoked", true).Error
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %v", err)
	}
	return nil
}

func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to fetch user: %v", err)
	}
	return &user, nil
}

func (s *AuthService) UpdateProfile(userID uint, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = utils.SanitizeString(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	switch user.Role {
	case models.RoleStudent:
		if req.University != nil {
			user.University = *req.University
		}
		if req.YearOfStudy != nil {
			user.YearOfStudy = *req.YearOfStudy
		}
		if req.Budget != nil {
			user.Budget = req.Budget
		}
		if req.PreferredLocation != nil {
			user.PreferredLocation = *req.PreferredLocation
		}
		if req.RoomType != nil {
			user.RoomType = *req.RoomType
		}
	case models.RoleLandlord:
		if req.BusinessName != nil {
			user.BusinessName = *req.BusinessName
		}
		if req.BusinessAddress != nil {
			user.BusinessAddress = *req.BusinessAddress
		}
		if req.TaxID != nil {
			user.TaxID = *req.TaxID
		}
		if req.BankAccount != nil {
			user.BankAccount = *req.BankAccount
		}
		if req.Website != nil {
			user.Website = *req.Website
		}
		if req.Experience != nil {
			user.Experience = req.Experience
		}
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %v", err)
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	tokenPair, err := utils.GenerateTokenPair(user.ID, user.Email, user.Role, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %v", err)
	}

	refreshToken := models.RefreshToken{
		UserID:    user.ID,
		Token:     tokenPair.RefreshToken,
		ExpiresAt: time.Unix(tokenPair.RefreshTokenExpiresAt, 0),
		IsRevoked: false,
	}
	if err := s.db.Create(&refreshToken).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %v", err)
	}

	return &AuthResponse{
		Tokens: *tokenPair,
		User:   *user,
	}, nil
}
