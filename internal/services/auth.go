package services

import (
	"errors"
	"strings"
	"time"

	"uddaan/internal/config"
	"uddaan/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMFARequired        = errors.New("mfa code required")
	ErrInvalidMFACode     = errors.New("invalid mfa code")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Security.BcryptCost)
	return string(bytes), err
}

// VerifyPassword verifies a password against a hash
func (s *AuthService) VerifyPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// Authenticate verifies email, password and, when enrolled, the TOTP code.
// Every failure path returns ErrInvalidCredentials or ErrMFARequired /
// ErrInvalidMFACode; the caller never learns whether the email exists.
func (s *AuthService) Authenticate(email, password, mfaCode string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(email)), true).
		Preload("Role").First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if user.MFAEnabled {
		if mfaCode == "" {
			return nil, ErrMFARequired
		}
		if !totp.Validate(mfaCode, user.MFASecret) {
			return nil, ErrInvalidMFACode
		}
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.db.Model(&models.User{}).Where("id = ?", user.ID).Update("last_login", now).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GenerateToken issues a signed bearer token for the user
func (s *AuthService) GenerateToken(user *models.User) (string, time.Time, error) {
	expiresIn, err := time.ParseDuration(s.cfg.JWT.ExpiresIn)
	if err != nil {
		expiresIn = 24 * time.Hour
	}

	now := time.Now()
	expiresAt := now.Add(expiresIn)

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role_id": user.RoleID,
		"exp":     expiresAt.Unix(),
		"iat":     now.Unix(),
		"iss":     s.cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ResolveToken verifies a bearer token and loads the referenced user with its
// role. A forged, expired or orphaned token and a deactivated user all come
// back as ErrInvalidToken; the distinction is intentionally not exposed.
func (s *AuthService) ResolveToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	// Explicit two-step read: the role snapshot may be stale relative to
	// concurrent role edits.
	var user models.User
	if err := s.db.First(&user, uint(userID)).Error; err != nil {
		return nil, ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrInvalidToken
	}
	if err := s.db.First(&user.Role, user.RoleID).Error; err != nil {
		return nil, ErrInvalidToken
	}

	return &user, nil
}

// GenerateMFASecret creates a TOTP enrollment for the user and returns the
// base32 secret plus the otpauth provisioning URL.
func (s *AuthService) GenerateMFASecret(email string) (secret, url string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Uddaan Consultancy",
		AccountName: email,
	})
	if err != nil {
		return "", "", err
	}
	return key.Secret(), key.URL(), nil
}

// EnableMFA verifies the submitted code against the pending secret and, on
// success, stores the secret and flips the enrollment flag.
func (s *AuthService) EnableMFA(userID uint, secret, code string) error {
	if !totp.Validate(code, secret) {
		return ErrInvalidMFACode
	}
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"mfa_secret": secret, "mfa_enabled": true}).Error
}

// CreateUser creates a new user with a hashed credential
func (s *AuthService) CreateUser(name, email, password string, roleID uint, phone string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		RoleID:       roleID,
		Phone:        phone,
		IsActive:     true,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}
