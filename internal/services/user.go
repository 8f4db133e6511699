package services

import (
	"errors"
	"strings"

	"uddaan/internal/models"

	"gorm.io/gorm"
)

var ErrLastAdmin = errors.New("cannot deactivate or delete the last wildcard admin")

type UserService struct {
	db   *gorm.DB
	auth *AuthService
}

func NewUserService(db *gorm.DB, auth *AuthService) *UserService {
	return &UserService{db: db, auth: auth}
}

// UserQuery carries list filters for the admin user listing.
type UserQuery struct {
	Search string
	RoleID uint
	Page   int
	Limit  int
}

// GetUsers returns a filtered, paginated user listing with roles resolved
func (s *UserService) GetUsers(q UserQuery) ([]models.User, int64, error) {
	tx := s.db.Model(&models.User{})

	if q.Search != "" {
		like := "%" + q.Search + "%"
		tx = tx.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if q.RoleID != 0 {
		tx = tx.Where("role_id = ?", q.RoleID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(q.Page, q.Limit, 20)

	var users []models.User
	err := tx.Preload("Role").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetUser returns a specific user by ID with its role resolved
func (s *UserService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Role").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user
func (s *UserService) CreateUser(name, email, password string, roleID uint, phone string) (*models.User, error) {
	var role models.Role
	if err := s.db.First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	user, err := s.auth.CreateUser(name, email, password, roleID, phone)
	if err != nil {
		return nil, err
	}

	user.Role = role
	return user, nil
}

// UpdateUser updates user information (except password)
func (s *UserService) UpdateUser(id uint, name, email string, roleID uint, isActive *bool, phone string) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if email != "" {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != user.Email {
			var existing models.User
			if err := s.db.Where("email = ? AND id != ?", email, id).First(&existing).Error; err == nil {
				return nil, ErrUserExists
			}
			user.Email = email
		}
	}

	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if roleID != 0 && roleID != user.RoleID {
		var role models.Role
		if err := s.db.First(&role, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoleNotFound
			}
			return nil, err
		}
		user.RoleID = roleID
		user.Role = role
	}

	if isActive != nil && *isActive != user.IsActive {
		if !*isActive {
			if err := s.ensureNotLastAdmin(user); err != nil {
				return nil, err
			}
		}
		user.IsActive = *isActive
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// UpdatePassword updates a user's password
func (s *UserService) UpdatePassword(id uint, newPassword string) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	hashedPassword, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("password_hash", hashedPassword).Error
}

// DeactivateUser soft-deactivates a user. Users are never physically deleted;
// a deactivated user can no longer resolve a token.
func (s *UserService) DeactivateUser(id uint) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if err := s.ensureNotLastAdmin(user); err != nil {
		return err
	}

	return s.db.Model(&models.User{}).Where("id = ?", id).
		Update("is_active", false).Error
}

// ensureNotLastAdmin refuses to remove the last active user whose role holds
// the wildcard permission.
func (s *UserService) ensureNotLastAdmin(user *models.User) error {
	if !user.Role.Allows(models.PermissionAll) || !user.IsActive {
		return nil
	}

	var wildcardRoleIDs []uint
	var roles []models.Role
	if err := s.db.Find(&roles).Error; err != nil {
		return err
	}
	for _, r := range roles {
		if r.Permissions.Contains(models.PermissionAll) {
			wildcardRoleIDs = append(wildcardRoleIDs, r.ID)
		}
	}

	var adminCount int64
	s.db.Model(&models.User{}).
		Where("role_id IN ? AND is_active = ? AND id != ?", wildcardRoleIDs, true, user.ID).
		Count(&adminCount)
	if adminCount == 0 {
		return ErrLastAdmin
	}
	return nil
}

// normalizePage clamps pagination inputs to sane bounds.
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
