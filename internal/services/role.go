package services

import (
	"errors"

	"uddaan/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleExists        = errors.New("role already exists")
	ErrRoleInUse         = errors.New("role is assigned to users")
	ErrSystemRole        = errors.New("system roles cannot be deleted")
	ErrUnknownPermission = errors.New("unknown permission token")
)

type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// GetRoles returns all roles sorted by name
func (s *RoleService) GetRoles() ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// GetRole returns a specific role by ID
func (s *RoleService) GetRole(id uint) (*models.Role, error) {
	var role models.Role
	if err := s.db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

// CreateRole creates a new role after validating its permission tokens
func (s *RoleService) CreateRole(name, description string, permissions []string) (*models.Role, error) {
	for _, p := range permissions {
		if !models.ValidPermission(p) {
			return nil, ErrUnknownPermission
		}
	}

	var existing models.Role
	if err := s.db.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, ErrRoleExists
	}

	role := &models.Role{
		Name:        name,
		Description: description,
		Permissions: permissions,
	}

	if err := s.db.Create(role).Error; err != nil {
		return nil, err
	}

	return role, nil
}

// UpdateRole updates a role's description and permission set. System roles
// keep their name.
func (s *RoleService) UpdateRole(id uint, name, description string, permissions []string) (*models.Role, error) {
	role, err := s.GetRole(id)
	if err != nil {
		return nil, err
	}

	for _, p := range permissions {
		if !models.ValidPermission(p) {
			return nil, ErrUnknownPermission
		}
	}

	if name != "" && name != role.Name {
		if role.IsSystem {
			return nil, ErrSystemRole
		}
		var existing models.Role
		if err := s.db.Where("name = ? AND id != ?", name, id).First(&existing).Error; err == nil {
			return nil, ErrRoleExists
		}
		role.Name = name
	}

	role.Description = description
	role.Permissions = permissions

	if err := s.db.Save(role).Error; err != nil {
		return nil, err
	}

	return role, nil
}

// DeleteRole removes a role unless it is a system role or still referenced
func (s *RoleService) DeleteRole(id uint) error {
	role, err := s.GetRole(id)
	if err != nil {
		return err
	}

	if role.IsSystem {
		return ErrSystemRole
	}

	var userCount int64
	s.db.Model(&models.User{}).Where("role_id = ?", id).Count(&userCount)
	if userCount > 0 {
		return ErrRoleInUse
	}

	return s.db.Delete(role).Error
}

// SeedDefaults upserts the built-in roles and the bootstrap admin user when
// the users table is empty.
func (s *RoleService) SeedDefaults(auth *AuthService, name, email, password string) error {
	superAdmin, err := s.ensureSystemRole("Super Admin", "Full system access", []string{models.PermissionAll})
	if err != nil {
		return err
	}

	if _, err := s.ensureSystemRole("Admin", "Administrative access", []string{
		"dashboard.view",
		"jobs.create", "jobs.read", "jobs.update", "jobs.delete",
		"applications.read", "applications.update",
		"consultations.read", "consultations.update",
		"events.create", "events.read", "events.update",
		"testimonials.create", "testimonials.read", "testimonials.update",
		"pages.read", "pages.create", "pages.update",
		"media.upload", "media.read",
		"settings.read",
	}); err != nil {
		return err
	}

	if _, err := s.ensureSystemRole("Viewer", "Read-only access", []string{
		"dashboard.view", "jobs.read", "applications.read", "consultations.read",
		"events.read", "testimonials.read", "pages.read", "media.read", "settings.read",
	}); err != nil {
		return err
	}

	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count == 0 {
		if _, err := auth.CreateUser(name, email, password, superAdmin.ID, ""); err != nil {
			return err
		}
	}

	return nil
}

func (s *RoleService) ensureSystemRole(name, description string, permissions []string) (*models.Role, error) {
	var role models.Role
	err := s.db.Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role = models.Role{
		Name:        name,
		Description: description,
		Permissions: permissions,
		IsSystem:    true,
	}
	if err := s.db.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
