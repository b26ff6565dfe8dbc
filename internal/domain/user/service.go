// internal/domain/user/service.go
package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/your-org/hardware-store-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Domain errors surfaced to the API layer.
var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service handles user business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateRequest represents user registration data
type CreateRequest struct {
	FirstName  string `json:"nombre" binding:"required"`
	LastName   string `json:"apellido"`
	Email      string `json:"correoElectronico" binding:"required,email"`
	Password   string `json:"contrasena"`
	Phone      string `json:"numeroTelefono"`
	Address    string `json:"direccion"`
	City       string `json:"ciudad"`
	Country    string `json:"pais"`
	PostalCode string `json:"codigoPostal"`
	Role       string `json:"rol"`
}

// UpdateRequest represents user update data. Nil fields are left unchanged.
type UpdateRequest struct {
	FirstName  *string `json:"nombre"`
	LastName   *string `json:"apellido"`
	Email      *string `json:"correoElectronico"`
	Password   *string `json:"contrasena"`
	Phone      *string `json:"numeroTelefono"`
	Address    *string `json:"direccion"`
	City       *string `json:"ciudad"`
	Country    *string `json:"pais"`
	PostalCode *string `json:"codigoPostal"`
	Role       *string `json:"rol"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"correoElectronico" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
}

// GetUsers retrieves all users
func (s *Service) GetUsers() ([]User, error) {
	var users []User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a single user by ID
func (s *Service) GetUser(id uint) (*User, error) {
	var u User
	result := s.db.Where("id = ?", id).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", result.Error)
	}
	return &u, nil
}

// GetUserByEmail retrieves a single user by email
func (s *Service) GetUserByEmail(email string) (*User, error) {
	var u User
	result := s.db.Where("correo_electronico = ?", email).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", result.Error)
	}
	return &u, nil
}

// ExistsByEmail reports whether a user with the given email exists
func (s *Service) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&User{}).Where("correo_electronico = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// CreateUser creates a new user, enforcing email uniqueness
func (s *Service) CreateUser(req *CreateRequest) (*User, error) {
	taken, err := s.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	role := req.Role
	if role == "" {
		role = DefaultRole
	}

	now := time.Now().UTC()
	u := User{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		Role:       role,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if req.Password != "" {
		hash, err := s.hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.db.Create(&u).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &u, nil
}

// UpdateUser applies a partial update to an existing user
func (s *Service) UpdateUser(id uint, req *UpdateRequest) (*User, error) {
	u, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	// Re-check uniqueness only when the email is actually changing
	if req.Email != nil && *req.Email != u.Email {
		taken, err := s.ExistsByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	updates := make(map[string]interface{})

	if req.FirstName != nil {
		updates["nombre"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["apellido"] = *req.LastName
	}
	if req.Email != nil {
		updates["correo_electronico"] = *req.Email
	}
	if req.Password != nil {
		hash, err := s.hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["hash_contrasena"] = hash
	}
	if req.Phone != nil {
		updates["numero_telefono"] = *req.Phone
	}
	if req.Address != nil {
		updates["direccion"] = *req.Address
	}
	if req.City != nil {
		updates["ciudad"] = *req.City
	}
	if req.Country != nil {
		updates["pais"] = *req.Country
	}
	if req.PostalCode != nil {
		updates["codigo_postal"] = *req.PostalCode
	}
	if req.Role != nil {
		updates["rol"] = *req.Role
	}

	updates["actualizado_en"] = time.Now().UTC()

	if err := s.db.Model(u).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetUser(id)
}

// DeleteUser removes a user by ID
func (s *Service) DeleteUser(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Authenticate verifies login credentials and returns the matching user.
// It never says which of the two fields was wrong.
func (s *Service) Authenticate(req *LoginRequest) (*User, error) {
	u, err := s.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) hashPassword(plain string) (string, error) {
	cost := s.config.Security.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
