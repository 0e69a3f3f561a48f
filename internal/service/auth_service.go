package service

import (
	"errors"

	"go-warehouse-api/internal/apperr"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/jwt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Register(name, email, password string) (*LoginResponse, error)
	Me(userID uuid.UUID) (*model.UserResponse, error)
	ChangePassword(email, oldPassword, newPassword string) error
}

// LoginResponse carries the bearer token next to the user profile.
type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// Same message whether the account is missing or the password is
		// wrong, so login probing can't enumerate accounts.
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	if !user.CheckPassword(password) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) Register(name, email, password string) (*LoginResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validation("Name, email and password are required")
	}
	if len(password) < 6 {
		return nil, apperr.Validation("Password must be at least 6 characters")
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, apperr.Conflict("A user with this email already exists")
	}

	user := &model.User{
		Name:  name,
		Email: email,
		Role:  model.RoleStaff,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) Me(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthorized("User no longer exists")
		}
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) ChangePassword(email, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return apperr.Validation("New password must be at least 6 characters")
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return apperr.Unauthorized("Invalid email or password")
	}

	if !user.CheckPassword(oldPassword) {
		return apperr.Unauthorized("Invalid email or password")
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(user.ID, user.Password)
}
