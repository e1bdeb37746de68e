package services

import (
	"errors"
	"strings"

	"hostel-backend/models"
	"hostel-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService is a thin login/registration layer for staff accounts. Session
// design beyond the bearer token is deliberately out of scope.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type LoginResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: &user, Token: token}, nil
}

func (s *AuthService) Register(username, password, name, role string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var existing models.User
	err := s.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = models.RoleAdmin
	}

	user := models.User{
		Username: username,
		Password: string(hash),
		Name:     name,
		Role:     role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
