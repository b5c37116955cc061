package services

import (
	"errors"
	"time"

	"questup-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{db: db, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

func (s *AuthService) Login(email, password string) (string, *models.Teacher, error) {
	var teacher models.Teacher
	if err := s.db.Where("email = ?", email).First(&teacher).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(teacher.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &teacher, nil
}

// RequestAccess records a pending teacher application. One request per email;
// emails that already belong to a teacher are rejected outright.
func (s *AuthService) RequestAccess(name, email, password string) error {
	var existing models.TeacherRequest
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return ErrRequestPending
	}

	var teacher models.Teacher
	if err := s.db.Where("email = ?", email).First(&teacher).Error; err == nil {
		return ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	req := models.TeacherRequest{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	return s.db.Create(&req).Error
}

type RequestList struct {
	Pending       []models.TeacherRequest
	Approved      []models.TeacherRequest
	TotalTeachers int64
}

func (s *AuthService) ListRequests() (*RequestList, error) {
	list := &RequestList{}
	if err := s.db.Where("approved = ?", false).Order("created_at DESC").Find(&list.Pending).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("approved = ?", true).Order("created_at DESC").Find(&list.Approved).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Teacher{}).Count(&list.TotalTeachers).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Approve promotes a request into a teacher account. Both writes happen in one
// transaction so a failure cannot leave an approved request with no account.
func (s *AuthService) Approve(requestID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var req models.TeacherRequest
		if err := tx.First(&req, requestID).Error; err != nil {
			return ErrRequestNotFound
		}
		if req.Approved {
			return ErrAlreadyApproved
		}

		teacher := models.Teacher{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: req.PasswordHash,
		}
		if err := tx.Create(&teacher).Error; err != nil {
			return err
		}

		req.Approved = true
		return tx.Save(&req).Error
	})
}

func (s *AuthService) GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(s.tokenTTL).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken returns the subject email. Every decode failure collapses into
// ErrInvalidToken; callers never learn whether a token was expired, malformed
// or signed with the wrong key.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", ErrInvalidToken
	}
	return email, nil
}

func (s *AuthService) GetTeacherByEmail(email string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := s.db.Where("email = ?", email).First(&teacher).Error; err != nil {
		return nil, ErrInvalidToken
	}
	return &teacher, nil
}
