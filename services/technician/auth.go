package technician

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coolq/models"
	"coolq/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// RegisterTechnician creates a new technician account in the pending approval
// state and signs it in. Pending technicians can manage their profile but are
// never assigned bookings.
func (s *DefaultTechnicianService) RegisterTechnician(t models.Technician) (*AuthResponse, error) {
	logger := utils.GetLogger()

	t.Email = strings.ToLower(strings.TrimSpace(t.Email))
	if t.Email == "" || t.Password == "" || t.Name == "" {
		return nil, utils.Validationf("name, email and password are required")
	}
	if len(t.Password) < 8 {
		return nil, utils.Validationf("password must be at least 8 characters")
	}
	if t.IDCardURL == "" || t.VerifyPhotoURL == "" {
		return nil, utils.Validationf("identity document and verification photo are required")
	}

	existing, err := s.Repo.GetByEmail(t.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing technician: %w", err)
	}
	if existing != nil {
		return nil, utils.Validationf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(t.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	t.ID = uuid.New().String()
	t.Password = ""
	t.PasswordHash = string(hash)
	t.Status = models.TechnicianPending
	t.RejectionReason = ""
	t.Rating = 0
	t.TotalReviews = 0
	t.CreatedAt = now
	t.UpdatedAt = now

	if err := s.Repo.Create(&t); err != nil {
		logger.Error("failed to create technician", zap.String("email", t.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to create technician: %w", err)
	}

	return s.issueToken(&t)
}

// AuthenticateTechnician verifies credentials and issues a fresh token.
func (s *DefaultTechnicianService) AuthenticateTechnician(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("failed to fetch technician for auth", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, utils.Validationf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, utils.Validationf("invalid email or password")
	}
	return s.issueToken(rec)
}

func (s *DefaultTechnicianService) issueToken(t *models.Technician) (*AuthResponse, error) {
	token, err := utils.GenerateToken(t.ID, utils.RoleTechnician, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateWithDocument(t.ID, bson.M{"token_hash": tokenHash, "updated_at": time.Now()}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + t.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache token hash", zap.String("technicianID", t.ID), zap.Error(err))
	}

	t.TokenHash = ""
	t.PasswordHash = ""
	return &AuthResponse{Technician: t, Token: token}, nil
}
