package customer

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

// RegisterCustomer creates a new customer account and signs it in.
func (s *DefaultCustomerService) RegisterCustomer(c models.Customer) (*AuthResponse, error) {
	logger := utils.GetLogger()

	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if c.Email == "" || c.Password == "" || c.Name == "" {
		return nil, utils.Validationf("name, email and password are required")
	}
	if len(c.Password) < 8 {
		return nil, utils.Validationf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(c.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing customer: %w", err)
	}
	if existing != nil {
		return nil, utils.Validationf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	c.ID = uuid.New().String()
	c.Password = ""
	c.PasswordHash = string(hash)
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.Repo.Create(&c); err != nil {
		logger.Error("failed to create customer", zap.String("email", c.Email), zap.Error(err))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return s.issueToken(&c)
}

// AuthenticateCustomer verifies credentials and issues a fresh token.
func (s *DefaultCustomerService) AuthenticateCustomer(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("failed to fetch customer for auth", zap.Error(err))
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

// issueToken signs a JWT, stores its hash on the account and caches it in the
// auth cache so middleware can verify without a database round trip.
func (s *DefaultCustomerService) issueToken(c *models.Customer) (*AuthResponse, error) {
	token, err := utils.GenerateToken(c.ID, utils.RoleCustomer, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateWithDocument(c.ID, bson.M{"token_hash": tokenHash, "updated_at": time.Now()}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + c.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache token hash", zap.String("customerID", c.ID), zap.Error(err))
	}

	c.TokenHash = ""
	c.PasswordHash = ""
	return &AuthResponse{Customer: c, Token: token}, nil
}
