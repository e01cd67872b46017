package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	customerRepo "coolq/database/repository/customer"
	technicianRepo "coolq/database/repository/technician"

	"coolq/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ContextActorID is the gin context key holding the authenticated actor's id.
const ContextActorID = "actorID"

// ContextActorRole is the gin context key holding the authenticated actor's role.
const ContextActorRole = "actorRole"

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
}

// bearerToken extracts the bearer token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

// verifyCachedHash checks the computed token hash against the auth cache.
// Returns (matched, decided); decided is false on a cache miss or cache error,
// in which case the caller falls back to the database record.
func verifyCachedHash(actorID, computedHash string) (bool, bool) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return false, false
	}
	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + actorID
	cachedHash, err := authCache.Get(ctx, cacheKey).Result()
	if err == nil {
		if cachedHash == computedHash {
			_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
			return true, true
		}
		return false, true
	}
	if err != redis.Nil {
		utils.GetLogger().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
	}
	return false, false
}

func cacheHash(actorID, computedHash string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	cacheKey := utils.AuthCachePrefix + actorID
	_ = authCache.Set(context.Background(), cacheKey, computedHash, time.Hour).Err()
}

// JWTAuthCustomerMiddleware authenticates a customer token, verifying its hash
// against the auth cache with a database fallback.
func JWTAuthCustomerMiddleware(repo customerRepo.CustomerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		actorID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || role != utils.RoleCustomer {
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		if matched, decided := verifyCachedHash(actorID, computedHash); decided {
			if !matched {
				abortUnauthorized(c)
				return
			}
		} else {
			rec, err := repo.GetByID(actorID)
			if err != nil || rec == nil || rec.TokenHash != computedHash {
				abortUnauthorized(c)
				return
			}
			cacheHash(actorID, computedHash)
		}

		c.Set(ContextActorID, actorID)
		c.Set(ContextActorRole, utils.RoleCustomer)
		c.Next()
	}
}

// JWTAuthTechnicianMiddleware authenticates a technician token, verifying its
// hash against the auth cache with a database fallback.
func JWTAuthTechnicianMiddleware(repo technicianRepo.TechnicianRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		actorID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || role != utils.RoleTechnician {
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		if matched, decided := verifyCachedHash(actorID, computedHash); decided {
			if !matched {
				abortUnauthorized(c)
				return
			}
		} else {
			rec, err := repo.GetByID(actorID)
			if err != nil || rec == nil || rec.TokenHash != computedHash {
				abortUnauthorized(c)
				return
			}
			cacheHash(actorID, computedHash)
		}

		c.Set(ContextActorID, actorID)
		c.Set(ContextActorRole, utils.RoleTechnician)
		c.Next()
	}
}
