// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	providerRepo "medibook/database/repository/provider"
	userRepo "medibook/database/repository/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	authCachePrefix = "auth:"
	authCacheTTL    = 15 * time.Minute
)

// bearerToken extracts the JWT from the Authorization header and returns
// the caller id and role claims, or aborts the request.
func bearerToken(c *gin.Context) (id, role, tokenString string, ok bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", "", "", false
	}
	tokenString = strings.TrimPrefix(authHeader, "Bearer ")

	id, role, err := utils.ExtractIDFromToken(tokenString)
	if err != nil || id == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return "", "", "", false
	}
	return id, role, tokenString, true
}

// checkAuthCache reports whether the token hash is already validated.
// Cache errors only cost a repository round-trip, never a rejection.
func checkAuthCache(ctx context.Context, logger *zap.Logger, cacheKey string) bool {
	authCache := utils.GetAuthCacheClient()
	cached, err := authCache.Get(ctx, cacheKey).Result()
	if err == nil && cached == "1" {
		// Refresh TTL (sliding expiration).
		if err := authCache.Expire(ctx, cacheKey, authCacheTTL).Err(); err != nil {
			logger.Error("Failed to refresh auth cache TTL", zap.Error(err))
		}
		return true
	}
	if err != nil && err != redis.Nil {
		logger.Error("Error checking auth cache", zap.Error(err))
	}
	return false
}

func storeAuthCache(ctx context.Context, logger *zap.Logger, cacheKey string) {
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, "1", authCacheTTL).Err(); err != nil {
		logger.Error("Failed to set auth cache", zap.Error(err))
	}
}

// JWTAuthProviderMiddleware validates the JWT token for providers with Redis caching.
func JWTAuthProviderMiddleware(providers providerRepo.ProviderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		providerID, role, tokenString, ok := bearerToken(c)
		if !ok {
			return
		}
		if role != "provider" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Provider role required"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + computedHash

		if checkAuthCache(ctx, logger, cacheKey) {
			c.Set("providerID", providerID)
			c.Next()
			return
		}

		// Cache miss: query the provider repository.
		proj := bson.M{"id": 1, "security": 1}
		prov, err := providers.GetByIDWithProjection(c.Request.Context(), providerID, proj)
		if err != nil || prov == nil {
			logger.Error("Provider not found when validating token", zap.String("providerID", providerID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Provider not found"})
			return
		}
		if computedHash != prov.Security.TokenHash {
			logger.Error("Token hash mismatch", zap.String("providerID", providerID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		storeAuthCache(ctx, logger, cacheKey)
		c.Set("providerID", providerID)
		c.Next()
	}
}

// JWTAuthUserMiddleware validates the JWT token for users with Redis caching.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ctx := context.Background()

		userID, role, tokenString, ok := bearerToken(c)
		if !ok {
			return
		}
		if role != "user" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User role required"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := authCachePrefix + computedHash

		if checkAuthCache(ctx, logger, cacheKey) {
			c.Set("userID", userID)
			c.Next()
			return
		}

		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil || u == nil {
			logger.Error("User not found when validating token", zap.String("userID", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		if computedHash != u.Security.TokenHash {
			logger.Error("Token hash mismatch", zap.String("userID", userID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		storeAuthCache(ctx, logger, cacheKey)
		c.Set("userID", userID)
		c.Next()
	}
}

// JWTAuthAnyMiddleware accepts either role and records the caller's id and
// role, for endpoints open to any authenticated caller.
func JWTAuthAnyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, role, _, ok := bearerToken(c)
		if !ok {
			return
		}
		c.Set("callerID", callerID)
		c.Set("callerRole", role)
		c.Next()
	}
}
