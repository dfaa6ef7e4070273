package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-VolunteerHub/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database package.
// If the database package didn't initialize Redis, this will return nil and
// callers should handle that case (they already do).
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// StoreRefreshToken เก็บ refresh token ใน Redis พร้อม expiration
// Returns nil if Redis is not available (development mode)
func StoreRefreshToken(userID, refreshToken string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		// ไม่มี Redis ใน dev mode - ข้าม
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	return client.Set(Ctx, key, refreshToken, expiresIn).Err()
}

// ValidateRefreshToken เทียบ refresh token ที่ส่งมากับค่าใน Redis
func ValidateRefreshToken(userID, refreshToken string) bool {
	client := ensureClient()
	if client == nil {
		return false
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	stored, err := client.Get(Ctx, key).Result()
	if err != nil {
		return false
	}
	return stored == refreshToken
}

// RevokeRefreshToken ลบ refresh token ตอน logout
func RevokeRefreshToken(userID string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("refresh_token:%s", userID)
	return client.Del(Ctx, key).Err()
}
