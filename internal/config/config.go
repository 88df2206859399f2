// Package config は環境変数ベースのアプリケーション設定を提供する。
package config

import (
	"os"
	"strconv"
	"time"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Storage
	StoragePath       string
	SessionStorageKey string

	// Identity endpoints
	GoogleUserInfoURL string
	DemoAPIURL        string
	AvatarURLBase     string

	// Outbound fetch
	FetchTimeout time.Duration
	FetchMaxSize int64

	// Rate Limit
	RateLimitGeneral int
	RateLimitLogin   int

	// Server
	ServerPort string

	// CORS
	CORSAllowedOrigin string
}

// Load は環境変数からConfigを読み込む。
// ローカルアプリのバックエンドとして環境変数なしでも起動できるよう、
// すべての項目にデフォルト値を持つ。
func Load() (*Config, error) {
	cfg := &Config{
		StoragePath:       getEnvString("STORAGE_PATH", "coverdesk.db"),
		SessionStorageKey: getEnvString("SESSION_STORAGE_KEY", "user"),

		GoogleUserInfoURL: getEnvString("GOOGLE_USERINFO_URL", "https://www.googleapis.com/oauth2/v2/userinfo"),
		DemoAPIURL:        getEnvString("DEMO_API_URL", "https://jsonplaceholder.typicode.com/users/1"),
		AvatarURLBase:     getEnvString("AVATAR_URL_BASE", "https://ui-avatars.com/api/"),

		FetchTimeout: getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		FetchMaxSize: getEnvInt64("FETCH_MAX_SIZE", 1048576),

		RateLimitGeneral: getEnvInt("RATE_LIMIT_GENERAL", 120),
		RateLimitLogin:   getEnvInt("RATE_LIMIT_LOGIN", 10),

		ServerPort: getEnvString("SERVER_PORT", "8080"),

		// Expo開発サーバーのデフォルトオリジン
		CORSAllowedOrigin: getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:19006"),
	}

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvInt64(key string, defaultVal int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
