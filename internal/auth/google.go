package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hitoshi/coverdesk/internal/model"
	"github.com/hitoshi/coverdesk/internal/security"
)

const defaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleConfig はGoogleプロファイルリゾルバの設定。
type GoogleConfig struct {
	// UserInfoURL はuserinfoエンドポイント。テスト用にオーバーライド可能。
	UserInfoURL string
	// Client はアウトバウンドHTTPクライアント。本番ではSSRFガード付きの
	// クライアントを渡す。nilの場合はhttp.DefaultClientを使う。
	Client *http.Client
	// Sanitizer は応答フィールドのサニタイザ。nilの場合はStrictポリシーを使う。
	Sanitizer security.ProfileSanitizerService
	// MaxResponseBytes は応答ボディの読み取り上限。0以下の場合はデフォルト値を使う。
	MaxResponseBytes int64
}

// GoogleResolver はGoogleのuserinfoエンドポイントでプロファイルを解決する。
type GoogleResolver struct {
	config GoogleConfig
}

// NewGoogleResolver はGoogleResolverを生成する。
func NewGoogleResolver(config GoogleConfig) *GoogleResolver {
	if config.UserInfoURL == "" {
		config.UserInfoURL = defaultGoogleUserInfoURL
	}
	if config.Client == nil {
		config.Client = http.DefaultClient
	}
	if config.Sanitizer == nil {
		config.Sanitizer = security.NewProfileSanitizer()
	}
	if config.MaxResponseBytes <= 0 {
		config.MaxResponseBytes = defaultMaxResponseBytes
	}
	return &GoogleResolver{config: config}
}

// googleUserInfo はGoogleのuserinfo (v2) エンドポイントのレスポンス。
// 応答は信頼できない入力として扱い、必須フィールドの存在を検証してから使う。
type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// ResolveProfile はアクセストークンでGoogleのユーザー情報を取得し、
// 正規化されたUserProfileにマッピングする。
// IDは "google_<remoteId>" の形になり、providerラベルは "Google"。
func (r *GoogleResolver) ResolveProfile(ctx context.Context, accessToken string) (*model.UserProfile, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("missing access token")
	}

	body, err := fetchBody(ctx, r.config.Client, r.config.UserInfoURL, accessToken, r.config.MaxResponseBytes)
	if err != nil {
		return nil, fmt.Errorf("user info fetch failed: %w", err)
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse user info response: %w", err)
	}

	id := r.config.Sanitizer.SanitizeField(info.ID)
	name := r.config.Sanitizer.SanitizeField(info.Name)
	email := r.config.Sanitizer.SanitizeField(info.Email)

	if id == "" {
		return nil, fmt.Errorf("missing id in user info response")
	}
	if name == "" {
		return nil, fmt.Errorf("missing name in user info response")
	}
	if email == "" {
		return nil, fmt.Errorf("missing email in user info response")
	}

	return &model.UserProfile{
		ID:        "google_" + id,
		Name:      name,
		Email:     email,
		Provider:  model.ProviderGoogle,
		Avatar:    r.config.Sanitizer.SanitizeField(info.Picture),
		LoginTime: time.Now().UTC(),
	}, nil
}

// compile-time interface check
var _ ProfileResolver = (*GoogleResolver)(nil)
