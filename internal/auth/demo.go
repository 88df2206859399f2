package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hitoshi/coverdesk/internal/model"
	"github.com/hitoshi/coverdesk/internal/security"
)

const (
	defaultDemoAPIURL    = "https://jsonplaceholder.typicode.com/users/1"
	defaultAvatarURLBase = "https://ui-avatars.com/api/"
)

// DemoConfig はデモログイン用リゾルバの設定。
type DemoConfig struct {
	// APIURL は公開デモユーザーAPIのエンドポイント。テスト用にオーバーライド可能。
	APIURL string
	// AvatarURLBase は生成アバターサービスのベースURL。
	AvatarURLBase string
	// Client はアウトバウンドHTTPクライアント。nilの場合はhttp.DefaultClientを使う。
	Client *http.Client
	// Sanitizer は応答フィールドのサニタイザ。nilの場合はStrictポリシーを使う。
	Sanitizer security.ProfileSanitizerService
	// MaxResponseBytes は応答ボディの読み取り上限。0以下の場合はデフォルト値を使う。
	MaxResponseBytes int64
}

// DemoResolver は公開APIから取得したレコードでデモ用プロファイルを解決する。
// トークン交換を必要としないフォールバックのログイン手段であり、
// providerラベルが自由形式であること（"Demo API"）の実例でもある。
type DemoResolver struct {
	config DemoConfig
}

// NewDemoResolver はDemoResolverを生成する。
func NewDemoResolver(config DemoConfig) *DemoResolver {
	if config.APIURL == "" {
		config.APIURL = defaultDemoAPIURL
	}
	if config.AvatarURLBase == "" {
		config.AvatarURLBase = defaultAvatarURLBase
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
	return &DemoResolver{config: config}
}

// demoUser はデモAPIのレスポンス。IDは数値で返る。
type demoUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ResolveProfile はデモユーザーのレコードを取得してUserProfileにマッピングする。
// デモAPIは認証を要求しないため、accessTokenは使用しない。
// IDは "demo_<remoteId>" の形になり、メールアドレスは小文字に正規化され、
// アバターは表示名から生成されるプレースホルダーURLになる。
func (r *DemoResolver) ResolveProfile(ctx context.Context, _ string) (*model.UserProfile, error) {
	body, err := fetchBody(ctx, r.config.Client, r.config.APIURL, "", r.config.MaxResponseBytes)
	if err != nil {
		return nil, fmt.Errorf("demo user fetch failed: %w", err)
	}

	var info demoUser
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse demo user response: %w", err)
	}

	name := r.config.Sanitizer.SanitizeField(info.Name)
	email := r.config.Sanitizer.SanitizeField(info.Email)

	if info.ID == 0 {
		return nil, fmt.Errorf("missing id in demo user response")
	}
	if name == "" {
		return nil, fmt.Errorf("missing name in demo user response")
	}
	if email == "" {
		return nil, fmt.Errorf("missing email in demo user response")
	}

	return &model.UserProfile{
		ID:        "demo_" + strconv.FormatInt(info.ID, 10),
		Name:      name,
		Email:     strings.ToLower(email),
		Provider:  model.ProviderDemo,
		Avatar:    r.avatarURL(name),
		LoginTime: time.Now().UTC(),
	}, nil
}

// avatarURL は表示名から生成アバターのURLを組み立てる。
func (r *DemoResolver) avatarURL(name string) string {
	q := url.Values{
		"name":       {name},
		"background": {"4CAF50"},
		"color":      {"fff"},
	}
	return r.config.AvatarURLBase + "?" + q.Encode()
}

// compile-time interface check
var _ ProfileResolver = (*DemoResolver)(nil)
