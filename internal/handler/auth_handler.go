// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hitoshi/coverdesk/internal/auth"
	"github.com/hitoshi/coverdesk/internal/middleware"
	"github.com/hitoshi/coverdesk/internal/model"
)

// oauthSecretPlaceholder はOAuth経路でLoginに渡すシークレットのダミー値。
// 外部プロファイル指定時は資格情報検証が行われないが、
// 空入力チェックの契約（identifier/secretは非空）は両経路で共通。
const oauthSecretPlaceholder = "oauth_token"

// SessionService は認証ハンドラーが必要とするセッション操作のインターフェース。
// session.Storeの部分集合として定義する。
type SessionService interface {
	Login(ctx context.Context, identifier, secret string, external *model.UserProfile) (*model.UserProfile, error)
	Logout(ctx context.Context)
	Snapshot() model.Session
}

// ResolveLatencyCollector はプロファイル解決レイテンシの収集インターフェース。
type ResolveLatencyCollector interface {
	RecordResolveLatency(duration time.Duration)
}

// AuthHandler は認証関連のHTTPハンドラー。
type AuthHandler struct {
	sessions  SessionService
	google    auth.ProfileResolver
	demo      auth.ProfileResolver
	collector ResolveLatencyCollector // nil可
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(sessions SessionService, google, demo auth.ProfileResolver, collector ResolveLatencyCollector) *AuthHandler {
	return &AuthHandler{
		sessions:  sessions,
		google:    google,
		demo:      demo,
		collector: collector,
	}
}

// loginRequest はパスワードログインのリクエストボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenRequest はOAuthログインのリクエストボディ。
// トークンの取得（ブラウザフロー）はアプリシェル側で完了している前提。
type tokenRequest struct {
	AccessToken string `json:"access_token"`
}

// Login はメールアドレスとパスワードでログインする。
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, model.NewInvalidCredentialsError())
		return
	}

	user, err := h.sessions.Login(r.Context(), req.Email, req.Password, nil)
	if err != nil {
		h.writeLoginError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse(user, h.sessions.Snapshot()))
}

// GoogleLogin は取得済みのGoogleアクセストークンでログインする。
// POST /auth/google
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	h.resolveAndLogin(w, r, h.google, "google")
}

// DemoLogin はデモAPIのユーザーレコードでログインする。
// POST /auth/demo
func (h *AuthHandler) DemoLogin(w http.ResponseWriter, r *http.Request) {
	h.resolveAndLogin(w, r, h.demo, "demo")
}

// resolveAndLogin はリゾルバでプロファイルを解決し、そのままログインする。
// 解決失敗はログイン拒否（401）として扱い、詳細はログにのみ残す。
func (h *AuthHandler) resolveAndLogin(w http.ResponseWriter, r *http.Request, resolver auth.ProfileResolver, providerTag string) {
	var req tokenRequest
	if r.Body != nil {
		// デモ経路はトークン不要なのでボディの欠落・不正は無視する
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	start := time.Now()
	profile, err := resolver.ResolveProfile(r.Context(), req.AccessToken)
	if h.collector != nil {
		h.collector.RecordResolveLatency(time.Since(start))
	}
	if err != nil {
		slog.Error("profile resolution failed",
			slog.String("provider", providerTag),
			slog.String("error", err.Error()),
		)
		middleware.WriteErrorResponse(w, http.StatusUnauthorized, model.NewOAuthFetchError())
		return
	}

	user, err := h.sessions.Login(r.Context(), profile.Email, oauthSecretPlaceholder, profile)
	if err != nil {
		h.writeLoginError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse(user, h.sessions.Snapshot()))
}

// Logout はセッションを破棄する。常に成功する。
// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Session は現在のセッションスナップショットを返す。
// 認証の有無にかかわらず200で応答し、シェルはこれで画面を選択する。
// GET /auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessions.Snapshot())
}

// writeLoginError はLoginのエラーをHTTPステータスにマッピングして書き込む。
func (h *AuthHandler) writeLoginError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		slog.Error("unexpected login error", slog.String("error", err.Error()))
		middleware.WriteInternalServerError(w)
		return
	}

	status := http.StatusInternalServerError
	switch apiErr.Code {
	case model.ErrCodeInvalidCredentials:
		status = http.StatusBadRequest
	case model.ErrCodePersistence:
		status = http.StatusInternalServerError
	}

	middleware.WriteErrorResponse(w, status, apiErr)
}

// sessionResponse はログイン成功レスポンスを組み立てる。
func sessionResponse(user *model.UserProfile, snapshot model.Session) map[string]any {
	return map[string]any{
		"user":            user,
		"isAuthenticated": snapshot.IsAuthenticated,
		"isLoading":       snapshot.IsLoading,
	}
}

// writeJSON はJSONレスポンスを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", slog.String("error", err.Error()))
	}
}
