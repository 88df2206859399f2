package model

import (
	"errors"
	"fmt"
)

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, storage, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodePersistence        = "PERSISTENCE_ERROR"
	ErrCodeOAuthFetchFailed   = "OAUTH_FETCH_FAILED"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewInvalidCredentialsError は空の識別子/パスワードに対するエラーを生成する。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "Please enter email and password",
		Category: "validation",
		Action:   "Fill in both the email and password fields and try again.",
	}
}

// NewPersistenceError はローカルストレージの読み書き失敗エラーを生成する。
func NewPersistenceError(op string) *APIError {
	return &APIError{
		Code:     ErrCodePersistence,
		Message:  fmt.Sprintf("Failed to save your session (%s)", op),
		Category: "storage",
		Action:   "Check the device storage and try again.",
	}
}

// NewOAuthFetchError はOAuthプロファイル解決の失敗エラーを生成する。
// ネットワーク障害・非2xx応答・必須フィールド欠落のいずれも同じ形に正規化する。
func NewOAuthFetchError() *APIError {
	return &APIError{
		Code:     ErrCodeOAuthFetchFailed,
		Message:  "Authentication failed",
		Category: "auth",
		Action:   "Try signing in again. If the problem persists, use the email login.",
	}
}

// NewUnauthorizedError は未認証アクセスに対するエラーを生成する。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "You are not signed in",
		Category: "auth",
		Action:   "Sign in and try again.",
	}
}

// HasCode はerrが指定コードのAPIErrorかどうかを判定する。
// wrapされたエラーチェーンも辿る。
func HasCode(err error, code string) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
