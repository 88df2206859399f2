// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"net/http"

	"github.com/hitoshi/coverdesk/internal/model"
)

// SessionReader はセッションスナップショットの読み取りに必要なインターフェース。
// session.Storeの部分集合として定義する。
type SessionReader interface {
	Snapshot() model.Session
}

// NewSessionMiddleware はセッションストアのスナップショットを確認し、
// 未認証リクエストを401で拒否するミドルウェアを返す。
// ローカルアプリのバックエンドなのでCookie等のリクエスト資格情報は持たず、
// プロセス内のセッション状態がそのまま認可の根拠になる。
func NewSessionMiddleware(sessions SessionReader) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snapshot := sessions.Snapshot()
			if !snapshot.IsAuthenticated {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
