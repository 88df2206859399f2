package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/coverdesk/internal/auth"
	"github.com/hitoshi/coverdesk/internal/metrics"
	"github.com/hitoshi/coverdesk/internal/middleware"
)

// HealthChecker はヘルスチェックに必要なインターフェース。
// *sql.DBが満たす。
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// SessionStore はルーターが必要とするセッションストアの全インターフェース。
// ハンドラー用のSessionServiceとミドルウェア用のSessionReaderを合成したもの。
type SessionStore interface {
	SessionService
	middleware.SessionReader
}

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	HealthChecker     HealthChecker
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger

	// セッション
	SessionStore SessionStore

	// プロファイル解決
	GoogleResolver auth.ProfileResolver
	DemoResolver   auth.ProfileResolver

	// 契約データ
	InsuranceService InsuranceServiceInterface

	// メトリクス（nil可: エンドポイントとステータス収集を無効化）
	MetricsRegistry  *prometheus.Registry
	MetricsCollector *metrics.Collector
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Logging
//
// 認証ルート（/auth/*）はセッションゲートの外、契約データルート（/api/*）は内側に配置する。
// ログイン系エンドポイントには専用のレート制限を追加する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var statusCollector middleware.StatusCollector
	if deps.MetricsCollector != nil {
		statusCollector = deps.MetricsCollector
	}

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewLoggingMiddleware(logger, statusCollector))

	var resolveCollector ResolveLatencyCollector
	if deps.MetricsCollector != nil {
		resolveCollector = deps.MetricsCollector
	}

	authHandler := NewAuthHandler(deps.SessionStore, deps.GoogleResolver, deps.DemoResolver, resolveCollector)
	insuranceHandler := NewInsuranceHandler(deps.InsuranceService)

	// --- 認証不要のルート ---

	r.Get("/healthz", newHealthHandler(deps.HealthChecker))

	if deps.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.MetricsRegistry))
	}

	r.Route("/auth", func(r chi.Router) {
		// ログイン試行には総当たり抑止のレート制限を追加
		loginLimit := func(r chi.Router) chi.Router {
			if deps.RateLimiter != nil {
				return r.With(deps.RateLimiter.LoginMiddleware())
			}
			return r
		}

		loginLimit(r).Post("/login", authHandler.Login)
		loginLimit(r).Post("/google", authHandler.GoogleLogin)
		loginLimit(r).Post("/demo", authHandler.DemoLogin)

		r.Post("/logout", authHandler.Logout)
		r.Get("/session", authHandler.Session)
	})

	// --- 認証が必要なルート ---
	// ミドルウェアスタック: Session → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewSessionMiddleware(deps.SessionStore))
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.GeneralMiddleware())
		}

		r.Get("/api/dashboard", insuranceHandler.Dashboard)

		r.Route("/api/insurance", func(r chi.Router) {
			r.Get("/general", insuranceHandler.General)
			r.Get("/life", insuranceHandler.Life)
			r.Get("/assets", insuranceHandler.Assets)
		})
	})

	return r
}

// newHealthHandler はストレージ疎通を確認するヘルスチェックハンドラーを返す。
func newHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.PingContext(r.Context()); err != nil {
				slog.Error("health check failed", slog.String("error", err.Error()))
				http.Error(w, "unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
