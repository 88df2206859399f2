// Package app はアプリケーションの初期化と起動を行う。
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/hitoshi/coverdesk/internal/auth"
	"github.com/hitoshi/coverdesk/internal/config"
	"github.com/hitoshi/coverdesk/internal/handler"
	"github.com/hitoshi/coverdesk/internal/insurance"
	"github.com/hitoshi/coverdesk/internal/logger"
	"github.com/hitoshi/coverdesk/internal/metrics"
	"github.com/hitoshi/coverdesk/internal/middleware"
	"github.com/hitoshi/coverdesk/internal/repository"
	"github.com/hitoshi/coverdesk/internal/security"
	"github.com/hitoshi/coverdesk/internal/session"
	"github.com/hitoshi/coverdesk/internal/storage"
)

// Init はアプリケーションの初期化を行う。
// JSON構造化ログをセットアップし、環境変数からConfigを読み込む。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) (*config.Config, error) {
	// 1. ログの初期化（設定読み込み前にログを使えるようにする）
	logger.SetupDefault(w)

	// 2. 環境変数から設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck は軽量サブコマンドのため、フル初期化をスキップする
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_path", cfg.StoragePath),
	)

	switch cmd {
	case CommandMigrate:
		return runMigrate(cfg)
	default:
		return runServe(cfg)
	}
}

// runServe はAPIサーバーモードで起動する。
// ローカルストレージを開き、全依存関係をワイヤリングし、前回セッションを
// 復元してからHTTPサーバーを起動する。復元の完了がサーバー起動に先行するため、
// シェルが画面選択のために/auth/sessionを読む時点でIsLoadingは必ずfalseになる。
// SIGINTまたはSIGTERMシグナルを受信するとグレースフルシャットダウンを行う。
func runServe(cfg *config.Config) error {
	// 1. ストレージのマイグレーションと接続
	// ローカルアプリなので起動時に未適用マイグレーションを自動適用する
	if err := storage.RunMigrations(cfg.StoragePath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := storage.Open(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	slog.Info("local storage opened")

	// 2. リポジトリの初期化
	kvRepo := repository.NewSQLiteKVRepo(db)

	// 3. セキュリティサービスの初期化
	ssrfGuard := security.NewSSRFGuard()
	sanitizer := security.NewProfileSanitizer()

	// IDエンドポイントの設定値を起動時に検証する
	for _, endpoint := range []string{cfg.GoogleUserInfoURL, cfg.DemoAPIURL} {
		if err := ssrfGuard.ValidateURL(endpoint); err != nil {
			return fmt.Errorf("unsafe identity endpoint %q: %w", endpoint, err)
		}
	}

	// 4. メトリクスの初期化
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 5. セッションストアとプロファイルリゾルバの初期化
	sessionStore := session.NewStore(kvRepo, nil, collector, session.Config{
		StorageKey: cfg.SessionStorageKey,
	})

	safeClient := ssrfGuard.NewSafeClient(cfg.FetchTimeout)
	googleResolver := auth.NewGoogleResolver(auth.GoogleConfig{
		UserInfoURL:      cfg.GoogleUserInfoURL,
		Client:           safeClient,
		Sanitizer:        sanitizer,
		MaxResponseBytes: cfg.FetchMaxSize,
	})
	demoResolver := auth.NewDemoResolver(auth.DemoConfig{
		APIURL:           cfg.DemoAPIURL,
		AvatarURLBase:    cfg.AvatarURLBase,
		Client:           safeClient,
		Sanitizer:        sanitizer,
		MaxResponseBytes: cfg.FetchMaxSize,
	})

	insuranceService := insurance.NewService()

	// 6. 前回セッションの復元
	// シェルが最初のスナップショットを読む前に必ず完了させる
	restoreCtx, restoreCancel := context.WithTimeout(context.Background(), 10*time.Second)
	sessionStore.Restore(restoreCtx)
	restoreCancel()

	// 7. ルーターの構築
	// configのレート制限値はreq/min単位なのでreq/secに変換する
	rateLimiterCfg := middleware.DefaultRateLimiterConfig()
	rateLimiterCfg.GeneralRate = perMinute(cfg.RateLimitGeneral)
	rateLimiterCfg.GeneralBurst = cfg.RateLimitGeneral
	rateLimiterCfg.LoginRate = perMinute(cfg.RateLimitLogin)
	rateLimiterCfg.LoginBurst = cfg.RateLimitLogin
	rateLimiter := middleware.NewRateLimiter(rateLimiterCfg)
	defer rateLimiter.Stop()

	deps := &handler.RouterDeps{
		HealthChecker:     db,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		RateLimiter:       rateLimiter,
		Logger:            slog.Default(),

		SessionStore: sessionStore,

		GoogleResolver: googleResolver,
		DemoResolver:   demoResolver,

		InsuranceService: insuranceService,

		MetricsRegistry:  registry,
		MetricsCollector: collector,
	}

	router := handler.NewRouter(deps)

	// 8. HTTPサーバーの起動
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// グレースフルシャットダウンのためのシグナルハンドリング
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runMigrate はストレージマイグレーションを実行する。
// すべての未適用マイグレーションを順番に適用する。
func runMigrate(cfg *config.Config) error {
	slog.Info("running storage migrations",
		slog.String("storage_path", cfg.StoragePath),
	)

	if err := storage.RunMigrations(cfg.StoragePath); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("storage migrations completed successfully")
	return nil
}

// runHealthcheck はヘルスチェックを実行する。
// /healthz エンドポイントにHTTPリクエストを送り、結果を返す。
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/healthz", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// perMinute はreq/min単位の値をrate.Limit（req/sec）に変換する。
func perMinute(n int) rate.Limit {
	return rate.Limit(float64(n) / 60.0)
}
