// Package session はログインセッションのライフサイクル管理を提供する。
//
// Storeは「誰がログインしているか」の唯一の情報源であり、ローカルの
// キーバリューストアへの永続化往復を所有する。プレゼンテーション層は
// Snapshotで公開される値を読み、Login/Logoutの2つの操作だけを呼び出す。
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/coverdesk/internal/model"
	"github.com/hitoshi/coverdesk/internal/repository"
)

// MetricsCollector はセッション操作のメトリクス収集インターフェース。
// internal/metricsのCollectorが実装する。
type MetricsCollector interface {
	RecordLoginSuccess(provider model.Provider)
	RecordLoginFailure(reason string)
	RecordRestore(outcome string)
}

// Config はStoreの設定。
type Config struct {
	// StorageKey はセッションレコードを格納するキーバリューストア上のキー。
	StorageKey string
}

// Store はセッション状態の唯一の所有者。
// 仕様上はプレゼンテーション層がセッション変更を直列化する前提だが、
// HTTP経由の同時リクエストは現実に起こり得るため、状態はmutexで保護する。
type Store struct {
	kv        repository.KVStore
	validator CredentialValidator
	metrics   MetricsCollector
	config    Config

	mu    sync.RWMutex
	state model.SessionState
	user  *model.UserProfile
}

// NewStore はStoreを生成する。初期状態はUninitialized。
// validatorがnilの場合はデフォルトの「空でなければ受理する」検証が使われる。
// metricsはnil可（収集しない）。
func NewStore(kv repository.KVStore, validator CredentialValidator, metrics MetricsCollector, config Config) *Store {
	if validator == nil {
		validator = NonEmptyValidator{}
	}
	if config.StorageKey == "" {
		config.StorageKey = "user"
	}
	return &Store{
		kv:        kv,
		validator: validator,
		metrics:   metrics,
		config:    config,
		state:     model.StateUninitialized,
	}
}

// Restore はストレージに保存された前回のセッションを復元する。
// レコードなし・パース失敗・ストレージ障害のいずれも「未ログイン」として扱い、
// エラーは返さない（起動をブロックしない）。実行中はIsLoadingがtrueになる。
// プレゼンテーション層が画面を選択する前に完了していなければならない。
func (s *Store) Restore(ctx context.Context) model.Session {
	s.mu.Lock()
	s.state = model.StateRestoring
	s.mu.Unlock()

	user, outcome := s.readStoredUser(ctx)

	s.mu.Lock()
	s.user = user
	if user != nil {
		s.state = model.StateAuthenticated
	} else {
		s.state = model.StateUnauthenticated
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.recordRestore(outcome)
	slog.Info("session restore completed",
		slog.String("outcome", outcome),
		slog.Bool("authenticated", snapshot.IsAuthenticated),
	)

	return snapshot
}

// readStoredUser は永続化されたユーザーレコードを読み取る。
// 失敗はすべて空セッションに縮退し、結果の分類だけを返す。
func (s *Store) readStoredUser(ctx context.Context) (*model.UserProfile, string) {
	value, found, err := s.kv.Get(ctx, s.config.StorageKey)
	if err != nil {
		slog.Error("failed to read stored session",
			slog.String("error", err.Error()),
		)
		return nil, "storage_error"
	}
	if !found {
		return nil, "empty"
	}

	var user model.UserProfile
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		slog.Error("failed to parse stored session",
			slog.String("error", err.Error()),
		)
		return nil, "corrupt"
	}

	return &user, "restored"
}

// Login は資格情報またはOAuthプロファイルでログインする。
//
// identifierまたはsecretがトリム後に空の場合はINVALID_CREDENTIALSで失敗する。
// externalが指定された場合（OAuth経路）はそのプロファイルをそのまま新しい
// ユーザーとして採用する。externalを構築できる呼び出し元は資格情報検証を
// バイパスできる、という信頼境界は意図的なもの。
// それ以外（パスワード経路）はCredentialValidatorを通し、provider="Email"の
// 合成ユーザーレコードを生成する。
//
// 永続化と公開はアトミック: ストレージ書き込みが失敗した場合は
// PERSISTENCE_ERRORを返し、メモリ上のセッションは変更しない。
// すでにログイン済みの場合は後勝ちで上書きする。
func (s *Store) Login(ctx context.Context, identifier, secret string, external *model.UserProfile) (*model.UserProfile, error) {
	id := strings.TrimSpace(identifier)
	sec := strings.TrimSpace(secret)
	if id == "" || sec == "" {
		s.recordLoginFailure("invalid_credentials")
		return nil, model.NewInvalidCredentialsError()
	}

	var user *model.UserProfile
	if external != nil {
		user = external.Clone()
	} else {
		if err := s.validator.Validate(id, sec); err != nil {
			s.recordLoginFailure("invalid_credentials")
			return nil, err
		}
		user = &model.UserProfile{
			ID:        uuid.New().String(),
			Name:      displayNameFromIdentifier(id),
			Email:     id,
			Provider:  model.ProviderEmail,
			LoginTime: time.Now().UTC(),
		}
	}

	payload, err := json.Marshal(user)
	if err != nil {
		s.recordLoginFailure("persistence")
		slog.Error("failed to serialize session",
			slog.String("error", err.Error()),
		)
		return nil, model.NewPersistenceError("serialize")
	}

	if err := s.kv.Set(ctx, s.config.StorageKey, string(payload)); err != nil {
		s.recordLoginFailure("persistence")
		slog.Error("failed to persist session",
			slog.String("error", err.Error()),
		)
		return nil, model.NewPersistenceError("write")
	}

	s.mu.Lock()
	s.user = user
	s.state = model.StateAuthenticated
	s.mu.Unlock()

	s.recordLoginSuccess(user.Provider)
	slog.Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("provider", string(user.Provider)),
	)

	return user.Clone(), nil
}

// Logout は永続化されたレコードを削除し、メモリ上のセッションをクリアする。
// ストレージ障害はログに記録するだけで、呼び出し元からは常に成功として扱われる。
// 冪等であり、未ログイン状態で呼んでも安全。
func (s *Store) Logout(ctx context.Context) {
	if err := s.kv.Remove(ctx, s.config.StorageKey); err != nil {
		slog.Error("failed to remove stored session",
			slog.String("error", err.Error()),
		)
	}

	s.mu.Lock()
	wasAuthenticated := s.user != nil
	s.user = nil
	s.state = model.StateUnauthenticated
	s.mu.Unlock()

	if wasAuthenticated {
		slog.Info("user logged out")
	}
}

// Snapshot は現在のセッションのコピーを返す。
// IsLoadingはRestore完了前（Uninitialized/Restoring）のみtrue。
func (s *Store) Snapshot() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// State は現在のライフサイクル状態を返す。
func (s *Store) State() model.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) snapshotLocked() model.Session {
	return model.Session{
		User:            s.user.Clone(),
		IsAuthenticated: s.user != nil,
		IsLoading:       s.state == model.StateUninitialized || s.state == model.StateRestoring,
	}
}

func (s *Store) recordLoginSuccess(provider model.Provider) {
	if s.metrics != nil {
		s.metrics.RecordLoginSuccess(provider)
	}
}

func (s *Store) recordLoginFailure(reason string) {
	if s.metrics != nil {
		s.metrics.RecordLoginFailure(reason)
	}
}

func (s *Store) recordRestore(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordRestore(outcome)
	}
}

// displayNameFromIdentifier は識別子（メールアドレス）から表示名を導出する。
// ローカル部の区切り文字を空白に置き換えたものを使う。
func displayNameFromIdentifier(identifier string) string {
	local := identifier
	if at := strings.IndexByte(identifier, '@'); at > 0 {
		local = identifier[:at]
	}
	name := strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)
	name = strings.TrimSpace(name)
	if name == "" {
		return identifier
	}
	return name
}
