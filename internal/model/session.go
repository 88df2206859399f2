package model

// SessionState はセッションストアのライフサイクル状態を表す。
type SessionState string

const (
	// StateUninitialized はプロセス起動直後、Restore実行前の状態。
	StateUninitialized SessionState = "uninitialized"
	// StateRestoring はストレージからの復元処理中の状態。
	StateRestoring SessionState = "restoring"
	// StateUnauthenticated は未ログイン状態。
	StateUnauthenticated SessionState = "unauthenticated"
	// StateAuthenticated はログイン済み状態。
	StateAuthenticated SessionState = "authenticated"
)

// Session はプレゼンテーション層に公開するセッションのスナップショット。
// IsAuthenticatedはUserの有無から導出され、中間状態は観測されない。
type Session struct {
	User            *UserProfile `json:"user,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsLoading       bool         `json:"isLoading"`
}
