// Package model はドメインモデルを定義する。
package model

import "time"

// Provider は認証手段を表すラベル。
// 新しいOAuthプロバイダーを追加してもセッションの形を変えずに済むよう、
// 閉じたenumではなく自由形式の文字列として扱う。
type Provider string

// 既知のプロバイダーラベル。
const (
	ProviderEmail  Provider = "Email"
	ProviderGoogle Provider = "Google"
	ProviderDemo   Provider = "Demo API"
)

// UserProfile は認証済みユーザーの正規化されたレコードを表す。
// パスワードログインとOAuthログインの両方が同じ形を共有する。
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Provider  Provider  `json:"provider"`
	Avatar    string    `json:"avatar,omitempty"`
	LoginTime time.Time `json:"loginTime"`
}

// Clone はUserProfileのコピーを返す。
// セッションのスナップショット公開時に内部状態への参照を漏らさないために使う。
func (u *UserProfile) Clone() *UserProfile {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
