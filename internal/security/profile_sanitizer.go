// Package security はアプリケーションのセキュリティ機能を提供する。
//
// ProfileSanitizerService は外部IDエンドポイントから取得したユーザー情報を
// サニタイズし、格納・表示経路へのマークアップ混入を防ぐ。
// bluemondayのStrictPolicy（全タグ除去）を使用する。
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ProfileSanitizerService は信頼できないプロファイルフィールドの
// サニタイズ機能のインターフェースを定義する。
// OAuthプロファイル解決時、UserProfileへのマッピング前に使用される。
type ProfileSanitizerService interface {
	// SanitizeField はフィールド値からすべてのHTMLマークアップを除去し、
	// 前後の空白をトリムして返す。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	SanitizeField(value string) string
}

// profileSanitizer はProfileSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type profileSanitizer struct {
	policy *bluemonday.Policy
}

// NewProfileSanitizer はProfileSanitizerServiceの新しいインスタンスを生成する。
// StrictPolicyはタグも属性も一切許可しないため、表示名に紛れ込んだ
// <script>等はテキストごと除去される。
func NewProfileSanitizer() *profileSanitizer {
	return &profileSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// SanitizeField はフィールド値からすべてのHTMLマークアップを除去する。
func (s *profileSanitizer) SanitizeField(value string) string {
	return strings.TrimSpace(s.policy.Sanitize(value))
}

// compile-time interface check
var _ ProfileSanitizerService = (*profileSanitizer)(nil)
