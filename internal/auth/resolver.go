// Package auth は外部IDプロバイダーからのプロファイル解決を提供する。
//
// 認可コード/トークンの取得（ブラウザの起動やリダイレクト処理）は
// アプリシェル側の責務であり、このパッケージは取得済みのトークンを
// 正規化されたUserProfileに変換することだけを行う。
package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/hitoshi/coverdesk/internal/model"
)

// ProfileResolver は外部IDプロバイダーのプロファイル解決インターフェース。
// 複数プロバイダー（Google, Demo API等）を同じ形で扱うための抽象化。
type ProfileResolver interface {
	// ResolveProfile はアクセストークンを正規化されたUserProfileに変換する。
	// ネットワーク障害、非2xx応答、必須フィールド欠落のいずれの場合も
	// エラーを返し、部分的なUserProfileを生成しない。
	// 失敗は呼び出し元でログイン拒否として扱われる（自動リトライはしない）。
	ResolveProfile(ctx context.Context, accessToken string) (*model.UserProfile, error)
}

// defaultMaxResponseBytes はIDエンドポイント応答の読み取り上限のデフォルト値。
// プロファイルJSONは高々数KBであり、巨大応答は不正とみなして切り捨てる。
// 実際の上限は各リゾルバの設定（FETCH_MAX_SIZE）で上書きできる。
const defaultMaxResponseBytes = 1 << 20

// fetchBody はGETリクエストを送り、成功応答のボディを返す。
// 各リゾルバで共通のHTTP往復処理。応答はmaxBytesで切り捨てる。
func fetchBody(ctx context.Context, client *http.Client, url, bearerToken string, maxBytes int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
