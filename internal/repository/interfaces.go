// Package repository はデータ永続化のインターフェースを定義する。
package repository

import "context"

// KVStore はローカルのキーバリューストアのインターフェース。
// セッションレコードの永続化に使用する。値はJSON文字列として格納される。
// 単一キーに対する1回の読み書きはアトミックだが、それ以上のトランザクション保証はない
// （セッションキーのライターはSessionStoreの1つだけなのでこれで十分）。
type KVStore interface {
	// Get は指定キーの値を取得する。キーが存在しない場合はfound=falseを返す。
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set は指定キーに値を書き込む。既存の値は上書きされる。
	Set(ctx context.Context, key, value string) error

	// Remove は指定キーを削除する。キーが存在しない場合もエラーにしない。
	Remove(ctx context.Context, key string) error
}
