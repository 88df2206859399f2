package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open はローカルのSQLiteデータベース接続を開く。
// pathはデータベースファイルのパスを指定する（例: "coverdesk.db"）。
// CGO不要のmodernc.org/sqliteドライバを使用するため、モバイル/組み込みの
// ビルド環境でもそのまま動作する。
// sql.Openは接続を試行しないため、実際の確認にはdb.Ping()を使用すること。
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// 単一ライターのローカルストアなので接続は1本に固定する。
	// SQLiteの書き込み競合（database is locked）を避ける。
	db.SetMaxOpenConns(1)

	return db, nil
}
