package session

// CredentialValidator はパスワード経路の資格情報検証ポイント。
// Storeは空チェックを通過した識別子/シークレットに対してのみ呼び出す。
// 本番利用では実際の検証（パスワードハッシュ照合等）に差し替えることを想定しており、
// 操作の契約（入力・成否・永続化の副作用）は変えずに実装だけ置き換えられる。
type CredentialValidator interface {
	// Validate は資格情報を検証する。拒否する場合はエラーを返す。
	Validate(identifier, secret string) error
}

// NonEmptyValidator はデモ用のモック検証ポリシー。
// 空でない識別子/シークレットの組をすべて受理する。
// 実際の資格情報チェックではない点に注意。
type NonEmptyValidator struct{}

// Validate は常にnilを返す（空チェックはStore側で済んでいる）。
func (NonEmptyValidator) Validate(identifier, secret string) error {
	return nil
}

// compile-time interface check
var _ CredentialValidator = NonEmptyValidator{}
