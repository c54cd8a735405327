//go:generate mockery --name DocumentStore --output ./mocks --outpkg mocks --case=underscore
// internal/store/store.go
package store

import "context"

// DocumentStore はリモートドキュメントストアの読み書き・購読インターフェース。
// 本体のホスティング先はこのコアの管轄外で、同期アダプタはこの抽象だけを利用する
type DocumentStore interface {
	// Get はドキュメントを取得します。存在しなければ model.ErrNotFound
	Get(ctx context.Context, path string) (*Document, error)
	// Set はドキュメント全体を書き込みます。merge=true なら既存フィールドと浅いマージ
	Set(ctx context.Context, path string, fields map[string]any, merge bool) error
	// Update はフィールド単位のマージ更新です。ドキュメントが無ければ model.ErrNotFound
	Update(ctx context.Context, path string, fields map[string]any) error
	// Delete はドキュメントを削除します。存在しなくてもエラーにしない
	Delete(ctx context.Context, path string) error
	// List はプレフィックス配下のドキュメントをパス昇順で返します
	List(ctx context.Context, prefix string) ([]*Document, error)
	// Subscribe はプレフィックス配下の変更フィードを返します
	Subscribe(prefix string) *Subscription
}
