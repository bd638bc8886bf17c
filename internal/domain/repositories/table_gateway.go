package repositories

import "context"

// TableGateway provides generic row access by table name with conjunctive
// equality filters. It backs bulk import and the admin data tools, where the
// target table is chosen at runtime.
type TableGateway interface {
	Select(ctx context.Context, table string, filters map[string]any) ([]map[string]any, error)
	Insert(ctx context.Context, table string, row map[string]any) error
	Update(ctx context.Context, table string, values map[string]any, filters map[string]any) (int64, error)
	Delete(ctx context.Context, table string, filters map[string]any) (int64, error)
}
