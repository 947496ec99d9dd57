package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

// ColumnUpdate describes a single-column write to one content table.
type ColumnUpdate struct {
	Table  string
	Column string
	Value  string

	// Singleton targets every active row; otherwise the row with ID is targeted.
	Singleton bool
	ID        int64

	TouchUpdatedAt bool
}

// UpdateColumn applies u and returns the updated row. Table and column names
// must come from a fixed allow-list; they are quoted but never parameterized.
func (s *Store) UpdateColumn(ctx context.Context, u ColumnUpdate) (map[string]interface{}, error) {
	stmt, args := u.statement()

	var rows []map[string]interface{}
	if err := s.db.WithContext(ctx).Raw(stmt, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

func (u ColumnUpdate) statement() (string, []interface{}) {
	set := pq.QuoteIdentifier(u.Column) + " = ?"
	if u.TouchUpdatedAt {
		set += ", updated_at = NOW()"
	}

	args := []interface{}{u.Value}
	where := "active = true"
	if !u.Singleton {
		where = "id = ?"
		args = append(args, u.ID)
	}

	return fmt.Sprintf("UPDATE %s SET %s WHERE %s RETURNING *", pq.QuoteIdentifier(u.Table), set, where), args
}
