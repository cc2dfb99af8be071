package repository

import (
	"context"
	"strings"
)

// ExperienceSearchQuery defines filters & pagination for searching the catalog.
type ExperienceSearchQuery struct {
	Query    string
	Location string
	Page     int
	PageSize int
}

// Search returns experiences matching the given substring filters along
// with the total match count. Matching is a case-insensitive LIKE on
// title and location; there is no ranking beyond the default ordering
// (newest first).
func (r *ExperienceRepo) Search(ctx context.Context, q ExperienceSearchQuery) ([]ExperienceRow, int64, error) {
	where := []string{}
	args := []any{}

	if q.Query != "" {
		where = append(where, "LOWER(e.title) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Query)+"%")
	}
	if q.Location != "" {
		where = append(where, "LOWER(e.location) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Location)+"%")
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	countSQL := `SELECT COUNT(*) FROM experiences e WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := `SELECT e.id, e.title, e.details, e.about, e.location, e.image_url,
			e.price_units, e.is_available, e.created_at
		FROM experiences e
		WHERE ` + cond + `
		ORDER BY e.created_at DESC
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]ExperienceRow, 0, limit)
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rowFromModel(exp))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
