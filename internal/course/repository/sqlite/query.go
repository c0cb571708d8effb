package sqlite

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

// where joins conditions with AND; an empty set matches everything.
func where(conditions []string) string {
	if len(conditions) == 0 {
		return "1=1"
	}
	return strings.Join(conditions, " AND ")
}

// inCourses expands "course_id IN (?)" for ids and rebinds for db.
func (r *implRepository) inCourses(base string, ids []string, extra ...string) (string, []any, error) {
	conditions := append([]string{"course_id IN (?)"}, extra...)
	query, args, err := sqlx.In(base+" WHERE "+where(conditions)+" ORDER BY created_at, rowid", ids)
	if err != nil {
		return "", nil, err
	}
	return r.db.Rebind(query), args, nil
}
