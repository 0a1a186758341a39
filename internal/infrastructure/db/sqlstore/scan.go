package sqlstore

import (
	"database/sql"

	"github.com/thingful/thingful-api/internal/core/projection"
)

// scanRows drains a result set into the projection.Row shape, keyed by the
// query's column aliases. []byte values are copied to string since the
// driver may reuse the buffer between rows.
func scanRows(rows *sql.Rows) ([]projection.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []projection.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(projection.Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
