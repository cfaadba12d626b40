package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreatedAt = "created_at"
	orderByPrice     = "price"
	orderByTitle     = "title"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreatedAt: "created_at DESC",
	orderByPrice:     "price ASC NULLS LAST",
	orderByTitle:     "title ASC",
}

const defaultOrderBy = "created_at DESC"

const baseCardsSelect = `SELECT id, COALESCE(kind, ''), title, COALESCE(team, ''), COALESCE(set_name, ''),
	COALESCE(condition, ''), COALESCE(numbering, ''), COALESCE(notes, ''),
	price, vinted, vendora, ebay, status,
	COALESCE(image_url_front, ''), COALESCE(image_url_back, ''),
	COALESCE(extra_image_urls, '{}'), created_at
FROM cards`

const countCardsSelect = "SELECT COUNT(*) FROM cards"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a card query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *CardQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, *q.Status)
		paramIdx++
	}

	if q.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("kind = $%d", paramIdx))
		args = append(args, *q.Kind)
		paramIdx++
	}

	if q.Team != nil {
		conditions = append(conditions, fmt.Sprintf("team = $%d", paramIdx))
		args = append(args, *q.Team)
		paramIdx++
	}

	if q.Set != nil {
		conditions = append(conditions, fmt.Sprintf("set_name = $%d", paramIdx))
		args = append(args, *q.Set)
		paramIdx++
	}

	if q.TitleSearch != nil {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", paramIdx))
		args = append(args, "%"+*q.TitleSearch+"%")
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseCardsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countCardsSelect + whereClause

	return dataSQL, countSQL, args
}
