package repository

import (
	"fmt"
	"strings"

	"github.com/autofinanceai/backend/internal/pkg/models"
)

// buildFilterClauses translates a TransactionFilter into a WHERE clause with
// positional arguments. Every provided predicate is combined with AND;
// omitted predicates impose no restriction.
func buildFilterClauses(filter models.TransactionFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	add := func(cond string, val interface{}) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.OwnerID != nil {
		add("t.user_id = $%d", *filter.OwnerID)
	}
	if filter.Category != "" {
		add("t.category = $%d", filter.Category)
	}
	if filter.AmountMin != nil {
		add("t.amount >= $%d", *filter.AmountMin)
	}
	if filter.AmountMax != nil {
		add("t.amount <= $%d", *filter.AmountMax)
	}
	if filter.DateAfter != nil {
		add("t.date >= $%d", *filter.DateAfter)
	}
	if filter.DateBefore != nil {
		add("t.date <= $%d", *filter.DateBefore)
	}
	if filter.Search != "" {
		add("t.description ILIKE $%d", "%"+escapeLike(filter.Search)+"%")
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// orderClause maps the ordering parameter onto a deterministic ORDER BY.
// Unknown fields fall back to the default descending-date ordering.
func orderClause(ordering string) string {
	switch ordering {
	case "date":
		return "ORDER BY t.date ASC, t.id ASC"
	case "amount":
		return "ORDER BY t.amount ASC, t.id ASC"
	case "-amount":
		return "ORDER BY t.amount DESC, t.id ASC"
	default:
		return "ORDER BY t.date DESC, t.id ASC"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in a user-supplied search term.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
