package persistence

import (
	"errors"
	"strings"

	"github.com/assettrack/backend/internal/domain/shared"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var searchFolder = cases.Fold()

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applySearch adds a case-insensitive substring match over columns
func applySearch(query *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + likeEscaper.Replace(searchFolder.String(term)) + "%"

	conds := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}
	return query.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// applyPage applies offset and limit when a page was requested
func applyPage(query *gorm.DB, page *shared.PageRequest) *gorm.DB {
	if page == nil {
		return query
	}
	return query.Offset(page.Offset()).Limit(page.Limit)
}

// lockForUpdate adds FOR UPDATE on dialects that support row locks
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}

// firstAs loads a single row and maps it to its domain type; a missing row yields notFound
func firstAs[M any, D any, PM interface {
	*M
	ToDomain() D
}](query *gorm.DB, notFound error, conds ...any) (D, error) {
	var row M
	if err := query.First(&row, conds...).Error; err != nil {
		var zero D
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, notFound
		}
		return zero, err
	}
	return PM(&row).ToDomain(), nil
}

// findAs runs query and maps every row to its domain type
func findAs[M any, D any, PM interface {
	*M
	ToDomain() D
}](query *gorm.DB) ([]D, error) {
	var rows []M
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]D, len(rows))
	for i := range rows {
		out[i] = PM(&rows[i]).ToDomain()
	}
	return out, nil
}

func countOf(query *gorm.DB) (int64, error) {
	var n int64
	err := query.Count(&n).Error
	return n, err
}

func existsIn(query *gorm.DB) (bool, error) {
	n, err := countOf(query)
	return n > 0, err
}
