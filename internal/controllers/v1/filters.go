package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func stringFilters(db, query *gorm.DB, setFields []string, description, search string) *gorm.DB {
	if description != "" {
		query = query.Where("description LIKE ?", fmt.Sprintf("%%%s%%", description))
	} else if slices.Contains(setFields, "Description") {
		query = query.Where("description = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("description LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("category LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

func nameFilters(db, query *gorm.DB, setFields []string, name, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if search != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search))
	}

	return query
}

// paginate returns the page of resources selected by offset and limit.
// A negative limit disables the limit, matching the database behavior.
func paginate[T any](resources []T, offset, limit int) []T {
	if offset >= len(resources) {
		return []T{}
	}

	resources = resources[offset:]
	if limit >= 0 && limit < len(resources) {
		resources = resources[:limit]
	}

	return resources
}
