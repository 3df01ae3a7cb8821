package shared

import (
	"strconv"
	"strings"

	"todoapi/shared/dto"
	"todoapi/shared/failure"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins non-empty parts into a namespaced cache key.
func BuildCacheKey(parts ...string) string {
	filtered := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			filtered = append(filtered, part)
		}
	}

	return strings.Join(filtered, cacheKeySeparator)
}

// ParseID converts a path parameter into an integer id. Whether the id exists is left to the caller.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

// FilterByID matches a single row by its primary key.
func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
