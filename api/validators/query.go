package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/glowmart/cosmetics-backend/pkg/errors"
	"github.com/glowmart/cosmetics-backend/pkg/pagination"
)

func ParseQueryInt(r *http.Request, key string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

func ParseQueryUint64(r *http.Request, key string) (uint64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a positive integer").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParsePaging reads offset/limit from the query string. Out-of-range values
// are clamped later by pagination.Normalize rather than rejected.
func ParsePaging(r *http.Request) (pagination.Paging, error) {
	offset, err := ParseQueryInt(r, "offset", 0)
	if err != nil {
		return pagination.Paging{}, err
	}
	limit, err := ParseQueryInt(r, "limit", 0)
	if err != nil {
		return pagination.Paging{}, err
	}
	return pagination.Paging{Offset: offset, Limit: limit}, nil
}

// ParsePathUint64 converts a chi URL parameter into an id.
func ParsePathUint64(raw, field string) (uint64, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || value == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be a positive integer").WithDetails(map[string]any{"field": field})
	}
	return value, nil
}
