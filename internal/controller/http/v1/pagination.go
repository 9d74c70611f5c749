package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kurochkinivan/exam_analyzer/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Pagination struct {
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

func newPagination(page, limit uint64, total int) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int(limit) - 1) / int(limit),
	}
}

func parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, defaultLimit

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, fmt.Errorf("%w: invalid page", domain.ErrValidation)
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, fmt.Errorf("%w: invalid limit, must be in [1;%d]", domain.ErrValidation, maxLimit)
		}
	}

	return page, limit, nil
}
