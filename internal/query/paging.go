package query

import (
	"github.com/rotisserie/eris"

	"github.com/retailatlas/store-locator/api/internal/domain"
)

// Pagination defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
)

// Paging is a normalized page/limit pair plus the derived cursor offset.
type Paging struct {
	Page  int
	Limit int
	Skip  int
}

// NormalizePaging validates and bounds pagination parameters. Pages start at
// 1; limits above MaxLimit are capped, limits below 1 rejected.
func NormalizePaging(page, limit int) (Paging, error) {
	if page < 1 {
		return Paging{}, eris.Wrapf(domain.ErrInvalidArgument, "paging: page %d below 1", page)
	}
	if limit < 1 {
		return Paging{}, eris.Wrapf(domain.ErrInvalidArgument, "paging: limit %d below 1", limit)
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Paging{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}, nil
}
