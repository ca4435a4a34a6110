package models

import (
	"github.com/mmdatafocus/grange_backend/utils"
	"gorm.io/gorm"
)

// FetchPage counts the filtered rows and loads one page of them with two
// separate queries. dbCtx must already carry the model and filters.
func FetchPage[T any](dbCtx *gorm.DB, page utils.Page, orders ...string) ([]*T, int64, error) {
	return FetchPageSelect[T](dbCtx, "", page, orders...)
}

// FetchPageSelect is FetchPage with a custom projection applied to the page
// query only, so the count stays a plain COUNT(*).
func FetchPageSelect[T any](dbCtx *gorm.DB, selects string, page utils.Page, orders ...string) ([]*T, int64, error) {
	var total int64
	if err := dbCtx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	results := make([]*T, 0)
	if total == 0 || int64(page.Skip) >= total {
		return results, total, nil
	}

	q := dbCtx.Session(&gorm.Session{})
	if selects != "" {
		q = q.Select(selects)
	}
	for _, order := range orders {
		q = q.Order(order)
	}
	if page.Skip > 0 {
		q = q.Offset(page.Skip)
	}
	if !page.All() {
		q = q.Limit(page.Limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

type ShedPagination struct {
	ShedList      []*Shed `json:"shedList"`
	TotalNumSheds int     `json:"totalNumSheds"`
}

type PoolPagination struct {
	PoolList      []*Pool `json:"poolList"`
	TotalNumPools int     `json:"totalNumPools"`
}

type CuyPagination struct {
	CuyList      []*Cuy `json:"cuyList"`
	TotalNumCuys int    `json:"totalNumCuys"`
}

type CuyReportPagination struct {
	CuyList      []*CuyReport `json:"cuyList"`
	TotalNumCuys int          `json:"totalNumCuys"`
}

type MobilizationReportPagination struct {
	MobilizationList      []*MobilizationReport `json:"mobilizationList"`
	TotalNumMobilizations int                   `json:"totalNumMobilizations"`
}
