package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CuyReport struct {
	ID            int              `json:"id"`
	Earring       string           `json:"earring"`
	Race          string           `json:"race"`
	Genre         Genre            `json:"genre"`
	CurrentPhoto  *string          `json:"current_photo"`
	CurrentWeight *decimal.Decimal `json:"current_weight"`
	BirthdayDate  time.Time        `json:"birthday_date"`
	ShedCode      string           `json:"shed_code"`
	ShedName      string           `json:"shed_name"`
	PoolCode      string           `json:"pool_code"`
	PoolPhase     string           `json:"pool_phase"`
	RecordDate    time.Time        `json:"-"`
	RecordReason  string           `json:"-"`
}

// ReportFilter narrows death and saca reports. Nil fields are ignored.
type ReportFilter struct {
	ShedId   *int
	PoolId   *int
	DateFrom *time.Time
	DateTo   *time.Time
	Reason   *string
}

const cuyReportColumns = `cuys.id, cuys.earring, cuys.race, cuys.genre, cuys.current_photo, cuys.current_weight, cuys.birthday_date,
	sheds.code AS shed_code, sheds.name AS shed_name, pools.code AS pool_code, pools.phase AS pool_phase,
	r.date AS record_date, r.reason AS record_reason`

type RecordKind string

const (
	RecordDeath RecordKind = "death"
	RecordSaca  RecordKind = "saca"
)

func (k RecordKind) table() string {
	if k == RecordDeath {
		return "cuy_deaths"
	}
	return "cuy_sacas"
}

func (st *CuyStore) DeathReport(ctx context.Context, filter ReportFilter, page utils.Page) (*CuyReportPagination, error) {
	return st.recordReport(ctx, RecordDeath, filter, page)
}

func (st *CuyStore) SacaReport(ctx context.Context, filter ReportFilter, page utils.Page) (*CuyReportPagination, error) {
	return st.recordReport(ctx, RecordSaca, filter, page)
}

func (st *CuyStore) recordReport(ctx context.Context, kind RecordKind, filter ReportFilter, page utils.Page) (*CuyReportPagination, error) {
	table := kind.table()
	dbCtx := st.s.db.WithContext(ctx).Table("cuys").
		Joins("JOIN " + table + " r ON r.cuy_id = cuys.id").
		Joins("JOIN pools ON pools.id = cuys.pool_id").
		Joins("JOIN sheds ON sheds.id = pools.shed_id")
	dbCtx = applyReportFilter(dbCtx, filter)

	rows, total, err := FetchPageSelect[CuyReport](dbCtx, cuyReportColumns, page, "r.date DESC", "cuys.id DESC")
	if err != nil {
		st.s.logError("RecordReport", string(kind), filter, err)
		return nil, err
	}
	return &CuyReportPagination{CuyList: rows, TotalNumCuys: int(total)}, nil
}

func applyReportFilter(dbCtx *gorm.DB, filter ReportFilter) *gorm.DB {
	if filter.ShedId != nil {
		dbCtx = dbCtx.Where("sheds.id = ?", *filter.ShedId)
	}
	if filter.PoolId != nil {
		dbCtx = dbCtx.Where("pools.id = ?", *filter.PoolId)
	}
	if filter.DateFrom != nil {
		dbCtx = dbCtx.Where("r.date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		dbCtx = dbCtx.Where("r.date <= ?", *filter.DateTo)
	}
	if filter.Reason != nil && *filter.Reason != "" {
		dbCtx = dbCtx.Where("r.reason LIKE ?", "%"+*filter.Reason+"%")
	}
	return dbCtx
}
