package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/utils"
	"gorm.io/gorm"
)

type Mobilization struct {
	ID            int       `gorm:"primary_key" json:"id"`
	CuyId         int       `gorm:"index;not null" json:"cuy_id"`
	OriginId      int       `gorm:"index;not null" json:"origin_id"`
	DestinationId int       `gorm:"index;not null" json:"destination_id"`
	UserId        int       `gorm:"index;not null" json:"user_id"`
	Date          time.Time `gorm:"index;not null" json:"date"`
	Reason        string    `gorm:"size:255;not null" json:"reason"`
	ReferenceDoc  *string   `gorm:"size:255" json:"reference_doc"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_date"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_date"`
}

type MobilizationInput struct {
	Cuy          int       `json:"cuy" validate:"required,gt=0"`
	Origin       int       `json:"origin" validate:"required,gt=0"`
	Destination  int       `json:"destination" validate:"required,gt=0"`
	Date         time.Time `json:"date" validate:"required"`
	Reason       string    `json:"reason" validate:"required,max=255"`
	ReferenceDoc *string   `json:"reference_doc"`
}

type MobilizationUpdate struct {
	Date         *time.Time `json:"date"`
	Reason       *string    `json:"reason" validate:"omitempty,min=1,max=255"`
	ReferenceDoc *string    `json:"reference_doc"`
}

type MobilizationReport struct {
	ID               int       `json:"id"`
	CuyId            int       `json:"cuy_id"`
	CuyActive        bool      `json:"cuy_active"`
	CuyEarring       string    `json:"cuy_earring"`
	CuyGenre         Genre     `json:"cuy_genre"`
	CuyRace          string    `json:"cuy_race"`
	OriginCode       string    `json:"origin_code"`
	OriginPhase      string    `json:"origin_phase"`
	DestinationCode  string    `json:"destination_code"`
	DestinationPhase string    `json:"destination_phase"`
	Date             time.Time `json:"date"`
	Reason           string    `json:"reason"`
	ReferenceDoc     *string   `json:"reference_doc"`
	UserId           int       `json:"user_id"`
	CreatedAt        time.Time `json:"created_date"`
	UpdatedAt        time.Time `json:"updated_date"`
}

type MobilizationFilter struct {
	CuyId         *int
	OriginId      *int
	DestinationId *int
	DateFrom      *time.Time
	DateTo        *time.Time
	Reason        *string
}

type MobilizationStore struct{ s *Store }

// Add moves the animal to the destination pool. The animal takes the
// destination pool's active flag and the counters follow the placement diff.
func (st *MobilizationStore) Add(ctx context.Context, input *MobilizationInput) (*Mobilization, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	if input.Origin == input.Destination {
		return nil, utils.ErrInvalidInput("Origin and destination pool must be different")
	}
	cuy, err := st.s.Cuys.ByID(ctx, input.Cuy)
	if err != nil {
		return nil, utils.NotFoundOr(err, "Invalid ID of cuy")
	}
	if !cuy.IsLive() {
		return nil, utils.ErrForbidden("Cuy is death or in saca. Could not mobilize")
	}
	originShed, err := st.s.Pools.shedOf(ctx, input.Origin)
	if err != nil {
		return nil, utils.ErrNotFound("Invalid ID of origin")
	}
	destinationShed, err := st.s.Pools.shedOf(ctx, input.Destination)
	if err != nil {
		return nil, utils.ErrNotFound("Invalid ID of destination")
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	mobilization := Mobilization{
		CuyId:         input.Cuy,
		OriginId:      input.Origin,
		DestinationId: input.Destination,
		UserId:        userId,
		Date:          input.Date,
		Reason:        input.Reason,
		ReferenceDoc:  input.ReferenceDoc,
	}
	err = st.s.mutate(ctx, "AddMobilization", []int{originShed, destinationShed}, func(tx *gorm.DB, m *mutation) error {
		sc, err := st.s.Cuys.change(tx, m, input.Cuy, func(sc *cuyScope) error {
			if !sc.cuy.IsLive() {
				return utils.ErrForbidden("Cuy is death or in saca. Could not mobilize")
			}
			if sc.cuy.PoolId != input.Origin {
				return utils.ErrForbidden("Invalid origin pool of Cuy")
			}
			shed, pool, err := lockPool(tx, input.Destination)
			if err != nil {
				return utils.NotFoundOr(err, "Invalid ID of destination")
			}
			if err := tx.Create(&mobilization).Error; err != nil {
				return err
			}
			if err := tx.Model(sc.cuy).Updates(map[string]interface{}{
				"pool_id": pool.ID,
				"active":  pool.Active,
			}).Error; err != nil {
				return err
			}
			sc.cuy.PoolId, sc.cuy.Active = pool.ID, pool.Active
			sc.shed, sc.pool = shed, pool
			return nil
		})
		if err != nil {
			return err
		}
		m.publish(config.DomainEvent{
			Type:       "cuy.mobilized",
			EntityType: "mobilization",
			EntityId:   mobilization.ID,
			ShedId:     sc.shed.ID,
			PoolId:     sc.pool.ID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &mobilization, nil
}

func (st *MobilizationStore) Update(ctx context.Context, id int, input *MobilizationUpdate) (*Mobilization, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	var mobilization Mobilization
	err := st.s.mutate(ctx, "UpdateMobilization", nil, func(tx *gorm.DB, m *mutation) error {
		if err := forUpdate(tx).First(&mobilization, id).Error; err != nil {
			return utils.NotFoundOr(err, "Invalid idMobilization")
		}
		updates := map[string]interface{}{}
		if input.Date != nil {
			updates["date"] = *input.Date
		}
		if input.Reason != nil {
			updates["reason"] = *input.Reason
		}
		if input.ReferenceDoc != nil {
			updates["reference_doc"] = *input.ReferenceDoc
		}
		if len(updates) > 0 {
			if err := tx.Model(&mobilization).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.First(&mobilization, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &mobilization, nil
}

func (st *MobilizationStore) ByID(ctx context.Context, id int) (*Mobilization, error) {
	var mobilization Mobilization
	if err := st.s.db.WithContext(ctx).First(&mobilization, id).Error; err != nil {
		return nil, utils.NotFoundOr(err, "Invalid idMobilization")
	}
	return &mobilization, nil
}

const mobilizationReportColumns = `mobilizations.id, mobilizations.cuy_id, cuys.active AS cuy_active, cuys.earring AS cuy_earring,
	cuys.genre AS cuy_genre, cuys.race AS cuy_race,
	origin.code AS origin_code, origin.phase AS origin_phase,
	destination.code AS destination_code, destination.phase AS destination_phase,
	mobilizations.date, mobilizations.reason, mobilizations.reference_doc, mobilizations.user_id,
	mobilizations.created_at, mobilizations.updated_at`

func (st *MobilizationStore) Reports(ctx context.Context, filter MobilizationFilter, page utils.Page) (*MobilizationReportPagination, error) {
	dbCtx := st.s.db.WithContext(ctx).Table("mobilizations").
		Joins("JOIN cuys ON cuys.id = mobilizations.cuy_id").
		Joins("JOIN pools origin ON origin.id = mobilizations.origin_id").
		Joins("JOIN pools destination ON destination.id = mobilizations.destination_id")
	if filter.CuyId != nil {
		dbCtx = dbCtx.Where("mobilizations.cuy_id = ?", *filter.CuyId)
	}
	if filter.OriginId != nil {
		dbCtx = dbCtx.Where("mobilizations.origin_id = ?", *filter.OriginId)
	}
	if filter.DestinationId != nil {
		dbCtx = dbCtx.Where("mobilizations.destination_id = ?", *filter.DestinationId)
	}
	if filter.DateFrom != nil {
		dbCtx = dbCtx.Where("mobilizations.date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		dbCtx = dbCtx.Where("mobilizations.date <= ?", *filter.DateTo)
	}
	if filter.Reason != nil && *filter.Reason != "" {
		dbCtx = dbCtx.Where("mobilizations.reason LIKE ?", "%"+*filter.Reason+"%")
	}

	rows, total, err := FetchPageSelect[MobilizationReport](dbCtx, mobilizationReportColumns, page, "mobilizations.date DESC", "mobilizations.id DESC")
	if err != nil {
		st.s.logError("MobilizationReports", "fetch page", filter, err)
		return nil, err
	}
	return &MobilizationReportPagination{MobilizationList: rows, TotalNumMobilizations: int(total)}, nil
}
