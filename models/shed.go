package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/grange_backend/cache"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/utils"
	"gorm.io/gorm"
)

type Shed struct {
	ID                 int       `gorm:"primary_key" json:"id"`
	Name               string    `gorm:"size:150;not null" json:"name"`
	Details            *string   `gorm:"type:text" json:"details"`
	Code               string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Active             bool      `gorm:"not null;index" json:"active"`
	MaleNumberCuys     int       `gorm:"not null;default:0" json:"male_number_cuys"`
	FemaleNumberCuys   int       `gorm:"not null;default:0" json:"female_number_cuys"`
	ChildrenNumberCuys int       `gorm:"not null;default:0" json:"children_number_cuys"`
	TotalNumberCuys    int       `gorm:"not null;default:0" json:"total_number_cuys"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_date"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_date"`
}

type ShedInput struct {
	Name    string  `json:"name" validate:"required,max=150"`
	Details *string `json:"details"`
	Code    string  `json:"code" validate:"required,max=50"`
}

type ShedUpdate struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=150"`
	Details *string `json:"details"`
	Code    *string `json:"code" validate:"omitempty,min=1,max=50"`
}

type ShedsStatistics struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Details   *string `json:"details"`
	Code      string  `json:"code"`
	AliveCuys int     `json:"alive_cuys"`
	SacaCuys  int     `json:"saca_cuys"`
	DeadCuys  int     `json:"dead_cuys"`
}

type ShedStore struct{ s *Store }

func (st *ShedStore) Add(ctx context.Context, input *ShedInput) (*Shed, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	shed := Shed{
		Name:    input.Name,
		Details: input.Details,
		Code:    utils.UpperTrim(input.Code),
		Active:  true,
	}
	err := st.s.mutate(ctx, "AddShed", nil, func(tx *gorm.DB, m *mutation) error {
		if err := tx.Create(&shed).Error; err != nil {
			if utils.IsDuplicateKey(err) {
				return utils.ErrInvalidInput("Shed code already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &shed, nil
}

func (st *ShedStore) Update(ctx context.Context, id int, input *ShedUpdate) (*Shed, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	var shed Shed
	err := st.s.mutate(ctx, "UpdateShed", []int{id}, func(tx *gorm.DB, m *mutation) error {
		if err := forUpdate(tx).First(&shed, id).Error; err != nil {
			return utils.NotFoundOr(err, "Invalid idShed")
		}
		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Details != nil {
			updates["details"] = *input.Details
		}
		if input.Code != nil {
			updates["code"] = utils.UpperTrim(*input.Code)
		}
		if len(updates) > 0 {
			if err := tx.Model(&shed).Updates(updates).Error; err != nil {
				if utils.IsDuplicateKey(err) {
					return utils.ErrInvalidInput("Shed code already exists")
				}
				return err
			}
		}
		m.invalidate(shed)
		return tx.First(&shed, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &shed, nil
}

// Delete removes an inactive shed with every pool, animal and record under it.
func (st *ShedStore) Delete(ctx context.Context, id int) (bool, error) {
	err := st.s.mutate(ctx, "DeleteShed", []int{id}, func(tx *gorm.DB, m *mutation) error {
		var shed Shed
		if err := forUpdate(tx).First(&shed, id).Error; err != nil {
			return utils.NotFoundOr(err, "Invalid idShed")
		}
		if shed.Active {
			return utils.ErrForbidden("Forbidden Could not delete active shed")
		}
		var poolIds []int
		if err := tx.Model(&Pool{}).Where("shed_id = ?", id).Pluck("id", &poolIds).Error; err != nil {
			return err
		}
		if err := deletePoolsCascade(tx, poolIds, m); err != nil {
			return err
		}
		if err := tx.Delete(&Shed{}, id).Error; err != nil {
			return err
		}
		m.invalidate(shed)
		m.publish(config.DomainEvent{Type: "shed.deleted", EntityType: "shed", EntityId: id, ShedId: id})
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Deactivate freezes the shed: every pool and animal under it goes inactive and
// all counters are rebuilt as snapshots of the live population.
func (st *ShedStore) Deactivate(ctx context.Context, id int) (bool, error) {
	err := st.s.mutate(ctx, "DeactivateShed", []int{id}, func(tx *gorm.DB, m *mutation) error {
		var shed Shed
		if err := forUpdate(tx).First(&shed, id).Error; err != nil {
			return utils.NotFoundOr(err, "Invalid idShed")
		}
		if !shed.Active {
			return utils.ErrForbidden("Shed is already inactive")
		}
		var poolIds []int
		if err := tx.Model(&Pool{}).Where("shed_id = ?", id).Pluck("id", &poolIds).Error; err != nil {
			return err
		}
		if len(poolIds) > 0 {
			if err := invalidateCuysOfPools(tx, poolIds, m); err != nil {
				return err
			}
			if err := tx.Model(&Cuy{}).Where("pool_id IN ?", poolIds).Update("active", false).Error; err != nil {
				return err
			}
			if err := tx.Model(&Pool{}).Where("id IN ?", poolIds).Update("active", false).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&shed).Update("active", false).Error; err != nil {
			return err
		}
		shed.Active = false
		return recountShedTree(tx, &shed, m)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Activate reopens the shed. Its pools stay inactive, so the active counters
// start from zero until pools are activated again.
func (st *ShedStore) Activate(ctx context.Context, id int) (bool, error) {
	err := st.s.mutate(ctx, "ActivateShed", []int{id}, func(tx *gorm.DB, m *mutation) error {
		var shed Shed
		if err := forUpdate(tx).First(&shed, id).Error; err != nil {
			return utils.NotFoundOr(err, "Invalid idShed")
		}
		if shed.Active {
			return utils.ErrForbidden("Shed is already active")
		}
		if err := tx.Model(&shed).Update("active", true).Error; err != nil {
			return err
		}
		shed.Active = true
		if err := recountShed(tx, &shed); err != nil {
			return err
		}
		m.invalidate(shed)
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Recount rebuilds the counters of a shed and its pools from the animals.
func (st *ShedStore) Recount(ctx context.Context, id int) (*Shed, error) {
	var shed Shed
	err := st.s.mutate(ctx, "RecountShed", []int{id}, func(tx *gorm.DB, m *mutation) error {
		if err := forUpdate(tx).First(&shed, id).Error; err != nil {
			return utils.NotFoundOr(err, "Invalid idShed")
		}
		return recountShedTree(tx, &shed, m)
	})
	if err != nil {
		return nil, err
	}
	return &shed, nil
}

func (st *ShedStore) ByID(ctx context.Context, id int) (*Shed, error) {
	return cache.GetOrFetch(ctx, st.s.cache, cache.Key("Shed", id), entityCacheTTL, func(ctx context.Context) (*Shed, error) {
		var shed Shed
		if err := st.s.db.WithContext(ctx).First(&shed, id).Error; err != nil {
			return nil, utils.NotFoundOr(err, "Invalid idShed")
		}
		return &shed, nil
	})
}

func (st *ShedStore) ByIDs(ctx context.Context, ids []int) ([]*Shed, error) {
	var sheds []*Shed
	if err := st.s.db.WithContext(ctx).Where("id IN ?", ids).Find(&sheds).Error; err != nil {
		return nil, err
	}
	return sheds, nil
}

func (st *ShedStore) IDs(ctx context.Context) ([]int, error) {
	var ids []int
	err := st.s.db.WithContext(ctx).Model(&Shed{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (st *ShedStore) List(ctx context.Context, filter bool, page utils.Page) (*ShedPagination, error) {
	dbCtx := st.s.db.WithContext(ctx).Model(&Shed{}).Where("active = ?", filter)
	sheds, total, err := FetchPage[Shed](dbCtx, page, "created_at DESC", "id DESC")
	if err != nil {
		st.s.logError("ListSheds", "fetch page", filter, err)
		return nil, err
	}
	return &ShedPagination{ShedList: sheds, TotalNumSheds: int(total)}, nil
}

// Statistics counts alive, saca and dead animals per shed.
func (st *ShedStore) Statistics(ctx context.Context) ([]*ShedsStatistics, error) {
	var rows []*ShedsStatistics
	err := st.s.db.WithContext(ctx).Model(&Shed{}).
		Select(`sheds.id, sheds.name, sheds.details, sheds.code,
			COALESCE(SUM(CASE WHEN cuys.id IS NOT NULL AND cuys.has_death = false AND cuys.has_saca = false THEN 1 ELSE 0 END), 0) AS alive_cuys,
			COALESCE(SUM(CASE WHEN cuys.has_saca = true THEN 1 ELSE 0 END), 0) AS saca_cuys,
			COALESCE(SUM(CASE WHEN cuys.has_death = true THEN 1 ELSE 0 END), 0) AS dead_cuys`).
		Joins("LEFT JOIN pools ON pools.shed_id = sheds.id").
		Joins("LEFT JOIN cuys ON cuys.pool_id = pools.id").
		Group("sheds.id, sheds.name, sheds.details, sheds.code").
		Order("sheds.id").
		Scan(&rows).Error
	if err != nil {
		st.s.logError("ShedsStatistics", "aggregate", nil, err)
		return nil, err
	}
	return rows, nil
}
