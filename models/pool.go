package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/grange_backend/cache"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/utils"
	"gorm.io/gorm"
)

type Pool struct {
	ID                 int       `gorm:"primary_key" json:"id"`
	ShedId             int       `gorm:"index;not null" json:"shed_id"`
	Type               string    `gorm:"size:50;not null;index" json:"type"`
	Phase              string    `gorm:"size:50;not null;index" json:"phase"`
	Description        *string   `gorm:"type:text" json:"description"`
	Code               string    `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Active             bool      `gorm:"not null;index" json:"active"`
	MalePopulation     int       `gorm:"not null;default:0" json:"male_population"`
	FemalePopulation   int       `gorm:"not null;default:0" json:"female_population"`
	ChildrenPopulation int       `gorm:"not null;default:0" json:"children_population"`
	TotalPopulation    int       `gorm:"not null;default:0" json:"total_population"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_date"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_date"`
}

type Population struct {
	Genre    Genre `json:"genre"`
	Quantity int   `json:"quantity"`
}

// Population exposes the per-genre counters as a list.
func (p *Pool) Population() []*Population {
	return []*Population{
		{Genre: GenreMale, Quantity: p.MalePopulation},
		{Genre: GenreFemale, Quantity: p.FemalePopulation},
		{Genre: GenreChild, Quantity: p.ChildrenPopulation},
	}
}

type PoolInput struct {
	Shed        int     `json:"shed" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,max=50"`
	Phase       string  `json:"phase" validate:"required,max=50"`
	Code        string  `json:"code" validate:"required,max=50"`
	Description *string `json:"description"`
}

type PoolUpdate struct {
	Type        *string `json:"type" validate:"omitempty,min=1,max=50"`
	Phase       *string `json:"phase" validate:"omitempty,min=1,max=50"`
	Code        *string `json:"code" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description"`
}

type PoolStore struct{ s *Store }

func (st *PoolStore) Add(ctx context.Context, input *PoolInput) (*Pool, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	pool := Pool{
		ShedId:      input.Shed,
		Type:        utils.UpperTrim(input.Type),
		Phase:       utils.UpperTrim(input.Phase),
		Code:        utils.UpperTrim(input.Code),
		Description: input.Description,
		Active:      true,
	}
	err := st.s.mutate(ctx, "AddPool", []int{input.Shed}, func(tx *gorm.DB, m *mutation) error {
		var shed Shed
		if err := forUpdate(tx).First(&shed, input.Shed).Error; err != nil {
			return utils.NotFoundOr(err, "Error. Invalid id of shed")
		}
		if !shed.Active {
			return utils.ErrForbidden("Shed is inactive. Can not add pool to inactive shed")
		}
		if err := tx.Create(&pool).Error; err != nil {
			if utils.IsDuplicateKey(err) {
				return utils.ErrInvalidInput("Pool code already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

func (st *PoolStore) Update(ctx context.Context, id int, input *PoolUpdate) (*Pool, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	var pool Pool
	err := st.s.mutate(ctx, "UpdatePool", nil, func(tx *gorm.DB, m *mutation) error {
		if err := forUpdate(tx).First(&pool, id).Error; err != nil {
			return utils.NotFoundOr(err, "Invalid idPool")
		}
		updates := map[string]interface{}{}
		if input.Type != nil {
			updates["type"] = utils.UpperTrim(*input.Type)
		}
		if input.Phase != nil {
			updates["phase"] = utils.UpperTrim(*input.Phase)
		}
		if input.Code != nil {
			updates["code"] = utils.UpperTrim(*input.Code)
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if len(updates) > 0 {
			if err := tx.Model(&pool).Updates(updates).Error; err != nil {
				if utils.IsDuplicateKey(err) {
					return utils.ErrInvalidInput("Pool code already exists")
				}
				return err
			}
		}
		m.invalidate(pool)
		return tx.First(&pool, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

func (st *PoolStore) Delete(ctx context.Context, id int) (bool, error) {
	shedId, err := st.shedOf(ctx, id)
	if err != nil {
		return false, err
	}
	err = st.s.mutate(ctx, "DeletePool", []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		shed, pool, err := lockPool(tx, id)
		if err != nil {
			return err
		}
		if pool.Active {
			return utils.ErrForbidden("Forbidden. Could not delete active pool")
		}
		if err := deletePoolsCascade(tx, []int{id}, m); err != nil {
			return err
		}
		if err := recountShed(tx, shed); err != nil {
			return err
		}
		m.invalidate(*shed)
		m.publish(config.DomainEvent{Type: "pool.deleted", EntityType: "pool", EntityId: id, ShedId: shed.ID, PoolId: id})
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Deactivate snapshots the live population of the pool and deactivates its animals.
func (st *PoolStore) Deactivate(ctx context.Context, id int) (bool, error) {
	shedId, err := st.shedOf(ctx, id)
	if err != nil {
		return false, err
	}
	err = st.s.mutate(ctx, "DeactivatePool", []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		shed, pool, err := lockPool(tx, id)
		if err != nil {
			return err
		}
		if !pool.Active {
			return utils.ErrForbidden("Pool is already inactive")
		}
		if err := invalidateCuysOfPools(tx, []int{id}, m); err != nil {
			return err
		}
		if err := tx.Model(&Cuy{}).Where("pool_id = ?", id).Update("active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(pool).Update("active", false).Error; err != nil {
			return err
		}
		pool.Active = false
		if err := recountPool(tx, pool); err != nil {
			return err
		}
		if err := recountShed(tx, shed); err != nil {
			return err
		}
		m.invalidate(*pool, *shed)
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Activate reopens the pool with its counters reset; animals are activated one by one.
func (st *PoolStore) Activate(ctx context.Context, id int) (bool, error) {
	shedId, err := st.shedOf(ctx, id)
	if err != nil {
		return false, err
	}
	err = st.s.mutate(ctx, "ActivatePool", []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		shed, pool, err := lockPool(tx, id)
		if err != nil {
			return err
		}
		if pool.Active {
			return utils.ErrForbidden("Pool is already active")
		}
		if !shed.Active {
			return utils.ErrForbidden("Shed of pool is inactive")
		}
		if err := tx.Model(pool).Update("active", true).Error; err != nil {
			return err
		}
		pool.Active = true
		if err := recountPool(tx, pool); err != nil {
			return err
		}
		if err := recountShed(tx, shed); err != nil {
			return err
		}
		m.invalidate(*pool, *shed)
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (st *PoolStore) ByID(ctx context.Context, id int) (*Pool, error) {
	return cache.GetOrFetch(ctx, st.s.cache, cache.Key("Pool", id), entityCacheTTL, func(ctx context.Context) (*Pool, error) {
		var pool Pool
		if err := st.s.db.WithContext(ctx).First(&pool, id).Error; err != nil {
			return nil, utils.NotFoundOr(err, "Invalid idPool")
		}
		return &pool, nil
	})
}

func (st *PoolStore) ByIDs(ctx context.Context, ids []int) ([]*Pool, error) {
	var pools []*Pool
	if err := st.s.db.WithContext(ctx).Where("id IN ?", ids).Find(&pools).Error; err != nil {
		return nil, err
	}
	return pools, nil
}

func (st *PoolStore) ByCode(ctx context.Context, code string) (*Pool, error) {
	var pool Pool
	if err := st.s.db.WithContext(ctx).Where("code = ?", utils.UpperTrim(code)).First(&pool).Error; err != nil {
		return nil, utils.NotFoundOr(err, "Invalid code of pool")
	}
	return &pool, nil
}

func (st *PoolStore) ByShed(ctx context.Context, shedId int, filter bool, page utils.Page) (*PoolPagination, error) {
	dbCtx := st.s.db.WithContext(ctx).Model(&Pool{}).Where("shed_id = ? AND active = ?", shedId, filter)
	return st.page(dbCtx, page)
}

func (st *PoolStore) ByType(ctx context.Context, shedId int, poolType string, filter bool, page utils.Page) (*PoolPagination, error) {
	dbCtx := st.s.db.WithContext(ctx).Model(&Pool{}).
		Where("shed_id = ? AND type = ? AND active = ?", shedId, utils.UpperTrim(poolType), filter)
	return st.page(dbCtx, page)
}

func (st *PoolStore) ByPhase(ctx context.Context, shedId int, phase string, filter bool, page utils.Page) (*PoolPagination, error) {
	dbCtx := st.s.db.WithContext(ctx).Model(&Pool{}).
		Where("shed_id = ? AND phase = ? AND active = ?", shedId, utils.UpperTrim(phase), filter)
	return st.page(dbCtx, page)
}

func (st *PoolStore) List(ctx context.Context, filter bool, page utils.Page) (*PoolPagination, error) {
	dbCtx := st.s.db.WithContext(ctx).Model(&Pool{}).Where("active = ?", filter)
	return st.page(dbCtx, page)
}

func (st *PoolStore) page(dbCtx *gorm.DB, page utils.Page) (*PoolPagination, error) {
	pools, total, err := FetchPage[Pool](dbCtx, page, "created_at DESC", "id DESC")
	if err != nil {
		st.s.logError("ListPools", "fetch page", page, err)
		return nil, err
	}
	return &PoolPagination{PoolList: pools, TotalNumPools: int(total)}, nil
}

func (st *PoolStore) shedOf(ctx context.Context, poolId int) (int, error) {
	pool, err := st.ByID(ctx, poolId)
	if err != nil {
		return 0, err
	}
	return pool.ShedId, nil
}

// lockPool locks the pool's shed and then the pool.
func lockPool(tx *gorm.DB, id int) (*Shed, *Pool, error) {
	var pool Pool
	if err := tx.First(&pool, id).Error; err != nil {
		return nil, nil, utils.NotFoundOr(err, "Invalid idPool")
	}
	var shed Shed
	if err := forUpdate(tx).First(&shed, pool.ShedId).Error; err != nil {
		return nil, nil, err
	}
	if err := forUpdate(tx).First(&pool, id).Error; err != nil {
		return nil, nil, err
	}
	return &shed, &pool, nil
}

func invalidateCuysOfPools(tx *gorm.DB, poolIds []int, m *mutation) error {
	var cuyIds []int
	if err := tx.Model(&Cuy{}).Where("pool_id IN ?", poolIds).Pluck("id", &cuyIds).Error; err != nil {
		return err
	}
	for _, id := range cuyIds {
		m.invalidateKeys(cache.Key("Cuy", id))
	}
	return nil
}

// deletePoolsCascade removes pools with their animals and every record of them.
func deletePoolsCascade(tx *gorm.DB, poolIds []int, m *mutation) error {
	if len(poolIds) == 0 {
		return nil
	}
	var cuyIds []int
	if err := tx.Model(&Cuy{}).Where("pool_id IN ?", poolIds).Pluck("id", &cuyIds).Error; err != nil {
		return err
	}
	if err := deleteCuyRecords(tx, cuyIds); err != nil {
		return err
	}
	if err := tx.Where("origin_id IN ? OR destination_id IN ?", poolIds, poolIds).Delete(&Mobilization{}).Error; err != nil {
		return err
	}
	if err := tx.Where("pool_id IN ?", poolIds).Delete(&Cuy{}).Error; err != nil {
		return err
	}
	if err := tx.Where("id IN ?", poolIds).Delete(&Pool{}).Error; err != nil {
		return err
	}
	for _, id := range cuyIds {
		m.invalidateKeys(cache.Key("Cuy", id))
	}
	for _, id := range poolIds {
		m.invalidateKeys(cache.Key("Pool", id))
	}
	return nil
}
