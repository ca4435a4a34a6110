package models

import (
	"context"
	"errors"
	"time"

	"github.com/mmdatafocus/grange_backend/cache"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Cuy struct {
	ID            int              `gorm:"primary_key" json:"id"`
	PoolId        int              `gorm:"index;not null" json:"pool_id"`
	Earring       string           `gorm:"size:50;not null;uniqueIndex" json:"earring"`
	Race          string           `gorm:"size:50;not null;index" json:"race"`
	Genre         Genre            `gorm:"size:10;not null;index" json:"genre"`
	CurrentPhoto  *string          `gorm:"size:255" json:"current_photo"`
	Color         string           `gorm:"size:50" json:"color"`
	Description   *string          `gorm:"type:text" json:"description"`
	Observation   *string          `gorm:"type:text" json:"observation"`
	BirthdayDate  time.Time        `json:"birthday_date"`
	Active        bool             `gorm:"not null;index" json:"active"`
	CurrentWeight *decimal.Decimal `gorm:"type:decimal(10,3)" json:"current_weight"`
	HasDeath      bool             `gorm:"not null;default:false;index" json:"has_death"`
	HasSaca       bool             `gorm:"not null;default:false;index" json:"has_saca"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_date"`
	UpdatedAt     time.Time        `gorm:"autoUpdateTime" json:"updated_date"`
}

// IsLive reports an animal with neither a death nor a saca record.
func (c Cuy) IsLive() bool { return !c.HasDeath && !c.HasSaca }

type CuyInput struct {
	Pool         int       `json:"pool" validate:"required,gt=0"`
	Earring      string    `json:"earring" validate:"required,max=50"`
	Race         string    `json:"race" validate:"required,max=50"`
	Genre        Genre     `json:"genre" validate:"required,oneof=MACHO HEMBRA CRIA"`
	Color        string    `json:"color" validate:"required,max=50"`
	Description  *string   `json:"description"`
	Observation  *string   `json:"observation"`
	BirthdayDate time.Time `json:"birthday_date" validate:"required"`
}

type CuyUpdate struct {
	Earring      *string    `json:"earring" validate:"omitempty,min=1,max=50"`
	Race         *string    `json:"race" validate:"omitempty,min=1,max=50"`
	Genre        *Genre     `json:"genre" validate:"omitempty,oneof=MACHO HEMBRA CRIA"`
	Color        *string    `json:"color" validate:"omitempty,max=50"`
	Description  *string    `json:"description"`
	Observation  *string    `json:"observation"`
	BirthdayDate *time.Time `json:"birthday_date"`
}

type CuyStore struct{ s *Store }

// cuyScope is an animal locked together with its pool and shed.
type cuyScope struct {
	shed *Shed
	pool *Pool
	cuy  *Cuy
}

func (sc *cuyScope) flags() Flags {
	return Flags{
		ShedActive: sc.shed.Active,
		PoolActive: sc.pool.Active,
		CuyActive:  sc.cuy.Active,
		Live:       sc.cuy.IsLive(),
	}
}

func (sc *cuyScope) placement() Placement {
	return PlacementOf(sc.shed.ID, sc.pool.ID, sc.cuy.Genre, sc.flags())
}

// lockCuy takes row locks in shed, pool, animal order.
func lockCuy(tx *gorm.DB, id int) (*cuyScope, error) {
	var cuy Cuy
	if err := tx.First(&cuy, id).Error; err != nil {
		return nil, utils.NotFoundOr(err, "Invalid idCuy")
	}
	shed, pool, err := lockPool(tx, cuy.PoolId)
	if err != nil {
		return nil, err
	}
	if err := forUpdate(tx).First(&cuy, id).Error; err != nil {
		return nil, err
	}
	if cuy.PoolId != pool.ID {
		return nil, utils.ErrInternal(errors.New("cuy was moved by a concurrent request, retry"))
	}
	return &cuyScope{shed: shed, pool: pool, cuy: &cuy}, nil
}

// change runs fn on a locked animal and moves the counters from its old
// placement to the new one.
func (st *CuyStore) change(tx *gorm.DB, m *mutation, id int, fn func(sc *cuyScope) error) (*cuyScope, error) {
	sc, err := lockCuy(tx, id)
	if err != nil {
		return nil, err
	}
	before := sc.placement()
	m.invalidate(*sc.cuy, *sc.pool, *sc.shed)

	if err := fn(sc); err != nil {
		return nil, err
	}

	after := sc.placement()
	if err := st.s.applyDeltas(tx, Diff(before, after)); err != nil {
		return nil, err
	}
	m.invalidate(*sc.pool, *sc.shed)
	return sc, nil
}

func (st *CuyStore) shedOf(ctx context.Context, cuyId int) (int, error) {
	cuy, err := st.ByID(ctx, cuyId)
	if err != nil {
		return 0, err
	}
	return st.s.Pools.shedOf(ctx, cuy.PoolId)
}

func (st *CuyStore) Add(ctx context.Context, input *CuyInput) (*Cuy, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	shedId, err := st.s.Pools.shedOf(ctx, input.Pool)
	if err != nil {
		return nil, utils.NotFoundOr(err, "Error. Invalid id of Pool")
	}
	cuy := Cuy{
		PoolId:       input.Pool,
		Earring:      utils.UpperTrim(input.Earring),
		Race:         utils.UpperTrim(input.Race),
		Genre:        input.Genre,
		Color:        input.Color,
		Description:  input.Description,
		Observation:  input.Observation,
		BirthdayDate: input.BirthdayDate,
		Active:       true,
	}
	err = st.s.mutate(ctx, "AddCuy", []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		shed, pool, err := lockPool(tx, input.Pool)
		if err != nil {
			return err
		}
		if !pool.Active {
			return utils.ErrForbidden("Pools is inactive. Can not add cuy to inactive pool")
		}
		if err := tx.Create(&cuy).Error; err != nil {
			if utils.IsDuplicateKey(err) {
				return utils.ErrInvalidInput("Cuy earring already exists")
			}
			return err
		}
		sc := cuyScope{shed: shed, pool: pool, cuy: &cuy}
		if err := st.s.applyDeltas(tx, Diff(Placement{}, sc.placement())); err != nil {
			return err
		}
		m.invalidate(*pool, *shed)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cuy, nil
}

func (st *CuyStore) Update(ctx context.Context, id int, input *CuyUpdate) (*Cuy, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}
	shedId, err := st.shedOf(ctx, id)
	if err != nil {
		return nil, err
	}
	var cuy Cuy
	err = st.s.mutate(ctx, "UpdateCuy", []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		sc, err := st.change(tx, m, id, func(sc *cuyScope) error {
			updates := map[string]interface{}{}
			if input.Earring != nil {
				updates["earring"] = utils.UpperTrim(*input.Earring)
			}
			if input.Race != nil {
				updates["race"] = utils.UpperTrim(*input.Race)
			}
			if input.Genre != nil {
				updates["genre"] = *input.Genre
			}
			if input.Color != nil {
				updates["color"] = *input.Color
			}
			if input.Description != nil {
				updates["description"] = *input.Description
			}
			if input.Observation != nil {
				updates["observation"] = *input.Observation
			}
			if input.BirthdayDate != nil {
				updates["birthday_date"] = *input.BirthdayDate
			}
			if len(updates) == 0 {
				return nil
			}
			if err := tx.Model(sc.cuy).Updates(updates).Error; err != nil {
				if utils.IsDuplicateKey(err) {
					return utils.ErrInvalidInput("Cuy earring already exists")
				}
				return err
			}
			return tx.First(sc.cuy, id).Error
		})
		if err != nil {
			return err
		}
		cuy = *sc.cuy
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cuy, nil
}

func (st *CuyStore) Activate(ctx context.Context, id int) (bool, error) {
	return st.setActive(ctx, "ActivateCuy", id, true)
}

func (st *CuyStore) Deactivate(ctx context.Context, id int) (bool, error) {
	return st.setActive(ctx, "DeactivateCuy", id, false)
}

func (st *CuyStore) setActive(ctx context.Context, funcName string, id int, active bool) (bool, error) {
	shedId, err := st.shedOf(ctx, id)
	if err != nil {
		return false, err
	}
	err = st.s.mutate(ctx, funcName, []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		_, err := st.change(tx, m, id, func(sc *cuyScope) error {
			if sc.cuy.Active == active {
				if active {
					return utils.ErrForbidden("Cuy is already active")
				}
				return utils.ErrForbidden("Cuy is already inactive")
			}
			if active {
				if !sc.pool.Active {
					return utils.ErrForbidden("Pool of cuy is inactive")
				}
				if !sc.cuy.IsLive() {
					return utils.ErrForbidden("Cuy is death or not in pool (Saca)")
				}
			}
			sc.cuy.Active = active
			return tx.Model(sc.cuy).Update("active", active).Error
		})
		return err
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes an inactive animal with its weights, death, saca and mobilizations.
func (st *CuyStore) Delete(ctx context.Context, id int) (bool, error) {
	shedId, err := st.shedOf(ctx, id)
	if err != nil {
		return false, err
	}
	err = st.s.mutate(ctx, "DeleteCuy", []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		sc, err := lockCuy(tx, id)
		if err != nil {
			return err
		}
		if sc.cuy.Active {
			return utils.ErrForbidden("Forbidden cuy is active")
		}
		if err := st.s.applyDeltas(tx, Diff(sc.placement(), Placement{})); err != nil {
			return err
		}
		if err := deleteCuyRecords(tx, []int{id}); err != nil {
			return err
		}
		if err := tx.Delete(&Cuy{}, id).Error; err != nil {
			return err
		}
		m.invalidate(*sc.cuy, *sc.pool, *sc.shed)
		m.publish(config.DomainEvent{Type: "cuy.deleted", EntityType: "cuy", EntityId: id, ShedId: sc.shed.ID, PoolId: sc.pool.ID})
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func deleteCuyRecords(tx *gorm.DB, cuyIds []int) error {
	if len(cuyIds) == 0 {
		return nil
	}
	for _, model := range []interface{}{&CuyWeight{}, &CuyDeath{}, &CuySaca{}} {
		if err := tx.Where("cuy_id IN ?", cuyIds).Delete(model).Error; err != nil {
			return err
		}
	}
	return tx.Where("cuy_id IN ?", cuyIds).Delete(&Mobilization{}).Error
}

func (st *CuyStore) ByID(ctx context.Context, id int) (*Cuy, error) {
	return cache.GetOrFetch(ctx, st.s.cache, cache.Key("Cuy", id), entityCacheTTL, func(ctx context.Context) (*Cuy, error) {
		var cuy Cuy
		if err := st.s.db.WithContext(ctx).First(&cuy, id).Error; err != nil {
			return nil, utils.NotFoundOr(err, "Invalid idCuy")
		}
		return &cuy, nil
	})
}

func (st *CuyStore) ByIDs(ctx context.Context, ids []int) ([]*Cuy, error) {
	var cuys []*Cuy
	if err := st.s.db.WithContext(ctx).Where("id IN ?", ids).Find(&cuys).Error; err != nil {
		return nil, err
	}
	return cuys, nil
}

func (st *CuyStore) ByEarring(ctx context.Context, earring string) (*Cuy, error) {
	var cuy Cuy
	if err := st.s.db.WithContext(ctx).Where("earring = ?", utils.UpperTrim(earring)).First(&cuy).Error; err != nil {
		return nil, utils.NotFoundOr(err, "Invalid earring of cuy")
	}
	return &cuy, nil
}

func (st *CuyStore) ByRace(ctx context.Context, race string, filter bool, page utils.Page) (*CuyPagination, error) {
	dbCtx := st.s.db.WithContext(ctx).Model(&Cuy{}).Where("race = ? AND active = ?", utils.UpperTrim(race), filter)
	return st.page(dbCtx, page)
}

func (st *CuyStore) ByGenre(ctx context.Context, genre Genre, filter bool, page utils.Page) (*CuyPagination, error) {
	dbCtx := st.s.db.WithContext(ctx).Model(&Cuy{}).Where("genre = ? AND active = ?", genre, filter)
	return st.page(dbCtx, page)
}

func (st *CuyStore) ByPool(ctx context.Context, poolId int, filter bool, page utils.Page) (*CuyPagination, error) {
	dbCtx := st.s.db.WithContext(ctx).Model(&Cuy{}).Where("pool_id = ? AND active = ?", poolId, filter)
	return st.page(dbCtx, page)
}

func (st *CuyStore) List(ctx context.Context, filter bool, page utils.Page) (*CuyPagination, error) {
	dbCtx := st.s.db.WithContext(ctx).Model(&Cuy{}).Where("active = ?", filter)
	return st.page(dbCtx, page)
}

func (st *CuyStore) page(dbCtx *gorm.DB, page utils.Page) (*CuyPagination, error) {
	cuys, total, err := FetchPage[Cuy](dbCtx, page, "created_at DESC", "id DESC")
	if err != nil {
		st.s.logError("ListCuys", "fetch page", page, err)
		return nil, err
	}
	return &CuyPagination{CuyList: cuys, TotalNumCuys: int(total)}, nil
}
