package models

import (
	"context"
	"time"

	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CuyWeight struct {
	ID        int             `gorm:"primary_key" json:"id"`
	CuyId     int             `gorm:"index;not null" json:"cuy_id"`
	UserId    int             `gorm:"index;not null" json:"user_id"`
	Weight    decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"weight"`
	Photo     string          `gorm:"size:255" json:"photo"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_date"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_date"`
}

type CuyDeath struct {
	ID            int       `gorm:"primary_key" json:"id"`
	CuyId         int       `gorm:"uniqueIndex;not null" json:"cuy_id"`
	Date          time.Time `gorm:"index;not null" json:"date"`
	Reason        string    `gorm:"size:255;not null" json:"reason"`
	CertifiedById int       `gorm:"not null" json:"certified_by_id"`
	ReferenceDoc  *string   `gorm:"size:255" json:"reference_doc"`
	UserId        int       `gorm:"not null" json:"user_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_date"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_date"`
}

type CuySaca struct {
	ID            int       `gorm:"primary_key" json:"id"`
	CuyId         int       `gorm:"uniqueIndex;not null" json:"cuy_id"`
	Date          time.Time `gorm:"index;not null" json:"date"`
	Reason        string    `gorm:"size:255;not null" json:"reason"`
	CertifiedById int       `gorm:"not null" json:"certified_by_id"`
	ReferenceDoc  *string   `gorm:"size:255" json:"reference_doc"`
	UserId        int       `gorm:"not null" json:"user_id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_date"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_date"`
}

type WeightInput struct {
	Weight decimal.Decimal `json:"weight"`
	Photo  string          `json:"photo" validate:"required,max=255"`
}

type WeightUpdate struct {
	Weight *decimal.Decimal `json:"weight"`
	Photo  *string          `json:"photo" validate:"omitempty,max=255"`
}

// RecordInput registers a death or a saca.
type RecordInput struct {
	Date         time.Time `json:"date" validate:"required"`
	Reason       string    `json:"reason" validate:"required,max=255"`
	CertifiedBy  int       `json:"certified_by" validate:"required,gt=0"`
	ReferenceDoc *string   `json:"reference_doc"`
}

type RecordUpdate struct {
	Date         *time.Time `json:"date"`
	Reason       *string    `json:"reason" validate:"omitempty,min=1,max=255"`
	CertifiedBy  *int       `json:"certified_by" validate:"omitempty,gt=0"`
	ReferenceDoc *string    `json:"reference_doc"`
}

func (u *RecordUpdate) updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if u.Date != nil {
		updates["date"] = *u.Date
	}
	if u.Reason != nil {
		updates["reason"] = *u.Reason
	}
	if u.CertifiedBy != nil {
		updates["certified_by_id"] = *u.CertifiedBy
	}
	if u.ReferenceDoc != nil {
		updates["reference_doc"] = *u.ReferenceDoc
	}
	return updates
}

func validateWeight(w decimal.Decimal) error {
	if !w.IsPositive() {
		return utils.ErrInvalidInput("Invalid input: Weight must be greater than zero")
	}
	return nil
}

func (st *CuyStore) AddWeight(ctx context.Context, cuyId int, input *WeightInput) (bool, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return false, err
	}
	if err := validateWeight(input.Weight); err != nil {
		return false, err
	}
	userId, _ := utils.GetUserIdFromContext(ctx)
	err := st.s.mutate(ctx, "AddWeightToCuy", nil, func(tx *gorm.DB, m *mutation) error {
		cuy, err := lockCuyRow(tx, cuyId)
		if err != nil {
			return err
		}
		weight := CuyWeight{CuyId: cuyId, UserId: userId, Weight: input.Weight, Photo: input.Photo}
		if err := tx.Create(&weight).Error; err != nil {
			return err
		}
		m.invalidate(*cuy)
		return mirrorLatestWeight(tx, cuy)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (st *CuyStore) UpdateWeight(ctx context.Context, cuyId int, weightId int, input *WeightUpdate) (bool, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return false, err
	}
	if input.Weight != nil {
		if err := validateWeight(*input.Weight); err != nil {
			return false, err
		}
	}
	err := st.s.mutate(ctx, "UpdateWeightOfCuy", nil, func(tx *gorm.DB, m *mutation) error {
		cuy, err := lockCuyRow(tx, cuyId)
		if err != nil {
			return err
		}
		var weight CuyWeight
		if err := tx.Where("id = ? AND cuy_id = ?", weightId, cuyId).First(&weight).Error; err != nil {
			return utils.NotFoundOr(err, "Invalid idWeight")
		}
		updates := map[string]interface{}{}
		if input.Weight != nil {
			updates["weight"] = *input.Weight
		}
		if input.Photo != nil {
			updates["photo"] = *input.Photo
		}
		if len(updates) > 0 {
			if err := tx.Model(&weight).Updates(updates).Error; err != nil {
				return err
			}
		}
		m.invalidate(*cuy)
		return mirrorLatestWeight(tx, cuy)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (st *CuyStore) RemoveWeight(ctx context.Context, cuyId int, weightId int) (bool, error) {
	err := st.s.mutate(ctx, "RemoveWeightOfCuy", nil, func(tx *gorm.DB, m *mutation) error {
		cuy, err := lockCuyRow(tx, cuyId)
		if err != nil {
			return err
		}
		result := tx.Where("id = ? AND cuy_id = ?", weightId, cuyId).Delete(&CuyWeight{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.ErrNotFound("Invalid idWeight")
		}
		m.invalidate(*cuy)
		return mirrorLatestWeight(tx, cuy)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (st *CuyStore) WeightsOf(ctx context.Context, cuyIds []int) ([]*CuyWeight, error) {
	var weights []*CuyWeight
	err := st.s.db.WithContext(ctx).Where("cuy_id IN ?", cuyIds).Order("created_at").Order("id").Find(&weights).Error
	if err != nil {
		return nil, err
	}
	return weights, nil
}

func lockCuyRow(tx *gorm.DB, id int) (*Cuy, error) {
	var cuy Cuy
	if err := forUpdate(tx).First(&cuy, id).Error; err != nil {
		return nil, utils.NotFoundOr(err, "Invalid idCuy")
	}
	return &cuy, nil
}

// mirrorLatestWeight copies the newest weight and photo onto the animal.
func mirrorLatestWeight(tx *gorm.DB, cuy *Cuy) error {
	var latest CuyWeight
	err := tx.Where("cuy_id = ?", cuy.ID).Order("created_at DESC").Order("id DESC").Limit(1).Find(&latest).Error
	if err != nil {
		return err
	}
	updates := map[string]interface{}{"current_weight": nil, "current_photo": nil}
	if latest.ID != 0 {
		updates["current_weight"] = latest.Weight
		updates["current_photo"] = latest.Photo
	}
	return tx.Model(&Cuy{}).Where("id = ?", cuy.ID).Updates(updates).Error
}

func (st *CuyStore) checkCertifier(tx *gorm.DB, userId int) error {
	var count int64
	if err := tx.Model(&User{}).Where("id = ?", userId).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return utils.ErrNotFound("Invalid certified_by")
	}
	return nil
}

// RegisterDeath records the death and takes the animal out of every count.
func (st *CuyStore) RegisterDeath(ctx context.Context, cuyId int, input *RecordInput) (bool, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return false, err
	}
	shedId, err := st.shedOf(ctx, cuyId)
	if err != nil {
		return false, err
	}
	userId, _ := utils.GetUserIdFromContext(ctx)
	err = st.s.mutate(ctx, "RegisterDeathCuy", []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		if err := st.checkCertifier(tx, input.CertifiedBy); err != nil {
			return err
		}
		sc, err := st.change(tx, m, cuyId, func(sc *cuyScope) error {
			if sc.cuy.HasDeath {
				return utils.ErrForbidden("Death is already registered in cuy. Might you want to update death")
			}
			if sc.cuy.HasSaca {
				return utils.ErrForbidden("Cuy is in saca. Could not register death")
			}
			death := CuyDeath{
				CuyId:         cuyId,
				Date:          input.Date,
				Reason:        input.Reason,
				CertifiedById: input.CertifiedBy,
				ReferenceDoc:  input.ReferenceDoc,
				UserId:        userId,
			}
			if err := tx.Create(&death).Error; err != nil {
				return err
			}
			sc.cuy.HasDeath, sc.cuy.Active = true, false
			return tx.Model(sc.cuy).Updates(map[string]interface{}{"has_death": true, "active": false}).Error
		})
		if err != nil {
			return err
		}
		m.publish(config.DomainEvent{Type: "cuy.death_registered", EntityType: "cuy", EntityId: cuyId, ShedId: sc.shed.ID, PoolId: sc.pool.ID})
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (st *CuyStore) UpdateDeath(ctx context.Context, cuyId int, input *RecordUpdate) (bool, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return false, err
	}
	err := st.s.mutate(ctx, "UpdateDeathOfCuy", nil, func(tx *gorm.DB, m *mutation) error {
		if input.CertifiedBy != nil {
			if err := st.checkCertifier(tx, *input.CertifiedBy); err != nil {
				return err
			}
		}
		cuy, err := lockCuyRow(tx, cuyId)
		if err != nil {
			return err
		}
		if !cuy.HasDeath {
			return utils.ErrForbidden("Cuy is not dead")
		}
		if updates := input.updates(); len(updates) > 0 {
			if err := tx.Model(&CuyDeath{}).Where("cuy_id = ?", cuyId).Updates(updates).Error; err != nil {
				return err
			}
		}
		m.invalidate(*cuy)
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// RemoveDeath undoes a death; the animal stays inactive and is counted again
// only where its container keeps a snapshot.
func (st *CuyStore) RemoveDeath(ctx context.Context, cuyId int) (bool, error) {
	shedId, err := st.shedOf(ctx, cuyId)
	if err != nil {
		return false, err
	}
	err = st.s.mutate(ctx, "RemoveDeathCuy", []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		_, err := st.change(tx, m, cuyId, func(sc *cuyScope) error {
			if !sc.cuy.HasDeath {
				return utils.ErrForbidden("Cuy is not dead")
			}
			if err := tx.Where("cuy_id = ?", cuyId).Delete(&CuyDeath{}).Error; err != nil {
				return err
			}
			sc.cuy.HasDeath = false
			return tx.Model(sc.cuy).Update("has_death", false).Error
		})
		return err
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// RegisterSaca records the disposal and takes the animal out of every count.
func (st *CuyStore) RegisterSaca(ctx context.Context, cuyId int, input *RecordInput) (bool, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return false, err
	}
	shedId, err := st.shedOf(ctx, cuyId)
	if err != nil {
		return false, err
	}
	userId, _ := utils.GetUserIdFromContext(ctx)
	err = st.s.mutate(ctx, "RegisterSacaCuy", []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		if err := st.checkCertifier(tx, input.CertifiedBy); err != nil {
			return err
		}
		sc, err := st.change(tx, m, cuyId, func(sc *cuyScope) error {
			if sc.cuy.HasSaca {
				return utils.ErrForbidden("Saca is already registered in cuy. Might you want to update saca")
			}
			if sc.cuy.HasDeath {
				return utils.ErrForbidden("Cuy is death. Could not register saca")
			}
			saca := CuySaca{
				CuyId:         cuyId,
				Date:          input.Date,
				Reason:        input.Reason,
				CertifiedById: input.CertifiedBy,
				ReferenceDoc:  input.ReferenceDoc,
				UserId:        userId,
			}
			if err := tx.Create(&saca).Error; err != nil {
				return err
			}
			sc.cuy.HasSaca, sc.cuy.Active = true, false
			return tx.Model(sc.cuy).Updates(map[string]interface{}{"has_saca": true, "active": false}).Error
		})
		if err != nil {
			return err
		}
		m.publish(config.DomainEvent{Type: "cuy.saca_registered", EntityType: "cuy", EntityId: cuyId, ShedId: sc.shed.ID, PoolId: sc.pool.ID})
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (st *CuyStore) UpdateSaca(ctx context.Context, cuyId int, input *RecordUpdate) (bool, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return false, err
	}
	err := st.s.mutate(ctx, "UpdateSacaCuy", nil, func(tx *gorm.DB, m *mutation) error {
		if input.CertifiedBy != nil {
			if err := st.checkCertifier(tx, *input.CertifiedBy); err != nil {
				return err
			}
		}
		cuy, err := lockCuyRow(tx, cuyId)
		if err != nil {
			return err
		}
		if !cuy.HasSaca {
			return utils.ErrForbidden("Saca was not registered in cuy")
		}
		if updates := input.updates(); len(updates) > 0 {
			if err := tx.Model(&CuySaca{}).Where("cuy_id = ?", cuyId).Updates(updates).Error; err != nil {
				return err
			}
		}
		m.invalidate(*cuy)
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (st *CuyStore) RemoveSaca(ctx context.Context, cuyId int) (bool, error) {
	shedId, err := st.shedOf(ctx, cuyId)
	if err != nil {
		return false, err
	}
	err = st.s.mutate(ctx, "RemoveSacaCuy", []int{shedId}, func(tx *gorm.DB, m *mutation) error {
		_, err := st.change(tx, m, cuyId, func(sc *cuyScope) error {
			if !sc.cuy.HasSaca {
				return utils.ErrForbidden("Saca was not registered in cuy")
			}
			if err := tx.Where("cuy_id = ?", cuyId).Delete(&CuySaca{}).Error; err != nil {
				return err
			}
			sc.cuy.HasSaca = false
			return tx.Model(sc.cuy).Update("has_saca", false).Error
		})
		return err
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (st *CuyStore) DeathsOf(ctx context.Context, cuyIds []int) ([]*CuyDeath, error) {
	var deaths []*CuyDeath
	if err := st.s.db.WithContext(ctx).Where("cuy_id IN ?", cuyIds).Find(&deaths).Error; err != nil {
		return nil, err
	}
	return deaths, nil
}

func (st *CuyStore) SacasOf(ctx context.Context, cuyIds []int) ([]*CuySaca, error) {
	var sacas []*CuySaca
	if err := st.s.db.WithContext(ctx).Where("cuy_id IN ?", cuyIds).Find(&sacas).Error; err != nil {
		return nil, err
	}
	return sacas, nil
}
