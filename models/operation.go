package models

import (
	"context"
	"strconv"

	"github.com/mmdatafocus/grange_backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Operation is a permission atom named after a Query or Mutation field.
type Operation struct {
	ID          int    `gorm:"primary_key" json:"id"`
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Type        int    `gorm:"not null;default:0" json:"type"`
}

type OperationDefinition struct {
	Name        string
	Type        int
	Description string
}

func OperationKey(name string) string {
	return "Operation:" + name
}

type OperationStore struct{ s *Store }

func (st *OperationStore) ByID(ctx context.Context, id int) (*Operation, error) {
	var op Operation
	if err := st.s.db.WithContext(ctx).First(&op, id).Error; err != nil {
		return nil, utils.NotFoundOr(err, "Invalid idOperation")
	}
	return &op, nil
}

func (st *OperationStore) ByIDs(ctx context.Context, ids []int) ([]*Operation, error) {
	var ops []*Operation
	if err := st.s.db.WithContext(ctx).Where("id IN ?", ids).Find(&ops).Error; err != nil {
		return nil, err
	}
	return ops, nil
}

func (st *OperationStore) List(ctx context.Context) ([]*Operation, error) {
	var ops []*Operation
	if err := st.s.db.WithContext(ctx).Order("id").Find(&ops).Error; err != nil {
		st.s.logError("Operations", "find", nil, err)
		return nil, err
	}
	return ops, nil
}

// IdByName resolves an operation name through the cache, falling back to the
// table and caching the id without expiry.
func (st *OperationStore) IdByName(ctx context.Context, name string) (int, error) {
	if val, ok, err := st.s.cache.GetValue(ctx, OperationKey(name)); err != nil {
		st.s.logError("OperationIdByName", "get cache", name, err)
		return 0, err
	} else if ok {
		if id, err := strconv.Atoi(val); err == nil {
			return id, nil
		}
	}
	var op Operation
	if err := st.s.db.WithContext(ctx).Where("name = ?", name).First(&op).Error; err != nil {
		return 0, utils.NotFoundOr(err, "Operation "+name+" is not registered")
	}
	if err := st.s.cache.SetValue(ctx, OperationKey(name), strconv.Itoa(op.ID), 0); err != nil {
		st.s.logError("OperationIdByName", "set cache", name, err)
		return 0, err
	}
	return op.ID, nil
}

// Sync inserts missing operations from the registry and warms the name
// cache. A registered operation keeps its id and type; only its description
// is refreshed.
func (st *OperationStore) Sync(ctx context.Context, registry []OperationDefinition) (int, error) {
	ops := make([]*Operation, 0, len(registry))
	for _, def := range registry {
		ops = append(ops, &Operation{Name: def.Name, Description: def.Description, Type: def.Type})
	}
	err := st.s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description"}),
		}).CreateInBatches(ops, 100).Error
	})
	if err != nil {
		st.s.logError("SyncOperations", "upsert", len(ops), err)
		return 0, err
	}

	all, err := st.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, op := range all {
		if err := st.s.cache.SetValue(ctx, OperationKey(op.Name), strconv.Itoa(op.ID), 0); err != nil {
			st.s.logError("SyncOperations", "set cache", op.Name, err)
			return 0, err
		}
	}
	return len(all), nil
}

func (st *OperationStore) AllIds(ctx context.Context) ([]int, error) {
	var ids []int
	err := st.s.db.WithContext(ctx).Model(&Operation{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}
