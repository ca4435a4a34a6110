package models

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func forUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// applyDeltas moves population counters one animal at a time. Decrements only
// touch rows whose counter is still positive; a miss is logged as an anomaly.
func (s *Store) applyDeltas(tx *gorm.DB, deltas []CounterDelta) error {
	for _, d := range deltas {
		var (
			model  interface{}
			column string
			total  string
		)
		switch d.Level {
		case LevelPool:
			model, column, total = &Pool{}, d.Genre.poolColumn(), "total_population"
		default:
			model, column, total = &Shed{}, d.Genre.shedColumn(), "total_number_cuys"
		}

		q := tx.Model(model).Where("id = ?", d.Id)
		if d.Delta < 0 {
			q = q.Where(column+" > 0 AND "+total+" > 0")
		}
		result := q.Updates(map[string]interface{}{
			column: gorm.Expr(column+" + ?", d.Delta),
			total:  gorm.Expr(total+" + ?", d.Delta),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 && d.Delta < 0 {
			s.counterAnomaly(d)
		}
	}
	return nil
}

func (s *Store) counterAnomaly(d CounterDelta) {
	s.logger.WithFields(logrus.Fields{
		"module": "models",
		"level":  string(d.Level),
		"id":     d.Id,
		"genre":  d.Genre.String(),
	}).Warn("population counter already at zero, decrement skipped")
	s.metrics.CounterAnomalies.WithLabelValues(string(d.Level)).Inc()
}

type genreCount struct {
	Genre    Genre
	Quantity int
}

type population struct {
	Male     int
	Female   int
	Children int
}

func (p population) Total() int { return p.Male + p.Female + p.Children }

func sumPopulation(rows []genreCount) population {
	var p population
	for _, r := range rows {
		switch r.Genre {
		case GenreMale:
			p.Male += r.Quantity
		case GenreFemale:
			p.Female += r.Quantity
		case GenreChild:
			p.Children += r.Quantity
		}
	}
	return p
}

// recountPool rebuilds a pool's population from its animals: active pools
// count active live animals, inactive pools count every live animal.
func recountPool(tx *gorm.DB, pool *Pool) error {
	q := tx.Model(&Cuy{}).
		Select("genre, COUNT(*) AS quantity").
		Where("pool_id = ? AND has_death = ? AND has_saca = ?", pool.ID, false, false)
	if pool.Active {
		q = q.Where("active = ?", true)
	}
	var rows []genreCount
	if err := q.Group("genre").Scan(&rows).Error; err != nil {
		return err
	}
	p := sumPopulation(rows)
	pool.MalePopulation, pool.FemalePopulation, pool.ChildrenPopulation, pool.TotalPopulation = p.Male, p.Female, p.Children, p.Total()
	return tx.Model(&Pool{}).Where("id = ?", pool.ID).Updates(map[string]interface{}{
		"male_population":     p.Male,
		"female_population":   p.Female,
		"children_population": p.Children,
		"total_population":    p.Total(),
	}).Error
}

// recountShed rebuilds a shed's counters: active sheds count live animals
// active in active pools, inactive sheds count every live animal.
func recountShed(tx *gorm.DB, shed *Shed) error {
	q := tx.Model(&Cuy{}).
		Select("cuys.genre AS genre, COUNT(*) AS quantity").
		Joins("JOIN pools ON pools.id = cuys.pool_id").
		Where("pools.shed_id = ? AND cuys.has_death = ? AND cuys.has_saca = ?", shed.ID, false, false)
	if shed.Active {
		q = q.Where("pools.active = ? AND cuys.active = ?", true, true)
	}
	var rows []genreCount
	if err := q.Group("cuys.genre").Scan(&rows).Error; err != nil {
		return err
	}
	p := sumPopulation(rows)
	shed.MaleNumberCuys, shed.FemaleNumberCuys, shed.ChildrenNumberCuys, shed.TotalNumberCuys = p.Male, p.Female, p.Children, p.Total()
	return tx.Model(&Shed{}).Where("id = ?", shed.ID).Updates(map[string]interface{}{
		"male_number_cuys":     p.Male,
		"female_number_cuys":   p.Female,
		"children_number_cuys": p.Children,
		"total_number_cuys":    p.Total(),
	}).Error
}

// recountShedTree rebuilds every pool of the shed and then the shed itself.
func recountShedTree(tx *gorm.DB, shed *Shed, m *mutation) error {
	var pools []*Pool
	if err := forUpdate(tx).Where("shed_id = ?", shed.ID).Find(&pools).Error; err != nil {
		return err
	}
	for _, pool := range pools {
		if err := recountPool(tx, pool); err != nil {
			return err
		}
		m.invalidate(*pool)
	}
	if err := recountShed(tx, shed); err != nil {
		return err
	}
	m.invalidate(*shed)
	return nil
}
