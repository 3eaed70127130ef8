package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/recordserver/repository"
)

type recordRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecordRepository { return &recordRepo{db} }

func (r *recordRepo) List(ctx context.Context, table string) ([]entities.StoredRecord, error) {
	var out []entities.StoredRecord
	err := r.db.WithContext(ctx).Where("tbl = ?", table).Order("record_id ASC").Find(&out).Error
	return out, err
}

func (r *recordRepo) FindByID(ctx context.Context, table string, id int) (*entities.StoredRecord, error) {
	return find(r.db.WithContext(ctx), table, id)
}

func find(db *gorm.DB, table string, id int) (*entities.StoredRecord, error) {
	var rec entities.StoredRecord
	if err := db.Where("tbl = ? AND record_id = ?", table, id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %d: %w", table, id, repository.ErrNotFound)
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recordRepo) Create(ctx context.Context, table string, fields map[string]any) (*entities.StoredRecord, error) {
	rec := entities.StoredRecord{Table: table, Fields: fields}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := sequence(tx, table)
		if err != nil {
			return err
		}
		var top int
		if err := tx.Model(&entities.StoredRecord{}).
			Where("tbl = ?", table).
			Select("COALESCE(MAX(record_id), 0)").
			Scan(&top).Error; err != nil {
			return fmt.Errorf("next id: %w", err)
		}
		next := max(seq.Last, top) + 1
		if err := advance(tx, seq, next); err != nil {
			return err
		}
		rec.RecordID = next
		return tx.Create(&rec).Error
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// sequence loads the id high-water mark of table, zero when none was issued.
func sequence(tx *gorm.DB, table string) (entities.RecordSequence, error) {
	seq := entities.RecordSequence{Table: table}
	if err := tx.Where(entities.RecordSequence{Table: table}).FirstOrInit(&seq).Error; err != nil {
		return seq, fmt.Errorf("sequence %s: %w", table, err)
	}
	return seq, nil
}

func advance(tx *gorm.DB, seq entities.RecordSequence, last int) error {
	seq.Last = last
	if err := tx.Save(&seq).Error; err != nil {
		return fmt.Errorf("sequence %s: %w", seq.Table, err)
	}
	return nil
}

func (r *recordRepo) Update(ctx context.Context, table string, id int, fields map[string]any) (*entities.StoredRecord, error) {
	var out *entities.StoredRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := find(tx, table, id)
		if err != nil {
			return err
		}
		rec.Fields = fields
		if err := tx.Save(rec).Error; err != nil {
			return err
		}
		out = rec
		return nil
	})
	return out, err
}

func (r *recordRepo) Delete(ctx context.Context, table string, id int) error {
	res := r.db.WithContext(ctx).Where("tbl = ? AND record_id = ?", table, id).Delete(&entities.StoredRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", table, id, repository.ErrNotFound)
	}
	return nil
}

func (r *recordRepo) Seed(ctx context.Context, table string, records []entities.StoredRecord) (int, error) {
	written := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entities.StoredRecord{}).Where("tbl = ?", table).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		top := 0
		for _, rec := range records {
			rec.ID = 0
			rec.Table = table
			if err := tx.Create(&rec).Error; err != nil {
				return fmt.Errorf("seed %s %d: %w", table, rec.RecordID, err)
			}
			written++
			top = max(top, rec.RecordID)
		}
		seq, err := sequence(tx, table)
		if err != nil {
			return err
		}
		return advance(tx, seq, max(seq.Last, top))
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}

func (r *recordRepo) Count(ctx context.Context, table string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.StoredRecord{}).Where("tbl = ?", table).Count(&n).Error
	return n, err
}
