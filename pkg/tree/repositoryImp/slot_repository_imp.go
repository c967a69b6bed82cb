package repositoryImp

import (
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"arborlog/entities"
	"arborlog/pkg/tree/repository"
)

// SlotKey is the single durable key the whole collection lives under.
const SlotKey = "arborlog_records"

type slotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SlotRepository { return &slotRepo{db: db} }

func (r *slotRepo) LoadAll() ([]entities.TreeRecord, error) {
	var slot entities.StorageSlot
	if err := r.db.First(&slot, "key = ?", SlotKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []entities.TreeRecord{}, nil
		}
		return nil, err
	}
	var records []entities.TreeRecord
	if err := json.Unmarshal([]byte(slot.Value), &records); err != nil {
		// corrupt slot reads as "no prior data"
		log.Printf("[store] slot %s unparsable, starting empty: %v", SlotKey, err)
		return []entities.TreeRecord{}, nil
	}
	if records == nil {
		records = []entities.TreeRecord{}
	}
	return records, nil
}

func (r *slotRepo) SaveAll(records []entities.TreeRecord) error {
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	slot := entities.StorageSlot{Key: SlotKey, Value: string(b)}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&slot).Error
}
