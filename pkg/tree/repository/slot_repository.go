package repository

import "arborlog/entities"

// SlotRepository persists the entire record collection under one named key.
// LoadAll fails soft: no saved state or an unreadable slot is a normal
// condition and yields an empty collection.
type SlotRepository interface {
	LoadAll() ([]entities.TreeRecord, error)
	SaveAll(records []entities.TreeRecord) error
}
