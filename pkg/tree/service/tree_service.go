package service

import "arborlog/entities"

// TreeService owns the in-memory collection and mirrors every mutation to
// durable storage. Load must run once before any mutation so a fresh process
// cannot clobber previously saved records with an empty collection.
type TreeService interface {
	Load() error
	List() []entities.TreeRecord
	Search(q string) []entities.TreeRecord
	Get(id string) (*entities.TreeRecord, bool)
	Add(rec entities.TreeRecord) (entities.TreeRecord, error)
	Remove(id string) (bool, error)
	Count() int
}
