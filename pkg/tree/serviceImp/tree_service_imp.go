package serviceImp

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"arborlog/entities"
	"arborlog/pkg/query"
	"arborlog/pkg/tree/repository"
	"arborlog/pkg/tree/service"
)

var ErrNotLoaded = errors.New("store not loaded")

type treeSvc struct {
	repo    repository.SlotRepository
	records []entities.TreeRecord
	loaded  bool
}

func New(repo repository.SlotRepository) service.TreeService {
	return &treeSvc{repo: repo}
}

func (s *treeSvc) Load() error {
	recs, err := s.repo.LoadAll()
	if err != nil {
		return err
	}
	s.records = recs
	s.loaded = true
	return nil
}

func (s *treeSvc) List() []entities.TreeRecord {
	out := make([]entities.TreeRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *treeSvc) Search(q string) []entities.TreeRecord {
	return query.SortByTreeNumber(query.Filter(s.records, q))
}

func (s *treeSvc) Get(id string) (*entities.TreeRecord, bool) {
	for i := range s.records {
		if s.records[i].ID == id {
			r := s.records[i]
			return &r, true
		}
	}
	return nil, false
}

// Add validates, stamps a fresh id and creation instant (any caller-supplied
// values are overwritten), prepends the record and persists the collection.
func (s *treeSvc) Add(rec entities.TreeRecord) (entities.TreeRecord, error) {
	if !s.loaded {
		return entities.TreeRecord{}, ErrNotLoaded
	}
	if err := rec.Validate(); err != nil {
		return entities.TreeRecord{}, err
	}
	rec.ID = uuid.NewString()
	rec.Timestamp = time.Now().UnixMilli()

	next := make([]entities.TreeRecord, 0, len(s.records)+1)
	next = append(next, rec)
	next = append(next, s.records...)
	if err := s.repo.SaveAll(next); err != nil {
		return entities.TreeRecord{}, err
	}
	s.records = next
	return rec, nil
}

// Remove deletes by id; unknown ids are a no-op. The confirmation gate lives
// with the caller, not here.
func (s *treeSvc) Remove(id string) (bool, error) {
	if !s.loaded {
		return false, ErrNotLoaded
	}
	idx := -1
	for i := range s.records {
		if s.records[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}
	next := make([]entities.TreeRecord, 0, len(s.records)-1)
	next = append(next, s.records[:idx]...)
	next = append(next, s.records[idx+1:]...)
	if err := s.repo.SaveAll(next); err != nil {
		return false, err
	}
	s.records = next
	return true, nil
}

func (s *treeSvc) Count() int { return len(s.records) }
