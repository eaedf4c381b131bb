package repository

import (
	lru "github.com/hashicorp/golang-lru"
)

// ResultRepository keeps recently produced download records keyed by request
// id, so the HTTP surface can re-serve them. It is bounded; old records fall
// out silently.
type ResultRepository struct {
	cache *lru.Cache
}

func NewResultRepository(size int) (*ResultRepository, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &ResultRepository{
		cache: cache,
	}, nil
}

func (r *ResultRepository) Put(id, record string) {
	r.cache.Add(id, record)
}

func (r *ResultRepository) Get(id string) (string, bool) {
	v, ok := r.cache.Get(id)
	if !ok {
		return "", false
	}

	record, ok := v.(string)
	return record, ok
}
