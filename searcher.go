package facetfish

import (
	"time"

	"github.com/patrickmn/go-cache"
)

//go:generate mockgen -source=searcher.go -destination=mock_searcher.go -package=facetfish

type Searcher interface {
	Search(*SearchOptions) (SearchResults, error)
}

// CachedSearcher memoizes the results of a Searcher whose catalog never changes.
// Options that differ only in order or duplicates share an entry.
type CachedSearcher struct {
	searcher Searcher
	cache    *cache.Cache
}

func NewCachedSearcher(searcher Searcher, defaultExpiration, cleanupInterval time.Duration) *CachedSearcher {
	return &CachedSearcher{
		searcher: searcher,
		cache:    cache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *CachedSearcher) Search(options *SearchOptions) (SearchResults, error) {
	if err := options.validate(); err != nil {
		return SearchResults{}, err
	}

	key := options.key()
	if v, ok := s.cache.Get(key); ok {
		if results, ok := v.(SearchResults); ok {
			return results.clone(), nil
		}
	}

	results, err := s.searcher.Search(options)
	if err != nil {
		return SearchResults{}, err
	}
	s.cache.SetDefault(key, results.clone())
	return results, nil
}

func (s *CachedSearcher) Len() int {
	return s.cache.ItemCount()
}
