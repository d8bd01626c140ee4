package facetfish

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// SearchOptions selects shirts by color and size.
// An empty filter matches every value; a nil filter is rejected by Search.
type SearchOptions struct {
	Colors []Color
	Sizes  []Size
}

func NewSearchOptions() *SearchOptions {
	return &SearchOptions{
		Colors: []Color{},
		Sizes:  []Size{},
	}
}

func (o *SearchOptions) validate() error {
	if o == nil {
		return fmt.Errorf("%w: search options is nil", ErrInvalidArgument)
	}
	if o.Colors == nil {
		return fmt.Errorf("%w: colors is nil", ErrInvalidArgument)
	}
	if o.Sizes == nil {
		return fmt.Errorf("%w: sizes is nil", ErrInvalidArgument)
	}
	return nil
}

func (o *SearchOptions) colorIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(o.Colors))
	for i, c := range o.Colors {
		ids[i] = c.ID
	}
	return ids
}

func (o *SearchOptions) sizeIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(o.Sizes))
	for i, s := range o.Sizes {
		ids[i] = s.ID
	}
	return ids
}

// key identifies the options regardless of order and duplicates within a filter.
func (o *SearchOptions) key() string {
	return canonicalIDs(o.colorIDs()) + "|" + canonicalIDs(o.sizeIDs())
}

func canonicalIDs(ids []uuid.UUID) string {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id.String()] = struct{}{}
	}
	r := make([]string, 0, len(set))
	for s := range set {
		r = append(r, s)
	}
	sort.Strings(r)
	return strings.Join(r, ",")
}
