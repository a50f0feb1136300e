package courses

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

var ErrBadSort = errors.New("unsupported sort parameter")

// Only fields we actually store may be used as a sort key. Anything
// else is rejected before it reaches the store, so callers cannot probe
// arbitrary document paths.
var sortKeys = map[string]bool{
	"id":          true,
	"title":       true,
	"description": true,
	"location":    true,
	"subject":     true,
	"price":       true,
	"spaces":      true,
}

// SearchQuery is a validated search request. Zero values are filled
// with the defaults (match all, sort by title ascending).
type SearchQuery struct {
	Term    string
	SortKey string
	Desc    bool
}

func NewSearchQuery(term, sortKey, sortOrder string) (SearchQuery, error) {
	if sortKey == "" {
		sortKey = "title"
	}
	if sortOrder == "" {
		sortOrder = "asc"
	}
	if !sortKeys[sortKey] {
		return SearchQuery{}, fmt.Errorf("%w: sortKey %q", ErrBadSort, sortKey)
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		return SearchQuery{}, fmt.Errorf("%w: sortOrder %q", ErrBadSort, sortOrder)
	}
	return SearchQuery{Term: term, SortKey: sortKey, Desc: sortOrder == "desc"}, nil
}

// filter matches the term as a case-insensitive substring of any of the
// four text fields. An empty term matches every document.
func (q SearchQuery) filter() bson.M {
	if q.Term == "" {
		return bson.M{}
	}
	re := bson.M{"$regex": q.Term, "$options": "i"}
	return bson.M{"$or": bson.A{
		bson.M{"title": re},
		bson.M{"description": re},
		bson.M{"location": re},
		bson.M{"subject": re},
	}}
}

func (q SearchQuery) sort() bson.D {
	dir := 1
	if q.Desc {
		dir = -1
	}
	return bson.D{{Key: q.SortKey, Value: dir}}
}
