package courses

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "courses"

type Repo struct {
	Col *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{Col: db.Collection(Collection)}
}

// List returns every course in store order.
func (r *Repo) List(ctx context.Context) ([]Course, error) {
	cur, err := r.Col.Find(ctx, SearchQuery{}.filter())
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	out := []Course{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return out, nil
}

// Search runs a validated query. The store's sort is stable, so ties
// keep their natural order. A term matching nothing yields an empty
// slice, not an error.
func (r *Repo) Search(ctx context.Context, q SearchQuery) ([]Course, error) {
	opts := options.Find().SetSort(q.sort())
	cur, err := r.Col.Find(ctx, q.filter(), opts)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}
	out := []Course{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return out, nil
}
