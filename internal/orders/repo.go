package orders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	OrdersCollection  = "orders"
	CoursesCollection = "courses"
)

type Repo struct {
	Orders  *mongo.Collection
	Courses *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{
		Orders:  db.Collection(OrdersCollection),
		Courses: db.Collection(CoursesCollection),
	}
}

// Create persists the order as a single document write and returns the
// store-assigned identifier. The creation timestamp is set here, not by
// the caller.
func (r *Repo) Create(ctx context.Context, o Order) (string, error) {
	o.CreatedAt = time.Now().UTC()
	res, err := r.Orders.InsertOne(ctx, o)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// AdjustSpaces decrements spaces per item with one conditional update
// each, walking the batch in request order so duplicate titles compound.
// An unknown title is a warning, not an error. A malformed item aborts
// the batch; decrements applied before it stay applied and are returned
// to the caller alongside the error.
func (r *Repo) AdjustSpaces(ctx context.Context, items []SpaceAdjustment) ([]AdjustmentResult, error) {
	results := make([]AdjustmentResult, 0, len(items))
	for i, it := range items {
		if it.Title == "" || it.Quantity == 0 {
			return results, fmt.Errorf("%w: lesson %d must have a title and a quantity", ErrInvalidRequest, i)
		}
		res, err := r.Courses.UpdateOne(ctx,
			bson.M{"title": it.Title},
			bson.M{"$inc": bson.M{"spaces": -it.Quantity}},
		)
		if err != nil {
			return results, fmt.Errorf("decrement spaces for %q: %w", it.Title, err)
		}
		if res.MatchedCount == 0 {
			slog.WarnContext(ctx, "course title not found, skipping decrement", "title", it.Title)
			results = append(results, AdjustmentResult{Title: it.Title, Status: AdjustNotFound})
			continue
		}
		results = append(results, AdjustmentResult{Title: it.Title, Status: AdjustUpdated})
	}
	return results, nil
}
