package courses

// Course is a purchasable catalog item. Title doubles as the lookup key
// for inventory decrements. Spaces has no floor; it may go negative and
// the front-end is the one that stops overselling.
type Course struct {
	ID          int     `bson:"id" json:"id"`
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description" json:"description"`
	Location    string  `bson:"location" json:"location"`
	Subject     string  `bson:"subject" json:"subject"`
	Price       float64 `bson:"price,omitempty" json:"price,omitempty"`
	Spaces      int     `bson:"spaces" json:"spaces"`
}
