package models

import (
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DefaultPage  int64 = 0
	DefaultLimit int64 = 10
)

// Toy is one listing. Fields the front end sends beyond the known ones are kept
// in Extra and flattened back into the JSON document.
type Toy struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string        `bson:"toyName" json:"toyName"`
	SellerName  string        `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	PostedBy    string        `bson:"postedBy" json:"postedBy"`
	Category    string        `bson:"category" json:"category"`
	Price       Number        `bson:"price" json:"price"`
	Rating      Number        `bson:"rating,omitempty" json:"rating,omitempty"`
	Quantity    Count         `bson:"quantity" json:"quantity"`
	Description string        `bson:"description" json:"description"`
	URL         string        `bson:"url" json:"url"`
	CreatedAt   time.Time     `bson:"createAt" json:"createAt"`
	Extra       bson.M        `bson:",inline" json:"-"`
}

// ToyFields lists the document keys Toy maps to struct fields.
var ToyFields = map[string]struct{}{
	"_id": {}, "toyName": {}, "sellerName": {}, "postedBy": {}, "category": {}, "price": {},
	"rating": {}, "quantity": {}, "description": {}, "url": {}, "createAt": {},
}

func (t Toy) MarshalJSON() ([]byte, error) {
	type plain Toy
	known, err := json.Marshal(plain(t))
	if err != nil || len(t.Extra) == 0 {
		return known, err
	}

	doc := make(map[string]interface{}, len(t.Extra)+len(ToyFields))
	for k, v := range t.Extra {
		doc[k] = v
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	return json.Marshal(doc)
}

// ToyUpdate holds the five fields overwritten by an edit.
type ToyUpdate struct {
	Name        string `bson:"toyName"`
	Description string `bson:"description"`
	Price       Number `bson:"price"`
	Quantity    Count  `bson:"quantity"`
	URL         string `bson:"url"`
}

// ToyPage selects one page of listings, newest first.
type ToyPage struct {
	Page     int64
	Limit    int64
	Category string
}

// NewToyPage parses raw query values. Missing, malformed, zero or negative
// values fall back to the defaults.
func NewToyPage(page, limit, category string) ToyPage {
	return ToyPage{
		Page:     parsePositive(page, DefaultPage),
		Limit:    parsePositive(limit, DefaultLimit),
		Category: category,
	}
}

// Skip saturates at math.MaxInt64 so a page far past the end stays empty.
func (p ToyPage) Skip() int64 {
	if p.Limit > 0 && p.Page > math.MaxInt64/p.Limit {
		return math.MaxInt64
	}
	return p.Page * p.Limit
}

func parsePositive(raw string, fallback int64) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
