package models

import (
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Category is administered outside this service; unknown fields are kept in Extra
// and flattened back into the JSON document.
type Category struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string        `bson:"name" json:"name"`
	Image string        `bson:"image,omitempty" json:"image,omitempty"`
	Extra bson.M        `bson:",inline" json:"-"`
}

func (c Category) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(c.Extra)+3)
	for k, v := range c.Extra {
		doc[k] = v
	}
	doc["_id"] = c.ID
	doc["name"] = c.Name
	if c.Image != "" {
		doc["image"] = c.Image
	}
	return json.Marshal(doc)
}
