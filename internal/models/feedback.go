package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Feedback struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string        `bson:"name,omitempty" json:"name,omitempty"`
	Email     string        `bson:"email,omitempty" json:"email,omitempty"`
	Message   string        `bson:"message" json:"message"`
	Rating    int           `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt time.Time     `bson:"createAt" json:"createAt"`
}
