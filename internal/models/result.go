package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Write results keep the field names the web client already reads.

type InsertResult struct {
	Acknowledged bool          `json:"acknowledged"`
	InsertedID   bson.ObjectID `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool           `json:"acknowledged"`
	MatchedCount  int64          `json:"matchedCount"`
	ModifiedCount int64          `json:"modifiedCount"`
	UpsertedCount int64          `json:"upsertedCount"`
	UpsertedID    *bson.ObjectID `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type CountResult struct {
	TotalItems int64 `json:"totalItems"`
}
