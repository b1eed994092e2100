package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"toyland-backend/internal/metrics"
)

var newestFirst = bson.D{{Key: "createAt", Value: -1}}

// observe times one driver call. Use as: defer observe(coll, "find", &err)()
func observe(collection, operation string, err *error) func() {
	start := time.Now()
	return func() {
		metrics.RecordDBOperation(collection, operation, time.Since(start), *err)
	}
}
