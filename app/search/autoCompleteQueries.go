package search

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AutoCompletePipeline builds $search -> $limit -> $project for a single
// autocomplete path. Only the projected fields leave the server.
func AutoCompletePipeline(index, path, query string, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{
			{Key: "$search", Value: bson.D{
				{Key: "index", Value: index},
				{Key: "autocomplete", Value: bson.D{
					{Key: "query", Value: query},
					{Key: "path", Value: path},
				}},
			}},
		},
		bson.D{{Key: "$limit", Value: int64(limit)}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: path, Value: 1},
		}}},
	}
}
