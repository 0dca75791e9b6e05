package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAutoCompletePipeline(t *testing.T) {
	pipeline := AutoCompletePipeline("title_index", "title", "mat", 20)
	require.Len(t, pipeline, 3)

	search := pipeline[0].Map()["$search"].(bson.D).Map()
	assert.Equal(t, "title_index", search["index"])
	autocomplete := search["autocomplete"].(bson.D).Map()
	assert.Equal(t, "mat", autocomplete["query"])
	assert.Equal(t, "title", autocomplete["path"])

	assert.Equal(t, int64(20), pipeline[1].Map()["$limit"])

	project := pipeline[2].Map()["$project"].(bson.D)
	assert.Equal(t, bson.D{{Key: "_id", Value: 0}, {Key: "title", Value: 1}}, project)
}

func TestAutoCompletePipeline_StageOrder(t *testing.T) {
	pipeline := AutoCompletePipeline("idx", "title", "star wars", 5)

	var stages []string
	for _, stage := range pipeline {
		stages = append(stages, stage[0].Key)
	}
	assert.Equal(t, []string{"$search", "$limit", "$project"}, stages)
}

func TestAutoCompletePipeline_Marshals(t *testing.T) {
	pipeline := AutoCompletePipeline("title_index", "title", "amélie", 20)
	for _, stage := range pipeline {
		_, err := bson.Marshal(stage)
		require.NoError(t, err)
	}
}
