package model

import (
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/consts"
)

// SearchIndexDefinition is the body of an Atlas Search index
type SearchIndexDefinition struct {
	Mappings SearchIndexMappings `json:"mappings" bson:"mappings"`
}

// SearchIndexMappings - static field mappings
type SearchIndexMappings struct {
	Dynamic bool                         `json:"dynamic" bson:"dynamic"`
	Fields  map[string]AutocompleteField `json:"fields" bson:"fields"`
}

// AutocompleteField tokenization settings for a single autocomplete field
type AutocompleteField struct {
	Type           string `json:"type" bson:"type"`
	Tokenization   string `json:"tokenization" bson:"tokenization"`
	FoldDiacritics bool   `json:"foldDiacritics" bson:"foldDiacritics"`
	MinGrams       int    `json:"minGrams" bson:"minGrams"`
	MaxGrams       int    `json:"maxGrams" bson:"maxGrams"`
}

// SearchIndexStatus is one entry of $listSearchIndexes
type SearchIndexStatus struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Status    string `json:"status" bson:"status"`
	Queryable bool   `json:"queryable" bson:"queryable"`
}

// IndexResult outcome of an ensure-index call
type IndexResult struct {
	Name    string `json:"name"`
	Created bool   `json:"created"`
	Status  string `json:"status,omitempty"`
}

// NewTitleIndexDefinition returns the edge-gram autocomplete mapping over title and plot.
func NewTitleIndexDefinition() SearchIndexDefinition {
	field := AutocompleteField{
		Type:           consts.AutocompleteType,
		Tokenization:   consts.EdgeGram,
		FoldDiacritics: true,
		MinGrams:       consts.MinGrams,
		MaxGrams:       consts.MaxGrams,
	}
	return SearchIndexDefinition{
		Mappings: SearchIndexMappings{
			Dynamic: false,
			Fields: map[string]AutocompleteField{
				consts.TitleField: field,
				consts.PlotField:  field,
			},
		},
	}
}
