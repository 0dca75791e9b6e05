package consts

// mongo
const (
	DefaultURI        = "mongodb://localhost:50197"
	DefaultDatabase   = "sample_mflix"
	DefaultCollection = "movies"
	URIEnv            = "URI"
)

// search index
const (
	DefaultIndexName   = "title_index"
	AutocompleteType   = "autocomplete"
	EdgeGram           = "edgeGram"
	MinGrams           = 2
	MaxGrams           = 15
	TitleField         = "title"
	PlotField          = "plot"
	IndexAlreadyExists = 68
)

// search index status
const (
	IndexReady    = "READY"
	IndexPending  = "PENDING"
	IndexBuilding = "BUILDING"
	IndexFailed   = "FAILED"
)

// results
const (
	MaxResults = 20
)

// output formats
const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatJSON  = "json"
)

// messages
const (
	LocalAtlasSetup = "Please make sure to set up a local Atlas instance first:\nhttps://www.mongodb.com/docs/atlas/cli/stable/atlas-cli-deploy-local/#use-atlas-search-with-a-local-atlas-deployment"
	SearchUsage     = "Usage: moviesearch search <movie title>\nExample: moviesearch search The Matrix"
)
