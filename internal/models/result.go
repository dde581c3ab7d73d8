package models

// MatchedField names a record attribute that contained at least one query term.
type MatchedField string

const (
	// FieldTitle is the record title.
	FieldTitle MatchedField = "title"
	// FieldDescription is the record description.
	FieldDescription MatchedField = "description"
	// FieldBody is the record body.
	FieldBody MatchedField = "body"
	// FieldTags is the record tag set.
	FieldTags MatchedField = "tags"
	// FieldCategory is the record category.
	FieldCategory MatchedField = "category"
)

// SearchResult represents a single search hit with its score and highlights.
type SearchResult struct {
	Record        *Record                 `json:"record"`
	Score         float64                 `json:"score"`
	MatchedFields []MatchedField          `json:"matched_fields,omitempty"`
	Highlights    map[MatchedField]string `json:"highlights,omitempty"`
	Rank          int                     `json:"rank"`
}

// FacetCount is one aggregate bucket of a facet.
type FacetCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Facets holds aggregate counts over the full candidate set of a query.
type Facets struct {
	Categories []FacetCount `json:"categories"`
	Tags       []FacetCount `json:"tags"`
	Kinds      []FacetCount `json:"kinds"`
}

// SearchResponse is the response for a search request.
// Total counts all scoring candidates before pagination; Facets are computed
// over the full filtered candidate set, not just the returned page.
type SearchResponse struct {
	Results     []*SearchResult `json:"results"`
	Total       int             `json:"total"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Facets      *Facets         `json:"facets"`
	Query       string          `json:"query"`
	QueryTime   int64           `json:"query_time_ms"`
}
