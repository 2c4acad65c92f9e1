package response

// SearchResponse carries the match count and the matches of a name search.
type SearchResponse[T any] struct {
	Count      int    `json:"count"`
	Data       []T    `json:"data"`
	SearchTerm string `json:"search_term"`
}

func NewSearchResponse[T any](data []T, term string) *SearchResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &SearchResponse[T]{
		Count:      len(data),
		Data:       data,
		SearchTerm: term,
	}
}
