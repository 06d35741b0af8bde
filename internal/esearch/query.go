package esearch

import (
	"bytes"
	"encoding/json"
)

type SearchJobsParams struct {
	Query    string
	Location string
	Company  string
	Page     int32
	PageSize int32
}

// buildSearchQuery translates the free-text query plus optional filters into
// the structured query sent to elasticsearch.
//
// A non-empty query does fuzzy full-text matching on title and description;
// an empty query matches all documents. Location and company are exact-match
// filters. Inactive jobs are filtered out unconditionally.
func buildSearchQuery(params SearchJobsParams) (*bytes.Buffer, error) {
	var must interface{}
	if params.Query != "" {
		must = map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query": params.Query,
				"fields": []string{
					"title",
					"description",
				},
				"fuzziness": "AUTO",
			},
		}
	} else {
		must = map[string]interface{}{
			"match_all": map[string]interface{}{},
		}
	}

	filters := []interface{}{
		map[string]interface{}{
			"term": map[string]interface{}{
				"active": true,
			},
		},
	}
	if params.Location != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{
				"location": params.Location,
			},
		})
	}
	if params.Company != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{
				"company": params.Company,
			},
		})
	}

	search := map[string]interface{}{
		"from": (params.Page - 1) * params.PageSize,
		"size": params.PageSize,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must":   must,
				"filter": filters,
			},
		},
	}

	var searchBuffer bytes.Buffer
	err := json.NewEncoder(&searchBuffer).Encode(search)
	if err != nil {
		return nil, err
	}
	return &searchBuffer, nil
}
