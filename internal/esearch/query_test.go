package esearch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeQuery(t *testing.T, params SearchJobsParams) map[string]interface{} {
	buffer, err := buildSearchQuery(params)
	require.NoError(t, err)

	var decoded map[string]interface{}
	err = json.NewDecoder(buffer).Decode(&decoded)
	require.NoError(t, err)
	return decoded
}

func boolQuery(t *testing.T, decoded map[string]interface{}) map[string]interface{} {
	query, ok := decoded["query"].(map[string]interface{})
	require.True(t, ok)
	b, ok := query["bool"].(map[string]interface{})
	require.True(t, ok)
	return b
}

func TestBuildSearchQueryFullText(t *testing.T) {
	decoded := decodeQuery(t, SearchJobsParams{
		Query:    "golang developer",
		Page:     2,
		PageSize: 10,
	})

	require.EqualValues(t, 10, decoded["from"])
	require.EqualValues(t, 10, decoded["size"])

	b := boolQuery(t, decoded)
	must, ok := b["must"].(map[string]interface{})
	require.True(t, ok)
	multiMatch, ok := must["multi_match"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "golang developer", multiMatch["query"])
	require.Equal(t, "AUTO", multiMatch["fuzziness"])
	require.ElementsMatch(t, []interface{}{"title", "description"}, multiMatch["fields"])
}

func TestBuildSearchQueryEmptyMatchesAll(t *testing.T) {
	decoded := decodeQuery(t, SearchJobsParams{
		Page:     1,
		PageSize: 5,
	})

	b := boolQuery(t, decoded)
	must, ok := b["must"].(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, must, "match_all")
}

func TestBuildSearchQueryAlwaysFiltersActive(t *testing.T) {
	// the active filter must be present no matter what parameters are given
	cases := []SearchJobsParams{
		{Page: 1, PageSize: 5},
		{Query: "engineer", Page: 1, PageSize: 5},
		{Query: "engineer", Location: "Berlin", Company: "acme.com", Page: 1, PageSize: 5},
	}

	for _, params := range cases {
		decoded := decodeQuery(t, params)
		b := boolQuery(t, decoded)
		filters, ok := b["filter"].([]interface{})
		require.True(t, ok)

		found := false
		for _, f := range filters {
			term, ok := f.(map[string]interface{})["term"].(map[string]interface{})
			if ok && term["active"] == true {
				found = true
			}
		}
		require.True(t, found, "active filter missing for params %+v", params)
	}
}

func TestBuildSearchQueryExactMatchFilters(t *testing.T) {
	decoded := decodeQuery(t, SearchJobsParams{
		Query:    "engineer",
		Location: "Berlin",
		Company:  "acme.com",
		Page:     1,
		PageSize: 5,
	})

	b := boolQuery(t, decoded)
	filters, ok := b["filter"].([]interface{})
	require.True(t, ok)
	require.Len(t, filters, 3)

	terms := make(map[string]interface{})
	for _, f := range filters {
		term := f.(map[string]interface{})["term"].(map[string]interface{})
		for k, v := range term {
			terms[k] = v
		}
	}
	require.Equal(t, true, terms["active"])
	require.Equal(t, "Berlin", terms["location"])
	require.Equal(t, "acme.com", terms["company"])
}
