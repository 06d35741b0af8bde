package esearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

const jobIndex = "jobs"

type ESearchClient interface {
	UpsertJobDocument(ctx context.Context, document JobDocument) error
	DeleteJobDocument(ctx context.Context, jobID int32) error
	CountJobDocuments(ctx context.Context) (int64, error)
	SearchJobs(ctx context.Context, params SearchJobsParams) ([]*JobDocument, int64, error)
	BulkIndexJobDocuments(ctx context.Context, documents []JobDocument) error
}

type ESClient struct {
	client *elasticsearch.Client
}

func NewClient(client *elasticsearch.Client) ESearchClient {
	return &ESClient{
		client: client,
	}
}

// UpsertJobDocument indexes the document under the job ID, replacing any
// existing document with the same ID.
func (client *ESClient) UpsertJobDocument(ctx context.Context, document JobDocument) error {
	response, err := client.client.Index(
		jobIndex,
		esutil.NewJSONReader(document),
		client.client.Index.WithDocumentID(strconv.Itoa(int(document.ID))),
		client.client.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.IsError() {
		return fmt.Errorf("failed to index document %d: %s", document.ID, response.Status())
	}
	return nil
}

// DeleteJobDocument removes the document with the given job ID from the index.
// Deleting an absent document is not an error.
func (client *ESClient) DeleteJobDocument(ctx context.Context, jobID int32) error {
	response, err := client.client.Delete(
		jobIndex,
		strconv.Itoa(int(jobID)),
		client.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.IsError() && response.StatusCode != 404 {
		return fmt.Errorf("failed to delete document %d: %s", jobID, response.Status())
	}
	return nil
}

// CountJobDocuments returns the number of documents in the jobs index.
// A missing index counts as zero documents.
func (client *ESClient) CountJobDocuments(ctx context.Context) (int64, error) {
	response, err := client.client.Count(
		client.client.Count.WithIndex(jobIndex),
		client.client.Count.WithContext(ctx),
	)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	if response.StatusCode == 404 {
		return 0, nil
	}
	if response.IsError() {
		return 0, fmt.Errorf("failed to count documents: %s", response.Status())
	}

	var countResponse CountResponse
	err = json.NewDecoder(response.Body).Decode(&countResponse)
	if err != nil {
		return 0, err
	}
	return countResponse.Count, nil
}

// SearchJobs runs the structured search query and returns the page of
// documents together with the total number of hits.
func (client *ESClient) SearchJobs(ctx context.Context, params SearchJobsParams) ([]*JobDocument, int64, error) {
	var jobs []*JobDocument

	searchBuffer, err := buildSearchQuery(params)
	if err != nil {
		return jobs, 0, err
	}

	response, err := client.client.Search(
		client.client.Search.WithContext(ctx),
		client.client.Search.WithIndex(jobIndex),
		client.client.Search.WithBody(searchBuffer),
		client.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return jobs, 0, err
	}
	defer response.Body.Close()

	if response.IsError() {
		return jobs, 0, fmt.Errorf("search failed: %s", response.Status())
	}

	var searchResponse = SearchResponse{}
	err = json.NewDecoder(response.Body).Decode(&searchResponse)
	if err != nil {
		return jobs, 0, err
	}

	for _, job := range searchResponse.Hits.Hits {
		jobs = append(jobs, job.Source)
	}
	return jobs, searchResponse.Hits.Total.Value, nil
}

// BulkIndexJobDocuments indexes all documents with the bulk indexer,
// keyed by job ID. Used by the startup reconciliation.
func (client *ESClient) BulkIndexJobDocuments(ctx context.Context, documents []JobDocument) error {
	bulkIndexer, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:      jobIndex,
		Client:     client.client,
		NumWorkers: 5,
	})
	if err != nil {
		return err
	}

	for _, document := range documents {
		body, err := io.ReadAll(esutil.NewJSONReader(document))
		if err != nil {
			return err
		}
		err = bulkIndexer.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: strconv.Itoa(int(document.ID)),
				Body:       bytes.NewReader(body),
			},
		)
		if err != nil {
			return err
		}
	}

	err = bulkIndexer.Close(ctx)
	if err != nil {
		return err
	}

	biStats := bulkIndexer.Stats()
	if biStats.NumFailed > 0 {
		return fmt.Errorf("bulk indexing failed for %d documents", biStats.NumFailed)
	}
	return nil
}
