package esearch

// === Types for the ES part of the application ===

// JobDocument is the read-optimized projection of a job posting kept in the
// search index. It is never authoritative; the jobs table is.
type JobDocument struct {
	ID          int32   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Salary      float64 `json:"salary"`
	Active      bool    `json:"active"`
}

// === Queries and searches ===

type SearchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []*struct {
			Source *JobDocument `json:"_source"`
			ID     string       `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
