package db

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aalug/go-job-board/pkg/utils"
	"github.com/bxcodec/faker/v3"
)

// LoadTestData loads the test data into the database
func (store *SQLStore) LoadTestData(ctx context.Context, posterID int32) {
	var wg sync.WaitGroup
	nOfJobsCreated := int32(0)
	jobTitles := append(utils.GenerateEngineerJobs(), utils.GenerateDeveloperJobs()...)

	// create fake companies with jobs
	for i := 0; i < 10; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			idx := utils.RandomInt(0, int32(len(utils.Locations)-1))
			location := utils.Locations[idx]
			company, err := store.CreateCompany(ctx, faker.DomainName())
			if err != nil {
				log.Println(err)
				return
			}

			for j := 0; j < 3; j++ {
				idx := utils.RandomInt(0, int32(len(jobTitles)-1))
				jobTitle := jobTitles[idx]
				jobParams := CreateJobParams{
					Title:       jobTitle,
					Description: jobTitle + " " + faker.Paragraph(),
					CompanyID:   company.ID,
					Location:    location,
					Salary:      utils.RandomFloat(3000, 15000),
					Deadline:    time.Now().AddDate(0, 1, 0),
					PosterID:    posterID,
				}
				_, err := store.CreateJob(ctx, jobParams)
				if err != nil {
					log.Println(err)
				} else {
					atomic.AddInt32(&nOfJobsCreated, 1)
				}
			}
		}()
	}

	wg.Wait()
	log.Printf("Created %d jobs", nOfJobsCreated)
}
