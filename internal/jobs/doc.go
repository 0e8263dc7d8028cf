// Package jobs implements background job processing for the phonebook API.
//
// Jobs run on their own goroutine with a ticker, independently of HTTP
// request handling, and are controlled with Start and Stop:
//
//	sampler := jobs.NewPhonebookSampler(personRepo, appMetrics, time.Minute)
//	sampler.Start()
//	defer sampler.Stop()
//
// Available background jobs:
//
//   - PhonebookSampler: copies the phonebook size into the phonebook_people gauge
//
// Jobs log errors but don't crash the application.
package jobs
