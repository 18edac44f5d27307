// Package scrape defines the boundary to the scraping collaborator and the
// service glue that hands it an authenticated driver per call.
//
// The data schema belongs to the collaborator; this package only guarantees
// that every call receives a live, authenticated driver for the requested
// session and nothing else.
package scrape

import (
	"context"

	"github.com/entrhq/prospect/pkg/driver"
)

// Scraper turns an authenticated driver plus a target identifier into
// structured data. Implementations must not retain the driver past the
// call.
type Scraper interface {
	// Person scrapes a profile by its public identifier.
	Person(ctx context.Context, d *driver.Driver, publicID string) (map[string]any, error)

	// Company scrapes a company page by its public name.
	Company(ctx context.Context, d *driver.Driver, companyName string) (map[string]any, error)

	// Job scrapes a job posting by its ID.
	Job(ctx context.Context, d *driver.Driver, jobID string) (map[string]any, error)

	// SearchJobs runs a job search and returns the result list.
	SearchJobs(ctx context.Context, d *driver.Driver, query string) ([]map[string]any, error)
}
