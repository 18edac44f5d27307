package scrape

import (
	"context"
	"log/slog"

	"github.com/entrhq/prospect/pkg/driver"
	"github.com/entrhq/prospect/pkg/logging"
)

// DriverResolver is the slice of the session manager the service needs.
type DriverResolver interface {
	ResolveDriver(ctx context.Context, token string) (*driver.Driver, error)
}

// Service resolves a pooled driver for a session token and delegates the
// actual scraping to the injected collaborator.
type Service struct {
	sessions DriverResolver
	scraper  Scraper
	log      *slog.Logger
}

// NewService wires the data service from the session facade and a scraper.
func NewService(sessions DriverResolver, scraper Scraper) *Service {
	return &Service{
		sessions: sessions,
		scraper:  scraper,
		log:      logging.New("scrape"),
	}
}

// GetPersonProfile scrapes a person profile for the given session.
func (s *Service) GetPersonProfile(ctx context.Context, token, publicID string) (map[string]any, error) {
	d, err := s.sessions.ResolveDriver(ctx, token)
	if err != nil {
		return nil, err
	}
	s.log.Info("scraping person profile", "public_id", publicID)
	return s.scraper.Person(ctx, d, publicID)
}

// GetCompanyProfile scrapes a company page for the given session.
func (s *Service) GetCompanyProfile(ctx context.Context, token, companyName string) (map[string]any, error) {
	d, err := s.sessions.ResolveDriver(ctx, token)
	if err != nil {
		return nil, err
	}
	s.log.Info("scraping company profile", "company", companyName)
	return s.scraper.Company(ctx, d, companyName)
}

// GetJobDetails scrapes a job posting for the given session.
func (s *Service) GetJobDetails(ctx context.Context, token, jobID string) (map[string]any, error) {
	d, err := s.sessions.ResolveDriver(ctx, token)
	if err != nil {
		return nil, err
	}
	s.log.Info("scraping job details", "job_id", jobID)
	return s.scraper.Job(ctx, d, jobID)
}

// SearchJobs runs a job search for the given session.
func (s *Service) SearchJobs(ctx context.Context, token, query string) ([]map[string]any, error) {
	d, err := s.sessions.ResolveDriver(ctx, token)
	if err != nil {
		return nil, err
	}
	s.log.Info("searching jobs", "query", query)
	return s.scraper.SearchJobs(ctx, d, query)
}
