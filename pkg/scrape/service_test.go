package scrape

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/prospect/pkg/driver"
)

type fakeResolver struct {
	driver *driver.Driver
	err    error
	tokens []string
}

func (f *fakeResolver) ResolveDriver(_ context.Context, token string) (*driver.Driver, error) {
	f.tokens = append(f.tokens, token)
	return f.driver, f.err
}

type fakeScraper struct {
	lastTarget string
	calls      int
}

func (f *fakeScraper) Person(_ context.Context, _ *driver.Driver, id string) (map[string]any, error) {
	f.calls++
	f.lastTarget = id
	return map[string]any{"public_id": id}, nil
}

func (f *fakeScraper) Company(_ context.Context, _ *driver.Driver, name string) (map[string]any, error) {
	f.calls++
	f.lastTarget = name
	return map[string]any{"company": name}, nil
}

func (f *fakeScraper) Job(_ context.Context, _ *driver.Driver, id string) (map[string]any, error) {
	f.calls++
	f.lastTarget = id
	return map[string]any{"job_id": id}, nil
}

func (f *fakeScraper) SearchJobs(_ context.Context, _ *driver.Driver, query string) ([]map[string]any, error) {
	f.calls++
	f.lastTarget = query
	return []map[string]any{{"query": query}}, nil
}

func TestServiceResolvesDriverPerCall(t *testing.T) {
	resolver := &fakeResolver{driver: &driver.Driver{}}
	scraper := &fakeScraper{}
	svc := NewService(resolver, scraper)
	ctx := context.Background()

	person, err := svc.GetPersonProfile(ctx, "tok", "someone")
	require.NoError(t, err)
	assert.Equal(t, "someone", person["public_id"])

	company, err := svc.GetCompanyProfile(ctx, "tok", "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", company["company"])

	job, err := svc.GetJobDetails(ctx, "tok", "12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", job["job_id"])

	results, err := svc.SearchJobs(ctx, "tok", "golang")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, []string{"tok", "tok", "tok", "tok"}, resolver.tokens)
	assert.Equal(t, 4, scraper.calls)
}

func TestServicePropagatesResolveFailure(t *testing.T) {
	resolveErr := errors.New("no session")
	svc := NewService(&fakeResolver{err: resolveErr}, &fakeScraper{})

	_, err := svc.GetPersonProfile(context.Background(), "tok", "someone")
	assert.ErrorIs(t, err, resolveErr)
}
