package session

import (
	"context"

	"github.com/entrhq/prospect/pkg/auth"
	"github.com/entrhq/prospect/pkg/config"
	"github.com/entrhq/prospect/pkg/driver"
	"github.com/entrhq/prospect/pkg/logging"
)

// NewDefaultManager wires the production composition: one shared browser
// runtime, a pool authenticating through the cookie flow, and a store.
// capture may be nil when credential-based session creation is not offered.
// The returned runtime must be stopped at process shutdown, after
// CloseAllSessions.
func NewDefaultManager(cfg config.Config, capture CredentialCapturer) (*Manager, *driver.Runtime) {
	logging.Configure(logging.Settings{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	rt := driver.NewRuntime(driver.OptionsFromConfig(cfg))
	flow := auth.NewFlow()

	pool := driver.NewPool(rt.NewDriver, func(ctx context.Context, d *driver.Driver, rawCookie string) error {
		return flow.Authenticate(ctx, d, rawCookie)
	})

	return NewManager(NewStore(), pool, flow, rt.NewDriver, capture), rt
}
