package driver

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/entrhq/prospect/pkg/logging"
)

// AuthFunc authenticates a freshly constructed driver with a raw cookie.
// The session facade wires the auth flow in here.
type AuthFunc func(ctx context.Context, d *Driver, rawCookie string) error

// Factory constructs a new, unauthenticated driver.
type Factory func() (*Driver, error)

// Pool keeps at most one live driver per session token. Drivers are created
// lazily, authenticated before registration, and torn down explicitly. The
// bookkeeping map is the only thing the lock covers; construction and
// authentication run outside it, collapsed per token via singleflight so
// concurrent resolves for one token share a single create.
type Pool struct {
	mu      sync.RWMutex
	drivers map[string]*Driver
	group   singleflight.Group
	factory Factory
	auth    AuthFunc
	log     *slog.Logger
}

// NewPool creates a pool that constructs drivers with factory and
// authenticates them with authFn before registering.
func NewPool(factory Factory, authFn AuthFunc) *Pool {
	return &Pool{
		drivers: make(map[string]*Driver),
		factory: factory,
		auth:    authFn,
		log:     logging.New("driver-pool"),
	}
}

// GetOrCreate returns the pooled driver for token, constructing and
// authenticating one if absent. An existing driver is returned as-is: it is
// assumed still authenticated, and session replacement evicts it when the
// credential changes. On authentication failure the fresh driver is torn
// down and nothing is registered.
func (p *Pool) GetOrCreate(ctx context.Context, token, rawCookie string) (*Driver, error) {
	if d, ok := p.Peek(token); ok {
		p.log.Debug("reusing pooled driver", "token", token)
		return d, nil
	}

	v, err, _ := p.group.Do(token, func() (any, error) {
		// A concurrent caller may have registered one while we waited.
		if d, ok := p.Peek(token); ok {
			return d, nil
		}

		d, err := p.factory()
		if err != nil {
			return nil, err
		}
		d.Token = token

		if err := p.auth(ctx, d, rawCookie); err != nil {
			// Never leave an unauthenticated driver pooled.
			if cerr := d.Close(); cerr != nil {
				p.log.Warn("failed to close driver after failed authentication",
					"token", token, "error", cerr)
			}
			return nil, err
		}

		p.mu.Lock()
		p.drivers[token] = d
		p.mu.Unlock()

		p.log.Info("driver created and authenticated", "token", token)
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Driver), nil
}

// Peek returns the pooled driver for token without creating one.
func (p *Pool) Peek(token string) (*Driver, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	d, ok := p.drivers[token]
	return d, ok
}

// Close tears down and deregisters the driver for token. Teardown errors
// are logged, not returned: a failing close must not leave the token stuck
// in the bookkeeping. Closing an absent token is a no-op returning false.
func (p *Pool) Close(token string) bool {
	p.group.Forget(token)

	p.mu.Lock()
	d, ok := p.drivers[token]
	delete(p.drivers, token)
	p.mu.Unlock()

	if !ok {
		return false
	}

	p.log.Info("closing driver", "token", token)
	if err := d.Close(); err != nil {
		p.log.Warn("error closing driver", "token", token, "error", err)
	}
	return true
}

// CloseAll closes every pooled driver, isolating individual teardown
// failures, and returns the number of drivers closed.
func (p *Pool) CloseAll() int {
	p.mu.Lock()
	closing := make(map[string]*Driver, len(p.drivers))
	for token, d := range p.drivers {
		closing[token] = d
	}
	p.drivers = make(map[string]*Driver)
	p.mu.Unlock()

	for token, d := range closing {
		p.group.Forget(token)
		if err := d.Close(); err != nil {
			p.log.Warn("error closing driver", "token", token, "error", err)
		}
	}

	if len(closing) > 0 {
		p.log.Info("all drivers closed", "count", len(closing))
	}
	return len(closing)
}

// Tokens returns a snapshot of the tokens with a live driver.
func (p *Pool) Tokens() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	tokens := make([]string, 0, len(p.drivers))
	for token := range p.drivers {
		tokens = append(tokens, token)
	}
	return tokens
}

// Len returns the number of pooled drivers.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.drivers)
}
