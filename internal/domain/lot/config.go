package lot

import (
	"errors"
	"time"

	"parklot/internal/domain/billing"

	"github.com/google/uuid"
)

var ErrInvalidStallCount = errors.New("total stall count must be positive")

// Config is one pricing/capacity snapshot. At most one config is active at a
// time; saving a new one deactivates the previous active one in the same
// transaction. Configs are never deleted, only deactivated.
type Config struct {
	id          uuid.UUID
	totalStalls int32
	rates       billing.Rates
	active      bool
	createdAt   time.Time
}

func NewConfig(totalStalls int32, rates billing.Rates) (*Config, error) {
	if totalStalls <= 0 {
		return nil, ErrInvalidStallCount
	}
	return &Config{
		id:          uuid.New(),
		totalStalls: totalStalls,
		rates:       rates,
		active:      true,
	}, nil
}

func ReconstructConfig(
	id uuid.UUID,
	totalStalls int32,
	rates billing.Rates,
	active bool,
	createdAt time.Time,
) *Config {
	return &Config{
		id:          id,
		totalStalls: totalStalls,
		rates:       rates,
		active:      active,
		createdAt:   createdAt,
	}
}

func (c *Config) ID() uuid.UUID        { return c.id }
func (c *Config) TotalStalls() int32   { return c.totalStalls }
func (c *Config) Rates() billing.Rates { return c.rates }
func (c *Config) IsActive() bool       { return c.active }
func (c *Config) CreatedAt() time.Time { return c.createdAt }

func (c *Config) Deactivate() {
	c.active = false
}
