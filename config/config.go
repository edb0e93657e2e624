package config

import (
	"fmt"

	validator "github.com/asaskevich/govalidator"
	"github.com/spf13/viper"
)

// Configuration holds every knob the AdBeam adapter reads. The orchestrator
// builds one at startup and injects it into the bidder and syncer; nothing in
// the adapter reads ambient global state.
type Configuration struct {
	// Endpoint is the auction endpoint the outbound payload is addressed to.
	Endpoint string `mapstructure:"endpoint"`

	// DefaultTimeout is used as tmax when the auction context carries none.
	DefaultTimeout uint64 `mapstructure:"default_timeout_ms"`

	// DefaultBidFloor backs placements whose request has neither a floor
	// provider nor a static params floor.
	DefaultBidFloor float64 `mapstructure:"default_bid_floor"`

	// COPPA flags the whole integration as child-directed.
	COPPA bool `mapstructure:"coppa"`

	UserSync UserSync `mapstructure:"usersync"`
}

// UserSync configures the cookie-sync endpoint.
type UserSync struct {
	// URL is the sync base; the mechanism path and query are appended per call.
	URL string `mapstructure:"url"`
}

// New uses viper to build the adapter configuration.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (cfg *Configuration) validate() error {
	if !validator.IsRequestURL(cfg.Endpoint) {
		return fmt.Errorf("invalid endpoint: %q", cfg.Endpoint)
	}
	if !validator.IsRequestURL(cfg.UserSync.URL) {
		return fmt.Errorf("invalid usersync.url: %q", cfg.UserSync.URL)
	}
	return nil
}

// SetupViper sets the default values the network operates with. Hosts only
// override them for test rigs and regional deployments.
func SetupViper(v *viper.Viper) {
	v.SetDefault("endpoint", "https://ssp.adbeam.com/pbs")
	v.SetDefault("default_timeout_ms", 500)
	v.SetDefault("default_bid_floor", 0)
	v.SetDefault("coppa", false)
	v.SetDefault("usersync.url", "https://cs.adbeam.com")
}
