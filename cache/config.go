package cache

// Config carries the configuration of FIFO caches.
type Config struct {
	// Maximum number of entries retained by the cache. Zero or negative
	// values mean that the cache is unbounded, entries are then only removed
	// by calls to Delete or Evict.
	Capacity int
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// FIFO instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Capacity is a cache configuration option setting the maximum number of
// entries in a FIFO instance. Inserting a new key in a full cache evicts the
// oldest entry first.
//
// Default: unbounded
func Capacity(n int) Option {
	return option(func(config *Config) { config.Capacity = n })
}
