package reconcile

import "time"

// Config holds tuning for comparisons.
type Config struct {
	// Concurrency is the number of in-flight page requests per side.
	Concurrency int `mapstructure:"concurrency" default:"15"`
	// MaxRetries is the number of retries after the first failed attempt.
	MaxRetries int `mapstructure:"max_retries" default:"2"`
	// RetryBaseDelay is multiplied by the attempt number between retries.
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay" default:"500ms"`
	// PageSizes are tried in order until a scan yields records.
	PageSizes []int `mapstructure:"page_sizes" default:"100,50,20"`
	// BatchSize is the default page size of incremental comparisons.
	BatchSize int `mapstructure:"batch_size" default:"100"`
	// MaxBatchSize caps a caller-supplied batch size.
	MaxBatchSize int `mapstructure:"max_batch_size" default:"200"`
	// MaxPages is the default page cap of incremental comparisons.
	MaxPages int `mapstructure:"max_pages" default:"150"`
	// MaxPagesLimit caps a caller-supplied page cap.
	MaxPagesLimit int `mapstructure:"max_pages_limit" default:"300"`
	// DisplayLimit caps each onlyIn list in results; 0 means unlimited.
	DisplayLimit int `mapstructure:"display_limit" default:"500"`
	// TotalsCacheTTL keeps reported totals for this long; 0 disables caching.
	TotalsCacheTTL time.Duration `mapstructure:"totals_cache_ttl" default:"0s"`
}

// DefaultConfig returns the built-in tuning.
func DefaultConfig() Config {
	return Config{
		Concurrency:    15,
		MaxRetries:     2,
		RetryBaseDelay: 500 * time.Millisecond,
		PageSizes:      []int{100, 50, 20},
		BatchSize:      100,
		MaxBatchSize:   200,
		MaxPages:       150,
		MaxPagesLimit:  300,
		DisplayLimit:   500,
	}
}

// withDefaults fills structural zero values. Delays, retries and limits keep
// their zero meaning.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Concurrency <= 0 {
		c.Concurrency = d.Concurrency
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryBaseDelay < 0 {
		c.RetryBaseDelay = 0
	}
	sizes := make([]int, 0, len(c.PageSizes))
	for _, s := range c.PageSizes {
		if s > 0 {
			sizes = append(sizes, s)
		}
	}
	if len(sizes) == 0 {
		sizes = d.PageSizes
	}
	c.PageSizes = sizes
	if c.BatchSize <= 0 {
		c.BatchSize = d.BatchSize
	}
	if c.MaxBatchSize <= 0 {
		c.MaxBatchSize = d.MaxBatchSize
	}
	if c.MaxPages <= 0 {
		c.MaxPages = d.MaxPages
	}
	if c.MaxPagesLimit <= 0 {
		c.MaxPagesLimit = d.MaxPagesLimit
	}
	return c
}

// resolve applies defaults and caps to caller options.
func (c Config) resolve(opts Options) Options {
	if opts.Mode == "" {
		opts.Mode = ModeFull
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = c.BatchSize
	}
	opts.BatchSize = min(opts.BatchSize, c.MaxBatchSize)
	if opts.MaxPages <= 0 {
		opts.MaxPages = c.MaxPages
	}
	opts.MaxPages = min(opts.MaxPages, c.MaxPagesLimit)
	return opts
}
