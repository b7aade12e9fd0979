package internal

// Option configures a daylog run before Run opens the store.
type Option func(*application)

type application struct {
	config *Config
}

// WithConfig supplies the resolved configuration. Run fails without it.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}
