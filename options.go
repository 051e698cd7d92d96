package canvas

import "github.com/gogpu/canvas/text"

// Option configures a Surface at creation time.
type Option func(*options)

type options struct {
	id       string
	registry *Registry
	fonts    *text.Library
}

func defaultOptions() options {
	return options{
		registry: DefaultRegistry,
		fonts:    text.Default(),
	}
}

// WithID registers the surface under id so that FromSelector("#id") finds it.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithRegistry sets the registry used for selector lookups and WithID.
// Defaults to DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithFonts sets the font library used to resolve the font property.
// Defaults to text.Default, which holds the Go fonts.
func WithFonts(l *text.Library) Option {
	return func(o *options) {
		if l != nil {
			o.fonts = l
		}
	}
}
