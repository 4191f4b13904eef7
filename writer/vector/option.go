package vector

import (
	qrbrandr "github.com/jdsidebottom/QRBrandr"
)

type options struct {
	size   int
	margin int
	theme  qrbrandr.Theme
	logo   *qrbrandr.Logo
}

func defaultOptions() options {
	return options{
		size:   300,
		margin: qrbrandr.DefaultMargin,
		theme:  qrbrandr.ThemeFor(false),
	}
}

// Option configures a Writer.
type Option interface {
	apply(*options)
}

type funcOption struct {
	f func(*options)
}

func (fo funcOption) apply(o *options) { fo.f(o) }

// WithSize sets the square output edge in user units.
func WithSize(px int) Option {
	return funcOption{func(o *options) {
		if px > 0 {
			o.size = px
		}
	}}
}

// WithMargin sets the quiet zone width in modules.
func WithMargin(modules int) Option {
	return funcOption{func(o *options) {
		if modules >= 0 {
			o.margin = modules
		}
	}}
}

// WithTheme sets the module colors.
func WithTheme(t qrbrandr.Theme) Option {
	return funcOption{func(o *options) {
		o.theme = t
	}}
}

// WithLogo sets the overlay; nil disables compositing.
func WithLogo(l *qrbrandr.Logo) Option {
	return funcOption{func(o *options) {
		o.logo = l
	}}
}
