package xsql

type (
	Option interface {
		Apply(b *Backend) error
	}
	withoutPrepareOption struct{}
)

func (withoutPrepareOption) Apply(b *Backend) error {
	b.prepare = false

	return nil
}

// WithoutPrepare makes commands executed directly on connection without prepared statement
func WithoutPrepare() Option {
	return withoutPrepareOption{}
}
