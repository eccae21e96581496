package buildlua

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Option configures a Parser.
type Option func(*Parser)

// WithFs sets the filesystem that ParseFile and ParseFiles read from.
func WithFs(fs afero.Fs) Option {
	return func(p *Parser) {
		p.fs = fs
	}
}

// WithLogger sets the logger. Successfully parsed chunks are logged at debug
// level, failures at warn level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithConcurrency limits the number of files that ParseFiles parses at once.
// Values smaller than one are ignored.
func WithConcurrency(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.concurrency = n
		}
	}
}
