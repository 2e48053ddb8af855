package parser

import (
	"io"

	"github.com/leonardinius/zsharp/internal/zserrors"
)

type parserOpts struct {
	reporter zserrors.ErrReporter
}

var defaultParserOpts = parserOpts{
	reporter: zserrors.NewErrReporter(io.Discard),
}

type ParserOption func(*parserOpts)

// WithErrorReporter receives the "Load builtin ..." debug log lines.
func WithErrorReporter(r zserrors.ErrReporter) ParserOption {
	return func(opts *parserOpts) {
		opts.reporter = r
	}
}

func newParserOpts(options ...ParserOption) *parserOpts {
	opts := defaultParserOpts
	for _, opt := range options {
		opt(&opts)
	}
	return &opts
}
