// Package buildlua parses Lua 5.2 source code into the syntax tree defined in
// package ast.
//
//	p := buildlua.New()
//	chunk, err := p.ParseString(`print("Hello, World!")`)
//
// A Parser is safe for concurrent use. Parsed chunks share no state with each
// other or with the Parser.
package buildlua

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/Ameliorate/buildlua/ast"
	"github.com/Ameliorate/buildlua/internal/parser"
)

type namer interface {
	Name() string
}

// Parser parses Lua source from readers, strings and files.
type Parser struct {
	fs          afero.Fs
	log         logrus.FieldLogger
	concurrency int
}

// New creates a new Parser, applying all given options. By default, files are
// read from the OS filesystem, nothing is logged, and ParseFiles parses up to
// runtime.NumCPU() files at once.
func New(opts ...Option) *Parser {
	p := &Parser{
		fs:          afero.NewOsFs(),
		log:         discardLogger(),
		concurrency: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Parse parses everything that can be read from the given reader as a single
// chunk. If the reader has a Name() method, like *os.File and afero.File, the
// chunk is named after the base name of the file.
// If the source can not be parsed, the returned error is a *ParseError.
func (p *Parser) Parse(source io.Reader) (ast.Chunk, error) {
	start := time.Now()

	ps, err := parser.New(source)
	if err != nil {
		return ast.Chunk{}, fmt.Errorf("create parser: %w", err)
	}
	chunk, ok := ps.Parse()
	if !ok {
		parseErr := &ParseError{
			Name:   chunkName(source),
			Errors: ps.Errors(),
		}
		p.log.WithFields(logrus.Fields{
			"chunk":  parseErr.Name,
			"errors": len(parseErr.Errors),
		}).Warn("parse failed")
		return ast.Chunk{}, parseErr
	}

	p.log.WithFields(logrus.Fields{
		"chunk":      chunk.Name,
		"statements": len(chunk.Statements),
		"duration":   time.Since(start),
	}).Debug("parsed chunk")
	return chunk, nil
}

// ParseString parses the given source code.
func (p *Parser) ParseString(source string) (ast.Chunk, error) {
	return p.Parse(strings.NewReader(source))
}

// ParseFile parses the file at the given path in the parser's filesystem.
func (p *Parser) ParseFile(path string) (ast.Chunk, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return ast.Chunk{}, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return p.Parse(f)
}

// ParseFiles parses all given files concurrently and returns the chunks in the
// order of the paths. The first error cancels all parsing that has not started
// yet and is returned.
func (p *Parser) ParseFiles(ctx context.Context, paths ...string) ([]ast.Chunk, error) {
	chunks := make([]ast.Chunk, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunk, err := p.ParseFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			chunks[i] = chunk
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chunks, nil
}

// ParseEach parses all given files concurrently, like ParseFiles, but does not
// stop at the first error. It returns the chunks and the errors in the order
// of the paths. For every path, either the chunk or the error is set. Files
// that were not parsed because ctx was done get ctx's error.
func (p *Parser) ParseEach(ctx context.Context, paths ...string) ([]ast.Chunk, []error) {
	chunks := make([]ast.Chunk, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			chunks[i], errs[i] = p.ParseFile(path)
			return nil
		})
	}
	_ = g.Wait()
	return chunks, errs
}

func chunkName(source io.Reader) string {
	if n, ok := source.(namer); ok {
		return filepath.Base(n.Name())
	}
	return parser.UnknownInputName
}
