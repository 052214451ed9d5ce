// Package search runs key searches over documents on disk and assembles the
// report. The key-finding itself lives in package collect; this package only
// reads, decodes and narrows documents before handing them over.
package search

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jacoelho/keyfind/internal/collect"
	"github.com/jacoelho/keyfind/internal/config"
	"github.com/jacoelho/keyfind/internal/jsonvalue"
	"github.com/jacoelho/keyfind/internal/keyset"
	"github.com/jacoelho/keyfind/internal/ratelimit"
	"github.com/jacoelho/keyfind/internal/report"
	"github.com/jacoelho/keyfind/internal/scope"
)

// Search finds keys in doc. With a selector, only the selected subtrees are
// walked and paths stay relative to the document root.
func Search(doc jsonvalue.Value, keys keyset.Set, selector *scope.Selector, maxDepth int) ([]collect.Match, error) {
	if selector == nil {
		return collect.Collector{MaxDepth: maxDepth}.Collect(doc, keys)
	}
	return searchRoots(selector.Select(doc), keys, maxDepth)
}

func searchRoots(roots []scope.Root, keys keyset.Set, maxDepth int) ([]collect.Match, error) {
	collector := collect.Collector{MaxDepth: maxDepth}

	var matches []collect.Match
	for _, root := range roots {
		found, err := collector.CollectAt(root.Value, root.Path, keys)
		if err != nil {
			return nil, err
		}
		matches = append(matches, found...)
	}
	return matches, nil
}

// Service searches every file named in the configuration.
type Service struct {
	cfg     config.Config
	logger  logrus.FieldLogger
	limiter *ratelimit.Limiter
	newID   func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithIDGenerator replaces the report ID source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

func New(cfg config.Config, logger logrus.FieldLogger, opts ...Option) *Service {
	s := &Service{
		cfg:     cfg,
		logger:  logger,
		limiter: ratelimit.New(cfg.RateLimit),
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run searches the files in order. A file that cannot be read or parsed is
// recorded in the summary and the remaining files still run; only context
// cancellation stops the batch early.
func (s *Service) Run(ctx context.Context) (report.Summary, error) {
	summary := report.Summary{
		ID:   s.newID(),
		Keys: s.cfg.Keys.Sorted(),
	}

	for _, file := range s.cfg.Files {
		if err := s.limiter.Wait(ctx); err != nil {
			return summary, fmt.Errorf("search %s: %w", file, err)
		}
		summary.Add(s.File(file))
	}

	return summary, nil
}

// File searches a single document.
func (s *Service) File(path string) report.FileResult {
	logger := s.logger.WithField("file", path)
	result := report.FileResult{Source: path}

	doc, err := s.load(path)
	if err != nil {
		logger.WithError(err).Warn("document not searched")
		result.Error = err.Error()
		return result
	}

	matches, err := s.search(logger, doc)
	if err != nil {
		logger.WithError(err).Warn("search aborted")
		result.Error = err.Error()
		return result
	}

	result.Matches = make([]report.Entry, 0, len(matches))
	for _, match := range matches {
		result.Matches = append(result.Matches, report.Entry{
			Path:  match.Path.Format(s.cfg.PathStyle),
			Value: match.Value,
		})
	}

	logger.WithField("matches", len(matches)).Debug("document searched")
	return result
}

func (s *Service) search(logger logrus.FieldLogger, doc jsonvalue.Value) ([]collect.Match, error) {
	if s.cfg.Scope == nil {
		return Search(doc, s.cfg.Keys, nil, s.cfg.MaxDepth)
	}

	roots := s.cfg.Scope.Select(doc)
	logger.WithFields(logrus.Fields{"scope": s.cfg.Scope.String(), "roots": len(roots)}).Debug("scope selected")
	return searchRoots(roots, s.cfg.Keys, s.cfg.MaxDepth)
}

func (s *Service) load(path string) (jsonvalue.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return jsonvalue.Value{}, err
	}

	format := detectFormat(path, s.cfg.InputFormat)
	s.logger.WithFields(logrus.Fields{"file": path, "format": format, "bytes": len(data)}).Debug("decoding document")

	if format == config.InputYAML {
		return jsonvalue.DecodeYAML(data, s.cfg.MaxDepth)
	}
	return jsonvalue.Decode(bytes.NewReader(data), s.cfg.MaxDepth)
}

func detectFormat(path string, requested config.InputFormat) config.InputFormat {
	if requested != config.InputAuto && requested != "" {
		return requested
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return config.InputYAML
	default:
		return config.InputJSON
	}
}
