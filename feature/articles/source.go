package articles

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"article-stream/core/dataset"
	"article-stream/core/document"
	"article-stream/core/stream"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// docsPath is the envelope path holding the documents in the API response.
var docsPath = []string{"response", "docs"}

// Options configures a Source.
type Options struct {
	// Documents opens the article API response.
	Documents dataset.Opener
	// Reference loads the combined editorial reference table.
	Reference ReferenceLoader
}

// Source exposes the reconciled article records: schema discovery and lazy
// fixed-size batch iteration. Data loads on first access and only once per
// instance. All batch sequences of one source share a single forward pass
// over the documents, so a later call resumes where the previous consumer
// stopped.
//
// A Source is safe for concurrent use: the first load is collapsed into
// one execution and record pulls are serialized.
type Source struct {
	log *zap.Logger

	mu     sync.RWMutex
	sf     singleflight.Group
	opts   *Options
	schema []string
	cursor *stream.Cursor[*document.Record]
}

// NewSource creates an unconfigured source.
func NewSource(log *zap.Logger) *Source {
	if log == nil {
		log = zap.NewNop()
	}
	return &Source{log: log}
}

// Configure stores the source inputs. It must be called before any other
// operation. Reconfiguring an instance that has already loaded data is not
// supported; create a fresh instance instead.
func (s *Source) Configure(opts Options) error {
	if opts.Documents == nil {
		return fmt.Errorf("%w: document opener is required", ErrNotConfigured)
	}
	if opts.Reference == nil {
		return fmt.Errorf("%w: reference loader is required", ErrNotConfigured)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = &opts
	return nil
}

// Connect is a hook for future incremental loading. It only observes its
// arguments; the pipeline models a static snapshot.
func (s *Source) Connect(incColumn string, maxIncValue any) {
	s.log.Debug("Incremental column", zap.String("column", incColumn))
	s.log.Debug("Incremental last value", zap.Any("value", maxIncValue))
}

// Disconnect is the counterpart hook. No resources stay open across calls,
// so there is nothing to release.
func (s *Source) Disconnect() {
	s.log.Debug("Source disconnected")
}

// GetSchema returns the field names of the reconciled records, in record
// key order. The schema comes from the first document and is computed once.
func (s *Source) GetSchema() ([]string, error) {
	if err := s.ensureConfigured(); err != nil {
		return nil, err
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.schema), nil
}

// GetDataBatch returns a lazy sequence of record batches of the given
// size. Every batch is full except possibly the final one; an empty batch
// is never yielded. A failure mid-stream arrives as the error step of the
// sequence; batches yielded before it remain valid.
func (s *Source) GetDataBatch(batchSize int) (iter.Seq2[[]*document.Record, error], error) {
	if err := s.ensureConfigured(); err != nil {
		return nil, err
	}
	if batchSize < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrBatchSize, batchSize)
	}
	seq := func(yield func([]*document.Record, error) bool) {
		if err := s.load(); err != nil {
			yield(nil, err)
			return
		}
		for batch, err := range stream.Chunk(s.records(), batchSize) {
			if !yield(batch, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
	return seq, nil
}

func (s *Source) ensureConfigured() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.opts == nil {
		return ErrNotConfigured
	}
	return nil
}

// load parses the documents and the reference table once. Only success is
// memoized; a failed load reruns on the next call.
func (s *Source) load() error {
	s.mu.RLock()
	loaded := s.cursor != nil
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := s.sf.Do("load", func() (any, error) {
		// Double-check after acquiring the singleflight slot
		s.mu.RLock()
		loaded := s.cursor != nil
		opts := s.opts
		s.mu.RUnlock()
		if loaded {
			return nil, nil
		}

		docs, err := loadDocuments(opts.Documents)
		if err != nil {
			return nil, err
		}
		if len(docs) == 0 {
			return nil, ErrNoDocuments
		}

		ref, err := opts.Reference.Load()
		if err != nil {
			return nil, err
		}

		// The schema is the key order of the first reconciled record.
		// The stream below starts over at the first document.
		first, err := MatchReviewStatus(document.Flatten(docs[0]), ref)
		if err != nil {
			return nil, err
		}
		schema := slices.Clone(first.Keys())

		s.mu.Lock()
		s.schema = schema
		s.cursor = stream.NewCursor(reconcileStream(docs, ref))
		s.mu.Unlock()

		s.log.Debug("Source loaded",
			zap.Int("documents", len(docs)),
			zap.Int("reference_rows", ref.Len()),
			zap.Int("fields", len(schema)))
		return nil, nil
	})
	return err
}

// records adapts the shared cursor into a sequence. Pulls are serialized,
// so concurrent consumers interleave records rather than duplicating them.
func (s *Source) records() iter.Seq2[*document.Record, error] {
	return func(yield func(*document.Record, error) bool) {
		for {
			rec, err, ok := s.pull()
			if !ok {
				return
			}
			if !yield(rec, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

func (s *Source) pull() (*document.Record, error, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Next()
}

// reconcileStream lazily flattens and matches each document in order.
func reconcileStream(docs []*document.Object, ref *dataset.Table) iter.Seq2[*document.Record, error] {
	return func(yield func(*document.Record, error) bool) {
		for _, doc := range docs {
			rec, err := MatchReviewStatus(document.Flatten(doc), ref)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// loadDocuments opens the API response, decodes it and descends to the
// document list at response.docs.
func loadDocuments(open dataset.Opener) ([]*document.Object, error) {
	rc, err := open()
	if err != nil {
		return nil, fmt.Errorf("open document collection: %w", err)
	}
	defer rc.Close()

	root, err := document.DecodeObject(rc)
	if err != nil {
		return nil, err
	}
	nested, err := document.Dig(root, docsPath...)
	if err != nil {
		return nil, fmt.Errorf("descend to documents: %w", err)
	}
	list, ok := nested.([]any)
	if !ok {
		return nil, fmt.Errorf("value at %q is not a list", strings.Join(docsPath, "."))
	}
	docs := make([]*document.Object, 0, len(list))
	for i, item := range list {
		obj, ok := item.(*document.Object)
		if !ok {
			return nil, fmt.Errorf("document %d is not an object", i)
		}
		docs = append(docs, obj)
	}
	return docs, nil
}
