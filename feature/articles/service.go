package articles

import (
	"iter"
	"sync"

	"article-stream/core/dataset"
	"article-stream/core/document"
	"article-stream/core/sources"
	"article-stream/core/storage"
	"article-stream/core/stream"
	"article-stream/feature/articles/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs the reconciliation pipeline against the configured
// backends.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
	cfg    sources.Config

	mu     sync.Mutex
	shared *Source
}

// NewService creates a new articles service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg sources.Config) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
		cfg:    cfg,
	}
}

// Schema returns the record field names in order. The backing source is
// shared across calls, so repeated lookups hit already-loaded data.
func (s *Service) Schema() ([]string, error) {
	src, err := s.source()
	if err != nil {
		return nil, err
	}
	return src.GetSchema()
}

// Stream opens a fresh pass over the document collection and returns its
// lazy batch sequence.
func (s *Service) Stream(batchSize int) (iter.Seq2[[]*document.Record, error], error) {
	src, err := s.buildSource()
	if err != nil {
		return nil, err
	}
	return src.GetDataBatch(batchSize)
}

// Batches collects up to max batches of batchSize records each from a
// fresh pass. max < 1 returns all batches.
func (s *Service) Batches(batchSize, max int) ([][]*document.Record, error) {
	seq, err := s.Stream(batchSize)
	if err != nil {
		return nil, err
	}
	if max > 0 {
		seq = stream.Take(seq, max)
	}
	return stream.Collect(seq)
}

// Report compares the document collection against the reference table.
func (s *Service) Report() (*models.CoverageReport, error) {
	docs, err := loadDocuments(s.documentsOpener())
	if err != nil {
		return nil, err
	}
	ref, err := s.referenceLoader().Load()
	if err != nil {
		return nil, err
	}
	return BuildReport(docs, ref), nil
}

// source returns the shared schema source, building it on first use.
func (s *Service) source() (*Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shared == nil {
		src, err := s.buildSource()
		if err != nil {
			return nil, err
		}
		s.shared = src
	}
	return s.shared, nil
}

// buildSource configures a fresh source against the service backends.
func (s *Service) buildSource() (*Source, error) {
	src := NewSource(s.logger)
	err := src.Configure(Options{
		Documents: s.documentsOpener(),
		Reference: s.referenceLoader(),
	})
	if err != nil {
		return nil, err
	}
	return src, nil
}

// documentsOpener reads the API response from object storage when enabled
// and a client is present, from the local file system otherwise.
func (s *Service) documentsOpener() dataset.Opener {
	if s.cfg.UseStorage && s.client != nil {
		return StorageOpener(s.client, s.bucket, s.cfg.APIResponseFile)
	}
	return FileOpener(s.cfg.APIResponseFile)
}

// referenceLoader picks the reference backend. Selecting the database
// without a live connection falls back to the workbook so the service
// stays usable.
func (s *Service) referenceLoader() ReferenceLoader {
	if s.cfg.ReferenceBackend == sources.BackendDatabase {
		if s.db != nil {
			return NewDatabaseReference(s.db)
		}
		s.logger.Warn("Reference backend is database but no connection is up, using workbook",
			zap.String("workbook", s.cfg.ReferenceDataFile))
	}
	if s.cfg.UseStorage && s.client != nil {
		opener := StorageOpener(s.client, s.bucket, s.cfg.ReferenceDataFile)
		return NewWorkbookReference(dataset.NewWorkbook(s.cfg.ReferenceDataFile, opener))
	}
	return NewWorkbookReference(dataset.FileWorkbook(s.cfg.ReferenceDataFile))
}
