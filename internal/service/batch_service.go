package service

import (
	"log"
	"sync"

	"trialscope/internal/batch"
	"trialscope/internal/domain"
	"trialscope/internal/export"
)

// BatchService owns the current batch of extraction results and the
// field selection used for display and export.
type BatchService interface {
	// ProcessFiles replaces the current batch with the results of the
	// given file selection. An empty selection clears all state.
	ProcessFiles(inputs []batch.FileInput) domain.Batch
	// Current returns the current batch.
	Current() domain.Batch
	// Selection returns the currently selected fields, in selection
	// order.
	Selection() []domain.FieldName
	// SetSelection replaces the selected fields.
	SetSelection(fields []domain.FieldName) error
	// Table builds the comparison table for the current batch and
	// selection. Returns domain.ErrEmptyBatch when there is nothing to
	// export.
	Table() (export.Table, error)
}

type batchService struct {
	mu       sync.Mutex
	records  []domain.FileRecord
	errors   string
	selected []domain.FieldName
}

// NewBatchService creates a BatchService with every catalog field
// selected.
func NewBatchService() BatchService {
	return &batchService{selected: domain.Catalog()}
}

func (s *batchService) ProcessFiles(inputs []batch.FileInput) domain.Batch {
	result := batch.Process(inputs)

	s.mu.Lock()
	s.records = result.Records
	s.errors = result.Errors
	s.mu.Unlock()

	log.Printf("service.BatchService: processed %d file(s), %d extracted", len(inputs), len(result.Records))
	return result
}

func (s *batchService) Current() domain.Batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Batch{Records: s.records, Errors: s.errors}
}

func (s *batchService) Selection() []domain.FieldName {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FieldName, len(s.selected))
	copy(out, s.selected)
	return out
}

func (s *batchService) SetSelection(fields []domain.FieldName) error {
	if len(fields) == 0 {
		return domain.ErrEmptySelection
	}
	for _, f := range fields {
		if !domain.KnownField(f) {
			return domain.ErrUnknownField
		}
	}

	s.mu.Lock()
	s.selected = append([]domain.FieldName(nil), fields...)
	s.mu.Unlock()
	return nil
}

func (s *batchService) Table() (export.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return export.Table{}, domain.ErrEmptyBatch
	}
	return export.BuildTable(s.records, s.selected), nil
}
