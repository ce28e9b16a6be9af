package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lateness-tracker/internal/cache"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/store"
	"github.com/MKhiriev/lateness-tracker/models"
)

// recordService passes lateness records through to the repository, with an
// optional read-through cache in front of the two list views. Cache
// failures are logged and never fail a request.
//
// A view is written back under the generation observed before the query, so
// a scan that lands while the query runs leaves the written entry unreachable.
// When the generation could not be read nothing is written back.
type recordService struct {
	latenessRepository store.LatenessRepository
	cache              cache.HistoryCache
	logger             *logger.Logger
}

// NewRecordService constructs a RecordService. A nil historyCache disables
// caching.
func NewRecordService(latenessRepository store.LatenessRepository, historyCache cache.HistoryCache, logger *logger.Logger) RecordService {
	if historyCache == nil {
		historyCache = cache.Nop()
	}

	return &recordService{
		latenessRepository: latenessRepository,
		cache:              historyCache,
		logger:             logger,
	}
}

func (s *recordService) RecordScan(ctx context.Context, scan models.ScanRequest) error {
	log := logger.FromContext(ctx).WithStudent(scan.StudentID)

	if err := s.latenessRepository.CreateRecord(ctx, scan); err != nil {
		return fmt.Errorf("error recording lateness: %w", err)
	}

	if err := s.cache.Invalidate(ctx, scan.StudentID); err != nil {
		log.Warn().Err(err).Msg("history cache invalidation failed")
	}

	return nil
}

func (s *recordService) History(ctx context.Context, studentID string) ([]models.LatenessRecord, error) {
	log := logger.FromContext(ctx).WithStudent(studentID)

	cached, gen, ok, cacheErr := s.cache.History(ctx, studentID)
	if cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("history cache read failed")
	}
	if ok {
		return cached, nil
	}

	records, err := s.latenessRepository.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading history: %w", err)
	}

	if cacheErr == nil {
		if err = s.cache.SetHistory(ctx, studentID, gen, records); err != nil {
			log.Warn().Err(err).Msg("history cache write failed")
		}
	}

	return records, nil
}

func (s *recordService) AdminRecords(ctx context.Context) ([]models.AdminRecord, error) {
	log := logger.FromContext(ctx)

	cached, gen, ok, cacheErr := s.cache.AdminRecords(ctx)
	if cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("admin cache read failed")
	}
	if ok {
		return cached, nil
	}

	records, err := s.latenessRepository.ListAdminRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading admin records: %w", err)
	}

	if cacheErr == nil {
		if err = s.cache.SetAdminRecords(ctx, gen, records); err != nil {
			log.Warn().Err(err).Msg("admin cache write failed")
		}
	}

	return records, nil
}
