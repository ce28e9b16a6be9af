// Package cache holds the optional read-through cache in front of the
// lateness history views.
package cache

import (
	"context"

	"github.com/MKhiriev/lateness-tracker/models"
)

//go:generate mockgen -source=cache.go -destination=../mock/cache_mock.go -package=mock

// HistoryCache stores rendered history and admin views. A miss is reported
// as ok == false with a nil error.
//
// Every read also reports the generation it looked under. A Set must pass
// that generation back: entries are stored per generation, so a snapshot
// loaded before an Invalidate lands under a generation no reader asks for.
type HistoryCache interface {
	History(ctx context.Context, studentID string) (records []models.LatenessRecord, gen int64, ok bool, err error)
	SetHistory(ctx context.Context, studentID string, gen int64, records []models.LatenessRecord) error

	AdminRecords(ctx context.Context) (records []models.AdminRecord, gen int64, ok bool, err error)
	SetAdminRecords(ctx context.Context, gen int64, records []models.AdminRecord) error

	// Invalidate bumps the generation of studentID's history and of the
	// admin view, both of which a new record makes stale.
	Invalidate(ctx context.Context, studentID string) error

	Ping(ctx context.Context) error
	Close() error
}

// Nop returns a cache that never hits and never fails.
func Nop() HistoryCache {
	return nopCache{}
}

type nopCache struct{}

func (nopCache) History(context.Context, string) ([]models.LatenessRecord, int64, bool, error) {
	return nil, 0, false, nil
}

func (nopCache) SetHistory(context.Context, string, int64, []models.LatenessRecord) error {
	return nil
}

func (nopCache) AdminRecords(context.Context) ([]models.AdminRecord, int64, bool, error) {
	return nil, 0, false, nil
}

func (nopCache) SetAdminRecords(context.Context, int64, []models.AdminRecord) error { return nil }
func (nopCache) Invalidate(context.Context, string) error                         { return nil }
func (nopCache) Ping(context.Context) error                                       { return nil }
func (nopCache) Close() error                                                     { return nil }
