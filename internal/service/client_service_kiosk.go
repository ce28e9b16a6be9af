package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/lateness-tracker/internal/adapter"
	"github.com/MKhiriev/lateness-tracker/models"
)

type kioskService struct {
	adapter adapter.ServerAdapter

	mu      sync.RWMutex
	current *models.StudentView
}

// NewKioskService builds a KioskService talking to the server through
// serverAdapter. No student is logged in initially.
func NewKioskService(serverAdapter adapter.ServerAdapter) KioskService {
	return &kioskService{adapter: serverAdapter}
}

func (k *kioskService) Register(ctx context.Context, student models.Student) error {
	if err := k.adapter.Register(ctx, student); err != nil {
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	return nil
}

func (k *kioskService) Login(ctx context.Context, email, password string) (models.StudentView, error) {
	student, err := k.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		if mapped := mapAdapterError(err); mapped != err {
			return models.StudentView{}, mapped
		}
		return models.StudentView{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	k.mu.Lock()
	k.current = &student
	k.mu.Unlock()

	return student, nil
}

func (k *kioskService) Logout() {
	k.mu.Lock()
	k.current = nil
	k.mu.Unlock()
}

func (k *kioskService) Current() (models.StudentView, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.current == nil {
		return models.StudentView{}, false
	}
	return *k.current, true
}

func (k *kioskService) RecordLateness(ctx context.Context, reason string, minutesLate int) error {
	student, ok := k.Current()
	if !ok {
		return ErrNotLoggedIn
	}

	err := k.adapter.Scan(ctx, models.ScanRequest{
		StudentID:   student.StudentID,
		Reason:      reason,
		MinutesLate: minutesLate,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanOnServer, err)
	}

	return nil
}

func (k *kioskService) History(ctx context.Context) ([]models.LatenessRecord, error) {
	student, ok := k.Current()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	records, err := k.adapter.History(ctx, student.StudentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrHistoryOnServer, err)
	}

	return records, nil
}

func (k *kioskService) ServerVersion(ctx context.Context) (string, error) {
	return k.adapter.Version(ctx)
}
