package service

import (
	"fmt"

	"github.com/MKhiriev/lateness-tracker/internal/cache"
	"github.com/MKhiriev/lateness-tracker/internal/config"
	"github.com/MKhiriev/lateness-tracker/internal/crypto"
	"github.com/MKhiriev/lateness-tracker/internal/logger"
	"github.com/MKhiriev/lateness-tracker/internal/store"
)

type Services struct {
	AuthService    AuthService
	RecordService  RecordService
	AppInfoService AppInfoService
	Authorizer     Authorizer
}

func NewServices(storages *store.Storages, historyCache cache.HistoryCache, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.StudentRepository, crypto.NewBcryptHasher(cfg.App.BcryptCost), logger),
		RecordService:  NewRecordService(storages.LatenessRepository, historyCache, logger),
		AppInfoService: appInfoService,
		Authorizer:     NewAllowAllAuthorizer(),
	}, nil
}
