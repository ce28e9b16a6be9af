package service

import (
	"github.com/MKhiriev/lateness-tracker/internal/adapter"
)

type ClientServices struct {
	KioskService KioskService
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		KioskService: NewKioskService(serverAdapter),
	}
}
