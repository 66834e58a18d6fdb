package service

import (
	"github.com/MKhiriev/go-study-planner/internal/config"
	"github.com/MKhiriev/go-study-planner/internal/logger"
	"github.com/MKhiriev/go-study-planner/internal/store"
	"github.com/MKhiriev/go-study-planner/internal/utils"
	"github.com/MKhiriev/go-study-planner/internal/validators"
)

type ClientServices struct {
	Entities  EntityStore
	Session   SessionService
	Dashboard DashboardService
	Calendar  CalendarService
	Validator validators.Validator
	Limits    config.ClientDashboard
}

func NewClientServices(storages *store.ClientStorages, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	clock := utils.SystemClock{}
	entities := NewEntityStore(storages.Snapshots, utils.NewUUIDGenerator(), clock, log)
	session := NewSessionService(entities, log)

	return &ClientServices{
		Entities:  entities,
		Session:   session,
		Dashboard: NewDashboardService(entities, session, cfg.Dashboard, cfg.Calendar.Location, clock),
		Calendar:  NewCalendarService(entities, cfg.Calendar, clock, log),
		Validator: validators.NewDraftValidator(),
		Limits:    cfg.Dashboard,
	}
}
