package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registrations_created_total",
		Help: "Registrations accepted through the public form.",
	})
	RegistrationsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registrations_updated_total",
		Help: "Admin edits applied.",
	})
	RegistrationsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registrations_deleted_total",
		Help: "Admin deletions applied.",
	})
	ExportsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "registration_exports_total",
		Help: "CSV exports served to admins.",
	})
)
