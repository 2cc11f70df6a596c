package router

import (
	"lodgehub/internal/handlers/auth"
	"lodgehub/internal/handlers/billing"
	"lodgehub/internal/handlers/booking"
	"lodgehub/internal/handlers/calendar"
	"lodgehub/internal/handlers/cancel"
	"lodgehub/internal/handlers/charge"
	"lodgehub/internal/handlers/defaultvalue"
	"lodgehub/internal/handlers/history"
	"lodgehub/internal/handlers/ledger"
	"lodgehub/internal/handlers/peakhour"
	"lodgehub/internal/handlers/room"
	"lodgehub/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Room         room.Handler
	PeakHour     peakhour.Handler
	DefaultValue defaultvalue.Handler
	Booking      booking.Handler
	History      history.Handler
	Calendar     calendar.Handler
	Billing      billing.Handler
	Cancel       cancel.Handler
	Charge       charge.Handler
	Ledger       ledger.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.PeakHour.Router(routerGroup)
		r.DomainHandlers.DefaultValue.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.History.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
		r.DomainHandlers.Billing.Router(routerGroup)
		r.DomainHandlers.Cancel.Router(routerGroup)
		r.DomainHandlers.Charge.Router(routerGroup)
		r.DomainHandlers.Ledger.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
