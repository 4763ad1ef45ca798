package service

import (
	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/config"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/internal/validators"
)

// ClientServices groups the client services around one cache and session.
type ClientServices struct {
	Session       SessionService
	Auth          ClientAuthService
	Media         ClientMediaService
	Members       ClientMembersService
	Invites       ClientInvitesService
	Genealogy     ClientGenealogyService
	Audit         ClientAuditService
	Vaults        ClientVaultsService
	Notifications NotificationCenter
	PollJob       NotificationPollJob

	Cache *query.Client
}

// NewClientServices wires every client service. A logout, explicit or
// forced by the gateway, clears the cache, forgets the notifications and
// stops polling.
func NewClientServices(cfg *config.ClientConfig, api adapter.ServerAdapter, session SessionService, cache *query.Client, notifier Notifier, log *logger.Logger) *ClientServices {
	d := NewDeps(cache, session, notifier, validators.NewRequestValidator(), log)

	notifications := NewNotificationCenter(d, api, cfg.Workers.PollLimit, WithAuthCheck(session.IsAuthenticated))
	pollJob := NewNotificationPollJob(notifications)

	s := &ClientServices{
		Session:       session,
		Auth:          NewClientAuthService(d, api, session),
		Media:         NewClientMediaService(d, api, cfg.Query.MediaPageSize),
		Members:       NewClientMembersService(d, api, session, cfg.Query.MembersPageSize),
		Invites:       NewClientInvitesService(d, api),
		Genealogy:     NewClientGenealogyService(d, api, cfg.Query.ProfilesPageSize),
		Audit:         NewClientAuditService(d, api, cfg.Query.AuditPageSize),
		Vaults:        NewClientVaultsService(d, api),
		Notifications: notifications,
		PollJob:       pollJob,
		Cache:         cache,
	}

	session.OnLogout(func() {
		// a forced logout can run on the poll goroutine itself, which
		// Stop waits for
		go pollJob.Stop()
		cache.Clear()
		notifications.Reset()
		log.Debug().Str("func", "ClientServices.OnLogout").Msg("client state cleared")
	})

	return s
}
