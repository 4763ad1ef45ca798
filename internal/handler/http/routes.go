package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getServerVersion)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/users/register/", h.register)
			r.Post("/users/login/", h.login)
			r.Post("/users/token/refresh/", h.refreshToken)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users/me/", h.me)
			r.Patch("/users/me/", h.updateMe)

			r.Get("/vaults/", h.listVaults)
			r.Route("/vaults/{vaultID}", func(r chi.Router) {
				r.Get("/", h.getVault)
				r.Get("/members/", h.listMembers)
				r.Patch("/members/{membershipID}/", h.updateMemberRole)
				r.Delete("/members/{membershipID}/", h.removeMember)
				r.Post("/invite/", h.inviteMember)
				r.Post("/leave/", h.leaveVault)
				r.Post("/transfer-ownership/", h.transferOwnership)
				r.Get("/invites/shareable/", h.listShareableInvites)
				r.Post("/invites/shareable/", h.createShareableInvite)
			})
			r.Patch("/invites/shareable/{inviteID}/revoke/", h.revokeShareableInvite)
			r.Delete("/invites/shareable/{inviteID}/", h.deleteShareableInvite)
			r.Post("/join/", h.joinVault)

			r.Get("/media/", h.listMedia)
			r.Post("/media/", h.uploadMedia)
			r.Get("/media/favorites/", h.listFavoriteMedia)
			r.Get("/media/filters/", h.mediaFilters)
			r.Get("/media/files/{fileID}/", h.downloadFile)
			r.Get("/media/{mediaID}/", h.getMedia)
			r.Patch("/media/{mediaID}/", h.updateMedia)
			r.Delete("/media/{mediaID}/", h.deleteMedia)
			r.Post("/media/{mediaID}/favorite/", h.toggleFavorite)

			r.Get("/notifications/", h.listNotifications)
			r.Delete("/notifications/", h.clearNotifications)
			r.Post("/notifications/read-all/", h.markAllNotificationsRead)
			r.Get("/notifications/preferences/", h.notificationPreferences)
			r.Patch("/notifications/preferences/", h.updateNotificationPreferences)
			r.Delete("/notifications/{notificationID}/", h.dismissNotification)
			r.Post("/notifications/{notificationID}/read/", h.markNotificationRead)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
