// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
)

// notFound answers unknown routes with the structured 404 payload, so the
// gateway reads the same {"detail"} body it gets for unknown resources.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
}

// methodNotAllowed answers a known route requested with the wrong method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, fmt.Sprintf("Method %q not allowed.", r.Method), http.StatusMethodNotAllowed)
}
