package leads

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"pet-insurance-leads/internal/ports/tickets"

	"github.com/go-chi/chi/v5"
)

const maxSubmitBody = 1 << 20

// RegisterRoutes monta submit (público) y export (detrás de adminOnly).
func RegisterRoutes(r chi.Router, svc *Service, adminOnly func(http.Handler) http.Handler) {
	// Acepta cualquier método para poder responder 405 con el cuerpo propio.
	r.HandleFunc("/api/submit", submitHandler(svc))

	r.With(adminOnly).Get("/api/admin/export", exportHandler(svc))
}

type submitResponse struct {
	OK     bool `json:"ok"`
	Number int  `json:"number"`
}

type errorResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// submitHandler godoc
// @Summary Registrar lead
// @Description Normaliza el formulario y lo guarda como un ticket. `type` debe ser `phone` u `online`.
// @Tags leads
// @Accept json
// @Produce json
// @Param payload body Submission true "Formulario; requestedAt se completa en el servidor si falta"
// @Success 200 {object} submitResponse
// @Failure 400 {object} errorResponse "invalid json / Invalid type"
// @Failure 405 {object} errorResponse "POST only"
// @Failure 500 {object} errorResponse "error del store"
// @Failure 504 {object} errorResponse "timeout del store"
// @Router /api/submit [post]
func submitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST only"})
			return
		}

		var raw RawSubmission
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSubmitBody)).Decode(&raw); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		res, err := svc.Submit(r.Context(), raw)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid type"})
			default:
				writeStoreError(w, err, false)
			}
			return
		}

		writeJSON(w, http.StatusOK, submitResponse{OK: true, Number: res.Number})
	}
}

// exportHandler godoc
// @Summary Exportar leads
// @Description Reconstruye los leads desde los últimos 100 tickets. Requiere el token de admin (`token` en query o `Authorization: Bearer <token>`).
// @Tags admin
// @Produce json
// @Produce text/csv
// @Param token query string false "Token de admin"
// @Param format query string false "json (default) o csv"
// @Param download query string false "1 o true para descargar como archivo"
// @Success 200 {object} ExportResponse
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 504 {object} errorResponse "timeout del store"
// @Router /api/admin/export [get]
func exportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		format := strings.ToLower(strings.TrimSpace(q.Get("format")))
		download := wantsDownload(q.Get("download"))

		records, err := svc.Export(r.Context())
		if err != nil {
			writeStoreError(w, err, true)
			return
		}

		if format == "csv" {
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			if download {
				w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename(svc.now())+`"`)
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(RenderCSV(records))
			return
		}

		writeJSON(w, http.StatusOK, NewExportResponse(records))
	}
}

func wantsDownload(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true":
		return true
	default:
		return false
	}
}

// writeStoreError traduce errores del store a HTTP.
// forwardStatus: el export reenvía el status del upstream; submit responde 500.
func writeStoreError(w http.ResponseWriter, err error, forwardStatus bool) {
	var se *tickets.StatusError
	switch {
	case errors.Is(err, tickets.ErrTimeout):
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "gateway timeout"})
	case errors.As(err, &se):
		status := http.StatusInternalServerError
		if forwardStatus && se.StatusCode >= 400 && se.StatusCode <= 599 {
			status = se.StatusCode
		}
		writeJSON(w, status, errorResponse{
			Error:  "upstream error",
			Status: se.StatusCode,
			Detail: se.Detail,
		})
	case errors.Is(err, tickets.ErrUpstream):
		status := http.StatusInternalServerError
		if forwardStatus {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, errorResponse{Error: "upstream error", Detail: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:  "internal error",
			Detail: err.Error(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
