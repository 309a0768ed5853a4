package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mwhite7112/woodpantry-scan/internal/db"
	"github.com/mwhite7112/woodpantry-scan/internal/deeplink"
	"github.com/mwhite7112/woodpantry-scan/internal/events"
	"github.com/mwhite7112/woodpantry-scan/internal/logging"
	"github.com/mwhite7112/woodpantry-scan/internal/openfoodfacts"
	"github.com/mwhite7112/woodpantry-scan/internal/service"
)

var validate = validator.New()

// NewRouter wires up all routes with the provided Service. broker may be nil,
// in which case /events is not served.
func NewRouter(svc *service.Service, broker *events.Broker) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Get("/catalog", handleCatalog(svc))

	r.Post("/scans", handleScan(svc))
	r.Get("/products/{barcode}", handleInspect(svc))

	r.Get("/blacklist", handleListBlacklist(svc))
	r.Post("/blacklist", handleAddBlacklist(svc))
	r.Post("/blacklist/move", handleMoveBlacklist(svc))
	r.Delete("/blacklist/{index}", handleRemoveBlacklist(svc))

	r.Get("/history", handleListHistory(svc))
	r.Delete("/history", handleClearHistory(svc))
	r.Delete("/history/at/{index}", handleRemoveHistoryAt(svc))
	r.Delete("/history/{id}", handleRemoveHistory(svc))

	r.Post("/links/resolve", handleResolveLink(svc))

	if broker != nil {
		r.Get("/events", handleEvents(broker))
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- catalog ---

// handleCatalog always answers with a CatalogSearch; without q its matches
// are the whole catalog.
func handleCatalog(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, svc.SearchCatalog(r.URL.Query().Get("q")))
	}
}

// --- scans ---

type scanRequest struct {
	Barcode string `json:"barcode" validate:"required"`
}

type scanResponse struct {
	service.ScanResult
	Record historyRecord `json:"record"`
}

func handleScan(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scanRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		result, err := svc.Scan(r.Context(), req.Barcode)
		if err != nil {
			scanError(w, err)
			return
		}
		jsonCreated(w, newScanResponse(result))
	}
}

func handleInspect(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inspection, err := svc.Inspect(r.Context(), chi.URLParam(r, "barcode"))
		if err != nil {
			scanError(w, err)
			return
		}
		jsonOK(w, inspection)
	}
}

func newScanResponse(result service.ScanResult) scanResponse {
	return scanResponse{ScanResult: result, Record: newHistoryRecord(result.Record)}
}

type lookupErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	Retryable bool   `json:"retryable"`
}

// scanError maps validation and lookup failures to a response. Lookup
// failures carry their kind so clients can offer a retry.
func scanError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidBarcode) {
		jsonError(w, "invalid barcode", http.StatusBadRequest)
		return
	}

	var lookupErr *openfoodfacts.Error
	if !errors.As(err, &lookupErr) {
		jsonError(w, "scan failed", http.StatusInternalServerError, err)
		return
	}

	status := http.StatusBadGateway
	switch lookupErr.Kind {
	case openfoodfacts.KindNotFound, openfoodfacts.KindUnavailable:
		status = http.StatusNotFound
	default:
		slog.Error("product lookup failed", "status", status, "error", err)
	}
	writeJSON(w, status, lookupErrorResponse{
		Error:     lookupErr.Error(),
		Kind:      lookupErr.Kind.String(),
		Retryable: lookupErr.Retryable(),
	})
}

// --- blacklist ---

func handleListBlacklist(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.ListBlacklist(r.Context())
		if err != nil {
			jsonError(w, "failed to list blacklist", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, entries)
	}
}

type addBlacklistRequest struct {
	Name  string   `json:"name" validate:"max=200"`
	Names []string `json:"names" validate:"max=500,dive,max=200"`
}

type addBlacklistResponse struct {
	Added     []db.BlacklistEntry `json:"added"`
	Blacklist []db.BlacklistEntry `json:"blacklist"`
}

func handleAddBlacklist(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addBlacklistRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		names := req.Names
		if req.Name != "" {
			names = append([]string{req.Name}, names...)
		}
		if len(names) == 0 {
			jsonError(w, "name or names is required", http.StatusBadRequest)
			return
		}

		added, err := svc.AddBlacklistMany(r.Context(), names)
		if err != nil {
			jsonError(w, "failed to add to blacklist", http.StatusInternalServerError, err)
			return
		}
		entries, err := svc.ListBlacklist(r.Context())
		if err != nil {
			jsonError(w, "failed to list blacklist", http.StatusInternalServerError, err)
			return
		}

		resp := addBlacklistResponse{Added: added, Blacklist: entries}
		if len(added) == 0 {
			jsonOK(w, resp)
			return
		}
		jsonCreated(w, resp)
	}
}

type moveBlacklistRequest struct {
	From *int `json:"from" validate:"required,min=0"`
	To   *int `json:"to" validate:"required,min=0"`
}

// handleMoveBlacklist serves POST /blacklist/move {"from","to"}. to is the
// index the entry occupies afterwards, so {"from":0,"to":2} on [a b c] yields
// [b c a]; it is not a drop position counted before removal. Responds with the
// reordered blacklist.
func handleMoveBlacklist(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req moveBlacklistRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if err := svc.MoveBlacklist(r.Context(), *req.From, *req.To); err != nil {
			mutationError(w, "failed to move blacklist entry", err)
			return
		}
		entries, err := svc.ListBlacklist(r.Context())
		if err != nil {
			jsonError(w, "failed to list blacklist", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, entries)
	}
}

func handleRemoveBlacklist(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := indexParam(w, r)
		if !ok {
			return
		}
		if err := svc.RemoveBlacklistAt(r.Context(), index); err != nil {
			mutationError(w, "failed to remove blacklist entry", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// --- history ---

// historyRecord is a stored record plus the link that rescans its product.
type historyRecord struct {
	db.HistoryRecord
	Link string `json:"link"`
}

func newHistoryRecord(rec db.HistoryRecord) historyRecord {
	return historyRecord{HistoryRecord: rec, Link: deeplink.ScanLink(rec.Barcode).String()}
}

func handleListHistory(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.ListHistory(r.Context())
		if err != nil {
			jsonError(w, "failed to list history", http.StatusInternalServerError, err)
			return
		}
		out := make([]historyRecord, len(records))
		for i, rec := range records {
			out[i] = newHistoryRecord(rec)
		}
		jsonOK(w, out)
	}
}

func handleClearHistory(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearHistory(r.Context()); err != nil {
			jsonError(w, "failed to clear history", http.StatusInternalServerError, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleRemoveHistory(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := svc.RemoveHistory(r.Context(), id); err != nil {
			mutationError(w, "failed to remove history record", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleRemoveHistoryAt(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := indexParam(w, r)
		if !ok {
			return
		}
		if err := svc.RemoveHistoryAt(r.Context(), index); err != nil {
			mutationError(w, "failed to remove history record", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// --- links ---

type resolveLinkRequest struct {
	URL string `json:"url" validate:"required"`
}

type resolveLinkResponse struct {
	Link deeplink.Link `json:"link"`
	Scan *scanResponse `json:"scan,omitempty"`
}

func handleResolveLink(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resolveLinkRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		link := deeplink.Parse(req.URL)
		switch link.Kind {
		case deeplink.Invalid:
			jsonError(w, "unrecognized link", http.StatusBadRequest)
			return
		case deeplink.Scan:
			result, err := svc.Scan(r.Context(), link.Barcode)
			if err != nil {
				scanError(w, err)
				return
			}
			resp := newScanResponse(result)
			jsonCreated(w, resolveLinkResponse{Link: link, Scan: &resp})
			return
		}
		jsonOK(w, resolveLinkResponse{Link: link})
	}
}

// --- helpers ---

// decodeRequest decodes and validates a JSON body into dst, writing a 400 and
// returning false when either step fails.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		jsonError(w, "invalid request: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		jsonError(w, "invalid index", http.StatusBadRequest)
		return 0, false
	}
	return index, true
}

func mutationError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrIndexOutOfRange):
		jsonError(w, "index out of range", http.StatusNotFound)
	case errors.Is(err, service.ErrNotFound):
		jsonError(w, "not found", http.StatusNotFound)
	default:
		jsonError(w, msg, http.StatusInternalServerError, err)
	}
}

func jsonOK(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusOK, v)
}

func jsonCreated(w http.ResponseWriter, v any) {
	writeJSON(w, http.StatusCreated, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
