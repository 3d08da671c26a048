package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/termstamps/internal/domain"
	"github.com/heartmarshall/termstamps/internal/service/history"
	"github.com/heartmarshall/termstamps/internal/transport/middleware"
)

type termLister interface {
	ListTerms(ctx context.Context, taxonomy string, limit, offset int) ([]domain.Term, error)
	ListTaxonomies(ctx context.Context) ([]domain.Taxonomy, error)
}

type historyReader interface {
	Created(ctx context.Context, termID int64) (*history.Record, error)
	LastModified(ctx context.Context, termID int64) (*history.Record, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	terms   termLister
	history historyReader
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(terms termLister, hist historyReader, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		terms:   terms,
		history: hist,
		log:     logger.With("handler", "admin"),
	}
}

// TermColumn is one row of the admin term table.
type TermColumn struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Created      string `json:"created"`
	LastModified string `json:"last_modified"`
}

// TermColumns lists terms of a taxonomy with their created and last
// modified times. Times are "" when nothing usable was recorded.
// GET /admin/terms?taxonomy=category&limit=50&offset=0
func (h *AdminHandler) TermColumns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := middleware.RequireAdmin(ctx); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		writeError(w, http.StatusForbidden, "admin access required")
		return
	}

	q := r.URL.Query()
	taxonomy := q.Get("taxonomy")
	if taxonomy == "" {
		writeError(w, http.StatusBadRequest, "taxonomy is required")
		return
	}
	limit, ok := intParam(q.Get("limit"), 50)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	offset, ok := intParam(q.Get("offset"), 0)
	if !ok {
		writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}

	visible, err := h.showsUI(ctx, taxonomy)
	if err != nil {
		h.internalError(w, r, "list taxonomies", err)
		return
	}
	if !visible {
		writeError(w, http.StatusNotFound, "taxonomy not found")
		return
	}

	terms, err := h.terms.ListTerms(ctx, taxonomy, limit, offset)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		h.internalError(w, r, "list terms", err)
		return
	}

	rows := make([]TermColumn, 0, len(terms))
	for _, t := range terms {
		row := TermColumn{ID: t.ID, Name: t.Name, Slug: t.Slug}

		created, err := h.history.Created(ctx, t.ID)
		if err != nil {
			h.internalError(w, r, "read created", err)
			return
		}
		row.Created = displayTime(created)

		modified, err := h.history.LastModified(ctx, t.ID)
		if err != nil {
			h.internalError(w, r, "read last modified", err)
			return
		}
		row.LastModified = displayTime(modified)

		rows = append(rows, row)
	}

	writeJSON(w, http.StatusOK, rows)
}

func (h *AdminHandler) showsUI(ctx context.Context, name string) (bool, error) {
	taxonomies, err := h.terms.ListTaxonomies(ctx)
	if err != nil {
		return false, err
	}
	for _, tax := range taxonomies {
		if tax.Name == name {
			return tax.ShowUI, nil
		}
	}
	return false, nil
}

func (h *AdminHandler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.log.ErrorContext(r.Context(), op, slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func displayTime(rec *history.Record) string {
	if rec == nil || rec.Time == nil {
		return ""
	}
	return *rec.Time
}

func intParam(v string, def int) (int, bool) {
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}
