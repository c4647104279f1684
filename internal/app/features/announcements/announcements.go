// internal/app/features/announcements/announcements.go
package announcements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	announcementstore "github.com/dalemusser/schoolhub/internal/app/store/announcements"
	"github.com/dalemusser/schoolhub/internal/app/system/datewindow"
	"github.com/dalemusser/schoolhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/schoolhub/internal/app/system/httpjson"
	"github.com/dalemusser/schoolhub/internal/app/system/timeouts"
	"github.com/dalemusser/schoolhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// timestampLayout is the format for created_at/updated_at.
const timestampLayout = time.RFC3339

// Error messages returned to callers. Validation detail is deliberately
// withheld; it goes to the server log instead.
const (
	msgInvalidRequest     = "invalid request"
	msgRequestFailed      = "request failed"
	msgNotFound           = "announcement not found"
	msgAuthRequired       = "authentication required"
	msgInvalidCredentials = "invalid teacher credentials"
	msgDeleted            = "announcement deleted"
)

// requireTeacher checks the teacher_username query parameter against
// the directory. It writes the error response itself and returns false
// if the caller is not a known teacher.
func (h *Handler) requireTeacher(w http.ResponseWriter, r *http.Request) bool {
	username := r.URL.Query().Get("teacher_username")
	if username == "" {
		httpjson.Error(w, http.StatusUnauthorized, msgAuthRequired)
		return false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ok, err := h.Directory.Exists(ctx, username)
	if err != nil {
		h.Log.Error("teacher directory lookup failed", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusInternalServerError, msgRequestFailed)
		return false
	}
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, msgInvalidCredentials)
		return false
	}
	return true
}

// ListActive handles GET /announcements. Public: returns the
// announcements whose date window includes today, soonest-ending
// first.
func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("failed to list announcements", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusInternalServerError, msgRequestFailed)
		return
	}

	today := h.Now()
	active := make([]models.Announcement, 0, len(all))
	for _, a := range all {
		if datewindow.Active(a.StartDate, a.EndDate, today) {
			active = append(active, a)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return datewindow.SortKey(active[i].EndDate) < datewindow.SortKey(active[j].EndDate)
	})

	httpjson.Write(w, http.StatusOK, active)
}

// ListAll handles GET /announcements/all. Teachers only: returns every
// announcement, oldest first.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	if !h.requireTeacher(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Error("failed to list announcements", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusInternalServerError, msgRequestFailed)
		return
	}

	// Missing created_at sorts first as the empty string.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt < all[j].CreatedAt
	})

	if all == nil {
		all = []models.Announcement{}
	}
	httpjson.Write(w, http.StatusOK, all)
}

type createRequest struct {
	Message   string  `json:"message"`
	StartDate *string `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Level     string  `json:"level"`
}

// cleanMessage trims and strips markup from a submitted message and
// reports whether the result is within the allowed length.
func cleanMessage(raw string) (string, bool) {
	msg := htmlsanitize.Strip(strings.TrimSpace(raw))
	n := utf8.RuneCountInString(msg)
	return msg, n >= 1 && n <= models.MessageMaxLen
}

// Create handles POST /announcements. Teachers only.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.requireTeacher(w, r) {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	message, ok := cleanMessage(req.Message)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	endDay, ok := datewindow.Parse(req.EndDate)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	// An empty start_date means the same as omitting it: the window has
	// no lower bound and the field is stored as null.
	var start *string
	if req.StartDate != nil && *req.StartDate != "" {
		startDay, ok := datewindow.Parse(*req.StartDate)
		if !ok || startDay.After(endDay) {
			httpjson.Error(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}
		start = req.StartDate
	}

	now := h.Now().UTC().Format(timestampLayout)
	a := models.Announcement{
		ID:        models.NewAnnouncementID(),
		Message:   message,
		StartDate: start,
		EndDate:   req.EndDate,
		Level:     models.NormalizeLevel(req.Level),
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Insert(ctx, a); err != nil {
		h.Log.Error("failed to create announcement", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusInternalServerError, msgRequestFailed)
		return
	}

	httpjson.Write(w, http.StatusOK, a)
}

type updateRequest struct {
	Message   *string `json:"message"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Level     *string `json:"level"`
}

// Update handles PUT /announcements/{id}. Teachers only. Only supplied
// fields change; start_date supplied as "" clears the stored value.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if !h.requireTeacher(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	ch := announcementstore.Changes{
		UpdatedAt: h.Now().UTC().Format(timestampLayout),
	}

	if req.Message != nil {
		message, ok := cleanMessage(*req.Message)
		if !ok {
			httpjson.Error(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}
		ch.Message = &message
	}
	if req.StartDate != nil {
		if *req.StartDate != "" {
			if _, ok := datewindow.Parse(*req.StartDate); !ok {
				httpjson.Error(w, http.StatusBadRequest, msgInvalidRequest)
				return
			}
		}
		ch.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		if _, ok := datewindow.Parse(*req.EndDate); !ok {
			httpjson.Error(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}
		ch.EndDate = req.EndDate
	}
	if req.Level != nil {
		level := models.NormalizeLevel(*req.Level)
		ch.Level = &level
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	existing, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, msgNotFound)
			return
		}
		h.Log.Error("failed to load announcement", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusInternalServerError, msgRequestFailed)
		return
	}

	// Re-validate the merged result: the record must keep a parseable
	// end date, and the window must stay ordered.
	mergedEnd := existing.EndDate
	if ch.EndDate != nil {
		mergedEnd = *ch.EndDate
	}
	mergedStart := existing.StartDate
	if ch.StartDate != nil {
		if *ch.StartDate == "" {
			mergedStart = nil
		} else {
			mergedStart = ch.StartDate
		}
	}
	endDay, ok := datewindow.Parse(mergedEnd)
	if !ok {
		httpjson.Error(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if mergedStart != nil {
		if startDay, ok := datewindow.Parse(*mergedStart); ok && startDay.After(endDay) {
			httpjson.Error(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}
	}

	if err := h.Store.Update(ctx, id, ch); err != nil {
		h.Log.Error("failed to update announcement", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusInternalServerError, msgRequestFailed)
		return
	}

	updated, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("failed to reload announcement", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusInternalServerError, msgRequestFailed)
		return
	}

	httpjson.Write(w, http.StatusOK, updated)
}

// Delete handles DELETE /announcements/{id}. Teachers only. Deletion is
// permanent; there is no soft delete.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.requireTeacher(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("failed to delete announcement", zap.Error(err), zap.String("path", r.URL.Path))
		httpjson.Error(w, http.StatusInternalServerError, msgRequestFailed)
		return
	}
	if count == 0 {
		httpjson.Error(w, http.StatusNotFound, msgNotFound)
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"message": msgDeleted})
}
