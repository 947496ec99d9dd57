package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/bhawani/internal/content"
	"github.com/example/bhawani/internal/media"
	"github.com/example/bhawani/internal/metrics"
	"github.com/example/bhawani/internal/store"
)

// ColumnUpdater persists a single-column edit.
type ColumnUpdater interface {
	UpdateColumn(ctx context.Context, u store.ColumnUpdate) (map[string]interface{}, error)
}

// ContentHandler serves the PATCH endpoints of every content family.
type ContentHandler struct {
	store ColumnUpdater
	media media.Rewriter
	log   *zap.Logger
}

// NewContentHandler constructs ContentHandler.
func NewContentHandler(store ColumnUpdater, rw media.Rewriter, log *zap.Logger) *ContentHandler {
	return &ContentHandler{store: store, media: rw, log: log}
}

type updateRequest struct {
	Field string `json:"field"`
	URL   string `json:"url"`
	Value string `json:"value"`
}

// Update returns the mutation handler for the family registered under key.
func (h *ContentHandler) Update(key string) fiber.Handler {
	fam, ok := content.Lookup(key)
	if !ok {
		panic("handlers: unknown content family " + key)
	}

	return func(c *fiber.Ctx) error {
		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		value, missing := req.URL, "Field and URL are required"
		if fam.ValueKey == "value" {
			value, missing = req.Value, "Field and value are required"
		}
		if req.Field == "" || value == "" {
			return fiber.NewError(fiber.StatusBadRequest, missing)
		}

		typ, ok := fam.FieldType(req.Field)
		if !ok {
			metrics.ContentUpdates.WithLabelValues(fam.Key, "rejected").Inc()
			return fiber.NewError(fiber.StatusBadRequest, "Invalid field")
		}
		if err := content.ValidateValue(typ, value, h.media); err != nil {
			metrics.ContentUpdates.WithLabelValues(fam.Key, "rejected").Inc()
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		update := store.ColumnUpdate{
			Table:          fam.Table,
			Column:         req.Field,
			Value:          value,
			Singleton:      fam.Scope == content.ScopeSingleton,
			TouchUpdatedAt: fam.TouchUpdatedAt,
		}
		if fam.Scope == content.ScopeByID {
			id, err := strconv.ParseInt(c.Params("id"), 10, 64)
			if err != nil || id <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "invalid id")
			}
			update.ID = id
		}

		row, err := h.store.UpdateColumn(c.UserContext(), update)
		if errors.Is(err, store.ErrNotFound) {
			metrics.ContentUpdates.WithLabelValues(fam.Key, "not_found").Inc()
			return fiber.NewError(fiber.StatusNotFound, fam.NotFound)
		}
		if err != nil {
			metrics.ContentUpdates.WithLabelValues(fam.Key, "error").Inc()
			h.log.Error("content update failed",
				zap.String("family", fam.Key),
				zap.String("field", req.Field),
				zap.Int64("id", update.ID),
				zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update content")
		}

		metrics.ContentUpdates.WithLabelValues(fam.Key, "ok").Inc()
		return c.JSON(row)
	}
}
