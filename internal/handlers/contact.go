package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/example/bhawani/internal/metrics"
	"github.com/example/bhawani/internal/models"
	"github.com/example/bhawani/internal/services"
)

const notifyTimeout = 20 * time.Second

// ContactWriter appends contact messages.
type ContactWriter interface {
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

// ContactHandler accepts public contact form submissions.
type ContactHandler struct {
	store    ContactWriter
	notifier services.ContactNotifier
	validate *validator.Validate
	log      *zap.Logger
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(store ContactWriter, notifier services.ContactNotifier, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		store:    store,
		notifier: notifier,
		validate: validator.New(),
		log:      log,
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,max=50"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *contactRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// Submit stores the message and then notifies the site owner. A stored
// message is reported as success even when the notification fails.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.trim()

	if err := h.validate.Struct(req); err != nil {
		metrics.ContactMessages.WithLabelValues("rejected").Inc()
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}

	msg := models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: clientIP(c),
		UserAgent: headerOr(c, fiber.HeaderUserAgent, "unknown"),
	}

	if err := h.store.CreateContactMessage(c.UserContext(), &msg); err != nil {
		metrics.ContactMessages.WithLabelValues("error").Inc()
		h.log.Error("contact message insert failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to send message. Please try again.")
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), notifyTimeout)
	defer cancel()
	if err := h.notifier.NotifyContact(ctx, msg); err != nil {
		metrics.ContactMessages.WithLabelValues("stored_unnotified").Inc()
		h.log.Error("contact message stored but notification failed",
			zap.Int64("message_id", msg.ID),
			zap.Error(err))
	} else {
		metrics.ContactMessages.WithLabelValues("ok").Inc()
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent successfully",
		"id":      msg.ID,
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "max" {
				return strings.ToLower(fe.Field()) + " is too long"
			}
		}
	}
	return "All fields are required"
}

func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return headerOr(c, "X-Real-Ip", "unknown")
}

func headerOr(c *fiber.Ctx, key, fallback string) string {
	if v := strings.TrimSpace(c.Get(key)); v != "" {
		return v
	}
	return fallback
}
