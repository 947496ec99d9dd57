package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/bhawani/internal/models"
)

type fakeContacts struct {
	rows   []models.ContactMessage
	nextID int64
	err    error
}

func (f *fakeContacts) CreateContactMessage(_ context.Context, msg *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	msg.ID = f.nextID
	f.rows = append(f.rows, *msg)
	return nil
}

type fakeNotifier struct {
	sent []models.ContactMessage
	err  error
}

func (f *fakeNotifier) NotifyContact(_ context.Context, msg models.ContactMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func newContactApp(contacts *fakeContacts, notifier *fakeNotifier) *fiber.App {
	app := newTestApp()
	app.Post("/api/contact", NewContactHandler(contacts, notifier, zap.NewNop()).Submit)
	return app
}

const validContact = `{"name":"Ravi","email":"ravi@example.com","phone":"+91 98765 43210","subject":"Quote","message":"Need a warehouse."}`

func TestContactRejectsMissingPhone(t *testing.T) {
	contacts := &fakeContacts{}
	notifier := &fakeNotifier{}
	resp := doJSON(t, newContactApp(contacts, notifier), http.MethodPost, "/api/contact",
		`{"name":"Ravi","email":"ravi@example.com","subject":"Quote","message":"Need a warehouse."}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "All fields are required", body["error"])
	assert.Empty(t, contacts.rows)
	assert.Empty(t, notifier.sent)
}

func TestContactRejectsBlankFields(t *testing.T) {
	contacts := &fakeContacts{}
	resp := doJSON(t, newContactApp(contacts, &fakeNotifier{}), http.MethodPost, "/api/contact",
		`{"name":"  ","email":"ravi@example.com","phone":"1","subject":"Quote","message":"Hi"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, contacts.rows)
}

func TestContactStoresAndNotifies(t *testing.T) {
	contacts := &fakeContacts{nextID: 41}
	notifier := &fakeNotifier{}
	app := newContactApp(contacts, notifier)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(validContact))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("User-Agent", "test-agent")
	resp, err := app.Test(req)
	require.NoError(t, err)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(42), body["id"])

	require.Len(t, contacts.rows, 1)
	assert.Equal(t, int64(42), contacts.rows[0].ID)
	assert.Equal(t, "203.0.113.9", contacts.rows[0].IPAddress)
	assert.Equal(t, "test-agent", contacts.rows[0].UserAgent)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, int64(42), notifier.sent[0].ID)
}

func TestContactSucceedsWhenNotificationFails(t *testing.T) {
	contacts := &fakeContacts{}
	notifier := &fakeNotifier{err: errors.New("mailjet down")}
	resp := doJSON(t, newContactApp(contacts, notifier), http.MethodPost, "/api/contact", validContact)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, float64(1), body["id"])
	assert.Len(t, contacts.rows, 1)
}

func TestContactInsertFailure(t *testing.T) {
	contacts := &fakeContacts{err: errors.New("connection reset")}
	notifier := &fakeNotifier{}
	resp := doJSON(t, newContactApp(contacts, notifier), http.MethodPost, "/api/contact", validContact)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, readBody(t, resp), "connection reset")
	assert.Empty(t, notifier.sent)
}

func TestContactUnknownOrigin(t *testing.T) {
	contacts := &fakeContacts{}
	resp := doJSON(t, newContactApp(contacts, &fakeNotifier{}), http.MethodPost, "/api/contact", validContact)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, contacts.rows, 1)
	assert.Equal(t, "unknown", contacts.rows[0].IPAddress)
}
