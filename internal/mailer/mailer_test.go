package mailer

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("requires host", func(t *testing.T) {
		_, err := New(Options{From: "kiosk@example.com"})
		require.Error(t, err)
	})

	t.Run("requires from address", func(t *testing.T) {
		_, err := New(Options{Host: "smtp.example.com"})
		require.Error(t, err)
	})

	t.Run("valid options", func(t *testing.T) {
		m, err := New(Options{Host: "smtp.example.com", Port: 587, From: "kiosk@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "kiosk@example.com", m.from)
	})
}

func newTestMailer(t *testing.T, client *http.Client) *Mailer {
	t.Helper()
	m, err := New(Options{Host: "smtp.example.com", Port: 587, From: "kiosk@example.com", HTTPClient: client})
	require.NoError(t, err)
	return m
}

func TestResolveImage(t *testing.T) {
	t.Run("data URL", func(t *testing.T) {
		m := newTestMailer(t, nil)
		raw := []byte{0x89, 0x50, 0x4e, 0x47}
		url := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

		data, mime, err := m.resolveImage(context.Background(), url)
		require.NoError(t, err)
		assert.Equal(t, raw, data)
		assert.Equal(t, "image/png", mime)
	})

	t.Run("malformed data URL", func(t *testing.T) {
		m := newTestMailer(t, nil)
		_, _, err := m.resolveImage(context.Background(), "data:image/png;base64")
		require.Error(t, err)
	})

	t.Run("remote URL", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("content-type", "image/jpeg")
			_, _ = w.Write([]byte("jpeg-bytes"))
		}))
		defer srv.Close()

		m := newTestMailer(t, srv.Client())
		data, mime, err := m.resolveImage(context.Background(), srv.URL+"/sticker.jpg")
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), data)
		assert.Equal(t, "image/jpeg", mime)
	})

	t.Run("remote error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		m := newTestMailer(t, srv.Client())
		_, _, err := m.resolveImage(context.Background(), srv.URL+"/missing.png")
		require.Error(t, err)
	})
}

func TestExtForMime(t *testing.T) {
	assert.Equal(t, "jpg", extForMime("image/jpeg"))
	assert.Equal(t, "webp", extForMime("image/webp"))
	assert.Equal(t, "png", extForMime("image/png"))
	assert.Equal(t, "png", extForMime(""))
}

func TestSendRequiresRecipient(t *testing.T) {
	m := newTestMailer(t, nil)
	err := m.Send(context.Background(), Message{Subject: "hi"})
	require.Error(t, err)
}
