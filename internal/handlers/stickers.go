package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"agent-sticker-kiosk/internal/gemini"
	"agent-sticker-kiosk/internal/mailer"
	"agent-sticker-kiosk/internal/sticker"
	"agent-sticker-kiosk/internal/submit"
)

type stickerRequest struct {
	Image string `json:"image"`
	Label string `json:"label"`
	Size  int    `json:"size"`
}

type stickerResponse struct {
	Image    string `json:"image"`
	Hash     string `json:"hash"`
	MimeType string `json:"mimeType"`
}

func (h *Handler) handleSticker(w http.ResponseWriter, r *http.Request) {
	var req stickerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}

	src, err := sourceFromImage(req.Image)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	art, err := h.engine.Compose(r.Context(), src, sticker.Options{
		Label: req.Label,
		Size:  req.Size,
	})
	if err != nil {
		if errors.Is(err, sticker.ErrSourceLoad) {
			writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error(), Kind: "source_load_failed"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, stickerResponse{
		Image:    "data:" + art.MimeType + ";base64," + base64.StdEncoding.EncodeToString(art.Bytes),
		Hash:     art.Hash,
		MimeType: art.MimeType,
	})
}

type submitRequest struct {
	Session   string            `json:"session"`
	Image     string            `json:"image"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Timestamp string            `json:"timestamp"`
	Archetype string            `json:"archetype"`
	Survey    map[string]string `json:"survey"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Session) == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "missing session"})
		return
	}

	data, mime, err := decodeDataURL(req.Image)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	timestamp := strings.TrimSpace(req.Timestamp)
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	result, err := h.coordinator.Submit(r.Context(), req.Session, sticker.NewArtifact(data, mime), submit.Meta{
		Email:     req.Email,
		Name:      req.Name,
		Timestamp: timestamp,
		Archetype: req.Archetype,
		Survey:    req.Survey,
	})
	if err != nil {
		if errors.Is(err, submit.ErrUploadFailed) {
			writeJSON(w, http.StatusBadGateway, apiError{Error: err.Error(), Kind: "upload_failed"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleEmail(w http.ResponseWriter, r *http.Request) {
	if h.mailer == nil {
		writeJSON(w, http.StatusServiceUnavailable, apiError{Error: "email is not configured"})
		return
	}

	var msg mailer.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}

	if err := h.mailer.Send(r.Context(), msg); err != nil {
		writeJSON(w, http.StatusBadGateway, apiError{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// sourceFromImage accepts a data URL or a remote URL, mirroring the two shapes
// the generation provider returns.
func sourceFromImage(image string) (sticker.Source, error) {
	image = strings.TrimSpace(image)
	if image == "" {
		return sticker.Source{}, errors.New("missing image")
	}

	if strings.HasPrefix(image, "data:") {
		data, mime, err := decodeDataURL(image)
		if err != nil {
			return sticker.Source{}, err
		}
		return sticker.Source{Bytes: data, MimeType: mime}, nil
	}

	return sticker.Source{URL: image}, nil
}

func decodeDataURL(value string) ([]byte, string, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "data:") {
		return nil, "", errors.New("expected a data URL image")
	}

	idx := strings.IndexByte(value, ',')
	if idx < 0 {
		return nil, "", errors.New("malformed data URL")
	}

	data, err := base64.StdEncoding.DecodeString(value[idx+1:])
	if err != nil {
		return nil, "", errors.New("malformed data URL payload")
	}

	return data, gemini.MimeFromDataURL(value, "image/png"), nil
}
