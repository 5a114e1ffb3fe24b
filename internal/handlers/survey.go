package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"agent-sticker-kiosk/internal/archetype"
	"agent-sticker-kiosk/internal/gemini"
	"agent-sticker-kiosk/internal/prompt"
)

type archetypeRequest struct {
	Answers archetype.AnswerSet `json:"answers"`
}

type archetypeResponse struct {
	Key         archetype.Key `json:"key"`
	DisplayName string        `json:"displayName"`
	Warnings    []string      `json:"warnings,omitempty"`
}

func (h *Handler) handleArchetype(w http.ResponseWriter, r *http.Request) {
	var req archetypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}

	arch, diags := archetype.Resolve(req.Answers)
	writeJSON(w, http.StatusOK, archetypeResponse{
		Key:         arch.Key,
		DisplayName: arch.DisplayName,
		Warnings:    diagMessages(h, diags),
	})
}

type generateResponse struct {
	Image     string            `json:"image"`
	MimeType  string            `json:"mimeType"`
	Archetype archetypeResponse `json:"archetype"`
}

const maxUploadBytes = 25 << 20

// handleGenerate resolves the archetype, builds the prompt, and calls the
// generation provider. Accepts multipart (answers JSON field + optional selfie
// file) or a plain JSON body without a selfie.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := h.genSem.Acquire(r.Context(), 1); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, apiError{Error: "server busy"})
		return
	}
	defer h.genSem.Release(1)

	answers, ref, err := h.parseGenerateRequest(w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	arch, diags := archetype.Resolve(answers)

	promptText := prompt.Build(arch, answers, prompt.Options{
		IncludeSelfie:        ref != nil,
		IncludePhotoGuidance: ref != nil,
	})

	img, err := h.gem.GenerateImage(r.Context(), promptText, ref)
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			writeJSON(w, statusForKind(apiErr.Kind), apiError{Error: apiErr.Message, Kind: string(apiErr.Kind)})
			return
		}
		writeJSON(w, http.StatusBadGateway, apiError{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Image:    img.DataURL(),
		MimeType: img.MimeType,
		Archetype: archetypeResponse{
			Key:         arch.Key,
			DisplayName: arch.DisplayName,
			Warnings:    diagMessages(h, diags),
		},
	})
}

func (h *Handler) parseGenerateRequest(w http.ResponseWriter, r *http.Request) (archetype.AnswerSet, *gemini.Reference, error) {
	contentType := r.Header.Get("content-type")

	if !strings.HasPrefix(contentType, "multipart/") {
		var req archetypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, nil, errors.New("invalid request body")
		}
		return req.Answers, nil, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, errors.New("invalid multipart form")
	}

	var answers archetype.AnswerSet
	if raw := strings.TrimSpace(r.FormValue("answers")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &answers); err != nil {
			return nil, nil, errors.New("invalid answers field")
		}
	}

	var ref *gemini.Reference
	if file, header, err := r.FormFile("selfie"); err == nil {
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, nil, errors.New("failed to read selfie")
		}

		mime := cleanMime(header.Header.Get("content-type"))
		if mime == "" || mime == "application/octet-stream" {
			mime = cleanMime(http.DetectContentType(data))
		}

		ref = &gemini.Reference{
			DataBase64: base64.StdEncoding.EncodeToString(data),
			MimeType:   mime,
		}
	}

	return answers, ref, nil
}

func cleanMime(mime string) string {
	mime = strings.TrimSpace(mime)
	if idx := strings.IndexByte(mime, ';'); idx >= 0 {
		mime = strings.TrimSpace(mime[:idx])
	}
	return mime
}

func statusForKind(kind gemini.ErrorKind) int {
	switch kind {
	case gemini.RateLimited:
		return http.StatusTooManyRequests
	case gemini.QuotaExceeded:
		return http.StatusPaymentRequired
	default:
		return http.StatusBadGateway
	}
}

func diagMessages(h *Handler, diags []archetype.Diagnostic) []string {
	if len(diags) == 0 {
		return nil
	}
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		h.logger.Warn("archetype diagnostic", "msg", d.Message)
		out = append(out, d.Message)
	}
	return out
}
