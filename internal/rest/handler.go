package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	apispec "github.com/vgi/vgi-server/api"
	"github.com/vgi/vgi-server/internal/config"
	"github.com/vgi/vgi-server/internal/errs"
	api "github.com/vgi/vgi-server/internal/generated"
	"github.com/vgi/vgi-server/internal/infra"
	"github.com/vgi/vgi-server/internal/model"
)

const (
	defaultSize = 10
	maxSize     = 100
)

type Handler struct {
	aggregator Aggregator
}

func New(aggregator Aggregator) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

func (h *Handler) GetTwitchStreams(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTwitchStreams")

	streams, err := h.aggregator.LiveStreams(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get live streams: %v (request %s)", err, infra.RequestID(r.Context())))
		h.writeError(w, fmt.Sprintf("failed to get live streams: %v", err), statusFor(err))
		return
	}

	response := make([]api.LiveStream, len(streams))
	for i, stream := range streams {
		response[i] = api.LiveStream{
			GameName:        stream.GameName,
			DisplayName:     stream.DisplayName,
			StreamThumbnail: stream.StreamThumbnail,
			ProfileImage:    stream.ProfileImage,
			ProfileColor:    stream.ProfileColor,
		}
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetTwitchVods(w http.ResponseWriter, r *http.Request, params api.GetTwitchVodsParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTwitchVods")

	size, err := resolveSize(params.Size)
	if err != nil {
		logger.Error(fmt.Sprintf("%v (request %s)", err, infra.RequestID(r.Context())))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	videos, err := h.aggregator.RecentVideos(r.Context(), size)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get recent videos: %v (request %s)", err, infra.RequestID(r.Context())))
		h.writeError(w, fmt.Sprintf("failed to get recent videos: %v", err), statusFor(err))
		return
	}

	h.writeJSON(w, toAPIVideos(videos), http.StatusOK)
}

func (h *Handler) GetTwitchClips(w http.ResponseWriter, r *http.Request, params api.GetTwitchClipsParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTwitchClips")

	size, err := resolveSize(params.Size)
	if err != nil {
		logger.Error(fmt.Sprintf("%v (request %s)", err, infra.RequestID(r.Context())))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	clips, err := h.aggregator.RecentClips(r.Context(), size)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get recent clips: %v (request %s)", err, infra.RequestID(r.Context())))
		h.writeError(w, fmt.Sprintf("failed to get recent clips: %v", err), statusFor(err))
		return
	}

	h.writeJSON(w, toAPIVideos(clips), http.StatusOK)
}

// ParamError answers requests whose query parameters could not be bound.
func (h *Handler) ParamError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.Error(fmt.Sprintf("invalid request parameters: %v (request %s)", err, infra.RequestID(r.Context())))
	h.writeError(w, fmt.Sprintf("%v: %v", errs.ErrInvalidSize, err), http.StatusBadRequest)
}

func (h *Handler) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(apispec.Spec)
}

// ----------------------------- helpers -----------------------------

func resolveSize(size *int) (int, error) {
	if size == nil {
		return defaultSize, nil
	}
	if *size < 0 || *size > maxSize {
		return 0, fmt.Errorf("%w: size must be between 0 and %d, got %d", errs.ErrInvalidSize, maxSize, *size)
	}

	return *size, nil
}

func toAPIVideos(videos model.RecentVideoList) []api.Video {
	response := make([]api.Video, len(videos))
	for i, video := range videos {
		response[i] = api.Video{
			Title:           video.Title,
			StreamThumbnail: video.StreamThumbnail,
			DisplayName:     video.DisplayName,
			Url:             video.URL,
		}
	}

	return response
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidSize):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
