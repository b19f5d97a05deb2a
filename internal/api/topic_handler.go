package api

import (
	"log/slog"
	"net/http"

	"github.com/newsboard/newsboard-api/internal/api/shared"
	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/newsboard/newsboard-api/internal/service"
)

// TopicHandler handles topic-related HTTP requests
type TopicHandler struct {
	topicService service.TopicService
	logger       *slog.Logger
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(topicService service.TopicService, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TopicHandler")
	}
	return &TopicHandler{
		topicService: topicService,
		logger:       logger.With(slog.String("component", "topic_handler")),
	}
}

// ListTopics handles GET /api/topics requests
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicService.ListTopics(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, topicsEnvelope{
		Topics: mapSlice(topics, topicToResponse),
	})
}

// CreateTopic handles POST /api/topics requests
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTopicRequest
	if err := decodeAndValidate(r, &req); err != nil {
		log.Debug("rejected topic payload", slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	topic, err := h.topicService.CreateTopic(r.Context(), domain.Topic{
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, topicEnvelope{Topic: topicToResponse(*topic)})
}
