package api

import (
	"log/slog"
	"net/http"

	"github.com/newsboard/newsboard-api/internal/api/shared"
	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/newsboard/newsboard-api/internal/service"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentService service.CommentService
	logger         *slog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService, logger *slog.Logger) *CommentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CommentHandler")
	}
	return &CommentHandler{
		commentService: commentService,
		logger:         logger.With(slog.String("component", "comment_handler")),
	}
}

// ListComments handles GET /api/articles/{article_id}/comments requests
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathID(r, paramArticleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	filter, err := parseCommentFilter(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	page, err := h.commentService.ListComments(r.Context(), articleID, filter)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentsEnvelope{
		Comments:     mapSlice(page.Comments, commentToResponse),
		CommentCount: page.Total,
	})
}

// CreateComment handles POST /api/articles/{article_id}/comments requests
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathID(r, paramArticleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req CreateCommentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		log.Debug("rejected comment payload",
			slog.Int("article_id", articleID),
			slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	comment, err := h.commentService.AddComment(r.Context(), articleID, req.Username, req.Body)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, commentEnvelope{Comment: commentToResponse(*comment)})
}

// PatchComment handles PATCH /api/comments/{comment_id} requests
func (h *CommentHandler) PatchComment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, paramCommentID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	delta, err := decodeVoteDelta(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comment, err := h.commentService.VoteOnComment(r.Context(), id, delta)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentEnvelope{Comment: commentToResponse(*comment)})
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, paramCommentID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}
