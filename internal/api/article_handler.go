package api

import (
	"log/slog"
	"net/http"

	"github.com/newsboard/newsboard-api/internal/api/shared"
	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/newsboard/newsboard-api/internal/platform/logger"
	"github.com/newsboard/newsboard-api/internal/service"
)

// ArticleHandler handles article-related HTTP requests
type ArticleHandler struct {
	articleService service.ArticleService
	logger         *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService service.ArticleService, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ArticleHandler")
	}
	return &ArticleHandler{
		articleService: articleService,
		logger:         logger.With(slog.String("component", "article_handler")),
	}
}

// ListArticles handles GET /api/articles requests
// Supports topic, sort_by, order, limit and p query parameters.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	filter, err := parseArticleFilter(r)
	if err != nil {
		log.Debug("invalid article query", slog.String("query", r.URL.RawQuery))
		HandleAPIError(w, r, err)
		return
	}

	page, err := h.articleService.ListArticles(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, articlesEnvelope{
		Articles:      mapSlice(page.Articles, articleToSummary),
		ArticlesCount: page.Total,
	})
}

// GetArticle handles GET /api/articles/{article_id} requests
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, paramArticleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articleService.GetArticle(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, articleEnvelope{Article: articleToResponse(article)})
}

// CreateArticle handles POST /api/articles requests
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateArticleRequest
	if err := decodeAndValidate(r, &req); err != nil {
		log.Debug("rejected article payload", slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articleService.CreateArticle(r.Context(), domain.Article{
		Author:        req.Author,
		Title:         req.Title,
		Body:          req.Body,
		Topic:         req.Topic,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, articleEnvelope{Article: articleToResponse(article)})
}

// PatchArticle handles PATCH /api/articles/{article_id} requests
// Only inc_votes is recognized; other fields are ignored.
func (h *ArticleHandler) PatchArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, paramArticleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	delta, err := decodeVoteDelta(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articleService.VoteOnArticle(r.Context(), id, delta)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, articleEnvelope{Article: articleToResponse(article)})
}

// DeleteArticle handles DELETE /api/articles/{article_id} requests
// The article's comments are removed with it.
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, paramArticleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.articleService.DeleteArticle(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}
