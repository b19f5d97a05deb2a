package api

import (
	"github.com/go-chi/chi/v5"
)

// Handlers groups the resource handlers mounted under /api.
type Handlers struct {
	Topics   *TopicHandler
	Articles *ArticleHandler
	Comments *CommentHandler
	Users    *UserHandler
}

// RegisterRoutes mounts the resource routes on r and installs the
// "Endpoint does not exist" response for unmatched paths and methods.
func RegisterRoutes(r chi.Router, h Handlers) {
	r.NotFound(NotFound)
	r.MethodNotAllowed(NotFound)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", GetEndpoints)

		r.Route("/topics", func(r chi.Router) {
			r.Get("/", h.Topics.ListTopics)
			r.Post("/", h.Topics.CreateTopic)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", h.Articles.ListArticles)
			r.Post("/", h.Articles.CreateArticle)

			r.Route("/{article_id}", func(r chi.Router) {
				r.Get("/", h.Articles.GetArticle)
				r.Patch("/", h.Articles.PatchArticle)
				r.Delete("/", h.Articles.DeleteArticle)

				r.Get("/comments", h.Comments.ListComments)
				r.Post("/comments", h.Comments.CreateComment)
			})
		})

		r.Route("/comments/{comment_id}", func(r chi.Router) {
			r.Patch("/", h.Comments.PatchComment)
			r.Delete("/", h.Comments.DeleteComment)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.Users.ListUsers)
			r.Get("/{username}", h.Users.GetUser)
		})
	})
}
