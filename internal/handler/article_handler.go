package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/julioszeferino/api-faculdade/internal/auth"
	apperrors "github.com/julioszeferino/api-faculdade/internal/errors"
	"github.com/julioszeferino/api-faculdade/internal/model"
	"github.com/julioszeferino/api-faculdade/internal/service"
)

// ArticleHandler bundles the article HTTP handlers.
type ArticleHandler struct {
	svc service.ArticleService
}

// NewArticleHandler creates a handler layer.
func NewArticleHandler(svc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// CreateArticleRequest represents an article creation body. Any usuario_id
// in the body is ignored; the owner is always the authenticated caller.
type CreateArticleRequest struct {
	Titulo    string `json:"titulo" validate:"required"`
	Descricao string `json:"descricao" validate:"required"`
	URLFonte  string `json:"url_fonte" validate:"required,url"`
}

// UpdateArticleRequest represents a partial article update.
type UpdateArticleRequest struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	URLFonte  string `json:"url_fonte" validate:"omitempty,url"`
}

// CreateArticle godoc
// @Summary Create an article owned by the authenticated user
// @Tags artigos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateArticleRequest true "Article payload"
// @Success 201 {object} model.Article
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /artigos/ [post]
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthenticated)
	}

	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article := &model.Article{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		URLFonte:  req.URLFonte,
	}
	created, err := h.svc.CreateArticle(c.Request().Context(), article, user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListArticles godoc
// @Summary List all articles
// @Tags artigos
// @Produce json
// @Success 200 {array} model.Article
// @Router /artigos/ [get]
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	articles, err := h.svc.ListArticles(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, articles)
}

// GetArticle godoc
// @Summary Get article by id
// @Tags artigos
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} model.Article
// @Failure 404 {object} errors.ErrorResponse
// @Router /artigos/{id} [get]
func (h *ArticleHandler) GetArticle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	article, err := h.svc.GetArticle(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, article)
}

// UpdateArticle godoc
// @Summary Partially update an article
// @Tags artigos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body UpdateArticleRequest true "Fields to update"
// @Success 202 {object} model.Article
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /artigos/{id} [put]
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthenticated)
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.svc.UpdateArticle(c.Request().Context(), id, service.ArticlePatch{
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		URLFonte:  req.URLFonte,
	}, user.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusAccepted, article)
}

// DeleteArticle godoc
// @Summary Delete an owned article
// @Tags artigos
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /artigos/{id} [delete]
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthenticated)
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteArticle(c.Request().Context(), id, user.ID); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
