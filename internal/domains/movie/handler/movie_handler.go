package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/internal/domains/movie/service"
	"movie-catalog-backend/internal/shared/middleware"
	"movie-catalog-backend/internal/shared/response"
)

type MovieHandler struct {
	service service.ServiceInterface
}

func NewMovieHandler(svc service.ServiceInterface) *MovieHandler {
	return &MovieHandler{
		service: svc,
	}
}

func (h *MovieHandler) fail(c *gin.Context, err error) {
	response.ErrorResponse(c, movie.ToHTTPStatus(err), movie.ToErrorCode(err), err.Error())
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /get?page=1&size=10&title=
// ════════════════════════════════════════════════════════════════

func (h *MovieHandler) GetAll(c *gin.Context) {
	// Non-numeric and non-positive values fall back to defaults.
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = movie.DefaultPage
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		size = movie.DefaultPageSize
	}

	filter := movie.ListFilter{
		Page:  page,
		Size:  size,
		Title: c.Query("title"),
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// GET BY ID: GET /get/:id
// ════════════════════════════════════════════════════════════════

func (h *MovieHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id matches no record.
		h.fail(c, movie.ErrMovieNotFound)
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /add (admin)
// ════════════════════════════════════════════════════════════════

func (h *MovieHandler) Create(c *gin.Context) {
	var req movie.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	m, err := h.service.Create(c.Request.Context(), middleware.RoleFromContext(c), &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// ════════════════════════════════════════════════════════════════
// CREATE BY IMDB ID: POST /add-imdb (admin)
// ════════════════════════════════════════════════════════════════

func (h *MovieHandler) CreateByImdbID(c *gin.Context) {
	// An unreadable body is treated as a missing imdbId so the caller
	// always sees the same 400.
	var req movie.ImportMovieRequest
	_ = c.ShouldBindJSON(&req)

	m, err := h.service.CreateByImdbID(c.Request.Context(), middleware.RoleFromContext(c), req.ImdbID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /update/:id (admin)
// ════════════════════════════════════════════════════════════════

func (h *MovieHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, movie.ErrMovieNotFound)
		return
	}

	var req movie.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	m, err := h.service.Update(c.Request.Context(), middleware.RoleFromContext(c), id, &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /delete/:id (admin)
// ════════════════════════════════════════════════════════════════

func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.fail(c, movie.ErrMovieNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.RoleFromContext(c), id); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
