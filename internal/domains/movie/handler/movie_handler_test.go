package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-backend/internal/domains/movie"
	"movie-catalog-backend/internal/domains/movie/model"
	"movie-catalog-backend/internal/shared/middleware"
)

// fakeService is a canned ServiceInterface that records inputs.
type fakeService struct {
	listResp   *movie.ListResponse
	lastFilter movie.ListFilter
	lastRole   string
	movieResp  *model.Movie
	err        error
}

func (f *fakeService) List(_ context.Context, filter movie.ListFilter) (*movie.ListResponse, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.listResp, nil
}

func (f *fakeService) GetByID(_ context.Context, _ uuid.UUID) (*model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.movieResp, nil
}

func (f *fakeService) Create(_ context.Context, role string, _ *movie.CreateMovieRequest) (*model.Movie, error) {
	f.lastRole = role
	if f.err != nil {
		return nil, f.err
	}
	return f.movieResp, nil
}

func (f *fakeService) CreateByImdbID(_ context.Context, role, _ string) (*model.Movie, error) {
	f.lastRole = role
	if f.err != nil {
		return nil, f.err
	}
	return f.movieResp, nil
}

func (f *fakeService) Update(_ context.Context, role string, _ uuid.UUID, _ *movie.UpdateMovieRequest) (*model.Movie, error) {
	f.lastRole = role
	if f.err != nil {
		return nil, f.err
	}
	return f.movieResp, nil
}

func (f *fakeService) Delete(_ context.Context, role string, _ uuid.UUID) error {
	f.lastRole = role
	return f.err
}

func setupRouter(svc *fakeService, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewMovieHandler(svc)

	router := gin.New()
	if role != "" {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.ContextRoleKey, role)
			c.Next()
		})
	}

	router.GET("/get", h.GetAll)
	router.GET("/get/:id", h.GetByID)
	router.POST("/add", h.Create)
	router.POST("/add-imdb", h.CreateByImdbID)
	router.PUT("/update/:id", h.Update)
	router.DELETE("/delete/:id", h.Delete)

	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleMovie() *model.Movie {
	boxOffice := "N/A"
	return &model.Movie{
		ID:         uuid.New(),
		Title:      "The Shawshank Redemption",
		ImdbID:     "tt0111161",
		Year:       1994,
		Released:   "14 Oct 1994",
		Plot:       "Two imprisoned men bond over a number of years.",
		Poster:     "https://example.com/shawshank.jpg",
		ImdbRating: 9.3,
		BoxOffice:  &boxOffice,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func TestGetAll_PageEnvelope(t *testing.T) {
	svc := &fakeService{listResp: &movie.ListResponse{
		TotalItems:  1,
		TotalPages:  1,
		CurrentPage: 1,
		PageSize:    10,
		Movies:      []model.Movie{*sampleMovie()},
	}}
	router := setupRouter(svc, "")

	w := perform(router, http.MethodGet, "/get", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"totalItems", "totalPages", "currentPage", "pageSize", "movies"} {
		assert.Contains(t, body, key)
	}
}

func TestGetAll_QueryParsing(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
		wantTit  string
	}{
		{"defaults", "", 1, 10, ""},
		{"explicit", "?page=3&size=25", 3, 25, ""},
		{"non-numeric", "?page=abc&size=xyz", 1, 10, ""},
		{"title filter", "?title=shawshank", 1, 10, "shawshank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{listResp: &movie.ListResponse{Movies: []model.Movie{}}}
			router := setupRouter(svc, "")

			w := perform(router, http.MethodGet, "/get"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)

			assert.Equal(t, tt.wantPage, svc.lastFilter.Page)
			assert.Equal(t, tt.wantSize, svc.lastFilter.Size)
			assert.Equal(t, tt.wantTit, svc.lastFilter.Title)
		})
	}
}

func TestGetByID_MalformedIDIsNotFound(t *testing.T) {
	router := setupRouter(&fakeService{}, "")

	w := perform(router, http.MethodGet, "/get/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestGetByID_MovieJSONShape(t *testing.T) {
	svc := &fakeService{movieResp: sampleMovie()}
	router := setupRouter(svc, "")

	w := perform(router, http.MethodGet, "/get/"+uuid.NewString(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "tt0111161", body["imdbId"])
	assert.Equal(t, float64(1994), body["year"])
	assert.Equal(t, 9.3, body["imdbRating"])
	assert.Equal(t, "N/A", body["boxOffice"])
}

func TestCreate_ForbiddenEnvelope(t *testing.T) {
	svc := &fakeService{err: movie.ErrForbidden}
	router := setupRouter(svc, "user")

	w := perform(router, http.MethodPost, "/add", `{"title":"x"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "FORBIDDEN", errObj["code"])
}

func TestCreate_PassesRoleFromContext(t *testing.T) {
	svc := &fakeService{movieResp: sampleMovie()}
	router := setupRouter(svc, "admin")

	w := perform(router, http.MethodPost, "/add", `{"title":"x"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "admin", svc.lastRole)
}

func TestCreate_MalformedBody(t *testing.T) {
	router := setupRouter(&fakeService{}, "admin")

	w := perform(router, http.MethodPost, "/add", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateByImdbID_Statuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"created", nil, http.StatusCreated},
		{"missing id", movie.ErrImdbIDRequired, http.StatusBadRequest},
		{"conflict", movie.ErrMovieExists, http.StatusConflict},
		{"provider down", movie.ErrProviderUnavailable, http.StatusServiceUnavailable},
		{"provider miss", &movie.ProviderNotFoundError{Message: "Incorrect IMDb ID."}, http.StatusNotFound},
		{"no api key", movie.ErrProviderNotConfigured, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{movieResp: sampleMovie(), err: tt.err}
			router := setupRouter(svc, "admin")

			w := perform(router, http.MethodPost, "/add-imdb", `{"imdbId":"tt0111161"}`)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCreateByImdbID_EmptyBodyStillReachesService(t *testing.T) {
	// The service owns the "imdbId is required" failure.
	svc := &fakeService{err: movie.ErrImdbIDRequired}
	router := setupRouter(svc, "admin")

	w := perform(router, http.MethodPost, "/add-imdb", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "imdbId is required")
}

func TestUpdate_NotFound(t *testing.T) {
	svc := &fakeService{err: movie.ErrMovieNotFound}
	router := setupRouter(svc, "admin")

	w := perform(router, http.MethodPut, "/update/"+uuid.NewString(), `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete_NoContent(t *testing.T) {
	svc := &fakeService{}
	router := setupRouter(svc, "admin")

	w := perform(router, http.MethodDelete, "/delete/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDelete_NotFound(t *testing.T) {
	svc := &fakeService{err: movie.ErrMovieNotFound}
	router := setupRouter(svc, "admin")

	w := perform(router, http.MethodDelete, "/delete/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
