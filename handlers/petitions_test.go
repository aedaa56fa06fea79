package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whynotact/backend/internal/submission/repository"
	"github.com/whynotact/backend/internal/submission/service"
)

func newPetitionRouter() (*gin.Engine, *repository.MemoryRepo) {
	repo := repository.NewMemoryRepo()
	g := gin.New()
	NewPetitionHandler(service.New(repo)).Register(g.Group("/api"))
	return g, repo
}

func postJSON(g *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, g *gin.Engine, path string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	var body map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w.Code, body
}

func TestCreatePetition_OK(t *testing.T) {
	g, repo := newPetitionRouter()

	w := postJSON(g, "/api/petition", `{"name":"Jordan Blake","email":"jordan@example.com","zipcode":"90210","consent":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["signatureId"])
	assert.NotEmpty(t, resp["message"])

	n, err := repo.CountPetitions(t.Context(), "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCreatePetition_MissingFieldsRejected(t *testing.T) {
	g, repo := newPetitionRouter()

	bodies := []string{
		`{"email":"a@b.co","zipcode":"90210","consent":true}`,
		`{"name":"J","zipcode":"90210","consent":true}`,
		`{"name":"J","email":"a@b.co","consent":true}`,
		`{"name":"J","email":"a@b.co","zipcode":"90210"}`,
	}
	for _, body := range bodies {
		w := postJSON(g, "/api/petition", body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "required")
	}

	// no documents were created for rejected payloads
	n, err := repo.CountPetitions(t.Context(), "")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestCreatePetition_BadShapes(t *testing.T) {
	g, _ := newPetitionRouter()

	w := postJSON(g, "/api/petition", `{"name":"J","email":"not-an-email","zipcode":"90210","consent":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, zip := range []string{"1234", "123456"} {
		w = postJSON(g, "/api/petition", fmt.Sprintf(`{"name":"J","email":"a@b.co","zipcode":"%s","consent":true}`, zip))
		assert.Equal(t, http.StatusBadRequest, w.Code, "zip %s", zip)
	}

	w = postJSON(g, "/api/petition", `{"name":"J","email":"a@b.co","zipcode":"90210","consent":true,"theme":"centrist"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPetitionCount_ThemeFilter(t *testing.T) {
	g, _ := newPetitionRouter()

	require.Equal(t, http.StatusCreated, postJSON(g, "/api/petition", `{"name":"A","email":"a@b.co","zipcode":"90210","consent":true,"theme":"far-left"}`).Code)
	require.Equal(t, http.StatusCreated, postJSON(g, "/api/petition", `{"name":"B","email":"b@b.co","zipcode":"10001","consent":true,"theme":"far-left"}`).Code)
	require.Equal(t, http.StatusCreated, postJSON(g, "/api/petition", `{"name":"C","email":"c@b.co","zipcode":"60601","consent":true}`).Code)

	code, body := getJSON(t, g, "/api/petition")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 3, body["count"])

	code, body = getJSON(t, g, "/api/petition?theme=far-left")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, body["count"])

	code, body = getJSON(t, g, "/api/petition?theme=default")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["count"])

	code, _ = getJSON(t, g, "/api/petition?theme=anarchist")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCreatePetition_PersistenceFailure(t *testing.T) {
	g := gin.New()
	NewPetitionHandler(service.New(&failingRepo{})).Register(g.Group("/api"))

	w := postJSON(g, "/api/petition", `{"name":"J","email":"a@b.co","zipcode":"90210","consent":true}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
	assert.NotEmpty(t, resp["details"])
	// the underlying cause never reaches the client
	assert.NotContains(t, w.Body.String(), "store exploded")
}
