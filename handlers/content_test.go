package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whynotact/backend/internal/content"
	"github.com/whynotact/backend/internal/content/repository"
	"github.com/whynotact/backend/internal/content/service"
	"github.com/whynotact/backend/internal/lens"
)

func fullVariants(prefix string) map[lens.Lens]content.Variant {
	out := map[lens.Lens]content.Variant{}
	for _, l := range lens.All() {
		out[l] = content.Variant{
			Headline: prefix + " headline " + string(l),
			Body:     prefix + " body " + string(l),
		}
	}
	return out
}

func newContentRouter() (*gin.Engine, *repository.MemoryRepo) {
	repo := repository.NewMemoryRepo()
	g := gin.New()
	NewContentHandler(service.New(repo)).Register(g.Group("/api"))
	return g, repo
}

func TestQuestions_LayerFilterAndOrder(t *testing.T) {
	g, repo := newContentRouter()
	repo.Seed([]*content.Question{
		{ID: "q2", Layer: "intro", Order: 2, Variants: fullVariants("q2")},
		{ID: "q1", Layer: "intro", Order: 1, Variants: fullVariants("q1")},
		{ID: "q3", Layer: "deep", Order: 1, Variants: fullVariants("q3")},
	}, nil, nil)

	code, body := getJSON(t, g, "/api/questions?layer=intro")
	require.Equal(t, http.StatusOK, code)
	questions := body["questions"].([]interface{})
	require.Len(t, questions, 2)
	assert.Equal(t, "q1", questions[0].(map[string]interface{})["id"])
	assert.Equal(t, "q2", questions[1].(map[string]interface{})["id"])

	// no layer filter returns everything
	code, body = getJSON(t, g, "/api/questions")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["questions"], 3)

	// unknown layer is an empty listing, not an error
	code, body = getJSON(t, g, "/api/questions?layer=nope")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["questions"], 0)
}

func TestImpactPoints_ResolvesActiveLensOnly(t *testing.T) {
	g, repo := newContentRouter()
	repo.Seed(nil, []*content.ImpactPoint{
		{ID: "ip1", Order: 1, Topic: "economy", Variants: fullVariants("ip1")},
	}, nil)

	code, body := getJSON(t, g, "/api/impact-points?lens=mid-right")
	require.Equal(t, http.StatusOK, code)
	points := body["impactPoints"].([]interface{})
	require.Len(t, points, 1)
	p := points[0].(map[string]interface{})
	assert.Equal(t, "ip1 body mid-right", p["body"])
	assert.Equal(t, "ip1 headline mid-right", p["headline"])
	assert.NotContains(t, p["body"], "far-left")
}

func TestImpactPoints_LensRequired(t *testing.T) {
	g, _ := newContentRouter()

	code, body := getJSON(t, g, "/api/impact-points")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, body["error"])

	code, _ = getJSON(t, g, "/api/impact-points?lens=center-right")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestImpactPoints_SkipsUnauthoredVariants(t *testing.T) {
	g, repo := newContentRouter()
	repo.Seed(nil, []*content.ImpactPoint{
		{ID: "full", Order: 1, Variants: fullVariants("full")},
		{ID: "partial", Order: 2, Variants: map[lens.Lens]content.Variant{
			lens.FarLeft: {Body: "only far-left"},
		}},
	}, nil)

	code, body := getJSON(t, g, "/api/impact-points?lens=far-right")
	require.Equal(t, http.StatusOK, code)
	points := body["impactPoints"].([]interface{})
	require.Len(t, points, 1)
	assert.Equal(t, "full", points[0].(map[string]interface{})["id"])
}

func TestDataPoints_ResolvesLens(t *testing.T) {
	g, repo := newContentRouter()
	repo.Seed(nil, nil, []*content.DataPoint{
		{ID: "dp1", Order: 1, Source: "census", Variants: fullVariants("dp1")},
	})

	code, body := getJSON(t, g, "/api/data-points?lens=far-left")
	require.Equal(t, http.StatusOK, code)
	points := body["dataPoints"].([]interface{})
	require.Len(t, points, 1)
	p := points[0].(map[string]interface{})
	assert.Equal(t, "census", p["source"])
	assert.Equal(t, "dp1 body far-left", p["body"])

	code, _ = getJSON(t, g, "/api/data-points")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestQuestions_StoreFailureIncludesEmptyList(t *testing.T) {
	g := gin.New()
	NewContentHandler(service.New(&failingContentRepo{})).Register(g.Group("/api"))

	code, body := getJSON(t, g, "/api/questions")
	require.Equal(t, http.StatusInternalServerError, code)
	assert.NotEmpty(t, body["error"])
	assert.Len(t, body["questions"], 0)
}
