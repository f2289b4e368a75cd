package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lerian-claude-advisor/internal/catalog"
	"lerian-claude-advisor/internal/config"
	"lerian-claude-advisor/internal/logging"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := catalog.Load("")
	require.NoError(t, err)

	router := NewRouter(config.DefaultConfig(), store, logging.NewNoOpLogger())
	srv := httptest.NewServer(router.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, "claude-advisor", data["server"])

	catalogInfo := data["catalog"].(map[string]interface{})
	assert.Greater(t, catalogInfo["categories"].(float64), 0.0)
	assert.Greater(t, catalogInfo["features"].(float64), 0.0)
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/analyze", `{"task": "Build a React dashboard with user authentication"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})

	analysisOut := data["analysis"].(map[string]interface{})
	assert.Equal(t, "Build a React dashboard with user authentication", analysisOut["task"])
	assert.Contains(t, []string{"simple", "moderate", "complex"}, analysisOut["complexity"])

	summary := data["summary"].(map[string]interface{})
	assert.Greater(t, summary["totalRecommendations"].(float64), 0.0)

	recs := data["recommendations"].(map[string]interface{})
	for _, key := range []string{"skills", "agents", "mcps", "hooks", "commands", "settings", "claudemd"} {
		_, present := recs[key]
		assert.True(t, present, "missing recommendation group %s", key)
	}
}

func TestAnalyzeEndpoint_RejectsShortTask(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/analyze", `{"task": "ab"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errOut := body["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_FAILED", errOut["code"])
}

func TestAnalyzeEndpoint_RejectsInvalidJSON(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/analyze", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errOut := body["error"].(map[string]interface{})
	assert.Equal(t, "BAD_REQUEST", errOut["code"])
}

func TestQuickAnalyzeEndpoint(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/analyze/quick", `{"task": "debug a crash in the api server"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Contains(t, []string{"simple", "moderate", "complex"}, data["complexity"])
}

func TestListCategoriesEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/categories")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	categories := data["categories"].([]interface{})
	require.NotEmpty(t, categories)

	first := categories[0].(map[string]interface{})
	assert.NotEmpty(t, first["id"])
	assert.NotEmpty(t, first["name"])
	keywords := first["keywords"].([]interface{})
	assert.LessOrEqual(t, len(keywords), 10)
}

func TestListFeaturesEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Greater(t, data["total"].(float64), 0.0)

	features := data["features"].(map[string]interface{})
	assert.Contains(t, features, "agents")
	assert.Contains(t, features, "skills")
}

func TestListFeaturesByTypeEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features/agents")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "agent", data["type"])
	assert.NotEmpty(t, data["features"].([]interface{}))
}

func TestListFeaturesByTypeEndpoint_UnknownType(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features/widgets")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestGetFeatureEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features/agents/react-specialist")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "react-specialist", data["id"])
}

func TestGetFeatureEndpoint_NotFound(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features/agents/no-such-agent")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	errOut := body["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errOut["code"])
}

func TestSearchFeaturesEndpoint(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features/search?q=react")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "react", data["query"])
	results := data["results"].([]interface{})
	assert.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 20)
}

func TestSearchFeaturesEndpoint_MissingQuery(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features/search")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestFeaturesByCategoryEndpoint_NotFound(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/features/category/no-such-category")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestWebSocketQuickAnalysis(t *testing.T) {
	srv := testServer(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws/quick"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	defer func() { _ = conn.Close() }()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("debug a crash in the api server")))

	var reply struct {
		Task   string `json:"task"`
		Result struct {
			Keywords      []string `json:"keywords"`
			TopCategories []string `json:"topCategories"`
			Complexity    string   `json:"complexity"`
		} `json:"result"`
	}
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "debug a crash in the api server", reply.Task)
	assert.NotEmpty(t, reply.Result.Complexity)

	// Below the minimum length the stream yields an empty result, not an error.
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ab")))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "ab", reply.Task)
	assert.Empty(t, reply.Result.Keywords)
	assert.Equal(t, "simple", reply.Result.Complexity)
}
