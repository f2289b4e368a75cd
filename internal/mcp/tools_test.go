package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lerian-claude-advisor/internal/analysis"
	"lerian-claude-advisor/internal/catalog"
	"lerian-claude-advisor/internal/logging"
	"lerian-claude-advisor/internal/recommend"
)

func testAdvisorServer(t *testing.T) *AdvisorServer {
	t.Helper()

	store, err := catalog.Load("")
	require.NoError(t, err)

	srv, err := NewAdvisorServer(store, logging.NewNoOpLogger())
	require.NoError(t, err)
	require.NotNil(t, srv.GetMCPServer())
	return srv
}

func TestHandleAnalyzeTask(t *testing.T) {
	srv := testAdvisorServer(t)

	out, err := srv.handleAnalyzeTask(context.Background(), map[string]interface{}{
		"task": "Build a React dashboard with user authentication",
	})
	require.NoError(t, err)

	result, ok := out.(*recommend.Result)
	require.True(t, ok)
	assert.Equal(t, "Build a React dashboard with user authentication", result.Analysis.Task)
	assert.Greater(t, result.Summary.TotalRecommendations, 0)
}

func TestHandleAnalyzeTask_ShortTask(t *testing.T) {
	srv := testAdvisorServer(t)

	out, err := srv.handleAnalyzeTask(context.Background(), map[string]interface{}{"task": "ab"})
	require.NoError(t, err)

	errRes, ok := out.(*errorResult)
	require.True(t, ok)
	assert.NotEmpty(t, errRes.Error)
}

func TestHandleAnalyzeTask_MissingArgument(t *testing.T) {
	srv := testAdvisorServer(t)

	out, err := srv.handleAnalyzeTask(context.Background(), map[string]interface{}{})
	require.NoError(t, err)

	_, ok := out.(*errorResult)
	assert.True(t, ok)
}

func TestHandleQuickAnalyze(t *testing.T) {
	srv := testAdvisorServer(t)

	out, err := srv.handleQuickAnalyze(context.Background(), map[string]interface{}{
		"task": "debug a crash in the api server",
	})
	require.NoError(t, err)

	quick, ok := out.(*analysis.QuickResult)
	require.True(t, ok)
	assert.LessOrEqual(t, len(quick.Keywords), 10)
	assert.LessOrEqual(t, len(quick.TopCategories), 3)
	assert.NotEmpty(t, quick.Complexity)
}

func TestHandleListCategories(t *testing.T) {
	srv := testAdvisorServer(t)

	out, err := srv.handleListCategories(context.Background(), nil)
	require.NoError(t, err)

	m, ok := out.(map[string]interface{})
	require.True(t, ok)
	categories, ok := m["categories"].([]catalog.Category)
	require.True(t, ok)
	assert.NotEmpty(t, categories)
}

func TestHandleSearchFeatures(t *testing.T) {
	srv := testAdvisorServer(t)

	out, err := srv.handleSearchFeatures(context.Background(), map[string]interface{}{
		"query": "react",
	})
	require.NoError(t, err)

	m, ok := out.(map[string]interface{})
	require.True(t, ok)
	results, ok := m["results"].([]catalog.SearchResult)
	require.True(t, ok)
	assert.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 20)
}

func TestHandleSearchFeatures_TypeFilter(t *testing.T) {
	srv := testAdvisorServer(t)

	out, err := srv.handleSearchFeatures(context.Background(), map[string]interface{}{
		"query": "react",
		"type":  "agent",
	})
	require.NoError(t, err)

	m := out.(map[string]interface{})
	for _, r := range m["results"].([]catalog.SearchResult) {
		assert.Equal(t, catalog.FeatureTypeAgent, r.Type)
	}
}

func TestHandleSearchFeatures_BadInput(t *testing.T) {
	srv := testAdvisorServer(t)

	out, err := srv.handleSearchFeatures(context.Background(), map[string]interface{}{})
	require.NoError(t, err)
	errRes, ok := out.(errorResult)
	require.True(t, ok)
	assert.Equal(t, "query is required", errRes.Error)

	out, err = srv.handleSearchFeatures(context.Background(), map[string]interface{}{
		"query": "react",
		"type":  "widget",
	})
	require.NoError(t, err)
	_, ok = out.(errorResult)
	assert.True(t, ok)
}
