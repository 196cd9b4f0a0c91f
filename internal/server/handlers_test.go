package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/manuscript-reviewer/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New(Config{Port: 0})
	require.NoError(t, err)
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleIndex_ListsDimensions(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	for _, dim := range types.Dimensions {
		assert.Contains(t, rec.Body.String(), dim)
	}
}

func TestHandleAnalyze_Heuristic(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{
		Text: "Neste trabalho propomos uma metodologia com amostra definida [1].",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Scores, len(types.Dimensions))
	for _, dim := range types.Dimensions {
		assert.GreaterOrEqual(t, result.Scores[dim], 1.0)
		assert.LessOrEqual(t, result.Scores[dim], 10.0)
	}
	require.NotNil(t, result.Signals)
	assert.Equal(t, 1, result.Signals.Citations)
}

func TestHandleAnalyze_EmptyText(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{Text: "   "})

	require.Equal(t, http.StatusOK, rec.Code)

	var result types.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	for _, dim := range types.Dimensions {
		assert.Equal(t, 1.0, result.Scores[dim])
	}
	assert.Nil(t, result.Signals)
}

func TestHandleAnalyze_InvalidEngine(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/analyze", map[string]string{
		"text":   "qualquer",
		"engine": "banana",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestHandleAnalyze_BadJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_LLMWithoutKey(t *testing.T) {
	// No API key configured: the LLM engine must report the configuration
	// error instead of attempting a call.
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/analyze", types.AnalyzeRequest{
		Text:   "texto",
		Engine: types.EngineLLM,
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "GEMINI_API_KEY")
}

func TestHandleAnalyzeBatch_PreservesOrder(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/analyze/batch", types.BatchAnalyzeRequest{
		Texts: []string{"sem citações aqui", "com citações [1] [2] [3]"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp BatchAnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, 0, resp.Results[0].Signals.Citations)
	assert.Equal(t, 3, resp.Results[1].Signals.Citations)
}

func TestHandleAnalyzeBatch_EmptyList(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/analyze/batch", types.BatchAnalyzeRequest{Texts: []string{}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health", nil)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflights(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
