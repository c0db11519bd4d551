package service

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/gpmldiff/gpml"
	"github.com/viant/gpmldiff/model"
)

const oldDocument = `<Pathway xmlns="http://pathvisio.org/GPML/2013a" Name="p">
  <Label TextLabel="A" GraphId="l1"><Graphics CenterX="10" CenterY="10" Width="20" Height="10"/></Label>
</Pathway>`

const newDocument = `<Pathway xmlns="http://pathvisio.org/GPML/2013a" Name="p">
  <Label TextLabel="B" GraphId="l1"><Graphics CenterX="10" CenterY="10" Width="20" Height="10"/></Label>
</Pathway>`

func multipartRequest(t *testing.T, URL string, files map[string]string, fields map[string]string) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, content := range files {
		part, err := writer.CreateFormFile(name, name+".gpml")
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	require.NoError(t, writer.Close())
	request := httptest.NewRequest(http.MethodPost, URL, body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	return request
}

func serve(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestService_Health(t *testing.T) {
	handler := New(nil, nil).Handler()
	response := serve(handler, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, response.Code)
	assert.JSONEq(t, `{"status":"ok"}`, response.Body.String())
}

func TestService_Diff(t *testing.T) {
	var testCases = []struct {
		description string
		files       map[string]string
		format      string
		status      int
		contains    string
	}{
		{
			description: "text",
			files:       map[string]string{"old": oldDocument, "new": newDocument},
			status:      http.StatusOK,
			contains:    "modify: [Label id='l1' lbl='A' @10,10][TextLabel: 'A' -> 'B']",
		},
		{
			description: "delta",
			files:       map[string]string{"old": oldDocument, "new": newDocument},
			format:      "delta",
			status:      http.StatusOK,
			contains:    `<Change attr="TextLabel" old="A" new="B">`,
		},
		{
			description: "svg",
			files:       map[string]string{"old": oldDocument, "new": newDocument},
			format:      "svg",
			status:      http.StatusOK,
			contains:    "OLD: old.gpml",
		},
		{
			description: "unsupported format",
			files:       map[string]string{"old": oldDocument, "new": newDocument},
			format:      "pdf",
			status:      http.StatusBadRequest,
			contains:    "unsupported output format",
		},
		{
			description: "missing file",
			files:       map[string]string{"old": oldDocument},
			status:      http.StatusBadRequest,
			contains:    "missing new",
		},
		{
			description: "invalid document",
			files:       map[string]string{"old": oldDocument, "new": "<Pathway"},
			status:      http.StatusBadRequest,
			contains:    "invalid GPML document",
		},
	}
	handler := New(nil, nil).Handler()
	for _, testCase := range testCases {
		fields := map[string]string{}
		if testCase.format != "" {
			fields["format"] = testCase.format
		}
		response := serve(handler, multipartRequest(t, "/v1/diff", testCase.files, fields))
		assert.Equal(t, testCase.status, response.Code, testCase.description)
		assert.Contains(t, response.Body.String(), testCase.contains, testCase.description)
	}
}

func TestService_Patch(t *testing.T) {
	service := New(nil, nil)
	handler := service.Handler()
	response := serve(handler, multipartRequest(t, "/v1/diff", map[string]string{"old": oldDocument, "new": newDocument}, map[string]string{"format": "delta"}))
	require.Equal(t, http.StatusOK, response.Code)
	deltaDocument := response.Body.String()

	response = serve(handler, multipartRequest(t, "/v1/patch", map[string]string{"pathway": oldDocument, "delta": deltaDocument}, nil))
	require.Equal(t, http.StatusOK, response.Code, response.Body.String())
	assert.Equal(t, "inserted: 0, modified: 1, deleted: 0, rejected: 0", response.Header().Get("X-Patch-Report"))
	patched, err := gpml.Unmarshal(response.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "B", patched.ElementByID("l1").Text(model.TextLabel))

	response = serve(handler, multipartRequest(t, "/v1/patch", map[string]string{"pathway": newDocument, "delta": deltaDocument}, map[string]string{"reverse": "true"}))
	require.Equal(t, http.StatusOK, response.Code, response.Body.String())
	reverted, err := gpml.Unmarshal(response.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "A", reverted.ElementByID("l1").Text(model.TextLabel))

	response = serve(handler, multipartRequest(t, "/v1/patch", map[string]string{"pathway": oldDocument, "delta": "<Patch/>"}, nil))
	assert.Equal(t, http.StatusBadRequest, response.Code)
	var payload errorResponse
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &payload))
	assert.Contains(t, payload.Error, "invalid delta document")
}

func TestService_Metrics(t *testing.T) {
	handler := New(nil, nil).Handler()
	serve(handler, multipartRequest(t, "/v1/diff", map[string]string{"old": oldDocument, "new": newDocument}, nil))
	response := serve(handler, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, response.Code)
	body := response.Body.String()
	assert.True(t, strings.Contains(body, `gpmldiff_events_total{event="modify",type="Label"} 1`), body)
	assert.Contains(t, body, `gpmldiff_http_requests_total{method="POST",path="/v1/diff",status="200"} 1`)
}
