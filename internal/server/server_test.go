package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/nidkit/internal/server"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config)
}

func postJSON(t *testing.T, srv *server.Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestCountriesEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/countries", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Countries []server.CountryInfo `json:"countries"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	require.Len(t, response.Countries, 2)
	assert.Equal(t, "AL", response.Countries[0].Code)
	assert.Equal(t, "Albania", response.Countries[0].Name)
	assert.Equal(t, "XK", response.Countries[1].Code)
	assert.Equal(t, "Kosovo", response.Countries[1].Name)
}

func TestDecodeAlbaniaEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/v1/decode/albania", server.ValidateRequest{Nid: "J00101999W"})

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.DecodeResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.True(t, response.Valid)
	require.NotNil(t, response.Info)
	assert.Equal(t, "1990-01-01", response.Info.Birthday.String())
	assert.Equal(t, "M", response.Info.Sex.String())
	assert.True(t, response.Info.IsNational)
}

func TestDecodeAlbaniaEndpoint_Invalid(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		name string
		nid  string
		kind string
	}{
		{"bad checksum", "J00101999A", "checksum_mismatch"},
		{"bad length", "short", "invalid_length"},
		{"bad month code", "J01301001K", "invalid_month_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, srv, "/api/v1/decode/albania", server.ValidateRequest{Nid: tt.nid})

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var response server.ErrorResponse
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)

			assert.False(t, response.Valid)
			assert.Equal(t, tt.kind, response.Kind)
			assert.NotEmpty(t, response.Error)
		})
	}
}

func TestDecodeAlbaniaEndpoint_BadRequest(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/decode/albania", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/v1/validate/XK", server.ValidateRequest{Nid: "1234567892"})

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidateResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.True(t, response.Valid)
	assert.Equal(t, "XK", response.Country)
}

func TestValidateEndpoint_LowercaseCode(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/v1/validate/al", server.ValidateRequest{Nid: "J00101999W"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateEndpoint_Invalid(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/v1/validate/XK", server.ValidateRequest{Nid: "1234567890"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.False(t, response.Valid)
	assert.Equal(t, "checksum_mismatch", response.Kind)
}

func TestValidateEndpoint_UnknownCountry(t *testing.T) {
	srv := newTestServer()

	w := postJSON(t, srv, "/api/v1/validate/ZZ", server.ValidateRequest{Nid: "1234567892"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
