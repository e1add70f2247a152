package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteError_InternalServerError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/scan", nil)
	w := httptest.NewRecorder()

	WriteError(w, req, errors.New("radio unavailable"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "Internal Server Error", response.Error)
	require.Equal(t, "radio unavailable", response.Message)
}

func TestWriteError_DeadlineExceeded(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/scan", nil)
	w := httptest.NewRecorder()

	WriteError(w, req, fmt.Errorf("scan: %w", context.DeadlineExceeded))

	require.Equal(t, http.StatusGatewayTimeout, w.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "Gateway Timeout", response.Error)
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSONError(w, http.StatusBadRequest, "Invalid Input", "ssid is required")

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "Invalid Input", response.Error)
	require.Equal(t, "ssid is required", response.Message)
}

func TestWriteJSONError_OmitsEmptyMessage(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSONError(w, http.StatusInternalServerError, "Internal Server Error", "")

	require.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestWriteJSON_CompactBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()

	WriteJSON(w, req, http.StatusOK, map[string]int{"a": 1})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Equal(t, `{"a":1}`, w.Body.String())
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()

	// channels cannot be marshaled
	WriteJSON(w, req, http.StatusOK, make(chan int))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "Internal Server Error", response.Error)
}
