package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	require.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_SyncDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sync/doc-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "doc-1", req.DocumentID)
		require.Len(t, req.Operations, 1)
		assert.Equal(t, "op-1", req.Operations[0].ID)

		resp := api.SyncResponse{
			Success:           true,
			AppliedOperations: []string{"op-1"},
			NewCRDTState: &api.CRDTState{
				State: []byte("encoded"),
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.SyncDocument(context.Background(), api.SyncRequest{
		DocumentID: "doc-1",
		Operations: []api.OperationEnvelope{
			{ID: "op-1", Type: api.OperationUpdate, EntityID: "doc-1", Timestamp: 1},
		},
		CRDTUpdate: []byte("local state"),
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"op-1"}, resp.AppliedOperations)
	require.NotNil(t, resp.NewCRDTState)
	assert.Equal(t, []byte("encoded"), resp.NewCRDTState.State)
}

func TestClient_SyncDocument_RemoteError(t *testing.T) {
	// Ошибка уровня приложения внутри успешного HTTP ответа
	tests := []struct {
		name             string
		errs             []api.APIError
		expectedTerminal bool
	}{
		{
			name: "retryable application error",
			errs: []api.APIError{
				{Code: "STORAGE_BUSY", Message: "try later", Terminal: false},
			},
			expectedTerminal: false,
		},
		{
			name: "terminal application error",
			errs: []api.APIError{
				{Code: "INVALID_STATE", Message: "rejected", Terminal: true},
			},
			expectedTerminal: true,
		},
		{
			name:             "no details",
			errs:             nil,
			expectedTerminal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				resp := api.SyncResponse{Success: false, Errors: tt.errs}
				w.Header().Set("Content-Type", "application/json")
				require.NoError(t, json.NewEncoder(w).Encode(resp))
			}))
			defer server.Close()

			client := NewClient(server.URL)

			resp, err := client.SyncDocument(context.Background(), api.SyncRequest{DocumentID: "doc-1"})
			require.Error(t, err)
			require.NotNil(t, resp, "The structured response should come back alongside the error")

			var remoteErr *RemoteError
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, tt.expectedTerminal, IsTerminal(err))
		})
	}
}

func TestClient_SyncDocument_TerminalStatus(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "validation_failed",
			Message: "malformed document id",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.SyncDocument(context.Background(), api.SyncRequest{DocumentID: "doc-1"})
	require.Error(t, err)

	var terminalErr *TerminalError
	require.ErrorAs(t, err, &terminalErr)
	assert.Equal(t, http.StatusUnprocessableEntity, terminalErr.Status)
	assert.Contains(t, terminalErr.Message, "malformed document id")

	// Терминальный статус не повторяется
	assert.Equal(t, int32(1), requests.Load())
}

func TestClient_SyncDocument_RetriesTransientFailure(t *testing.T) {
	// Первые два ответа — 503, третий успешный: retry должен дожать запрос
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.SyncResponse{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.SyncDocument(context.Background(), api.SyncRequest{DocumentID: "doc-1"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int32(3), requests.Load())
}

func TestClient_CreateEntity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/entities", r.URL.Path)

		var req api.EntityRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "document", req.EntityType)
		assert.Equal(t, "doc-1", req.EntityID)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.EntityResponse{
			EntityID: req.EntityID,
			Success:  true,
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.CreateEntity(context.Background(), api.EntityRequest{
		EntityType: "document",
		EntityID:   "doc-1",
		Payload:    []byte(`{"title":"New"}`),
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "doc-1", resp.EntityID)
}

func TestClient_DeleteEntity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/entities/document/doc-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.EntityResponse{
			EntityID: "doc-1",
			Success:  true,
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.DeleteEntity(context.Background(), "document", "doc-1")
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestClient_Health(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		expectError bool
	}{
		{"healthy", http.StatusOK, false},
		{"unavailable", http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1/health", r.URL.Path)
				w.WriteHeader(tt.status)
				if tt.status == http.StatusOK {
					_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"})
				}
			}))
			defer server.Close()

			client := NewClient(server.URL)

			err := client.Health(context.Background())
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_Health_NoRetry(t *testing.T) {
	// Health — это probe: один запрос, без backoff
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	require.Error(t, client.Health(context.Background()))
	assert.Equal(t, int32(1), requests.Load())
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "terminal http error",
			err:      &TerminalError{Status: 422, Message: "rejected"},
			expected: true,
		},
		{
			name:     "wrapped terminal error",
			err:      errors.Join(errors.New("ctx"), &TerminalError{Status: 400}),
			expected: true,
		},
		{
			name:     "terminal remote error",
			err:      &RemoteError{Code: "X", Terminal: true},
			expected: true,
		},
		{
			name:     "retryable remote error",
			err:      &RemoteError{Code: "X", Terminal: false},
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("connection reset"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTerminal(tt.err))
		})
	}
}

func TestIsTerminalStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusNotFound, true},
		{http.StatusUnprocessableEntity, true},
		{http.StatusRequestTimeout, false},
		{http.StatusTooManyRequests, false},
		{http.StatusInternalServerError, false},
		{http.StatusServiceUnavailable, false},
		{http.StatusOK, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isTerminalStatus(tt.status),
			"status %d", tt.status)
	}
}
