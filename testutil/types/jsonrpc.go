package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type jsonRPCRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// JSONRPCError makes MockJSONRPC answer a call with an error object.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MockServer records the calls it received.
type MockServer struct {
	*httptest.Server

	mu      sync.Mutex
	methods []string
	params  []json.RawMessage
}

func (s *MockServer) Methods() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.methods...)
}

func (s *MockServer) Params(i int) json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params[i]
}

// MockJSONRPC serves the given results, one per request, in order. A string
// is written as the raw JSON result, a JSONRPCError as the error object. Once
// the list is exhausted the last entry is repeated.
func MockJSONRPC(t *testing.T, response interface{}) (*MockServer, func()) {
	var responses []interface{}
	switch r := response.(type) {
	case []string:
		for _, s := range r {
			responses = append(responses, s)
		}
	case []interface{}:
		responses = r
	default:
		responses = []interface{}{r}
	}

	mock := &MockServer{}
	count := 0
	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("could not read request: %v", err)
			return
		}
		var req jsonRPCRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("batch or malformed request: %s", body)
			return
		}

		mock.mu.Lock()
		mock.methods = append(mock.methods, req.Method)
		mock.params = append(mock.params, req.Params)
		i := count
		if i >= len(responses) {
			i = len(responses) - 1
		}
		count++
		mock.mu.Unlock()

		id := string(req.ID)
		if id == "" {
			id = "1"
		}
		w.Header().Set("Content-Type", "application/json")
		switch res := responses[i].(type) {
		case JSONRPCError:
			errBz, _ := json.Marshal(res)
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":%s}`, id, errBz)
		case string:
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, id, res)
		default:
			resBz, _ := json.Marshal(res)
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%s}`, id, resBz)
		}
	}))
	return mock, mock.Server.Close
}
