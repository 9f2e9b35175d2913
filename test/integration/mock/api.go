package mock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

type recordedRequest struct {
	headers map[string]string
	query   map[string]string
}

type cannedResponse struct {
	status int
	body   string
}

// ApiMock stands in for the sales backend. Unconfigured paths answer 404.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	responses map[string]cannedResponse
	requests  map[string][]recordedRequest
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		responses: map[string]cannedResponse{},
		requests:  map[string][]recordedRequest{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)

	recorded := recordedRequest{
		headers: map[string]string{},
		query:   map[string]string{},
	}
	for key, value := range r.Header {
		recorded.headers[key] = value[0]
	}
	for key, value := range r.URL.Query() {
		recorded.query[key] = value[0]
	}

	a.mu.Lock()
	key := r.Method + r.URL.Path
	a.requests[key] = append(a.requests[key], recorded)
	resp, ok := a.responses[key]
	a.mu.Unlock()

	if !ok {
		resp = cannedResponse{status: http.StatusNotFound, body: `{"error":"not found"}`}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func (a *ApiMock) SetResponse(method, path string, status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = cannedResponse{status: status, body: body}
}

func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests[method+path])
}

// GetHeader returns a header of the index-th request to path, -1 for the last one.
func (a *ApiMock) GetHeader(method, path string, index int, header string) (string, bool) {
	req, ok := a.request(method, path, index)
	if !ok {
		return "", false
	}
	value, ok := req.headers[http.CanonicalHeaderKey(header)]
	return value, ok
}

// GetQuery returns a query parameter of the index-th request to path, -1 for the last one.
func (a *ApiMock) GetQuery(method, path string, index int, param string) (string, bool) {
	req, ok := a.request(method, path, index)
	if !ok {
		return "", false
	}
	value, ok := req.query[param]
	return value, ok
}

func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses = map[string]cannedResponse{}
	a.requests = map[string][]recordedRequest{}
}

func (a *ApiMock) request(method, path string, index int) (recordedRequest, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	reqs := a.requests[method+path]
	if index < 0 {
		index = len(reqs) + index
	}
	if index < 0 || index >= len(reqs) {
		return recordedRequest{}, false
	}
	return reqs[index], true
}
