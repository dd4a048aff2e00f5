package stripetest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/schema"
	"github.com/tidwall/gjson"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// listQuery is the cursor state of a list request.
type listQuery struct {
	Limit         int    `schema:"limit"`
	StartingAfter string `schema:"starting_after"`
	EndingBefore  string `schema:"ending_before"`
}

// Server is an httptest server that emulates list and object endpoints.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	lists    map[string][]json.RawMessage
	objects  map[string]reply
	requests []*RecordedRequest
}

type reply struct {
	status int
	body   []byte
}

// NewServer starts a server; it is closed when the test ends.
func NewServer(t interface{ Cleanup(func()) }) *Server {
	s := &Server{
		lists:   make(map[string][]json.RawMessage),
		objects: make(map[string]reply),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// HandleList serves items from GET path with cursor pagination. Each item
// must encode to an object with an "id".
func (s *Server) HandleList(path string, items ...any) {
	raw := make([]json.RawMessage, len(items))
	for i, it := range items {
		data, err := json.Marshal(it)
		if err != nil {
			panic(err)
		}
		raw[i] = data
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[path] = raw
}

// HandleJSON serves body with status for method and path.
func (s *Server) HandleJSON(method, path string, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[method+" "+path] = reply{status: status, body: data}
}

// Requests returns every request the server has received.
func (s *Server) Requests() []*RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rec := record(r.Method, r.URL.String(), r.Header, body)

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	items, isList := s.lists[r.URL.Path]
	obj, isObj := s.objects[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Request-Id", "req_test")
	switch {
	case isObj:
		w.WriteHeader(obj.status)
		w.Write(obj.body)
	case isList && r.Method == http.MethodGet:
		s.serveList(w, r, items)
	default:
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"Unrecognized request URL"}}`)
	}
}

func (s *Server) serveList(w http.ResponseWriter, r *http.Request, items []json.RawMessage) {
	var q listQuery
	if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"bad list parameters"}}`)
		return
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}

	indexOf := func(id string) int {
		for i, it := range items {
			if gjson.GetBytes(it, "id").String() == id {
				return i
			}
		}
		return -1
	}

	start, end := 0, len(items)
	switch {
	case q.StartingAfter != "":
		start = indexOf(q.StartingAfter) + 1
		end = min(start+q.Limit, len(items))
	case q.EndingBefore != "":
		end = max(indexOf(q.EndingBefore), 0)
		start = max(end-q.Limit, 0)
	default:
		end = min(q.Limit, len(items))
	}

	hasMore := end < len(items)
	if q.EndingBefore != "" {
		hasMore = start > 0
	}
	page := struct {
		Object  string            `json:"object"`
		Data    []json.RawMessage `json:"data"`
		HasMore bool              `json:"has_more"`
		URL     string            `json:"url"`
	}{"list", items[start:end], hasMore, r.URL.Path}
	if page.Data == nil {
		page.Data = []json.RawMessage{}
	}
	json.NewEncoder(w).Encode(page)
}
