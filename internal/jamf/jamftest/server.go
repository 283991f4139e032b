// Package jamftest provides an in-memory double of a tenant's Classic
// API for client tests: an OAuth token endpoint plus the get-all and
// get-by-id routes jamfctl uses.
package jamftest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jamfctl/jamfctl/internal/jamf"
)

// Server holds fixture data and auth expectations. Populate it before
// serving; handlers only read.
type Server struct {
	// Token is the bearer token the oauth endpoint issues and the
	// Classic routes require (unless basic auth is configured).
	Token string

	// BasicUser/BasicPass, when set, switch the Classic routes to
	// expect basic auth instead of a bearer token.
	BasicUser string
	BasicPass string

	// LastClientID records the client_id of the most recent token
	// request, for assertions.
	LastClientID string

	lists    map[string][]map[string]any
	details  map[string]map[int]map[string]any
	failures map[string]int
}

func New() *Server {
	return &Server{
		Token:    "test-token",
		lists:    make(map[string][]map[string]any),
		details:  make(map[string]map[int]map[string]any),
		failures: make(map[string]int),
	}
}

// Add registers an item under the endpoint: it appears in the get-all
// response and is served wrapped in the detail key by get-by-id. The
// item must carry a numeric "id".
func (s *Server) Add(ep jamf.Endpoint, item map[string]any) {
	s.lists[ep.Path] = append(s.lists[ep.Path], item)
	if s.details[ep.Path] == nil {
		s.details[ep.Path] = make(map[int]map[string]any)
	}
	if id, ok := item["id"].(int); ok {
		s.details[ep.Path][id] = item
		return
	}
	if id, ok := item["id"].(float64); ok {
		s.details[ep.Path][int(id)] = item
	}
}

// Fail forces the given status code for every request to the
// endpoint's routes.
func (s *Server) Fail(ep jamf.Endpoint, status int) {
	s.failures[ep.Path] = status
}

// FailDetail forces the given status code for get-by-id of one item
// while leaving the collection route healthy.
func (s *Server) FailDetail(ep jamf.Endpoint, id int, status int) {
	s.failures[ep.Path+"/"+strconv.Itoa(id)] = status
}

// Router returns the chi router serving the fake API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/oauth/token", s.issueToken)
	r.Route("/JSSResource", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/{resource}", s.list)
		r.Get("/{resource}/id/{id}", s.detail)
	})
	return r
}

func (s *Server) issueToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if r.PostForm.Get("grant_type") != "client_credentials" {
		http.Error(w, "unsupported grant type", http.StatusBadRequest)
		return
	}
	s.LastClientID = r.PostForm.Get("client_id")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"access_token": s.Token,
		"token_type":   "Bearer",
		"expires_in":   1200,
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.BasicUser != "" {
			user, pass, ok := r.BasicAuth()
			if !ok || user != s.BasicUser || pass != s.BasicPass {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		} else if r.Header.Get("Authorization") != "Bearer "+s.Token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	ep, ok := endpointByPath(resource)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if status, forced := s.failures[resource]; forced {
		http.Error(w, http.StatusText(status), status)
		return
	}
	items := s.lists[resource]
	if items == nil {
		items = []map[string]any{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{ep.ListKey: items})
}

func (s *Server) detail(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	ep, ok := endpointByPath(resource)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	if status, forced := s.failures[resource+"/"+strconv.Itoa(id)]; forced {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if status, forced := s.failures[resource]; forced {
		http.Error(w, http.StatusText(status), status)
		return
	}
	item, found := s.details[resource][id]
	if !found {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{ep.DetailKey: item})
}

func endpointByPath(path string) (jamf.Endpoint, bool) {
	for _, ep := range jamf.Endpoints {
		if ep.Path == path {
			return ep, true
		}
	}
	return jamf.Endpoint{}, false
}
