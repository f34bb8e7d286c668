package watsontest

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Server is an in-memory imitation of the Watson endpoints exercised by the
// clients in this module. It checks the version parameter and the presence
// of credentials the same way the real services reject bad calls.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	sessions  map[string]string // session id -> assistant id
	models    map[string]bool
	documents map[string]map[string]bool // collection id -> document ids
	queries   map[string]map[string]interface{}
}

// NewServer starts a fake Watson server. Callers must Close it.
func NewServer() *Server {
	s := &Server{
		sessions:  make(map[string]string),
		models:    map[string]bool{"en-news": true},
		documents: make(map[string]map[string]bool),
		queries:   make(map[string]map[string]interface{}),
	}

	r := chi.NewRouter()
	r.Use(requireCredentials, requireVersion)

	r.Route("/v2/assistants/{assistant_id}", func(r chi.Router) {
		r.Post("/sessions", s.createSession)
		r.Delete("/sessions/{session_id}", s.deleteSession)
		r.Post("/sessions/{session_id}/message", s.message)
		r.Post("/message", s.messageStateless)
	})

	r.Post("/v1/analyze", s.analyze)
	r.Get("/v1/models", s.listModels)
	r.Delete("/v1/models/{model_id}", s.deleteModel)

	r.Route("/v2/projects/{project_id}", func(r chi.Router) {
		r.Get("/collections", s.listCollections)
		r.Post("/collections/{collection_id}/documents", s.addDocument)
		r.Delete("/collections/{collection_id}/documents/{document_id}", s.deleteDocument)
		r.Get("/training_data/queries", s.listTrainingQueries)
		r.Post("/training_data/queries", s.createTrainingQuery)
		r.Get("/training_data/queries/{query_id}", s.getTrainingQuery)
		r.Delete("/training_data/queries", s.deleteTrainingQueries)
	})

	r.Post("/v1/element_classification", s.classifyElements)

	s.Server = httptest.NewServer(r)
	return s
}

// SessionCount returns the number of open assistant sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func requireCredentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requireVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("version") == "" {
			writeError(w, http.StatusBadRequest, "Missing required query parameter: version")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Global-Transaction-Id", uuid.NewString())
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"code": status, "error": message})
}

func decodeBody(r *http.Request) map[string]interface{} {
	var m map[string]interface{}
	body, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(body, &m)
	if m == nil {
		m = map[string]interface{}{}
	}
	return m
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = chi.URLParam(r, "assistant_id")
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "Invalid Session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{})
}

func (s *Server) reply(r *http.Request) map[string]interface{} {
	text := ""
	if input, ok := decodeBody(r)["input"].(map[string]interface{}); ok {
		text, _ = input["text"].(string)
	}
	return map[string]interface{}{
		"response_type": "text",
		"text":          "Hello! You said: " + text,
	}
}

func (s *Server) message(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	s.mu.Lock()
	assistant, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok || assistant != chi.URLParam(r, "assistant_id") {
		writeError(w, http.StatusNotFound, "Invalid Session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"output": map[string]interface{}{
			"generic": []interface{}{s.reply(r)},
			"intents": []interface{}{map[string]interface{}{"intent": "General_Greetings", "confidence": 0.98}},
		},
	})
}

func (s *Server) messageStateless(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"output": map[string]interface{}{
			"generic": []interface{}{s.reply(r)},
			"intents": []interface{}{map[string]interface{}{"intent": "General_Greetings", "confidence": 0.98}},
		},
		"context": map[string]interface{}{
			"global": map[string]interface{}{"session_id": uuid.NewString()},
		},
	})
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)
	if _, ok := body["features"]; !ok {
		writeError(w, http.StatusBadRequest, "features is required")
		return
	}
	text, _ := body["text"].(string)
	language, _ := body["language"].(string)
	if language == "" {
		language = "en"
	}
	var keywords []interface{}
	for _, word := range strings.Fields(text) {
		if len(word) > 4 {
			keywords = append(keywords, map[string]interface{}{"text": strings.Trim(word, ".,!?"), "relevance": 0.5})
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"language": language,
		"usage":    map[string]interface{}{"text_characters": len(text), "text_units": 1, "features": 1},
		"keywords": keywords,
	})
}

func (s *Server) listModels(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var models []interface{}
	for id := range s.models {
		models = append(models, map[string]interface{}{"model_id": id, "status": "available", "language": "en"})
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"models": models})
}

func (s *Server) deleteModel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "model_id")
	s.mu.Lock()
	ok := s.models[id]
	delete(s.models, id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "model not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (s *Server) listCollections(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var collections []interface{}
	for id := range s.documents {
		collections = append(collections, map[string]string{"collection_id": id, "name": id})
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"collections": collections})
}

func (s *Server) addDocument(w http.ResponseWriter, r *http.Request) {
	mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		writeError(w, http.StatusUnsupportedMediaType, "expected multipart/form-data")
		return
	}
	mr := multipart.NewReader(r.Body, params["boundary"])
	found := false
	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}
		if part.FormName() == "file" || part.FormName() == "metadata" {
			found = true
		}
	}
	if !found {
		writeError(w, http.StatusBadRequest, "file or metadata is required")
		return
	}

	collection := chi.URLParam(r, "collection_id")
	id := uuid.NewString()
	s.mu.Lock()
	if s.documents[collection] == nil {
		s.documents[collection] = make(map[string]bool)
	}
	s.documents[collection][id] = true
	s.mu.Unlock()
	writeJSON(w, http.StatusAccepted, map[string]string{"document_id": id, "status": "processing"})
}

func (s *Server) deleteDocument(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection_id")
	id := chi.URLParam(r, "document_id")
	s.mu.Lock()
	ok := s.documents[collection][id]
	delete(s.documents[collection], id)
	s.mu.Unlock()
	if !ok && r.Header.Get("X-Watson-Discovery-Force") != "true" {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"document_id": id, "status": "deleted"})
}

func (s *Server) listTrainingQueries(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	queries := make([]interface{}, 0, len(s.queries))
	for _, q := range s.queries {
		queries = append(queries, q)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]interface{}{"queries": queries})
}

func (s *Server) createTrainingQuery(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)
	if body["natural_language_query"] == nil || body["examples"] == nil {
		writeError(w, http.StatusBadRequest, "natural_language_query and examples are required")
		return
	}
	body["query_id"] = uuid.NewString()
	s.mu.Lock()
	s.queries[body["query_id"].(string)] = body
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, body)
}

func (s *Server) getTrainingQuery(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	q, ok := s.queries[chi.URLParam(r, "query_id")]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "training query not found")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) deleteTrainingQueries(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.queries = make(map[string]map[string]interface{})
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) classifyElements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"document":      map[string]interface{}{"title": "Contract", "hash": uuid.NewString()},
		"model_id":      "contracts",
		"model_version": "11.0.0",
		"effective_dates": []interface{}{
			map[string]interface{}{
				"confidence_level": "High",
				"text":             "January 1, 2019",
				"location":         map[string]int{"begin": 12, "end": 27},
			},
		},
	})
}
