// Package webapi provides a web API for the spam classifier and the chat assistant.
package webapi

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	cache "github.com/go-pkgz/expirable-cache/v3"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/snehiltiwari001/ChatBotAI/lib/chatbot"
	"github.com/snehiltiwari001/ChatBotAI/lib/spamcheck"
)

//go:generate moq --out mocks/classifier.go --pkg mocks --with-resets --skip-ensure . Classifier
//go:generate moq --out mocks/responder.go --pkg mocks --with-resets --skip-ensure . Responder
//go:generate moq --out mocks/history.go --pkg mocks --with-resets --skip-ensure . History

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
	authUser            = "chatbot-ai" // basic auth user for history api
)

// Server is a web API server.
type Server struct {
	Config
	results cache.Cache[string, spamcheck.ClassifyResponse] // nil if caching disabled
	logLock sync.Mutex                                       // serializes chat log writes
}

// Config defines server parameters
type Config struct {
	Version     string        // version to show in App-Version header
	ListenAddr  string        // listen address
	Classifier  Classifier    // spam classifier
	Responder   Responder     // chat assistant
	History     History       // checks history, in-memory if not set
	HistorySize int           // size of in-memory history, used if History is not set
	RateLimit   float64       // max requests per second per client, 0 - unlimited
	MaxBodySize int64         // max request body size, 0 - 1M
	CacheSize   int           // max number of cached classification results, 0 - no cache
	CacheTTL    time.Duration // ttl of cached classification results
	ChatLog     io.Writer     // optional writer for chat exchanges, json lines
	AuthPasswd  string        // basic auth password for history api, history api disabled if empty
}

// Classifier scores email content for spam.
type Classifier interface {
	Check(text string) spamcheck.ClassifyResponse
}

// Responder replies to chat messages.
type Responder interface {
	Reply(msg string) chatbot.Reply
}

// History keeps recent checks.
type History interface {
	Write(ctx context.Context, check spamcheck.Check) error
	Read(ctx context.Context, limit int) ([]spamcheck.Check, error)
}

// NewServer creates a new web API server.
func NewServer(config Config) *Server {
	res := &Server{Config: config}
	if res.History == nil {
		checks := spamcheck.NewLastChecks(res.HistorySize)
		log.Printf("[DEBUG] in-memory history for last %d checks", checks.Size())
		res.History = &memHistory{checks: checks}
	}
	if res.MaxBodySize <= 0 {
		res.MaxBodySize = 1024 * 1024
	}
	if res.CacheSize > 0 {
		res.results = cache.NewCache[string, spamcheck.ClassifyResponse]().WithMaxKeys(res.CacheSize).WithLRU().WithTTL(res.CacheTTL)
	}
	return res
}

// Run starts server and accepts requests for spam classification and chat.
func (s *Server) Run(ctx context.Context) error {
	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()))
	router.Use(rest.AppInfo("chatbot-ai", "snehiltiwari001", s.Version), rest.Ping)
	if s.RateLimit > 0 {
		lmt := tollbooth.NewLimiter(s.RateLimit, nil)
		lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})
		router.Use(tollbooth.HTTPMiddleware(lmt))
	}
	router.Use(rest.SizeLimit(s.MaxBodySize))

	if s.AuthPasswd != "" {
		log.Printf("[INFO] basic auth enabled for history api, user %q", authUser)
	} else {
		log.Printf("[WARN] basic auth password not set, history api disabled")
	}

	srv := &http.Server{Addr: s.ListenAddr, Handler: s.routes(router), ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout: 10 * time.Second, WriteTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown webapi server: %v", err)
		} else {
			log.Printf("[INFO] webapi server stopped")
		}
	}()

	log.Printf("[INFO] start webapi server on %s", s.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

// routes registers api handlers and returns the router wrapped with cors handling
func (s *Server) routes(router *routegroup.Bundle) http.Handler {
	api := router.Mount("/api")
	api.HandleFunc("POST /classify", s.classifyHandler) // classify email content
	api.HandleFunc("POST /chatbot", s.chatbotHandler)   // reply to chat message

	// history returns submitted texts, registered only with auth password set
	if s.AuthPasswd != "" {
		authAPI := api.With(rest.BasicAuthWithUserPasswd(authUser, s.AuthPasswd))
		authAPI.HandleFunc("GET /history", s.historyHandler) // recent checks
	}

	// cors is outside the router to answer preflight requests before method matching
	return routegroup.Wrap(router, corsMiddleware("/api/classify", "/api/chatbot"))
}

// classifyHandler handles POST /api/classify request.
// It gets email content from request body and returns spam and ham probabilities.
func (s *Server) classifyHandler(w http.ResponseWriter, r *http.Request) {
	req := spamcheck.ClassifyRequest{}
	if err := decodeRequest(r.Body, &req); err != nil || req.Email == nil {
		log.Printf("[WARN] can't get email from classify request, decode error: %v", err)
		renderError(w, http.StatusBadRequest, "No email content provided")
		return
	}

	resp := s.classify(*req.Email)
	log.Printf("[DEBUG] classified %d bytes: %s", len(*req.Email), resp)
	s.record(r.Context(), spamcheck.Check{Kind: spamcheck.KindClassify, Text: *req.Email,
		Spam: resp.IsSpam, Probability: resp.SpamProbability})
	rest.RenderJSON(w, resp)
}

// chatbotHandler handles POST /api/chatbot request.
// Email-like messages get the spam verdict, other messages get canned replies.
func (s *Server) chatbotHandler(w http.ResponseWriter, r *http.Request) {
	req := spamcheck.ChatRequest{}
	if err := decodeRequest(r.Body, &req); err != nil || req.Message == nil {
		log.Printf("[WARN] can't get message from chatbot request, decode error: %v", err)
		renderError(w, http.StatusBadRequest, "No message provided")
		return
	}

	log.Printf("[DEBUG] received chatbot message: %q", *req.Message)
	reply := s.Responder.Reply(*req.Message)
	log.Printf("[DEBUG] sending chatbot response (%s): %q", reply.Kind, reply.Text)

	if reply.Scored {
		s.record(r.Context(), spamcheck.Check{Kind: spamcheck.KindChat, Text: *req.Message,
			Spam: reply.Kind == chatbot.KindSpam, Probability: reply.Probability})
	}
	s.logChat(*req.Message, reply)
	rest.RenderJSON(w, spamcheck.ChatResponse{Response: reply.Text})
}

// historyHandler handles GET /api/history?limit=N request, returns recent checks, newest first.
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 {
			renderError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(l, maxHistoryLimit)
	}

	checks, err := s.History.Read(r.Context(), limit)
	if err != nil {
		log.Printf("[WARN] can't read history: %v", err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't read history", "details": err.Error()})
		return
	}
	rest.RenderJSON(w, rest.JSON{"checks": checks})
}

// classify checks the text with classifier, results are cached if cache enabled
func (s *Server) classify(text string) spamcheck.ClassifyResponse {
	if s.results == nil {
		return s.Classifier.Check(text)
	}
	sum := sha256.Sum256([]byte(text))
	key := hex.EncodeToString(sum[:])
	if resp, ok := s.results.Get(key); ok {
		return resp
	}
	resp := s.Classifier.Check(text)
	s.results.Set(key, resp, 0)
	return resp
}

// record saves the check to history, failures are logged and not returned to the client
func (s *Server) record(ctx context.Context, check spamcheck.Check) {
	check.Timestamp = time.Now()
	log.Printf("[DEBUG] record %s", &check)
	if err := s.History.Write(ctx, check); err != nil {
		log.Printf("[WARN] can't save %s check to history: %v", check.Kind, err)
	}
}

// logChat writes chat exchange to the chat log as a json line
func (s *Server) logChat(msg string, reply chatbot.Reply) {
	if s.ChatLog == nil {
		return
	}
	entry := struct {
		TimeStamp   string  `json:"timestamp"`
		Message     string  `json:"message"`
		Response    string  `json:"response"`
		Kind        string  `json:"kind"`
		Probability float64 `json:"probability,omitempty"`
	}{
		TimeStamp:   time.Now().In(time.Local).Format(time.RFC3339),
		Message:     msg,
		Response:    reply.Text,
		Kind:        string(reply.Kind),
		Probability: reply.Probability,
	}
	line, err := json.Marshal(&entry)
	if err != nil {
		log.Printf("[WARN] can't marshal chat log entry, %v", err)
		return
	}

	s.logLock.Lock()
	defer s.logLock.Unlock()
	if _, err := s.ChatLog.Write(append(line, '\n')); err != nil {
		log.Printf("[WARN] can't write to chat log, %v", err)
	}
}

// corsMiddleware allows cross-origin requests from any origin to the given paths and answers
// preflight requests for them. Other paths get no cors headers.
func corsMiddleware(paths ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(paths))
	for _, p := range paths {
		allowed[p] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allowed[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Access-Control-Allow-Origin", "*")
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
				if headers := r.Header.Get("Access-Control-Request-Headers"); headers != "" {
					w.Header().Set("Access-Control-Allow-Headers", headers)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// decodeRequest decodes a single json value from the body, anything but whitespace after it is an error
func decodeRequest(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("can't decode request: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after json value")
	}
	return nil
}

func renderError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	rest.RenderJSON(w, rest.JSON{"error": msg})
}

// memHistory is an in-memory History
type memHistory struct {
	checks *spamcheck.LastChecks
}

func (m *memHistory) Write(_ context.Context, check spamcheck.Check) error {
	m.checks.Push(check)
	return nil
}

func (m *memHistory) Read(_ context.Context, limit int) ([]spamcheck.Check, error) {
	return m.checks.Last(limit), nil
}
