// Package web serves the site's JSON API: content listings, search, and the
// form intake endpoints.
package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ledgerhall/site/internal/content"
	"github.com/ledgerhall/site/internal/mailer"
	"github.com/ledgerhall/site/internal/newsletter"
	"github.com/ledgerhall/site/internal/search"
	"github.com/ledgerhall/site/internal/storage"
)

// Server holds the request-scoped collaborators. It keeps no mutable state:
// every request re-reads the content store.
type Server struct {
	store     *content.Store
	index     *search.Index
	inquiries storage.InquiryStore // nil when no datastore is configured
	mail      mailer.Sender
	news      *newsletter.Client
	log       *zap.Logger
}

// NewServer wires a Server. inquiries may be nil; mail and news must not be.
func NewServer(store *content.Store, inquiries storage.InquiryStore, mail mailer.Sender, news *newsletter.Client, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		store:     store,
		index:     search.NewIndex(store, log),
		inquiries: inquiries,
		mail:      mail,
		news:      news,
		log:       log,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/articles", s.handleArticles)
	mux.HandleFunc("/api/articles/", s.handleArticleBySlug) // /api/articles/{slug}
	mux.HandleFunc("/api/glossary", s.handleGlossary)
	mux.HandleFunc("/api/glossary/", s.handleTermBySlug) // /api/glossary/{slug}
	mux.HandleFunc("/api/authors", s.handleAuthors)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/healthz", s.handleHealth)
	mux.HandleFunc("/api/contact", s.handleContact)
	mux.HandleFunc("/api/newsletter/subscribe", s.handleNewsletterSubscribe)
	mux.HandleFunc("/api/inquiry", s.handleInquiry)

	return s.requestLog(securityHeaders(mux))
}

// Serve starts the HTTP server on addr and blocks.
func Serve(addr string, s *Server) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.log.Info("serving", zap.String("addr", listener.Addr().String()))
	return http.Serve(listener, s.Handler())
}

// --- Middleware ---

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeFormError is the {success:false, error} shape the form endpoints use.
func writeFormError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}
