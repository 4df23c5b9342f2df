package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ledgerhall/site/internal/content"
	"github.com/ledgerhall/site/internal/glossary"
	"github.com/ledgerhall/site/internal/leads"
	"github.com/ledgerhall/site/internal/mailer"
	"github.com/ledgerhall/site/internal/newsletter"
	"github.com/ledgerhall/site/internal/storage"
)

// maxBodySize caps form submission bodies (64 KB).
const maxBodySize = 64 * 1024

// --- Content handlers ---

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.store.Articles()
	if err != nil && !errors.Is(err, content.ErrSourceMissing) {
		writeError(w, http.StatusInternalServerError, "failed to load articles")
		return
	}

	metas := make([]content.ArticleMeta, 0, len(articles))
	for _, a := range articles {
		metas = append(metas, a.Meta())
	}
	writeJSON(w, metas)
}

// articleDetail is an article plus its glossary-linked body and resolved
// author profile.
type articleDetail struct {
	content.ArticleMeta
	Body   string          `json:"body"`
	Author *content.Author `json:"authorProfile,omitempty"`
}

func (s *Server) handleArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/articles/")
	if slug == "" {
		s.handleArticles(w, r)
		return
	}

	article, err := s.store.ArticleBySlug(slug)
	if errors.Is(err, content.ErrNotFound) {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load article")
		return
	}

	// Cross-linking degrades to a plain body when the glossary is unreadable.
	body := article.Body
	if terms, err := s.store.GlossaryTerms(); err == nil {
		body = glossary.CrossLink(article.ID, body, terms)
	} else {
		s.log.Warn("serving article without glossary links", zap.String("slug", slug), zap.Error(err))
	}

	detail := articleDetail{ArticleMeta: article.Meta(), Body: body}
	if author, err := s.store.AuthorForArticle(article.Author); err == nil {
		detail.Author = &author
	}
	writeJSON(w, detail)
}

func (s *Server) handleGlossary(w http.ResponseWriter, r *http.Request) {
	terms, err := s.store.GlossaryTerms()
	if err != nil && !errors.Is(err, content.ErrSourceMissing) {
		writeError(w, http.StatusInternalServerError, "failed to load glossary")
		return
	}
	writeJSON(w, terms)
}

func (s *Server) handleTermBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimPrefix(r.URL.Path, "/api/glossary/")
	if slug == "" {
		s.handleGlossary(w, r)
		return
	}

	term, err := s.store.TermBySlug(slug)
	if errors.Is(err, content.ErrNotFound) {
		writeError(w, http.StatusNotFound, "term not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load term")
		return
	}
	writeJSON(w, term)
}

func (s *Server) handleAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := s.store.Authors()
	if err != nil && !errors.Is(err, content.ErrSourceMissing) {
		writeError(w, http.StatusInternalServerError, "failed to load authors")
		return
	}
	writeJSON(w, authors)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	// Query never hard-fails: content errors degrade to the static pages.
	writeJSON(w, s.index.Query(r.URL.Query().Get("q")))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"ok": true})
}

// --- Form handlers ---

type contactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	Organization string `json:"organization"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req contactRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeFormError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		writeFormError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	msg := mailer.ContactMessage{
		Name:         req.Name,
		Email:        req.Email,
		Subject:      req.Subject,
		Message:      req.Message,
		Organization: req.Organization,
	}
	if err := s.mail.SendContact(r.Context(), msg); err != nil {
		s.log.Error("contact mail failed", zap.Error(err))
		writeFormError(w, http.StatusInternalServerError, "failed to send message")
		return
	}

	writeJSON(w, map[string]any{"success": true, "message": "Thank you, we will be in touch."})
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleNewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req subscribeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeFormError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.news.Subscribe(r.Context(), req.Email)
	if errors.Is(err, newsletter.ErrInvalidEmail) {
		writeFormError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if err != nil {
		s.log.Error("newsletter subscribe failed", zap.Error(err))
		writeFormError(w, http.StatusInternalServerError, "subscription failed")
		return
	}

	writeJSON(w, map[string]any{"success": true})
}

func (s *Server) handleInquiry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		writeFormError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var inq leads.Inquiry
	if err := json.Unmarshal(raw, &inq); err != nil {
		writeFormError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if inq.ServiceType == "" || inq.Email == "" {
		writeFormError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	score := leads.Score(inq)
	ref := uuid.NewString()

	// The datastore write is a best-effort side channel: a failed insert is
	// logged and email delivery still happens.
	if s.inquiries != nil {
		rec := &storage.Inquiry{
			ID:           ref,
			ServiceType:  inq.ServiceType,
			Name:         inq.Name,
			Email:        inq.Email,
			Organization: inq.Organization,
			Score:        score,
			FormData:     json.RawMessage(raw),
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.inquiries.Insert(r.Context(), rec); err != nil {
			s.log.Error("inquiry insert failed", zap.String("ref", ref), zap.Error(err))
		}
	}

	if err := s.mail.SendInquiryNotification(r.Context(), inq, score, ref); err != nil {
		s.log.Error("inquiry notification failed", zap.String("ref", ref), zap.Error(err))
		writeFormError(w, http.StatusInternalServerError, "failed to submit inquiry")
		return
	}
	if inq.ServiceType == "courses" {
		if err := s.mail.SendCourseConfirmation(r.Context(), inq, ref); err != nil {
			// Staff were notified; the confirmation is not worth failing over.
			s.log.Error("course confirmation failed", zap.String("ref", ref), zap.Error(err))
		}
	}

	writeJSON(w, map[string]any{
		"success": true,
		"score":   score,
		"message": "Thank you for your inquiry. Your reference is " + ref + ".",
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	return dec.Decode(v)
}
