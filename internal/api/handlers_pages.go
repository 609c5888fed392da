package api

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/dgallion1/helpdoc/internal/extract"
	"github.com/dgallion1/helpdoc/internal/helptree"
	"github.com/go-chi/chi/v5"
)

type pageRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type navNode struct {
	pageRef
	Children []*navNode `json:"children,omitempty"`
}

type pageResponse struct {
	pageRef
	Body      string    `json:"body"`
	Children  []pageRef `json:"children"`
	Requested string    `json:"requested,omitempty"`
}

// handleTree returns the navigation tree below the manual root.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	root, err := s.pages.Root()
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	env := s.session(r)

	var build func(p helptree.Page) *navNode
	build = func(p helptree.Page) *navNode {
		n := &navNode{pageRef: pageRef{ID: p.ID(), Title: p.Title(env)}}
		for _, c := range p.Children() {
			n.Children = append(n.Children, build(c))
		}
		return n
	}
	writeJSON(w, http.StatusOK, build(root))
}

// handlePage renders one page. Unknown identifiers get the fallback page
// with a 404 status.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "pageID")
	env := s.session(r)

	status := http.StatusOK
	p, ok := s.pages.Lookup(id)
	if !ok {
		s.log.Debug("no help for page", "page", id)
		p = s.fallback
		status = http.StatusNotFound
	}

	start := time.Now()
	body, err := p.Body(env)
	s.render.Since(start)
	if err != nil {
		s.log.Error("render page", "page", p.ID(), "error", err)
		jsonError(w, "failed to render page "+p.ID(), http.StatusInternalServerError)
		return
	}

	resp := pageResponse{
		pageRef:  pageRef{ID: p.ID(), Title: p.Title(env)},
		Body:     body,
		Children: []pageRef{},
	}
	for _, c := range p.Children() {
		resp.Children = append(resp.Children, pageRef{ID: c.ID(), Title: c.Title(env)})
	}
	if !ok {
		resp.Requested = id
	}

	if status == http.StatusOK {
		etag := `"` + contentHash([]byte(body))[:16] + `"`
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	writeJSON(w, status, resp)
}

// handleMessages writes the msgids of every page as extraction lines.
func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	root, err := s.pages.Root()
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	e := extract.New(w, s.log)
	if err := e.Tree(root, s.fallback); err != nil {
		s.log.Error("write messages", "error", err)
		return
	}
	s.log.Debug("messages written", "units", e.Units())
}

func contentHash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
