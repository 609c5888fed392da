package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/helpdoc/internal/doctree"
	"github.com/dgallion1/helpdoc/internal/extract"
	"github.com/dgallion1/helpdoc/internal/parser"
)

// handleExtract runs the string extractor over uploaded documents, in form
// order. The first document that cannot be parsed fails the whole request.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	names := make([]string, 0, len(files))
	byName := make(map[string]int, len(files))
	for i, fh := range files {
		name := sanitizeFilename(fh.Filename)
		if !parser.IsSupportedExtension(name) {
			jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(name)), http.StatusBadRequest)
			return
		}
		if _, dup := byName[name]; dup {
			jsonError(w, "duplicate file name: "+name, http.StatusBadRequest)
			return
		}
		if fh.Size > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("%s exceeds max size (%d bytes)", name, s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		byName[name] = i
		names = append(names, name)
	}

	open := func(name string) (*doctree.Document, error) {
		p, err := parser.ForFile(name)
		if err != nil {
			return nil, err
		}
		f, err := files[byName[name]].Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return p.Parse(f, name)
	}

	var out bytes.Buffer
	e := extract.New(&out, s.log)
	if err := e.Run(names, open); err != nil {
		var docErr *extract.DocumentError
		if errors.As(err, &docErr) && errors.Is(err, parser.ErrMalformed) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error":    docErr.Err.Error(),
				"document": docErr.Name,
			})
			return
		}
		s.log.Error("extract upload", "error", err)
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("extracted uploads", "documents", len(names), "units", e.Units())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(out.Bytes())
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." || name == "/" {
		name = "unnamed"
	}
	return name
}
