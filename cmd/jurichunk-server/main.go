// jurichunk-server exposes the chunking engine over HTTP. The transport is
// a thin shell: it parses, validates ranges and encodes; all processing
// happens in pkg/jurichunk.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/cognicore/jurichunk/pkg/jurichunk"
	"github.com/cognicore/jurichunk/pkg/jurichunk/config"
	"github.com/cognicore/jurichunk/pkg/jurichunk/internalerr"
)

func main() {
	_ = godotenv.Load()

	defaultAddr := os.Getenv("JURICHUNK_ADDR")
	if defaultAddr == "" {
		defaultAddr = ":8000"
	}

	var (
		addr           = flag.String("addr", defaultAddr, "Listen address")
		keywordsPath   = flag.String("keywords", "", "Keyword tier override file (optional)")
		categoriesPath = flag.String("categories", "", "Category override file (optional)")
	)
	flag.Parse()

	loader := config.Loader{
		KeywordsPath:   *keywordsPath,
		CategoriesPath: *categoriesPath,
	}
	reg, err := loader.Load()
	if err != nil {
		log.Fatal(err)
	}

	engine := jurichunk.New(jurichunk.Options{Registry: reg})
	srv := &server{engine: engine}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleRoot)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.HandleFunc("/chunk", srv.handleChunk)

	log.Printf("jurichunk-server %s listening on %s", jurichunk.Version, *addr)
	if err := http.ListenAndServe(*addr, withCORS(mux)); err != nil {
		log.Fatal(err)
	}
}

type server struct {
	engine *jurichunk.Engine
}

// withCORS applies the permissive policy expected by workflow callers.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Legal Document Chunking API",
		"version": jurichunk.Version,
		"endpoints": map[string]string{
			"chunk":  "/chunk - POST - Chunking de documents",
			"health": "/health - GET - Status de l'API",
		},
	})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type chunkingRequest struct {
	ExtractedText string       `json:"extractedText"`
	Options       chunkOptions `json:"options"`
}

type chunkOptions struct {
	TargetChunkSize int    `json:"target_chunk_size"`
	OverlapSize     *int   `json:"overlap_size"`
	UserID          string `json:"userId"`
	ProjectID       string `json:"projectId"`
	IncludeMetadata bool   `json:"include_metadata"`
	StripHTML       bool   `json:"strip_html"`
}

type chunkResponse struct {
	Success bool `json:"success"`
	jurichunk.Result
}

func (s *server) handleChunk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "méthode non autorisée")
		return
	}

	var req chunkingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corps de requête JSON invalide")
		return
	}

	overlap := jurichunk.DefaultOverlap
	if req.Options.OverlapSize != nil {
		overlap = *req.Options.OverlapSize
	}

	engineReq := jurichunk.Request{
		Text:            strings.TrimSpace(req.ExtractedText),
		TargetSize:      req.Options.TargetChunkSize,
		Overlap:         overlap,
		UserID:          req.Options.UserID,
		ProjectID:       req.Options.ProjectID,
		IncludeMetadata: req.Options.IncludeMetadata,
		StripHTML:       req.Options.StripHTML,
	}
	if err := jurichunk.ValidateRequest(engineReq); err != nil {
		writeError(w, http.StatusBadRequest, frenchDetail(err))
		return
	}

	writeJSON(w, http.StatusOK, chunkResponse{Success: true, Result: s.engine.Process(engineReq)})
}

// frenchDetail translates engine errors into the API's client-facing
// messages.
func frenchDetail(err error) string {
	switch {
	case errors.Is(err, internalerr.ErrEmptyText):
		return "Le champ extractedText est requis et ne peut pas être vide"
	case errors.Is(err, internalerr.ErrTextTooShort):
		return "Le texte doit contenir au moins 100 caractères"
	case errors.Is(err, internalerr.ErrInvalidOption):
		return "Paramètres de chunking invalides: target_chunk_size entre 20 et 200, overlap_size entre 0 et 50"
	default:
		return "Erreur lors du traitement du document"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
