// chunk-cli runs the chunking pipeline over a local document and prints
// the result as JSON. It reads plain text from a file or stdin, or
// extracts text from a PDF.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/cognicore/jurichunk/pkg/jurichunk"
	"github.com/cognicore/jurichunk/pkg/jurichunk/config"
)

func main() {
	var (
		inPath         = flag.String("in", "", "Input text file (defaults to stdin)")
		pdfPath        = flag.String("pdf", "", "Input PDF file (overrides -in)")
		target         = flag.Int("target", jurichunk.DefaultTargetSize, "Target chunk size in words")
		overlap        = flag.Int("overlap", jurichunk.DefaultOverlap, "Overlap size in words")
		userID         = flag.String("user", "", "User ID stamped on chunks (optional)")
		projectID      = flag.String("project", "", "Project ID stamped on chunks (optional)")
		metadata       = flag.Bool("metadata", false, "Stamp document ID on every chunk")
		stripHTML      = flag.Bool("html", false, "Strip HTML markup before chunking")
		keywordsPath   = flag.String("keywords", "", "Keyword tier override file (optional)")
		categoriesPath = flag.String("categories", "", "Category override file (optional)")
	)
	flag.Parse()

	text, err := readInput(*inPath, *pdfPath)
	if err != nil {
		log.Fatal(err)
	}

	loader := config.Loader{
		KeywordsPath:   *keywordsPath,
		CategoriesPath: *categoriesPath,
	}
	reg, err := loader.Load()
	if err != nil {
		log.Fatal(err)
	}

	engine := jurichunk.New(jurichunk.Options{Registry: reg})
	req := jurichunk.Request{
		Text:            text,
		TargetSize:      *target,
		Overlap:         *overlap,
		UserID:          *userID,
		ProjectID:       *projectID,
		IncludeMetadata: *metadata,
		StripHTML:       *stripHTML,
	}
	if err := jurichunk.ValidateRequest(req); err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(engine.Process(req), "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

func readInput(inPath, pdfPath string) (string, error) {
	if pdfPath != "" {
		return readPDF(pdfPath)
	}
	if inPath != "" {
		data, err := os.ReadFile(inPath)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readPDF(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
