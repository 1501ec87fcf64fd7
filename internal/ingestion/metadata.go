package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Metadata describes one decoded résumé upload. Callers that persist analysis
// results can use the hash to detect re-uploads of identical content.
type Metadata struct {
	Filename    string `json:"filename"`
	Format      string `json:"format"`       // pdf, docx, or txt
	Characters  int    `json:"characters"`   // length of the cleaned text
	Hash        string `json:"hash"`         // SHA-256 hex digest of the cleaned text
	ExtractedAt string `json:"extracted_at"` // RFC3339
}

// NewMetadata builds the metadata record for a decoded résumé
func NewMetadata(path, cleanedText string) *Metadata {
	return &Metadata{
		Filename:    filepath.Base(path),
		Format:      strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		Characters:  len(cleanedText),
		Hash:        computeHash(cleanedText),
		ExtractedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func computeHash(content string) string {
	digest := sha256.Sum256([]byte(content))
	return hex.EncodeToString(digest[:])
}

// ToJSON marshals the metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return data, nil
}
