// Package storage persists binary attachments for assessments. The only
// attachment today is the initial patient consent signature image.
package storage

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SignatureStore saves a decoded signature image and returns a stable
// reference that is recorded on the assessment row.
type SignatureStore interface {
	Save(assessmentID string, data []byte) (string, error)
}

// DiskStore writes signature images below a media directory, mirroring the
// assessments/patient_signatures/ layout of the original deployment.
type DiskStore struct {
	MediaDir string
}

func NewDiskStore(mediaDir string) *DiskStore {
	return &DiskStore{MediaDir: mediaDir}
}

func (s *DiskStore) Save(assessmentID string, data []byte) (string, error) {
	dir := filepath.Join(s.MediaDir, "assessments", "patient_signatures")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create signature directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.png", assessmentID, uuid.New().String())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write signature image: %w", err)
	}
	return path, nil
}

// DecodeSignature decodes a base64 signature payload. Payloads may arrive as
// bare base64 or as a data URI ("data:image/png;base64,....").
func DecodeSignature(payload string) ([]byte, error) {
	if idx := strings.Index(payload, "base64,"); idx >= 0 {
		payload = payload[idx+len("base64,"):]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 signature payload: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty signature payload")
	}
	return data, nil
}
