package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meta is the envelope block stamped onto a report by the delivery
// layer. The verification ID doubles as the tail of the verify URL.
type Meta struct {
	VerificationID string `json:"verification_id"`
	GeneratedAt    string `json:"generated_at"`
	Language       string `json:"language"`
	VerifyURL      string `json:"verify_url"`
}

// NewMeta mints a fresh envelope.
func NewMeta(language, verifyBase string) Meta {
	id := uuid.NewString()
	return Meta{
		VerificationID: id,
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		Language:       language,
		VerifyURL:      fmt.Sprintf("%s/%s", strings.TrimRight(verifyBase, "/"), id),
	}
}

// Stamp merges the envelope into the report under the meta key.
func Stamp(out map[string]any, meta Meta) map[string]any {
	return DeepMerge(out, map[string]any{"meta": toMap(meta)})
}
