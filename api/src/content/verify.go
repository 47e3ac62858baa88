package content

import (
	"context"
	"net/http"
	"time"

	reasoncodes "ecertify/pkg/reason_codes"
)

type Verification struct {
	ContentId   string    `json:"content_id"`
	Valid       bool      `json:"valid"`
	Stored      bool      `json:"stored"`
	ValidFormat bool      `json:"valid_format"`
	Size        int       `json:"size,omitempty"`
	ContentType string    `json:"content_type,omitempty"`
	CheckedAt   time.Time `json:"checked_at"`
}

// Verify reports whether contentId is held by store or at least has the shape of a content id.
// A store failure other than a missing file is returned as an error.
func Verify(ctx context.Context, store Store, contentId string) (Verification, error) {
	v := Verification{
		ContentId:   contentId,
		ValidFormat: IsValidContentId(contentId),
		CheckedAt:   time.Now().UTC(),
	}
	if contentId == "" {
		return v, reasoncodes.New(reasoncodes.ErrInvalidInput, "content id is required")
	}

	data, err := store.Get(ctx, contentId)
	switch {
	case reasoncodes.Is(err, reasoncodes.ErrNotFound):
	case err != nil:
		return v, err
	default:
		v.Stored = true
		v.Size = len(data)
		v.ContentType = http.DetectContentType(data)
	}
	v.Valid = v.Stored || v.ValidFormat
	return v, nil
}
