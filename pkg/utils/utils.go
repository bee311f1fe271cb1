package utils

import (
	"crypto/rand"
	"errors"
	"strings"
	"time"

	goslug "github.com/gosimple/slug"
	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	Slug(title string) string
	ValidateImageRef(ref string) error
}

type utils struct {
	maxDataURLSize int
}

func New() IUtils {
	return &utils{
		maxDataURLSize: 5 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// Slug derives a URL slug from a blog title. Uniqueness is not guaranteed;
// the remote API owns the stored value.
func (u *utils) Slug(title string) string {
	return goslug.Make(title)
}

// ValidateImageRef accepts either a remote image URL or an inline base64
// data URL (the unsaved-draft form). Data URLs are size-capped; anything
// else is rejected before it reaches the remote API.
func (u *utils) ValidateImageRef(ref string) error {
	if ref == "" {
		return errors.New("no image provided")
	}

	if strings.HasPrefix(ref, "data:image/") {
		if len(ref) > u.maxDataURLSize {
			return errors.New("image exceeds size limit")
		}
		if !strings.Contains(ref, ";base64,") {
			return errors.New("malformed image data URL")
		}
		return nil
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return nil
	}

	return errors.New("image must be a URL or an image data URL")
}
