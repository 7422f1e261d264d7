// Package share builds the URLs that let a bracket be reopened elsewhere.
package share

import (
	"fmt"
	"net/url"

	"github.com/avatarneil/bracket.build/internal/codec"
	"github.com/avatarneil/bracket.build/internal/domain/bracket"
)

// Builder renders share links against a configured front-end base URL.
type Builder struct {
	baseURL string
}

// NewBuilder returns a Builder rooted at baseURL, e.g. "https://bracket.build".
func NewBuilder(baseURL string) Builder {
	return Builder{baseURL: baseURL}
}

// URL encodes the snapshot's picks and returns the reopenable link:
// <base>/?b=<token>&name=<owner>. The owner parameter is omitted when blank.
func (b Builder) URL(s bracket.State) (string, error) {
	u, err := url.Parse(b.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse share base url: %w", err)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	q := u.Query()
	q.Set("b", codec.Encode(s))
	if s.Owner != "" {
		q.Set("name", s.Owner)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
