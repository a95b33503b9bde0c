// Package lov reads vocabulary lists in the Linked Open Vocabularies JSON
// format.
package lov

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/onto/internal/core/domain"
	"go.trai.ch/onto/internal/core/ports"
)

// entry is one element of the LOV vocabulary/list response.
type entry struct {
	URI       string  `json:"uri"`
	Namespace string  `json:"nsp"`
	Titles    []title `json:"titles"`
}

type title struct {
	Value string `json:"value"`
	Lang  string `json:"lang"`
}

// title picks the English title, falling back to the first one listed.
func (e *entry) title() string {
	for _, t := range e.Titles {
		if t.Lang == "en" {
			return t.Value
		}
	}
	if len(e.Titles) > 0 {
		return e.Titles[0].Value
	}
	return ""
}

// Directory implements ports.VocabularyDirectory on top of a ports.Fetcher,
// so the list is subject to the same timeouts and circuit breaker as imports.
type Directory struct {
	fetcher  ports.Fetcher
	logger   ports.Logger
	validate *validator.Validate
}

// New creates a Directory.
func New(fetcher ports.Fetcher, logger ports.Logger) *Directory {
	return &Directory{
		fetcher:  fetcher,
		logger:   logger,
		validate: validator.New(),
	}
}

// List fetches and decodes the vocabulary list at url. Entries without a
// usable URI are skipped.
func (d *Directory) List(ctx context.Context, url string) ([]domain.Vocabulary, error) {
	src, err := domain.ParseSource(url)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := d.fetcher.Fetch(ctx, src, &buf); err != nil {
		return nil, err
	}

	var entries []entry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		return nil, domain.Fail(domain.ErrVocabularyListInvalid, err, "decode vocabulary list", "url", src.Locator)
	}

	out := make([]domain.Vocabulary, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		v := domain.Vocabulary{
			URI:       strings.TrimSpace(e.URI),
			Title:     strings.TrimSpace(e.title()),
			Namespace: e.Namespace,
		}
		if err := d.validate.Struct(v); err != nil {
			d.logger.Debug(fmt.Sprintf("skipping vocabulary %q: %v", e.URI, err))
			continue
		}
		out = append(out, v)
	}

	d.logger.Debug(fmt.Sprintf("%d vocabularies listed by %s", len(out), src.Locator))
	return out, nil
}
