package repo

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/pkordes/trip-logbook/backend/internal/domain"
	"github.com/pkordes/trip-logbook/backend/internal/upstream"
)

// httpDocumentStore talks to the hosted JSON document API: GET returns the
// document, PATCH replaces it. Both carry the API key header.
type httpDocumentStore struct {
	client    *upstream.Client
	url       string
	apiKey    string
	keyHeader string
}

// NewHTTPDocumentStore constructs a DocumentStore backed by the remote
// document API at url. If url or apiKey is empty, every call fails with
// domain.ErrConfig and no request is sent.
func NewHTTPDocumentStore(client *upstream.Client, url, apiKey, keyHeader string) DocumentStore {
	return &httpDocumentStore{client: client, url: url, apiKey: apiKey, keyHeader: keyHeader}
}

// Fetch GETs the document and normalizes its shape.
func (s *httpDocumentStore) Fetch(ctx context.Context) (Document, error) {
	if err := s.checkConfig(); err != nil {
		return Document{}, fmt.Errorf("repo.DocumentStore.Fetch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return Document{}, fmt.Errorf("repo.DocumentStore.Fetch: build request: %w", err)
	}
	req.Header.Set(s.keyHeader, s.apiKey)
	req.Header.Set("Accept", "application/json")

	body, err := s.client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("repo.DocumentStore.Fetch: %w", err)
	}

	doc, err := decodeDocument(body)
	if err != nil {
		return Document{}, fmt.Errorf("repo.DocumentStore.Fetch: %w", err)
	}
	return doc, nil
}

// Replace PATCHes the full envelope.
func (s *httpDocumentStore) Replace(ctx context.Context, doc Document) error {
	if err := s.checkConfig(); err != nil {
		return fmt.Errorf("repo.DocumentStore.Replace: %w", err)
	}

	payload, err := encodeEnvelope(doc)
	if err != nil {
		return fmt.Errorf("repo.DocumentStore.Replace: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("repo.DocumentStore.Replace: build request: %w", err)
	}
	req.Header.Set(s.keyHeader, s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	if _, err := s.client.Do(req); err != nil {
		return fmt.Errorf("repo.DocumentStore.Replace: %w", err)
	}
	return nil
}

func (s *httpDocumentStore) checkConfig() error {
	if s.url == "" || s.apiKey == "" {
		return fmt.Errorf("%w: TRIPS_API_URL and TRIPS_API_KEY must be set", domain.ErrConfig)
	}
	return nil
}
