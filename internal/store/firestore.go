// Package store persists accepted submissions as new documents in named
// Firestore collections. Append-only: no reads, no upserts, no dedup —
// identical submissions create separate records on purpose.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

const (
	InspectionsCollection    = "inspections"
	ContactsCollection       = "contacts"
	ChecklistLeadsCollection = "checklistLeads"
)

// Firestore is the lead store adapter.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore builds a client from the three service-account credential
// values. The private key is expected with real newlines (config un-escapes
// the env value).
func NewFirestore(ctx context.Context, projectID, clientEmail, privateKey string) (*Firestore, error) {
	sa := map[string]string{
		"type":         "service_account",
		"project_id":   projectID,
		"client_email": clientEmail,
		"private_key":  privateKey,
		"token_uri":    "https://oauth2.googleapis.com/token",
	}
	creds, err := json.Marshal(sa)
	if err != nil {
		return nil, fmt.Errorf("store: marshal credentials: %w", err)
	}

	client, err := firestore.NewClient(ctx, projectID, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("store: create client: %w", err)
	}
	return &Firestore{client: client}, nil
}

// Append adds exactly one document to collection with a server-assigned
// receivedAt timestamp and returns the new document id.
func (s *Firestore) Append(ctx context.Context, collection string, fields map[string]string) (string, error) {
	doc := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	doc["receivedAt"] = firestore.ServerTimestamp

	ref, _, err := s.client.Collection(collection).Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("store: append to %s: %w", collection, err)
	}
	return ref.ID, nil
}

// Close releases the underlying client.
func (s *Firestore) Close() error {
	return s.client.Close()
}
