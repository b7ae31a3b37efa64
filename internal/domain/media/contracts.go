// Package media defines the contract for storing binary media such as QR
// code images and event artwork. The current implementations write to the
// local filesystem or to Azure Blob Storage.
package media

import "context"

// Storage abstracts media object storage.
type Storage interface {
	// Save persists the object under name and returns its public URL or path.
	Save(ctx context.Context, name string, contentType string, data []byte) (string, error)

	// Fetch retrieves the object content by name.
	Fetch(ctx context.Context, name string) ([]byte, error)

	// Delete removes the object by name.
	Delete(ctx context.Context, name string) error
}
