// Package storage holds the object-store boundary the submission flow uploads
// composed stickers to. Object names are content-addressed (sha256 + ext), so
// re-uploading identical bytes is overwrite-safe at every implementation.
package storage

import "context"

type ObjectStore interface {
	// Put stores data under name and returns the public URL it is served at.
	Put(ctx context.Context, name string, data []byte, mime string) (string, error)
}
