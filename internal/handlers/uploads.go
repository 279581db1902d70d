package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"

	"github.com/rrparlour/parlour-booking/internal/imaging"
	"github.com/rrparlour/parlour-booking/internal/storage"
)

// saveUpload persists one uploaded file. Decodable images are normalized to
// webp first; anything else is stored byte-for-byte under its sanitized name.
func saveUpload(ctx context.Context, store storage.Store, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	if normalized, err := imaging.Normalize(bytes.NewReader(data)); err == nil {
		return store.Save(ctx, imaging.WebpName(fh.Filename), normalized)
	}

	return store.Save(ctx, fh.Filename, bytes.NewReader(data))
}
