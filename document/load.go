package document

import (
	"context"
	"fmt"

	"github.com/viant/afs"
)

// Load loads a document from URL
func Load(ctx context.Context, fs afs.Service, URL string) (*Document, error) {
	content, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load document %v: %w", URL, err)
	}
	return New(URL, content), nil
}
