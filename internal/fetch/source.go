package fetch

import (
	"context"
	"shelf/internal/catalog"
	"strings"
)

type Source interface {
	FetchCatalog(ctx context.Context) ([]catalog.Product, error)
}

// NewSource returns the HTTP gateway for http(s) references and a FileSource
// for anything else. Options only apply to the gateway.
func NewSource(ref string, opts ...Option) Source {
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewGateway(ref, opts...)
	}
	return NewFileSource(strings.TrimPrefix(ref, "file://"))
}
