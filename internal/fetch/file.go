package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"shelf/internal/catalog"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const snapshotVersion = 1

// snapshotFile is the document written by WriteYAML. FileSource also accepts
// a bare sequence of records.
type snapshotFile struct {
	Version  int      `yaml:"version"`
	Products []record `yaml:"products"`
}

type record struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Price       string `yaml:"price"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category"`
	Image       string `yaml:"image"`
	Rating      struct {
		Rate  float64 `yaml:"rate"`
		Count int     `yaml:"count"`
	} `yaml:"rating"`
}

// FileSource reads a catalog from a local JSON or YAML file. It fails the same
// way the HTTP gateway does, so callers cannot tell the two apart.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) FetchCatalog(ctx context.Context) ([]catalog.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: s.path, Err: err}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &FetchError{Source: s.path, Err: err}
	}

	var items []catalog.Product
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		items, err = decodeYAML(data)
	default:
		items, err = decodeJSON(bytes.NewReader(data))
	}
	if err != nil {
		return nil, &FetchError{Source: s.path, Err: err}
	}
	return items, nil
}

func decodeYAML(data []byte) ([]catalog.Product, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errNotArray
	}

	var records []record
	switch root := doc.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
	case yaml.MappingNode:
		var file snapshotFile
		if err := root.Decode(&file); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
		if file.Products == nil {
			return nil, errNotArray
		}
		records = file.Products
	default:
		return nil, errNotArray
	}

	items := make([]catalog.Product, 0, len(records))
	for _, r := range records {
		p, err := r.product()
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func (r record) product() (catalog.Product, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("product %d: invalid price %q: %w", r.ID, r.Price, err)
	}
	p := catalog.NewProduct(r.ID, r.Title, price).
		WithCategory(r.Category).
		WithImage(r.Image).
		WithRating(r.Rating.Rate, r.Rating.Count)
	p.Description = r.Description
	return p, nil
}

func newRecord(p *catalog.Product) record {
	r := record{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price.String(),
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
	r.Rating.Rate = p.Rating.Rate
	r.Rating.Count = p.Rating.Count
	return r
}

// WriteYAML writes products, in the given order, as a snapshot FileSource can
// read back.
func WriteYAML(w io.Writer, products []*catalog.Product) error {
	file := snapshotFile{
		Version:  snapshotVersion,
		Products: make([]record, 0, len(products)),
	}
	for _, p := range products {
		file.Products = append(file.Products, newRecord(p))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}
