// Package catalog reads the menu catalog document from a gocloud.dev blob bucket.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"strings"

	"unifeast/config"
	"unifeast/internal/domain/entity"
	"unifeast/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gopkg.in/yaml.v3"

	// Bucket drivers selectable through catalog.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Document is the on-disk shape of a catalog.
type Document struct {
	Items []*entity.Item `json:"items" yaml:"items"`
}

// blobCatalog implements service.CatalogProvider. The document is re-read on every call
// so catalog edits show up without a restart.
type blobCatalog struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// NewBlobCatalog creates a catalog provider over an already opened bucket.
func NewBlobCatalog(bucket *blob.Bucket, key string, logger *slog.Logger) service.CatalogProvider {
	return &blobCatalog{
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// Items returns the catalog in document order, skipping null entries.
func (c *blobCatalog) Items(ctx context.Context) ([]*entity.Item, error) {
	data, err := c.bucket.ReadAll(ctx, c.key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", c.key)
	}

	doc, err := Decode(c.key, data)
	if err != nil {
		return nil, err
	}

	items := make([]*entity.Item, 0, len(doc.Items))
	for _, item := range doc.Items {
		if item == nil {
			continue
		}
		items = append(items, item)
	}

	c.logger.DebugContext(ctx, "Catalog loaded",
		slog.String("key", c.key),
		slog.Int("items", len(items)),
	)

	return items, nil
}

// Decode parses a catalog document, choosing JSON or YAML by the key's extension.
func Decode(key string, data []byte) (*Document, error) {
	var doc Document

	switch strings.ToLower(path.Ext(key)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode JSON catalog")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode YAML catalog")
		}
	default:
		return nil, errors.Errorf("unsupported catalog format: %s", key)
	}

	return &doc, nil
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns the catalog provider.
func New(params Params) (service.CatalogProvider, error) {
	cfg := params.Config.Catalog
	if cfg == nil || cfg.BucketURL == "" || cfg.Key == "" {
		return nil, errors.New("catalog.bucketUrl and catalog.key must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobCatalog(bucket, cfg.Key, params.Logger), nil
}
