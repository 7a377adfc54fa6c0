package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"blocks-generator/core/generator"
	"blocks-generator/core/storage"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// FormatVersion is written into every backup document.
const FormatVersion = 1

// ErrUnsupportedVersion is returned when importing a backup of another format.
var ErrUnsupportedVersion = errors.New("unsupported backup version")

// Document is the decompressed body of a backup object.
type Document struct {
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	Rows      []generator.Row `json:"rows"`
}

// Info describes a written backup.
type Info struct {
	Object string `json:"object"`
	Rows   int    `json:"rows"`
	Bytes  int64  `json:"bytes"`
}

// Service copies the generators table to and from object storage as
// zstd-compressed JSON.
type Service struct {
	store  *generator.Store
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
	now    func() time.Time
	suffix func() string
}

// NewService creates a backup service.
func NewService(store *generator.Store, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, client: client, cfg: cfg, logger: logger, now: time.Now, suffix: shortID}
}

func shortID() string {
	return uuid.NewString()[:8]
}

// objectName sorts by creation second; the random suffix keeps two exports in
// the same second apart.
func (s *Service) objectName(t time.Time) string {
	return fmt.Sprintf("%sgenerators-%d-%s.json.zst", s.cfg.Prefix, t.Unix(), s.suffix())
}

// Export writes every persisted generator to a new backup object, then removes
// backups beyond the retention limit.
func (s *Service) Export(ctx context.Context) (Info, error) {
	rows, err := s.store.ScanAll(ctx)
	if err != nil {
		return Info{}, err
	}

	now := s.now().UTC()
	doc := Document{Version: FormatVersion, CreatedAt: now, Rows: rows}
	body, err := encode(doc)
	if err != nil {
		return Info{}, err
	}

	if err := storage.EnsureBucket(ctx, s.client, s.cfg.Bucket, s.cfg.Region); err != nil {
		return Info{}, err
	}

	info := Info{Object: s.objectName(now), Rows: len(rows), Bytes: int64(len(body))}
	_, err = s.client.PutObject(ctx, s.cfg.Bucket, info.Object, bytes.NewReader(body), info.Bytes, minio.PutObjectOptions{
		ContentType: "application/zstd",
	})
	if err != nil {
		return Info{}, fmt.Errorf("failed to upload backup %s: %w", info.Object, err)
	}
	s.logger.Info("Backup written", zap.String("object", info.Object), zap.Int("rows", info.Rows), zap.Int64("bytes", info.Bytes))

	if err := s.prune(ctx); err != nil {
		s.logger.Warn("Failed to prune old backups", zap.Error(err))
	}
	return info, nil
}

// Import upserts every row of a backup into the store. Existing rows that are
// not in the backup are kept. It returns the number of rows written.
func (s *Service) Import(ctx context.Context, object string) (int, error) {
	r, err := s.client.GetObject(ctx, s.cfg.Bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to download backup %s: %w", object, err)
	}
	defer r.Close()

	dec, err := zstd.NewReader(r)
	if err != nil {
		return 0, err
	}
	defer dec.Close()

	var doc Document
	if err := json.NewDecoder(dec).Decode(&doc); err != nil {
		return 0, fmt.Errorf("failed to decode backup %s: %w", object, err)
	}
	if doc.Version != FormatVersion {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}

	for i, row := range doc.Rows {
		if err := s.store.Upsert(ctx, row.Coord(), strings.ToLower(row.Type)); err != nil {
			return i, err
		}
	}
	s.logger.Info("Backup imported", zap.String("object", object), zap.Int("rows", len(doc.Rows)))
	return len(doc.Rows), nil
}

// List returns backup object names, oldest first.
func (s *Service) List(ctx context.Context) ([]string, error) {
	var names []string
	for obj := range s.client.ListObjects(ctx, s.cfg.Bucket, minio.ListObjectsOptions{Prefix: s.cfg.Prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list backups: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json.zst") {
			names = append(names, obj.Key)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *Service) prune(ctx context.Context) error {
	if s.cfg.Retain <= 0 {
		return nil
	}
	names, err := s.List(ctx)
	if err != nil {
		return err
	}
	for len(names) > s.cfg.Retain {
		if err := s.client.RemoveObject(ctx, s.cfg.Bucket, names[0], minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove backup %s: %w", names[0], err)
		}
		s.logger.Debug("Removed old backup", zap.String("object", names[0]))
		names = names[1:]
	}
	return nil
}

func encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	if err := json.NewEncoder(enc).Encode(doc); err != nil {
		enc.Close()
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
