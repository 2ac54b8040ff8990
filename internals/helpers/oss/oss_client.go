// internals/helpers/oss/oss_client.go
package helper

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"manrelbdg_backend/internals/configs"
)

var ErrNotOwnedURL = errors.New("url bukan milik storage ini")

// Storage menyimpan objek (foto) dan mengembalikan URL publiknya.
type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// NewStorage memilih driver dari konfigurasi: "minio" atau "local" (default).
func NewStorage(ctx context.Context, cfg configs.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "minio":
		return NewMinioStorage(ctx, cfg)
	case "", "local":
		return NewLocalStorage(cfg.LocalDir, cfg.PublicBaseURL)
	default:
		return nil, fmt.Errorf("storage driver tidak dikenal: %s", cfg.Driver)
	}
}

/* =======================================================================
   MinIO / S3 compatible
======================================================================= */

type MinioStorage struct {
	Client  *minio.Client
	Bucket  string
	BaseURL string // http(s)://endpoint/bucket
}

func NewMinioStorage(ctx context.Context, cfg configs.StorageConfig) (*MinioStorage, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("MINIO_ENDPOINT/MINIO_ACCESS_KEY/MINIO_SECRET_KEY belum diset")
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("cek bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("buat bucket: %w", err)
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	base := fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	if cfg.PublicBaseURL != "" && strings.HasPrefix(cfg.PublicBaseURL, "http") {
		base = cfg.PublicBaseURL
	}
	return &MinioStorage{Client: client, Bucket: cfg.Bucket, BaseURL: strings.TrimRight(base, "/")}, nil
}

func (s *MinioStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.Client.PutObject(ctx, s.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.BaseURL + "/" + key, nil
}

func (s *MinioStorage) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := KeyFromPublicURL(s.BaseURL, publicURL)
	if err != nil {
		return err
	}
	return s.Client.RemoveObject(ctx, s.Bucket, key, minio.RemoveObjectOptions{})
}

/* =======================================================================
   Local disk (dev / single node); disajikan via app.Static
======================================================================= */

type LocalStorage struct {
	Dir     string
	BaseURL string
}

func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("buat direktori upload: %w", err)
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &LocalStorage{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	dst := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("tulis %s: %w", key, err)
	}
	return s.BaseURL + "/" + key, nil
}

func (s *LocalStorage) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := KeyFromPublicURL(s.BaseURL, publicURL)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.Dir, filepath.FromSlash(key)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

/* =======================================================================
   Key helpers
======================================================================= */

// BuildObjectKey → "<dir>/<yyyymmdd>/<slug>_<rand><ext>"
func BuildObjectKey(dir, name, ext string) string {
	ts := time.Now().UTC().Format("20060102")
	return path.Join(safePart(dir), ts, fmt.Sprintf("%s_%s%s", slugify(name), randHex(4), ext))
}

// KeyFromPublicURL mengambil object key dari URL publik milik baseURL.
func KeyFromPublicURL(baseURL, publicURL string) (string, error) {
	if i := strings.IndexByte(publicURL, '?'); i >= 0 {
		publicURL = publicURL[:i]
	}
	prefix := strings.TrimRight(baseURL, "/") + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", ErrNotOwnedURL
	}
	key, err := url.PathUnescape(strings.TrimPrefix(publicURL, prefix))
	if err != nil {
		return "", err
	}
	if key == "" || strings.Contains(key, "..") {
		return "", ErrNotOwnedURL
	}
	return key, nil
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	r := strings.NewReplacer(" ", "-", "_", "-", "—", "-", "–", "-")
	s = r.Replace(s)
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "file"
	}
	return s
}

func safePart(s string) string {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return "unknown"
	}
	return slugify(s)
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
