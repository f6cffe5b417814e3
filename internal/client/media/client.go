package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/s21platform/staff-chat-service/internal/config"
	"github.com/s21platform/staff-chat-service/internal/model"
)

// Client stores attachment bodies in an S3-compatible bucket and hands out
// public descriptors for them.
type Client struct {
	storage   *minio.Client
	bucket    string
	publicURL string
}

func New(cfg *config.Config) (*Client, error) {
	storage, err := minio.New(cfg.Media.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Media.AccessKey, cfg.Media.SecretKey, ""),
		Secure: cfg.Media.UseSSL,
		Region: cfg.Media.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create media client: %w", err)
	}

	return &Client{
		storage:   storage,
		bucket:    cfg.Media.Bucket,
		publicURL: strings.TrimRight(cfg.Media.PublicURL, "/"),
	}, nil
}

func (c *Client) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (model.Attachment, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := c.storage.PutObject(ctx, c.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return model.Attachment{}, fmt.Errorf("failed to put object: %w", err)
	}

	return model.Attachment{
		URL:      c.publicURL + "/" + key,
		Kind:     model.AttachmentKindFor(contentType),
		Filename: filename,
	}, nil
}

// Stat confirms the descriptor points at an object in our bucket.
func (c *Client) Stat(ctx context.Context, attachment model.Attachment) error {
	key, ok := c.objectKey(attachment.URL)
	if !ok {
		return fmt.Errorf("%s: %w", attachment.URL, model.ErrAttachmentNotFound)
	}

	if _, err := c.storage.StatObject(ctx, c.bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return fmt.Errorf("%s: %w", attachment.URL, model.ErrAttachmentNotFound)
		}
		return fmt.Errorf("failed to stat object: %w", err)
	}
	return nil
}

func (c *Client) objectKey(url string) (string, bool) {
	key, found := strings.CutPrefix(url, c.publicURL+"/")
	if !found || key == "" || strings.Contains(key, "/") {
		return "", false
	}
	return key, true
}

// EnsureBucket creates the attachment bucket on first start.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.storage.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	err = c.storage.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}
