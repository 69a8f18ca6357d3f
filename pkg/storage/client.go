// Package storage uploads recording media to S3-compatible object storage
// and mints presigned playback URLs. Uploads stream through the SDK's
// multipart uploader so media files never have to fit in memory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// PresignTTL is the lifetime of presigned playback URLs. Seven days is the
// S3 SigV4 maximum; the media refresh worker re-mints URLs before expiry.
const PresignTTL = 7 * 24 * time.Hour

// ErrObjectNotFound is returned by Head when no object exists at the key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectAPI is the S3 surface the client depends on. *s3.Client satisfies
// it; tests substitute a stub.
type ObjectAPI interface {
	manager.UploadAPIClient
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// PresignAPI is the presigner surface the client depends on.
// *s3.PresignClient satisfies it.
type PresignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Config holds object storage settings. Endpoint is only set for local
// development and tests (MinIO); empty uses the AWS default resolver.
type Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Size        int64
	ContentType string
}

// Client wraps the S3 API for media storage.
type Client struct {
	api      ObjectAPI
	presign  PresignAPI
	uploader *manager.Uploader
	bucket   string
}

// New builds a storage client from pre-constructed API handles.
func New(api ObjectAPI, presign PresignAPI, bucket string) (*Client, error) {
	if api == nil {
		return nil, errors.New("object API is required")
	}
	if presign == nil {
		return nil, errors.New("presign API is required")
	}
	if bucket == "" {
		return nil, errors.New("bucket is required")
	}
	return &Client{
		api:      api,
		presign:  presign,
		uploader: manager.NewUploader(api),
		bucket:   bucket,
	}, nil
}

// NewClient constructs a client against real S3 using cfg. Credentials fall
// back to the ambient AWS chain (IAM role, env, shared profile) when no
// static key pair is configured.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is required")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// MinIO and friends do not serve virtual-hosted buckets.
			o.UsePathStyle = true
		}
	})

	return New(client, s3.NewPresignClient(client), cfg.Bucket)
}

// Upload streams body to the bucket at key. The uploader splits large
// bodies into multipart uploads, so body may be of unknown length.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	if key == "" {
		return errors.New("object key is required")
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.uploader.Upload(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// Head returns metadata for the object at key, or ErrObjectNotFound.
func (c *Client) Head(ctx context.Context, key string) (*ObjectInfo, error) {
	out, err := c.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return nil, fmt.Errorf("failed to head %s: %w", key, err)
	}

	info := &ObjectInfo{}
	if out.ContentLength != nil {
		info.Size = *out.ContentLength
	}
	if out.ContentType != nil {
		info.ContentType = *out.ContentType
	}
	return info, nil
}

// PresignGet mints a presigned GET URL for the object at key, valid for
// PresignTTL.
func (c *Client) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(PresignTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return req.URL, nil
}
