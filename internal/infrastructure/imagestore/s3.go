package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

const s3KeyPrefix = "images/"

// S3Config holds the settings of an S3-compatible bucket (AWS or MinIO).
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	// PublicURL is the base URL under which objects of the bucket are served,
	// e.g. https://cdn.example.com/blog.
	PublicURL string
}

// objectAPI is the subset of *s3.Client the store uses.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store keeps images in a bucket and references them by public URL.
type S3Store struct {
	client    objectAPI
	bucket    string
	publicURL string
	log       zerolog.Logger
	now       func() time.Time
}

// NewS3Store builds an S3 client with static credentials. A custom endpoint
// switches to path-style addressing for MinIO.
func NewS3Store(ctx context.Context, cfg S3Config, log zerolog.Logger) (*S3Store, error) {
	if cfg.Bucket == "" || cfg.PublicURL == "" {
		return nil, fmt.Errorf("s3 store: bucket and public url are required")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Store(client, cfg.Bucket, cfg.PublicURL, log), nil
}

func newS3Store(client objectAPI, bucket, publicURL string, log zerolog.Logger) *S3Store {
	return &S3Store{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/") + "/",
		log:       log,
		now:       time.Now,
	}
}

func (s *S3Store) Store(ctx context.Context, payload string) (string, error) {
	img, err := ParseDataURL(payload)
	if err != nil {
		return "", err
	}

	key := s3KeyPrefix + fileName(s.now(), img.Extension)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Data),
		ContentType:   aws.String(img.MimeType),
		ContentLength: aws.Int64(int64(len(img.Data))),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	s.log.Debug().Str("bucket", s.bucket).Str("key", key).Int("bytes", len(img.Data)).Msg("image uploaded")
	return s.publicURL + key, nil
}

// Remove deletes objects referenced under the store's own public URL; any
// other reference is not managed here and is ignored.
func (s *S3Store) Remove(ctx context.Context, ref string) error {
	if !strings.HasPrefix(ref, s.publicURL+s3KeyPrefix) {
		s.log.Debug().Str("image_ref", ref).Msg("image not managed by bucket, skipping removal")
		return nil
	}

	key := strings.TrimPrefix(ref, s.publicURL)
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
