// Package s3 uploads profile images to an S3-compatible object store
// (AWS S3 or MinIO) and hands back durable public URLs.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// BaseEndpoint overrides the AWS endpoint, e.g. for MinIO.
	BaseEndpoint string
	// PublicBaseURL is the prefix returned object URLs are built from.
	PublicBaseURL string
}

// Uploader implements auth.ImageUploader.
type Uploader struct {
	client *s3.Client
	cfg    Config
}

func NewUploader(ctx context.Context, cfg Config) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})
	return &Uploader{client: client, cfg: cfg}, nil
}

// Upload stores the image under a random avatars/ key and returns its
// public URL.
func (u *Uploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("avatars/%s%s", uuid.New(), extFor(contentType))
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return strings.TrimRight(u.cfg.PublicBaseURL, "/") + "/" + key, nil
}

func extFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	}
	return ""
}
