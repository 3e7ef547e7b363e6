// Package storage uploads attachment files to S3-compatible object storage
// and hands back their public URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/mdterp/internal/filex"
	"github.com/google/uuid"
)

// Store is what services need from object storage.
type Store interface {
	// Upload stores data under key and returns the public URL of the object.
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
	// PresignGet returns a time-limited download URL for key.
	PresignGet(ctx context.Context, key string) (string, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	nowFunc = time.Now
)

// S3Config carries the connection settings of an S3Store.
type S3Config struct {
	User          string
	Password      string
	Bucket        string
	Region        string
	BaseEndpoint  string
	PublicBaseURL string
	PresignTTL    time.Duration
}

type S3Store struct {
	cfg     S3Config
	client  *s3.Client
	presign *s3.PresignClient
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.User, cfg.Password, "")),
	)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		o.UsePathStyle = true
	})

	if cfg.PresignTTL <= 0 {
		cfg.PresignTTL = 15 * time.Minute
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = cfg.BaseEndpoint
	}

	return &S3Store{cfg: cfg, client: client, presign: s3.NewPresignClient(client)}, nil
}

func (s *S3Store) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	bucket := s.cfg.Bucket
	_, err := putObject(s.client, ctx, &s3.PutObjectInput{
		Bucket:        &bucket,
		Key:           &key,
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return PublicURL(s.cfg.PublicBaseURL, bucket, key), nil
}

func (s *S3Store) PresignGet(ctx context.Context, key string) (string, error) {
	bucket := s.cfg.Bucket
	req, err := presignGetObject(s.presign, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.cfg.PresignTTL))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// PublicURL joins base, bucket and key into <base>/<bucket>/<key>.
func PublicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + key
}

// ObjectName generates a unique key for an uploaded file:
// <unix-ms>-<random>[.<ext>], keeping the original extension.
func ObjectName(original string) string {
	name := fmt.Sprintf("%d-%s", nowFunc().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	if ext := filex.Ext(original); ext != "" {
		name += "." + ext
	}
	return name
}
