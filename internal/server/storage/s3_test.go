package storage

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubAWS(t *testing.T) *string {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}

	var baseEndpoint string
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		require.NotNil(t, opts.BaseEndpoint)
		assert.True(t, opts.UsePathStyle)
		baseEndpoint = *opts.BaseEndpoint
		return s3.New(opts)
	}
	return &baseEndpoint
}

func newStore(t *testing.T) *S3Store {
	t.Helper()
	s, err := NewS3Store(context.Background(), S3Config{
		User: "minioadmin", Password: "minioadmin", Bucket: "documents",
		Region: "us-east-1", BaseEndpoint: "http://127.0.0.1:9000",
	})
	require.NoError(t, err)
	return s
}

func TestNewS3Store(t *testing.T) {
	endpoint := stubAWS(t)

	s := newStore(t)
	assert.Equal(t, "http://127.0.0.1:9000", *endpoint)
	assert.Equal(t, "http://127.0.0.1:9000", s.cfg.PublicBaseURL)
	assert.Equal(t, 15*time.Minute, s.cfg.PresignTTL)
}

func TestNewS3Store_LoadError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := NewS3Store(context.Background(), S3Config{})
	require.EqualError(t, err, "load-fail")
}

func TestUpload(t *testing.T) {
	stubAWS(t)
	s := newStore(t)

	orig := putObject
	t.Cleanup(func() { putObject = orig })

	var got *s3.PutObjectInput
	var body []byte
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		got = in
		body, _ = io.ReadAll(in.Body)
		return &s3.PutObjectOutput{}, nil
	}

	url, err := s.Upload(context.Background(), "1700000000000-abc.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000/documents/1700000000000-abc.pdf", url)
	assert.Equal(t, "documents", *got.Bucket)
	assert.Equal(t, "application/pdf", *got.ContentType)
	assert.Equal(t, []byte("%PDF"), body)
}

func TestUpload_Error(t *testing.T) {
	stubAWS(t)
	s := newStore(t)

	orig := putObject
	t.Cleanup(func() { putObject = orig })
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("bucket missing")
	}

	_, err := s.Upload(context.Background(), "k", "text/plain", nil)
	require.ErrorContains(t, err, "bucket missing")
}

func TestPresignGet(t *testing.T) {
	stubAWS(t)
	s := newStore(t)

	orig := presignGetObject
	t.Cleanup(func() { presignGetObject = orig })
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if *in.Key != "k1" {
			return nil, errors.New("unexpected key")
		}
		return &v4.PresignedHTTPRequest{URL: "http://signed/k1"}, nil
	}

	url, err := s.PresignGet(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, "http://signed/k1", url)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn/b/k.png", PublicURL("https://cdn/", "b", "k.png"))
	assert.Equal(t, "https://cdn/b/k.png", PublicURL("https://cdn", "b", "k.png"))
}

func TestObjectName(t *testing.T) {
	orig := nowFunc
	t.Cleanup(func() { nowFunc = orig })
	nowFunc = func() time.Time { return time.UnixMilli(1700000000123) }

	name := ObjectName("Relatório Final.PDF")
	assert.Regexp(t, regexp.MustCompile(`^1700000000123-[0-9a-f]{12}\.pdf$`), name)
	assert.NotEqual(t, name, ObjectName("Relatório Final.PDF"))

	assert.Regexp(t, regexp.MustCompile(`^1700000000123-[0-9a-f]{12}$`), ObjectName("LEIAME"))
}
