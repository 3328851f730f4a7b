// Package storage loads resume files from the local disk or from an
// S3-compatible bucket.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/spigell/cv-analyzer/internal/logger"
	"github.com/spigell/cv-analyzer/internal/secrets"
)

const (
	s3Scheme       = "s3"
	defaultMaxSize = 20 << 20
	defaultRegion  = "auto"

	envAccessKey = "S3_ACCESS_KEY"
	envSecretKey = "S3_SECRET_KEY"
)

// ErrTooLarge is returned when a file exceeds the configured size limit.
var ErrTooLarge = errors.New("file is too large")

// S3Config describes an S3-compatible endpoint (AWS, Cloudflare R2, MinIO).
type S3Config struct {
	Region        string `mapstructure:"region"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access-key"`
	AccessKeyFile string `mapstructure:"access-key-file"`
	SecretKey     string `mapstructure:"secret-key"`
	SecretKeyFile string `mapstructure:"secret-key-file"`
	UsePathStyle  bool   `mapstructure:"use-path-style"`
}

// ObjectGetter is the part of the S3 client the loader needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// File is a loaded resume.
type File struct {
	Name string
	Data []byte
}

// Loader reads files by location: a local path or s3://bucket/key.
type Loader struct {
	cfg     *S3Config
	client  ObjectGetter
	maxSize int64
	logger  *zap.Logger
}

// NewLoader creates a loader. The S3 client is created on first use.
func NewLoader(cfg *S3Config, maxSize int64, log *zap.Logger) *Loader {
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}
	return &Loader{
		cfg:     cfg,
		maxSize: maxSize,
		logger:  logger.WithFields(log),
	}
}

// WithClient replaces the S3 client, mostly for tests.
func (l *Loader) WithClient(client ObjectGetter) *Loader {
	l.client = client
	return l
}

// Load reads the file at location.
func (l *Loader) Load(ctx context.Context, location string) (*File, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.New("resume location is empty")
	}

	bucket, key, ok := ParseS3URL(location)
	if !ok {
		return l.loadLocal(location)
	}

	return l.loadS3(ctx, bucket, key)
}

// ParseS3URL splits s3://bucket/key into its parts.
func ParseS3URL(location string) (bucket, key string, ok bool) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme != s3Scheme {
		return "", "", false
	}

	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", false
	}
	return u.Host, key, true
}

func (l *Loader) loadLocal(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	data, err := l.readAll(f)
	if err != nil {
		return nil, fmt.Errorf("read resume %q: %w", name, err)
	}

	l.logger.Debug("resume loaded", zap.String(logger.FieldSource, name), zap.Int("bytes", len(data)))
	return &File{Name: name, Data: data}, nil
}

func (l *Loader) loadS3(ctx context.Context, bucket, key string) (*File, error) {
	client, err := l.s3Client(ctx)
	if err != nil {
		return nil, err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := l.readAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object s3://%s/%s: %w", bucket, key, err)
	}

	l.logger.Debug("resume downloaded",
		zap.String(logger.FieldSource, "s3://"+bucket+"/"+key),
		zap.Int("bytes", len(data)),
	)

	return &File{Name: path.Base(key), Data: data}, nil
}

func (l *Loader) readAll(r io.Reader) ([]byte, error) {
	buf := new(bytes.Buffer)
	n, err := io.Copy(buf, io.LimitReader(r, l.maxSize+1))
	if err != nil {
		return nil, err
	}
	if n > l.maxSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, l.maxSize)
	}
	return buf.Bytes(), nil
}

func (l *Loader) s3Client(ctx context.Context) (ObjectGetter, error) {
	if l.client != nil {
		return l.client, nil
	}
	if l.cfg == nil {
		return nil, errors.New("s3 storage is not configured")
	}

	region := strings.TrimSpace(l.cfg.Region)
	if region == "" {
		region = defaultRegion
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}

	// Without static keys the default AWS credential chain applies.
	if l.cfg.AccessKey != "" || l.cfg.AccessKeyFile != "" || os.Getenv(envAccessKey) != "" {
		accessKey, err := secrets.Load(secrets.Source{Name: "s3 access key", Value: l.cfg.AccessKey, Env: envAccessKey, File: l.cfg.AccessKeyFile})
		if err != nil {
			return nil, err
		}
		secretKey, err := secrets.Load(secrets.Source{Name: "s3 secret key", Value: l.cfg.SecretKey, Env: envSecretKey, File: l.cfg.SecretKeyFile})
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := strings.TrimSpace(l.cfg.Endpoint)
	l.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = l.cfg.UsePathStyle
	})

	return l.client, nil
}
