package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

// S3Client defines the S3 operations used by S3Archive.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config contains configuration for the S3 archive.
type S3Config struct {
	Bucket         string `env:"ARCHIVE_S3_BUCKET"`
	Region         string `env:"ARCHIVE_S3_REGION"`
	AccessKeyID    string `env:"ARCHIVE_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"ARCHIVE_S3_SECRET_KEY"`
	Endpoint       string `env:"ARCHIVE_S3_ENDPOINT"`         // Optional: for S3-compatible services
	Prefix         string `env:"ARCHIVE_S3_PREFIX"`           // Key prefix, e.g. "emails"
	ForcePathStyle bool   `env:"ARCHIVE_S3_FORCE_PATH_STYLE"` // For S3-compatible services like MinIO
}

// S3Option defines a function that configures S3Archive.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3.Options)
	now             func() time.Time
	newID           func() string
}

// WithS3Client sets a custom pre-configured S3 client.
// Useful for testing with mocks.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// WithClock overrides the time source used for object keys.
func WithClock(now func() time.Time) S3Option {
	return func(o *s3Options) {
		o.now = now
	}
}

// WithIDGenerator overrides the object id generator (uuid v4 by default).
func WithIDGenerator(fn func() string) S3Option {
	return func(o *s3Options) {
		o.newID = fn
	}
}

// S3Archive implements EmailSender by storing the rendered email in S3
// instead of delivering it. Each send writes three objects sharing one key
// prefix: <prefix>/<yyyy>/<mm>/<dd>/<id>_<name>.{html,txt,json}. The text
// object is skipped when the email has no text part.
//
// It is safe for concurrent use.
type S3Archive struct {
	client S3Client
	bucket string
	prefix string
	now    func() time.Time
	newID  func() string
}

// NewS3Archive creates an S3-backed archive sender.
func NewS3Archive(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Archive, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, fmt.Errorf("%w: Bucket and Region are required", ErrInvalidConfig)
	}

	options := &s3Options{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(options)
	}

	client := options.s3Client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}
		awsOptions = append(awsOptions, options.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range options.s3ClientOptions {
				opt(o)
			}
		})
	}

	return &S3Archive{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		now:    options.now,
		newID:  options.newID,
	}, nil
}

// SendEmail implements EmailSender by uploading the email artifacts.
func (a *S3Archive) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	now := a.now()
	base := path.Join(a.prefix, now.UTC().Format("2006/01/02"), a.newID()+"_"+artifactName(params))

	if err := a.put(ctx, base+".html", "text/html; charset=utf-8", []byte(params.BodyHTML)); err != nil {
		return err
	}
	if params.BodyText != "" {
		if err := a.put(ctx, base+".txt", "text/plain; charset=utf-8", []byte(params.BodyText)); err != nil {
			return err
		}
	}

	meta, err := json.Marshal(newEmailMetadata(now, params))
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}
	return a.put(ctx, base+".json", "application/json", meta)
}

func (a *S3Archive) put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return mapS3Error(err, key)
	}
	return nil
}

func mapS3Error(err error, key string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return errors.Join(ErrFailedToSendEmail, fmt.Errorf("s3 %s: %s: %s", key, apiErr.ErrorCode(), apiErr.ErrorMessage()))
	}
	return errors.Join(ErrFailedToSendEmail, fmt.Errorf("s3 %s: %w", key, err))
}
