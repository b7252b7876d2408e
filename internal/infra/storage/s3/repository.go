package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/m04kA/SMC-ReservationService/internal/infra/storage/kv"
)

const (
	defaultRegion = "us-east-1"
	defaultPrefix = "reservations"
	objectSuffix  = ".json"
	contentType   = "application/json"
)

// Config параметры S3-совместимого хранилища (AWS S3 или MinIO)
type Config struct {
	Region          string
	Bucket          string
	Endpoint        string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool
}

// Validate проверяет обязательные поля
func (c Config) Validate() error {
	if strings.TrimSpace(c.Bucket) == "" {
		return fmt.Errorf("%w: bucket required", ErrConfig)
	}
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return fmt.Errorf("%w: access key id and secret must be set together", ErrConfig)
	}
	return nil
}

// Repository хранит каждую коллекцию объектом <prefix>/<collection>.json
// Пакет пишется объект за объектом, атомарности между объектами нет
type Repository struct {
	client ObjectAPI
	bucket string
	prefix string
}

// New создает клиента S3 из конфигурации
// Без явных ключей используется стандартная цепочка AWS credentials
func New(ctx context.Context, cfg Config) (*Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %v", ErrConfig, err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewRepository(client, cfg.Bucket, cfg.Prefix), nil
}

// NewRepository создает репозиторий поверх готового клиента
func NewRepository(client ObjectAPI, bucket, prefix string) *Repository {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Repository{client: client, bucket: bucket, prefix: strings.TrimSuffix(prefix, "/")}
}

// Get читает объект коллекции
func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := kv.ValidateKey(key); err != nil {
		return nil, err
	}

	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.objectKey(key)),
	})
	if isNotFound(err) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %s: %v", ErrGet, key, err)
	}
	defer func() { _ = out.Body.Close() }()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - read body %s: %v", ErrGet, key, err)
	}
	return payload, nil
}

// PutBatch записывает объекты по очереди
func (r *Repository) PutBatch(ctx context.Context, entries []kv.Entry) error {
	for _, e := range entries {
		if err := kv.ValidateKey(e.Key); err != nil {
			return err
		}
	}

	for _, e := range entries {
		_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(r.bucket),
			Key:         aws.String(r.objectKey(e.Key)),
			Body:        bytes.NewReader(e.Payload),
			ContentType: aws.String(contentType),
		})
		if err != nil {
			return fmt.Errorf("%w: PutBatch - %s: %v", ErrPut, e.Key, err)
		}
	}
	return nil
}

// Clear удаляет все объекты под префиксом репозитория
func (r *Repository) Clear(ctx context.Context) error {
	prefix := r.prefix + "/"
	var token *string
	for {
		out, err := r.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(r.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return fmt.Errorf("%w: Clear - list: %v", ErrClear, err)
		}
		for _, obj := range out.Contents {
			_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(r.bucket),
				Key:    obj.Key,
			})
			if err != nil {
				return fmt.Errorf("%w: Clear - delete %s: %v", ErrClear, aws.ToString(obj.Key), err)
			}
		}
		if aws.ToBool(out.IsTruncated) && out.NextContinuationToken != nil {
			token = out.NextContinuationToken
			continue
		}
		return nil
	}
}

// Close ничего не освобождает: http клиент SDK не требует закрытия
func (r *Repository) Close() error { return nil }

func (r *Repository) objectKey(key string) string {
	return r.prefix + "/" + key + objectSuffix
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	return errors.As(err, &notFound)
}
