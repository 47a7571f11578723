// Package s3 serves extracted document text from an S3 bucket. Each document
// is stored as a JSON array of pages under <prefix><document_hash>.json,
// written by the ingestion pipeline when OCR finishes.
package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"docsage/internal/config"
	"docsage/internal/domain"
)

type textProvider struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// NewTextProvider creates an S3-backed DocumentTextProvider.
func NewTextProvider(cfg *config.S3Config) (*textProvider, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &textProvider{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		prefix:   cfg.TextPrefix,
	}, nil
}

func (p *textProvider) key(documentHash string) string {
	return p.prefix + documentHash + ".json"
}

// GetText fetches and decodes the page text for a document. A missing object
// means the document was never ingested and maps to ErrDocumentNotFound.
func (p *textProvider) GetText(ctx context.Context, documentHash string) ([]domain.Page, error) {
	result, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(p.key(documentHash)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("%w: document %s", domain.ErrDocumentNotFound, documentHash)
		}
		return nil, fmt.Errorf("%w: fetching document text: %v", domain.ErrStorage, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading document text: %v", domain.ErrStorage, err)
	}

	var pages []domain.Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("%w: decoding document text: %v", domain.ErrStorage, err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: document %s has no pages", domain.ErrDocumentNotFound, documentHash)
	}
	return pages, nil
}

// PutText stores the page text for a document, overwriting any previous copy.
// The ingestion pipeline calls this after OCR completes.
func (p *textProvider) PutText(ctx context.Context, documentHash string, pages []domain.Page) error {
	data, err := json.Marshal(pages)
	if err != nil {
		return fmt.Errorf("%w: encoding document text: %v", domain.ErrStorage, err)
	}
	_, err = p.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(p.key(documentHash)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: storing document text: %v", domain.ErrStorage, err)
	}
	return nil
}
