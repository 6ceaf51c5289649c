package relay

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
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

// S3Options configures the S3-compatible backend (MinIO works).
type S3Options struct {
	RootUser     string
	RootPassword string
	Bucket       string
	Region       string
	BaseEndpoint string
	// Name is the logical blob name shared by all devices.
	Name string
}

// S3Relay stores the SyncRecord as a single JSON object in a bucket.
// It is an alternative Relay implementation for deployments that already
// run object storage instead of the generic objects API.
type S3Relay struct {
	client *s3.Client
	bucket string
	key    string
}

func NewS3Relay(ctx context.Context, opts S3Options) (*S3Relay, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.RootUser,
			opts.RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Relay{client: client, bucket: opts.Bucket, key: opts.Name + ".json"}, nil
}

func (r *S3Relay) Push(ctx context.Context, rec *models.SyncRecord) error {
	body, err := json.Marshal(encodeRecord(rec))
	if err != nil {
		return err
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 put: %w", err)
	}
	return nil
}

func (r *S3Relay) Pull(ctx context.Context) (*models.SyncRecord, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, nil
		}
		return nil, fmt.Errorf("s3 get: %w", err)
	}
	defer out.Body.Close()

	raw, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read: %w", err)
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		// Corrupt remote blob: treat as no snapshot.
		return nil, nil
	}
	return decodeRecord(p), nil
}
