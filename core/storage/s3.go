package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"guestdesk/core/config"
	"guestdesk/core/logger"
	"guestdesk/core/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Storage struct {
	client       *s3.Client
	presign      *s3.PresignClient
	bucket       string
	folderPrefix string
}

func newS3Storage(cfg config.StorageConfig) (*s3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 storage requires a bucket name")
	}

	client := s3.New(s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	})

	logger.Info("Storage:S3:Initialized", "bucket", cfg.Bucket, "region", cfg.Region)
	return &s3Storage{
		client:       client,
		presign:      s3.NewPresignClient(client),
		bucket:       cfg.Bucket,
		folderPrefix: cfg.FolderPrefix,
	}, nil
}

func (s *s3Storage) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	key := fmt.Sprintf("%suploads/%s-%s", s.folderPrefix, utils.GenerateID(), filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		logger.Error("Storage:S3:Upload", err)
		return "", err
	}
	return key, nil
}

func (s *s3Storage) Delete(ctx context.Context, path string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		logger.Error("Storage:S3:Delete", err)
	}
	return err
}

func (s *s3Storage) FileURL(ctx context.Context, path string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(time.Hour))
	if err != nil {
		logger.Error("Storage:S3:FileURL", err)
		return "", err
	}
	return req.URL, nil
}
