package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"crm/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/cloudinary/cloudinary-go/v2"
)

// Provider stores uploaded files under slash separated keys such as
// "resumes/<file>".
type Provider interface {
	Put(ctx context.Context, key string, body io.ReadSeeker, contentType string) error
	Delete(ctx context.Context, key string) error
	// URL is where clients can download key from
	URL(key string) string
}

// New picks the backend named by cfg.Provider. Local is the default.
func New(cfg config.StorageConfig) (Provider, error) {
	switch cfg.Provider {
	case "", "local":
		return NewLocalProvider(cfg.UploadDir, "/uploads")
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required for the s3 storage provider")
		}
		awsCfg := &aws.Config{
			Region: aws.String(cfg.S3Region),
		}
		if cfg.S3KeyID != "" {
			awsCfg.Credentials = credentials.NewStaticCredentials(cfg.S3KeyID, cfg.S3Secret, "")
		}
		if cfg.S3Endpoint != "" {
			awsCfg.Endpoint = aws.String(cfg.S3Endpoint)
			awsCfg.S3ForcePathStyle = aws.Bool(true)
		}
		sess, err := session.NewSession(awsCfg)
		if err != nil {
			return nil, fmt.Errorf("create aws session: %w", err)
		}
		return NewS3Provider(sess, cfg.S3Bucket, cfg.S3Endpoint, cfg.S3Region), nil
	case "cloudinary":
		if cfg.CloudinaryURL == "" {
			return nil, fmt.Errorf("CLOUDINARY_URL is required for the cloudinary storage provider")
		}
		cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			return nil, fmt.Errorf("init cloudinary: %w", err)
		}
		return NewCloudinaryProvider(cld), nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

// ContentType maps the accepted resume extensions to their MIME type.
func ContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
