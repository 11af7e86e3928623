// Package objectstore issues pre-signed S3 upload URLs so clients can put
// images straight into the bucket without routing bytes through the API.
package objectstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"github.com/chasingSublimity/Traveler/internal/domain"
)

// URLExpiry is how long an issued upload URL stays valid.
const URLExpiry = 60 * time.Second

// Config names the bucket and the static credentials used for signing.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
}

// Presigner signs PutObject requests for a single bucket.
type Presigner struct {
	presign *s3.PresignClient
	bucket  string
}

// NewPresigner builds a Presigner from static credentials. Signing is local;
// no request reaches AWS until the client uses the URL.
func NewPresigner(cfg Config) *Presigner {
	client := s3.New(s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	})
	return &Presigner{
		presign: s3.NewPresignClient(client, s3.WithPresignExpires(URLExpiry)),
		bucket:  cfg.Bucket,
	}
}

// UploadURL returns a URL that accepts one PUT of filename with the given
// content type for URLExpiry.
func (p *Presigner) UploadURL(ctx context.Context, filename, contentType string) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", fmt.Errorf("%w: filename is required", domain.ErrValidation)
	}
	if strings.TrimSpace(contentType) == "" {
		return "", fmt.Errorf("%w: filetype is required", domain.ErrValidation)
	}

	req, err := p.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(filename),
		ContentType: aws.String(contentType),
	}, signContentType(contentType))
	if err != nil {
		return "", fmt.Errorf("objectstore.Presigner.UploadURL: %w: %w", domain.ErrUpstream, err)
	}
	return req.URL, nil
}

// signContentType sets Content-Type on the request ahead of signing so it is
// listed in X-Amz-SignedHeaders and the upload must send the same type.
func signContentType(contentType string) func(*s3.PresignOptions) {
	return func(o *s3.PresignOptions) {
		o.ClientOptions = append(o.ClientOptions, func(so *s3.Options) {
			so.APIOptions = append(so.APIOptions, smithyhttp.SetHeaderValue("Content-Type", contentType))
		})
	}
}
