package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sitegenie/sitegenie/internal/config"
)

type S3Deps struct {
	Client   *s3.Client
	Uploader *manager.Uploader
	Bucket   string
	SSE      *s3types.ServerSideEncryption
}

func NewS3(ctx context.Context, cfg *config.Config) (*S3Deps, error) {
	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(acfg, func(o *s3.Options) {
		if ep := normalizeEndpoint(cfg.S3.Endpoint); ep != "" {
			o.BaseEndpoint = aws.String(ep)
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	})

	var sse *s3types.ServerSideEncryption
	if cfg.S3.SSE != "" {
		v := s3types.ServerSideEncryption(cfg.S3.SSE)
		sse = &v
	}

	return &S3Deps{
		Client:   client,
		Uploader: manager.NewUploader(client),
		Bucket:   cfg.S3.Bucket,
		SSE:      sse,
	}, nil
}

// normalizeEndpoint adds an https scheme to bare host endpoints.
func normalizeEndpoint(ep string) string {
	ep = strings.TrimSpace(ep)
	if ep == "" {
		return ""
	}
	if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
		ep = "https://" + ep
	}
	u, err := url.Parse(ep)
	if err != nil {
		return ""
	}
	return u.String()
}

type UploadedMeta struct {
	Bucket string
	Key    string
	ETag   string
	SHA256 string
	MIME   string
	SizeB  int64
}

// UploadFormFile stores a multipart upload under keyPrefix/yyyy/mm/dd/<sha256><ext>.
func (s *S3Deps) UploadFormFile(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*UploadedMeta, error) {
	sumHex, err := sha256OfFileHeader(fh)
	if err != nil {
		return nil, fmt.Errorf("calc sha256: %w", err)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := DatedKey(keyPrefix, sumHex+ext, time.Now())
	mime := fh.Header.Get("Content-Type")
	if mime == "" {
		mime = "text/csv"
	}

	meta, err := s.put(ctx, key, mime, file, map[string]string{
		"sha256": sumHex,
		"name":   fh.Filename,
	})
	if err != nil {
		return nil, err
	}
	meta.SHA256 = sumHex
	meta.SizeB = fh.Size
	return meta, nil
}

// UploadReader stores body under key as-is.
func (s *S3Deps) UploadReader(ctx context.Context, key, contentType string, body io.Reader, size int64) (*UploadedMeta, error) {
	meta, err := s.put(ctx, key, contentType, body, nil)
	if err != nil {
		return nil, err
	}
	meta.SizeB = size
	return meta, nil
}

func (s *S3Deps) put(ctx context.Context, key, contentType string, body io.Reader, metadata map[string]string) (*UploadedMeta, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		Metadata:    metadata,
	}
	if s.SSE != nil {
		input.ServerSideEncryption = *s.SSE
	}

	out, err := s.Uploader.Upload(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	return &UploadedMeta{
		Bucket: s.Bucket,
		Key:    key,
		ETag:   aws.ToString(out.ETag),
		MIME:   contentType,
	}, nil
}

// Download opens the object at key. The caller closes the body.
func (s *S3Deps) Download(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.Bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("get object from S3: %w", err)
	}
	return out.Body, aws.ToInt64(out.ContentLength), nil
}

// DatedKey builds prefix/yyyy/mm/dd/name.
func DatedKey(prefix, name string, at time.Time) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(prefix, "/"), at.UTC().Format("2006/01/02"), name)
}

func sha256OfFileHeader(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
