package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"lodgehub/config"
	"lodgehub/infras/otel"
	"lodgehub/shared/constant"
)

const defaultContentType = "application/octet-stream"

// S3 stores guest documents in an S3 compatible bucket and hands back public URLs.
type S3 interface {
	UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
	GetObjectNameFromURL(bucketName, url string) (objectName string)
}

type s3Impl struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	apiEndpoint  string
	otel         otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	storage := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(storage.AccessKeyID, storage.SecretAccessKey, "")),
		awsConfig.WithRegion(storage.Region),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load object storage configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if storage.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(storage.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client:       client,
		bucket:       storage.BucketName,
		publicDomain: strings.TrimSuffix(storage.PublicDomain, "/"),
		apiEndpoint:  strings.TrimSuffix(storage.APIEndpoint, "/"),
		otel:         otel,
	}
}

func (svc *s3Impl) bucketOr(bucketName string) string {
	if bucketName == "" {
		return svc.bucket
	}

	return bucketName
}

// UploadFile streams the multipart file into directory/fileName.
func (svc *s3Impl) UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.bucketOr(bucketName)
	key := path.Join(directory, fileName)

	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)
	if contentType == "" {
		contentType = defaultContentType
	}

	scope.SetAttributes(map[string]any{
		"s3.bucket": bucket,
		"s3.key":    key,
		"s3.size":   fileHeader.Size,
	})

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return constant.Empty, fmt.Errorf("rewinding %s: %w", fileHeader.Filename, err)
	}

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileHeader.Size),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("putting %s into %s: %w", key, bucket, err)
	}

	return svc.publicDomain + "/" + key, nil
}

func (svc *s3Impl) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteFile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.bucketOr(bucketName)
	key := path.Join(directory, objectName)

	scope.SetAttributes(map[string]any{
		"s3.bucket": bucket,
		"s3.key":    key,
	})

	if _, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("deleting %s from %s: %w", key, bucket, err)
	}

	log.Debug().Str("bucket", bucket).Str("key", key).Msg("object deleted")

	return nil
}

// GetObjectNameFromURL maps a URL returned by UploadFile, or a path-style API
// URL, back to its object key. Foreign URLs yield an empty key.
func (svc *s3Impl) GetObjectNameFromURL(bucketName, url string) string {
	bucket := svc.bucketOr(bucketName)

	var prefixes []string

	if svc.publicDomain != "" {
		prefixes = append(prefixes, svc.publicDomain+"/"+bucket+"/", svc.publicDomain+"/")
	}

	if svc.apiEndpoint != "" {
		prefixes = append(prefixes, svc.apiEndpoint+"/"+bucket+"/")
	}

	for _, prefix := range prefixes {
		if key, ok := strings.CutPrefix(url, prefix); ok && key != constant.Empty {
			return key
		}
	}

	return constant.Empty
}
