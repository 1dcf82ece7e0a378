package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sharedhouse/config"
	"sharedhouse/infras/otel"
	"sharedhouse/shared/constant"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
)

// S3 resolves stored object keys (avatars, space pictures) into URLs a browser can load.
type S3 interface {
	ObjectURL(ctx context.Context, objectKey string) (url string, err error)
}

type s3Impl struct {
	presigner *s3.PresignClient
	Config    *config.Config
	otel      otel.Otel
}

// ObjectURL returns the public URL of objectKey when a public domain is
// configured, and a presigned GET URL otherwise. Absolute URLs are returned
// unchanged and an empty key yields an empty URL.
func (svc *s3Impl) ObjectURL(ctx context.Context, objectKey string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".ObjectURL")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if objectKey == "" || isAbsoluteURL(objectKey) {
		return objectKey, nil
	}

	bucket := svc.Config.External.S3.BucketName
	key := strings.TrimPrefix(objectKey, "/")

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	if publicDomain := svc.Config.External.S3.PublicDomain; publicDomain != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(publicDomain, "/"), key), nil
	}

	expires := time.Duration(svc.Config.External.S3.PresignExpireMin) * time.Minute

	req, err := svc.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		log.Error().Err(err).Str(otelAttrObjectKey, key).Msg("failed to presign object url")

		return constant.Empty, fmt.Errorf("failed to presign object url: %w", err)
	}

	return req.URL, nil
}

func isAbsoluteURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := config.External.S3.APIEndpoint; endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}

		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		presigner: s3.NewPresignClient(s3Client),
		Config:    config,
		otel:      otel,
	}
}
