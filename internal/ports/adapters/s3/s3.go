// Package s3 adapts bucket+key object storage through the MinIO client,
// which speaks the S3 wire protocol against AWS and any custom endpoint.
package s3

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/thuralin/hardsub/internal/types"
)

type Adapter struct {
	client *minio.Client
	logf   func(format string, args ...any)
}

type Options struct {
	// EndpointURL overrides the default AWS endpoint, e.g. a MinIO or R2
	// deployment. Empty selects AWS S3.
	EndpointURL string
	AccessKey   string
	SecretKey   string
	Logf        func(format string, args ...any)
}

func New(opts Options) (*Adapter, error) {
	host, secure, err := ParseEndpointURL(opts.EndpointURL)
	if err != nil {
		return nil, err
	}

	var creds *credentials.Credentials
	if opts.AccessKey != "" && opts.SecretKey != "" {
		creds = credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, "")
	} else {
		creds = credentials.NewEnvAWS()
	}

	client, err := minio.New(host, &minio.Options{Creds: creds, Secure: secure})
	if err != nil {
		return nil, err
	}

	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Adapter{client: client, logf: logf}, nil
}

func (a *Adapter) Download(ctx context.Context, bucket, key, destPath string) error {
	a.logf("downloading s3://%s/%s -> %s", bucket, key, destPath)
	if err := a.client.FGetObject(ctx, bucket, key, destPath, minio.GetObjectOptions{}); err != nil {
		return &types.StorageError{Op: "download", Bucket: bucket, Key: key, Err: err}
	}
	return nil
}

func (a *Adapter) Upload(ctx context.Context, srcPath, bucket, key string) error {
	a.logf("uploading %s -> s3://%s/%s", srcPath, bucket, key)
	_, err := a.client.FPutObject(ctx, bucket, key, srcPath, minio.PutObjectOptions{
		ContentType: "video/mp4",
	})
	if err != nil {
		return &types.StorageError{Op: "upload", Bucket: bucket, Key: key, Err: err}
	}
	return nil
}
