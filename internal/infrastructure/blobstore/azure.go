package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/kurochkinivan/exam_analyzer/internal/domain"
)

// AzureScheme prefixes paths of objects kept in Azure Blob Storage; the bucket is the container name.
const AzureScheme = "az"

type AzureStore struct {
	client *azblob.Client
}

// NewAzureStore prefers the connection string when set and falls back to
// DefaultAzureCredential against the account URL.
func NewAzureStore(accountURL, connectionString string) (*AzureStore, error) {
	if connectionString != "" {
		client, err := azblob.NewClientFromConnectionString(connectionString, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create blob client from connection string: %w", err)
		}

		return &AzureStore{client: client}, nil
	}

	if accountURL == "" {
		return nil, errors.New("azure account url or connection string is required")
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure credential: %w", err)
	}

	client, err := azblob.NewClient(accountURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}

	return &AzureStore{client: client}, nil
}

func (s *AzureStore) Put(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	path := Path{Scheme: AzureScheme, Bucket: bucket, Key: key}

	opts := &azblob.UploadBufferOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: to.Ptr(contentType)}
	}

	if _, err := s.client.UploadBuffer(ctx, bucket, key, data, opts); err != nil {
		return "", transferError("upload", path.String(), classify(err))
	}

	return path.String(), nil
}

func (s *AzureStore) Get(ctx context.Context, raw, localDestination string) (err error) {
	path, err := ParsePath(raw, AzureScheme)
	if err != nil {
		return transferError("download", raw, err)
	}

	f, err := os.Create(localDestination)
	if err != nil {
		return transferError("download", raw, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if _, err := s.client.DownloadFile(ctx, path.Bucket, path.Key, f, nil); err != nil {
		return transferError("download", raw, classify(err))
	}

	return nil
}

func (s *AzureStore) Validate(raw string) error {
	_, err := ParsePath(raw, AzureScheme)
	return err
}

func (s *AzureStore) Ping(ctx context.Context) error {
	pager := s.client.NewListContainersPager(&azblob.ListContainersOptions{
		MaxResults: to.Ptr[int32](1),
	})

	if _, err := pager.NextPage(ctx); err != nil {
		return fmt.Errorf("failed to list containers: %w", classify(err))
	}

	return nil
}

func classify(err error) error {
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrBlobNotFound, err)
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return fmt.Errorf("storage responded with %d %s: %w", respErr.StatusCode, respErr.ErrorCode, err)
	}

	return err
}
