package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/dannykhan02/Ticketing-system/internal/domain/media"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
)

type azureMediaStorage struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureMediaStorage creates a media.Storage backed by an Azure Blob
// Storage container, creating the container if it does not exist.
func NewAzureMediaStorage(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (media.Storage, error) {
	if settings.ConnectionString == "" || settings.ContainerName == "" {
		return nil, fmt.Errorf("connection string and container name must not be empty")
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &azureMediaStorage{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

func (s *azureMediaStorage) Save(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	_, err := s.client.UploadBuffer(ctx, s.containerName, name, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload media object: %w", err)
	}

	url := fmt.Sprintf("%s%s/%s", s.client.URL(), s.containerName, name)
	s.logger.Info("Uploaded media object ", name)
	return url, nil
}

func (s *azureMediaStorage) Fetch(ctx context.Context, name string) ([]byte, error) {
	resp, err := s.client.DownloadStream(ctx, s.containerName, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download media object: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read media object: %w", err)
	}
	return data, nil
}

func (s *azureMediaStorage) Delete(ctx context.Context, name string) error {
	if _, err := s.client.DeleteBlob(ctx, s.containerName, name, nil); err != nil {
		return fmt.Errorf("failed to delete media object: %w", err)
	}

	s.logger.Info("Deleted media object ", name)
	return nil
}
