package storage_test

import (
	"context"
	"errors"
	"testing"

	"lexicon-manager/core/storage"
	"lexicon-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestArchiverArchive(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "lexicon-archive", "archive/words/w1.json",
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	archiver := storage.NewArchiver(mockClient, "lexicon-archive")

	record := map[string]string{"id": "w1", "word": "nri"}
	err := archiver.Archive(context.Background(), "words", "w1", record)
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestArchiverArchiveUploadFails(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "lexicon-archive", "archive/suggestions/s1.json",
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	archiver := storage.NewArchiver(mockClient, "lexicon-archive")

	err := archiver.Archive(context.Background(), "suggestions", "s1", map[string]string{"id": "s1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestArchiverEnsureBucket(t *testing.T) {
	t.Run("Already Exists", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "lexicon-archive").Return(true, nil)

		archiver := storage.NewArchiver(mockClient, "lexicon-archive")
		assert.NoError(t, archiver.EnsureBucket(context.Background()))
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created When Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "lexicon-archive").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "lexicon-archive", mock.Anything).Return(nil)

		archiver := storage.NewArchiver(mockClient, "lexicon-archive")
		assert.NoError(t, archiver.EnsureBucket(context.Background()))
		mockClient.AssertExpectations(t)
	})
}
