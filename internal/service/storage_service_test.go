package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"institute_backend/internal/config"
	"institute_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageOpen(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "resumes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "resumes", "ann.txt"), []byte("python and sql"), 0o644))

	svc, err := NewStorageService(&config.Config{Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: root}})
	require.NoError(t, err)

	obj, err := svc.Open(context.Background(), "resumes/ann.txt", 1024)
	require.NoError(t, err)
	assert.Equal(t, "python and sql", string(obj.Data))
	assert.True(t, strings.HasPrefix(obj.ContentType, "text/plain"))

	_, err = svc.Open(context.Background(), "resumes/missing.txt", 1024)
	assert.ErrorIs(t, err, util.ErrDocumentNotFound)

	_, err = svc.Open(context.Background(), "resumes/ann.txt", 4)
	assert.ErrorIs(t, err, util.ErrFileTooLarge)
}

func TestLocalStorageStaysInsideRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "uploads")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("secret"), 0o644))

	p := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: root}}
	_, err := p.Open(context.Background(), "../secret.txt", 1024)
	assert.ErrorIs(t, err, util.ErrDocumentNotFound)
}

func TestNewStorageServiceProviders(t *testing.T) {
	svc, err := NewStorageService(&config.Config{Storage: config.StorageConfig{
		Type:          util.StorageMinio,
		MinioEndpoint: "127.0.0.1:9000",
		MinioBucket:   "resumes",
	}})
	require.NoError(t, err)
	assert.IsType(t, &MinioStorageProvider{}, svc.Provider)

	svc, err = NewStorageService(&config.Config{Storage: config.StorageConfig{Type: "anything-else"}})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorageProvider{}, svc.Provider)
}
