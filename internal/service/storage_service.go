package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"institute_backend/internal/config"
	"institute_backend/internal/util"
)

// StoredObject 从存储后端读取的文件
type StoredObject struct {
	Key         string
	ContentType string
	Data        []byte
}

// StorageProvider 定义通用存储接口
type StorageProvider interface {
	Open(ctx context.Context, key string, maxBytes int64) (*StoredObject, error)
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, util.ErrFileTooLarge
	}
	return data, nil
}

// LocalStorageProvider 本地存储实现
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Open(ctx context.Context, key string, maxBytes int64) (*StoredObject, error) {
	// 清理路径，防止访问 LocalPath 之外的文件
	path := filepath.Join(p.Config.LocalPath, filepath.Clean("/"+key))

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, util.ErrDocumentNotFound
		}
		return nil, err
	}
	defer f.Close()

	data, err := readLimited(f, maxBytes)
	if err != nil {
		return nil, err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return &StoredObject{Key: key, ContentType: contentType, Data: data}, nil
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Open(ctx context.Context, key string, maxBytes int64) (*StoredObject, error) {
	obj, err := p.Client.GetObject(ctx, p.Config.MinioBucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, util.ErrDocumentNotFound
		}
		return nil, err
	}
	if info.Size > maxBytes {
		return nil, util.ErrFileTooLarge
	}

	data, err := readLimited(obj, maxBytes)
	if err != nil {
		return nil, err
	}
	return &StoredObject{Key: key, ContentType: info.ContentType, Data: data}, nil
}

// OSSStorageProvider 阿里云OSS存储实现
type OSSStorageProvider struct {
	Config *config.StorageConfig
	Client *oss.Client
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Config: cfg, Client: client}, nil
}

func (p *OSSStorageProvider) Open(ctx context.Context, key string, maxBytes int64) (*StoredObject, error) {
	bucket, err := p.Client.Bucket(p.Config.OSSBucket)
	if err != nil {
		return nil, err
	}

	meta, err := bucket.GetObjectDetailedMeta(key, oss.WithContext(ctx))
	if err != nil {
		var svcErr oss.ServiceError
		if errors.As(err, &svcErr) && svcErr.StatusCode == http.StatusNotFound {
			return nil, util.ErrDocumentNotFound
		}
		return nil, err
	}

	body, err := bucket.GetObject(key, oss.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := readLimited(body, maxBytes)
	if err != nil {
		return nil, err
	}
	return &StoredObject{Key: key, ContentType: meta.Get("Content-Type"), Data: data}, nil
}

// StorageService 存储服务
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	var provider StorageProvider
	switch cfg.Storage.Type {
	case util.StorageMinio:
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("init minio storage: %w", err)
		}
		provider = p
	case util.StorageOSS:
		p, err := NewOSSStorageProvider(&cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("init oss storage: %w", err)
		}
		provider = p
	default:
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &StorageService{Provider: provider}, nil
}

func (s *StorageService) Open(ctx context.Context, key string, maxBytes int64) (*StoredObject, error) {
	return s.Provider.Open(ctx, key, maxBytes)
}
