package configwatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"institute_backend/internal/config"
	"institute_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = time.Second

type ConfigReloader func(cfg *config.Config)

// WatchFile 监听文件变化，防抖后调用 onChange，直到 ctx 结束
// 监听所在目录以兼容编辑器"写临时文件再重命名"的保存方式
func WatchFile(ctx context.Context, path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", absPath, err)
	}

	go func() {
		defer watcher.Close()

		timer := time.NewTimer(debounce)
		if !timer.Stop() {
			<-timer.C
		}

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					timer.Reset(debounce)
				}
			case <-timer.C:
				onChange()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.L().Error("File watcher error", zap.String("path", absPath), zap.Error(err))
			}
		}
	}()
	return nil
}

// WatchConfig 配置文件变化后重新加载，加载失败时保留原配置
func WatchConfig(ctx context.Context, configDir string, reloader ConfigReloader) error {
	return WatchFile(ctx, filepath.Join(configDir, "config.yaml"), func() {
		newCfg, err := config.LoadConfig(configDir)
		if err != nil {
			logger.L().Error("Failed to reload config", zap.Error(err))
			return
		}
		reloader(newCfg)
	})
}
