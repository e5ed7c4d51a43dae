package resume

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyVocabulary     = errors.New("skill vocabulary is empty")
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrEmptyDocument       = errors.New("document is empty")
)

// DocumentReadError 无法从上传文档中提取文本
type DocumentReadError struct {
	Name string
	Err  error
}

func (e *DocumentReadError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("failed to read document: %v", e.Err)
	}
	return fmt.Sprintf("failed to read document %q: %v", e.Name, e.Err)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}
