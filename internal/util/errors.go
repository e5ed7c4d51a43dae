package util

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidScope     = errors.New("invalid report scope")
	ErrMissingInput     = errors.New("please provide both the job description and resume file")
)
