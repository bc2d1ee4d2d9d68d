package errors

import "errors"

var (
	ErrTermRequired         = errors.New("term is required")
	ErrDefinitionTooShort   = errors.New("definition must be at least 10 characters")
	ErrUnsupportedMediaType = errors.New("no extractor registered for media type")
	ErrNoUsableText         = errors.New("extraction produced no usable text")
	ErrExtractionFailed     = errors.New("file extraction failed")
	ErrEmptyFile            = errors.New("uploaded file is empty")
)
