package domain

import "errors"

var (
	ErrNotFound                = errors.New("resource not found")
	ErrPriceListNotFound       = errors.New("no price list has been loaded")
	ErrUnsupportedContentType  = errors.New("expected multipart/form-data")
	ErrMissingFile             = errors.New("file field is required")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrFileTooLarge            = errors.New("file exceeds maximum allowed size")
	ErrInvalidDocument         = errors.New("invalid docx document")
	ErrNoProducts              = errors.New("no products found in the document")
	ErrUploadFailed            = errors.New("file upload to storage failed")
	ErrInvalidRequest          = errors.New("invalid request")
	ErrEmptyQuote              = errors.New("quote has no selected products")
	ErrQuoteTooLarge           = errors.New("quote exceeds the maximum number of items")
	ErrUnknownProduct          = errors.New("unknown product code")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
