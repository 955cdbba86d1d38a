package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is the tabular content of an uploaded price list file.
// Only tables are kept; body paragraphs carry no product data.
type Document struct {
	Tables []Table
}

// Table is one top-level table of a Document in document order.
type Table struct {
	// Columns is the number of grid columns declared by the table,
	// independent of how many cells an individual row carries.
	Columns int
	Rows    []Row
}

// Row holds the raw text of each cell. Multi-paragraph cells are joined with "\n".
type Row struct {
	Cells []string
}

// ProductRecord is one entry of the published price list.
// Field order and JSON names are part of the artifact format.
type ProductRecord struct {
	Code        string `json:"code" csv:"code"`
	Description string `json:"description" csv:"description"`
	DealerPrice string `json:"dealerPrice" csv:"dealerPrice"`
}

// PriceListUpload describes a successfully processed upload.
type PriceListUpload struct {
	ID           uuid.UUID `json:"id"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	ProductCount int       `json:"product_count"`
	ArtifactKey  string    `json:"artifact_key"`
	OriginalKey  string    `json:"original_key,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
