package model

import "time"

// DocumentType is a named category that documents reference.
// Names are unique; the constraint lives in the database and violations are
// surfaced as domain errors by the service layer.
type DocumentType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Document is a registered link tagged with a document type.
// The relationship to DocumentType is a plain foreign-key field; resolving it
// is an explicit lookup, not an automatic join.
type Document struct {
	ID        int64     `json:"id"`
	TypeID    int64     `json:"type_id"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
