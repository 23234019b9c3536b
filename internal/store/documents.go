package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// CreateDocument stores the content read from r under a generated blob name
// and records its metadata. A nil reader records an empty document.
func (s *Store) CreateDocument(ctx context.Context, propertyID int64, fileName, contentType string, r io.Reader) (*models.PastDocument, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	dir := filepath.Join(s.uploadDir, strconv.FormatInt(propertyID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	blobName := uuid.NewString()
	blobPath := filepath.Join(dir, blobName)
	f, err := os.Create(blobPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	var size int64
	if r != nil {
		size, err = io.Copy(f, r)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(blobPath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	doc := models.PastDocument{
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
		CreatedAt:   s.today("/"),
	}
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO past_documents (property_id, file_name, content_type, size, blob_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		propertyID, doc.FileName, doc.ContentType, doc.Size, blobName, doc.CreatedAt,
	)
	if err == nil {
		doc.ID, err = result.LastInsertId()
	}
	if err != nil {
		_ = os.Remove(blobPath)
		return nil, fmt.Errorf("failed to create document: %w", translate(err))
	}
	return &doc, nil
}

// ListDocuments retrieves the property's document metadata, newest first.
func (s *Store) ListDocuments(ctx context.Context, propertyID int64) ([]models.PastDocument, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, file_name, content_type, size, created_at
		FROM past_documents WHERE property_id = ? ORDER BY id DESC`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := []models.PastDocument{}
	for rows.Next() {
		var d models.PastDocument
		if err := rows.Scan(&d.ID, &d.FileName, &d.ContentType, &d.Size, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// OpenDocument returns the metadata and an open handle to the content of a
// document. The caller closes the handle.
func (s *Store) OpenDocument(ctx context.Context, propertyID, id int64) (*models.PastDocument, *os.File, error) {
	doc, blobPath, err := s.getDocument(ctx, propertyID, id)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(blobPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open document content: %w", err)
	}
	return doc, f, nil
}

// DeleteDocument removes a document's metadata and content.
func (s *Store) DeleteDocument(ctx context.Context, propertyID, id int64) error {
	_, blobPath, err := s.getDocument(ctx, propertyID, id)
	if err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM past_documents WHERE property_id = ? AND id = ?`, propertyID, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if err := mustAffect(result); err != nil {
		return err
	}
	if err := os.Remove(blobPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete document content: %w", err)
	}
	return nil
}

func (s *Store) getDocument(ctx context.Context, propertyID, id int64) (*models.PastDocument, string, error) {
	var d models.PastDocument
	var blobName string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, file_name, content_type, size, blob_name, created_at
		FROM past_documents WHERE property_id = ? AND id = ?`, propertyID, id,
	).Scan(&d.ID, &d.FileName, &d.ContentType, &d.Size, &blobName, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get document: %w", err)
	}
	return &d, filepath.Join(s.uploadDir, strconv.FormatInt(propertyID, 10), blobName), nil
}
