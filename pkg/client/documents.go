package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// ListDocuments lists the document metadata of the property.
func (c *Client) ListDocuments(ctx context.Context, propertyID int64) ([]models.PastDocument, error) {
	return getList[models.PastDocument](ctx, c, propertyPath(propertyID, "past-documents"), nil)
}

// CreateDocument registers document metadata without content.
func (c *Client) CreateDocument(ctx context.Context, propertyID int64, req *models.CreatePastDocumentRequest) (*models.PastDocument, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var out models.PastDocument
	if err := c.doJSON(ctx, http.MethodPost, propertyPath(propertyID, "past-documents"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadDocument uploads content as the multipart form field "file".
func (c *Client) UploadDocument(ctx context.Context, propertyID int64, fileName string, content io.Reader) (*models.PastDocument, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, propertyPath(propertyID, "past-documents", "upload"), nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out models.PastDocument
	if err := decodeJSON(resp.Body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadDocument copies the content of a document to w and returns the
// file name announced by the server.
func (c *Client) DownloadDocument(ctx context.Context, propertyID, id int64, w io.Writer) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, propertyPath(propertyID, "past-documents", strconv.FormatInt(id, 10), "download"), nil, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.send(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	var fileName string
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		fileName = params["filename"]
	}
	return fileName, nil
}

// DeleteDocument deletes a document.
func (c *Client) DeleteDocument(ctx context.Context, propertyID, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, propertyPath(propertyID, "past-documents", strconv.FormatInt(id, 10)), nil, nil, nil)
}
