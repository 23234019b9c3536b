package api

import (
	"mime"
	"net/http"
	"time"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

const maxUploadSize = 32 << 20

// DocumentsHandler handles past document storage.
type DocumentsHandler struct {
	store *store.Store
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(s *store.Store) *DocumentsHandler {
	return &DocumentsHandler{store: s}
}

// List handles GET /api/properties/{propertyId}/past-documents.
// @Summary List past documents
// @Tags past-documents
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {array} models.PastDocument
// @Router /properties/{propertyId}/past-documents [get]
func (h *DocumentsHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.ListDocuments(r.Context(), propertyID(r))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list documents")
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// Create handles POST /api/properties/{propertyId}/past-documents.
// @Summary Register a document without content
// @Tags past-documents
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param request body models.CreatePastDocumentRequest true "Document"
// @Success 201 {object} models.PastDocument
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/past-documents [post]
func (h *DocumentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePastDocumentRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	doc, err := h.store.CreateDocument(r.Context(), propertyID(r), req.FileName, "", nil)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to create document")
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// Upload handles POST /api/properties/{propertyId}/past-documents/upload.
// @Summary Upload a document
// @Tags past-documents
// @Accept multipart/form-data
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param file formData file true "Document content"
// @Success 201 {object} models.PastDocument
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/past-documents/upload [post]
func (h *DocumentsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing file")
		return
	}
	defer file.Close()

	doc, err := h.store.CreateDocument(r.Context(), propertyID(r), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to save document")
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// Download handles GET /api/properties/{propertyId}/past-documents/{id}/download.
// @Summary Download a document
// @Tags past-documents
// @Produce octet-stream
// @Param propertyId path int true "Property ID"
// @Param id path int true "Document ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /properties/{propertyId}/past-documents/{id}/download [get]
func (h *DocumentsHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id", "document ID")
	if !ok {
		return
	}

	doc, f, err := h.store.OpenDocument(r.Context(), propertyID(r), id)
	if err != nil {
		writeStoreError(w, r, err, "Document not found", "Failed to open document")
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	http.ServeContent(w, r, doc.FileName, time.Time{}, f)
}

// Delete handles DELETE /api/properties/{propertyId}/past-documents/{id}.
func (h *DocumentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id", "document ID")
	if !ok {
		return
	}

	if err := h.store.DeleteDocument(r.Context(), propertyID(r), id); err != nil {
		writeStoreError(w, r, err, "Document not found", "Failed to delete document")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
