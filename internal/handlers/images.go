// Package handlers holds the plain HTTP endpoints next to the GraphQL API.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maclaude/learning-node-js-graphql-api/internal/auth"
	"github.com/maclaude/learning-node-js-graphql-api/internal/dto"
	"github.com/maclaude/learning-node-js-graphql-api/internal/images"
)

// ImageHandler accepts post image uploads.
type ImageHandler struct {
	store *images.Store
}

// NewImageHandler returns a new ImageHandler.
func NewImageHandler(store *images.Store) *ImageHandler {
	return &ImageHandler{store: store}
}

// Upload handles PUT /post-image: a single multipart "image" file, stored
// under a unique name. An "oldPath" form field names a replaced image, which
// is removed best-effort. Requires an authenticated context.
func (h *ImageHandler) Upload(c *gin.Context) {
	ident := auth.FromContext(c.Request.Context())
	if !ident.Authenticated {
		c.JSON(http.StatusUnauthorized, dto.UploadResponse{Message: "Not authenticated!"})
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusOK, dto.UploadResponse{Message: "No file provided!"})
		return
	}
	if !h.store.Allowed(header.Header.Get("Content-Type")) {
		c.JSON(http.StatusUnprocessableEntity, dto.UploadResponse{Message: "Unsupported file type"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.UploadResponse{Message: "Could not read file"})
		return
	}
	defer file.Close()

	path, err := h.store.Save(file, header.Filename)
	if err != nil {
		log.Printf("store image: %v", err)
		c.JSON(http.StatusInternalServerError, dto.UploadResponse{Message: "Could not store file"})
		return
	}

	if old := c.PostForm("oldPath"); old != "" {
		if err := h.store.Remove(old); err != nil {
			log.Printf("remove replaced image %q: %v", old, err)
		}
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{Message: "File stored", FilePath: path})
}
