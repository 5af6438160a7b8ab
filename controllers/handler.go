package controllers

import (
	"cleanify-be/config"
)

// Handler bundles the shared store and upload directory for all route
// handlers. The store is injected rather than reached for globally so tests
// can run against independent instances.
type Handler struct {
	Store     *config.Store
	UploadDir string
}

func New(store *config.Store, uploadDir string) *Handler {
	return &Handler{Store: store, UploadDir: uploadDir}
}
