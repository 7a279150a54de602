package client

import (
	"context"
	"net/http"

	"github.com/cosyll/cosyll-web/internal/dto"
	"github.com/cosyll/cosyll-web/internal/models"
)

// ListCollections fetches every collection visible to viewer.
func (c *Client) ListCollections(ctx context.Context, viewer *models.Viewer) ([]models.Collection, error) {
	var listing models.CollectionListing
	if err := c.do(ctx, "list_collections", http.MethodGet, endpoint("collections"), viewer, nil, &listing); err != nil {
		return nil, err
	}
	return listing.Collections, nil
}

// GetCollection fetches one collection with its member syllabi.
func (c *Client) GetCollection(ctx context.Context, viewer *models.Viewer, id string) (*models.Collection, error) {
	var collection models.Collection
	if err := c.do(ctx, "get_collection", http.MethodGet, endpoint("collections", id), viewer, nil, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// CreateCollection creates a collection owned by viewer.
func (c *Client) CreateCollection(ctx context.Context, viewer *models.Viewer, req dto.CreateCollectionRequest) (*models.Collection, error) {
	var collection models.Collection
	if err := c.do(ctx, "create_collection", http.MethodPost, endpoint("collections"), viewer, req, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// UpdateCollection patches a collection.
func (c *Client) UpdateCollection(ctx context.Context, viewer *models.Viewer, id string, req dto.UpdateCollectionRequest) (*models.Collection, error) {
	var collection models.Collection
	if err := c.do(ctx, "update_collection", http.MethodPatch, endpoint("collections", id), viewer, req, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// DeleteCollection removes a collection. Member syllabi are untouched.
func (c *Client) DeleteCollection(ctx context.Context, viewer *models.Viewer, id string) error {
	return c.do(ctx, "delete_collection", http.MethodDelete, endpoint("collections", id), viewer, nil, nil)
}

// AddToCollection appends a syllabus to a collection.
func (c *Client) AddToCollection(ctx context.Context, viewer *models.Viewer, collectionID, syllabusID string) error {
	return c.do(ctx, "add_to_collection", http.MethodPost, endpoint("collections", collectionID, "syllabi", syllabusID), viewer, nil, nil)
}

// RemoveFromCollection drops a syllabus from a collection.
func (c *Client) RemoveFromCollection(ctx context.Context, viewer *models.Viewer, collectionID, syllabusID string) error {
	return c.do(ctx, "remove_from_collection", http.MethodDelete, endpoint("collections", collectionID, "syllabi", syllabusID), viewer, nil, nil)
}
