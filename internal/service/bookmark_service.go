package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/carhive/carhive-api/internal/domain"
	"github.com/carhive/carhive-api/internal/repository/ports"
)

var (
	ErrBookmarkValidation = errors.New("bookmark validation failed")
	ErrBookmarkNotFound   = errors.New("bookmark not found")
)

// BookmarkService manages each user's saved-vehicle set. The store's
// insert-if-absent primitive carries the set semantics; the service never
// reads membership before writing.
type BookmarkService struct {
	bookmarks ports.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo ports.BookmarkRepository) *BookmarkService {
	return &BookmarkService{bookmarks: bookmarkRepo}
}

// Save adds the vehicle to the user's set and returns the resulting
// membership. Re-adding an existing member succeeds without change.
// The vehicle id is not checked against the catalog: saving an unknown id is
// tolerated and the boundary decides how to display it.
func (s *BookmarkService) Save(ctx context.Context, userID uuid.UUID, vehicleID string) ([]domain.Bookmark, error) {
	vehicleID, err := s.validatePair(userID, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := s.bookmarks.Add(ctx, userID, vehicleID); err != nil {
		return nil, err
	}
	return s.bookmarks.ListByUser(ctx, userID)
}

// Remove deletes the membership and returns what is left. Unlike Save it is
// not idempotent: removing a vehicle that is not in the set fails.
func (s *BookmarkService) Remove(ctx context.Context, userID uuid.UUID, vehicleID string) ([]domain.Bookmark, error) {
	vehicleID, err := s.validatePair(userID, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := s.bookmarks.Remove(ctx, userID, vehicleID); err != nil {
		if isNotFound(err) {
			return nil, ErrBookmarkNotFound
		}
		return nil, err
	}
	return s.bookmarks.ListByUser(ctx, userID)
}

func (s *BookmarkService) List(ctx context.Context, userID uuid.UUID) ([]domain.Bookmark, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user required", ErrBookmarkValidation)
	}
	return s.bookmarks.ListByUser(ctx, userID)
}

func (s *BookmarkService) validatePair(userID uuid.UUID, vehicleID string) (string, error) {
	if userID == uuid.Nil {
		return "", fmt.Errorf("%w: user required", ErrBookmarkValidation)
	}
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return "", fmt.Errorf("%w: vehicle id required", ErrBookmarkValidation)
	}
	return vehicleID, nil
}
