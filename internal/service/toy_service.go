package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/toy-store/internal/domain"
	"github.com/spec-kit/toy-store/internal/query"
	"github.com/spec-kit/toy-store/internal/repository"
	apperrors "github.com/spec-kit/toy-store/pkg/util"
)

// CountResult reports collection size and page count for a given divisor.
type CountResult struct {
	Count int64 `json:"count"`
	Pages int64 `json:"pages"`
}

// ToyService coordinates listing and ownership-scoped mutation of toys.
type ToyService struct {
	toys   repository.ToyRepository
	logger *zap.Logger
}

// NewToyService builds the service.
func NewToyService(toys repository.ToyRepository, logger *zap.Logger) *ToyService {
	return &ToyService{toys: toys, logger: logger}
}

// List applies the descriptor verbatim to the store and materializes a
// single response batch.
func (s *ToyService) List(ctx context.Context, d query.Descriptor) ([]domain.Toy, error) {
	return s.toys.Find(ctx, d)
}

// Get returns a single toy by id.
func (s *ToyService) Get(ctx context.Context, id string) (*domain.Toy, error) {
	toy, err := s.toys.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("toy", nil)
		}
		return nil, err
	}
	return toy, nil
}

// Create validates the payload and persists a new toy. The owner identifier
// is forced to the authenticated caller regardless of the body's user_id,
// which prevents ownership spoofing.
func (s *ToyService) Create(ctx context.Context, callerID string, in domain.ToyInput) (*domain.Toy, error) {
	if violations := in.Validate(); len(violations) > 0 {
		return nil, apperrors.NewValidationError("invalid toy payload", map[string]any{"violations": violations})
	}

	toy := &domain.Toy{
		Name:     in.Name,
		Info:     in.Info,
		Category: in.Category,
		ImgURL:   in.ImgURL,
		Price:    in.Price,
		OwnerID:  callerID,
	}
	if err := s.toys.Insert(ctx, toy); err != nil {
		return nil, err
	}
	s.logger.Info("toy created", zap.String("toy_id", toy.ID), zap.String("owner_id", callerID))
	return toy, nil
}

// Update validates the payload and mutates the document matching both id and
// owner. Zero matches covers wrong id and not-owned alike; neither raises.
func (s *ToyService) Update(ctx context.Context, id, callerID string, in domain.ToyInput) (repository.UpdateResult, error) {
	if violations := in.Validate(); len(violations) > 0 {
		return repository.UpdateResult{}, apperrors.NewValidationError("invalid toy payload", map[string]any{"violations": violations})
	}

	toy := &domain.Toy{
		Name:     in.Name,
		Info:     in.Info,
		Category: in.Category,
		ImgURL:   in.ImgURL,
		Price:    in.Price,
		OwnerID:  in.OwnerID,
	}
	return s.toys.Update(ctx, id, callerID, toy)
}

// Delete removes the document matching both id and owner, reporting how many
// documents were deleted.
func (s *ToyService) Delete(ctx context.Context, id, callerID string) (int64, error) {
	return s.toys.Delete(ctx, id, callerID)
}

// Count reports collection size and the page count for the given divisor.
// The divisor is not clamped to the listing limit.
func (s *ToyService) Count(ctx context.Context, limit int64) (CountResult, error) {
	count, err := s.toys.Count(ctx)
	if err != nil {
		return CountResult{}, err
	}
	return CountResult{Count: count, Pages: query.Pages(count, limit)}, nil
}
