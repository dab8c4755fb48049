package repository

import (
	"context"
	"errors"

	"haven/internal/domain/entity"
)

// ErrSubmissionNotFound is returned when a verification submission does not exist.
var ErrSubmissionNotFound = errors.New("verification submission not found")

// VerificationRepository defines the operations for verification submission
// persistence. Submissions are keyed by artisan UID: one per artisan,
// resubmission overwrites in place.
type VerificationRepository interface {
	// FindByUID retrieves the artisan's submission.
	FindByUID(ctx context.Context, uid string) (*entity.VerificationSubmission, error)

	// Save creates or overwrites the artisan's submission.
	Save(ctx context.Context, submission *entity.VerificationSubmission) error

	// ListPending returns all submissions awaiting review.
	ListPending(ctx context.Context) ([]*entity.VerificationSubmission, error)

	// UpdateStatus sets the review status.
	UpdateStatus(ctx context.Context, uid string, status entity.VerificationStatus) error
}
