package usecase

import (
	"context"

	"haven/internal/domain/entity"
)

// VerificationUsecase defines the artisan verification workflow: one
// submission per artisan, reviewed by an admin. Approval is the only path to
// the verified-artisan flag.
type VerificationUsecase interface {
	// Submit stores the artisan's document packet. Resubmission overwrites the
	// previous packet and resets the status to pending, unless the previous
	// one was already settled.
	Submit(ctx context.Context, artisan *entity.User, input *SubmitVerificationInput) (*entity.VerificationSubmission, error)

	// GetOwn returns the artisan's submission.
	GetOwn(ctx context.Context, uid string) (*entity.VerificationSubmission, error)

	// ListPending returns submissions awaiting review, oldest first.
	ListPending(ctx context.Context) ([]*entity.VerificationSubmission, error)

	// Approve flips the artisan's verified flag, then marks the submission
	// approved.
	Approve(ctx context.Context, uid string) error

	// Reject marks the submission rejected; the user document is untouched.
	Reject(ctx context.Context, uid string) error
}

// --- Input DTOs ---

// SubmitVerificationInput carries the uploaded document URLs.
type SubmitVerificationInput struct {
	AadhaarURL      string `json:"aadhaarUrl" validate:"required,url"`
	PANURL          string `json:"panUrl" validate:"required,url"`
	AddressProofURL string `json:"addressProofUrl" validate:"required,url"`
	WorkProofURL    string `json:"workProofUrl" validate:"required,url"`
	GSTURL          string `json:"gstUrl,omitempty" validate:"omitempty,url"`
}
