package impl

import (
	"context"
	"log/slog"
	"time"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	"haven/internal/usecase"

	"github.com/pkg/errors"
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	verificationRepo repository.VerificationRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(
	verificationRepo repository.VerificationRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.VerificationUsecase {
	return &verificationService{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// Submit stores the artisan's document packet, keyed by their UID. A settled
// submission cannot be overwritten; a still-pending one can be corrected.
func (srv *verificationService) Submit(ctx context.Context, artisan *entity.User, input *usecase.SubmitVerificationInput) (*entity.VerificationSubmission, error) {
	existing, err := srv.verificationRepo.FindByUID(ctx, artisan.UID)
	if err != nil && !errors.Is(err, repository.ErrSubmissionNotFound) {
		return nil, errors.Wrap(err, "failed to check existing submission")
	}
	if existing != nil && existing.Status != entity.VerificationPending {
		return nil, errors.Wrap(domainerrors.ErrSubmissionSettled, "submission already reviewed")
	}

	submission := &entity.VerificationSubmission{
		UID:             artisan.UID,
		DisplayName:     artisan.DisplayName,
		Email:           artisan.Email,
		AadhaarURL:      input.AadhaarURL,
		PANURL:          input.PANURL,
		AddressProofURL: input.AddressProofURL,
		WorkProofURL:    input.WorkProofURL,
		GSTURL:          input.GSTURL,
		Status:          entity.VerificationPending,
		SubmittedAt:     time.Now().UTC(),
	}

	if err := srv.verificationRepo.Save(ctx, submission); err != nil {
		return nil, errors.Wrap(err, "failed to save submission")
	}

	srv.logger.Info("Verification submitted", slog.String("artisan_uid", artisan.UID))

	return submission, nil
}

// GetOwn returns the artisan's submission.
func (srv *verificationService) GetOwn(ctx context.Context, uid string) (*entity.VerificationSubmission, error) {
	submission, err := srv.verificationRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSubmissionNotFound, "no submission yet")
		}

		return nil, errors.Wrap(err, "failed to find submission")
	}

	return submission, nil
}

// ListPending returns submissions awaiting review.
func (srv *verificationService) ListPending(ctx context.Context) ([]*entity.VerificationSubmission, error) {
	submissions, err := srv.verificationRepo.ListPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending submissions")
	}

	return submissions, nil
}

// Approve flips the user's verified flag first, then marks the submission.
// Order matters: if marking fails the artisan is still verified and the
// submission stays actionable on the dashboard.
func (srv *verificationService) Approve(ctx context.Context, uid string) error {
	if _, err := srv.pendingSubmission(ctx, uid); err != nil {
		return err
	}

	if err := srv.userRepo.SetVerifiedArtisan(ctx, uid, true); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "artisan profile not found")
		}

		return errors.Wrap(err, "failed to mark artisan verified")
	}

	if err := srv.verificationRepo.UpdateStatus(ctx, uid, entity.VerificationApproved); err != nil {
		return errors.Wrap(err, "failed to mark submission approved")
	}

	srv.logger.Info("Verification approved", slog.String("artisan_uid", uid))

	return nil
}

// Reject marks the submission rejected. The user document is untouched.
func (srv *verificationService) Reject(ctx context.Context, uid string) error {
	if _, err := srv.pendingSubmission(ctx, uid); err != nil {
		return err
	}

	if err := srv.verificationRepo.UpdateStatus(ctx, uid, entity.VerificationRejected); err != nil {
		return errors.Wrap(err, "failed to mark submission rejected")
	}

	srv.logger.Info("Verification rejected", slog.String("artisan_uid", uid))

	return nil
}

func (srv *verificationService) pendingSubmission(ctx context.Context, uid string) (*entity.VerificationSubmission, error) {
	submission, err := srv.verificationRepo.FindByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSubmissionNotFound, "submission not found")
		}

		return nil, errors.Wrap(err, "failed to find submission")
	}
	if submission.Status != entity.VerificationPending {
		return nil, errors.Wrap(domainerrors.ErrSubmissionSettled, "submission already reviewed")
	}

	return submission, nil
}
