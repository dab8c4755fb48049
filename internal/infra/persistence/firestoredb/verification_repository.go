package firestoredb

import (
	"context"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// verificationRepository implements repository.VerificationRepository on the
// verificationSubmissions collection, keyed by artisan UID.
type verificationRepository struct {
	client *firestore.Client
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(client *firestore.Client) repository.VerificationRepository {
	return &verificationRepository{client: client}
}

func (repo *verificationRepository) doc(uid string) *firestore.DocumentRef {
	return repo.client.Collection(verificationsCollection).Doc(uid)
}

// FindByUID retrieves the artisan's submission.
func (repo *verificationRepository) FindByUID(ctx context.Context, uid string) (*entity.VerificationSubmission, error) {
	snap, err := repo.doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification submission")
	}

	return decodeSubmission(snap)
}

// Save creates or overwrites the artisan's submission.
func (repo *verificationRepository) Save(ctx context.Context, submission *entity.VerificationSubmission) error {
	if _, err := repo.doc(submission.UID).Set(ctx, submission); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save verification submission")
	}

	return nil
}

// ListPending returns all submissions awaiting review, oldest first.
func (repo *verificationRepository) ListPending(ctx context.Context) ([]*entity.VerificationSubmission, error) {
	snaps, err := repo.client.Collection(verificationsCollection).
		Where("status", "==", entity.VerificationPending.String()).
		OrderBy("submittedAt", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending verification submissions")
	}

	submissions := make([]*entity.VerificationSubmission, 0, len(snaps))
	for _, snap := range snaps {
		submission, err := decodeSubmission(snap)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	return submissions, nil
}

// UpdateStatus sets the review status.
func (repo *verificationRepository) UpdateStatus(ctx context.Context, uid string, status entity.VerificationStatus) error {
	_, err := repo.doc(uid).Update(ctx, []firestore.Update{
		{Path: "status", Value: status.String()},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrSubmissionNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update verification status")
	}

	return nil
}

func decodeSubmission(snap *firestore.DocumentSnapshot) (*entity.VerificationSubmission, error) {
	var submission entity.VerificationSubmission
	if err := snap.DataTo(&submission); err != nil {
		return nil, errors.Wrap(err, "failed to decode verification submission")
	}
	submission.UID = snap.Ref.ID

	return &submission, nil
}
