package impl

import (
	"context"
	"testing"

	"haven/internal/domain/entity"
	domainerrors "haven/internal/domain/errors"
	"haven/internal/domain/repository"
	mockRepo "haven/internal/mocks/repository"
	"haven/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func submissionInput() *usecase.SubmitVerificationInput {
	return &usecase.SubmitVerificationInput{
		AadhaarURL:      "https://media/aadhaar.pdf",
		PANURL:          "https://media/pan.pdf",
		AddressProofURL: "https://media/address.pdf",
		WorkProofURL:    "https://media/work.jpg",
	}
}

func TestVerificationService_Submit_FirstTime(t *testing.T) {
	mockVerRepo := mockRepo.NewMockVerificationRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewVerificationService(mockVerRepo, mockUserRepo, testLogger())

	ctx := context.Background()
	artisan := testArtisan()

	mockVerRepo.EXPECT().
		FindByUID(ctx, "artisan-1").
		Return(nil, repository.ErrSubmissionNotFound)

	var saved *entity.VerificationSubmission
	mockVerRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.VerificationSubmission")).
		Run(func(_ context.Context, submission *entity.VerificationSubmission) {
			saved = submission
		}).
		Return(nil)

	submission, err := svc.Submit(ctx, artisan, submissionInput())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "artisan-1", submission.UID)
	assert.Equal(t, entity.VerificationPending, submission.Status)
	assert.Empty(t, submission.GSTURL)
}

func TestVerificationService_Submit_PendingOverwrites(t *testing.T) {
	mockVerRepo := mockRepo.NewMockVerificationRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewVerificationService(mockVerRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	mockVerRepo.EXPECT().
		FindByUID(ctx, "artisan-1").
		Return(&entity.VerificationSubmission{UID: "artisan-1", Status: entity.VerificationPending}, nil)

	mockVerRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.VerificationSubmission")).
		Return(nil)

	_, err := svc.Submit(ctx, testArtisan(), submissionInput())
	require.NoError(t, err)
}

func TestVerificationService_Submit_SettledSubmissionBlocks(t *testing.T) {
	mockVerRepo := mockRepo.NewMockVerificationRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewVerificationService(mockVerRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	mockVerRepo.EXPECT().
		FindByUID(ctx, "artisan-1").
		Return(&entity.VerificationSubmission{UID: "artisan-1", Status: entity.VerificationApproved}, nil)

	_, err := svc.Submit(ctx, testArtisan(), submissionInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSubmissionSettled)
}

func TestVerificationService_Approve_FlipsUserFlagFirst(t *testing.T) {
	mockVerRepo := mockRepo.NewMockVerificationRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewVerificationService(mockVerRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	mockVerRepo.EXPECT().
		FindByUID(ctx, "artisan-1").
		Return(&entity.VerificationSubmission{UID: "artisan-1", Status: entity.VerificationPending}, nil)

	mockUserRepo.EXPECT().
		SetVerifiedArtisan(ctx, "artisan-1", true).
		Return(nil)

	mockVerRepo.EXPECT().
		UpdateStatus(ctx, "artisan-1", entity.VerificationApproved).
		Return(nil)

	err := svc.Approve(ctx, "artisan-1")
	require.NoError(t, err)
}

func TestVerificationService_Approve_SettledSubmission(t *testing.T) {
	mockVerRepo := mockRepo.NewMockVerificationRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewVerificationService(mockVerRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	mockVerRepo.EXPECT().
		FindByUID(ctx, "artisan-1").
		Return(&entity.VerificationSubmission{UID: "artisan-1", Status: entity.VerificationRejected}, nil)

	err := svc.Approve(ctx, "artisan-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSubmissionSettled)
}

func TestVerificationService_Reject_LeavesUserUntouched(t *testing.T) {
	mockVerRepo := mockRepo.NewMockVerificationRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewVerificationService(mockVerRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	mockVerRepo.EXPECT().
		FindByUID(ctx, "artisan-1").
		Return(&entity.VerificationSubmission{UID: "artisan-1", Status: entity.VerificationPending}, nil)

	mockVerRepo.EXPECT().
		UpdateStatus(ctx, "artisan-1", entity.VerificationRejected).
		Return(nil)

	err := svc.Reject(ctx, "artisan-1")
	require.NoError(t, err)
	// No SetVerifiedArtisan expectation: rejection must not touch the user doc.
	mockUserRepo.AssertNotCalled(t, "SetVerifiedArtisan", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerificationService_GetOwn_NotFound(t *testing.T) {
	mockVerRepo := mockRepo.NewMockVerificationRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	svc := NewVerificationService(mockVerRepo, mockUserRepo, testLogger())

	ctx := context.Background()

	mockVerRepo.EXPECT().
		FindByUID(ctx, "artisan-1").
		Return(nil, repository.ErrSubmissionNotFound)

	_, err := svc.GetOwn(ctx, "artisan-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSubmissionNotFound)
}
