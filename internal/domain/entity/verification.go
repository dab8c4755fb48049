package entity

import "time"

// VerificationStatus is the review state of a submission. It starts pending
// and is terminal once approved or rejected.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// String returns the wire representation of the status.
func (s VerificationStatus) String() string {
	return string(s)
}

// VerificationSubmission is an artisan's one-time document packet reviewed by
// an admin. The document ID is the artisan UID, so at most one submission
// exists per artisan; resubmitting overwrites in place.
type VerificationSubmission struct {
	UID         string `firestore:"-" json:"uid"`
	DisplayName string `firestore:"displayName" json:"displayName"`
	Email       string `firestore:"email" json:"email"`

	AadhaarURL      string `firestore:"aadhaarUrl" json:"aadhaarUrl"`
	PANURL          string `firestore:"panUrl" json:"panUrl"`
	AddressProofURL string `firestore:"addressProofUrl" json:"addressProofUrl"`
	WorkProofURL    string `firestore:"workProofUrl" json:"workProofUrl"`
	// GSTURL is optional; empty when the artisan has no GST registration.
	GSTURL string `firestore:"gstUrl,omitempty" json:"gstUrl,omitempty"`

	Status      VerificationStatus `firestore:"status" json:"status"`
	SubmittedAt time.Time          `firestore:"submittedAt" json:"submittedAt"`
}
