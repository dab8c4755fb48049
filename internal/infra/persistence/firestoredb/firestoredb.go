// Package firestoredb contains the concrete implementation of the persistence
// layer on top of the Firestore document store. Documents map straight onto
// domain entities via firestore struct tags; IDs live outside the document
// body and are reattached on read.
package firestoredb

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names. Users, carts and verification submissions are keyed by the
// provider-issued UID; products and orders use generated document IDs.
const (
	usersCollection         = "users"
	productsCollection      = "products"
	ordersCollection        = "orders"
	cartsCollection         = "carts"
	verificationsCollection = "verificationSubmissions"
)

// isNotFound reports whether err is the store's missing-document error.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// isAlreadyExists reports whether err is the store's create-conflict error.
func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
