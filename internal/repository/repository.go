package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by every Find* method when no document matches.
var ErrNotFound = errors.New("not found")

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// newID mints a document id. Ids are stored as ObjectID hex strings so
// they stay opaque comparable tokens everywhere above this package.
func newID() string {
	return primitive.NewObjectID().Hex()
}
