package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseID converts a string identifier from the API boundary into a native
// ObjectID. Every route that takes an :id path param goes through this.
func ParseID(hex string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
