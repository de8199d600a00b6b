package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskList is a named todo collection shared among users. UserIDs always
// contains at least the creator.
type TaskList struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Title     string               `bson:"title"`
	CreatedAt time.Time            `bson:"createdAt"`
	UserIDs   []primitive.ObjectID `bson:"userIds"`
}

// HasMember reports whether the given user id is on the member list.
func (l *TaskList) HasMember(id primitive.ObjectID) bool {
	for _, uid := range l.UserIDs {
		if uid == id {
			return true
		}
	}
	return false
}
