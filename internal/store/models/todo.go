package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Todo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Content     string             `bson:"content"`
	IsCompleted bool               `bson:"isCompleted"`
	TaskListID  primitive.ObjectID `bson:"taskListId"`
}
