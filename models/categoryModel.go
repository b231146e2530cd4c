package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description *string            `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// CategoryInput is the typed form of a category create/update request.
// DescriptionSet distinguishes "clear the description" from "leave it alone".
type CategoryInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
}

func (in *CategoryInput) Validate(partial bool) []string {
	var errs []string
	if !partial && in.Name == nil {
		errs = append(errs, "name is required")
	}
	if in.Name != nil && *in.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	return errs
}

func (in *CategoryInput) ToCategory(now time.Time) Category {
	return Category{
		Name:        *in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (in *CategoryInput) UpdateFields(now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.DescriptionSet {
		set["description"] = in.Description
	}
	return set
}
