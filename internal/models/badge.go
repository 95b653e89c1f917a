package models

type Badge struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
}
