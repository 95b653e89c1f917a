package models

type Character struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	Name   string `bson:"name" json:"name"`
	Avatar string `bson:"avatar" json:"avatar"`
}

func (c *Character) Snapshot() CharacterSnapshot {
	return CharacterSnapshot{Name: c.Name, Avatar: c.Avatar}
}
