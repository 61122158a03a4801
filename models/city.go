package models

type City struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	StateID uint   `gorm:"index;not null" json:"state_id"`
	Name    string `gorm:"type:varchar(50);not null;index" json:"name"`

	State *State `gorm:"foreignKey:StateID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"state,omitempty"`
}

func (City) TableName() string {
	return "cities"
}
