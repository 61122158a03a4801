package models

type State struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	CountryID uint   `gorm:"index;not null" json:"country_id"`
	Name      string `gorm:"type:varchar(50);not null;index" json:"name"`

	Country *Country `gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"country,omitempty"`
	Cities  []City   `gorm:"foreignKey:StateID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cities,omitempty"`
}

func (State) TableName() string {
	return "states"
}
