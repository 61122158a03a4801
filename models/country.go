package models

type Country struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Sortname  string `gorm:"type:varchar(2);not null;uniqueIndex" json:"sortname"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex;index:idx_countries_name" json:"name"`
	Phonecode int    `gorm:"not null" json:"phonecode"`

	States []State `gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"states,omitempty"`
}

func (Country) TableName() string {
	return "countries"
}
