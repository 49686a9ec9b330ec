package db_models

type Profile struct {
	BaseModel
	Name          string `gorm:"not null" json:"name"`
	Location      string `json:"location"`
	Family        string `gorm:"type:text" json:"family"`
	Background    string `gorm:"type:text" json:"background"`
	Passions      string `gorm:"type:text" json:"passions"`
	ShortTermGoal string `gorm:"type:text" json:"shortTermGoal"`
	LongTermGoal  string `gorm:"type:text" json:"longTermGoal"`
	FunFact1      string `gorm:"type:text" json:"funFact1"`
	FunFact2      string `gorm:"type:text" json:"funFact2"`
	FunFact3      string `gorm:"type:text" json:"funFact3"`
	FavoriteQuote string `gorm:"type:text" json:"favoriteQuote"`

	PhotoURL       string `json:"photoUrl,omitempty"`
	PhotoStorageID string `gorm:"size:64" json:"photoStorageId,omitempty"`

	PasswordHash       string `json:"-"`
	IsItineraryManager bool   `gorm:"not null;default:false;index" json:"isItineraryManager"`
}

func (p *Profile) HasPassword() bool {
	return p.PasswordHash != ""
}
