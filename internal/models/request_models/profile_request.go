package request_models

type CreateProfileRequest struct {
	Name           string `json:"name" binding:"required"`
	Location       string `json:"location"`
	Family         string `json:"family"`
	Background     string `json:"background"`
	Passions       string `json:"passions"`
	ShortTermGoal  string `json:"shortTermGoal"`
	LongTermGoal   string `json:"longTermGoal"`
	FunFact1       string `json:"funFact1"`
	FunFact2       string `json:"funFact2"`
	FunFact3       string `json:"funFact3"`
	FavoriteQuote  string `json:"favoriteQuote"`
	PhotoURL       string `json:"photoUrl"`
	PhotoStorageID string `json:"photoStorageId"`
	Password       string `json:"password"`
}

type ProfilePatch struct {
	Name           *string `json:"name"`
	Location       *string `json:"location"`
	Family         *string `json:"family"`
	Background     *string `json:"background"`
	Passions       *string `json:"passions"`
	ShortTermGoal  *string `json:"shortTermGoal"`
	LongTermGoal   *string `json:"longTermGoal"`
	FunFact1       *string `json:"funFact1"`
	FunFact2       *string `json:"funFact2"`
	FunFact3       *string `json:"funFact3"`
	FavoriteQuote  *string `json:"favoriteQuote"`
	PhotoURL       *string `json:"photoUrl"`
	PhotoStorageID *string `json:"photoStorageId"`
}

type UpdateProfileRequest struct {
	Password string       `json:"password"`
	Updates  ProfilePatch `json:"updates"`
}

type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

type SetManagerRequest struct {
	IsManager *bool `json:"isManager" binding:"required"`
}
