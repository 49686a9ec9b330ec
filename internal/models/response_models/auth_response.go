package response_models

type UnlockResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}
