package request_models

type UnlockRequest struct {
	Password string `json:"password" binding:"required"`
}
