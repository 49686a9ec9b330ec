package response_models

type ImproveTextResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

type QuoteResponse struct {
	Success bool   `json:"success"`
	Quote   string `json:"quote"`
}

type UploadURLResponse struct {
	StorageID string `json:"storageId"`
	UploadURL string `json:"uploadUrl"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}
