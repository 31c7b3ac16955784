package dto

type CreateRequestRequest struct {
	ProjectID string `json:"project_id" binding:"required,uuid"`
	Message   string `json:"message" binding:"max=2000"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}
