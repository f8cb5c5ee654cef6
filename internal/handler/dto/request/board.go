package request

type CreateBoardRequest struct {
	Scope string `json:"scope" binding:"required,oneof=self all"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
