package request

type PickDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type PickTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

type NoteRequest struct {
	Note string `json:"note"`
}
