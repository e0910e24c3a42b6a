package dto

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Id      uint   `json:"-"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type NoteResponse struct {
	Id      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type DeleteNoteResponse struct {
	Detail string `json:"detail"`
}
