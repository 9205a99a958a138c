package books

// ===== Requests =====

type CreateBookRequest struct {
	ID       string `json:"id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Category string `json:"category" binding:"required"`
	Copies   int    `json:"copies" binding:"required"`
}

type UpdateBookRequest struct {
	Title    string `json:"title" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Category string `json:"category" binding:"required"`
	Copies   int    `json:"copies" binding:"required"`
}

// ===== Responses =====

// BookResponse is the table row plus the derived availability count.
type BookResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Category        string `json:"category"`
	Copies          int    `json:"copies"`
	AvailableCopies int    `json:"available_copies"`
}
