package students

// ===== Requests =====

type CreateStudentRequest struct {
	ID         string `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department" binding:"required"`
}

type UpdateStudentRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// ===== Responses =====

type StudentResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// HistoryItem is one entry of the per-student loan history feed.
// Dates travel as "YYYY-MM-DD"; return_date is null while the loan is open.
type HistoryItem struct {
	IssueDate  string  `json:"issue_date"`
	DueDate    string  `json:"due_date"`
	ReturnDate *string `json:"return_date"`
	Status     string  `json:"status"`
	BookTitle  string  `json:"book_title"`
}
