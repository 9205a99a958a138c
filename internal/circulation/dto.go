package circulation

// ===== Requests =====

// Dates are "2006-01-02" strings (DATE columns).

type IssueRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	BookID    string `json:"bookId" binding:"required"`
	IssueDate string `json:"issueDate" binding:"required"`
	DueDate   string `json:"dueDate" binding:"required"`
}

type CheckFineRequest struct {
	BookID     string `json:"bookId" binding:"required"`
	ReturnDate string `json:"returnDate" binding:"required"`
}

type ReturnRequest struct {
	BookID     string `json:"bookId" binding:"required"`
	ReturnDate string `json:"returnDate" binding:"required"`
}

// ===== Responses =====

// FineResponse is a preview; nothing is persisted by check-fine.
type FineResponse struct {
	Fine        int    `json:"fine"`
	OverdueDays int    `json:"overdueDays"`
	DueDate     string `json:"dueDate"`
}

// ActivityItem feeds the dashboard's "X issued/returned Y" list.
type ActivityItem struct {
	Status      string  `json:"status"`
	IssueDate   string  `json:"issue_date"`
	ReturnDate  *string `json:"return_date"`
	StudentName string  `json:"student_name"`
	BookTitle   string  `json:"book_title"`
}
