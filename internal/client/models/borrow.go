package models

// Borrow record statuses as reported by the server.
const (
	BorrowStatusBorrowed = "BORROWED"
	BorrowStatusReturned = "RETURNED"
	BorrowStatusOverdue  = "OVERDUE"
)

type BorrowRecord struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	BookID     int64  `json:"bookId"`
	BorrowDate string `json:"borrowDate"`
	DueDate    string `json:"dueDate"`
	ReturnDate string `json:"returnDate"`
	Status     string `json:"status"`
	RenewCount int    `json:"renewCount"`
}

// BorrowRecordDetail is the denormalized record some list endpoints return,
// with book fields joined in.
type BorrowRecordDetail struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	BookID     int64  `json:"bookId"`
	BookTitle  string `json:"bookTitle"`
	BookAuthor string `json:"bookAuthor"`
	BookISBN   string `json:"bookIsbn"`
	BorrowDate string `json:"borrowDate"`
	DueDate    string `json:"dueDate"`
	ReturnDate string `json:"returnDate"`
	Status     string `json:"status"`
	RenewCount int    `json:"renewCount"`
}
