package models

type DashboardStats struct {
	TotalBooks     int `json:"totalBooks"`
	AvailableBooks int `json:"availableBooks"`
	BorrowedBooks  int `json:"borrowedBooks"`
	TotalUsers     int `json:"totalUsers"`
}

type DashboardRecord struct {
	ID         int64  `json:"id"`
	BookTitle  string `json:"bookTitle"`
	Username   string `json:"username"`
	BorrowDate string `json:"borrowDate"`
	Status     string `json:"status"`
}

type Dashboard struct {
	Stats         DashboardStats    `json:"stats"`
	RecentRecords []DashboardRecord `json:"recentRecords"`
}
