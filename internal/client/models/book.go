package models

type Book struct {
	ID                int64   `json:"id"`
	ISBN              string  `json:"isbn"`
	Title             string  `json:"title"`
	Author            string  `json:"author"`
	Publisher         string  `json:"publisher"`
	PublishDate       string  `json:"publishDate"`
	CategoryID        int64   `json:"categoryId"`
	Price             float64 `json:"price"`
	TotalQuantity     int     `json:"totalQuantity"`
	AvailableQuantity int     `json:"availableQuantity"`
	Location          string  `json:"location"`
	Description       string  `json:"description"`
}
