package dto

type BookingListDTO struct {
	ID            uint    `json:"id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	CustomerName  string  `json:"customer_name"`
	StaffName     string  `json:"staff_name"`
	Service       string  `json:"service"`
	Price         float64 `json:"price"`
}
