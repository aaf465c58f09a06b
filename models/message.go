package models

import "time"

type MessageThread struct {
	ID         string `json:"id"`
	SupplierID string `json:"supplierId"`

	BuyerName    string `json:"buyerName"`
	BuyerCompany string `json:"buyerCompany"`
	Subject      string `json:"subject"`

	LastMessage string    `json:"lastMessage"`
	UnreadCount int       `json:"unreadCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Message struct {
	ID       string `json:"id"`
	ThreadID string `json:"threadId"`

	Sender string `json:"sender"` // 'buyer' or 'supplier'
	Body   string `json:"body"`

	SentAt time.Time `json:"sentAt"`
	Read   bool      `json:"read"`
}
