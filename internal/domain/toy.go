package domain

import "time"

// Toy is an owned, listable catalog entry. OwnerID is a weak reference to a
// User id, used only for authorization checks on mutation.
type Toy struct {
	ID        string    `bson:"_id" json:"_id"`
	Name      string    `bson:"name" json:"name"`
	Info      string    `bson:"info" json:"info"`
	Category  string    `bson:"category" json:"category"`
	ImgURL    string    `bson:"img_url,omitempty" json:"img_url,omitempty"`
	Price     float64   `bson:"price" json:"price"`
	OwnerID   string    `bson:"user_id" json:"user_id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
