package dto

import "github.com/spec-kit/toy-store/internal/domain"

// ToyRequest is the payload for create and update.
type ToyRequest struct {
	Name     string  `json:"name"`
	Info     string  `json:"info"`
	Category string  `json:"category"`
	ImgURL   string  `json:"img_url"`
	Price    float64 `json:"price"`
	UserID   string  `json:"user_id"`
}

// Input converts the request into the domain payload.
func (r ToyRequest) Input() domain.ToyInput {
	return domain.ToyInput{
		Name:     r.Name,
		Info:     r.Info,
		Category: r.Category,
		ImgURL:   r.ImgURL,
		Price:    r.Price,
		OwnerID:  r.UserID,
	}
}

// DeleteResponse reports the effect of an ownership-filtered delete.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
