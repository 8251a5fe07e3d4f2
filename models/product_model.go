package models

import (
	"errors"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrAlreadyReviewed = errors.New("Product already reviewed!")

type Review struct {
	Name      string             `bson:"name" json:"name"`
	Rating    int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Comment   string             `bson:"comment" json:"comment"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Product struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Category    string             `bson:"category" json:"category"`
	Brand       string             `bson:"brand" json:"brand"`
	Image       string             `bson:"image" json:"image"`
	Stock       int                `bson:"stock" json:"stock" validate:"gte=0"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Reviews     []Review           `bson:"reviews" json:"reviews"`
	NumReviews  int                `bson:"numReviews" json:"numReviews"`
	Rating      float64            `bson:"rating" json:"rating"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AddReview appends a review and recomputes the derived fields. A user may
// review a product at most once.
func (p *Product) AddReview(review Review) error {
	for _, existing := range p.Reviews {
		if existing.User == review.User {
			return ErrAlreadyReviewed
		}
	}

	p.Reviews = append(p.Reviews, review)
	p.NumReviews = len(p.Reviews)

	total := 0
	for _, r := range p.Reviews {
		total += r.Rating
	}
	mean := float64(total) / float64(len(p.Reviews))
	p.Rating = math.Round(mean*100) / 100
	return nil
}

// ProductPatch updates a field only when it is present in the payload; a
// provided zero value is applied.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Brand       *string  `json:"brand"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
}

// PageCount computes ceil(count/limit) for offset pagination.
func PageCount(count, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}
