package domain

import (
	"fmt"
	"net/mail"
)

// Violation describes a single failed field constraint.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// stringRule bounds the length of a string field. Optional fields skip all
// checks when empty.
type stringRule struct {
	field    string
	min, max int
	required bool
	email    bool
}

// numberRule bounds a numeric field inclusively.
type numberRule struct {
	field    string
	min, max float64
	required bool
}

func (r stringRule) check(val string, out []Violation) []Violation {
	if val == "" {
		if r.required {
			out = append(out, Violation{Field: r.field, Message: fmt.Sprintf("%q is required", r.field)})
		}
		return out
	}
	if len(val) < r.min || len(val) > r.max {
		out = append(out, Violation{
			Field:   r.field,
			Message: fmt.Sprintf("%q length must be between %d and %d characters", r.field, r.min, r.max),
		})
	}
	if r.email {
		if _, err := mail.ParseAddress(val); err != nil {
			out = append(out, Violation{Field: r.field, Message: fmt.Sprintf("%q must be a valid email", r.field)})
		}
	}
	return out
}

func (r numberRule) check(val float64, out []Violation) []Violation {
	if val == 0 && r.required {
		out = append(out, Violation{Field: r.field, Message: fmt.Sprintf("%q is required", r.field)})
		return out
	}
	if val < r.min || val > r.max {
		out = append(out, Violation{
			Field:   r.field,
			Message: fmt.Sprintf("%q must be between %v and %v", r.field, r.min, r.max),
		})
	}
	return out
}

// ToyInput is the client-supplied toy payload prior to validation.
type ToyInput struct {
	Name     string
	Info     string
	Category string
	ImgURL   string
	Price    float64
	OwnerID  string
}

var toyRules = struct {
	name, info, category, imgURL, ownerID stringRule
	price                                 numberRule
}{
	name:     stringRule{field: "name", min: 2, max: 100, required: true},
	info:     stringRule{field: "info", min: 2, max: 9999, required: true},
	category: stringRule{field: "category", min: 2, max: 100, required: true},
	imgURL:   stringRule{field: "img_url", min: 2, max: 300},
	ownerID:  stringRule{field: "user_id", min: 2, max: 100, required: true},
	price:    numberRule{field: "price", min: 1, max: 999, required: true},
}

// Validate returns every violated constraint, not just the first.
func (in ToyInput) Validate() []Violation {
	var out []Violation
	out = toyRules.name.check(in.Name, out)
	out = toyRules.info.check(in.Info, out)
	out = toyRules.category.check(in.Category, out)
	out = toyRules.imgURL.check(in.ImgURL, out)
	out = toyRules.price.check(in.Price, out)
	out = toyRules.ownerID.check(in.OwnerID, out)
	return out
}

// UserInput is the client-supplied registration payload prior to validation.
// Password here is the plaintext credential; bounds apply before hashing.
type UserInput struct {
	Name     string
	Email    string
	Password string
}

var userRules = struct {
	name, email, password stringRule
}{
	name:     stringRule{field: "name", min: 2, max: 100, required: true},
	email:    stringRule{field: "email", min: 2, max: 150, required: true, email: true},
	password: stringRule{field: "password", min: 3, max: 16, required: true},
}

// Validate returns every violated constraint, not just the first.
func (in UserInput) Validate() []Violation {
	var out []Violation
	out = userRules.name.check(in.Name, out)
	out = userRules.email.check(in.Email, out)
	out = userRules.password.check(in.Password, out)
	return out
}

// LoginInput is the client-supplied login payload prior to validation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate returns every violated constraint, not just the first.
func (in LoginInput) Validate() []Violation {
	var out []Violation
	out = userRules.email.check(in.Email, out)
	out = userRules.password.check(in.Password, out)
	return out
}
