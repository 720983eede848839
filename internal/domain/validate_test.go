package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validToyInput() ToyInput {
	return ToyInput{
		Name:     "Robot",
		Info:     "A toy robot",
		Category: "electronics",
		Price:    50,
		OwnerID:  "user-1",
	}
}

func violatedFields(violations []Violation) []string {
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestToyInputValid(t *testing.T) {
	assert.Empty(t, validToyInput().Validate())
}

func TestToyInputReportsAllViolations(t *testing.T) {
	in := ToyInput{
		Name:     "x",
		Info:     "",
		Category: strings.Repeat("c", 101),
		Price:    1000,
		OwnerID:  "user-1",
	}
	fields := violatedFields(in.Validate())
	assert.ElementsMatch(t, []string{"name", "info", "category", "price"}, fields)
}

func TestToyInputImgURLOptional(t *testing.T) {
	in := validToyInput()
	assert.Empty(t, in.Validate())

	in.ImgURL = "x"
	assert.Equal(t, []string{"img_url"}, violatedFields(in.Validate()))

	in.ImgURL = strings.Repeat("u", 301)
	assert.Equal(t, []string{"img_url"}, violatedFields(in.Validate()))
}

func TestToyInputPriceBounds(t *testing.T) {
	in := validToyInput()

	in.Price = 0.5
	assert.Equal(t, []string{"price"}, violatedFields(in.Validate()))

	in.Price = 999
	assert.Empty(t, in.Validate())

	in.Price = 0
	assert.Equal(t, []string{"price"}, violatedFields(in.Validate()))
}

func TestToyInputOwnerRequired(t *testing.T) {
	in := validToyInput()
	in.OwnerID = ""
	assert.Equal(t, []string{"user_id"}, violatedFields(in.Validate()))
}

func TestUserInputValidation(t *testing.T) {
	in := UserInput{Name: "Alice", Email: "alice@example.com", Password: "s3cret"}
	assert.Empty(t, in.Validate())

	in.Email = "not-an-email"
	assert.Equal(t, []string{"email"}, violatedFields(in.Validate()))

	in.Email = "alice@example.com"
	in.Password = strings.Repeat("p", 17)
	assert.Equal(t, []string{"password"}, violatedFields(in.Validate()))

	empty := UserInput{}
	assert.ElementsMatch(t, []string{"name", "email", "password"}, violatedFields(empty.Validate()))
}

func TestLoginInputValidation(t *testing.T) {
	in := LoginInput{Email: "alice@example.com", Password: "s3cret"}
	assert.Empty(t, in.Validate())

	assert.ElementsMatch(t, []string{"email", "password"}, violatedFields(LoginInput{}.Validate()))
}
