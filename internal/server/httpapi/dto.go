package httpapi

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/akarpenko/warehouse-api/internal/server/models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	Token     string          `json:"token"`
	User      *models.Profile `json:"user"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

type AddItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Location string `json:"location"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Quantity, validation.Min(0)),
		validation.Field(&r.Location, validation.Required, validation.Length(1, 100)),
	)
}
