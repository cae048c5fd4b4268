package models

import "time"

// DateLayout is the wire format of birth_date.
const DateLayout = "2006-01-02"

// Profile holds the personal columns of a user row. Nil means NULL.
type Profile struct {
	FirstName *string    `db:"first_name"`
	LastName  *string    `db:"last_name"`
	BirthDate *time.Time `db:"birth_date"`
	Gender    *string    `db:"gender"`
}

type PersonalDataInput struct {
	TgID      *int64  `json:"tg_id" binding:"required"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	BirthDate *string `json:"birth_date"`
	Gender    *string `json:"gender"`
}

// PersonalData is the response shape of both personal-data endpoints.
// Absent values are rendered as JSON null.
type PersonalData struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	BirthDate *string `json:"birth_date"`
	Gender    *string `json:"gender"`
}

func NewPersonalData(p Profile) PersonalData {
	data := PersonalData{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Gender:    p.Gender,
	}
	if p.BirthDate != nil {
		date := p.BirthDate.Format(DateLayout)
		data.BirthDate = &date
	}
	return data
}
