package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Person is the stored contact record. Name and email carry the 40 character
// storage bound, address 200; gender is stored as free text and only
// constrained at the request layer.
type Person struct {
	ID                 snowflake.ID  `gorm:"primaryKey" json:"id"`
	PersonName         string        `gorm:"column:person_name;size:40" json:"person_name"`
	Email              string        `gorm:"size:40" json:"email"`
	DateOfBirth        *time.Time    `json:"date_of_birth,omitempty"`
	Gender             string        `gorm:"size:10" json:"gender,omitempty"`
	CountryID          *snowflake.ID `gorm:"index" json:"country_id,omitempty"`
	Address            string        `gorm:"size:200" json:"address,omitempty"`
	ReceiveNewsLetters bool          `gorm:"column:receive_news_letters;not null;default:false" json:"receive_news_letters"`
	TaxIdNumber        string        `gorm:"column:tax_id_number" json:"tax_id_number,omitempty"`
	CreatedAt          time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Person) TableName() string {
	return "persons"
}

// PersonResponse is the read model: the stored fields plus the derived age
// and the resolved country name.
type PersonResponse struct {
	ID                 snowflake.ID  `json:"id"`
	PersonName         string        `json:"person_name"`
	Email              string        `json:"email"`
	DateOfBirth        *time.Time    `json:"date_of_birth,omitempty"`
	Age                *int          `json:"age,omitempty"`
	Gender             string        `json:"gender,omitempty"`
	CountryID          *snowflake.ID `json:"country_id,omitempty"`
	Country            string        `json:"country,omitempty"`
	Address            string        `json:"address,omitempty"`
	ReceiveNewsLetters bool          `json:"receive_news_letters"`
	TaxIdNumber        string        `json:"tax_id_number,omitempty"`
}

// ToResponse derives the read model at the given point in time.
func (p *Person) ToResponse(now time.Time, countryName string) PersonResponse {
	resp := PersonResponse{
		ID:                 p.ID,
		PersonName:         p.PersonName,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirth,
		Gender:             p.Gender,
		CountryID:          p.CountryID,
		Country:            countryName,
		Address:            p.Address,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
		TaxIdNumber:        p.TaxIdNumber,
	}
	if p.DateOfBirth != nil {
		age := ageAt(*p.DateOfBirth, now)
		resp.Age = &age
	}
	return resp
}

func ageAt(born, now time.Time) int {
	years := now.Year() - born.Year()
	anniversary := born.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}
