package viewmodels

import "github.com/google/uuid"

type Person struct {
	ID                  uuid.UUID   `json:"id"`
	Callsign            string      `json:"callsign"`
	FullName            string      `json:"fullName"`
	Rank                string      `json:"rank"`
	BirthDate           string      `json:"birthDate"`
	ServiceType         string      `json:"serviceType"`
	UnitID              uuid.UUID   `json:"unitId"`
	PositionID          uuid.UUID   `json:"positionId"`
	Status              string      `json:"status"`
	Phone               string      `json:"phone"`
	MilitaryID          string      `json:"militaryId,omitempty"`
	Passport            string      `json:"passport,omitempty"`
	TaxID               string      `json:"taxId,omitempty"`
	TagNumber           string      `json:"tagNumber,omitempty"`
	Address             string      `json:"address,omitempty"`
	RegistrationAddress string      `json:"registrationAddress,omitempty"`
	Citizenship         string      `json:"citizenship,omitempty"`
	BloodType           string      `json:"bloodType,omitempty"`
	RoleIDs             []uuid.UUID `json:"roleIds,omitempty"`
	CreatedAt           string      `json:"createdAt,omitempty"`
	UpdatedAt           string      `json:"updatedAt,omitempty"`
}

type ImportRow struct {
	InternalID  uuid.UUID `json:"internalId"`
	Callsign    string    `json:"callsign"`
	FullName    string    `json:"fullName"`
	Rank        string    `json:"rank"`
	BirthDate   string    `json:"birthDate"`
	ServiceType string    `json:"serviceType"`
	UnitID      uuid.UUID `json:"unitId"`
	PositionID  uuid.UUID `json:"positionId"`
	Status      string    `json:"status"`
	Phone       string    `json:"phone"`
	MilitaryID  string    `json:"militaryId,omitempty"`
	Passport    string    `json:"passport,omitempty"`
	TaxID       string    `json:"taxId,omitempty"`
	TagNumber   string    `json:"tagNumber,omitempty"`
	Selected    bool      `json:"selected"`
	Valid       bool      `json:"valid"`
	Errors      []string  `json:"errors"`
}

type ImportSession struct {
	ID      uuid.UUID   `json:"id"`
	Checked bool        `json:"checked"`
	Rows    []ImportRow `json:"rows"`
}
