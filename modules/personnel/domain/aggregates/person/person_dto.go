package person

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/oblik-ua/oblik-sdk/pkg/constants"
	"github.com/oblik-ua/oblik-sdk/pkg/serrors"
)

type CreateDTO struct {
	Callsign            string      `json:"callsign" validate:"required"`
	FullName            string      `json:"fullName" validate:"required"`
	Rank                string      `json:"rank" validate:"required"`
	BirthDate           string      `json:"birthDate" validate:"required"`
	ServiceType         ServiceType `json:"serviceType" validate:"required"`
	UnitID              uuid.UUID   `json:"unitId" validate:"required"`
	PositionID          uuid.UUID   `json:"positionId" validate:"required"`
	Status              Status      `json:"status" validate:"required"`
	Phone               string      `json:"phone" validate:"required"`
	MilitaryID          string      `json:"militaryId"`
	Passport            string      `json:"passport"`
	TaxID               string      `json:"taxId"`
	TagNumber           string      `json:"tagNumber"`
	Address             string      `json:"address"`
	RegistrationAddress string      `json:"registrationAddress"`
	Citizenship         string      `json:"citizenship"`
	BloodType           string      `json:"bloodType"`
	RoleIDs             []uuid.UUID `json:"roleIds"`
}

func (d *CreateDTO) details() Details {
	details := Details{
		Callsign:            d.Callsign,
		FullName:            d.FullName,
		Rank:                d.Rank,
		BirthDate:           d.BirthDate,
		ServiceType:         d.ServiceType,
		UnitID:              d.UnitID,
		PositionID:          d.PositionID,
		Status:              d.Status,
		Phone:               d.Phone,
		MilitaryID:          d.MilitaryID,
		Passport:            d.Passport,
		TaxID:               d.TaxID,
		TagNumber:           d.TagNumber,
		Address:             d.Address,
		RegistrationAddress: d.RegistrationAddress,
		Citizenship:         d.Citizenship,
		BloodType:           d.BloodType,
		RoleIDs:             d.RoleIDs,
	}
	details.Normalize()
	return details
}

// Ok validates the DTO and returns per-field messages when invalid.
func (d *CreateDTO) Ok() (serrors.ValidationErrors, bool) {
	errs := constants.Validate.Struct(d)
	if errs == nil {
		return serrors.ValidationErrors{}, true
	}
	validatorErrs := errs.(validator.ValidationErrors)
	return serrors.ProcessValidatorErrors(validatorErrs, nil), false
}

func (d *CreateDTO) ToEntity() Person {
	return New(d.details())
}

type UpdateDTO struct {
	CreateDTO
}

func (d *UpdateDTO) ToEntity(id uuid.UUID) Person {
	return Hydrate(id, d.details(), time.Time{}, time.Time{})
}
