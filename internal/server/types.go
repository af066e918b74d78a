package server

import (
	"github.com/facturio/facturae-party/internal/model"
)

// PartyPayload is the JSON representation of a party in API requests
type PartyPayload struct {
	PersonType string           `json:"person_type" binding:"required,person_type"`
	Name       string           `json:"name"`
	Code       string           `json:"code"`
	TaxID      string           `json:"tax_id"`
	Addresses  []AddressPayload `json:"addresses" binding:"dive"`
	Phone      string           `json:"phone"`
	Mobile     string           `json:"mobile"`
	Fax        string           `json:"fax"`
	Website    string           `json:"website"`
	Email      string           `json:"email"`
}

// AddressPayload is the JSON representation of an address in API requests
type AddressPayload struct {
	Street          string `json:"street"`
	PostalCode      string `json:"postal_code"`
	City            string `json:"city"`
	SubdivisionName string `json:"subdivision_name"`
	CountryAlpha2   string `json:"country_alpha2" binding:"omitempty,len=2"`
	CountryAlpha3   string `json:"country_alpha3" binding:"omitempty,len=3"`
}

// FormatCentreRequest asks for an AdministrativeCentre fragment
type FormatCentreRequest struct {
	CentreCode   string       `json:"centre_code" binding:"required"`
	RoleTypeCode string       `json:"role_type_code" binding:"required"`
	Party        PartyPayload `json:"party" binding:"required"`
}

// FormatPartyRequest asks for the party block fragments
type FormatPartyRequest struct {
	Party PartyPayload `json:"party" binding:"required"`
}

// ValidateRequest asks whether a party record formats cleanly
type ValidateRequest struct {
	Party PartyPayload `json:"party" binding:"required"`
}

// FragmentResponse carries a single rendered XML fragment
type FragmentResponse struct {
	Fragment string `json:"fragment"`
}

// PartyFragmentsResponse carries the party block fragments. TaxIdentification
// is present only when the party has a tax id.
type PartyFragmentsResponse struct {
	TaxIdentification string `json:"tax_identification,omitempty"`
	Party             string `json:"party"`
}

// ValidationResponse is the response for the validate endpoint
type ValidationResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (p *PartyPayload) toModel() *model.Party {
	party := &model.Party{
		PersonType: model.PersonType(p.PersonType),
		Name:       p.Name,
		Code:       p.Code,
		TaxID:      p.TaxID,
		Phone:      p.Phone,
		Mobile:     p.Mobile,
		Fax:        p.Fax,
		Website:    p.Website,
		Email:      p.Email,
	}
	for _, a := range p.Addresses {
		addr := model.Address{
			Street:          a.Street,
			PostalCode:      a.PostalCode,
			City:            a.City,
			SubdivisionName: a.SubdivisionName,
		}
		if a.CountryAlpha2 != "" || a.CountryAlpha3 != "" {
			addr.Country = &model.Country{
				Alpha2: a.CountryAlpha2,
				Alpha3: a.CountryAlpha3,
			}
		}
		party.Addresses = append(party.Addresses, addr)
	}
	return party
}
