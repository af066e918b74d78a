package formatter

import (
	"fmt"

	"github.com/facturio/facturae-party/internal/facturae"
	"github.com/facturio/facturae-party/internal/model"
)

// EU member states by ISO 3166-1 alpha-2 code, for residence type "U".
var euCountries = map[string]bool{
	"AT": true, "BE": true, "BG": true, "CY": true, "CZ": true,
	"DE": true, "DK": true, "EE": true, "ES": true, "FI": true,
	"FR": true, "GR": true, "HR": true, "HU": true, "IE": true,
	"IT": true, "LT": true, "LU": true, "LV": true, "MT": true,
	"NL": true, "PL": true, "PT": true, "RO": true, "SE": true,
	"SI": true, "SK": true,
}

// TaxIdentification builds the TaxIdentification block. The residence type
// is derived from the party's first address: R for Spain, U for another EU
// member state, E for everything else.
func (f *Formatter) TaxIdentification(party *model.Party) (*facturae.TaxIdentification, error) {
	if party.TaxID == "" {
		return nil, model.NewMissingFieldError("TaxIdentificationNumber", "party has no tax id")
	}

	switch party.PersonType {
	case model.PersonTypeLegal, model.PersonTypeNatural:
	default:
		return nil, model.NewMissingFieldError("PersonType",
			fmt.Sprintf("unknown person type %q", party.PersonType))
	}

	addr, ok := party.PrimaryAddress()
	if !ok {
		return nil, model.NewMissingFieldError("Address", "residence type needs an address")
	}
	if addr.Country == nil {
		return nil, model.NewMissingFieldError("Country", "address has no country")
	}

	residence := model.ResidenceForeign
	switch {
	case addr.Country.Alpha2 == "ES":
		residence = model.ResidenceSpain
	case euCountries[addr.Country.Alpha2]:
		residence = model.ResidenceEU
	}

	return &facturae.TaxIdentification{
		PersonTypeCode:          string(party.PersonType),
		ResidenceTypeCode:       residence,
		TaxIdentificationNumber: party.TaxID,
	}, nil
}
