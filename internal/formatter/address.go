package formatter

import (
	"github.com/facturio/facturae-party/internal/facturae"
	"github.com/facturio/facturae-party/internal/model"
)

// AddressBlock holds exactly one of the two mutually exclusive Facturae
// address shapes.
type AddressBlock struct {
	AddressInSpain  *facturae.AddressInSpain
	OverseasAddress *facturae.OverseasAddress
}

// Address builds the domestic or overseas address block. The variant is
// selected by the ISO 3166-1 alpha-2 country code: "ES" yields
// AddressInSpain, everything else OverseasAddress. An address without a
// country fails instead of guessing a variant.
func (f *Formatter) Address(addr model.Address) (*AddressBlock, error) {
	if addr.Country == nil {
		return nil, model.NewMissingFieldError("Country", "address has no country")
	}

	if addr.Country.Alpha2 == "ES" {
		return &AddressBlock{
			AddressInSpain: &facturae.AddressInSpain{
				Address:     truncate(addr.Street, facturae.MaxStreet),
				PostCode:    truncate(addr.PostalCode, facturae.MaxPostCode),
				Town:        truncate(addr.City, facturae.MaxTown),
				Province:    truncate(addr.SubdivisionName, facturae.MaxProvince),
				CountryCode: addr.Country.Alpha3,
			},
		}, nil
	}

	// Postal code and town share one element overseas; the cap may cut into
	// the town name when the joined string exceeds it.
	return &AddressBlock{
		OverseasAddress: &facturae.OverseasAddress{
			Address:         truncate(addr.Street, facturae.MaxStreet),
			PostCodeAndTown: truncate(addr.PostalCode+", "+addr.City, facturae.MaxPostCodeAndTown),
			Province:        truncate(addr.SubdivisionName, facturae.MaxProvince),
			CountryCode:     addr.Country.Alpha3,
		},
	}, nil
}
