package model

// PersonType distinguishes the two Facturae party kinds. The codes match the
// schema's PersonTypeCode values.
type PersonType string

const (
	// PersonTypeLegal is a legal entity (company, public body).
	PersonTypeLegal PersonType = "J"
	// PersonTypeNatural is a natural person (individual).
	PersonTypeNatural PersonType = "F"
)

// Residence type codes emitted in TaxIdentification
const (
	ResidenceSpain   = "R" // resident in Spain
	ResidenceEU      = "U" // resident in another EU member state
	ResidenceForeign = "E" // foreigner
)

// Country identifies a country by its ISO 3166-1 codes. Facturae selects the
// address variant on the alpha-2 code and emits the alpha-3 code.
type Country struct {
	Alpha2 string `json:"alpha2"`
	Alpha3 string `json:"alpha3"`
}

// Address is a postal address of a party
type Address struct {
	Street          string   `json:"street"`
	PostalCode      string   `json:"postal_code"`
	City            string   `json:"city"`
	SubdivisionName string   `json:"subdivision_name"`
	Country         *Country `json:"country,omitempty"`
}

// Party is a read-only invoice participant record supplied by the caller.
// The formatter never mutates it.
type Party struct {
	PersonType PersonType `json:"person_type"`
	// Name is the full name. For natural persons it is expected to hold
	// space-separated tokens: given name, first surname and optionally a
	// second surname.
	Name string `json:"name"`
	// Code is a fallback identifier used when Name is absent.
	Code      string    `json:"code"`
	TaxID     string    `json:"tax_id,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`

	Phone   string `json:"phone,omitempty"`
	Mobile  string `json:"mobile,omitempty"`
	Fax     string `json:"fax,omitempty"`
	Website string `json:"website,omitempty"`
	Email   string `json:"email,omitempty"`
}

// PrimaryAddress returns the party's first address. Only the first address is
// rendered; additional addresses are ignored.
func (p *Party) PrimaryAddress() (Address, bool) {
	if len(p.Addresses) == 0 {
		return Address{}, false
	}
	return p.Addresses[0], true
}

// HasContact reports whether any contact field is set.
func (p *Party) HasContact() bool {
	return p.Phone != "" || p.Mobile != "" || p.Fax != "" ||
		p.Website != "" || p.Email != ""
}

// Role identifies why a party appears on the invoice (issuer, receiver,
// payer). Both codes are passed through to the output verbatim.
type Role struct {
	CentreCode   string `json:"centre_code"`
	RoleTypeCode string `json:"role_type_code"`
}
