// Package facturae defines the Facturae 3.2.1 schema fragments emitted by
// this module: the AdministrativeCentre block, the two mutually exclusive
// address shapes, the optional contact block and the TaxIdentification /
// LegalEntity / Individual party blocks.
//
// Field order in every struct follows the element order mandated by the XSD.
package facturae

import "encoding/xml"

// Maximum text lengths from the Facturae 3.2.1 XSD length facets. Lengths
// count characters, not bytes.
const (
	MaxName              = 40
	MaxSurname           = 40
	MaxCentreDescription = 40
	MaxCorporateName     = 80
	MaxStreet            = 80
	MaxPostCode          = 5
	MaxTown              = 50
	MaxPostCodeAndTown   = 50
	MaxProvince          = 20
	MaxTelephone         = 15
	MaxFax               = 15
	MaxWebAddress        = 60
	MaxEmail             = 60
)

// AdministrativeCentre identifies an organisational unit of a party on the
// invoice, together with the role it plays.
type AdministrativeCentre struct {
	XMLName       xml.Name `xml:"AdministrativeCentre"`
	CentreCode    string   `xml:"CentreCode"`
	RoleTypeCode  string   `xml:"RoleTypeCode"`
	Name          string   `xml:"Name"`
	FirstSurname  string   `xml:"FirstSurname,omitempty"`
	SecondSurname string   `xml:"SecondSurname,omitempty"`

	AddressInSpain  *AddressInSpain  `xml:"AddressInSpain,omitempty"`
	OverseasAddress *OverseasAddress `xml:"OverseasAddress,omitempty"`
	ContactDetails  *ContactDetails  `xml:"ContactDetails,omitempty"`

	// PhysicalGLN and LogicalOperationalPoint are reserved by the schema.
	// The party model carries no source data for them, so they are always
	// emitted empty.
	PhysicalGLN             string `xml:"PhysicalGLN"`
	LogicalOperationalPoint string `xml:"LogicalOperationalPoint"`

	CentreDescription string `xml:"CentreDescription"`
}

// AddressInSpain is the domestic address shape, selected when the country is
// Spain.
type AddressInSpain struct {
	XMLName     xml.Name `xml:"AddressInSpain"`
	Address     string   `xml:"Address"`
	PostCode    string   `xml:"PostCode"`
	Town        string   `xml:"Town"`
	Province    string   `xml:"Province"`
	CountryCode string   `xml:"CountryCode"`
}

// OverseasAddress is the foreign address shape. Postal code and town share a
// single element.
type OverseasAddress struct {
	XMLName         xml.Name `xml:"OverseasAddress"`
	Address         string   `xml:"Address"`
	PostCodeAndTown string   `xml:"PostCodeAndTown"`
	Province        string   `xml:"Province"`
	CountryCode     string   `xml:"CountryCode"`
}

// ContactDetails carries the optional contact fields. Unset fields are
// omitted entirely, never emitted empty.
//
// The schema's remaining optional elements (ContactPersons, CnoCnae,
// INETownCode, AdditionalContactDetails) are not supported: the party model
// carries no source data for them.
type ContactDetails struct {
	XMLName        xml.Name `xml:"ContactDetails"`
	Telephone      string   `xml:"Telephone,omitempty"`
	TeleFax        string   `xml:"TeleFax,omitempty"`
	WebAddress     string   `xml:"WebAddress,omitempty"`
	ElectronicMail string   `xml:"ElectronicMail,omitempty"`
}

// TaxIdentification carries the fiscal identity of a party: person type
// (J legal entity / F individual), residence type (R Spain / U other EU
// member state / E foreigner) and the tax number.
type TaxIdentification struct {
	XMLName                 xml.Name `xml:"TaxIdentification"`
	PersonTypeCode          string   `xml:"PersonTypeCode"`
	ResidenceTypeCode       string   `xml:"ResidenceTypeCode"`
	TaxIdentificationNumber string   `xml:"TaxIdentificationNumber"`
}

// LegalEntity is the party block for companies and public bodies.
type LegalEntity struct {
	XMLName       xml.Name `xml:"LegalEntity"`
	CorporateName string   `xml:"CorporateName"`

	AddressInSpain  *AddressInSpain  `xml:"AddressInSpain,omitempty"`
	OverseasAddress *OverseasAddress `xml:"OverseasAddress,omitempty"`
	ContactDetails  *ContactDetails  `xml:"ContactDetails,omitempty"`
}

// Individual is the party block for natural persons.
type Individual struct {
	XMLName       xml.Name `xml:"Individual"`
	Name          string   `xml:"Name"`
	FirstSurname  string   `xml:"FirstSurname"`
	SecondSurname string   `xml:"SecondSurname,omitempty"`

	AddressInSpain  *AddressInSpain  `xml:"AddressInSpain,omitempty"`
	OverseasAddress *OverseasAddress `xml:"OverseasAddress,omitempty"`
	ContactDetails  *ContactDetails  `xml:"ContactDetails,omitempty"`
}
