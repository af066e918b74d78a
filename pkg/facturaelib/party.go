// Package facturaelib provides a public API for rendering Facturae 3.2.1
// party fragments.
//
// This package exposes the core types for turning party records (name, tax
// id, addresses, contact fields) into AdministrativeCentre, address, contact
// and party XML blocks.
//
// Example usage:
//
//	f := facturaelib.New()
//	centre, err := f.AdministrativeCentre(
//	    facturaelib.Role{CentreCode: "001", RoleTypeCode: "01"},
//	    &facturaelib.Party{
//	        PersonType: facturaelib.PersonTypeNatural,
//	        Name:       "Ana Gomez Perez",
//	    })
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frag, _ := facturaelib.Fragment(centre)
//	fmt.Println(frag)
package facturaelib

import (
	"github.com/facturio/facturae-party/internal/facturae"
	"github.com/facturio/facturae-party/internal/formatter"
	"github.com/facturio/facturae-party/internal/model"
)

// Re-export core types for public API
type (
	Party        = model.Party
	Address      = model.Address
	Country      = model.Country
	Role         = model.Role
	PersonType   = model.PersonType
	Formatter    = formatter.Formatter
	Option       = formatter.Option
	NameSplitter = formatter.NameSplitter
	AddressBlock = formatter.AddressBlock
	PartyBlock   = formatter.PartyBlock
)

// Re-export schema types
type (
	AdministrativeCentre = facturae.AdministrativeCentre
	AddressInSpain       = facturae.AddressInSpain
	OverseasAddress      = facturae.OverseasAddress
	ContactDetails       = facturae.ContactDetails
	TaxIdentification    = facturae.TaxIdentification
	LegalEntity          = facturae.LegalEntity
	Individual           = facturae.Individual
)

// Re-export person type constants
const (
	PersonTypeLegal   = model.PersonTypeLegal
	PersonTypeNatural = model.PersonTypeNatural
)

// Re-export error types
type (
	MissingFieldError = model.MissingFieldError
	FormatError       = model.FormatError
)

// Re-export constructors and helpers
var (
	New              = formatter.New
	WithNameSplitter = formatter.WithNameSplitter
	SplitName        = formatter.SplitName
	Fragment         = facturae.Fragment
	AppendTo         = facturae.AppendTo
)
