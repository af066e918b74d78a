package formatter

import (
	"fmt"

	"github.com/facturio/facturae-party/internal/facturae"
	"github.com/facturio/facturae-party/internal/model"
)

// PartyBlock holds exactly one of the two Facturae party shapes for the
// Parties section of the invoice.
type PartyBlock struct {
	LegalEntity *facturae.LegalEntity
	Individual  *facturae.Individual
}

// Party builds the LegalEntity or Individual block. Natural persons must
// decompose into at least a given name and a first surname; the block is not
// emitted partially.
func (f *Formatter) Party(party *model.Party) (*PartyBlock, error) {
	if party.Name == "" {
		return nil, model.NewMissingFieldError("Name", "party has no name")
	}

	var (
		addrIn   *facturae.AddressInSpain
		overseas *facturae.OverseasAddress
	)
	if addr, ok := party.PrimaryAddress(); ok {
		block, err := f.Address(addr)
		if err != nil {
			return nil, err
		}
		addrIn = block.AddressInSpain
		overseas = block.OverseasAddress
	}
	contact := f.Contact(party)

	switch party.PersonType {
	case model.PersonTypeLegal:
		return &PartyBlock{
			LegalEntity: &facturae.LegalEntity{
				CorporateName:   truncate(party.Name, facturae.MaxCorporateName),
				AddressInSpain:  addrIn,
				OverseasAddress: overseas,
				ContactDetails:  contact,
			},
		}, nil

	case model.PersonTypeNatural:
		given, first, second := f.split(party.Name)
		if given == "" || first == "" {
			return nil, model.NewMissingFieldError("FirstSurname",
				"natural person name needs a given name and a surname")
		}
		return &PartyBlock{
			Individual: &facturae.Individual{
				Name:            truncate(given, facturae.MaxName),
				FirstSurname:    truncate(first, facturae.MaxSurname),
				SecondSurname:   truncate(second, facturae.MaxSurname),
				AddressInSpain:  addrIn,
				OverseasAddress: overseas,
				ContactDetails:  contact,
			},
		}, nil

	default:
		return nil, model.NewMissingFieldError("PersonType",
			fmt.Sprintf("unknown person type %q", party.PersonType))
	}
}
