package formatter

import (
	"fmt"

	"github.com/facturio/facturae-party/internal/facturae"
	"github.com/facturio/facturae-party/internal/model"
)

// AdministrativeCentre builds the AdministrativeCentre block for a party
// acting under the given role. CentreCode and RoleTypeCode are passed through
// verbatim; the caller guarantees they already conform to the schema's code
// format.
func (f *Formatter) AdministrativeCentre(role model.Role, party *model.Party) (*facturae.AdministrativeCentre, error) {
	name, first, second, err := f.partyNames(party)
	if err != nil {
		return nil, err
	}

	centre := &facturae.AdministrativeCentre{
		CentreCode:    role.CentreCode,
		RoleTypeCode:  role.RoleTypeCode,
		Name:          name,
		FirstSurname:  first,
		SecondSurname: second,
	}

	if addr, ok := party.PrimaryAddress(); ok {
		block, err := f.Address(addr)
		if err != nil {
			return nil, err
		}
		centre.AddressInSpain = block.AddressInSpain
		centre.OverseasAddress = block.OverseasAddress
	}

	centre.ContactDetails = f.Contact(party)

	desc, err := f.displayName(party)
	if err != nil {
		return nil, err
	}
	centre.CentreDescription = desc

	return centre, nil
}

// partyNames resolves the Name/FirstSurname/SecondSurname triple. Legal
// persons keep the whole name; natural persons are decomposed with the
// configured splitter. When the name is absent the party code is used, and
// when both are absent the fallback chain terminates in an error.
func (f *Formatter) partyNames(party *model.Party) (name, first, second string, err error) {
	if party.Name == "" {
		if party.Code == "" {
			return "", "", "", model.NewMissingFieldError("Name", "party has neither name nor code")
		}
		return truncate(party.Code, facturae.MaxName), "", "", nil
	}

	switch party.PersonType {
	case model.PersonTypeLegal:
		return truncate(party.Name, facturae.MaxName), "", "", nil
	case model.PersonTypeNatural:
		given, firstSurname, secondSurname := f.split(party.Name)
		return truncate(given, facturae.MaxName),
			truncate(firstSurname, facturae.MaxSurname),
			truncate(secondSurname, facturae.MaxSurname),
			nil
	default:
		return "", "", "", model.NewMissingFieldError("PersonType",
			fmt.Sprintf("unknown person type %q", party.PersonType))
	}
}

// displayName is the short form used for CentreDescription: the first token
// of the name, or the party code when no name is set. It applies to both
// person types.
func (f *Formatter) displayName(party *model.Party) (string, error) {
	if party.Name != "" {
		given, _, _ := f.split(party.Name)
		return truncate(given, facturae.MaxCentreDescription), nil
	}
	if party.Code != "" {
		return truncate(party.Code, facturae.MaxCentreDescription), nil
	}
	return "", model.NewMissingFieldError("Name", "party has neither name nor code")
}
