package formatter

import (
	"github.com/facturio/facturae-party/internal/facturae"
	"github.com/facturio/facturae-party/internal/model"
)

// Contact builds the optional contact block. It returns nil when the party
// has no contact fields at all, so the ContactDetails element is omitted
// rather than emitted empty.
func (f *Formatter) Contact(party *model.Party) *facturae.ContactDetails {
	if !party.HasContact() {
		return nil
	}

	// Landline wins over mobile when both are set
	phone := party.Phone
	if phone == "" {
		phone = party.Mobile
	}

	return &facturae.ContactDetails{
		Telephone:      truncate(phone, facturae.MaxTelephone),
		TeleFax:        truncate(party.Fax, facturae.MaxFax),
		WebAddress:     truncate(party.Website, facturae.MaxWebAddress),
		ElectronicMail: truncate(party.Email, facturae.MaxEmail),
	}
}
