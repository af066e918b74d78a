package formatter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturio/facturae-party/internal/facturae"
	"github.com/facturio/facturae-party/internal/formatter"
	"github.com/facturio/facturae-party/internal/model"
)

func TestContact_AllFields(t *testing.T) {
	f := formatter.New()
	party := &model.Party{
		Phone:   "915551234",
		Fax:     "915551235",
		Website: "https://acme.example",
		Email:   "billing@acme.example",
	}

	contact := f.Contact(party)
	require.NotNil(t, contact)

	assert.Equal(t, "915551234", contact.Telephone)
	assert.Equal(t, "915551235", contact.TeleFax)
	assert.Equal(t, "https://acme.example", contact.WebAddress)
	assert.Equal(t, "billing@acme.example", contact.ElectronicMail)
}

func TestContact_PhonePreferredOverMobile(t *testing.T) {
	f := formatter.New()
	party := &model.Party{Phone: "915551234", Mobile: "655551234"}

	contact := f.Contact(party)
	require.NotNil(t, contact)
	assert.Equal(t, "915551234", contact.Telephone)
}

func TestContact_MobileFallback(t *testing.T) {
	f := formatter.New()
	party := &model.Party{Mobile: "655551234"}

	contact := f.Contact(party)
	require.NotNil(t, contact)
	assert.Equal(t, "655551234", contact.Telephone)
}

func TestContact_NilWhenNoFields(t *testing.T) {
	f := formatter.New()
	party := &model.Party{Name: "Acme SL"}

	assert.Nil(t, f.Contact(party))
}

func TestContact_UnsetFieldsOmittedInXML(t *testing.T) {
	f := formatter.New()
	party := &model.Party{Email: "billing@acme.example"}

	contact := f.Contact(party)
	require.NotNil(t, contact)

	frag, err := facturae.Fragment(contact)
	require.NoError(t, err)
	assert.Contains(t, frag, "<ElectronicMail>")
	assert.NotContains(t, frag, "<Telephone>")
	assert.NotContains(t, frag, "<TeleFax>")
	assert.NotContains(t, frag, "<WebAddress>")
}

func TestContact_Truncation(t *testing.T) {
	f := formatter.New()
	party := &model.Party{
		Phone:   "+34 91 555 12 34 ext 9",
		Fax:     "+34 91 555 12 35 ext 9",
		Website: "https://" + strings.Repeat("w", 60) + ".example",
		Email:   strings.Repeat("b", 60) + "@acme.example",
	}

	contact := f.Contact(party)
	require.NotNil(t, contact)

	assert.Len(t, contact.Telephone, 15)
	assert.Len(t, contact.TeleFax, 15)
	assert.Len(t, contact.WebAddress, 60)
	assert.Len(t, contact.ElectronicMail, 60)
	assert.Equal(t, "+34 91 555 12 3", contact.Telephone)
}
