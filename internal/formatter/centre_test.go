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

var issuerRole = model.Role{CentreCode: "001", RoleTypeCode: "01"}

func TestAdministrativeCentre_NaturalPerson(t *testing.T) {
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeNatural,
		Name:       "Ana Gomez Perez",
	}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	assert.Equal(t, "001", centre.CentreCode)
	assert.Equal(t, "01", centre.RoleTypeCode)
	assert.Equal(t, "Ana", centre.Name)
	assert.Equal(t, "Gomez", centre.FirstSurname)
	assert.Equal(t, "Perez", centre.SecondSurname)
	assert.Equal(t, "Ana", centre.CentreDescription)
}

func TestAdministrativeCentre_NaturalPerson_TwoTokens(t *testing.T) {
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeNatural,
		Name:       "Ana Gomez",
	}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	assert.Equal(t, "Ana", centre.Name)
	assert.Equal(t, "Gomez", centre.FirstSurname)
	assert.Empty(t, centre.SecondSurname)

	frag, err := facturae.Fragment(centre)
	require.NoError(t, err)
	assert.NotContains(t, frag, "<SecondSurname>")
}

func TestAdministrativeCentre_MultiWordSecondSurname(t *testing.T) {
	// The split is limited to three segments, so everything after the
	// second split point stays in the second surname.
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeNatural,
		Name:       "Maria de los Angeles Garcia",
	}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	assert.Equal(t, "Maria", centre.Name)
	assert.Equal(t, "de", centre.FirstSurname)
	assert.Equal(t, "los Angeles Garcia", centre.SecondSurname)
}

func TestAdministrativeCentre_LegalPerson(t *testing.T) {
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeLegal,
		Name:       "Acme Ibérica Servicios Industriales SL",
	}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	assert.Equal(t, "Acme Ibérica Servicios Industriales SL", centre.Name)
	assert.Empty(t, centre.FirstSurname)
	assert.Empty(t, centre.SecondSurname)
	assert.Equal(t, "Acme", centre.CentreDescription)
}

func TestAdministrativeCentre_LegalPerson_NeverSurnames(t *testing.T) {
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeLegal,
		Name:       "Uno Dos Tres Cuatro Cinco",
	}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	frag, err := facturae.Fragment(centre)
	require.NoError(t, err)
	assert.NotContains(t, frag, "<FirstSurname>")
	assert.NotContains(t, frag, "<SecondSurname>")
}

func TestAdministrativeCentre_NameTruncatedTo40(t *testing.T) {
	long := strings.Repeat("N", 55)
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeLegal,
		Name:       long,
	}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	assert.Len(t, centre.Name, 40)
	assert.Equal(t, long[:40], centre.Name)
}

func TestAdministrativeCentre_CodeFallback(t *testing.T) {
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeNatural,
		Code:       "PARTY-0042",
	}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	assert.Equal(t, "PARTY-0042", centre.Name)
	assert.Equal(t, "PARTY-0042", centre.CentreDescription)
	assert.Empty(t, centre.FirstSurname)
}

func TestAdministrativeCentre_NoNameNoCode(t *testing.T) {
	f := formatter.New()
	party := &model.Party{PersonType: model.PersonTypeLegal}

	_, err := f.AdministrativeCentre(issuerRole, party)

	var missing *model.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Name", missing.Field)
}

func TestAdministrativeCentre_UnknownPersonType(t *testing.T) {
	f := formatter.New()
	party := &model.Party{PersonType: "X", Name: "Acme"}

	_, err := f.AdministrativeCentre(issuerRole, party)

	var missing *model.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "PersonType", missing.Field)
}

func TestAdministrativeCentre_EmbedsFirstAddressOnly(t *testing.T) {
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeLegal,
		Name:       "Acme SL",
		Addresses: []model.Address{
			{
				Street:          "Calle Mayor 1",
				PostalCode:      "28001",
				City:            "Madrid",
				SubdivisionName: "Madrid",
				Country:         &model.Country{Alpha2: "ES", Alpha3: "ESP"},
			},
			{
				Street:  "Rue de Rivoli 10",
				City:    "Paris",
				Country: &model.Country{Alpha2: "FR", Alpha3: "FRA"},
			},
		},
	}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	require.NotNil(t, centre.AddressInSpain)
	assert.Nil(t, centre.OverseasAddress)
	assert.Equal(t, "Calle Mayor 1", centre.AddressInSpain.Address)
}

func TestAdministrativeCentre_NoAddress(t *testing.T) {
	f := formatter.New()
	party := &model.Party{PersonType: model.PersonTypeLegal, Name: "Acme SL"}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	assert.Nil(t, centre.AddressInSpain)
	assert.Nil(t, centre.OverseasAddress)
}

func TestAdministrativeCentre_AddressWithoutCountry(t *testing.T) {
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeLegal,
		Name:       "Acme SL",
		Addresses:  []model.Address{{Street: "Calle Mayor 1", City: "Madrid"}},
	}

	_, err := f.AdministrativeCentre(issuerRole, party)

	var missing *model.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Country", missing.Field)
}

func TestAdministrativeCentre_ContactOmittedWhenEmpty(t *testing.T) {
	f := formatter.New()
	party := &model.Party{PersonType: model.PersonTypeLegal, Name: "Acme SL"}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)
	assert.Nil(t, centre.ContactDetails)

	frag, err := facturae.Fragment(centre)
	require.NoError(t, err)
	assert.NotContains(t, frag, "<ContactDetails>")
}

func TestAdministrativeCentre_PlaceholdersAlwaysEmitted(t *testing.T) {
	f := formatter.New()
	party := &model.Party{PersonType: model.PersonTypeLegal, Name: "Acme SL"}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	frag, err := facturae.Fragment(centre)
	require.NoError(t, err)
	assert.Contains(t, frag, "<PhysicalGLN></PhysicalGLN>")
	assert.Contains(t, frag, "<LogicalOperationalPoint></LogicalOperationalPoint>")
}

func TestAdministrativeCentre_Idempotent(t *testing.T) {
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeNatural,
		Name:       "Ana Gomez Perez",
		Phone:      "915551234",
		Addresses: []model.Address{{
			Street:          "Calle Mayor 1",
			PostalCode:      "28001",
			City:            "Madrid",
			SubdivisionName: "Madrid",
			Country:         &model.Country{Alpha2: "ES", Alpha3: "ESP"},
		}},
	}

	first, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)
	second, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	fragA, err := facturae.Fragment(first)
	require.NoError(t, err)
	fragB, err := facturae.Fragment(second)
	require.NoError(t, err)
	assert.Equal(t, fragA, fragB)
}

func TestAdministrativeCentre_CustomSplitter(t *testing.T) {
	// Eastern naming order: surname first
	split := func(name string) (string, string, string) {
		parts := strings.SplitN(name, " ", 2)
		if len(parts) < 2 {
			return parts[0], "", ""
		}
		return parts[1], parts[0], ""
	}

	f := formatter.New(formatter.WithNameSplitter(split))
	party := &model.Party{
		PersonType: model.PersonTypeNatural,
		Name:       "Gomez Ana",
	}

	centre, err := f.AdministrativeCentre(issuerRole, party)
	require.NoError(t, err)

	assert.Equal(t, "Ana", centre.Name)
	assert.Equal(t, "Gomez", centre.FirstSurname)
}

func BenchmarkAdministrativeCentre(b *testing.B) {
	f := formatter.New()
	party := &model.Party{
		PersonType: model.PersonTypeNatural,
		Name:       "Ana Gomez Perez",
		Phone:      "915551234",
		Addresses: []model.Address{{
			Street:          "Calle Mayor 1",
			PostalCode:      "28001",
			City:            "Madrid",
			SubdivisionName: "Madrid",
			Country:         &model.Country{Alpha2: "ES", Alpha3: "ESP"},
		}},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.AdministrativeCentre(issuerRole, party); err != nil {
			b.Fatal(err)
		}
	}
}
