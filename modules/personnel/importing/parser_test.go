package importing

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/entities/dictionary"
)

func testDictionaries() Dictionaries {
	return Dictionaries{
		Units: []dictionary.Unit{
			{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "1 рота", Abbreviation: "1Р"},
			{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Name: "2 рота", Abbreviation: "2Р"},
		},
		Positions: []dictionary.Position{
			{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Name: "стрілець"},
			{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Name: "кулеметник"},
		},
		Ranks: []dictionary.Rank{
			{ID: uuid.New(), Name: "солдат"},
			{ID: uuid.New(), Name: "сержант"},
		},
	}
}

func TestParseCSVUkrainianHeaders(t *testing.T) {
	csv := "\uFEFF" + "Позивний;ПІБ;Звання;Дата народження;Тип служби;Підрозділ;Посада;Статус;Телефон\n" +
		"Сатурн;Іваненко Іван Іванович;солдат;01.01.1990;Контракт;1 рота;стрілець;Служить;+380501112233\n"

	rows, err := ParseCSV(strings.NewReader(csv), testDictionaries())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.NotEqual(t, uuid.Nil, row.InternalID)
	require.Equal(t, "Сатурн", row.Fields.Callsign)
	require.Equal(t, "Іваненко Іван Іванович", row.Fields.FullName)
	require.Equal(t, "солдат", row.Fields.Rank)
	require.Equal(t, "01.01.1990", row.Fields.BirthDate)
	require.Equal(t, person.ServiceContract, row.Fields.ServiceType)
	require.Equal(t, uuid.MustParse("11111111-1111-1111-1111-111111111111"), row.Fields.UnitID)
	require.Equal(t, uuid.MustParse("33333333-3333-3333-3333-333333333333"), row.Fields.PositionID)
	require.Equal(t, person.StatusServing, row.Fields.Status)
	require.Equal(t, "+380501112233", row.Fields.Phone)
	require.True(t, row.Meta.Selected)
	require.True(t, row.Meta.Valid)
	require.Empty(t, row.Meta.Errors())
}

func TestParseCSVEnglishHeadersAndExtras(t *testing.T) {
	csv := "Extra,Callsign,Full Name,Rank,Birth Date,Service Type,Unit,Position,Status,Phone,Tax ID\n" +
		"ignored,Hawk,Petrenko Petro,сержант,02.02.1985,мобілізований,2Р,кулеметник,переведений до іншої частини,+380671234567,1234567890\n"

	rows, err := ParseCSV(strings.NewReader(csv), testDictionaries())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.Equal(t, "Hawk", row.Fields.Callsign)
	require.Equal(t, person.ServiceMobilized, row.Fields.ServiceType)
	require.Equal(t, uuid.MustParse("22222222-2222-2222-2222-222222222222"), row.Fields.UnitID)
	require.Equal(t, person.StatusTransferred, row.Fields.Status)
	require.Equal(t, "1234567890", row.Fields.TaxID)
	require.True(t, row.Meta.Valid)
}

func TestParseCSVSkipsEmptyLines(t *testing.T) {
	csv := "позивний,піб,звання,дата народження,тип служби,підрозділ,посада,статус,телефон\n" +
		",,,,,,,,\n" +
		"Сокіл,Коваль Олег,солдат,03.03.1992,контракт,1 рота,стрілець,служить,+380991112233\n" +
		",,,,,,,,\n"

	rows, err := ParseCSV(strings.NewReader(csv), testDictionaries())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Сокіл", rows[0].Fields.Callsign)
}

func TestParseCSVUnresolvedDictionaryTokens(t *testing.T) {
	csv := "позивний,піб,звання,дата народження,тип служби,підрозділ,посада,статус,телефон\n" +
		"Вітер,Шевченко Тарас,невідоме звання,04.04.1991,контракт,штаб,писар,служить,+380631112233\n"

	rows, err := ParseCSV(strings.NewReader(csv), testDictionaries())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	require.Equal(t, uuid.Nil, row.Fields.UnitID)
	require.Equal(t, uuid.Nil, row.Fields.PositionID)
	require.Empty(t, row.Fields.Rank)
	require.False(t, row.Meta.Valid)
	require.Equal(t, []string{"rank", "unitId", "positionId"}, row.Meta.MissingFields)
}

func TestParseCSVMalformed(t *testing.T) {
	csv := "позивний,піб\n\"unterminated,oops\n"

	rows, err := ParseCSV(strings.NewReader(csv), testDictionaries())
	require.Error(t, err)
	require.Nil(t, rows)
}

func TestParseCSVEmptyFile(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader(""), testDictionaries())
	require.Error(t, err)
	require.Nil(t, rows)
}

func TestSniffDelimiter(t *testing.T) {
	require.Equal(t, ';', sniffDelimiter([]byte("a;b;c\n1,2;3\n")))
	require.Equal(t, ',', sniffDelimiter([]byte("a,b,c\n")))
	require.Equal(t, ',', sniffDelimiter([]byte("a")))
}
