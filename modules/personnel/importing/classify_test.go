package importing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
)

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		in   string
		want person.Status
	}{
		{"Служить", person.StatusServing},
		{"переведений до 93 ОМБр", person.StatusTransferred},
		{"Transferred", person.StatusTransferred},
		{"звільнений за станом здоров'я", person.StatusDischarged},
		{"discharged", person.StatusDischarged},
		{"dismissed", person.StatusDischarged},
		{"", person.StatusServing},
		{"щось незрозуміле", person.StatusServing},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ClassifyStatus(tc.in), "input %q", tc.in)
	}
}

func TestClassifyServiceType(t *testing.T) {
	cases := []struct {
		in   string
		want person.ServiceType
	}{
		{"Мобілізований", person.ServiceMobilized},
		{"mobilized", person.ServiceMobilized},
		{"за мобілізацією", person.ServiceMobilized},
		{"Контракт", person.ServiceContract},
		{"", person.ServiceContract},
		{"будь-що інше", person.ServiceContract},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ClassifyServiceType(tc.in), "input %q", tc.in)
	}
}
