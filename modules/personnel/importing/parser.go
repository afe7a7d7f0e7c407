package importing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Column aliases accepted in the header row, in lookup order. Any superset
// or reordering of recognized headers is fine; unrecognized columns are
// ignored.
var fieldAliases = map[string][]string{
	"callsign":            {"позивний", "callsign", "call sign"},
	"fullName":            {"піб", "прізвище ім'я по батькові", "full name", "fullname", "name"},
	"rank":                {"звання", "військове звання", "rank"},
	"birthDate":           {"дата народження", "birth date", "birthdate", "dob"},
	"serviceType":         {"тип служби", "вид служби", "service type", "servicetype"},
	"unit":                {"підрозділ", "unit"},
	"position":            {"посада", "position"},
	"status":              {"статус", "status"},
	"phone":               {"телефон", "номер телефону", "phone", "phone number"},
	"militaryId":          {"військовий квиток", "номер військового квитка", "military id", "militaryid"},
	"passport":            {"паспорт", "номер паспорта", "passport"},
	"taxId":               {"іпн", "рнокпп", "tax id", "taxid", "inn"},
	"tagNumber":           {"жетон", "номер жетона", "tag number", "tag"},
	"address":             {"адреса", "адреса проживання", "address"},
	"registrationAddress": {"адреса реєстрації", "registration address"},
	"citizenship":         {"громадянство", "citizenship"},
	"bloodType":           {"група крові", "blood type", "bloodtype"},
}

func normalizeHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return idx
}

// sniffDelimiter picks ';' when the header line carries more semicolons
// than commas. Spreadsheet exports in uk locales routinely use semicolons.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

// ParseCSV turns a CSV file into a validated batch of import candidates, in
// file order. A structurally broken file yields a single error and no rows.
func ParseCSV(r io.Reader, dicts Dictionaries) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse csv: empty file")
	}

	idx := headerIndex(records[0])
	get := func(rec []string, field string) string {
		for _, alias := range fieldAliases[field] {
			i, ok := idx[alias]
			if !ok || i >= len(rec) {
				continue
			}
			if v := strings.TrimSpace(rec[i]); v != "" {
				return v
			}
		}
		return ""
	}

	var rows []Row
	for _, rec := range records[1:] {
		if emptyRecord(rec) {
			continue
		}
		fields := parseRecord(rec, get, dicts)
		rows = append(rows, newRow(fields))
	}

	// Rows are never exposed un-validated.
	return ValidateBatch(rows), nil
}

func emptyRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
