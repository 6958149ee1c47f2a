package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(scanner rowScanner) (*PersonRecord, error) {
	var (
		rec              PersonRecord
		firstName        sql.NullString
		lastName         sql.NullString
		surnameKey       sql.NullString
		city             sql.NullString
		state            sql.NullString
		country          sql.NullString
		personType       sql.NullString
		patentNumber     sql.NullString
		enrichmentJSON   sql.NullString
		enrichmentStatus string
		createdAt        string
		updatedAt        string
	)

	if err := scanner.Scan(
		&rec.ID,
		&firstName,
		&lastName,
		&surnameKey,
		&city,
		&state,
		&country,
		&personType,
		&patentNumber,
		&enrichmentJSON,
		&enrichmentStatus,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	rec.FirstName = firstName.String
	rec.LastName = lastName.String
	rec.SurnameKey = surnameKey.String
	rec.City = city.String
	rec.State = state.String
	rec.Country = country.String
	rec.PersonType = personType.String
	rec.PatentNumber = patentNumber.String
	rec.EnrichmentJSON = enrichmentJSON.String
	rec.EnrichmentStatus = EnrichmentStatus(enrichmentStatus)

	var err error
	if rec.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if rec.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	return &rec, nil
}

func collectPeople(rows *sql.Rows) ([]*PersonRecord, error) {
	var people []*PersonRecord
	for rows.Next() {
		rec, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, rec)
	}
	return people, rows.Err()
}

func parseTimestamp(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", count), ", ")
}
