package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gazette/internal/matching"
)

var csvHeader = []string{
	"first_name", "last_name", "city", "state", "country",
	"person_type", "patent_number",
	"best_match_id", "best_match_name", "best_score",
	"match_confirmed", "source_match_score",
}

var titleCaser = cases.Title(language.English)

// WriteMatchCSV renders one row per match result. Names are title-cased for
// review; everything else is written verbatim.
func WriteMatchCSV(w io.Writer, report matching.Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, result := range report.Results {
		row := []string{
			titleCaser.String(result.Person.FirstName),
			titleCaser.String(result.Person.LastName),
			result.Person.City,
			result.Person.State,
			result.Person.Country,
			string(result.Person.PersonType),
			result.Person.PatentNumber,
			"", "", strconv.Itoa(result.BestScore),
			strconv.FormatBool(result.MatchConfirmed),
			"",
		}
		if match := result.BestMatch; match != nil {
			row[7] = strconv.FormatInt(match.ID, 10)
			row[8] = titleCaser.String(match.FirstName + " " + match.LastName)
		}
		if result.SourceMatchScore != nil {
			row[11] = strconv.Itoa(*result.SourceMatchScore)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
