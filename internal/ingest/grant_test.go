package ingest_test

import (
	"errors"
	"strings"
	"testing"

	"gazette/internal/identity"
	"gazette/internal/ingest"
)

const sampleGrant = `<?xml version="1.0" encoding="UTF-8"?>
<us-patent-grant>
  <us-bibliographic-data-grant>
    <publication-reference>
      <document-id>
        <country>US</country>
        <doc-number>11234567</doc-number>
      </document-id>
    </publication-reference>
    <us-parties>
      <inventors>
        <inventor>
          <addressbook>
            <last-name>Smith</last-name>
            <first-name>John</first-name>
            <address>
              <city>Austin</city>
              <state>TX</state>
              <country>US</country>
            </address>
          </addressbook>
        </inventor>
        <inventor>
          <addressbook>
            <last-name>Doe</last-name>
            <first-name>Jane</first-name>
            <address>
              <city>Boston</city>
              <state>MA</state>
              <country>US</country>
            </address>
          </addressbook>
        </inventor>
      </inventors>
    </us-parties>
    <assignees>
      <assignee>
        <addressbook>
          <orgname>Acme Widgets Inc.</orgname>
          <address>
            <city>Chicago</city>
            <state>IL</state>
            <country>US</country>
          </address>
        </addressbook>
      </assignee>
    </assignees>
  </us-bibliographic-data-grant>
</us-patent-grant>`

func TestParseGrantsEmitsInventorsAndAssignees(t *testing.T) {
	people, err := ingest.ParseGrants(strings.NewReader(sampleGrant))
	if err != nil {
		t.Fatalf("ParseGrants: %v", err)
	}
	if len(people) != 3 {
		t.Fatalf("expected 3 people, got %d", len(people))
	}
	first := people[0]
	if first.FirstName != "John" || first.LastName != "Smith" {
		t.Fatalf("unexpected first person: %+v", first)
	}
	if first.PersonType != identity.TypeInventor {
		t.Fatalf("expected inventor type, got %q", first.PersonType)
	}
	if first.PatentNumber != "11234567" {
		t.Fatalf("expected patent number on record, got %q", first.PatentNumber)
	}
	if first.City != "Austin" || first.State != "TX" || first.Country != "US" {
		t.Fatalf("unexpected address: %+v", first)
	}
	org := people[2]
	if org.PersonType != identity.TypeAssignee {
		t.Fatalf("expected assignee type, got %q", org.PersonType)
	}
	if org.LastName != "Acme Widgets Inc." || org.FirstName != "" {
		t.Fatalf("expected orgname carried as last name, got %+v", org)
	}
}

func TestParseGrantsSkipsNamelessParties(t *testing.T) {
	doc := `<us-patent-grant>
  <us-bibliographic-data-grant>
    <publication-reference><document-id><doc-number>1</doc-number></document-id></publication-reference>
    <us-parties>
      <inventors>
        <inventor><addressbook><address><city>Reno</city></address></addressbook></inventor>
      </inventors>
    </us-parties>
  </us-bibliographic-data-grant>
</us-patent-grant>`
	people, err := ingest.ParseGrants(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseGrants: %v", err)
	}
	if len(people) != 0 {
		t.Fatalf("expected nameless party to be skipped, got %d people", len(people))
	}
}

func TestParseGrantsMultipleDocuments(t *testing.T) {
	second := strings.Replace(sampleGrant, "11234567", "11234568", 1)
	second = second[strings.Index(second, "<us-patent-grant>"):]
	people, err := ingest.ParseGrants(strings.NewReader(sampleGrant + "\n" + second))
	if err != nil {
		t.Fatalf("ParseGrants: %v", err)
	}
	if len(people) != 6 {
		t.Fatalf("expected people from both grants, got %d", len(people))
	}
	if people[3].PatentNumber != "11234568" {
		t.Fatalf("expected second grant number, got %q", people[3].PatentNumber)
	}
}

func TestStreamGrantsHandlerErrorAborts(t *testing.T) {
	wantErr := errors.New("stop")
	err := ingest.StreamGrants(strings.NewReader(sampleGrant), func(identity.Person) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestStreamGrantsMalformedXML(t *testing.T) {
	bad := `<us-patent-grant><us-bibliographic-data-grant>`
	err := ingest.StreamGrants(strings.NewReader(bad), func(identity.Person) error { return nil })
	if err == nil {
		t.Fatal("expected error for truncated document")
	}
}
