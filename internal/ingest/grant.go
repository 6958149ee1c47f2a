package ingest

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"gazette/internal/identity"
)

// grantDoc mirrors the subset of the grant XML schema we care about. Archive
// files concatenate many of these under separate XML declarations, so the
// decoder walks tokens and decodes one grant element at a time.
type grantDoc struct {
	XMLName xml.Name    `xml:"us-patent-grant"`
	Biblio  grantBiblio `xml:"us-bibliographic-data-grant"`
}

type grantBiblio struct {
	Publication struct {
		DocNumber string `xml:"document-id>doc-number"`
	} `xml:"publication-reference"`
	Parties struct {
		Inventors []grantParty `xml:"inventors>inventor"`
	} `xml:"us-parties"`
	Assignees []grantParty `xml:"assignees>assignee"`
}

type grantParty struct {
	Addressbook struct {
		FirstName string `xml:"first-name"`
		LastName  string `xml:"last-name"`
		OrgName   string `xml:"orgname"`
		Address   struct {
			City    string `xml:"city"`
			State   string `xml:"state"`
			Country string `xml:"country"`
		} `xml:"address"`
	} `xml:"addressbook"`
}

// GrantHandler receives each person parsed from a grant document. Returning an
// error aborts the stream.
type GrantHandler func(identity.Person) error

// StreamGrants walks grant XML from r and invokes fn for every inventor and
// assignee it finds. Grants missing names are skipped rather than failing the
// stream; malformed XML aborts it.
func StreamGrants(r io.Reader, fn GrantHandler) error {
	if fn == nil {
		return errors.New("grant handler required")
	}
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read grant token: %w", err)
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "us-patent-grant" {
			continue
		}
		var doc grantDoc
		if err := decoder.DecodeElement(&doc, &start); err != nil {
			return fmt.Errorf("decode grant element: %w", err)
		}
		for _, person := range grantPeople(doc) {
			if err := fn(person); err != nil {
				return err
			}
		}
	}
}

// ParseGrants collects every person from grant XML into a slice. Prefer
// StreamGrants for archive-sized inputs.
func ParseGrants(r io.Reader) ([]identity.Person, error) {
	var people []identity.Person
	err := StreamGrants(r, func(p identity.Person) error {
		people = append(people, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return people, nil
}

func grantPeople(doc grantDoc) []identity.Person {
	patent := strings.TrimSpace(doc.Biblio.Publication.DocNumber)
	people := make([]identity.Person, 0, len(doc.Biblio.Parties.Inventors)+len(doc.Biblio.Assignees))
	for _, inv := range doc.Biblio.Parties.Inventors {
		if person, ok := partyPerson(inv, identity.TypeInventor, patent); ok {
			people = append(people, person)
		}
	}
	for _, asg := range doc.Biblio.Assignees {
		if person, ok := partyPerson(asg, identity.TypeAssignee, patent); ok {
			people = append(people, person)
		}
	}
	return people
}

func partyPerson(party grantParty, personType identity.PersonType, patent string) (identity.Person, bool) {
	book := party.Addressbook
	first := strings.TrimSpace(book.FirstName)
	last := strings.TrimSpace(book.LastName)
	if last == "" {
		// Organizations carry an orgname instead of a split name.
		last = strings.TrimSpace(book.OrgName)
	}
	if first == "" && last == "" {
		return identity.Person{}, false
	}
	return identity.Person{
		FirstName:    first,
		LastName:     last,
		City:         strings.TrimSpace(book.Address.City),
		State:        strings.TrimSpace(book.Address.State),
		Country:      strings.TrimSpace(book.Address.Country),
		PersonType:   personType,
		PatentNumber: patent,
	}, true
}
