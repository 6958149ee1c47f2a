package main

import (
	"context"
	"path/filepath"
	"testing"

	"gazette/internal/store"
)

func TestIngestFileCommandInsertsPeople(t *testing.T) {
	env := setupCLITestEnv(t)

	input := writePeopleJSON(t, env.baseDir, "grant.xml", `<?xml version="1.0"?>
<us-patent-grant>
  <us-bibliographic-data-grant>
    <publication-reference><document-id><doc-number>9999999</doc-number></document-id></publication-reference>
    <us-parties>
      <inventors>
        <inventor><addressbook><first-name>Ada</first-name><last-name>Lovelace</last-name><address><city>London</city></address></addressbook></inventor>
      </inventors>
    </us-parties>
  </us-bibliographic-data-grant>
</us-patent-grant>`)

	out, _, err := runCLI(t, []string{"ingest", "file", input}, env.configPath)
	if err != nil {
		t.Fatalf("ingest file: %v", err)
	}
	requireContains(t, out, "Inserted 1 people")

	st, err := store.OpenPath(filepath.Join(env.dataDir, "people.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	rows, err := st.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(rows) != 1 || rows[0].LastName != "Lovelace" || rows[0].PatentNumber != "9999999" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestIngestSearchRequiresSelector(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"ingest", "search"}, env.configPath); err == nil {
		t.Fatal("expected error without --patent or --date")
	}
}
