package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilanz-dev/bilanz/internal/ledger"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const fixtureCSV = "Kontonummer;Gegenkontonummer;Soll-Betrag;Haben-Betrag;Datum;Text\n" +
	"1600;2000;1000,00;0;15.01.2024;Einlage\n" +
	"4400;1600;0;500,00;20.01.2024;Erlös\n"

func TestRunReport(t *testing.T) {
	file := writeFixture(t, "buchungen.csv", fixtureCSV)

	var buf bytes.Buffer
	require.NoError(t, runReport(&buf, []string{file}, "", false))
	out := buf.String()

	assert.Contains(t, out, "AKTIVA")
	assert.Contains(t, out, "PASSIVA")
	assert.Contains(t, out, "GEWINN- UND VERLUSTRECHNUNG")
	assert.Contains(t, out, "2024")
	assert.Contains(t, out, "Jahresergebnis: 500,00 €")
	assert.Contains(t, out, "Bilanz ausgeglichen")
	assert.NotContains(t, out, "Nicht zugeordnete Konten")
}

func TestRunReportDetailsListsAccounts(t *testing.T) {
	file := writeFixture(t, "buchungen.csv", fixtureCSV)

	var buf bytes.Buffer
	require.NoError(t, runReport(&buf, []string{file}, "", true))

	assert.Contains(t, buf.String(), "1600 Konto 1600")
}

func TestRunReportUnassigned(t *testing.T) {
	file := writeFixture(t, "buchungen.csv",
		"Kontonummer;Gegenkontonummer;Soll-Betrag;Haben-Betrag;Datum\n"+
			"1600;2000;1000,00;0;15.01.2024\n"+
			"9000;1600;200,00;0;16.01.2024\n")

	var buf bytes.Buffer
	require.NoError(t, runReport(&buf, []string{file}, "", false))
	out := buf.String()

	assert.Contains(t, out, "Nicht zugeordnete Konten (1)")
	assert.Contains(t, out, "Bilanzdifferenz")
}

func TestRunReportWithMapping(t *testing.T) {
	file := writeFixture(t, "buchungen.csv",
		"Kontonummer;Soll-Betrag;Haben-Betrag;Datum\n9000;200,00;0;15.01.2024\n")
	mappingFile := writeFixture(t, "mapping.yaml",
		"\"9000\":\n  name: Saldenvortrag\n  structure_id: ek_vortrag\n")

	var buf bytes.Buffer
	require.NoError(t, runReport(&buf, []string{file}, mappingFile, true))
	out := buf.String()

	assert.NotContains(t, out, "Nicht zugeordnete Konten")
	assert.Contains(t, out, "Saldenvortrag")
}

func TestRunJournalTable(t *testing.T) {
	file := writeFixture(t, "buchungen.csv", fixtureCSV)

	var buf bytes.Buffer
	require.NoError(t, runJournal(&buf, []string{file}, ""))
	out := buf.String()

	assert.Contains(t, out, "Gegenkonto")
	assert.Contains(t, out, "Einlage")
	// One journal line per source row; mirrors stay on the accounts.
	assert.Equal(t, 1, strings.Count(out, "15.01.2024"))
	assert.Equal(t, 1, strings.Count(out, "20.01.2024"))
}

func TestRunJournalOut(t *testing.T) {
	file := writeFixture(t, "buchungen.csv", fixtureCSV)
	out := filepath.Join(t.TempDir(), "journal.csv")

	var buf bytes.Buffer
	require.NoError(t, runJournal(&buf, []string{file}, out))
	assert.Contains(t, buf.String(), "2 Buchungen")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	bookings, err := ledger.ReadBookings(f)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestRunKPI(t *testing.T) {
	file := writeFixture(t, "buchungen.csv", fixtureCSV)
	defs := writeFixture(t, "kpis.json", `[
  {"id": "umsatz", "label": "Umsatzerlöse", "formula": "{{umsatz}}", "format": "currency"},
  {"id": "kaputt", "label": "Kaputt", "formula": "{{umsatz}}/0", "format": "number"}
]`)

	var buf bytes.Buffer
	require.NoError(t, runKPI(&buf, []string{file}, defs, ""))
	out := buf.String()

	assert.Contains(t, out, "Kennzahl")
	assert.Contains(t, out, "Umsatzerlöse")
	assert.Contains(t, out, "500,00 €")
	assert.Contains(t, out, "-")
}

func TestMappingInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")

	cmd := newMappingCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"init", path})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "structure_id")

	// Refuses to overwrite.
	cmd = newMappingCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"init", path})
	assert.Error(t, cmd.Execute())
}

func TestIngestFilesUnknownExtension(t *testing.T) {
	file := writeFixture(t, "notes.txt", "hallo")
	_, err := ingestFiles([]string{file})
	assert.Error(t, err)
}

func TestIngestFilesMergesMultipleSources(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "jahr2023.csv")
	b := filepath.Join(dir, "jahr2024.csv")
	require.NoError(t, os.WriteFile(a, []byte(
		"Kontonummer;Soll-Betrag;Haben-Betrag;Datum\n1600;100,00;0;15.01.2023\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(
		"Kontonummer;Soll-Betrag;Haben-Betrag;Datum\n1600;50,00;0;15.01.2024\n"), 0o644))

	res, err := ingestFiles([]string{a, b})
	require.NoError(t, err)

	acc := res.Accounts["1600"]
	require.NotNil(t, acc)
	assert.True(t, acc.Balance.Equal(dec("150")))
	assert.True(t, acc.YearlyBalances[2023].Equal(dec("100")))
	assert.True(t, acc.YearlyBalances[2024].Equal(dec("50")))

	// IDs carry the source file's base name.
	ids := make(map[string]bool)
	for _, b := range res.Bookings {
		ids[b.ID] = true
	}
	assert.True(t, ids["jahr2023-row-1"])
	assert.True(t, ids["jahr2024-row-1"])
}
