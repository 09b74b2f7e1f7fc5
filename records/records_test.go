package records

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	lines := []string{
		"SIREN;Nom;Code",
		"123456789;ACME TRANSPORT;415",
		"",
		"  987654321 ; Dupont et Fils ; 102 ",
		"badline",
		"111222333;;42",
		"444555666;Trop;De;Champs",
	}

	recs := Parse(lines, ";")
	require.Len(t, recs, 2)

	assert.Equal(t, Record{Siren: "123456789", CompanyName: "ACME TRANSPORT", DossierCode: "415"}, recs[0])
	assert.Equal(t, Record{Siren: "987654321", CompanyName: "Dupont et Fils", DossierCode: "102"}, recs[1])
}

func TestParseHeaderOnly(t *testing.T) {
	recs := Parse([]string{"SIREN;Nom;Code"}, ";")
	assert.Empty(t, recs)
}

func TestParseHeaderlessKeepsFirstRecord(t *testing.T) {
	lines := []string{
		"123456789;ACME TRANSPORT;415",
		"987654321;Dupont et Fils;102",
	}
	recs := Parse(lines, ";")
	require.Len(t, recs, 2)
	assert.Equal(t, "123456789", recs[0].Siren)
}

func TestParseHeaderAfterBlankLines(t *testing.T) {
	lines := []string{
		"",
		"SIREN;Nom;Code",
		"123456789;ACME;415",
	}
	recs := Parse(lines, ";")
	require.Len(t, recs, 1)
	assert.Equal(t, "123456789", recs[0].Siren)
}

func TestParseCommaDelimiter(t *testing.T) {
	lines := []string{
		"header",
		"123456789,ACME,415",
	}
	recs := Parse(lines, ",")
	require.Len(t, recs, 1)
	assert.Equal(t, "ACME", recs[0].CompanyName)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	content := "SIREN;Nom;Code\n123456789;ACME;415\n987654321;DUPONT;102\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	recs, err := Load(path, ";")
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = Load(filepath.Join(dir, "missing.csv"), ";")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     Record
		wantErr bool
	}{
		{"valid", Record{Siren: "123456789", CompanyName: "ACME", DossierCode: "415"}, false},
		{"short siren", Record{Siren: "12345678", CompanyName: "ACME", DossierCode: "415"}, true},
		{"long siren", Record{Siren: "1234567890", CompanyName: "ACME", DossierCode: "415"}, true},
		{"non numeric siren", Record{Siren: "12345678X", CompanyName: "ACME", DossierCode: "415"}, true},
		{"placeholder siren", Record{Siren: "000000000", CompanyName: "ACME", DossierCode: "415"}, true},
		{"missing name", Record{Siren: "123456789", CompanyName: "", DossierCode: "415"}, true},
		{"non numeric code", Record{Siren: "123456789", CompanyName: "ACME", DossierCode: "A15"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadCredentials(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "creds.txt")
	require.NoError(t, os.WriteFile(path, []byte("user@fiscal\n s3cret \nextra ignored\n"), 0600))

	creds, err := LoadCredentials(path)
	require.NoError(t, err)
	assert.Equal(t, "user@fiscal", creds.Username)
	assert.Equal(t, "s3cret", creds.Password)
}

func TestLoadCredentialsTooShort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "creds.txt")
	require.NoError(t, os.WriteFile(path, []byte("only-user\n"), 0600))

	_, err := LoadCredentials(path)
	assert.Error(t, err)
}
