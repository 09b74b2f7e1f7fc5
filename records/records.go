package records

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultDelimiter is the field separator used by the accounting-software
// export. Some deployments export comma-separated files instead; the
// delimiter is a per-deployment constant, not auto-detected.
const DefaultDelimiter = ";"

const sirenLength = 9

// Record is one entry of the SIREN list: the 9-digit business identifier,
// the company display name and the internal dossier code used for output
// naming.
type Record struct {
	Siren       string
	CompanyName string
	DossierCode string
}

// Credentials holds the two secrets for the professional portal login.
// Values are opaque and must never be logged.
type Credentials struct {
	Username string
	Password string
}

// Parse splits raw lines into records. A leading export header is skipped
// when present: headers label the SIREN column with text, records carry
// digits there, so the first non-blank line is dropped only when its first
// field is not numeric. Lines that do not split into exactly three
// non-empty fields are dropped silently: hand-exported files routinely
// carry stray separators or blank lines.
func Parse(lines []string, delimiter string) []Record {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	var recs []Record
	first := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, delimiter, 4)
		if first {
			first = false
			if headerLine(parts) {
				continue
			}
		}
		if len(parts) != 3 {
			continue
		}

		rec := Record{
			Siren:       strings.TrimSpace(parts[0]),
			CompanyName: strings.TrimSpace(parts[1]),
			DossierCode: strings.TrimSpace(parts[2]),
		}
		if rec.Siren == "" || rec.CompanyName == "" || rec.DossierCode == "" {
			continue
		}
		recs = append(recs, rec)
	}
	return recs
}

// headerLine reports whether a file's first line is the export header
// rather than a record: its first field carries column text, not digits.
func headerLine(parts []string) bool {
	if len(parts) == 0 {
		return true
	}
	field := strings.TrimSpace(parts[0])
	if field == "" {
		return true
	}
	for _, r := range field {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}

// Load reads the record file and parses it. The file is re-read on every
// call so a run always starts from the source of truth.
func Load(path, delimiter string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	return Parse(lines, delimiter), nil
}

// Validate checks the shape of a record before any browser interaction.
func (r Record) Validate() error {
	if r.Siren == "" || r.CompanyName == "" || r.DossierCode == "" {
		return fmt.Errorf("missing field in record %q", r.Siren)
	}
	if len(r.Siren) != sirenLength {
		return fmt.Errorf("siren %q must contain exactly %d digits", r.Siren, sirenLength)
	}
	if !isDigits(r.Siren) {
		return fmt.Errorf("siren %q is not numeric", r.Siren)
	}
	// Placeholder used by the accounting export for unknown identifiers.
	if r.Siren == strings.Repeat("0", sirenLength) {
		return fmt.Errorf("siren %q is a placeholder", r.Siren)
	}
	if !isDigits(r.DossierCode) {
		return fmt.Errorf("dossier code %q is not numeric", r.DossierCode)
	}
	return nil
}

// LoadCredentials reads the two-line credentials file: username on the
// first line, password on the second. Anything past the second line is
// ignored. Fewer than two lines is a configuration error.
func LoadCredentials(path string) (Credentials, error) {
	f, err := os.Open(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to open credentials file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && len(lines) < 2 {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials file: %w", err)
	}
	if len(lines) < 2 {
		return Credentials{}, fmt.Errorf("credentials file %s must contain two lines", path)
	}

	return Credentials{Username: lines[0], Password: lines[1]}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
