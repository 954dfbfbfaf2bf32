package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validParticipant = `{
	"id": "p-1",
	"ndis_number": "430111222",
	"first_name": "Ada",
	"last_name": "Nguyen",
	"country": "Australia",
	"language_spoken": "English",
	"interpreter_required": false,
	"is_active": true,
	"created_at": "2025-01-10",
	"updated_at": "2026-01-10"
}`

// writeSnapshot drops snapshot bytes into a temp dir and returns the path.
func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// codeOf extracts the loader error code, or "" for non-loader errors.
func codeOf(err error) string {
	if le, ok := err.(*LoadError); ok {
		return le.Code
	}
	return ""
}

func TestLoadSnapshot_ValidJSON(t *testing.T) {
	path := writeSnapshot(t, "snap.json", `{"participant": `+validParticipant+`}`)

	data, errs := LoadSnapshot(path)

	require.Empty(t, errs)
	assert.Equal(t, "430111222", data.Participant.NDISNumber)
	assert.Equal(t, "Ada", data.Participant.FirstName)
	assert.True(t, data.Participant.IsActive)
	assert.Nil(t, data.ActivePlan)
}

func TestLoadSnapshot_ValidYAML(t *testing.T) {
	path := writeSnapshot(t, "snap.yaml", `
participant:
  id: p-1
  ndis_number: "430111222"
  first_name: Ada
  last_name: Nguyen
  country: Australia
  language_spoken: English
  interpreter_required: false
  is_active: true
  created_at: "2025-01-10"
  updated_at: "2026-01-10"
documents:
  - id: d-1
    document_name: NDIS Plan.pdf
    access_level: all_staff
`)

	data, errs := LoadSnapshot(path)

	require.Empty(t, errs)
	assert.Equal(t, "Nguyen", data.Participant.LastName)
	require.Len(t, data.Documents, 1)
	assert.Equal(t, "NDIS Plan.pdf", data.Documents[0].DocumentName)
}

func TestLoadSnapshot_NotFound(t *testing.T) {
	data, errs := LoadSnapshot(filepath.Join(t.TempDir(), "missing.json"))

	assert.Nil(t, data)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeNotFound, codeOf(errs[0]))
}

func TestLoadSnapshot_UnsupportedExtension(t *testing.T) {
	path := writeSnapshot(t, "snap.txt", "participant: {}")

	data, errs := LoadSnapshot(path)

	assert.Nil(t, data)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeBadFormat, codeOf(errs[0]))
}

func TestLoadSnapshot_MalformedJSON(t *testing.T) {
	path := writeSnapshot(t, "snap.json", `{"participant": `)

	data, errs := LoadSnapshot(path)

	assert.Nil(t, data)
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrCodeParseFailed, codeOf(errs[0]))
}

func TestLoadSnapshot_MalformedYAML(t *testing.T) {
	path := writeSnapshot(t, "snap.yaml", "participant: [unclosed")

	data, errs := LoadSnapshot(path)

	assert.Nil(t, data)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeParseFailed, codeOf(errs[0]))
}

func TestLoadSnapshot_SchemaMissingRequiredField(t *testing.T) {
	// ndis_number omitted.
	path := writeSnapshot(t, "snap.json", `{
		"participant": {
			"id": "p-1",
			"first_name": "Ada",
			"last_name": "Nguyen",
			"country": "Australia",
			"language_spoken": "English",
			"interpreter_required": false,
			"is_active": true,
			"created_at": "2025-01-10",
			"updated_at": "2026-01-10"
		}
	}`)

	data, errs := LoadSnapshot(path)

	assert.Nil(t, data)
	require.NotEmpty(t, errs)
	for _, err := range errs {
		assert.Equal(t, ErrCodeSchema, codeOf(err))
	}
}

func TestLoadSnapshot_SchemaBadDirection(t *testing.T) {
	path := writeSnapshot(t, "snap.json", `{
		"participant": `+validParticipant+`,
		"communications": [{
			"id": "c-1",
			"communication_type": "phone_call",
			"direction": "sideways",
			"communication_date": "2026-03-01",
			"follow_up_required": false,
			"follow_up_completed": false
		}]
	}`)

	data, errs := LoadSnapshot(path)

	assert.Nil(t, data)
	require.NotEmpty(t, errs)
	assert.Equal(t, ErrCodeSchema, codeOf(errs[0]))
}

func TestLoadSnapshot_UnknownFieldsPassThrough(t *testing.T) {
	// Snapshots come from an upstream system that adds fields over time;
	// the schema is open so new fields must not break loading.
	path := writeSnapshot(t, "snap.json", `{
		"participant": {
			"id": "p-1",
			"ndis_number": "430111222",
			"first_name": "Ada",
			"last_name": "Nguyen",
			"country": "Australia",
			"language_spoken": "English",
			"interpreter_required": false,
			"is_active": true,
			"created_at": "2025-01-10",
			"updated_at": "2026-01-10",
			"shoe_size": 42
		}
	}`)

	data, errs := LoadSnapshot(path)

	require.Empty(t, errs)
	assert.Equal(t, "430111222", data.Participant.NDISNumber)
}
