package services

import (
	"testing"
	"time"

	"personal-crm-backend/db/models"
	"personal-crm-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportContactsXLSX(t *testing.T) {
	contacts := []models.Contact{
		{
			ID:        uuid.New(),
			FirstName: "John",
			LastName:  "Doe",
			Email:     utils.StringPtr("john@acme.test"),
			Company:   utils.StringPtr("Acme Corp"),
			Tags: []models.Tag{
				{ID: uuid.New(), Name: "client"},
				{ID: uuid.New(), Name: "networking"},
			},
			CreatedAt: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.New(),
			FirstName: "Jane",
			LastName:  "Smith",
			CreatedAt: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	buf, err := ExportContactsXLSX(contacts)
	require.NoError(t, err)
	require.NotNil(t, buf)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two contacts

	assert.Equal(t, "First Name", rows[0][0])
	assert.Equal(t, "Tags", rows[0][6])

	assert.Equal(t, "John", rows[1][0])
	assert.Equal(t, "john@acme.test", rows[1][2])
	assert.Equal(t, "Client, Networking", rows[1][6])
	assert.Equal(t, "2026-01-05", rows[1][7])

	assert.Equal(t, "Jane", rows[2][0])
}

func TestExportContactsXLSXEmpty(t *testing.T) {
	buf, err := ExportContactsXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}
