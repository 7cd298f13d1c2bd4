package export

import (
	"bytes"
	"testing"
	"time"

	"client-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTimesheet(t *testing.T) {
	alice := uuid.New()
	unknown := uuid.New()
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }

	entries := []models.TimeEntry{
		{ID: uuid.New(), Date: day(3), Hours: 2.5, Description: "review", UserID: unknown},
		{ID: uuid.New(), Date: day(1), Hours: 4, Description: "kickoff", UserID: alice},
	}

	data, err := Timesheet("Acme Portal", entries, map[uuid.UUID]string{alice: "Alice"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{TimesheetSheet}, f.GetSheetList())
	rows, err := f.GetRows(TimesheetSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, TimesheetHeader, rows[0])
	assert.Equal(t, []string{"2024-05-01", "Alice", "4", "kickoff"}, rows[1])
	assert.Equal(t, []string{"2024-05-03", unknown.String(), "2.5", "review"}, rows[2])
	assert.Equal(t, []string{"", "Total", "6.5"}, rows[3])

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Acme Portal timesheet", props.Title)
}

func TestTimesheetEmpty(t *testing.T) {
	data, err := Timesheet("Empty", nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(TimesheetSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"", "Total", "0"}, rows[1])
}
