package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/alexanderramin/workclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var october = domain.YearMonth{Year: 2026, Month: time.October}

func octoberDays() []domain.DayWithEntries {
	mon := testutil.NewTestDay(testutil.Date(2026, time.October, 5))
	mon.ID = "d5"
	holiday := testutil.NewTestDay(testutil.Date(2026, time.October, 6),
		testutil.WithDayType(domain.DayHoliday), testutil.WithComment("Sukkot"))
	holiday.ID = "d6"
	future := testutil.NewTestDay(testutil.Date(2026, time.October, 20))
	future.ID = "d20"

	return []domain.DayWithEntries{
		{Day: *mon, Entries: []domain.TimeEntry{
			*testutil.NewTestEntry("d5", "08:00", "12:00"),
			*testutil.NewTestEntry("d5", "12:30", "17:00", testutil.WithBreak(30)),
		}},
		{Day: *holiday},
		{Day: *future, Entries: []domain.TimeEntry{*testutil.NewTestEntry("d20", "09:00", "17:00")}},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "work_hours_2026_9.xlsx", FileName(domain.YearMonth{Year: 2026, Month: time.September}, FormatXLSX))
	assert.Equal(t, "work_hours_2026_10.pdf", FileName(october, FormatPDF))
}

func TestBuildSheet_RowsStopAtToday(t *testing.T) {
	today := testutil.At(2026, time.October, 19, 10, 0)
	sheet := BuildSheet(october, octoberDays(), *testutil.NewTestSettings(), today)

	require.Len(t, sheet.Rows, 19)
	assert.Equal(t, "01/10/2026", sheet.Rows[0].DateLabel())
	assert.Equal(t, "Thu", sheet.Rows[0].WeekdayLabel())
	assert.Equal(t, "19/10/2026", sheet.Rows[18].DateLabel())
}

func TestBuildSheet_RowContent(t *testing.T) {
	today := testutil.At(2026, time.October, 19, 10, 0)
	sheet := BuildSheet(october, octoberDays(), *testutil.NewTestSettings(), today)

	mon := sheet.Rows[4]
	assert.Equal(t, "Mon", mon.WeekdayLabel())
	assert.Equal(t, "08:00-12:00, 12:30-17:00", mon.SessionsLabel())
	assert.InDelta(t, 8.0, mon.Total, 1e-9)
	assert.Empty(t, mon.Comment)

	holiday := sheet.Rows[5]
	assert.Empty(t, holiday.SessionsLabel())
	assert.Zero(t, holiday.Total)
	assert.Equal(t, "holiday - Sukkot", holiday.Comment)
}

func TestBuildSheet_TotalsExcludeFutureDays(t *testing.T) {
	today := testutil.At(2026, time.October, 19, 10, 0)
	sheet := BuildSheet(october, octoberDays(), *testutil.NewTestSettings(), today)

	assert.InDelta(t, 8.0, sheet.Totals.TotalWorked, 1e-9)
	assert.Equal(t, 8, sheet.Totals.TotalExpected)
}

func TestBuildSheet_PastMonthHasEveryDay(t *testing.T) {
	sheet := BuildSheet(domain.YearMonth{Year: 2026, Month: time.February}, nil,
		*testutil.NewTestSettings(), testutil.Date(2026, time.October, 19))
	assert.Len(t, sheet.Rows, 28)
}

func TestXLSXWriter(t *testing.T) {
	today := testutil.At(2026, time.October, 19, 10, 0)
	sheet := BuildSheet(october, octoberDays(), *testutil.NewTestSettings(), today)

	var buf bytes.Buffer
	require.NoError(t, XLSXWriter{}.Write(&buf, sheet))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(hoursSheet)
	require.NoError(t, err)
	require.Len(t, rows, 20)
	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"05/10/2026", "Mon", "08:00-12:00, 12:30-17:00", "8"}, rows[5])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.NotEmpty(t, summary)
	assert.Equal(t, []string{"Month", "October 2026"}, summary[0])
}

func TestPDFWriter(t *testing.T) {
	today := testutil.At(2026, time.October, 19, 10, 0)
	sheet := BuildSheet(october, octoberDays(), *testutil.NewTestSettings(), today)

	var buf bytes.Buffer
	require.NoError(t, PDFWriter{}.Write(&buf, sheet))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriterFor(t *testing.T) {
	w, err := WriterFor(FormatXLSX)
	require.NoError(t, err)
	assert.IsType(t, XLSXWriter{}, w)

	_, err = WriterFor("docx")
	assert.Error(t, err)
}
