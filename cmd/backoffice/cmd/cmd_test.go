package cmd

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/api"
	"github.com/shunichi-ikebuchi/property-backoffice/internal/settings"
	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/ledger"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
)

var testNow = time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

type cli struct {
	t      *testing.T
	apiURL string
}

func setupCLI(t *testing.T) *cli {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("BACKOFFICE_PROPERTY_ID", "")
	t.Setenv("ARCHIVE_DIR", filepath.Join(dir, "archive"))

	st, err := store.Open(filepath.Join(dir, "backoffice.db"), filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	st.SetClock(func() time.Time { return testNow })

	rs, err := settings.New(filepath.Join(dir, "settings.db"), report.DefaultSettings())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rs.Close() })

	ts := httptest.NewServer(api.NewRouter(api.Config{Store: st, Settings: rs, Quiet: true}))
	t.Cleanup(ts.Close)
	return &cli{t: t, apiURL: ts.URL + "/api"}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&app{out: &out, now: func() time.Time { return testNow }})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--api-url", c.apiURL}, args...))
	err := root.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, out)
	return out
}

// seed registers a property with one unit and returns their IDs as flags.
func (c *cli) seed() (property, unit string) {
	c.t.Helper()
	var p models.Property
	require.NoError(c.t, json.Unmarshal([]byte(c.mustRun("--json", "properties", "add", "Sakura", "Heights")), &p))
	property = strconv.FormatInt(p.ID, 10)

	var u models.RentRollEntry
	require.NoError(c.t, json.Unmarshal([]byte(c.mustRun("--json", "--property", property,
		"rentroll", "add", "--floor", "2F", "--room", "201", "--contractor", "Tanaka",
		"--rent", "100000", "--maintenance-fee", "5000")), &u))
	return property, strconv.FormatInt(u.ID, 10)
}

func TestProperties(t *testing.T) {
	c := setupCLI(t)
	c.seed()

	out := c.mustRun("properties", "list")
	assert.Contains(t, out, "Sakura Heights")
}

func TestCommandsRequireProperty(t *testing.T) {
	c := setupCLI(t)

	_, err := c.run("deposits")
	assert.ErrorIs(t, err, errNoProperty)
}

func TestInvalidPeriodFlags(t *testing.T) {
	c := setupCLI(t)
	pid, _ := c.seed()

	_, err := c.run("--property", pid, "transactions", "--month", "3")
	assert.Error(t, err)
}

func TestDepositLedger(t *testing.T) {
	c := setupCLI(t)
	pid, unit := c.seed()

	out := c.mustRun("--property", pid, "deposits", "add", "--unit", unit, "--deposit", "200000", "--reikin", "100000")
	assert.Contains(t, out, "300,000")

	var rows []ledger.DepositRow
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("--json", "--property", pid, "deposits")), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "201", rows[0].RoomNumber)
	assert.Equal(t, 300000.0, rows[0].Total)
	assert.Equal(t, 1, rows[0].Matches)

	out = c.mustRun("--property", pid, "deposits", "update", strconv.FormatInt(rows[0].DepositID, 10),
		"--unit", unit, "--deposit", "150000")
	assert.Contains(t, out, "150,000")

	out = c.mustRun("--property", pid, "deposits", "delete", strconv.FormatInt(rows[0].DepositID, 10))
	assert.Contains(t, out, "Deleted deposit")

	_, err := c.run("--property", pid, "deposits", "delete", "abc")
	assert.Error(t, err)
}

func TestHistoryOnlyCurrentMonthEditable(t *testing.T) {
	c := setupCLI(t)
	pid, unit := c.seed()

	out := c.mustRun("--property", pid, "history", "set", "--year", "2025", "--month", "2", "--unit", unit, "--difference", "500")
	assert.Contains(t, out, "not editable")

	c.mustRun("--property", pid, "history", "set", "--unit", unit, "--difference", "500")
	out = c.mustRun("--property", pid, "history")
	assert.Contains(t, out, "500")
}

func TestReportSave(t *testing.T) {
	c := setupCLI(t)
	pid, _ := c.seed()

	c.mustRun("--property", pid, "transactions", "add", "--type", "income", "--code", "100", "--amount", "100000", "--date", "2025-03-05")

	out := c.mustRun("--property", pid, "report", "--year", "2025", "--month", "3", "--save")
	assert.Contains(t, out, "収支報告")
	assert.Contains(t, out, "100,000")

	archived, err := os.ReadFile(filepath.Join(os.Getenv("ARCHIVE_DIR"), pid, "2025", "2025-03.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(archived), "Sakura Heights")

	local := c.mustRun("--property", pid, "report", "--year", "2025", "--month", "3", "--local")
	assert.Equal(t, out, local)

	out = c.mustRun("--property", pid, "report", "archive", "--year", "2025")
	assert.Contains(t, out, "2025-03")
}

func TestReportSettingsApply(t *testing.T) {
	c := setupCLI(t)
	pid, _ := c.seed()

	var rs report.Settings
	out := c.mustRun("--property", pid, "report", "settings")
	require.NoError(t, yaml.Unmarshal([]byte(out), &rs))
	rs.RentAccount.Holder = "Owner K"

	data, err := yaml.Marshal(&rs)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c.mustRun("--property", pid, "report", "settings", "apply", path)
	out = c.mustRun("--property", pid, "report", "settings")
	assert.Contains(t, out, "Owner K")

	require.NotEmpty(t, rs.Distributions)
	rs.Distributions[0].Rounding = "sideways"
	data, err = yaml.Marshal(&rs)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	_, err = c.run("--property", pid, "report", "settings", "apply", path)
	assert.Error(t, err)
}

func TestMemos(t *testing.T) {
	c := setupCLI(t)
	pid, _ := c.seed()

	c.mustRun("--property", pid, "memo", "set", "賃料収入", "March", "includes", "arrears")
	out := c.mustRun("--property", pid, "memo")
	assert.Contains(t, out, "賃料収入")
	assert.Contains(t, out, "March includes arrears")
}

func TestManual(t *testing.T) {
	c := setupCLI(t)
	pid, _ := c.seed()

	c.mustRun("--property", pid, "manual", "add", "レントロール", "--order", "1", "--done", "--date", "2025-03-10")
	_, err := c.run("--property", pid, "manual", "add", "unknown sheet")
	assert.Error(t, err)

	out := c.mustRun("--property", pid, "manual", "--year", "2025", "--month", "3")
	assert.Contains(t, out, "レントロール")
	assert.Contains(t, out, models.WorkProgressCompleted.Label())

	out = c.mustRun("--property", pid, "manual", "dates")
	assert.Contains(t, out, "2025")
}

func TestDocumentRoundTrip(t *testing.T) {
	c := setupCLI(t)
	pid, _ := c.seed()

	src := filepath.Join(t.TempDir(), "lease.txt")
	require.NoError(t, os.WriteFile(src, []byte("lease contract"), 0o644))

	var doc models.PastDocument
	require.NoError(t, json.Unmarshal([]byte(c.mustRun("--json", "--property", pid, "documents", "upload", src)), &doc))
	assert.Equal(t, "lease.txt", doc.FileName)

	dest := t.TempDir()
	c.mustRun("--property", pid, "documents", "download", strconv.FormatInt(doc.ID, 10), "--dir", dest)
	got, err := os.ReadFile(filepath.Join(dest, "lease.txt"))
	require.NoError(t, err)
	assert.Equal(t, "lease contract", string(got))

	c.mustRun("--property", pid, "documents", "delete", strconv.FormatInt(doc.ID, 10))
	out := c.mustRun("--property", pid, "documents")
	assert.NotContains(t, out, "lease.txt")
}
