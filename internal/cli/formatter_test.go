package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crazyrex/Rainbow-CLI-SDK/internal/sdk"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	text.DisableColors()
	os.Exit(m.Run())
}

func newTestFormatter(opts Options) (*Formatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	n := NewNotifier(&out, &errOut, opts.MachineReadable())
	return NewFormatter(&out, n, opts), &out, &errOut
}

// lineWith returns the first output line containing every fragment.
func lineWith(output string, fragments ...string) string {
	for _, line := range strings.Split(output, "\n") {
		found := true
		for _, f := range fragments {
			if !strings.Contains(line, f) {
				found = false
				break
			}
		}
		if found {
			return line
		}
	}
	return ""
}

func TestFormatterKeyValue(t *testing.T) {
	f, out, _ := newTestFormatter(Options{})
	resp := &sdk.Response{
		Body: []byte(`{"data":{"id":"42","tags":[],"roles":["user"],"phones":[1,2],"site":null,"nick":"","address":{"city":"Paris"}}}`),
		Data: []byte(`{"id":"42","tags":[],"roles":["user"],"phones":[1,2],"site":null,"nick":"","address":{"city":"Paris"}}`),
	}

	require.NoError(t, f.Render(resp, KeyValueView))
	got := out.String()

	assert.NotEmpty(t, lineWith(got, "#", "Attribute", "Value"))
	assert.NotEmpty(t, lineWith(got, "1", "id", "42"))
	assert.NotEmpty(t, lineWith(got, "2", "tags", "[ ]"))
	assert.NotEmpty(t, lineWith(got, "3", "roles", `[ "user" ]`))
	assert.NotEmpty(t, lineWith(got, "4", "phones", "[ 1,2 ]"))
	assert.NotEmpty(t, lineWith(got, "5", "site", "null"))
	assert.NotEmpty(t, lineWith(got, "6", "nick", "''"))
	assert.NotEmpty(t, lineWith(got, "7", "address", `{"city":"Paris"}`))
	assert.Less(t, strings.Index(got, "id"), strings.Index(got, "address"), "server order kept")
}

func TestFormatterListWithBanner(t *testing.T) {
	f, out, _ := newTestFormatter(Options{Page: 2, Limit: 2})
	resp := &sdk.Response{
		Data:   []byte(`[{"name":"PBX A","status":"created","id":"s1"},{"name":"PBX B","id":"s2","version":null}]`),
		Total:  5,
		Limit:  2,
		Offset: 2,
	}

	require.NoError(t, f.Render(resp, SystemsView))
	got := out.String()

	assert.Contains(t, got, "Displaying Page 2 of 3")
	assert.NotEmpty(t, lineWith(got, "System name", "Version", "Status", "Type", "ID"))
	assert.NotEmpty(t, lineWith(got, "3", "PBX A", "created", "s1"))
	row := lineWith(got, "4", "PBX B", "s2")
	assert.NotEmpty(t, row)
	assert.NotContains(t, row, "null")
	assert.Contains(t, got, "5 systems found.")
}

func TestFormatterListWithoutPaging(t *testing.T) {
	f, out, _ := newTestFormatter(Options{})
	resp := &sdk.Response{
		Data:  []byte(`[{"name":"a","version":"1.0"},{"name":"b","version":"2.0"}]`),
		Total: 2,
		Limit: 100,
	}

	require.NoError(t, f.Render(resp, APIStatusView))
	got := out.String()

	assert.NotContains(t, got, "Displaying Page")
	assert.NotEmpty(t, lineWith(got, "1", "a", "1.0"))
	assert.NotEmpty(t, lineWith(got, "2", "b", "2.0"))
}

func TestFormatterRawJSON(t *testing.T) {
	f, out, _ := newTestFormatter(Options{NoOutput: true})
	resp := &sdk.Response{
		Body: []byte(`{"data":[{"b":1,"a":2}],"total":1}`),
		Data: []byte(`[{"b":1,"a":2}]`),
	}

	require.NoError(t, f.Render(resp, SystemsView))
	assert.Equal(t, "[\n  {\n    \"b\": 1,\n    \"a\": 2\n  }\n]\n", out.String())
}

func TestFormatterRawJSONIgnoresCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	f, out, _ := newTestFormatter(Options{NoOutput: true, CSV: path})
	resp := &sdk.Response{Data: []byte(`[{"id":"1"}]`)}

	require.NoError(t, f.Render(resp, SystemsView))
	assert.Contains(t, out.String(), `"id": "1"`)
	assert.NoFileExists(t, path)
}

func TestFormatterYAML(t *testing.T) {
	f, out, _ := newTestFormatter(Options{Output: OutputFormatYAML})
	resp := &sdk.Response{Data: []byte(`{"name":"rbw","version":"1.2"}`)}

	require.NoError(t, f.Render(resp, KeyValueView))
	assert.Equal(t, "name: rbw\nversion: \"1.2\"\n", out.String())
}

func TestFormatterCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv")
	f, out, _ := newTestFormatter(Options{CSV: path})
	resp := &sdk.Response{
		Data:  []byte(`[{"id":"1"},{"id":"2"}]`),
		Total: 40,
	}

	require.NoError(t, f.Render(resp, UsersView))
	assert.FileExists(t, path)
	assert.Contains(t, out.String(), "Successfully saved 2 users to '"+path+"'")
}

func TestFormatterCSVWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "users.csv")
	f, _, _ := newTestFormatter(Options{CSV: path})
	resp := &sdk.Response{Data: []byte(`[{"id":"1"}]`)}

	err := f.Render(resp, UsersView)
	var owe *OutputWriteError
	require.ErrorAs(t, err, &owe)
	assert.Equal(t, path, owe.Path)
}

func TestUsersViewName(t *testing.T) {
	records, err := DecodeRecords([]byte(`[{"firstName":"Ada","lastName":"Lovelace"},{"displayName":"Grace H."}]`))
	require.NoError(t, err)

	name := UsersView.Columns[1]
	assert.Equal(t, "Ada Lovelace", name.cell(records[0]))
	assert.Equal(t, "Grace H.", name.cell(records[1]))
}

func TestSubscriptionsViewCreatedDate(t *testing.T) {
	records, err := DecodeRecords([]byte(`[{"creationDate":"2019-06-01T08:00:00.000Z"},{}]`))
	require.NoError(t, err)

	created := SubscriptionsView.Columns[3]
	assert.Equal(t, "2019-06-01", created.cell(records[0]))
	assert.Equal(t, "", created.cell(records[1]))
}
