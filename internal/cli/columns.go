package cli

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Column is one column of a list table.
type Column struct {
	Header string
	// Field is the record member shown in the column.
	Field string
	// Value computes the cell instead of reading Field.
	Value func(Record) string
	// Colorize styles the cell text.
	Colorize func(cell string) string
}

func (c Column) cell(record Record) string {
	var s string
	if c.Value != nil {
		s = c.Value(record)
	} else {
		s = Field(record, c.Field).Cell()
	}
	if c.Colorize != nil && s != "" {
		return c.Colorize(s)
	}
	return s
}

// View tells the formatter how to lay out a payload in table mode. A view
// without columns renders a single record as Attribute/Value pairs.
type View struct {
	Columns []Column
	// Noun names the listed items in summaries, e.g. "systems".
	Noun string
}

// IsList reports whether the view renders a list of records.
func (v View) IsList() bool {
	return len(v.Columns) > 0
}

// KeyValueView renders a single record.
var KeyValueView = View{}

func cyan(s string) string { return text.FgCyan.Sprint(s) }

func fieldDate(field string) func(Record) string {
	return func(r Record) string {
		v, ok := r.Get(field)
		if !ok {
			return ""
		}
		s, _ := v.(string)
		if d, ok := formatDate(s); ok {
			return d
		}
		return Classify(v).Cell()
	}
}

// UsersView lists users.
var UsersView = View{
	Noun: "users",
	Columns: []Column{
		{Header: "Company", Field: "companyName"},
		{Header: "Name", Value: func(r Record) string {
			if name := Field(r, "displayName").Cell(); name != "" {
				return name
			}
			first := Field(r, "firstName").Cell()
			last := Field(r, "lastName").Cell()
			return strings.TrimSpace(first + " " + last)
		}, Colorize: cyan},
		{Header: "Login email", Field: "loginEmail"},
		{Header: "Type", Field: "adminType"},
		{Header: "ID", Field: "id"},
	},
}

// SystemsView lists PBX systems.
var SystemsView = View{
	Noun: "systems",
	Columns: []Column{
		{Header: "System name", Field: "name", Colorize: cyan},
		{Header: "Version", Field: "version"},
		{Header: "Status", Field: "status", Colorize: func(s string) string {
			if s != "created" {
				return text.FgYellow.Sprint(s)
			}
			return s
		}},
		{Header: "Type", Field: "type"},
		{Header: "ID", Field: "id"},
	},
}

// MethodsView lists payment methods.
var MethodsView = View{
	Noun: "payment methods",
	Columns: []Column{
		{Header: "Type", Field: "type"},
		{Header: "Holder", Field: "holder", Colorize: cyan},
		{Header: "Number", Field: "number"},
		{Header: "Expiration", Field: "expirationDate"},
		{Header: "ID", Field: "id"},
	},
}

// SubscriptionsView lists developer subscriptions.
var SubscriptionsView = View{
	Noun: "subscriptions",
	Columns: []Column{
		{Header: "Offer", Field: "offerName", Colorize: cyan},
		{Header: "Status", Field: "status"},
		{Header: "Max users", Field: "maxNumberUsers"},
		{Header: "Created", Value: fieldDate("creationDate")},
		{Header: "ID", Field: "id"},
	},
}

// APIStatusView lists the platform services and their versions.
var APIStatusView = View{
	Noun: "services",
	Columns: []Column{
		{Header: "Name", Field: "name", Colorize: cyan},
		{Header: "Version", Field: "version", Colorize: func(s string) string {
			if s == NotStarted {
				return text.FgRed.Sprint(s)
			}
			return s
		}},
	},
}
