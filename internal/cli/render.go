package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/userdir/internal/cli/pagination"
	"github.com/rshade/userdir/internal/listing"
	"github.com/rshade/userdir/internal/users"
)

const tabPadding = 2

// listOutput is the structured document written for json and yaml output.
type listOutput struct {
	Pagination pagination.Meta `json:"pagination" yaml:"pagination"`
	Users      []users.User    `json:"users"      yaml:"users"`
}

// renderPage writes view in format to w.
func renderPage(w io.Writer, format string, view listing.PageView[users.User], meta pagination.Meta) error {
	switch format {
	case "json":
		return renderJSON(w, view, meta)
	case "ndjson":
		return renderNDJSON(w, view)
	case "yaml":
		return renderYAML(w, view, meta)
	case "table":
		return renderTable(w, view, meta)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func newListOutput(view listing.PageView[users.User], meta pagination.Meta) listOutput {
	records := view.Records
	if records == nil {
		records = []users.User{}
	}
	return listOutput{Pagination: meta, Users: records}
}

func renderJSON(w io.Writer, view listing.PageView[users.User], meta pagination.Meta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(newListOutput(view, meta)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// renderNDJSON writes one user per line and no pagination metadata.
func renderNDJSON(w io.Writer, view listing.PageView[users.User]) error {
	enc := json.NewEncoder(w)
	for _, u := range view.Records {
		if err := enc.Encode(u); err != nil {
			return fmt.Errorf("encoding user %s: %w", u.ID(), err)
		}
	}
	return nil
}

func renderYAML(w io.Writer, view listing.PageView[users.User], meta pagination.Meta) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd // Conventional YAML indentation.
	if err := enc.Encode(newListOutput(view, meta)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func renderTable(w io.Writer, view listing.PageView[users.User], meta pagination.Meta) error {
	if view.IsEmpty() {
		if meta.Query != "" {
			_, err := fmt.Fprintf(w, "No users match %q.\n", meta.Query)
			return err
		}
		_, err := fmt.Fprintln(w, "No users found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "Name\tEmail\tID")
	fmt.Fprintln(tw, "----\t-----\t--")
	for _, u := range view.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.FullName(), u.Email, u.ID())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "\n"+pageFooter(meta))
	return err
}

// pageFooter mirrors the page indicator and the enabled state of the
// previous and next buttons.
func pageFooter(meta pagination.Meta) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("Page %d of %d (%d users) | prev: %s | next: %s",
		meta.CurrentPage, meta.TotalPages, meta.TotalItems,
		onOff(meta.HasPrevious), onOff(meta.HasNext))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
