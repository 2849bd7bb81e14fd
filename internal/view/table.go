// Package view renders collections for the terminal and as HTML pages.
package view

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/sw33tLie/svcbook/internal/catalog"
	"github.com/sw33tLie/svcbook/internal/requests"
	"github.com/sw33tLie/svcbook/internal/staff"
	"github.com/sw33tLie/svcbook/pkg/media"
)

const maxCell = 48

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
}

// Services prints services as a table. empty is printed instead when there
// is nothing to show.
func Services(w io.Writer, services []catalog.ServiceEntry, empty string) error {
	if len(services) == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tNAME\tPRICE\tDESCRIPTION\tIMAGE\t")
	for i, s := range services {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", i, s.Name, s.Price, truncate(s.Description), ImageLabel(s.Image))
	}
	return tw.Flush()
}

// Staff prints the roster with the positions Delete expects.
func Staff(w io.Writer, members []staff.StaffEntry) error {
	if len(members) == 0 {
		_, err := fmt.Fprintln(w, "No staff members.")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "INDEX\tNAME\tEXPERTISE\tEMAIL\tPHOTO\t")
	for i, m := range members {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n", i, m.Name, dash(m.Expertise), dash(m.Email), ImageLabel(m.Image))
	}
	return tw.Flush()
}

// Requests prints the requests submitted in this session.
func Requests(w io.Writer, reqs []requests.ServiceRequest) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "SERVICE\tNAME\tDUE DATE\tDESCRIPTION\t")
	for _, r := range reqs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", r.Service, r.Name, r.DueDate, truncate(r.Description))
	}
	return tw.Flush()
}

// ImageLabel shortens data URLs to their type and decoded size so tables stay
// readable. Paths and URLs are returned as is.
func ImageLabel(src string) string {
	if !media.IsDataURL(src) {
		return dash(src)
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(src, "data:"), ",")
	if !ok {
		return "data:"
	}
	mime := strings.TrimSuffix(meta, ";base64")
	if mime == "" {
		mime = "data"
	}
	return fmt.Sprintf("%s (%s)", mime, humanize.Bytes(decodedSize(payload)))
}

func decodedSize(payload string) uint64 {
	n := base64.StdEncoding.DecodedLen(len(payload))
	n -= len(payload) - len(strings.TrimRight(payload, "="))
	return uint64(max(n, 0))
}

func truncate(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= maxCell {
		return s
	}
	return string(r[:maxCell-3]) + "..."
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
