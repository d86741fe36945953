package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// renderView writes the page as an aligned table followed by a status line.
func renderView(w io.Writer, v ViewResult) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCITY\tLICENSE\tSELLS\tBUYS")
	for _, r := range v.Page.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n", r.ID, r.Name, r.City, r.LicenseNumber, r.Sells, r.Buys)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(v.Page.Items) == 0 {
		fmt.Fprintln(w, "(no matching pharmacies)")
	}
	fmt.Fprintf(w, "\nPage %d of %d (%d matching, source %s)\n",
		v.Page.CurrentPage, v.Page.TotalPages, v.Page.TotalItems, v.Source)
	if v.Query != "" {
		fmt.Fprintf(w, "Query: %q\n", v.Query)
	}
	if v.Sort != nil {
		fmt.Fprintf(w, "Sort: %s\n", v.Sort)
	}
	return nil
}

// renderStats writes the snapshot as label/value lines.
func renderStats(w io.Writer, s StatsResult) error {
	snap := s.Snapshot
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	if s.Owner != nil {
		fmt.Fprintf(tw, "Owner:\t%s (%s)\n", s.Owner.Email, s.Initials)
	}
	fmt.Fprintf(tw, "Scope:\t%s\n", s.Scope)
	if s.Query != "" {
		fmt.Fprintf(tw, "Query:\t%q\n", s.Query)
	}
	fmt.Fprintf(tw, "Records:\t%d\n", snap.Count)
	fmt.Fprintf(tw, "Total sells:\t%d\n", snap.TotalSells)
	fmt.Fprintf(tw, "Total buys:\t%d\n", snap.TotalBuys)
	fmt.Fprintf(tw, "Average sells:\t%.2f (%d)\n", snap.AverageSells, snap.AverageSellsRounded)
	fmt.Fprintf(tw, "Average buys:\t%.2f\n", snap.AverageBuys)
	if snap.TopSeller != nil {
		fmt.Fprintf(tw, "Top seller:\t%s (%d)\n", snap.TopSeller.Name, snap.TopSeller.Sells)
	}
	if snap.TopCity != nil {
		fmt.Fprintf(tw, "Top city:\t%s (%d)\n", snap.TopCity.Value, snap.TopCity.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(snap.Cities) == 0 {
		return nil
	}
	fmt.Fprintln(w, "Cities:")
	tw = tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, g := range snap.Cities {
		fmt.Fprintf(tw, "  %s\t%d\n", g.Value, g.Count)
	}
	return tw.Flush()
}
