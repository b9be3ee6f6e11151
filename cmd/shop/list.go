package main

import (
	"algofit-storefront/internal/app/catalog"
	"algofit-storefront/internal/app/tui"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// queryFlags are the catalog filters accepted on the command line. They go
// through the same link parsing as the web storefront, so bad values are clamped.
type queryFlags struct {
	priceMin   string
	priceMax   string
	membership string
	search     string
	sort       string
	page       int
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.priceMin, "min", "", "Lowest price")
	cmd.Flags().StringVar(&f.priceMax, "max", "", "Highest price")
	cmd.Flags().StringVar(&f.membership, "membership", "", "Membership ID")
	cmd.Flags().StringVar(&f.search, "search", "", "Search text")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sort: price_asc|price_desc|name_asc|name_desc")
	cmd.Flags().IntVar(&f.page, "page", 0, "Page number")
}

func (f *queryFlags) values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set(catalog.ParamPriceMin, f.priceMin)
	set(catalog.ParamPriceMax, f.priceMax)
	set(catalog.ParamMembership, f.membership)
	set(catalog.ParamSearch, f.search)
	set(catalog.ParamSort, f.sort)
	if f.page > 0 {
		v.Set(catalog.ParamPage, strconv.Itoa(f.page))
	}
	return v
}

func newListCmd(root *rootFlags) *cobra.Command {
	flags := &queryFlags{}
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one catalog page and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			s, err := open(root)
			if err != nil {
				return err
			}
			snap := s.repo.Plan.Catalog(ctx, catalog.ParseQuery(flags.values()))
			return printSnapshot(os.Stdout, snap, asJSON)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the page as JSON")
	return cmd
}

func printSnapshot(w io.Writer, snap catalog.Snapshot, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(w, tui.RenderSnapshot(tui.DefaultStyles, snap))
	}
	if snap.State == catalog.StateError {
		return fmt.Errorf("%s", snap.Message)
	}
	return nil
}
