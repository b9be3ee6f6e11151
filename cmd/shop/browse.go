package main

import (
	"algofit-storefront/internal/app/catalog"
	"algofit-storefront/internal/app/tui"
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newBrowseCmd(root *rootFlags) *cobra.Command {
	flags := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), root, flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func runBrowse(ctx context.Context, root *rootFlags, flags *queryFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := open(root)
	if err != nil {
		return err
	}

	memberships, err := s.repo.Membership.List(ctx)
	if err != nil {
		logrus.Warnf("memberships unavailable: %v", err)
	}

	view := catalog.NewView(
		catalog.WithQuery(catalog.ParseQuery(flags.values())),
		catalog.WithPagerCounts(s.cfg.Catalog.SiblingCount, s.cfg.Catalog.BoundaryCount),
	)
	model := tui.NewModel(ctx, view, s.repo.Plan, memberships, s.discount)

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
