package cli

import (
	"fmt"
	"io"

	"dessert-catalog/internal/pkg/common"

	"github.com/spf13/cobra"
)

func listCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List desserts sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			desserts, err := opts.catalog.ListDesserts(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, desserts)
			}
			_, err = fmt.Fprint(out, RenderSummaries(desserts))
			return err
		},
	}
}

func showCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full recipe for a dessert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := opts.catalog.GetDessert(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, detail)
			}
			_, err = fmt.Fprint(out, RenderDetail(detail))
			return err
		},
	}
}

func writeJSON(out io.Writer, v interface{}) error {
	data, err := common.ToIndentedJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, data)
	return err
}
