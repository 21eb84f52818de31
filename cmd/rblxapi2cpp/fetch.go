package main

import (
	"github.com/spf13/cobra"

	"github.com/bakito/rblxapi2cpp/internal/document"
	"github.com/bakito/rblxapi2cpp/internal/source"
)

type fetchOptions struct {
	name     string
	datatype bool
	useGit   bool
}

func newFetchCmd(root *rootOptions) *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch <classname> <dir>",
		Short: "Download the reference documentation of a class or datatype",
		Long: `Download the Roblox reference documentation of a class for further usage.

The document is stored as <dir>/<classname>.yaml. It must be fetched before
a header can be generated from it.`,
		Example: `  # Fetch a class page
  rblxapi2cpp fetch Part docs

  # Fetch a datatype page under a different name
  rblxapi2cpp fetch Vector3 docs --data --name vec3

  # Read the page from a clone of the creator-docs repository
  rblxapi2cpp fetch Part docs --git`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src source.Source = root.cfg.HTTPSource()
			if opts.useGit {
				src = root.cfg.GitSource()
			}

			_, err := source.Fetch(cmd.Context(), src, source.Request{
				ClassName: args[0],
				Dir:       args[1],
				Name:      opts.name,
				Kind:      document.KindOf(opts.datatype),
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "The name of the downloaded file (default: the class name)")
	cmd.Flags().BoolVarP(&opts.datatype, "data", "d", false, "Fetch a datatype page instead of a class page")
	cmd.Flags().BoolVarP(&opts.useGit, "git", "g", false, "Clone the creator-docs repository instead of using the CDN")

	return cmd
}
