package main

import (
	"github.com/spf13/cobra"

	"github.com/bakito/rblxapi2cpp/internal/render"
)

type generateOptions struct {
	className string
	name      string
	templates string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <file> <dir>",
		Short: "Generate a C++ header from a fetched document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := root.cfg.Templates
			if opts.templates != "" {
				templates = opts.templates
			}

			r, err := render.NewRenderer(templates)
			if err != nil {
				return err
			}

			_, err = r.Generate(cmd.Context(), render.Request{
				Input:     args[0],
				Dir:       args[1],
				ClassName: opts.className,
				Name:      opts.name,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.className, "class", "c", "", "The name of the generated class (default: the name in the document)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "The name of the generated header (default: the name of the input file)")
	cmd.Flags().StringVarP(&opts.templates, "templates", "t", "", "Directory containing class.hpp.tpl and datatype.hpp.tpl")

	return cmd
}
