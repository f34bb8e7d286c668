package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/RoeZX/watson-go-sdk/comparecomplyv1"
	"github.com/RoeZX/watson-go-sdk/core"
)

const compareComplyDefaultVersion = "2018-10-15"

func (c *cli) compareComplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comparecomply",
		Aliases: []string{"cc"},
		Short:   "Watson Compare and Comply",
	}

	classify := &cobra.Command{
		Use:   "classify <file>",
		Short: "Classify the elements of a contract",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runClassify,
	}
	classify.Flags().String("model", "", "Analysis model: contracts or tables")
	classify.Flags().String("content-type", "", "Content type of the file (default: from the extension)")

	cmd.AddCommand(classify)
	return cmd
}

func (c *cli) runClassify(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	contentType, _ := cmd.Flags().GetString("content-type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(path))
	}
	opts := &comparecomplyv1.DocumentOptions{
		File:            f,
		Filename:        filepath.Base(path),
		FileContentType: contentType,
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		opts.Model = core.StringPtr(model)
	}

	cc, err := comparecomplyv1.NewCompareComplyV1(c.version(compareComplyDefaultVersion), c.serviceOptions()...)
	if err != nil {
		return err
	}
	resp, err := cc.ClassifyElements(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return printResult(c, cmd, resp)
}
