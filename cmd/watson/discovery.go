package main

import (
	"github.com/spf13/cobra"

	"github.com/RoeZX/watson-go-sdk/core"
	"github.com/RoeZX/watson-go-sdk/discoveryv2"
)

const discoveryDefaultVersion = "2020-08-30"

func (c *cli) discoveryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discovery",
		Short: "Watson Discovery",
	}

	query := &cobra.Command{
		Use:   "query <project-id>",
		Short: "Search the collections of a project",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runQuery,
	}
	query.Flags().StringSlice("collection-ids", nil, "Collections to search (default: all in the project)")
	query.Flags().String("query", "", "Discovery Query Language query")
	query.Flags().String("nlq", "", "Natural language query")
	query.Flags().String("filter", "", "Filter applied before scoring")
	query.Flags().Int64("count", 0, "Number of results (0: service default)")
	query.Flags().StringSlice("return", nil, "Fields to return for each result")
	query.Flags().Bool("passages", false, "Include passages in the results")

	cmd.AddCommand(query)
	return cmd
}

func (c *cli) runQuery(cmd *cobra.Command, args []string) error {
	opts := &discoveryv2.QueryOptions{ProjectID: args[0]}
	opts.CollectionIds, _ = cmd.Flags().GetStringSlice("collection-ids")
	opts.Return, _ = cmd.Flags().GetStringSlice("return")
	if q, _ := cmd.Flags().GetString("query"); q != "" {
		opts.Query = core.StringPtr(q)
	}
	if nlq, _ := cmd.Flags().GetString("nlq"); nlq != "" {
		opts.NaturalLanguageQuery = core.StringPtr(nlq)
	}
	if filter, _ := cmd.Flags().GetString("filter"); filter != "" {
		opts.Filter = core.StringPtr(filter)
	}
	if count, _ := cmd.Flags().GetInt64("count"); count > 0 {
		opts.Count = core.Int64Ptr(count)
	}
	if passages, _ := cmd.Flags().GetBool("passages"); passages {
		opts.Passages = &discoveryv2.QueryLargePassages{Enabled: core.BoolPtr(true)}
	}

	d, err := discoveryv2.NewDiscoveryV2(c.version(discoveryDefaultVersion), c.serviceOptions()...)
	if err != nil {
		return err
	}
	resp, err := d.Query(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return printResult(c, cmd, resp)
}
