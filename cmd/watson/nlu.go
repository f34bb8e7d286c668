package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RoeZX/watson-go-sdk/core"
	nlu "github.com/RoeZX/watson-go-sdk/naturallanguageunderstandingv1"
)

const nluDefaultVersion = "2022-04-07"

func (c *cli) newNLU() (*nlu.NaturalLanguageUnderstandingV1, error) {
	return nlu.NewNaturalLanguageUnderstandingV1(c.version(nluDefaultVersion), c.serviceOptions()...)
}

func (c *cli) nluCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nlu",
		Short: "Natural Language Understanding",
	}

	analyze := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze text, HTML or a web page",
		Long: "Analyze content for the selected features. Without --text, --html or " +
			"--source-url the text is read from standard input.",
		Args: cobra.NoArgs,
		RunE: c.runAnalyze,
	}
	analyze.Flags().String("text", "", "Plain text to analyze")
	analyze.Flags().String("html", "", "HTML to analyze")
	analyze.Flags().String("source-url", "", "Public web page to analyze")
	analyze.Flags().StringSlice("features", []string{"keywords", "entities"}, "Features to run: "+strings.Join(featureNames, ","))
	analyze.Flags().Int64("limit", 0, "Maximum results per feature (0: service default)")
	analyze.Flags().String("language", "", "ISO 639-1 language code, detected when empty")
	analyze.Flags().Bool("return-text", false, "Include the analyzed text in the result")

	models := &cobra.Command{
		Use:   "models",
		Short: "Manage custom models",
	}
	models.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the custom models of the instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := c.newNLU()
			if err != nil {
				return err
			}
			resp, err := n.ListModels(cmd.Context(), nil)
			if err != nil {
				return err
			}
			return printResult(c, cmd, resp)
		},
	}, &cobra.Command{
		Use:   "delete <model-id>",
		Short: "Delete a custom model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.newNLU()
			if err != nil {
				return err
			}
			resp, err := n.DeleteModel(cmd.Context(), &nlu.DeleteModelOptions{ModelID: args[0]})
			if err != nil {
				return err
			}
			return printResult(c, cmd, resp)
		},
	})

	cmd.AddCommand(analyze, models)
	return cmd
}

func (c *cli) runAnalyze(cmd *cobra.Command, _ []string) error {
	names, _ := cmd.Flags().GetStringSlice("features")
	limit, _ := cmd.Flags().GetInt64("limit")
	features, err := parseFeatures(names, limit)
	if err != nil {
		return err
	}

	opts := &nlu.AnalyzeOptions{Features: features}
	text, _ := cmd.Flags().GetString("text")
	html, _ := cmd.Flags().GetString("html")
	sourceURL, _ := cmd.Flags().GetString("source-url")
	switch {
	case text != "":
		opts.Text = core.StringPtr(text)
	case html != "":
		opts.HTML = core.StringPtr(html)
	case sourceURL != "":
		opts.URL = core.StringPtr(sourceURL)
	default:
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
		opts.Text = core.StringPtr(string(in))
	}
	if lang, _ := cmd.Flags().GetString("language"); lang != "" {
		opts.Language = core.StringPtr(lang)
	}
	if ret, _ := cmd.Flags().GetBool("return-text"); ret {
		opts.ReturnAnalyzedText = core.BoolPtr(true)
	}

	n, err := c.newNLU()
	if err != nil {
		return err
	}
	resp, err := n.Analyze(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return printResult(c, cmd, resp)
}

var featureNames = []string{
	"categories", "concepts", "emotion", "entities", "keywords",
	"metadata", "relations", "semantic_roles", "sentiment", "syntax",
}

// parseFeatures maps feature names to Analyze features. limit applies to the
// features that accept one.
func parseFeatures(names []string, limit int64) (*nlu.Features, error) {
	var lim *int64
	if limit > 0 {
		lim = core.Int64Ptr(limit)
	}

	f := &nlu.Features{}
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "categories":
			f.Categories = &nlu.CategoriesOptions{Limit: lim}
		case "concepts":
			f.Concepts = &nlu.ConceptsOptions{Limit: lim}
		case "emotion":
			f.Emotion = &nlu.EmotionOptions{}
		case "entities":
			f.Entities = &nlu.EntitiesOptions{Limit: lim}
		case "keywords":
			f.Keywords = &nlu.KeywordsOptions{Limit: lim}
		case "metadata":
			f.Metadata = &nlu.MetadataOptions{}
		case "relations":
			f.Relations = &nlu.RelationsOptions{}
		case "semantic_roles":
			f.SemanticRoles = &nlu.SemanticRolesOptions{Limit: lim}
		case "sentiment":
			f.Sentiment = &nlu.SentimentOptions{}
		case "syntax":
			f.Syntax = &nlu.SyntaxOptions{Sentences: core.BoolPtr(true)}
		case "":
		default:
			return nil, fmt.Errorf("unknown feature %q (valid: %s)", name, strings.Join(featureNames, ", "))
		}
	}
	if *f == (nlu.Features{}) {
		return nil, fmt.Errorf("no features selected")
	}
	return f, nil
}
