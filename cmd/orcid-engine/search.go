package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/orcid-engine/internal/fetch"
	"github.com/pdiddy/orcid-engine/internal/registry"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the registry for researchers",
	Long: `Search queries the registry's expanded search endpoint. Fielded terms
(--family-name, --given-name, --affiliation, --doi, --email, --keyword)
are AND-combined; --query passes a raw query string through unchanged.
The total match count reported by the registry is printed alongside the
returned rows.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "free-text or raw registry query string")
	searchCmd.Flags().String("given-name", "", "filter by given name")
	searchCmd.Flags().String("family-name", "", "filter by family name")
	searchCmd.Flags().String("affiliation", "", "filter by affiliation organization name")
	searchCmd.Flags().String("doi", "", "filter by DOI")
	searchCmd.Flags().String("email", "", "filter by email address")
	searchCmd.Flags().String("keyword", "", "filter by keyword")
	searchCmd.Flags().Int("rows", 0, "number of results to return (default 20, max 1000)")
	searchCmd.Flags().Int("start", 0, "result offset for paging")
	searchCmd.Flags().String("format", "table", "output format: table, csv, json, or yaml")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	q := fetch.Query{}
	q.FreeText, _ = cmd.Flags().GetString("query")
	q.GivenName, _ = cmd.Flags().GetString("given-name")
	q.FamilyName, _ = cmd.Flags().GetString("family-name")
	q.Affiliation, _ = cmd.Flags().GetString("affiliation")
	q.DOI, _ = cmd.Flags().GetString("doi")
	q.Email, _ = cmd.Flags().GetString("email")
	q.Keyword, _ = cmd.Flags().GetString("keyword")
	rows, _ := cmd.Flags().GetInt("rows")
	start, _ := cmd.Flags().GetInt("start")
	format, _ := cmd.Flags().GetString("format")

	// The config file can raise the default page size; the flag wins.
	searchCfg := types.SearchConfig{MaxRows: viper.GetInt("max_rows")}
	if rows == 0 && searchCfg.MaxRows > 0 {
		rows = searchCfg.MaxRows
	}

	regCfg := loadRegistryConfig(cmd)
	client := registry.NewClient(regCfg)
	out, err := fetch.Search(cmd.Context(), client, q, start, rows, regCfg.Token)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d total matches\n", out.TotalMatches)
	return fetch.Write(os.Stdout, format, out.Rows.Columns(), out.Rows.Rows())
}
