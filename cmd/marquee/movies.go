package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/search"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List the movie catalog",
	Args:  cobra.NoArgs,
	RunE:  runMoviesCmd,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the movie catalog",
	Long: `Search the movie catalog by name, id and genre.

Terms are combined: a movie must match every term given.
Name and genre match case-insensitively; id matches exactly.

Examples:
  marquee search --name alpha
  marquee search --genre action --name a
  marquee search --id 3`,
	Args: cobra.NoArgs,
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(moviesCmd)
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("name", "", "Name contains (case-insensitive)")
	searchCmd.Flags().Int64("id", 0, "Exact movie id")
	searchCmd.Flags().String("genre", "", "Genre (case-insensitive)")
}

func runMoviesCmd(cmd *cobra.Command, args []string) error {
	resp, err := NewClient(serverURL).Movies()
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, resp)
	}

	printMovies(out, resp.Movies)
	fmt.Fprintf(out, "\n%d movies (%s)\n", resp.Count, sourceLabel(resp.Source, resp.Version))
	return nil
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	id, _ := cmd.Flags().GetInt64("id")
	genre, _ := cmd.Flags().GetString("genre")

	criteria := search.Criteria{Name: name, ID: id, Genre: genre}.Normalize()
	resp, err := NewClient(serverURL).Search(criteria)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, resp)
	}

	if len(resp.Movies) == 0 {
		fmt.Fprintln(out, "No movies found")
		return nil
	}

	printMovies(out, resp.Movies)
	summary := resp.Query.Summary
	if summary == "" {
		summary = "no filters"
	}
	fmt.Fprintf(out, "\n%d matches for %s (%s)\n", resp.Count, summary, sourceLabel(resp.Source, ""))
	return nil
}

func printMovies(w io.Writer, movies []catalog.Entry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGENRE")
	for _, m := range movies {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", m.ID, m.Name, m.Genre)
	}
	_ = tw.Flush()
}

func sourceLabel(source, version string) string {
	if source == string(catalog.SourceFallback) {
		return "fallback catalog, remote unavailable"
	}
	if version != "" {
		return fmt.Sprintf("%s, version %s", source, version)
	}
	return source
}
