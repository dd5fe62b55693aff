package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/vmunix/marquee/internal/appconfig"
	"github.com/vmunix/marquee/internal/catalog"
)

var storeDB string

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the SQLite configuration store",
	Long: `Manage the SQLite configuration store that marqueed reads
when appconfig.source = "store".

Examples:
  marquee store put movies prod catalog catalog.json
  marquee store get movies prod catalog
  marquee store list`,
}

var storePutCmd = &cobra.Command{
	Use:   "put <application> <environment> <config> <file|->",
	Short: "Store a configuration document",
	Args:  cobra.ExactArgs(4),
	RunE:  runStorePutCmd,
}

var storeGetCmd = &cobra.Command{
	Use:   "get <application> <environment> <config>",
	Short: "Print a stored configuration document",
	Args:  cobra.ExactArgs(3),
	RunE:  runStoreGetCmd,
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored configuration documents",
	Args:  cobra.NoArgs,
	RunE:  runStoreListCmd,
}

var storeDeleteCmd = &cobra.Command{
	Use:   "delete <application> <environment> <config>",
	Short: "Delete a stored configuration document",
	Args:  cobra.ExactArgs(3),
	RunE:  runStoreDeleteCmd,
}

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storePutCmd, storeGetCmd, storeListCmd, storeDeleteCmd)

	storeCmd.PersistentFlags().StringVar(&storeDB, "db", "./data/marquee.db", "Path to the store database")
	storePutCmd.Flags().String("content-type", "", "Content type (default: from file extension)")
	storePutCmd.Flags().Bool("force", false, "Store even if the document is not a valid catalog")
}

// openStore opens and migrates the store database.
func openStore(ctx context.Context, path string) (*appconfig.Store, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	store := appconfig.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return store, func() { _ = db.Close() }, nil
}

func keyFromArgs(args []string) appconfig.Key {
	return appconfig.Key{Application: args[0], Environment: args[1], Config: args[2]}
}

// contentTypeFor guesses a content type from a file name.
func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "application/x-yaml"
	default:
		return "application/json"
	}
}

func readDocument(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func runStorePutCmd(cmd *cobra.Command, args []string) error {
	contentType, _ := cmd.Flags().GetString("content-type")
	force, _ := cmd.Flags().GetBool("force")

	content, err := readDocument(args[3], cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	if contentType == "" {
		contentType = contentTypeFor(args[3])
	}

	store, closeStore, err := openStore(cmd.Context(), storeDB)
	if err != nil {
		return err
	}
	defer closeStore()

	return storePut(cmd.Context(), store, cmd.OutOrStdout(), keyFromArgs(args), content, contentType, force)
}

// storePut validates content as a catalog document unless force is set, then stores it.
func storePut(ctx context.Context, store *appconfig.Store, out io.Writer, key appconfig.Key, content []byte, contentType string, force bool) error {
	doc := &appconfig.Document{Content: content, ContentType: contentType}
	entries, parseErr := catalog.ParseDocument(doc)
	if parseErr != nil && !force {
		return fmt.Errorf("%w (use --force to store anyway)", parseErr)
	}

	version, err := store.Put(ctx, key, content, contentType)
	if err != nil {
		return err
	}

	if parseErr != nil {
		fmt.Fprintf(out, "Stored %s version %d (not a valid catalog: %v)\n", key, version, parseErr)
		return nil
	}
	fmt.Fprintf(out, "Stored %s version %d (%d movies)\n", key, version, len(entries))
	return nil
}

func runStoreGetCmd(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore(cmd.Context(), storeDB)
	if err != nil {
		return err
	}
	defer closeStore()

	doc, err := store.Fetch(cmd.Context(), keyFromArgs(args))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		entries, err := catalog.ParseDocument(doc)
		if err != nil {
			return err
		}
		return printJSON(out, map[string]any{
			"key":          keyFromArgs(args).String(),
			"version":      doc.Version,
			"content_type": doc.ContentType,
			"movies":       entries,
		})
	}

	_, err = out.Write(doc.Content)
	if err == nil && len(doc.Content) > 0 && doc.Content[len(doc.Content)-1] != '\n' {
		_, err = io.WriteString(out, "\n")
	}
	return err
}

func runStoreListCmd(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore(cmd.Context(), storeDB)
	if err != nil {
		return err
	}
	defer closeStore()

	configs, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, configs)
	}
	printStoredConfigs(out, configs)
	return nil
}

func printStoredConfigs(w io.Writer, configs []appconfig.StoredConfig) {
	if len(configs) == 0 {
		fmt.Fprintln(w, "No configurations stored")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVERSION\tTYPE\tSIZE\tUPDATED")
	for _, c := range configs {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
			c.Key, c.Version, c.ContentType,
			humanize.Bytes(uint64(c.Size)),
			humanize.Time(c.UpdatedAt),
		)
	}
	_ = tw.Flush()
}

func runStoreDeleteCmd(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore(cmd.Context(), storeDB)
	if err != nil {
		return err
	}
	defer closeStore()

	key := keyFromArgs(args)
	if err := store.Delete(cmd.Context(), key); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", key)
	return nil
}
