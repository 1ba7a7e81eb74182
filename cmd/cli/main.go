package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"pokedex/internal/client"
	"pokedex/internal/pokemon"
	"pokedex/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

var (
	baseURL string
	rawJSON bool
	timeout time.Duration
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Query a running pokedex API server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&baseURL, "api", envOr("POKEDEX_API", defaultBaseURL), "API base URL")
	root.PersistentFlags().BoolVar(&rawJSON, "json", false, "print raw JSON instead of a table")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 15*time.Second, "request timeout")

	root.AddCommand(listCmd(), getCmd(), debugCmd(), spritesCmd())
	return root
}

func listCmd() *cobra.Command {
	values := map[string]*string{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pokemon matching the given filters",
		Example: `  pokedex list --search saur
  pokedex list --type1 grass --hp-min 50
  pokedex list --type2 none --legendary true`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := url.Values{}
			for name, v := range values {
				if *v != "" {
					params.Set(name, *v)
				}
			}
			items, err := newClient().List(cmd.Context(), params)
			if err != nil {
				return err
			}
			if rawJSON {
				return printJSON(items)
			}
			printTable(items)
			return nil
		},
	}

	bind := func(param, flagName, usage string) {
		v := new(string)
		values[param] = v
		cmd.Flags().StringVar(v, flagName, "", usage)
	}
	bind("search", "search", "case-insensitive name substring")
	for _, field := range pokemon.StandardFields {
		bind(field, flagFor(field), "exact match on "+field)
	}
	for _, stat := range pokemon.RangeFields {
		bind(stat+"_min", flagFor(stat)+"-min", "minimum "+stat+" (inclusive)")
		bind(stat+"_max", flagFor(stat)+"-max", "maximum "+stat+" (inclusive)")
	}
	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one pokemon by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newClient().Get(cmd.Context(), args[0])
			if errors.Is(err, pokemon.ErrNotFound) {
				return fmt.Errorf("no pokemon with id %q", args[0])
			}
			if err != nil {
				return err
			}
			if rawJSON {
				return printJSON(p)
			}
			printTable([]models.Pokemon{*p})
			fmt.Printf("\nsprites: normal=%s animated=%s\n", p.Sprites[models.SpriteNormal], p.Sprites[models.SpriteAnimated])
			return nil
		},
	}
}

func debugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Show the server's load diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := newClient().Debug(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(doc)
		},
	}
}

func spritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sprites",
		Short: "Show how the first record's sprites were normalized",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := newClient().DebugSprites(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(doc)
		},
	}
}

func newClient() *client.Client {
	return client.New(baseURL, timeout)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

func printTable(items []models.Pokemon) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE1\tTYPE2\tHP\tATK\tDEF\tSPA\tSPD\tSPE\tGEN\tLEGENDARY")
	for _, p := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
			p.ID, p.Name, p.Type1, dash(p.Type2),
			p.HP, p.Attack, p.Defense, p.SpAtk, p.SpDef, p.Speed,
			p.Generation, strconv.FormatBool(p.Legendary),
		)
	}
	_ = w.Flush()
	fmt.Printf("%d pokemon\n", len(items))
}

// flagFor turns a query parameter name into a flag name (sp_atk -> sp-atk).
func flagFor(param string) string {
	out := []byte(param)
	for i, c := range out {
		if c == '_' {
			out[i] = '-'
		}
	}
	return string(out)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
