package main

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	v1 "github.com/kenlhlui/go-archiveit/api/v1"
	"github.com/kenlhlui/go-archiveit/api/v1/client"
	"github.com/kenlhlui/go-archiveit/api/v1/objects"
)

// Credentials and endpoint come from the environment:
// ARCHIVEIT_USERNAME, ARCHIVEIT_PASSWORD, ARCHIVEIT_BASE_URL,
// ARCHIVEIT_TIMEOUT.
func main() {
	viper.SetEnvPrefix("archiveit")
	viper.AutomaticEnv()

	viper.SetDefault("base_url", client.DefaultBaseURL)
	viper.SetDefault("timeout", "15s")

	rootCmd := &cobra.Command{
		Use:           "archiveit",
		Short:         "Manage the seeds of a web archive partner account",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	}

	newClient := func(cmd *cobra.Command) (v1.V1, error) {
		return client.NewWithOpts(cmd.Context(),
			client.WithBaseURL(viper.GetString("base_url")),
			client.WithBasicAuth(viper.GetString("username"), viper.GetString("password")),
			client.WithTimeout(viper.GetDuration("timeout")),
		)
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the account the credentials belong to",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			return printJSON(c.Account())
		},
	}

	seedsCmd := &cobra.Command{
		Use:   "seeds",
		Short: "Work with collection seeds",
	}

	var (
		listLimit int
		listSort  string
	)

	listCmd := &cobra.Command{
		Use:   "list <collection-id>...",
		Short: "List the seeds of one or more collections",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := collectionIDs(args)
			if err != nil {
				return err
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			var opts []v1.ListOption
			if listLimit != v1.DefaultListLimit {
				opts = append(opts, v1.WithLimit(listLimit))
			}
			if listSort != "" {
				opts = append(opts, v1.WithSort(listSort))
			}

			seeds, err := c.Seed().List(cmd.Context(), ids, opts...)
			if err != nil {
				return err
			}

			return printJSON(seeds)
		},
	}

	listCmd.Flags().IntVar(&listLimit, "limit", v1.DefaultListLimit, "maximum seeds per collection, -1 for all")
	listCmd.Flags().StringVar(&listSort, "sort", "", "seed field to sort by, prefix with - for descending")

	var (
		createCollection int
		createCrawlDef   int
		createMetadata   []string
	)

	createCmd := &cobra.Command{
		Use:   "create <url>",
		Short: "Add a seed to a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := metadataFromFlags(createMetadata)
			if err != nil {
				return err
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			var opts []v1.CreateOption
			if len(metadata) > 0 {
				opts = append(opts, v1.WithMetadata(metadata))
			}

			result, err := c.Seed().Create(cmd.Context(), args[0], createCollection, createCrawlDef, opts...)
			if err != nil {
				return err
			}

			if result.Metadata.Err != nil {
				log.WithError(result.Metadata.Err).Warn("seed created but metadata was not applied")
			}

			return printJSON(result.Seed)
		},
	}

	createCmd.Flags().IntVar(&createCollection, "collection", 0, "collection id")
	createCmd.Flags().IntVar(&createCrawlDef, "crawl-definition", 0, "crawl definition id")
	createCmd.Flags().StringArrayVar(&createMetadata, "metadata", nil, "metadata as field=value, repeatable")
	createCmd.MarkFlagRequired("collection")
	createCmd.MarkFlagRequired("crawl-definition")

	deleteCmd := &cobra.Command{
		Use:   "delete <seed-id>",
		Short: "Soft-delete a seed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("seed id %q: %w", args[0], err)
			}

			c, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			seed, err := c.Seed().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}

			return printJSON(seed)
		},
	}

	seedsCmd.AddCommand(listCmd, createCmd, deleteCmd)
	rootCmd.AddCommand(whoamiCmd, seedsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func collectionIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))

	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("collection id %q: %w", arg, err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func metadataFromFlags(pairs []string) (objects.Metadata, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	md := make(objects.Metadata, len(pairs))

	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("metadata %q: want field=value", pair)
		}

		md[field] = append(md[field], objects.MetadataValue{Value: value})
	}

	return md, nil
}

func printJSON(v any) error {
	out, err := jsoniter.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}
