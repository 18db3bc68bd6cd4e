package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"urnik-backend/internal/scrapers/fri"
	"urnik-backend/internal/telemetry"

	"github.com/spf13/cobra"
)

var (
	fetchBaseUrl  *string
	fetchSemester *string
	fetchTimeout  *time.Duration
	fetchSave     *string
)

func init() {
	fetchBaseUrl = fetchCmd.Flags().String("base-url", fri.DefaultBaseUrl, "Base url of the timetable site.")
	fetchSemester = fetchCmd.Flags().String("semester", fri.DefaultSemester, "Timetable slug of the semester.")
	fetchTimeout = fetchCmd.Flags().Duration("timeout", fri.DefaultTimeout, "Timeout of the page request.")
	fetchSave = fetchCmd.Flags().String("save", "", "Also write the raw page to this path, it can be passed to parse later.")
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <group>",
	Short: "Fetches the timetable of a group and prints it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tel := telemetry.SlogAPI{}
		client, err := fri.NewClient(fri.ClientOptions{
			BaseUrl:  *fetchBaseUrl,
			Semester: *fetchSemester,
			Timeout:  *fetchTimeout,
		}, tel)
		if err != nil {
			return err
		}

		var fetcher fri.Fetcher = client
		if *fetchSave != "" {
			fetcher = savingFetcher{fetcher: client, path: *fetchSave}
		}

		blocks, err := fri.NewScraper(fetcher, tel).Timetable(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeTimetable(cmd.OutOrStdout(), blocks, *asJson)
	},
}

// savingFetcher writes every fetched page to path before handing it on.
type savingFetcher struct {
	fetcher fri.Fetcher
	path    string
}

func (f savingFetcher) FetchPage(ctx context.Context, group string) (string, error) {
	page, err := f.fetcher.FetchPage(ctx, group)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return "", err
		}
	}
	err = os.WriteFile(f.path, []byte(page), 0644)
	if err != nil {
		return "", err
	}
	slog.Debug("saved page", "path", f.path, "bytes", len(page))
	return page, nil
}
