// Package main provides the CLI entrypoint for readquest.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/readquest/internal/book"
	"github.com/verte-zerg/readquest/internal/collection"
	"github.com/verte-zerg/readquest/internal/config"
	"github.com/verte-zerg/readquest/internal/library"
	"github.com/verte-zerg/readquest/internal/reader"
	"github.com/verte-zerg/readquest/internal/session"
	"github.com/verte-zerg/readquest/internal/stats"
	"github.com/verte-zerg/readquest/internal/statsui"
	"github.com/verte-zerg/readquest/internal/storage"
)

const (
	defaultDailyGoal    = 30
	defaultLinesPerPage = book.DefaultLinesPerPage
)

var (
	readingDailyGoal    int
	readingLinesPerPage int

	addTitle string

	statsPlain bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "readquest",
		Short:         "Terminal reading tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runListCmd,
	}

	rootCmd.PersistentFlags().IntVar(&readingDailyGoal, "daily-goal", defaultDailyGoal, "daily reading goal in minutes")
	rootCmd.PersistentFlags().IntVar(&readingLinesPerPage, "lines-per-page", defaultLinesPerPage, "pagination unit for newly imported books")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newReadCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newShopCmd())
	rootCmd.AddCommand(newGoalCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// statsSink feeds session reward events into the durable stats store.
type statsSink struct {
	stats *stats.Store
}

func (s statsSink) CoinsEarned(amount int) {
	s.stats.AddCoins(amount)
}

func (s statsSink) ReadingRecorded(seconds, pages int) {
	s.stats.RecordReading(seconds, pages)
}

func loadSettings(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "daily-goal", &readingDailyGoal, fileCfg.Reading.DailyGoalMinutes)
	applyIntConfig(cmd, "lines-per-page", &readingLinesPerPage, fileCfg.Reading.LinesPerPage)
	if readingDailyGoal <= 0 {
		return fmt.Errorf("--daily-goal must be > 0")
	}
	if readingLinesPerPage <= 0 {
		return fmt.Errorf("--lines-per-page must be > 0")
	}
	return nil
}

func openLibrary() (*library.Store, error) {
	st, err := library.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open library db: %w", err)
	}
	return st, nil
}

func openStats() *stats.Store {
	backend := storage.New(config.DefaultStateDir(), logErrf)
	return stats.Open(backend)
}

func openAlbum() *collection.Album {
	backend := storage.New(config.DefaultStateDir(), logErrf)
	return collection.OpenAlbum(backend)
}

func runListCmd(cmd *cobra.Command, _ []string) error {
	if err := loadSettings(cmd); err != nil {
		return err
	}
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer closeLibrary(lib)

	books, err := lib.ListBooks(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}
	if len(books) == 0 {
		logErrln("No books yet. Import one with: readquest add <file>")
		return nil
	}
	out := cmd.OutOrStdout()
	for _, item := range books {
		marker := " "
		position := fmt.Sprintf("0/%d", item.Book.TotalPages)
		if item.Progress != nil {
			position = fmt.Sprintf("%d/%d", item.Progress.CurrentPage, item.Progress.TotalPages)
			if item.Progress.CompletedAt != nil {
				marker = "✓"
			}
		}
		if _, err := fmt.Fprintf(out, "%s %-40s %10s  %s\n", marker, item.Book.Title, position, item.Book.ID); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Import a plain-text book into the library",
		Args:  cobra.ExactArgs(1),
		RunE:  runAddCmd,
	}
	cmd.Flags().StringVar(&addTitle, "title", "", "book title (default: file name)")
	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string) error {
	if err := loadSettings(cmd); err != nil {
		return err
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	lines, err := book.LoadLines(path)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	title := addTitle
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	totalPages := book.PageCount(len(lines), readingLinesPerPage)

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer closeLibrary(lib)

	added, err := lib.AddBook(context.Background(), title, path, totalPages, readingLinesPerPage)
	if err != nil {
		return fmt.Errorf("failed to add book: %w", err)
	}
	logErrf("Added %q (%d pages, id %s)", added.Title, added.TotalPages, added.ID)
	return nil
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id|title>",
		Short: "Open a book in the reader",
		Args:  cobra.ExactArgs(1),
		RunE:  runReadCmd,
	}
}

func runReadCmd(cmd *cobra.Command, args []string) error {
	if err := loadSettings(cmd); err != nil {
		return err
	}
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer closeLibrary(lib)

	ctx := context.Background()
	bk, err := lib.GetBook(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to find book: %w", err)
	}
	lines, err := book.LoadLines(bk.Path)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	userStats := openStats()
	if cmd.Flags().Changed("daily-goal") && readingDailyGoal != userStats.Stats().DailyGoalMinutes {
		userStats.SetDailyGoal(readingDailyGoal)
	}

	startPage := 1
	if progress, err := lib.GetProgress(ctx, bk.ID); err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	} else if progress != nil {
		startPage = book.Clamp(progress.CurrentPage, bk.TotalPages)
	}

	sess := session.New(bk.ID, startPage, statsSink{stats: userStats})
	sweepCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go sess.Run(sweepCtx)

	rdr := reader.NewModel(bk, lines, bk.LinesPerPage, sess, lib, userStats, cancel)
	program := tea.NewProgram(rdr, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run reader: %w", err)
	}

	summary := sess.End()
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Session: %s, %d page(s) read, %d coin(s) earned\n",
		stats.FormatDuration(summary.TotalTime), summary.PagesRead, summary.CoinsEarned); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id|title>",
		Short: "Remove a book and its progress",
		Args:  cobra.ExactArgs(1),
		RunE:  runRmCmd,
	}
}

func runRmCmd(_ *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer closeLibrary(lib)

	ctx := context.Background()
	bk, err := lib.GetBook(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to find book: %w", err)
	}
	if err := lib.DeleteBook(ctx, bk.ID); err != nil {
		return fmt.Errorf("failed to remove book: %w", err)
	}
	logErrf("Removed %q", bk.Title)
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reading stats",
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain-text summary instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	userStats := openStats()
	if statsPlain {
		if err := stats.RenderSummary(cmd.OutOrStdout(), userStats.Stats()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer closeLibrary(lib)

	books, err := lib.ListBooks(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}
	model := statsui.NewModel(userStats.Stats(), books)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Sticker shop",
		Args:  cobra.NoArgs,
		RunE:  runShopListCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "buy <sticker-id>",
		Short: "Buy a sticker",
		Args:  cobra.ExactArgs(1),
		RunE:  runShopBuyCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "equip <sticker-id>",
		Short: "Equip an unlocked sticker",
		Args:  cobra.ExactArgs(1),
		RunE:  runShopEquipCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "unequip <sticker-id>",
		Short: "Unequip a sticker",
		Args:  cobra.ExactArgs(1),
		RunE:  runShopUnequipCmd,
	})
	return cmd
}

func runShopListCmd(cmd *cobra.Command, _ []string) error {
	userStats := openStats()
	album := openAlbum()
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Balance: %d coins\n\n", userStats.Stats().Coins); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	for _, sticker := range collection.Catalog {
		marker := " "
		if album.IsEquipped(sticker.ID) {
			marker = "*"
		} else if album.IsUnlocked(sticker.ID) {
			marker = "+"
		}
		if _, err := fmt.Fprintf(out, "%s %s %-20s %-12s %4d coins  %-9s %s\n",
			marker, sticker.Emoji, sticker.Name, "("+sticker.ID+")", sticker.Price,
			sticker.Rarity, sticker.Description); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintln(out, "\n+ unlocked, * equipped"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runShopBuyCmd(_ *cobra.Command, args []string) error {
	sticker, ok := collection.ByID(args[0])
	if !ok {
		return fmt.Errorf("unknown sticker: %s", args[0])
	}
	userStats := openStats()
	album := openAlbum()
	if album.IsUnlocked(sticker.ID) {
		return fmt.Errorf("sticker %s is already unlocked", sticker.ID)
	}
	if !userStats.SpendCoins(sticker.Price) {
		return fmt.Errorf("not enough coins: %s costs %d, balance is %d",
			sticker.ID, sticker.Price, userStats.Stats().Coins)
	}
	album.Unlock(sticker.ID)
	logErrf("Unlocked %s %s", sticker.Emoji, sticker.Name)
	return nil
}

func runShopEquipCmd(_ *cobra.Command, args []string) error {
	sticker, ok := collection.ByID(args[0])
	if !ok {
		return fmt.Errorf("unknown sticker: %s", args[0])
	}
	album := openAlbum()
	if err := album.Equip(sticker.ID); err != nil {
		return err
	}
	logErrf("Equipped %s %s", sticker.Emoji, sticker.Name)
	return nil
}

func runShopUnequipCmd(_ *cobra.Command, args []string) error {
	sticker, ok := collection.ByID(args[0])
	if !ok {
		return fmt.Errorf("unknown sticker: %s", args[0])
	}
	album := openAlbum()
	album.Unequip(sticker.ID)
	logErrf("Unequipped %s %s", sticker.Emoji, sticker.Name)
	return nil
}

func newGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal [minutes]",
		Short: "Show or set the daily reading goal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGoalCmd,
	}
}

func runGoalCmd(cmd *cobra.Command, args []string) error {
	userStats := openStats()
	if len(args) == 1 {
		minutes, err := strconv.Atoi(args[0])
		if err != nil || minutes <= 0 {
			return fmt.Errorf("goal must be a positive number of minutes")
		}
		userStats.SetDailyGoal(minutes)
	}
	st := userStats.Stats()
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %d min (today: %s)\n",
		st.DailyGoalMinutes, stats.FormatDuration(st.TodayReadingTime)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# readquest configuration
# Uncomment a value to enable it. CLI flags override config values.

[reading]
# daily-goal = %d       # Daily reading goal in minutes
# lines-per-page = %d   # Pagination unit for newly imported books
`,
		defaultDailyGoal,
		defaultLinesPerPage,
	)
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func closeLibrary(lib *library.Store) {
	if cerr := lib.Close(); cerr != nil {
		logErrf("failed to close library db: %v", cerr)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format+"\n", args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
