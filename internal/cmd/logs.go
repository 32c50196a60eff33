package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Iron-Ham/taskmemo/internal/config"
	"github.com/Iron-Ham/taskmemo/internal/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View debug logs",
	Long: `View and filter the taskmemo debug log.

The log is written to debug.log in logging.dir (default
$XDG_STATE_HOME/taskmemo). Use flags to filter and format the output.

Examples:
  # Show the last 50 lines
  taskmemo logs

  # Show everything
  taskmemo logs -n 0

  # Follow logs in real-time
  taskmemo logs -f

  # Only warnings and errors
  taskmemo logs --level warn

  # Show logs from the last hour
  taskmemo logs --since 1h

  # Only todo list renders
  taskmemo logs --grep "todo_list"`,
	RunE: runLogs,
}

var (
	logsTail   int
	logsFollow bool
	logsLevel  string
	logsSince  string
	logsGrep   string
)

// followPollInterval is how often follow mode checks the file for new lines.
const followPollInterval = 100 * time.Millisecond

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of lines to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsGrep, "grep", "", "Filter logs matching pattern (regex)")
}

// logEntry is one parsed JSON log line
type logEntry struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Msg       string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	View      string         `json:"view,omitempty"`
	Extra     map[string]any `json:"-"`
}

// UnmarshalJSON keeps unknown attributes in Extra.
func (e *logEntry) UnmarshalJSON(data []byte) error {
	type alias logEntry
	aux := &struct{ *alias }{alias: (*alias)(e)}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, known := range []string{"time", "level", "msg", "component", "view"} {
		delete(all, known)
	}
	if len(all) > 0 {
		e.Extra = all
	}
	return nil
}

var (
	logTimeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	logKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	logLevelStyle = map[string]lipgloss.Style{
		logging.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		logging.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		logging.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		logging.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
)

// levelPriority orders levels for --level filtering. Unknown levels are -1.
func levelPriority(level string) int {
	return slices.Index(logging.ValidLevels(), strings.ToUpper(level))
}

// logFilter holds the parsed filter flags.
type logFilter struct {
	minLevel int
	since    time.Time
	grep     *regexp.Regexp
}

func newLogFilter(level, since, grep string, now time.Time) (logFilter, error) {
	f := logFilter{minLevel: -1}
	if level != "" {
		f.minLevel = levelPriority(logging.ParseLevel(level))
	}
	if since != "" {
		d, err := time.ParseDuration(since)
		if err != nil {
			return f, fmt.Errorf("invalid duration format: %w", err)
		}
		f.since = now.Add(-d)
	}
	if grep != "" {
		re, err := regexp.Compile(grep)
		if err != nil {
			return f, fmt.Errorf("invalid grep pattern: %w", err)
		}
		f.grep = re
	}
	return f, nil
}

// passes reports whether entry matches every filter.
func (f logFilter) passes(entry *logEntry) bool {
	if f.minLevel >= 0 && levelPriority(entry.Level) < f.minLevel {
		return false
	}
	if !f.since.IsZero() && entry.Time.Before(f.since) {
		return false
	}
	if f.grep != nil {
		parts := []string{entry.Msg, entry.Component, entry.View}
		for _, v := range entry.Extra {
			parts = append(parts, fmt.Sprint(v))
		}
		if !f.grep.MatchString(strings.Join(parts, " ")) {
			return false
		}
	}
	return true
}

// format renders line for the terminal. Lines that are not JSON are
// returned as-is; ok is false when a JSON entry is filtered out.
func (f logFilter) format(line string) (string, bool) {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return line, true
	}
	if !f.passes(&entry) {
		return "", false
	}
	return formatLogEntry(&entry), true
}

func formatLogEntry(entry *logEntry) string {
	var sb strings.Builder

	sb.WriteString(logTimeStyle.Render("[" + entry.Time.Format("15:04:05.000") + "]"))
	sb.WriteString(" ")
	level := strings.ToUpper(entry.Level)
	sb.WriteString(logLevelStyle[level].Render("[" + level + "]"))
	sb.WriteString(" ")
	sb.WriteString(entry.Msg)

	if entry.Component != "" {
		sb.WriteString(" " + logKeyStyle.Render("component=") + entry.Component)
	}
	if entry.View != "" {
		sb.WriteString(" " + logKeyStyle.Render("view=") + entry.View)
	}
	for _, key := range slices.Sorted(maps.Keys(entry.Extra)) {
		sb.WriteString(" " + logKeyStyle.Render(key+"=") + fmt.Sprint(entry.Extra[key]))
	}
	return sb.String()
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	logPath := filepath.Join(cfg.Logging.ResolveDir(), logging.LogFileName)
	out := cmd.OutOrStdout()

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "No logs found.")
		fmt.Fprintln(out, "Logs are stored at:", logPath)
		return nil
	}

	filter, err := newLogFilter(logsLevel, logsSince, logsGrep, time.Now())
	if err != nil {
		return err
	}

	if logsFollow {
		return followLogs(cmd.Context(), out, logPath, filter)
	}
	return displayLogs(out, logPath, logsTail, filter)
}

// displayLogs prints the last tail matching entries of the log file.
func displayLogs(out io.Writer, logPath string, tail int, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if formatted, ok := filter.format(line); ok {
			entries = append(entries, formatted)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading log file: %w", err)
	}

	if tail > 0 && len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}
	for _, entry := range entries {
		fmt.Fprintln(out, entry)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No matching log entries found.")
	}
	return nil
}

// followLogs prints entries appended to the log file until ctx is done.
func followLogs(ctx context.Context, out io.Writer, logPath string, filter logFilter) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("failed to seek to end: %w", err)
	}

	fmt.Fprint(out, "Following logs... (Ctrl+C to stop)\n\n")

	ticker := time.NewTicker(followPollInterval)
	defer ticker.Stop()

	reader := bufio.NewReader(file)
	var partial string
	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// Keep an unterminated tail until the writer finishes the line
			partial += line
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading log file: %w", err)
		}

		line = strings.TrimSpace(partial + line)
		partial = ""
		if line == "" {
			continue
		}
		if formatted, ok := filter.format(line); ok {
			fmt.Fprintln(out, formatted)
		}
	}
}
