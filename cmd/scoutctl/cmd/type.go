package cmd

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/scouthub/pkg/debounce"
)

var typeWindow time.Duration

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Type-ahead search from stdin",
	Long: "Reads one query per line from stdin, as a search box would see each keystroke. " +
		"Lines arriving within the debounce window are coalesced and only the last query " +
		"of each burst is searched. Pending input is searched at EOF.",
	Args: cobra.NoArgs,
	RunE: runType,
}

func init() {
	typeCmd.Flags().DurationVar(&typeWindow, "window", 0, "Debounce window (0 = configured debounce_window_ms)")
}

func runType(cmd *cobra.Command, _ []string) error {
	svc, err := loadService(cmd.Context())
	if err != nil {
		return err
	}
	defer svc.Stop()

	window := typeWindow
	if window <= 0 {
		window = cfg.DebounceWindow()
	}

	// The debounced callback runs on a timer goroutine; serialize writes.
	var mu sync.Mutex
	out := cmd.OutOrStdout()
	d := debounce.New(window, func(q string) {
		res := svc.Search(cmd.Context(), q)
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprint(out, formatResults(q, res))
	})
	defer d.Stop()

	return readQueries(cmd.InOrStdin(), d)
}

// readQueries feeds each line of r to d and flushes the last one at EOF.
func readQueries(r io.Reader, d *debounce.Debouncer[string]) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		d.Call(sc.Text())
	}
	d.Flush()
	return sc.Err()
}
