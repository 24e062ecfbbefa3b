package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordex/constants"
	"github.com/spf13/cobra"
)

var liveWait time.Duration

func init() {
	liveCmd.Flags().DurationVar(&liveWait, "wait", constants.GetLiveDebounce(), "quiet period before a query is analyzed (env LIVE_DEBOUNCE_MS)")
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Analyzes a query as it is typed",
	Long: `Reads query updates from stdin, one full query per line, and prints the
symbols once the input has been quiet for --wait. Bursts of updates print once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return live(cmd.InOrStdin(), cmd.OutOrStdout(), liveWait)
	},
}

// liveQuery is shared between the reader and the debounce timer goroutine.
type liveQuery struct {
	mu       sync.Mutex
	out      io.Writer
	query    string
	version  int
	rendered int
}

func (l *liveQuery) set(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = query
	l.version++
}

func (l *liveQuery) render() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.version == l.rendered {
		return
	}
	l.rendered = l.version

	symbols := analyze(l.query, 0)
	if symbols == nil {
		fmt.Fprintf(l.out, "%q: no symbols\n", l.query)
		return
	}
	fmt.Fprintf(l.out, "%q: %v\n", l.query, strings.Join(symbols, " | "))
}

func live(in io.Reader, out io.Writer, wait time.Duration) error {
	l := &liveQuery{out: out}
	debounced := debounce.New(wait)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		l.set(scanner.Text())
		debounced(l.render)
	}
	// the last update shouldn't depend on the timer firing before exit
	l.render()
	return scanner.Err()
}
