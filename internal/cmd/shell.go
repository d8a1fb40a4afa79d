// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mtreilly/arc-shelf/internal/library"
	"github.com/mtreilly/arc-shelf/internal/view"
)

const shellPrompt = "shelf> "

var (
	// ErrNoBook is returned when an id prefix matches no book.
	ErrNoBook = errors.New("no book with that id")
	// ErrAmbiguousID is returned when an id prefix matches several books.
	ErrAmbiguousID = errors.New("id prefix matches more than one book")
)

// session is one interactive shell: the store plus this session's view.
type session struct {
	store library.Shelf
	view  *view.View
}

func newSession(store library.Shelf) *session {
	return &session{store: store, view: view.New(store)}
}

func (s *session) close() {
	s.view.Close()
}

// resolve expands a unique id prefix to a full book id. A blank prefix
// matches nothing.
func (s *session) resolve(prefix string) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", fmt.Errorf("%w: %q", ErrNoBook, prefix)
	}
	var match string
	for _, b := range s.store.Snapshot().Books {
		if b.ID == prefix {
			return b.ID, nil
		}
		if strings.HasPrefix(b.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
			}
			match = b.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrNoBook, prefix)
	}
	return match, nil
}

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: `Start an interactive inventory session in the terminal.

Type 'help' for the list of commands and 'exit' to leave. Everything is
forgotten when the session ends.

Example session:
  shelf> add --title Dune --author "Frank Herbert" --pages 412
  shelf> checkout 1f3a
  shelf> search herbert
  shelf> remove 1f3a`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := newSession(app.Store)
			defer sess.close()

			fd := int(os.Stdin.Fd())
			if !term.IsTerminal(fd) {
				return runShell(cmd.Context(), sess, newScanReader(cmd.InOrStdin()), cmd.OutOrStdout())
			}

			oldState, err := term.MakeRaw(fd)
			if err != nil {
				return fmt.Errorf("enter raw mode: %w", err)
			}
			defer term.Restore(fd, oldState)

			t := term.NewTerminal(struct {
				io.Reader
				io.Writer
			}{os.Stdin, os.Stdout}, shellPrompt)
			if w, h, err := term.GetSize(fd); err == nil {
				_ = t.SetSize(w, h)
			}
			fmt.Fprintln(t, "arc-shelf session. Type 'help' for commands, 'exit' to quit.")
			return runShell(cmd.Context(), sess, t, t)
		},
	}
}

// lineReader yields one input line per call and io.EOF at the end.
type lineReader interface {
	ReadLine() (string, error)
}

type scanReader struct {
	sc *bufio.Scanner
}

func newScanReader(r io.Reader) *scanReader {
	return &scanReader{sc: bufio.NewScanner(r)}
}

func (r *scanReader) ReadLine() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// runShell executes lines until exit, EOF or context cancellation. Command
// errors are printed and the session continues.
func runShell(ctx context.Context, sess *session, in lineReader, out io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line, err := in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}

		args, err := shellwords.Parse(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		if err := execLine(ctx, sess, args, out); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// execLine runs one shell line. The command tree is rebuilt for every line
// so flag values never leak from one line into the next.
func execLine(ctx context.Context, sess *session, args []string, out io.Writer) error {
	root := newLineRoot(sess)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)
	return root.ExecuteContext(ctx)
}

func newLineRoot(sess *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "shelf>",
		Short:         "Inventory session commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(newAddCmd(sess))
	root.AddCommand(newListCmd(sess))
	root.AddCommand(newSearchCmd(sess))
	root.AddCommand(newCheckoutCmd(sess))
	root.AddCommand(newReturnCmd(sess))
	root.AddCommand(newToggleCmd(sess))
	root.AddCommand(newEditCmd(sess))
	root.AddCommand(newRemoveCmd(sess))
	root.AddCommand(newStatsCmd(sess))

	return root
}
