// Command jsrs validates and reformats JSTP Record Serialization data.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/metarhia/jsrs"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "jsrs",
		Short:         "JSTP Record Serialization tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newCheckCmd(), newFmtCmd(), newMessagesCmd())
	return root
}

// addInputFlags registers the flags shared by commands that read a record
// stream.
func addInputFlags(fs *pflag.FlagSet, nul *bool) {
	fs.BoolVar(nul, "nul", false, "treat input as a NUL-delimited record stream")
}

func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "stdin", errors.Wrap(err, "reading stdin")
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], errors.Wrapf(err, "reading %s", args[0])
}

func newCheckCmd() *cobra.Command {
	var nul bool
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a record or record stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(args)
			if err != nil {
				return err
			}
			if nul {
				var records []*jsrs.Value
				tail, err := jsrs.ParseMessages(data, &records)
				if err != nil {
					return errors.Wrap(err, name)
				}
				log.Debugf("%s: %d records, %d tail bytes", name, len(records), len(tail))
			} else {
				if _, err := jsrs.Parse(data); err != nil {
					return errors.Wrap(err, name)
				}
			}
			log.Infof("%s: ok", name)
			return nil
		},
	}
	addInputFlags(cmd.Flags(), &nul)
	return cmd
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite a record in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(args)
			if err != nil {
				return err
			}
			v, err := jsrs.Parse(data)
			if err != nil {
				return errors.Wrap(err, name)
			}
			s, ok := jsrs.Stringify(v)
			if !ok {
				return errors.Errorf("%s: value has no serialized form", name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	return cmd
}

func newMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages [file]",
		Short: "Split a NUL-delimited stream into canonical records, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(args)
			if err != nil {
				return err
			}
			var records []*jsrs.Value
			tail, err := jsrs.ParseMessages(data, &records)
			if err != nil {
				return errors.Wrap(err, name)
			}
			out := cmd.OutOrStdout()
			for _, r := range records {
				s, _ := jsrs.Stringify(r)
				fmt.Fprintln(out, s)
			}
			if len(bytes.TrimSpace(tail)) > 0 {
				log.Warnf("%s: %d unterminated tail bytes", name, len(tail))
			}
			return nil
		},
	}
	return cmd
}
