// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Intel2words converts an Intel HEX file to a list of 16-bit instruction
// words, one hex encoded word per line, with the bytes of every word swapped.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/embeddedgo/fwtools/intel2words/internal/ihex"
	"github.com/embeddedgo/fwtools/intel2words/internal/util"
)

const Descr = "convert an Intel HEX file to a list of byte swapped 16-bit words"

func newRootCmd(stdout io.Writer) *cobra.Command {
	var in, out string
	var debug bool
	cmd := &cobra.Command{
		Use:           "intel2words -i HEX -o OUT [-d]",
		Short:         Descr,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c := new(ihex.Converter)
			if debug {
				log := logrus.New()
				log.SetOutput(stdout)
				log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
				log.SetLevel(logrus.DebugLevel)
				c.Log = log
			}
			return ihex.ConvertFile(c, in, out)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&in, "input", "i", "", "input Intel HEX `file`")
	fs.StringVarP(&out, "output", "o", "", "output `file` (created or overwritten)")
	fs.BoolVarP(&debug, "debug", "d", false, "print the parsed records and words to stdout")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	err := newRootCmd(os.Stdout).Execute()
	util.FatalErr("intel2words", err)
}
