package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriswald/bfgo/interp"
)

var (
	flagSpec        string
	flagMemoryWords int
	flagIn          string
	flagQuiet       bool
	flagHTML        bool
)

func BFRun(cmd *cobra.Command, args []string) {
	filename := args[0]
	script, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file \"%s\": %v\n", filename, err)
		os.Exit(1)
	}

	spec := DefaultRunSpec()
	if flagSpec != "" {
		loaded, err := LoadRunSpec(flagSpec)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		spec = loaded
	}
	spec.ApplyFlags(cmd.Flags(), flagMemoryWords, flagIn, flagQuiet, flagHTML)

	cfg := interp.Config{
		MemoryWords: spec.MemoryWords,
		Stdin:       spec.Stdin,
		Quiet:       spec.Quiet,
	}
	if spec.HTML {
		cfg.Output = interp.NewHTMLSink(os.Stdout, "")
	} else {
		cfg.Output = interp.NewWriterSink(os.Stdout)
	}

	if _, err := interp.New(string(script), cfg).Interpret(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	var cmdRun = &cobra.Command{
		Use:   "run [bf file]",
		Short: "Run the given bf file",
		Long:  `This will evoke the interpreter for a specified bf text file`,
		Args:  cobra.MinimumNArgs(1),
		Run:   BFRun,
	}
	cmdRun.Flags().StringVar(&flagSpec, "spec", "", "run-spec yaml file")
	cmdRun.Flags().IntVar(&flagMemoryWords, "memory-words", interp.DefaultMemoryWords, "memory tape length in cells")
	cmdRun.Flags().StringVar(&flagIn, "in", "", "input string backing the , instruction")
	cmdRun.Flags().BoolVar(&flagQuiet, "quiet", false, "suppress output rendering")
	cmdRun.Flags().BoolVar(&flagHTML, "html", false, "render output as an html container")

	var rootCmd = &cobra.Command{Use: "bfgo"}
	rootCmd.AddCommand(cmdRun)
	rootCmd.Execute()
}
