package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-primitives/pkg/compression"
)

func compressCmd(a *app) *cobra.Command {
	var (
		files ioFlags
		stats bool
	)
	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Compress the input into a zstd frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := files.read(cmd)
			if err != nil {
				return err
			}
			blob, err := a.svc.Compress(data)
			if err != nil {
				return err
			}
			if stats {
				st, err := compression.NewStats(len(data), len(blob))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%d -> %d bytes (ratio %.2f, saved %.1f%%)\n",
					st.Uncompressed, st.Compressed, st.Ratio, st.SpaceSavings*100)
			}
			return files.write(cmd, blob)
		},
	}
	files.register(cmd)
	cmd.Flags().BoolVar(&stats, "stats", false, "print sizes and ratio on stderr")
	return cmd
}

func decompressCmd(a *app) *cobra.Command {
	var files ioFlags
	cmd := &cobra.Command{
		Use:   "decompress",
		Short: "Decompress a zstd frame from the input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := files.read(cmd)
			if err != nil {
				return err
			}
			data, err := a.svc.Decompress(blob)
			if err != nil {
				return err
			}
			return files.write(cmd, data)
		},
	}
	files.register(cmd)
	return cmd
}

func ratioCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ratio ORIGINAL COMPRESSED",
		Short: "Print ORIGINAL/COMPRESSED, or 0 for an empty original",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := make([]int, 2)
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid size %q: %w", arg, err)
				}
				sizes[i] = n
			}
			ratio, err := a.svc.CompressionRatio(sizes[0], sizes[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", ratio)
			return err
		},
	}
}
