// Command ffmsindex indexes a media file with FFMS2 and writes the
// index to disk, optionally dumping timecodes and keyframe lists for
// every video track.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gomedia/ffms2"
)

type indexArgs struct {
	force      bool
	verbose    int
	progress   bool
	timecodes  bool
	keyframes  bool
	trackMask  int64
	audioError int
}

func main() {
	args := &indexArgs{}

	cmd := &cobra.Command{
		Use:          "ffmsindex [flags] inputfile [outputfile]",
		Short:        "Index a media file with FFMS2",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			return run(args, positional)
		},
	}

	cmd.Flags().BoolVarP(&args.force, "force", "f", false, "overwrite an existing index file")
	cmd.Flags().IntVarP(&args.verbose, "verbose", "v", 0, "FFmpeg verbosity level (0-4)")
	cmd.Flags().BoolVarP(&args.progress, "progress", "p", false, "print indexing progress")
	cmd.Flags().BoolVarP(&args.timecodes, "timecodes", "c", false, "write timecodes for video tracks to outputfile_trackNN.tc.txt")
	cmd.Flags().BoolVarP(&args.keyframes, "keyframes", "k", false, "write keyframes for video tracks to outputfile_trackNN.kf.txt")
	cmd.Flags().Int64VarP(&args.trackMask, "index", "t", 0, "audio track indexing mask (-1 indexes all, 0 none)")
	cmd.Flags().IntVarP(&args.audioError, "audio-decoding", "s", 0, "audio decoding error handling (0=ignore 1=stop track 2=clear track 3=abort)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose int) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if verbose == 0 {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func logLevelFor(verbose int) ffms2.LogLevel {
	switch verbose {
	case 0:
		return ffms2.LogQuiet
	case 1:
		return ffms2.LogWarning
	case 2:
		return ffms2.LogInfo
	case 3:
		return ffms2.LogVerbose
	default:
		return ffms2.LogDebug
	}
}

func errorHandlingFor(mode int) (ffms2.IndexErrorHandling, error) {
	switch mode {
	case 0:
		return ffms2.IEHIgnore, nil
	case 1:
		return ffms2.IEHStopTrack, nil
	case 2:
		return ffms2.IEHClearTrack, nil
	case 3:
		return ffms2.IEHAbort, nil
	default:
		return 0, errors.New("invalid audio decoding error handling mode")
	}
}

func run(args *indexArgs, positional []string) error {
	log := newLogger(args.verbose)
	defer log.Sync() //nolint:errcheck

	input := positional[0]
	output := input + ".ffindex"
	if len(positional) == 2 {
		output = positional[1]
	}

	errorHandling, err := errorHandlingFor(args.audioError)
	if err != nil {
		return err
	}

	if _, err := os.Stat(output); err == nil && !args.force {
		return fmt.Errorf("index file %s already exists, use -f to overwrite it", output)
	}

	ffms2.SetLogLevel(logLevelFor(args.verbose))
	log.Info("indexing", zap.String("input", input), zap.String("output", output),
		zap.Stringer("ffms2", ffms2.LinkedVersion()))

	indexer, err := ffms2.NewIndexer(input)
	if err != nil {
		return err
	}
	defer indexer.Close()

	if format, err := indexer.FormatName(); err == nil {
		log.Info("container", zap.String("format", format))
	}

	if args.progress {
		lastPercent := -1
		if err := indexer.SetProgressCallback(func(current, total int64) bool {
			if total <= 0 {
				return false
			}
			percent := int(current * 100 / total)
			if percent > lastPercent {
				lastPercent = percent
				fmt.Printf("Indexing, please wait... %d%%\r", percent)
			}
			return false
		}); err != nil {
			return err
		}
	}

	if args.trackMask == -1 {
		if err := indexer.TrackTypeIndexSettings(ffms2.TypeAudio, true); err != nil {
			return err
		}
	} else {
		for i := 0; i < 64; i++ {
			if (args.trackMask>>i)&1 != 0 {
				if err := indexer.TrackIndexSettings(i, true); err != nil {
					log.Warn("cannot enable track indexing", zap.Int("track", i), zap.Error(err))
				}
			}
		}
	}

	index, err := indexer.DoIndexing(errorHandling)
	if err != nil {
		return err
	}
	defer index.Close()
	if args.progress {
		fmt.Println()
	}

	if args.timecodes {
		if err := writeTimecodes(log, index, output); err != nil {
			return err
		}
	}
	if args.keyframes {
		if err := writeKeyframes(log, index, output); err != nil {
			return err
		}
	}

	if err := index.WriteIndex(output); err != nil {
		return err
	}
	log.Info("index written", zap.String("path", output))
	return nil
}

// videoTracks calls fn for every indexed video track.
func videoTracks(index *ffms2.Index, fn func(n int, track *ffms2.Track) error) error {
	numTracks, err := index.NumTracks()
	if err != nil {
		return err
	}
	for n := 0; n < numTracks; n++ {
		track, err := index.Track(n)
		if err != nil {
			return err
		}
		trackType, err := track.Type()
		if err != nil {
			return err
		}
		frames, err := track.NumFrames()
		if err != nil {
			return err
		}
		if trackType != ffms2.TypeVideo || frames == 0 {
			continue
		}
		if err := fn(n, track); err != nil {
			return err
		}
	}
	return nil
}

func writeTimecodes(log *zap.Logger, index *ffms2.Index, output string) error {
	return videoTracks(index, func(n int, track *ffms2.Track) error {
		path := fmt.Sprintf("%s_track%02d.tc.txt", output, n)
		if err := track.WriteTimecodes(path); err != nil {
			log.Warn("cannot write timecodes", zap.String("path", path), zap.Error(err))
			return nil
		}
		log.Info("timecodes written", zap.String("path", path))
		return nil
	})
}

func writeKeyframes(log *zap.Logger, index *ffms2.Index, output string) error {
	return videoTracks(index, func(n int, track *ffms2.Track) error {
		path := fmt.Sprintf("%s_track%02d.kf.txt", output, n)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := fmt.Fprintf(f, "# keyframe format v1\nfps 0\n"); err != nil {
			return err
		}
		frames, err := track.NumFrames()
		if err != nil {
			return err
		}
		for i := 0; i < frames; i++ {
			info, err := track.FrameInfo(i)
			if err != nil {
				return err
			}
			if info.KeyFrame {
				if _, err := fmt.Fprintln(f, i); err != nil {
					return err
				}
			}
		}
		log.Info("keyframes written", zap.String("path", path))
		return nil
	})
}
