package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-audio/internal/model"
	"github.com/ytget/yt-audio/internal/platform"
)

func (c *cli) newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <url>",
		Short: "Show whether a URL is a video, a playlist or unrecognized",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runClassify,
	}
}

func (c *cli) runClassify(_ *cobra.Command, args []string) error {
	ref := trimArg(args[0])
	kind := platform.Classify(ref)

	rows := [][]string{{"kind", kind.String()}}
	switch kind {
	case model.ReferenceCollection:
		if id, err := platform.ExtractPlaylistID(ref); err == nil {
			rows = append(rows, []string{"playlist", id})
		}
		if id, err := platform.ExtractVideoID(ref); err == nil {
			rows = append(rows, []string{"video", id})
		}
	case model.ReferenceSingle:
		if id, err := platform.ExtractVideoID(ref); err == nil {
			rows = append(rows, []string{"video", id})
		}
	default:
		fmt.Fprintln(c.stdout, renderTable([]string{"Field", "Value"}, rows, nil))
		return fmt.Errorf("invalid YouTube URL: %q", ref)
	}

	fmt.Fprintln(c.stdout, renderTable([]string{"Field", "Value"}, rows, nil))
	return nil
}
