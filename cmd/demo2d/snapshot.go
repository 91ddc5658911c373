package main

import (
	"fmt"
	"os"

	"github.com/bocanonline/demo2d"
	"github.com/spf13/cobra"
)

var snapshotFlags struct {
	holds    []string
	fps      float64
	frames   int
	out      string
	template bool
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Replay scripted key holds offscreen and write the last frame as PNG",
	Example: `  demo2d snapshot --hold move-up=1s --out up.png
  demo2d snapshot --hold rotate-left@500ms=1s --hold zoom-in=250ms --fps 30`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	f := snapshotCmd.Flags()
	f.StringArrayVar(&snapshotFlags.holds, "hold", nil, "key hold as key=duration or key@start=duration, repeatable")
	f.Float64Var(&snapshotFlags.fps, "fps", 60, "fixed frame rate of the replay clock")
	f.IntVar(&snapshotFlags.frames, "frames", 0, "frames to run (default: until the last hold ends, at least one)")
	f.StringVarP(&snapshotFlags.out, "out", "o", "snapshot.png", "output PNG path")
	f.BoolVar(&snapshotFlags.template, "template", false, "replay the rotating square demo instead")
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	base, variant := demo2d.DefaultAppConfig(), demo2d.VariantTransformations
	if snapshotFlags.template {
		base, variant = demo2d.TemplateAppConfig(), demo2d.VariantTemplate
	}
	cfg, err := loadConfig(base)
	if err != nil {
		return err
	}

	headless := demo2d.Headless{FPS: snapshotFlags.fps}
	for _, raw := range snapshotFlags.holds {
		h, err := demo2d.ParseHold(raw)
		if err != nil {
			return err
		}
		headless.Holds = append(headless.Holds, h)
	}

	frames := snapshotFlags.frames
	if frames <= 0 {
		frames = max(headless.Frames(), 1)
	}

	app, err := demo2d.NewAppBuilder().UseModule(demo2d.HeadlessModules(cfg, variant, headless)...).Build()
	if err != nil {
		return err
	}
	defer app.Close()

	demo2d.RunFrames(app, frames)

	raster, ok := demo2d.Snapshot(app)
	if !ok {
		return fmt.Errorf("no raster renderer installed")
	}
	file, err := os.Create(snapshotFlags.out)
	if err != nil {
		return err
	}
	if err := raster.WritePNG(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", snapshotFlags.out, err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	app.Logger().Infof("wrote %s after %d frames (%v)", snapshotFlags.out, frames, demo2d.FrameDuration(frames, snapshotFlags.fps))
	return nil
}
