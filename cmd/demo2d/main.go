package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/bocanonline/demo2d"
	"github.com/spf13/cobra"
)

func init() {
	// glfw and the wgpu surface must stay on the main OS thread.
	runtime.LockOSThread()
}

type flags struct {
	config string
	debug  bool
	width  int
	height int
}

var global flags

var rootCmd = &cobra.Command{
	Use:   "demo2d",
	Short: "Interactive 2D transformation demo",
	Long: `demo2d draws a pair of axes, a fixed orange square and a user controlled shape.
The arrow keys, < and > move, rotate and scale the shape; W/A/S/D, Q/E and Z/X move,
rotate and zoom the camera. O and H reset the camera and the shape, R/G/B/Space pick a
color and 1-4 pick the shape. Escape quits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindowed(demo2d.DefaultAppConfig(), demo2d.VariantTransformations)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.config, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "log every key press")
	rootCmd.PersistentFlags().IntVar(&global.width, "width", 0, "framebuffer width in pixels")
	rootCmd.PersistentFlags().IntVar(&global.height, "height", 0, "framebuffer height in pixels")
}

// loadConfig applies the config file and then the command line flags on top of base.
func loadConfig(base demo2d.AppConfig) (demo2d.AppConfig, error) {
	cfg, err := demo2d.LoadConfig(global.config, base)
	if err != nil {
		return cfg, err
	}
	if global.width > 0 {
		cfg.Window.Width = global.width
	}
	if global.height > 0 {
		cfg.Window.Height = global.height
	}
	cfg.Debug = cfg.Debug || global.debug
	return cfg, cfg.Validate()
}

func runWindowed(base demo2d.AppConfig, v demo2d.Variant) error {
	cfg, err := loadConfig(base)
	if err != nil {
		return err
	}
	app, err := demo2d.NewAppBuilder().UseModule(demo2d.WindowedModules(cfg, v)...).Build()
	if err != nil {
		return err
	}
	app.Run()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
