package gravlens

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Run renders the frame described by the config file and writes it out
// as a PNG.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	sc, err := cfg.Scene()
	if err != nil {
		return err
	}
	sc.RecordStates = RecordStates

	var d Dispatcher = ParallelDispatcher{}
	if SerialRender {
		d = SerialDispatcher{}
	}

	DebugLog("rendering %dx%d, rs=%.4g, disk [%.4g, %.4g]",
		cfg.Width, cfg.Height, sc.Hole.Rs, sc.Disk.InnerR, sc.Disk.OuterR)

	stats := RenderFrame(sc, d)
	fmt.Printf("[INFO] traced %s rays, %s geodesic steps in %s\n",
		humanize.Comma(stats.Rays), humanize.Comma(stats.Steps), stats.Elapsed)
	fmt.Printf("[INFO] captured %s, disk %s, escaped %s, exhausted %s\n",
		humanize.Comma(stats.Captured), humanize.Comma(stats.DiskHits),
		humanize.Comma(stats.Escaped), humanize.Comma(stats.Exhausted))

	if err := SavePNG16(sc, cfg.PNGOut, cfg.Gamma); err != nil {
		return err
	}
	fmt.Printf("[INFO] saved %s\n", cfg.PNGOut)
	return nil
}
