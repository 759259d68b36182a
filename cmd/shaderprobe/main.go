// Command shaderprobe samples the color field at one point over time and plots it.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/bits"
	"os"
	"text/tabwriter"

	"nanoshader/render"
	"nanoshader/shader"

	"github.com/guptarohit/asciigraph"
)

type sample struct {
	frame int
	t     shader.Scalar
	color shader.Vec3[shader.Scalar]
}

func main() {
	var (
		u      = flag.Float64("u", 0, "Normalized x coordinate in [0,1).")
		v      = flag.Float64("v", 0, "Normalized y coordinate in [0,1).")
		frames = flag.Int("frames", 64, "Number of frames to sample.")
		step   = flag.Float64("step", float64(render.TimeStep), "Time advance per frame.")
		rows   = flag.Int("rows", 8, "Rows of the value table (0 = none).")
		height = flag.Int("height", 12, "Plot height in lines.")
		width  = flag.Int("width", 80, "Plot width in columns.")
	)
	flag.Parse()

	if *u < 0 || *u >= 1 || *v < 0 || *v >= 1 {
		fatalf("u and v must be in [0,1), got %v,%v", *u, *v)
	}
	if *frames <= 1 {
		fatalf("frames must be > 1, got %d", *frames)
	}

	coord := shader.V2(shader.Scalar(*u), shader.Scalar(*v))
	samples := probe(shader.Cosine, coord, shader.Scalar(*step), *frames)

	if *rows > 0 {
		if err := writeTable(os.Stdout, samples, *rows); err != nil {
			fatalf("table: %v", err)
		}
		fmt.Println()
	}
	fmt.Println(plot(samples, *width, *height, fmt.Sprintf("cosine shader at (%.3f, %.3f)", *u, *v)))
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// probe evaluates f at coord for n frames, advancing time the way the render loop does.
func probe(f shader.Func, coord shader.Vec2[shader.Scalar], step shader.Scalar, n int) []sample {
	out := make([]sample, 0, n)
	var t shader.Scalar
	for i := 0; i < n; i++ {
		out = append(out, sample{frame: i, t: t, color: f(coord, t)})
		t += step
	}
	return out
}

// channels splits samples into per-channel series for plotting.
func channels(samples []sample) [][]float64 {
	series := make([][]float64, 3)
	for i := range series {
		series[i] = make([]float64, len(samples))
	}
	for j, s := range samples {
		for i := 0; i < 3; i++ {
			series[i][j] = float64(s.color[i])
		}
	}
	return series
}

func plot(samples []sample, width, height int, caption string) string {
	return asciigraph.PlotMany(channels(samples),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.SeriesLegends("r", "g", "b"),
		asciigraph.Caption(caption),
	)
}

func writeTable(w io.Writer, samples []sample, rows int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "frame\tt\tr\tg\tb\trgb888\trgb565")
	for i, s := range samples {
		if i >= rows {
			break
		}
		tc := shader.ToRGB888(s.color)
		native := bits.ReverseBytes16(uint16(shader.ToDevice(s.color)))
		fmt.Fprintf(tw, "%d\t%.1f\t%.4f\t%.4f\t%.4f\t#%02x%02x%02x\t0x%04x\n",
			s.frame, s.t, s.color[0], s.color[1], s.color[2], tc.R, tc.G, tc.B, native)
	}
	return tw.Flush()
}
