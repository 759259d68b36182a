package main

import (
	"bytes"
	"strings"
	"testing"

	"nanoshader/render"
	"nanoshader/shader"
)

func TestProbeMatchesShader(t *testing.T) {
	coord := shader.V2[shader.Scalar](0.25, 0.5)
	samples := probe(shader.Cosine, coord, render.TimeStep, 5)
	if len(samples) != 5 {
		t.Fatalf("len = %d, want 5", len(samples))
	}
	var tm shader.Scalar
	for i, s := range samples {
		if s.frame != i || s.t != tm {
			t.Fatalf("sample %d = frame %d t %v, want t %v", i, s.frame, s.t, tm)
		}
		if want := shader.Cosine(coord, tm); s.color != want {
			t.Fatalf("sample %d color = %v, want %v", i, s.color, want)
		}
		tm += render.TimeStep
	}
}

func TestChannelsTranspose(t *testing.T) {
	samples := []sample{
		{color: shader.V3[shader.Scalar](1, 0.5, 0)},
		{color: shader.V3[shader.Scalar](0, 0.25, 1)},
	}
	ch := channels(samples)
	if len(ch) != 3 || len(ch[0]) != 2 {
		t.Fatalf("channels shape = %dx%d", len(ch), len(ch[0]))
	}
	if ch[0][0] != 1 || ch[1][1] != 0.25 || ch[2][1] != 1 {
		t.Fatalf("channels = %v", ch)
	}
}

func TestWriteTableOrigin(t *testing.T) {
	samples := probe(shader.Cosine, shader.V2[shader.Scalar](0, 0), render.TimeStep, 10)
	var buf bytes.Buffer
	if err := writeTable(&buf, samples, 3); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("table lines = %d, want header + 3", len(lines))
	}
	if !strings.Contains(lines[1], "#ff4a2c") || !strings.Contains(lines[1], "0xfa45") {
		t.Fatalf("origin row = %q", lines[1])
	}
}

func TestPlotHasCaption(t *testing.T) {
	samples := probe(shader.Cosine, shader.V2[shader.Scalar](0.1, 0.9), render.TimeStep, 20)
	out := plot(samples, 40, 6, "probe caption")
	if !strings.Contains(out, "probe caption") {
		t.Fatalf("plot missing caption:\n%s", out)
	}
}
