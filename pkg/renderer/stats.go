package renderer

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"

	"github.com/df07/go-pathtracer/pkg/kdtree"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Scene           string
	Width           int
	Height          int
	SamplesPerPixel int
	TotalSamples    int // Camera rays traced
	Threads         int
	Objects         int
	Lamps           int
	TreeEnabled     bool
	Tree            kdtree.Stats
	BuildTime       time.Duration // K-d tree construction
	Duration        time.Duration // Wall-clock time of the whole render
	MeanLuminance   float64
	MaxLuminance    float64
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// WriteTable renders the statistics as a two-column table
func (s RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.Append([]string{"Scene", s.Scene})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Samples/pixel", fmt.Sprintf("%d", s.SamplesPerPixel)})
	table.Append([]string{"Threads", fmt.Sprintf("%d", s.Threads)})
	table.Append([]string{"Objects", fmt.Sprintf("%d", s.Objects)})
	table.Append([]string{"Lamps", fmt.Sprintf("%d", s.Lamps)})
	if s.TreeEnabled {
		table.Append([]string{"K-d tree nodes", fmt.Sprintf("%d (%d leaves, depth %d)", s.Tree.Nodes, s.Tree.Leaves, s.Tree.MaxDepth)})
		table.Append([]string{"K-d tree leaf size", fmt.Sprintf("%.2f avg, %d max", s.Tree.AvgLeafSize, s.Tree.MaxLeafSize)})
		table.Append([]string{"K-d tree build", s.BuildTime.String()})
	} else {
		table.Append([]string{"K-d tree", "disabled"})
	}
	table.Append([]string{"Mean luminance", fmt.Sprintf("%.4f", s.MeanLuminance)})
	table.Append([]string{"Max luminance", fmt.Sprintf("%.4f", s.MaxLuminance)})
	table.Append([]string{"Samples/sec", fmt.Sprintf("%.0f", s.SamplesPerSecond())})
	table.SetFooter([]string{"Render time", s.Duration.String()})
	table.Render()
}

// DefaultThreads returns the number of logical CPUs
func DefaultThreads() int {
	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		return runtime.NumCPU()
	}
	return count
}
