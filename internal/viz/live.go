package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fraclab/internal/field"
	"github.com/san-kum/fraclab/internal/fractal"
)

const (
	defaultPreviewWidth = 100
	minIterations       = 1
	maxIterations       = 1 << 16
)

// Model is the interactive explorer: pan and zoom a region, adjust the
// iteration budget and cycle kernels, re-rendering on every change.
type Model struct {
	gen        *field.Generator
	kernels    []fractal.Kernel
	kernelIdx  int
	region     fractal.Region
	home       fractal.Region
	size       int32
	iterations int32

	f       *field.Field
	elapsed time.Duration
	err     error

	previewWidth int
}

// NewModel builds the explorer state and renders the first frame.
// kernelName selects the starting kernel; tab cycles from there.
func NewModel(kernelName string, size, iterations int32, workers int, region fractal.Region) Model {
	gen := field.NewGenerator()
	if workers > 0 {
		gen.Workers = workers
	}

	kernels := []fractal.Kernel{
		fractal.NewWide(),
		fractal.NewMandelbrot(),
		fractal.NewJulia(fractal.DefaultJuliaC),
	}
	kernelIdx := 0
	for i, k := range kernels {
		if k.Name() == kernelName {
			kernelIdx = i
			break
		}
	}

	m := Model{
		gen:          gen,
		kernels:      kernels,
		kernelIdx:    kernelIdx,
		region:       region,
		home:         region,
		size:         size,
		iterations:   iterations,
		previewWidth: defaultPreviewWidth,
	}
	m.regenerate()
	return m
}

func (m *Model) regenerate() {
	m.gen.Kernel = m.kernels[m.kernelIdx]
	m.gen.Region = m.region

	start := time.Now()
	f, err := m.gen.NewField(context.Background(), m.size, m.iterations)
	m.elapsed = time.Since(start)

	m.f = f
	m.err = err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 40
		if width < 20 {
			width = 20
		}
		m.previewWidth = width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.region = m.region.Pan(-0.1, 0)
		case "right", "l":
			m.region = m.region.Pan(0.1, 0)
		case "up", "k":
			m.region = m.region.Pan(0, -0.1)
		case "down", "j":
			m.region = m.region.Pan(0, 0.1)
		case "+", "=":
			m.region = m.region.Zoom(0.8)
		case "-", "_":
			m.region = m.region.Zoom(1.25)
		case "[":
			if m.iterations/2 >= minIterations {
				m.iterations /= 2
			}
		case "]":
			if m.iterations*2 <= maxIterations {
				m.iterations *= 2
			}
		case "tab":
			m.kernelIdx = (m.kernelIdx + 1) % len(m.kernels)
		case "r":
			m.region = m.home
		default:
			return m, nil
		}
		m.regenerate()
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	header := headerStyle.Render("fraclab explorer")

	var preview string
	if m.err != nil {
		preview = errorStyle.Render(m.err.Error())
	} else {
		preview = Render(m.f, m.iterations, m.previewWidth)
	}

	var stats strings.Builder
	writeStat(&stats, "kernel", m.kernels[m.kernelIdx].Name())
	writeStat(&stats, "size", fmt.Sprintf("%d", m.size))
	writeStat(&stats, "iterations", fmt.Sprintf("%d", m.iterations))
	writeStat(&stats, "center", fmt.Sprintf("%.6f, %.6f", (m.region.XMin+m.region.XMax)/2, (m.region.YMin+m.region.YMax)/2))
	writeStat(&stats, "extent", fmt.Sprintf("%.2e", m.region.Width()))
	writeStat(&stats, "render", m.elapsed.Round(time.Millisecond).String())
	writeStat(&stats, "workers", fmt.Sprintf("%d", m.gen.Workers))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		previewStyle.Render(preview),
		statsStyle.Render(stats.String()),
	)

	help := helpStyle.Render("arrows/hjkl pan · +/- zoom · [/] iterations · tab kernel · r reset · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

func writeStat(sb *strings.Builder, label, value string) {
	sb.WriteString(labelStyle.Render(label))
	sb.WriteString(valueStyle.Render(value))
	sb.WriteString("\n")
}

// RunLive starts the explorer and blocks until the user quits.
func RunLive(kernelName string, size, iterations int32, workers int, region fractal.Region) error {
	p := tea.NewProgram(NewModel(kernelName, size, iterations, workers, region), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
