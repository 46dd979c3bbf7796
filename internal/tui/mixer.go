// Package tui is an interactive terminal mixer: edit a few shapes with
// sliders and watch their average update live.
package tui

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shapemix/internal/config"
	"github.com/san-kum/shapemix/internal/shape"
	"github.com/san-kum/shapemix/internal/viz"
)

const (
	maxShapes     = 4
	notCoprimeMsg = "m and n are not co-prime"
)

// slider is one editable parameter and its range.
type slider struct {
	key, label string
	min, max   float64
	step       float64
}

var sliders = []slider{
	{"m", "Symmetry (m)", 2, 10, 1},
	{"n", "Period (n)", 1, 10, 1},
	{"eps", "Eccentricity (ε)", 0, 2, 0.1},
	{"p", "Phase (φ°)", -90, 90, 1},
}

type slot struct {
	values [4]float64
	shape  *shape.Shape
	view   string
}

func (s *slot) mode() config.ModeConfig {
	return config.ModeConfig{
		Symmetry:  int(s.values[0]),
		Period:    int(s.values[1]),
		Amplitude: s.values[2],
		PhaseDeg:  s.values[3],
	}
}

// Model is the mixer state. It implements tea.Model.
type Model struct {
	slots    []*slot
	focus    int
	cursor   int
	average  bool
	step     float64
	fill     float64
	cw, ch   int
	theme    viz.Theme
	styles   viz.Styles
	mix      *shape.Shape
	mixView  string
	mixSpark string
	logger   *slog.Logger
	quitting bool
}

// New builds the mixer from the first mode of each configured shape.
func New(cfg *config.Config, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.Shapes) == 0 {
		return nil, config.ErrNoShapes
	}
	theme := viz.GetTheme(cfg.Render.Theme)
	m := &Model{
		average: cfg.Average,
		step:    cfg.Step(),
		fill:    cfg.Render.Fill,
		cw:      max(cfg.Render.Width, 10),
		ch:      max(cfg.Render.Height, 5),
		theme:   theme,
		styles:  theme.Styles(),
		logger:  logger,
	}
	for i, sc := range cfg.Shapes {
		if len(sc.Modes) == 0 {
			return nil, fmt.Errorf("shape %d: %w", i, shape.ErrInvalidShapeParameters)
		}
		if len(sc.Modes) > 1 {
			logger.Warn("mixer edits only the first mode", "shape", i, "dropped", len(sc.Modes)-1)
		}
		if len(m.slots) == maxShapes {
			logger.Warn("too many shapes for the mixer", "max", maxShapes)
			break
		}
		md := sc.Modes[0]
		sl := &slot{values: [4]float64{float64(md.Symmetry), float64(md.Period), md.Amplitude, md.PhaseDeg}}
		for j := range sl.values {
			sl.values[j] = clamp(sl.values[j], sliders[j])
		}
		m.slots = append(m.slots, sl)
	}
	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

func clamp(v float64, s slider) float64 {
	return math.Max(s.min, math.Min(s.max, v))
}

// refresh rebuilds every shape, the mix and their rendered canvases.
func (m *Model) refresh() error {
	shapes := make([]*shape.Shape, len(m.slots))
	for i, sl := range m.slots {
		s, err := config.ShapeConfig{Modes: []config.ModeConfig{sl.mode()}}.Build()
		if err != nil {
			return err
		}
		sl.shape = s
		sl.view = viz.RenderShape(s, m.cw, m.ch, m.fill, m.step).Colored(m.theme.Text)
		shapes[i] = s
	}
	mix, err := shape.Add(shapes, m.average)
	if err != nil {
		return err
	}
	m.mix = mix
	m.mixView = viz.RenderShape(mix, m.cw, m.ch, m.fill, m.step).Colored(m.theme.Text)
	m.mixSpark = viz.Sparkline(mix.LogRadius(mix.Angles(m.step)), m.cw)
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % len(m.slots)
	case "shift+tab":
		m.focus = (m.focus + len(m.slots) - 1) % len(m.slots)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(sliders)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "a":
		m.average = !m.average
		m.rebuild()
	case "+":
		if len(m.slots) < maxShapes {
			cp := *m.slots[m.focus]
			m.slots = append(m.slots[:len(m.slots):len(m.slots)], &cp)
			m.focus = len(m.slots) - 1
			m.rebuild()
		}
	case "-":
		if len(m.slots) > 1 {
			slots := make([]*slot, 0, len(m.slots)-1)
			slots = append(slots, m.slots[:m.focus]...)
			m.slots = append(slots, m.slots[m.focus+1:]...)
			m.focus = min(m.focus, len(m.slots)-1)
			m.rebuild()
		}
	case "t":
		m.theme = viz.NextTheme(m.theme)
		m.styles = m.theme.Styles()
		m.rebuild()
	}
	return m, nil
}

func (m *Model) adjust(dir float64) {
	sl := m.slots[m.focus]
	s := sliders[m.cursor]
	v := clamp(sl.values[m.cursor]+dir*s.step, s)
	// snap to the slider grid
	v = math.Round(v/s.step) * s.step
	if v == sl.values[m.cursor] {
		return
	}
	sl.values[m.cursor] = v
	m.logger.Debug("parameter changed", "shape", m.focus+1, "param", s.key, "value", v)
	m.rebuild()
}

func (m *Model) rebuild() {
	if err := m.refresh(); err != nil {
		m.logger.Error("rebuild failed", "error", err)
	}
}

// betaLine is the caption shown above each shape.
func (m Model) betaLine(s *shape.Shape) string {
	md := s.Modes()[0]
	if !shape.AreCoprime(md.Period, md.Symmetry) {
		return m.styles.Warning.Render(notCoprimeMsg)
	}
	beta := math.Round(100*s.PredictedExponents()[0]) / 100
	return m.styles.Value.Render(fmt.Sprintf("β=%g", beta))
}

func (m Model) panel(i int) string {
	sl := m.slots[i]
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Shape %d", i+1)) + "  " + m.betaLine(sl.shape) + "\n")
	b.WriteString(sl.view)
	for j, s := range sliders {
		val := fmt.Sprintf("%6.1f", sl.values[j])
		line := m.styles.Label.Render(s.label) + " " + val
		if i == m.focus && j == m.cursor {
			line = m.styles.Title.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	if i == m.focus {
		return m.styles.Active.Render(b.String())
	}
	return m.styles.Panel.Render(b.String())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	panels := make([]string, 0, len(m.slots)+1)
	for i := range m.slots {
		panels = append(panels, m.panel(i))
	}

	label := "Mix (sum)"
	if m.average {
		label = "Mix (average)"
	}
	var mix strings.Builder
	mix.WriteString(m.styles.Title.Render(label) + "\n")
	mix.WriteString(m.mixView)
	mix.WriteString(m.mixSpark + "\n")
	mix.WriteString(m.styles.Label.Render("modes") + fmt.Sprintf(" %d\n", m.mix.Len()))
	mix.WriteString(m.styles.Label.Render("period") + fmt.Sprintf(" %.0f×2π\n", m.mix.FundamentalPeriod()/(2*math.Pi)))
	panels = append(panels, m.styles.Panel.Render(mix.String()))

	help := m.styles.KeyHint.Render("tab shape  ↑↓ param  ←→ adjust  + add  - remove  a avg/sum  t theme  q quit")
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...) + "\n" + help + "\n"
}

// Run starts the mixer in the alternate screen.
func Run(cfg *config.Config, logger *slog.Logger) error {
	m, err := New(cfg, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
