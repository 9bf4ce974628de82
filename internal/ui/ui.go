package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/koki-develop/asciify/internal/ascii"
	"github.com/koki-develop/asciify/internal/config"
	"github.com/koki-develop/asciify/internal/util"
	"github.com/muesli/termenv"
)

const (
	widthStep  = 4
	aspectStep = 0.05
	minAspect  = 0.05
	maxAspect  = 4.0
	maxWidth   = 1000
)

type Option struct {
	Image  image.Image
	Name   string
	Config *config.Config
	Params ascii.Params
}

func Start(opt *Option) error {
	m := newModel(opt)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

var _ tea.Model = &model{}

type model struct {
	converter *ascii.Converter
	clipboard func(string)

	img    image.Image
	name   string
	params ascii.Params

	presets []string
	ramps   map[string]string
	preset  int

	art    ascii.Art
	artErr error
	status string

	state        modelState
	windowHeight int
	windowWidth  int

	viewport viewport.Model
	keys     keyMap
	help     help.Model
}

func newModel(opt *Option) *model {
	cfg := opt.Config
	if cfg == nil {
		cfg = config.Default()
	}

	m := &model{
		converter: ascii.NewConverter(),
		clipboard: termenv.Copy,

		img:    opt.Image,
		name:   opt.Name,
		params: opt.Params,

		presets: cfg.PresetNames(),
		ramps:   cfg.Presets,
		preset:  -1,

		state:    modelStateLoading,
		viewport: viewport.New(0, 0),
		keys:     newKeyMap(),
		help:     help.New(),
	}
	for i, name := range m.presets {
		if cfg.Presets[name] == m.params.Charset {
			m.preset = i
			break
		}
	}
	m.regenerate()
	return m
}

type modelState string

const (
	modelStateLoading modelState = "loading"
	modelStateViewing modelState = "viewing"
)

type copiedMsg struct{}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.Wider):
			m.params.MaxWidth = util.Clamp(m.params.Normalize().MaxWidth+widthStep, 1, maxWidth)
		case key.Matches(msg, m.keys.Narrower):
			m.params.MaxWidth = util.Clamp(m.params.Normalize().MaxWidth-widthStep, 1, maxWidth)
		case key.Matches(msg, m.keys.Taller):
			m.params.AspectCorrection = util.Clamp(m.params.Normalize().AspectCorrection+aspectStep, minAspect, maxAspect)
		case key.Matches(msg, m.keys.Shorter):
			m.params.AspectCorrection = util.Clamp(m.params.Normalize().AspectCorrection-aspectStep, minAspect, maxAspect)
		case key.Matches(msg, m.keys.Invert):
			m.params.Invert = !m.params.Invert
		case key.Matches(msg, m.keys.Charset):
			m.nextPreset()
		case key.Matches(msg, m.keys.Filter):
			m.params.Filter = m.params.Filter.Next()
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyArt()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		m.status = ""
		m.regenerate()
		return m, nil

	case tea.WindowSizeMsg:
		m.windowHeight = msg.Height
		m.windowWidth = msg.Width
		m.state = modelStateViewing
		m.resize()
		return m, nil

	case copiedMsg:
		m.status = "copied to clipboard"
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	switch m.state {
	case modelStateLoading:
		return "loading..."
	case modelStateViewing:
		return m.viewport.View() + "\n" + m.statusView() + "\n" + m.help.View(m.keys)
	}

	return ""
}

func (m *model) regenerate() {
	m.art, m.artErr = m.converter.ImageToASCII(m.img, m.params)
	m.viewport.SetContent(m.artView())
}

func (m *model) resize() {
	helpHeight := strings.Count(m.help.View(m.keys), "\n") + 1
	m.help.Width = m.windowWidth
	m.viewport.Width = m.windowWidth
	m.viewport.Height = util.Max(1, m.windowHeight-helpHeight-2)
	m.viewport.SetContent(m.artView())
}

func (m *model) artView() string {
	if m.artErr != nil {
		return "Error: " + m.artErr.Error()
	}

	leftPad := strings.Repeat(" ", util.Max(0, (m.windowWidth-m.art.Width())/2))
	b := new(strings.Builder)
	for _, line := range m.art {
		b.WriteString(leftPad)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m *model) statusView() string {
	p := m.params.Normalize()
	b := new(strings.Builder)

	b.WriteString(color.New(color.BgBlue, color.FgWhite).Sprintf(" %s ", m.name))
	fmt.Fprintf(b, " %dx%d  aspect %.2f  %s  %s", m.art.Width(), m.art.Height(), p.AspectCorrection, p.Filter, m.presetName())
	if p.Invert {
		b.WriteString(color.New(color.FgYellow).Sprint("  inverted"))
	}
	if m.status != "" {
		b.WriteString(color.New(color.FgGreen).Sprintf("  %s", m.status))
	}

	return b.String()
}

func (m *model) presetName() string {
	if m.preset < 0 || m.preset >= len(m.presets) {
		return fmt.Sprintf("%q", m.params.Charset)
	}
	return m.presets[m.preset]
}

func (m *model) nextPreset() {
	if len(m.presets) == 0 {
		return
	}
	m.preset = (m.preset + 1) % len(m.presets)
	m.params.Charset = m.ramps[m.presets[m.preset]]
}

// copyArt puts the art on the clipboard exactly as rendered, without the
// centering padding.
func (m *model) copyArt() tea.Cmd {
	if m.artErr != nil || len(m.art) == 0 {
		return nil
	}
	s := m.art.String()
	return func() tea.Msg {
		m.clipboard(s)
		return copiedMsg{}
	}
}
