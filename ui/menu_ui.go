package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/runnin-gunner/client/persistence"
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/automoto/runnin-gunner/shared/leveldata"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the title screen: level select plus the sound and display settings.
type MenuUI struct {
	UI *ebitenui.UI

	Campaign *leveldata.Campaign
	Settings persistence.Settings
	Level    int

	// Callbacks
	OnPlay            func(level int)
	OnQuit            func()
	OnSettingsChanged func(persistence.Settings)

	levelLabel       *widget.Label
	volumeButton     *widget.Button
	muteButton       *widget.Button
	fullscreenButton *widget.Button
	resolutionButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewMenuUI creates the menu starting at the last level the player reached.
func NewMenuUI(campaign *leveldata.Campaign, settings persistence.Settings, onPlay func(int), onQuit func(), onChanged func(persistence.Settings)) (*MenuUI, error) {
	mui := &MenuUI{
		Campaign:          campaign,
		Settings:          settings,
		Level:             campaign.Wrap(settings.LastLevel),
		OnPlay:            onPlay,
		OnQuit:            onQuit,
		OnSettingsChanged: onChanged,
	}
	if err := mui.loadFonts(); err != nil {
		return nil, err
	}
	mui.buildUI()
	return mui, nil
}

func (mui *MenuUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("menu font: %w", err)
	}
	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 48}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 22}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 16}
	return nil
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))
	contentContainer.AddChild(mui.buildLevelRow())
	contentContainer.AddChild(mui.button("Play", color.RGBA{40, 100, 40, 255}, func() {
		if mui.OnPlay != nil {
			mui.OnPlay(mui.Level)
		}
	}))
	contentContainer.AddChild(mui.buildSettingsContainer())
	contentContainer.AddChild(mui.button("Quit", color.RGBA{60, 60, 80, 255}, func() {
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("A/D move  Space jump  Arrows shoot  Backspace restart  Enter skip", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 170, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)
	mui.UI = &ebitenui.UI{Container: rootContainer}
}

func (mui *MenuUI) buildLevelRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	row.AddChild(mui.smallButton("<", func() { mui.Level = mui.Campaign.Wrap(mui.Level - 1) }))
	mui.levelLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 200, 255},
		}),
	)
	row.AddChild(mui.levelLabel)
	row.AddChild(mui.smallButton(">", func() { mui.Level = mui.Campaign.Wrap(mui.Level + 1) }))
	return row
}

func (mui *MenuUI) buildSettingsContainer() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	mui.volumeButton = mui.smallButton("", func() {
		mui.Settings.SFXVolume = NextVolume(mui.Settings.SFXVolume)
		mui.changed()
	})
	mui.muteButton = mui.smallButton("", func() {
		mui.Settings.Muted = !mui.Settings.Muted
		mui.changed()
	})
	mui.fullscreenButton = mui.smallButton("", func() {
		mui.Settings.Fullscreen = !mui.Settings.Fullscreen
		mui.changed()
	})
	mui.resolutionButton = mui.smallButton("", func() {
		mui.Settings.ResolutionIndex = (mui.Settings.ResolutionIndex + 1) % len(cfg.SettingsMenu.Resolutions)
		mui.changed()
	})
	panel.AddChild(mui.volumeButton)
	panel.AddChild(mui.muteButton)
	panel.AddChild(mui.fullscreenButton)
	panel.AddChild(mui.resolutionButton)
	return panel
}

func (mui *MenuUI) changed() {
	mui.UpdateUI()
	if mui.OnSettingsChanged != nil {
		mui.OnSettingsChanged(mui.Settings)
	}
}

func (mui *MenuUI) button(label string, idle color.RGBA, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 36)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(idle),
			Hover:   image.NewNineSliceColor(lighten(idle)),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			mui.UpdateUI()
		}),
	)
}

func (mui *MenuUI) smallButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(40, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			mui.UpdateUI()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func lighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 { return uint8(min(255, int(v)+30)) }
	return color.RGBA{up(c.R), up(c.G), up(c.B), c.A}
}

// UpdateUI refreshes every label from the menu state.
func (mui *MenuUI) UpdateUI() {
	if mui.levelLabel != nil {
		entry := mui.Campaign.Entry(mui.Level)
		title := entry.Title
		if title == "" {
			title = entry.File
		}
		mui.levelLabel.Label = fmt.Sprintf("%d. %s", mui.Level+1, title)
	}
	setButtonText(mui.volumeButton, fmt.Sprintf("Volume: %d%%", int(mui.Settings.SFXVolume*100+0.5)))
	setButtonText(mui.muteButton, "Sound: "+onOff(!mui.Settings.Muted))
	setButtonText(mui.fullscreenButton, "Fullscreen: "+onOff(mui.Settings.Fullscreen))
	setButtonText(mui.resolutionButton, "Window: "+cfg.SettingsMenu.Resolutions[mui.Settings.ResolutionIndex].Label())
}

func setButtonText(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func onOff(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

// NextVolume steps to the next configured volume, wrapping to the first.
func NextVolume(current float64) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	for _, v := range steps {
		if v > current+1e-9 {
			return v
		}
	}
	return steps[0]
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !mui.initialized {
		mui.initialized = true
		mui.UpdateUI()
	}
}
